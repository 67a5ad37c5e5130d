package catalog

import (
	"io"
	"strconv"

	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"github.com/gocarina/gocsv"
)

// FromCourse converts a course back to the sheet layout.
func FromCourse(c *timetable.Course) Row {
	return Row{
		Name:       c.Name,
		Instructor: c.Instructor,
		Credits:    strconv.FormatFloat(c.Credits, 'f', -1, 64),
		Category:   c.Category,
		Department: c.Department,
		Section:    strconv.Itoa(c.Key.Section),
		TimeText:   c.RawTime,
		Campus:     c.Campus,
		Code:       strconv.FormatInt(c.Key.Code, 10),
	}
}

// WriteCSV writes courses in the sheet layout, so the output can be loaded again.
func WriteCSV(w io.Writer, courses []*timetable.Course) error {
	rows := make([]Row, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, FromCourse(c))
	}
	return gocsv.Marshal(&rows, w)
}
