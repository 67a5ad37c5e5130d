package timetable

import (
	"fmt"
	"strconv"
	"strings"
)

// CourseKey identifies one section of a subject. It is the selection unit.
type CourseKey struct {
	Code    int64
	Section int
}

// String formats the key as "code-section".
func (k CourseKey) String() string {
	return fmt.Sprintf("%d-%d", k.Code, k.Section)
}

// ParseCourseKey parses the "code-section" form produced by String.
func ParseCourseKey(s string) (CourseKey, error) {
	code, section, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return CourseKey{}, fmt.Errorf("invalid course key %q", s)
	}
	c, err := strconv.ParseInt(code, 10, 64)
	if err != nil {
		return CourseKey{}, fmt.Errorf("invalid course code in %q: %w", s, err)
	}
	n, err := strconv.Atoi(section)
	if err != nil {
		return CourseKey{}, fmt.Errorf("invalid section in %q: %w", s, err)
	}
	return CourseKey{Code: c, Section: n}, nil
}

// Row is a validated catalog input row.
type Row struct {
	Code       int64
	Section    int
	Credits    float64
	TimeText   string
	Name       string
	Instructor string
	Category   string
	Department string
	Campus     string
}

// Course is one section offering with its parsed schedule.
// Blocks and the slot set are computed once when the catalog is built.
type Course struct {
	Key        CourseKey
	Name       string
	Instructor string
	Category   string
	Department string
	Campus     string
	Credits    float64
	RawTime    string
	Blocks     []TimeBlock

	slots SlotSet
}

func newCourse(r Row) *Course {
	blocks := ParseTime(r.TimeText)
	return &Course{
		Key:        CourseKey{Code: r.Code, Section: r.Section},
		Name:       r.Name,
		Instructor: r.Instructor,
		Category:   r.Category,
		Department: r.Department,
		Campus:     r.Campus,
		Credits:    r.Credits,
		RawTime:    r.TimeText,
		Blocks:     blocks,
		slots:      NewSlotSet(blocks),
	}
}

// Slots returns the flattened (day, period) set. Callers must not modify it.
func (c *Course) Slots() SlotSet {
	return c.slots
}

// Untimed reports whether the course has no scheduled blocks.
func (c *Course) Untimed() bool {
	return len(c.Blocks) == 0
}

// Label is the short display form, e.g. "자료구조 (홍길동, 1반)".
func (c *Course) Label() string {
	return fmt.Sprintf("%s (%s, %d반)", c.Name, c.Instructor, c.Key.Section)
}
