package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/timetable"
)

// ErrCatalogLoad is returned when the source is unreadable or malformed.
// No catalog is built when it occurs.
var ErrCatalogLoad = errors.New("catalog load failed")

// Row is one raw line of the university timetable sheet.
// Tags are the column headers used by the registrar's export.
type Row struct {
	Name       string `csv:"교과목명"`
	Instructor string `csv:"교수명"`
	Credits    string `csv:"학점"`
	Category   string `csv:"이수구분"`
	Department string `csv:"학부(과)"`
	Section    string `csv:"분반"`
	TimeText   string `csv:"강의시간/강의실"`
	Campus     string `csv:"캠퍼스구분"`
	Code       string `csv:"교과목코드"`
}

// headerAliases maps column names of the general-education sheet onto Row's headers.
var headerAliases = map[string]string{
	"학과":    "학부(과)",
	"수강반번호": "분반",
}

// Source provides raw catalog rows.
type Source interface {
	Load(ctx context.Context) ([]Row, error)
}

// Normalize validates raw rows into engine rows.
// Rows with a blank course code or section are dropped and counted.
// Any other value that cannot be coerced fails the whole load.
func Normalize(rows []Row) ([]timetable.Row, int, error) {
	out := make([]timetable.Row, 0, len(rows))
	dropped := 0

	for i, r := range rows {
		codeText := strings.TrimSpace(r.Code)
		sectionText := strings.TrimSpace(r.Section)
		if codeText == "" || sectionText == "" {
			dropped++
			continue
		}

		code, err := parseIntLike(codeText)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: row %d (%s): 교과목코드 %q: %v", ErrCatalogLoad, i+1, r.Name, codeText, err)
		}
		section, err := parseIntLike(sectionText)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: row %d (%s): 분반 %q: %v", ErrCatalogLoad, i+1, r.Name, sectionText, err)
		}

		credits := 0.0
		if c := strings.TrimSpace(r.Credits); c != "" {
			credits, err = strconv.ParseFloat(c, 64)
			if err != nil || math.IsNaN(credits) || math.IsInf(credits, 0) {
				return nil, 0, fmt.Errorf("%w: row %d (%s): 학점 %q", ErrCatalogLoad, i+1, r.Name, c)
			}
		}

		out = append(out, timetable.Row{
			Code:       code,
			Section:    int(section),
			Credits:    credits,
			TimeText:   strings.TrimSpace(r.TimeText),
			Name:       strings.TrimSpace(r.Name),
			Instructor: strings.TrimSpace(r.Instructor),
			Category:   strings.TrimSpace(r.Category),
			Department: strings.TrimSpace(r.Department),
			Campus:     strings.TrimSpace(r.Campus),
		})
	}

	return out, dropped, nil
}

// parseIntLike accepts "123" as well as spreadsheet floats such as "123.0".
func parseIntLike(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, fmt.Errorf("not an integer")
	}
	return int64(f), nil
}
