package formatting

import (
	"strings"
	"testing"

	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *timetable.Catalog {
	return timetable.BuildCatalog([]timetable.Row{
		{Code: 100, Section: 1, Credits: 3, TimeText: "월1,2[공301]", Name: "자료구조", Instructor: "김교수", Category: "전공필수"},
		{Code: 200, Section: 2, Credits: 1.5, TimeText: "수3", Name: "C<프로그래밍>"},
		{Code: 300, Section: 1, Credits: 2, Name: "채플"},
	})
}

func TestFormatCredits(t *testing.T) {
	assert.Equal(t, "3", FormatCredits(3))
	assert.Equal(t, "1.5", FormatCredits(1.5))
	assert.Equal(t, "0", FormatCredits(0))
}

func TestFormatCourseLine(t *testing.T) {
	cat := testCatalog()
	c, _ := cat.Lookup(timetable.CourseKey{Code: 100, Section: 1})
	assert.Equal(t, "자료구조 (100-1) · 김교수 · 3학점 · 월1,2[공301]", FormatCourseLine(c))

	untimed, _ := cat.Lookup(timetable.CourseKey{Code: 300, Section: 1})
	assert.Equal(t, "채플 (300-1) · 2학점 · 시간 미정", FormatCourseLine(untimed))
}

func TestFormatCourseEntry_EscapesHTML(t *testing.T) {
	c, _ := testCatalog().Lookup(timetable.CourseKey{Code: 200, Section: 2})
	entry := FormatCourseEntry(1, c)

	assert.Contains(t, entry, "C&lt;프로그래밍&gt;")
	assert.Contains(t, entry, "<code>200-2</code>")
	assert.Contains(t, entry, "1.5학점")
}

func TestButtonLabel(t *testing.T) {
	c, _ := testCatalog().Lookup(timetable.CourseKey{Code: 100, Section: 1})
	assert.Equal(t, "➕ 자료구조 (1반)", ButtonLabel("➕", c, 10))
	assert.Equal(t, "➕ 자료… (1반)", ButtonLabel("➕", c, 3))
}

func TestFormatGrid(t *testing.T) {
	cat := testCatalog()

	assert.Empty(t, FormatGrid(timetable.BuildGrid(cat, nil)))

	sel := timetable.Selection{{Code: 100, Section: 1}, {Code: 200, Section: 2}, {Code: 300, Section: 1}}
	out := FormatGrid(timetable.BuildGrid(cat, sel))
	lines := strings.Split(out, "\n")

	// header + periods 1..3
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "월")
	assert.Contains(t, lines[0], "토")
	assert.True(t, strings.HasPrefix(lines[1], " 1 "))
	assert.Contains(t, lines[1], "자료")
	assert.Contains(t, lines[2], "자료")
	assert.Contains(t, lines[3], "C&lt;")
	assert.NotContains(t, out, "채플")
}
