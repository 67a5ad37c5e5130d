package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCatalog(t *testing.T) {
	rows := []Row{
		{Code: 1, Section: 1, Name: "first", Department: "B", TimeText: "월1"},
		{Code: 1, Section: 1, Name: "dup", Department: "C", TimeText: "화1"},
		{Code: 2, Section: 1, Name: "second", Department: "A"},
		{Code: 3, Section: 1, Name: "third"},
	}

	c := BuildCatalog(rows)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"A", "B"}, c.Departments())
	assert.Equal(t, []CourseKey{key(1, 1)}, c.Duplicates())

	first, ok := c.Lookup(key(1, 1))
	require.True(t, ok)
	assert.Equal(t, "first", first.Name)
	assert.True(t, first.Slots().Contains(Slot{Day: Monday, Period: 1}))

	second, ok := c.Lookup(key(2, 1))
	require.True(t, ok)
	assert.True(t, second.Untimed())
	assert.Equal(t, 0, second.Slots().Len())

	_, ok = c.Lookup(key(9, 9))
	assert.False(t, ok)
}

func TestCatalogCoursesIsCopy(t *testing.T) {
	c := sampleCatalog()
	courses := c.Courses()
	courses[0] = nil

	again := c.Courses()
	assert.NotNil(t, again[0])
}

func TestCourseKey(t *testing.T) {
	k := key(1234, 2)
	assert.Equal(t, "1234-2", k.String())

	parsed, err := ParseCourseKey(" 1234-2 ")
	require.NoError(t, err)
	assert.Equal(t, k, parsed)

	for _, bad := range []string{"", "1234", "a-1", "1-b"} {
		_, err := ParseCourseKey(bad)
		assert.Error(t, err, bad)
	}
}

func TestCourseLabel(t *testing.T) {
	c := BuildCatalog([]Row{{Code: 7, Section: 3, Name: "자료구조", Instructor: "홍길동"}})
	course, _ := c.Lookup(key(7, 3))
	assert.Equal(t, "자료구조 (홍길동, 3반)", course.Label())
}
