package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGrid(t *testing.T) {
	c := BuildCatalog([]Row{
		{Code: 1, Section: 1, Name: "A", TimeText: "월1,2[공301] 수3"},
		{Code: 2, Section: 1, Name: "B", TimeText: "일1 토13 금12[야간]"},
		{Code: 3, Section: 1, Name: "C"},
	})

	g := BuildGrid(c, Selection{key(1, 1), key(2, 1), key(3, 1), key(9, 9)})

	assert.Equal(t, GridDays, g.Days)
	assert.Len(t, g.Periods, 12)
	assert.Equal(t, 4, g.Filled())
	assert.False(t, g.Empty())

	cell, ok := g.Cell(Monday, 2)
	require.True(t, ok)
	assert.Equal(t, "A", cell.Course.Name)
	assert.Equal(t, "공301", cell.Room)

	cell, ok = g.Cell(Wednesday, 3)
	require.True(t, ok)
	assert.Equal(t, "", cell.Room)

	cell, ok = g.Cell(Friday, 12)
	require.True(t, ok)
	assert.Equal(t, "B", cell.Course.Name)

	_, ok = g.Cell(Saturday, 13)
	assert.False(t, ok)
	_, ok = g.Cell(Sunday, 1)
	assert.False(t, ok)

	require.Len(t, g.Untimed, 1)
	assert.Equal(t, "C", g.Untimed[0].Name)
	assert.Len(t, g.Courses, 3)
	assert.Equal(t, []CourseKey{key(9, 9)}, g.Stale)
}

func TestBuildGridEmpty(t *testing.T) {
	g := BuildGrid(sampleCatalog(), nil)
	assert.True(t, g.Empty())
	assert.Zero(t, g.Filled())
}
