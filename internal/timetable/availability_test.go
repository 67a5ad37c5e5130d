package timetable

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keysOf(courses []*Course) []CourseKey {
	out := make([]CourseKey, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.Key)
	}
	return out
}

func TestAvailableEmptySelectionReturnsCatalog(t *testing.T) {
	c := sampleCatalog()
	assert.Equal(t, c.Courses(), Available(c, nil))
	assert.Equal(t, c.Courses(), Available(c, Selection{}))
}

func TestAvailableScenario(t *testing.T) {
	c := BuildCatalog([]Row{
		{Code: 100, Section: 1, Name: "A", TimeText: "월1,2"},
		{Code: 200, Section: 1, Name: "B", TimeText: "월2,3"},
	})

	assert.ElementsMatch(t, []CourseKey{key(100, 1), key(200, 1)}, keysOf(Available(c, nil)))

	sel, err := TryAdd(nil, c, key(100, 1))
	require.NoError(t, err)
	assert.Empty(t, Available(c, sel))

	_, err = TryAdd(sel, c, key(200, 1))
	require.ErrorIs(t, err, ErrTimeConflict)

	var selErr *SelectionError
	require.ErrorAs(t, err, &selErr)
	assert.Equal(t, "A", selErr.ExistingName())
	assert.Equal(t, "B", selErr.CandidateName())
	assert.Equal(t, Slot{Day: Monday, Period: 2}, selErr.Slot)
}

func TestAvailableExcludesSameCodeAndOverlap(t *testing.T) {
	c := sampleCatalog()

	got := keysOf(Available(c, Selection{key(100, 1)}))

	// 100-2 shares the code, 200-1 overlaps on 월2.
	assert.Equal(t, []CourseKey{key(300, 1), key(400, 1), key(500, 1)}, got)
}

func TestAvailableUntimedSelectionOnlyBlocksCode(t *testing.T) {
	c := sampleCatalog()

	got := keysOf(Available(c, Selection{key(400, 1)}))

	assert.Equal(t, []CourseKey{key(100, 1), key(100, 2), key(200, 1), key(300, 1), key(500, 1)}, got)
}

func TestAvailableSkipsStaleReference(t *testing.T) {
	c := sampleCatalog()

	withStale := Available(c, Selection{key(999, 1), key(300, 1)})
	without := Available(c, Selection{key(300, 1)})

	assert.Equal(t, keysOf(without), keysOf(withStale))

	courses, stale := c.Resolve(Selection{key(999, 1), key(300, 1)})
	assert.Equal(t, []CourseKey{key(999, 1)}, stale)
	assert.Equal(t, []CourseKey{key(300, 1)}, keysOf(courses))
}

func TestAvailableStaleKeyStillBlocksItsCode(t *testing.T) {
	c := sampleCatalog()

	got := keysOf(Available(c, Selection{key(100, 9)}))

	assert.NotContains(t, got, key(100, 1))
	assert.NotContains(t, got, key(100, 2))
	assert.Contains(t, got, key(200, 1))
}

func TestAvailableInvariants(t *testing.T) {
	c := sampleCatalog()
	selections := []Selection{
		{key(100, 1)},
		{key(300, 1), key(100, 2)},
		{key(400, 1), key(200, 1)},
		{key(100, 2), key(200, 1), key(300, 1), key(400, 1)},
	}

	for _, sel := range selections {
		busy := BusySlots(c, sel)
		codes := make(map[int64]bool)
		for _, k := range sel {
			codes[k.Code] = true
		}

		for _, course := range Available(c, sel) {
			assert.True(t, course.Slots().Disjoint(busy), "%s overlaps %v", course.Key, sel)
			assert.False(t, codes[course.Key.Code], "%s shares a code with %v", course.Key, sel)
		}
	}
}

func TestAvailableOrderIndependent(t *testing.T) {
	c := sampleCatalog()
	sel := Selection{key(100, 2), key(200, 1), key(300, 1), key(400, 1)}
	want := keysOf(Available(c, sel))

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		perm := sel.Clone()
		r.Shuffle(len(perm), func(a, b int) { perm[a], perm[b] = perm[b], perm[a] })
		assert.Equal(t, want, keysOf(Available(c, perm)))
	}
}

func TestAvailableDoesNotMutateInputs(t *testing.T) {
	c := sampleCatalog()
	before := c.Courses()
	sel := Selection{key(200, 1), key(100, 2)}
	selBefore := sel.Clone()

	Available(c, sel)

	assert.Equal(t, selBefore, sel)
	assert.Equal(t, before, c.Courses())
}

func TestAvailableExtraPredicates(t *testing.T) {
	c := BuildCatalog([]Row{
		{Code: 1, Section: 1, Name: "자료구조", Instructor: "김", Department: "컴퓨터", TimeText: "월1"},
		{Code: 2, Section: 1, Name: "운영체제", Instructor: "이", Department: "컴퓨터", TimeText: "월1"},
		{Code: 3, Section: 1, Name: "미적분", Instructor: "김", Department: "수학", TimeText: "화1"},
	})

	got := Available(c, nil, InDepartment("컴퓨터"), MatchesKeyword("김"))
	assert.Equal(t, []CourseKey{key(1, 1)}, keysOf(got))

	got = Available(c, Selection{key(1, 1)}, MatchesKeyword("  "))
	assert.Equal(t, []CourseKey{key(3, 1)}, keysOf(got))
}

func TestBusySlots(t *testing.T) {
	c := sampleCatalog()

	busy := BusySlots(c, Selection{key(100, 1), key(300, 1), key(999, 1)})

	assert.Equal(t, 3, busy.Len())
	assert.True(t, busy.Contains(Slot{Day: Monday, Period: 1}))
	assert.True(t, busy.Contains(Slot{Day: Monday, Period: 2}))
	assert.True(t, busy.Contains(Slot{Day: Wednesday, Period: 5}))
}

func TestTotalCredits(t *testing.T) {
	c := sampleCatalog()

	assert.Equal(t, 0.0, TotalCredits(c, nil))
	assert.Equal(t, 4.5, TotalCredits(c, Selection{key(100, 1), key(300, 1)}))
	assert.Equal(t, 1.5, TotalCredits(c, Selection{key(300, 1), key(999, 1)}))
}

func TestFilterStopsAtFirstRejection(t *testing.T) {
	c := sampleCatalog()
	calls := 0
	counting := func(*Course) bool {
		calls++
		return true
	}

	out := Filter(c.Courses(), func(*Course) bool { return false }, counting)

	assert.Empty(t, out)
	assert.Zero(t, calls)
}

func BenchmarkAvailable(b *testing.B) {
	rows := make([]Row, 0, 5000)
	days := []rune("월화수목금")
	for i := 0; i < 5000; i++ {
		day := string(days[i%len(days)])
		rows = append(rows, Row{
			Code:     int64(i / 3),
			Section:  i % 3,
			TimeText: day + string(rune('1'+i%9)),
		})
	}
	c := BuildCatalog(rows)
	var sel Selection
	for i := 0; i < 5000 && len(sel) < 30; i += 97 {
		if next, err := TryAdd(sel, c, c.courses[i].Key); err == nil {
			sel = next
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Available(c, sel)
	}
}
