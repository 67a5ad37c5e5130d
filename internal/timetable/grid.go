package timetable

// Display bounds of the weekly grid.
const (
	GridFirstPeriod = 1
	GridLastPeriod  = 12
)

// GridDays are the columns of the weekly grid.
var GridDays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// GridCell is one filled cell of the grid.
type GridCell struct {
	Course *Course
	Room   string
}

// Grid is the selection laid out by day and period for display.
type Grid struct {
	Days    []Day
	Periods []int

	// Courses are the resolved selected courses in selection order.
	Courses []*Course
	// Untimed are selected courses without any block.
	Untimed []*Course
	// Stale are selected keys missing from the catalog.
	Stale []CourseKey

	cells map[Slot]GridCell
}

// BuildGrid lays out sel on GridDays × [GridFirstPeriod, GridLastPeriod].
// Blocks outside the grid are not shown but the course still appears in Courses.
func BuildGrid(c *Catalog, sel Selection) *Grid {
	g := &Grid{
		Days:  GridDays,
		cells: make(map[Slot]GridCell),
	}
	for p := GridFirstPeriod; p <= GridLastPeriod; p++ {
		g.Periods = append(g.Periods, p)
	}

	shown := make(map[Day]bool, len(GridDays))
	for _, d := range GridDays {
		shown[d] = true
	}

	g.Courses, g.Stale = c.Resolve(sel)
	for _, course := range g.Courses {
		if course.Untimed() {
			g.Untimed = append(g.Untimed, course)
			continue
		}
		for _, b := range course.Blocks {
			if !shown[b.Day] {
				continue
			}
			for _, p := range b.Periods {
				if p < GridFirstPeriod || p > GridLastPeriod {
					continue
				}
				g.cells[Slot{Day: b.Day, Period: p}] = GridCell{Course: course, Room: b.Room}
			}
		}
	}
	return g
}

// Cell returns the course occupying day and period, if any.
func (g *Grid) Cell(day Day, period int) (GridCell, bool) {
	cell, ok := g.cells[Slot{Day: day, Period: period}]
	return cell, ok
}

// Filled returns the number of occupied cells.
func (g *Grid) Filled() int {
	return len(g.cells)
}

// Empty reports whether nothing is selected.
func (g *Grid) Empty() bool {
	return len(g.Courses) == 0 && len(g.Stale) == 0
}
