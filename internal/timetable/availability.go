package timetable

// Resolve returns the selected courses in selection order, and the keys
// that are not in the catalog.
func (c *Catalog) Resolve(sel Selection) (courses []*Course, stale []CourseKey) {
	for _, k := range sel {
		course, ok := c.Lookup(k)
		if !ok {
			stale = append(stale, k)
			continue
		}
		courses = append(courses, course)
	}
	return courses, stale
}

// BusySlots is the union of slot sets over the selected courses.
// Stale keys contribute nothing.
func BusySlots(c *Catalog, sel Selection) SlotSet {
	busy := make(SlotSet)
	for _, k := range sel {
		course, ok := c.Lookup(k)
		if !ok {
			continue
		}
		for slot := range course.slots {
			busy[slot] = struct{}{}
		}
	}
	return busy
}

// Available returns the catalog courses that can still be added to sel:
// no selected course shares their course code, and none of their slots is
// busy. An empty selection returns the whole catalog.
//
// The result depends only on the set of keys in sel, not their order.
// A stale key (absent from c) adds no busy slots but still excludes every
// section sharing its course code.
func Available(c *Catalog, sel Selection, extra ...Predicate) []*Course {
	if len(sel) == 0 {
		return Filter(c.courses, extra...)
	}

	codes := make(map[int64]struct{}, len(sel))
	for _, k := range sel {
		codes[k.Code] = struct{}{}
	}

	preds := make([]Predicate, 0, len(extra)+2)
	preds = append(preds, NotCourseCode(codes), DisjointFrom(BusySlots(c, sel)))
	preds = append(preds, extra...)
	return Filter(c.courses, preds...)
}

// TotalCredits sums the credits of the selected courses. Stale keys count as 0.
func TotalCredits(c *Catalog, sel Selection) float64 {
	var total float64
	for _, k := range sel {
		if course, ok := c.Lookup(k); ok {
			total += course.Credits
		}
	}
	return total
}
