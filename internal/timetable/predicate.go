package timetable

import "strings"

// Predicate reports whether a course should be kept.
type Predicate func(*Course) bool

// Filter returns the courses satisfying every predicate, in input order.
// Predicates are evaluated left to right and stop at the first rejection.
func Filter(courses []*Course, preds ...Predicate) []*Course {
	out := make([]*Course, 0, len(courses))
next:
	for _, c := range courses {
		for _, p := range preds {
			if !p(c) {
				continue next
			}
		}
		out = append(out, c)
	}
	return out
}

// NotCourseCode rejects every section of the given course codes.
func NotCourseCode(codes map[int64]struct{}) Predicate {
	return func(c *Course) bool {
		_, taken := codes[c.Key.Code]
		return !taken
	}
}

// DisjointFrom rejects courses sharing any slot with busy.
func DisjointFrom(busy SlotSet) Predicate {
	return func(c *Course) bool {
		return c.slots.Disjoint(busy)
	}
}

// InDepartment keeps courses of dept. An empty dept keeps everything.
func InDepartment(dept string) Predicate {
	return func(c *Course) bool {
		return dept == "" || c.Department == dept
	}
}

// MatchesKeyword keeps courses whose name or instructor contains keyword,
// ignoring case. An empty keyword keeps everything.
func MatchesKeyword(keyword string) Predicate {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	return func(c *Course) bool {
		if kw == "" {
			return true
		}
		return strings.Contains(strings.ToLower(c.Name), kw) ||
			strings.Contains(strings.ToLower(c.Instructor), kw)
	}
}
