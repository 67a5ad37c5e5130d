package timetable

import "sort"

// Catalog is the term's course list. It is never mutated after BuildCatalog
// and may be shared across goroutines.
type Catalog struct {
	courses     []*Course
	index       map[CourseKey]*Course
	departments []string
	duplicates  []CourseKey
}

// BuildCatalog parses every row's lecture time and indexes the courses by key.
// When a key repeats, the first row wins and the key is reported by Duplicates.
func BuildCatalog(rows []Row) *Catalog {
	c := &Catalog{
		courses: make([]*Course, 0, len(rows)),
		index:   make(map[CourseKey]*Course, len(rows)),
	}

	seenDept := make(map[string]struct{})
	for _, r := range rows {
		course := newCourse(r)
		if _, exists := c.index[course.Key]; exists {
			c.duplicates = append(c.duplicates, course.Key)
			continue
		}
		c.index[course.Key] = course
		c.courses = append(c.courses, course)

		if course.Department != "" {
			if _, ok := seenDept[course.Department]; !ok {
				seenDept[course.Department] = struct{}{}
				c.departments = append(c.departments, course.Department)
			}
		}
	}
	sort.Strings(c.departments)

	return c
}

// Lookup returns the course for key.
func (c *Catalog) Lookup(key CourseKey) (*Course, bool) {
	course, ok := c.index[key]
	return course, ok
}

// Courses returns all courses in load order. The slice is a copy.
func (c *Catalog) Courses() []*Course {
	out := make([]*Course, len(c.courses))
	copy(out, c.courses)
	return out
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// Departments returns the sorted distinct non-empty department names.
func (c *Catalog) Departments() []string {
	out := make([]string, len(c.departments))
	copy(out, c.departments)
	return out
}

// Duplicates returns keys that appeared more than once in the input rows.
func (c *Catalog) Duplicates() []CourseKey {
	out := make([]CourseKey, len(c.duplicates))
	copy(out, c.duplicates)
	return out
}
