package timetable

import "fmt"

// Selection is the ordered list of keys the user has added.
// Operations never modify their input; they return a new Selection.
type Selection []CourseKey

// Contains reports whether key is selected.
func (s Selection) Contains(key CourseKey) bool {
	return s.Index(key) >= 0
}

// Index returns the position of key, or -1.
func (s Selection) Index(key CourseKey) int {
	for i, k := range s {
		if k == key {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy.
func (s Selection) Clone() Selection {
	if s == nil {
		return nil
	}
	out := make(Selection, len(s))
	copy(out, s)
	return out
}

// TryAdd appends key to sel if the course exists, is not a second section of
// an already selected subject, and does not overlap any selected course.
// Stale entries in sel occupy no slots but still block their course code.
func TryAdd(sel Selection, c *Catalog, key CourseKey) (Selection, error) {
	candidate, ok := c.Lookup(key)
	if !ok {
		return sel, &SelectionError{Kind: ErrNotFound, Key: key}
	}

	for _, k := range sel {
		if k.Code != key.Code {
			continue
		}
		existing, _ := c.Lookup(k)
		return sel, &SelectionError{
			Kind:        ErrDuplicateSelection,
			Key:         key,
			Candidate:   candidate,
			Existing:    existing,
			ExistingKey: k,
		}
	}

	if !candidate.Untimed() {
		owners := slotOwners(c, sel)
		for _, b := range candidate.Blocks {
			for _, p := range b.Periods {
				slot := Slot{Day: b.Day, Period: p}
				if owner, busy := owners[slot]; busy {
					return sel, &SelectionError{
						Kind:        ErrTimeConflict,
						Key:         key,
						Candidate:   candidate,
						Existing:    owner,
						ExistingKey: owner.Key,
						Slot:        slot,
					}
				}
			}
		}
	}

	out := make(Selection, len(sel), len(sel)+1)
	copy(out, sel)
	return append(out, key), nil
}

// slotOwners maps each busy slot to the first selected course occupying it.
func slotOwners(c *Catalog, sel Selection) map[Slot]*Course {
	owners := make(map[Slot]*Course)
	for _, k := range sel {
		course, ok := c.Lookup(k)
		if !ok {
			continue
		}
		for slot := range course.slots {
			if _, taken := owners[slot]; !taken {
				owners[slot] = course
			}
		}
	}
	return owners
}

// Remove drops key from sel. Other entries keep their order.
func Remove(sel Selection, key CourseKey) (Selection, error) {
	i := sel.Index(key)
	if i < 0 {
		return sel, &SelectionError{Kind: ErrNotFound, Key: key}
	}
	return RemoveAt(sel, i)
}

// RemoveAt drops the entry at index i.
func RemoveAt(sel Selection, i int) (Selection, error) {
	if i < 0 || i >= len(sel) {
		return sel, fmt.Errorf("%w: index %d out of range [0,%d)", ErrNotFound, i, len(sel))
	}
	out := make(Selection, 0, len(sel)-1)
	out = append(out, sel[:i]...)
	return append(out, sel[i+1:]...), nil
}

// Reset returns an empty selection.
func Reset() Selection {
	return Selection{}
}
