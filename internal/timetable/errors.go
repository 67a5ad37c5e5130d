package timetable

import (
	"errors"
	"fmt"
)

// Error kinds returned by selection operations. Use errors.Is to test them.
var (
	ErrDuplicateSelection = errors.New("duplicate selection")
	ErrTimeConflict       = errors.New("time conflict")
	ErrNotFound           = errors.New("course not found")
	ErrStaleReference     = errors.New("stale selection reference")
)

// SelectionError describes a rejected selection change.
type SelectionError struct {
	Kind error
	Key  CourseKey

	// Candidate is the course being added, nil when Key is not in the catalog.
	Candidate *Course

	// Existing is the already selected course that blocks the change.
	// It is nil when the blocking entry is itself a stale reference.
	Existing    *Course
	ExistingKey CourseKey

	// Slot is the first shared slot for ErrTimeConflict.
	Slot Slot
}

func (e *SelectionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ErrTimeConflict:
		return fmt.Sprintf("%v: %s overlaps %s at %s", e.Kind, e.Key, e.ExistingKey, e.Slot)
	case ErrDuplicateSelection:
		if e.Key == e.ExistingKey {
			return fmt.Sprintf("%v: %s already selected", e.Kind, e.Key)
		}
		return fmt.Sprintf("%v: %s shares course code with selected %s", e.Kind, e.Key, e.ExistingKey)
	default:
		return fmt.Sprintf("%v: %s", e.Kind, e.Key)
	}
}

func (e *SelectionError) Unwrap() error {
	return e.Kind
}

// ExistingName returns the blocking course's name, falling back to its key.
func (e *SelectionError) ExistingName() string {
	if e.Existing != nil {
		return e.Existing.Name
	}
	return e.ExistingKey.String()
}

// CandidateName returns the candidate course's name, falling back to its key.
func (e *SelectionError) CandidateName() string {
	if e.Candidate != nil {
		return e.Candidate.Name
	}
	return e.Key.String()
}
