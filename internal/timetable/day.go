package timetable

import "fmt"

// Day is a weekday as it appears in lecture-time text.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Weekdays lists every day in display order.
var Weekdays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayRunes = [...]rune{'월', '화', '수', '목', '금', '토', '일'}

// DayFromRune maps a Korean weekday character to a Day.
func DayFromRune(r rune) (Day, bool) {
	for i, dr := range dayRunes {
		if dr == r {
			return Day(i), true
		}
	}
	return 0, false
}

// Valid reports whether d is one of the seven weekdays.
func (d Day) Valid() bool {
	return d >= Monday && d <= Sunday
}

// String returns the single-character Korean weekday name.
func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return string(dayRunes[d])
}

// Slot is one (day, period) cell of the weekly timetable.
type Slot struct {
	Day    Day
	Period int
}

func (s Slot) String() string {
	return fmt.Sprintf("%s%d", s.Day, s.Period)
}

// SlotSet is a set of occupied slots.
type SlotSet map[Slot]struct{}

// NewSlotSet flattens the periods of every block into a set.
func NewSlotSet(blocks []TimeBlock) SlotSet {
	set := make(SlotSet)
	for _, b := range blocks {
		for _, p := range b.Periods {
			set[Slot{Day: b.Day, Period: p}] = struct{}{}
		}
	}
	return set
}

// Contains reports whether slot is in the set.
func (s SlotSet) Contains(slot Slot) bool {
	_, ok := s[slot]
	return ok
}

// Len returns the number of slots.
func (s SlotSet) Len() int {
	return len(s)
}

// Disjoint reports whether s and other share no slot.
func (s SlotSet) Disjoint(other SlotSet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for slot := range small {
		if _, ok := large[slot]; ok {
			return false
		}
	}
	return true
}
