package timetable

import (
	"regexp"
	"sort"
	"strconv"
)

var (
	segmentPattern = regexp.MustCompile(`([월화수목금토일])([^월화수목금토일]*)`)
	roomPattern    = regexp.MustCompile(`\[(.*?)\]`)
	periodPattern  = regexp.MustCompile(`\d+`)
)

// TimeBlock is one teaching block: a day, its periods and an optional room.
type TimeBlock struct {
	Day     Day
	Periods []int
	Room    string
}

// ParseTime converts lecture-time text such as "월1,2[공301] 수3" into
// blocks, in source order. Empty text yields no blocks.
//
// Each weekday character starts a segment that runs to the next weekday
// character. The first bracketed token is the room; digit runs outside
// brackets are periods. Segments without periods are dropped.
func ParseTime(text string) []TimeBlock {
	if text == "" {
		return nil
	}

	var blocks []TimeBlock
	for _, m := range segmentPattern.FindAllStringSubmatch(text, -1) {
		day, ok := DayFromRune([]rune(m[1])[0])
		if !ok {
			continue
		}
		details := m[2]

		room := ""
		if rm := roomPattern.FindStringSubmatch(details); rm != nil {
			room = rm[1]
		}

		var periods []int
		for _, digits := range periodPattern.FindAllString(roomPattern.ReplaceAllString(details, ""), -1) {
			p, err := strconv.Atoi(digits)
			if err != nil {
				// overflowing digit run
				continue
			}
			periods = append(periods, p)
		}
		if len(periods) == 0 {
			continue
		}
		sort.Ints(periods)

		blocks = append(blocks, TimeBlock{Day: day, Periods: periods, Room: room})
	}
	return blocks
}
