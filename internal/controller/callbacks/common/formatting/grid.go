package formatting

import (
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/timetable"
)

const (
	emptyCell = "ㆍ　"
	cellRunes = 2
)

// FormatGrid рисует сетку расписания моноширинным текстом для <pre>.
// Строки показываются до последней занятой пары. Пустая сетка даёт "".
func FormatGrid(g *timetable.Grid) string {
	last := lastFilledPeriod(g)
	if last == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("   ")
	for _, d := range g.Days {
		fmt.Fprintf(&sb, " %s　", d)
	}
	sb.WriteString("\n")

	for _, p := range g.Periods {
		if p > last {
			break
		}
		fmt.Fprintf(&sb, "%2d ", p)
		for _, d := range g.Days {
			sb.WriteString(" ")
			cell, ok := g.Cell(d, p)
			if !ok {
				sb.WriteString(emptyCell)
				continue
			}
			sb.WriteString(abbreviate(cell.Course.Name))
		}
		sb.WriteString("\n")
	}

	return html.EscapeString(strings.TrimRight(sb.String(), "\n"))
}

func lastFilledPeriod(g *timetable.Grid) int {
	last := 0
	for _, p := range g.Periods {
		for _, d := range g.Days {
			if _, ok := g.Cell(d, p); ok {
				last = p
			}
		}
	}
	return last
}

// abbreviate берёт первые два символа названия и дополняет полноширинным пробелом
func abbreviate(name string) string {
	r := []rune(strings.ReplaceAll(name, " ", ""))
	if len(r) > cellRunes {
		r = r[:cellRunes]
	}
	for len(r) < cellRunes {
		r = append(r, '　')
	}
	return string(r)
}
