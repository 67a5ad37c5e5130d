package formatting

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/timetable"
)

// FormatCredits форматирует кредиты без лишних нулей: 3, 1.5
func FormatCredits(credits float64) string {
	return strconv.FormatFloat(credits, 'f', -1, 64)
}

// FormatTime возвращает исходную запись времени или пометку "시간 미정"
func FormatTime(c *timetable.Course) string {
	if c.Untimed() {
		return "시간 미정"
	}
	return strings.TrimSpace(c.RawTime)
}

// FormatCourseLine форматирует курс одной строкой (без HTML)
func FormatCourseLine(c *timetable.Course) string {
	parts := []string{fmt.Sprintf("%s (%s)", c.Name, c.Key)}
	if c.Instructor != "" {
		parts = append(parts, c.Instructor)
	}
	parts = append(parts, FormatCredits(c.Credits)+"학점", FormatTime(c))
	return strings.Join(parts, " · ")
}

// FormatCourseEntry форматирует курс для списка в HTML
func FormatCourseEntry(n int, c *timetable.Course) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>%d. %s</b> <code>%s</code>\n", n, html.EscapeString(c.Name), c.Key)

	var meta []string
	if c.Instructor != "" {
		meta = append(meta, "👤 "+html.EscapeString(c.Instructor))
	}
	meta = append(meta, FormatCredits(c.Credits)+"학점")
	if c.Category != "" {
		meta = append(meta, html.EscapeString(c.Category))
	}
	fmt.Fprintf(&sb, "    %s\n", strings.Join(meta, " · "))
	fmt.Fprintf(&sb, "    🕒 %s", html.EscapeString(FormatTime(c)))
	return sb.String()
}

// ButtonLabel обрезает название курса для кнопки
func ButtonLabel(prefix string, c *timetable.Course, maxRunes int) string {
	name := []rune(c.Name)
	if maxRunes > 0 && len(name) > maxRunes {
		name = append(name[:maxRunes-1], '…')
	}
	return fmt.Sprintf("%s %s (%d반)", prefix, string(name), c.Key.Section)
}
