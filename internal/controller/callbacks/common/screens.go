package common

import (
	"fmt"
	"hash/crc32"
	"html"
	"strconv"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"github.com/go-telegram/bot/models"
)

// Размеры страниц
const (
	DepartmentsPerPage = 10
	CoursesPerPage     = 6
	buttonNameRunes    = 14
)

// Scope описывает, какой список курсов показывает пользователь
type Scope struct {
	Token  string // значение для callback data
	Title  string
	Filter service.Filter
}

// ResolveScope восстанавливает область списка по токену из callback data
func ResolveScope(hc *HandlerContext, token string) (Scope, error) {
	switch {
	case token == callbacktypes.ScopeAll:
		return Scope{Token: token, Title: "전체 강의"}, nil
	case token == callbacktypes.ScopeSearch:
		kw, ok := hc.GetString(state.DataSearchKeyword)
		if !ok || kw == "" {
			return Scope{}, ErrSearchExpired
		}
		return SearchScope(kw), nil
	case strings.HasPrefix(token, callbacktypes.ScopeDeptPrefix):
		return ParseDepartmentScope(hc.Service().Departments(), token)
	default:
		return Scope{}, fmt.Errorf("%w: %q", ErrUnknownScope, token)
	}
}

// SearchScope область результатов поиска
func SearchScope(keyword string) Scope {
	return Scope{
		Token:  callbacktypes.ScopeSearch,
		Title:  fmt.Sprintf("검색: %s", keyword),
		Filter: service.Filter{Keyword: keyword},
	}
}

// DepartmentScope область одной кафедры по индексу в отсортированном списке
func DepartmentScope(departments []string, idx int) (Scope, error) {
	if idx < 0 || idx >= len(departments) {
		return Scope{}, fmt.Errorf("%w: department %d of %d", ErrUnknownScope, idx, len(departments))
	}
	return Scope{
		Token:  DepartmentToken(idx, departments[idx]),
		Title:  departments[idx],
		Filter: service.Filter{Department: departments[idx]},
	}, nil
}

// DepartmentToken кодирует индекс кафедры и контрольную сумму её названия: d3.1f2e
func DepartmentToken(idx int, name string) string {
	return fmt.Sprintf("%s%d.%04x", callbacktypes.ScopeDeptPrefix, idx, crc32.ChecksumIEEE([]byte(name))&0xffff)
}

// ParseDepartmentScope восстанавливает кафедру по токену.
// Если после перезагрузки каталога под индексом другая кафедра, возвращает ErrUnknownScope.
func ParseDepartmentScope(departments []string, token string) (Scope, error) {
	idxText, _, ok := strings.Cut(strings.TrimPrefix(token, callbacktypes.ScopeDeptPrefix), ".")
	if !ok {
		return Scope{}, fmt.Errorf("%w: department token %q", ErrInvalidFormat, token)
	}
	idx, err := strconv.Atoi(idxText)
	if err != nil {
		return Scope{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	scope, err := DepartmentScope(departments, idx)
	if err != nil {
		return Scope{}, err
	}
	if scope.Token != token {
		return Scope{}, fmt.Errorf("%w: department %d changed", ErrUnknownScope, idx)
	}
	return scope, nil
}

// BuildDepartmentsScreen формирует экран выбора кафедры
func BuildDepartmentsScreen(departments []string, page int) (string, *models.InlineKeyboardMarkup) {
	p := keyboard.Paginate(len(departments), DepartmentsPerPage, page)

	text := "📚 <b>강의 찾기</b>\n\n학과를 선택하거나 전체 강의를 확인하세요.\n" +
		"이미 담은 강의와 시간이 겹치거나 같은 과목인 강의는 표시되지 않습니다."

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("📋 전체 강의", callbacktypes.SelectScope+callbacktypes.ScopeAll))

	var buttons []models.InlineKeyboardButton
	for i := p.Start; i < p.End; i++ {
		buttons = append(buttons, keyboard.Button(
			departments[i],
			callbacktypes.SelectScope+DepartmentToken(i, departments[i]),
		))
	}
	kb.Grid(2, buttons...).
		AddPagination(callbacktypes.DepartmentsPage, p.Number, p.Total).
		Row(keyboard.MyTimetableButton())

	return text, kb.Build()
}

// BuildCoursesScreen формирует страницу доступных курсов
func BuildCoursesScreen(scope Scope, courses []*timetable.Course, page int, selectedCount int) (string, *models.InlineKeyboardMarkup) {
	p := keyboard.Paginate(len(courses), CoursesPerPage, page)

	var sb strings.Builder
	fmt.Fprintf(&sb, "📚 <b>%s</b>\n", html.EscapeString(scope.Title))
	fmt.Fprintf(&sb, "담을 수 있는 강의 %d개 · 내 시간표 %d개\n\n", len(courses), selectedCount)

	if len(courses) == 0 {
		sb.WriteString("조건에 맞는 강의가 없습니다.")
	}
	for i := p.Start; i < p.End; i++ {
		sb.WriteString(formatting.FormatCourseEntry(i+1, courses[i]))
		sb.WriteString("\n\n")
	}

	kb := keyboard.NewBuilder()
	for i := p.Start; i < p.End; i++ {
		c := courses[i]
		kb.Row(keyboard.Button(
			formatting.ButtonLabel("➕", c, buttonNameRunes),
			fmt.Sprintf("%s%s:%s:%d", callbacktypes.AddCourse, c.Key, scope.Token, p.Number),
		))
	}
	kb.AddPagination(fmt.Sprintf("%s%s:", callbacktypes.CoursesPage, scope.Token), p.Number, p.Total)
	kb.Row(
		keyboard.BackButton(callbacktypes.DepartmentsPage+"0"),
		keyboard.MyTimetableButton(),
	)

	return strings.TrimRight(sb.String(), "\n"), kb.Build()
}

// BuildTimetableScreen формирует экран "내 시간표"
func BuildTimetableScreen(grid *timetable.Grid, credits float64) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString("🗓 <b>내 시간표</b>\n\n")

	if len(grid.Courses) == 0 && len(grid.Stale) == 0 {
		sb.WriteString("아직 담은 강의가 없습니다.\n/courses 또는 /search 로 강의를 찾아보세요.")
		kb := keyboard.NewBuilder().
			Row(keyboard.Button("📚 강의 찾기", callbacktypes.DepartmentsPage+"0")).
			Build()
		return sb.String(), kb
	}

	if table := formatting.FormatGrid(grid); table != "" {
		fmt.Fprintf(&sb, "<pre>%s</pre>\n\n", table)
	}

	for i, c := range grid.Courses {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, html.EscapeString(formatting.FormatCourseLine(c)))
	}
	if len(grid.Untimed) > 0 {
		fmt.Fprintf(&sb, "\n⏳ 시간 미정 강의 %d개는 표에 표시되지 않습니다.\n", len(grid.Untimed))
	}
	if len(grid.Stale) > 0 {
		fmt.Fprintf(&sb, "\n⚠️ 더 이상 개설되지 않은 강의: %s\n", joinKeys(grid.Stale))
	}
	fmt.Fprintf(&sb, "\n🎓 총 <b>%s</b>학점", formatting.FormatCredits(credits))

	kb := keyboard.NewBuilder()
	for _, c := range grid.Courses {
		kb.Row(keyboard.Button(
			formatting.ButtonLabel("➖", c, buttonNameRunes),
			callbacktypes.RemoveCourse+c.Key.String(),
		))
	}
	for _, k := range grid.Stale {
		kb.Row(keyboard.Button("➖ "+k.String(), callbacktypes.RemoveCourse+k.String()))
	}
	kb.Row(
		keyboard.Button("🖼 이미지", callbacktypes.TimetableImage),
		keyboard.Button("📄 CSV", callbacktypes.TimetableExport),
	)
	kb.Row(
		keyboard.Button("📚 강의 추가", callbacktypes.DepartmentsPage+"0"),
		keyboard.Button("🗑 초기화", callbacktypes.ResetAsk),
	)

	return strings.TrimRight(sb.String(), "\n"), kb.Build()
}

// BuildResetConfirmScreen формирует запрос подтверждения сброса
func BuildResetConfirmScreen(count int) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf("🗑 담은 강의 %d개를 모두 지울까요?", count)
	kb := keyboard.NewBuilder().
		AddRows(keyboard.ConfirmCancelButtons(callbacktypes.ResetConfirm, callbacktypes.ViewTimetable)).
		Build()
	return text, kb
}

// MainMenuText текст главного меню
func MainMenuText() string {
	return "📋 <b>메뉴</b>\n\n" +
		"/courses - 학과별 강의 보기\n" +
		"/search - 강의명·교수명 검색\n" +
		"/mytimetable - 내 시간표\n" +
		"/remove N - N번째 강의 빼기\n" +
		"/reset - 시간표 초기화\n" +
		"/help - 도움말"
}

func joinKeys(keys []timetable.CourseKey) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k.String())
	}
	return strings.Join(parts, ", ")
}
