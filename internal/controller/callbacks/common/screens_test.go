package common

import (
	"strings"
	"testing"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Telegram rejects callback data longer than 64 bytes.
func assertCallbackData(t *testing.T, kb *models.InlineKeyboardMarkup) {
	t.Helper()
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			assert.LessOrEqual(t, len(btn.CallbackData), 64, btn.CallbackData)
			assert.NotEmpty(t, btn.CallbackData, btn.Text)
		}
	}
}

func TestBuildDepartmentsScreen(t *testing.T) {
	deps := make([]string, 23)
	for i := range deps {
		deps[i] = strings.Repeat("학", 30)
	}

	_, kb := BuildDepartmentsScreen(deps, 1)
	assertCallbackData(t, kb)

	first := kb.InlineKeyboard[0][0]
	assert.Equal(t, callbacktypes.SelectScope+callbacktypes.ScopeAll, first.CallbackData)
	assert.Equal(t, "scope:"+DepartmentToken(10, deps[10]), kb.InlineKeyboard[1][0].CallbackData)
	assert.Regexp(t, `^scope:d10\.[0-9a-f]{4}$`, kb.InlineKeyboard[1][0].CallbackData)
}

func TestBuildCoursesScreen(t *testing.T) {
	var rows []timetable.Row
	for i := 0; i < 8; i++ {
		rows = append(rows, timetable.Row{Code: 9_000_000_000 + int64(i), Section: 12, Name: strings.Repeat("강", 40), Credits: 3})
	}
	courses := timetable.BuildCatalog(rows).Courses()

	scope := Scope{Token: "d123", Title: "<학과>"}
	text, kb := BuildCoursesScreen(scope, courses, 1, 2)
	assertCallbackData(t, kb)

	assert.Contains(t, text, "&lt;학과&gt;")
	assert.Contains(t, text, "담을 수 있는 강의 8개")
	assert.Contains(t, text, "<b>7. ")
	assert.Equal(t, "add:9000000006-12:d123:1", kb.InlineKeyboard[0][0].CallbackData)
}

func TestBuildCoursesScreen_Empty(t *testing.T) {
	text, kb := BuildCoursesScreen(SearchScope("없는강의"), nil, 0, 0)
	assertCallbackData(t, kb)
	assert.Contains(t, text, "조건에 맞는 강의가 없습니다")
}

func TestBuildTimetableScreen(t *testing.T) {
	cat := timetable.BuildCatalog([]timetable.Row{
		{Code: 100, Section: 1, Credits: 3, TimeText: "월1,2", Name: "자료구조"},
		{Code: 300, Section: 1, Credits: 1.5, Name: "채플"},
	})

	empty, kb := BuildTimetableScreen(timetable.BuildGrid(cat, nil), 0)
	assert.Contains(t, empty, "아직 담은 강의가 없습니다")
	assertCallbackData(t, kb)

	sel := timetable.Selection{{Code: 100, Section: 1}, {Code: 300, Section: 1}, {Code: 5, Section: 1}}
	text, kb := BuildTimetableScreen(timetable.BuildGrid(cat, sel), 4.5)
	assertCallbackData(t, kb)

	assert.Contains(t, text, "<pre>")
	assert.Contains(t, text, "1. 자료구조 (100-1)")
	assert.Contains(t, text, "시간 미정 강의 1개")
	assert.Contains(t, text, "5-1")
	assert.Contains(t, text, "<b>4.5</b>학점")

	require.GreaterOrEqual(t, len(kb.InlineKeyboard), 3)
	assert.Equal(t, "remove:100-1", kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "remove:300-1", kb.InlineKeyboard[1][0].CallbackData)
	assert.Equal(t, "remove:5-1", kb.InlineKeyboard[2][0].CallbackData)
}

func TestDepartmentScope(t *testing.T) {
	deps := []string{"경영학과", "컴퓨터공학과"}

	scope, err := DepartmentScope(deps, 1)
	require.NoError(t, err)
	assert.Equal(t, DepartmentToken(1, "컴퓨터공학과"), scope.Token)
	assert.Equal(t, "컴퓨터공학과", scope.Filter.Department)

	_, err = DepartmentScope(deps, 2)
	assert.ErrorIs(t, err, ErrUnknownScope)
}

func TestParseDepartmentScope(t *testing.T) {
	before := []string{"경영학과", "컴퓨터공학과"}
	token := DepartmentToken(1, "컴퓨터공학과")

	scope, err := ParseDepartmentScope(before, token)
	require.NoError(t, err)
	assert.Equal(t, "컴퓨터공학과", scope.Title)

	// a reload inserted a department before the old one
	after := []string{"경영학과", "기계공학과", "컴퓨터공학과"}
	_, err = ParseDepartmentScope(after, token)
	assert.ErrorIs(t, err, ErrUnknownScope)

	_, err = ParseDepartmentScope([]string{"경영학과"}, token)
	assert.ErrorIs(t, err, ErrUnknownScope)

	_, err = ParseDepartmentScope(before, "d1")
	assert.ErrorIs(t, err, ErrInvalidFormat)
	_, err = ParseDepartmentScope(before, "dx.0000")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
