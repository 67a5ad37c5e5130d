package service

import (
	"context"
	"testing"

	"github.com/Freeeeeet/timetable_bot/internal/catalog"
	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"go.uber.org/zap"
)

func key(code int64, section int) timetable.CourseKey {
	return timetable.CourseKey{Code: code, Section: section}
}

func testCatalog() *timetable.Catalog {
	return timetable.BuildCatalog([]timetable.Row{
		{Code: 100, Section: 1, Credits: 3, TimeText: "월1,2[공301]", Name: "자료구조", Department: "컴퓨터공학과"},
		{Code: 100, Section: 2, Credits: 3, TimeText: "화1,2[공302]", Name: "자료구조", Department: "컴퓨터공학과"},
		{Code: 200, Section: 1, Credits: 3, TimeText: "월2,3", Name: "선형대수", Department: "수학과"},
		{Code: 300, Section: 1, Credits: 2, TimeText: "", Name: "채플", Department: "교양"},
	})
}

func newTestService(t *testing.T) *TimetableService {
	t.Helper()
	return NewTimetableService(testCatalog(), NewSessionStore(), zap.NewNop())
}

type sliceSource []catalog.Row

func (s sliceSource) Load(context.Context) ([]catalog.Row, error) {
	return s, nil
}
