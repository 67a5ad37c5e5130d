package service

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/Freeeeeet/timetable_bot/internal/catalog"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"go.uber.org/zap"
)

// Filter сужает список доступных курсов
type Filter struct {
	Department string
	Keyword    string
}

func (f Filter) predicates() []timetable.Predicate {
	var preds []timetable.Predicate
	if f.Department != "" {
		preds = append(preds, timetable.InDepartment(f.Department))
	}
	if f.Keyword != "" {
		preds = append(preds, timetable.MatchesKeyword(f.Keyword))
	}
	return preds
}

// TimetableService связывает каталог курсов с выбором пользователей
type TimetableService struct {
	catalog  atomic.Pointer[timetable.Catalog]
	sessions *SessionStore
	logger   *zap.Logger
}

func NewTimetableService(cat *timetable.Catalog, sessions *SessionStore, logger *zap.Logger) *TimetableService {
	s := &TimetableService{
		sessions: sessions,
		logger:   logger,
	}
	s.catalog.Store(cat)
	return s
}

// Catalog возвращает текущий каталог
func (s *TimetableService) Catalog() *timetable.Catalog {
	return s.catalog.Load()
}

// Sessions возвращает хранилище сессий
func (s *TimetableService) Sessions() *SessionStore {
	return s.sessions
}

// Reload загружает каталог заново и подменяет текущий.
// При ошибке остаётся прежний каталог.
func (s *TimetableService) Reload(ctx context.Context, src catalog.Source) error {
	cat, err := catalog.Load(ctx, src, s.logger)
	if err != nil {
		s.logger.Error("Failed to reload catalog", zap.Error(err))
		return fmt.Errorf("reload catalog: %w", err)
	}

	prev := s.catalog.Swap(cat)
	prevLen := 0
	if prev != nil {
		prevLen = prev.Len()
	}

	s.logger.Info("Catalog reloaded",
		zap.Int("courses", cat.Len()),
		zap.Int("previous_courses", prevLen),
	)
	return nil
}

// Departments возвращает отсортированный список кафедр
func (s *TimetableService) Departments() []string {
	return s.Catalog().Departments()
}

// Course ищет курс по ключу
func (s *TimetableService) Course(key timetable.CourseKey) (*timetable.Course, error) {
	course, ok := s.Catalog().Lookup(key)
	if !ok {
		return nil, &timetable.SelectionError{Kind: timetable.ErrNotFound, Key: key}
	}
	return course, nil
}

// Available возвращает курсы, которые пользователь может добавить
func (s *TimetableService) Available(telegramID int64, filter Filter) []*timetable.Course {
	sel := s.sessions.Selection(telegramID)
	return timetable.Available(s.Catalog(), sel, filter.predicates()...)
}

// AddCourse добавляет курс в выбор пользователя
func (s *TimetableService) AddCourse(telegramID int64, key timetable.CourseKey) (*timetable.Course, error) {
	cat := s.Catalog()

	sess, err := s.sessions.Update(telegramID, func(sel timetable.Selection) (timetable.Selection, error) {
		return timetable.TryAdd(sel, cat, key)
	})
	if err != nil {
		s.logger.Info("Course rejected",
			zap.Int64("telegram_id", telegramID),
			zap.Stringer("session_id", sess.ID),
			zap.String("course_key", key.String()),
			zap.Error(err),
		)
		return nil, err
	}

	course, _ := cat.Lookup(key)

	s.logger.Info("Course added",
		zap.Int64("telegram_id", telegramID),
		zap.Stringer("session_id", sess.ID),
		zap.String("course_key", key.String()),
		zap.String("course_name", course.Name),
	)

	return course, nil
}

// RemoveCourse удаляет курс из выбора пользователя
func (s *TimetableService) RemoveCourse(telegramID int64, key timetable.CourseKey) error {
	sess, err := s.sessions.Update(telegramID, func(sel timetable.Selection) (timetable.Selection, error) {
		return timetable.Remove(sel, key)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Course removed",
		zap.Int64("telegram_id", telegramID),
		zap.Stringer("session_id", sess.ID),
		zap.String("course_key", key.String()),
	)
	return nil
}

// RemoveAt удаляет курс по позиции в выборе и возвращает его ключ
func (s *TimetableService) RemoveAt(telegramID int64, index int) (timetable.CourseKey, error) {
	var removed timetable.CourseKey
	sess, err := s.sessions.Update(telegramID, func(sel timetable.Selection) (timetable.Selection, error) {
		if index >= 0 && index < len(sel) {
			removed = sel[index]
		}
		return timetable.RemoveAt(sel, index)
	})
	if err != nil {
		return timetable.CourseKey{}, err
	}

	s.logger.Info("Course removed by index",
		zap.Int64("telegram_id", telegramID),
		zap.Stringer("session_id", sess.ID),
		zap.Int("index", index),
		zap.String("course_key", removed.String()),
	)
	return removed, nil
}

// Reset очищает выбор пользователя
func (s *TimetableService) Reset(telegramID int64) {
	sess, _ := s.sessions.Update(telegramID, func(timetable.Selection) (timetable.Selection, error) {
		return timetable.Reset(), nil
	})

	s.logger.Info("Selection reset",
		zap.Int64("telegram_id", telegramID),
		zap.Stringer("session_id", sess.ID),
	)
}

// Selected возвращает выбранные курсы в порядке добавления.
// Ключи, которых больше нет в каталоге, возвращаются ошибкой ErrStaleReference.
func (s *TimetableService) Selected(telegramID int64) ([]*timetable.Course, error) {
	courses, stale := s.Catalog().Resolve(s.sessions.Selection(telegramID))
	if len(stale) > 0 {
		return courses, staleError(stale)
	}
	return courses, nil
}

// PruneStale убирает из выбора ключи, отсутствующие в каталоге
func (s *TimetableService) PruneStale(telegramID int64) []timetable.CourseKey {
	cat := s.Catalog()

	var pruned []timetable.CourseKey
	sess, _ := s.sessions.Update(telegramID, func(sel timetable.Selection) (timetable.Selection, error) {
		kept := make(timetable.Selection, 0, len(sel))
		for _, k := range sel {
			if _, ok := cat.Lookup(k); ok {
				kept = append(kept, k)
				continue
			}
			pruned = append(pruned, k)
		}
		return kept, nil
	})

	if len(pruned) > 0 {
		s.logger.Warn("Stale selections pruned",
			zap.Int64("telegram_id", telegramID),
			zap.Stringer("session_id", sess.ID),
			zap.Stringers("course_keys", pruned),
		)
	}
	return pruned
}

// TotalCredits возвращает сумму кредитов выбранных курсов
func (s *TimetableService) TotalCredits(telegramID int64) float64 {
	return timetable.TotalCredits(s.Catalog(), s.sessions.Selection(telegramID))
}

// Grid раскладывает выбор пользователя по сетке дней и пар
func (s *TimetableService) Grid(telegramID int64) *timetable.Grid {
	return timetable.BuildGrid(s.Catalog(), s.sessions.Selection(telegramID))
}

// Session возвращает сессию пользователя, создавая её при необходимости
func (s *TimetableService) Session(telegramID int64) model.Session {
	sess, _ := s.sessions.Update(telegramID, func(sel timetable.Selection) (timetable.Selection, error) {
		return sel, nil
	})
	return sess
}

// FileName возвращает имя файла выгрузки для сессии пользователя
func (s *TimetableService) FileName(telegramID int64, ext string) string {
	sess := s.Session(telegramID)
	return sess.FileName(ext)
}

// ExportCSV пишет выбранные курсы в w в формате каталога и возвращает имя файла
func (s *TimetableService) ExportCSV(telegramID int64, w io.Writer) (string, error) {
	sess := s.Session(telegramID)
	courses, _ := s.Catalog().Resolve(sess.Selection)
	if err := catalog.WriteCSV(w, courses); err != nil {
		return "", fmt.Errorf("export selection: %w", err)
	}

	s.logger.Info("Selection exported",
		zap.Int64("telegram_id", telegramID),
		zap.Stringer("session_id", sess.ID),
		zap.Int("courses", len(courses)),
	)
	return sess.FileName("csv"), nil
}

func staleError(keys []timetable.CourseKey) error {
	return fmt.Errorf("%w: %v", timetable.ErrStaleReference, keys)
}
