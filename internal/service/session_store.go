package service

import (
	"sync"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"github.com/google/uuid"
)

// SessionStore хранит сессии пользователей в памяти
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*model.Session // telegramID -> Session
	now      func() time.Time
}

// NewSessionStore создаёт пустое хранилище сессий
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*model.Session),
		now:      time.Now,
	}
}

// Get возвращает копию сессии пользователя
func (s *SessionStore) Get(telegramID int64) (model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[telegramID]
	if !ok {
		return model.Session{}, false
	}
	return sess.Clone(), true
}

// Selection возвращает выбор пользователя; для новой сессии пустой
func (s *SessionStore) Selection(telegramID int64) timetable.Selection {
	sess, ok := s.Get(telegramID)
	if !ok {
		return timetable.Selection{}
	}
	return sess.Selection
}

// Update атомарно применяет fn к выбору пользователя.
// Сессия создаётся при первом обращении. Если fn вернула ошибку,
// выбор не меняется, но LastSeen обновляется.
func (s *SessionStore) Update(telegramID int64, fn func(timetable.Selection) (timetable.Selection, error)) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess, ok := s.sessions[telegramID]
	if !ok {
		sess = &model.Session{
			ID:         uuid.New(),
			TelegramID: telegramID,
			Selection:  timetable.Selection{},
			CreatedAt:  now,
		}
		s.sessions[telegramID] = sess
	}
	sess.LastSeen = now

	next, err := fn(sess.Selection.Clone())
	if err != nil {
		return sess.Clone(), err
	}
	sess.Selection = next.Clone()
	return sess.Clone(), nil
}

// Delete удаляет сессию пользователя
func (s *SessionStore) Delete(telegramID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, telegramID)
}

// Sweep удаляет сессии, неактивные дольше ttl, и возвращает их количество
func (s *SessionStore) Sweep(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.LastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len возвращает количество активных сессий
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
