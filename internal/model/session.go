package model

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"github.com/google/uuid"
)

// Session хранит выбор курсов одного пользователя Telegram
type Session struct {
	ID         uuid.UUID           `json:"id"`
	TelegramID int64               `json:"telegram_id"`
	Selection  timetable.Selection `json:"selection"`
	CreatedAt  time.Time           `json:"created_at"`
	LastSeen   time.Time           `json:"last_seen"`
}

// Clone возвращает копию сессии, не разделяющую Selection
func (s *Session) Clone() Session {
	out := *s
	out.Selection = s.Selection.Clone()
	return out
}

// FileName возвращает имя файла выгрузки с префиксом ID сессии, например timetable-1a2b3c4d.csv
func (s *Session) FileName(ext string) string {
	return fmt.Sprintf("timetable-%s.%s", s.ID.String()[:8], ext)
}
