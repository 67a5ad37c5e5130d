package callbacktypes

import (
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"go.uber.org/zap"
)

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

// StateManager интерфейс для управления состоянием пользователей
type StateManager interface {
	ClearState(telegramID int64)
	GetState(telegramID int64) UserState
	SetState(telegramID int64, state UserState)
	SetData(telegramID int64, key string, value interface{})
	GetString(telegramID int64, key string) (string, bool)
}

// ImageRenderer рисует сетку расписания в PNG
type ImageRenderer interface {
	Render(grid *timetable.Grid) ([]byte, error)
}

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	TimetableService *service.TimetableService
	StateManager     StateManager
	Renderer         ImageRenderer
	Logger           *zap.Logger
}
