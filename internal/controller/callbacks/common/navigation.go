package common

import (
	"context"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/keyboard"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// ========================
// Common Navigation Handlers
// ========================

// HandleBackToMain возвращает пользователя к главному меню
func HandleBackToMain(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	WithMessage(ctx, b, callback, h, func(hc *HandlerContext) {
		h.StateManager.SetState(hc.TelegramID, "")

		kb := keyboard.NewBuilder().
			Row(
				keyboard.Button("📚 강의 찾기", callbacktypes.DepartmentsPage+"0"),
				keyboard.MyTimetableButton(),
			).
			Build()

		if err := hc.EditMessage(MainMenuText(), kb); err != nil {
			HandleError(hc, err, "back_to_main")
			return
		}
		hc.Answer("")
	})
}
