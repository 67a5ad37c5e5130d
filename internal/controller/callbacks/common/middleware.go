package common

import (
	"context"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// WithMessage создаёт HandlerContext и проверяет, что у callback есть сообщение.
// При ошибке автоматически отвечает пользователю.
func WithMessage(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	handler func(*HandlerContext),
) {
	hc := NewHandlerContext(ctx, b, callback, h)

	if hc.Message == nil {
		h.Logger.Warn("Callback without accessible message",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.String("data", callback.Data))
		hc.AnswerAlert(ErrorMessage(ErrNoMessage))
		return
	}

	handler(hc)
}

// HandleError обрабатывает ошибку и отправляет ответ пользователю
func HandleError(hc *HandlerContext, err error, operation string) {
	hc.Handler.Logger.Error("Operation failed",
		zap.String("operation", operation),
		zap.Int64("telegram_id", hc.TelegramID),
		zap.Error(err))
	hc.AnswerAlert(ErrorMessage(err))
}

// HandleRejection сообщает об отказе в изменении выбора; это не ошибка сервера
func HandleRejection(hc *HandlerContext, err error, operation string) {
	hc.Handler.Logger.Info("Selection change rejected",
		zap.String("operation", operation),
		zap.Int64("telegram_id", hc.TelegramID),
		zap.Error(err))
	hc.AnswerAlert(ErrorMessage(err))
}
