package handlers

import (
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// message возвращает текстовое сообщение пользователя или nil для прочих обновлений
func (h *Handlers) message(update *models.Update) *models.Message {
	if update.Message == nil || update.Message.From == nil {
		return nil
	}

	h.logger.Debug("Message received",
		zap.Int64("telegram_id", update.Message.From.ID),
		zap.String("text", update.Message.Text))

	return update.Message
}
