package handlers

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strconv"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleMyTimetable обрабатывает команду /mytimetable
func (h *Handlers) HandleMyTimetable(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := h.message(update)
	if msg == nil {
		return
	}
	h.sendTimetable(ctx, b, msg.Chat.ID, msg.From.ID)
}

func (h *Handlers) sendTimetable(ctx context.Context, b *bot.Bot, chatID, telegramID int64) {
	if _, err := h.timetableService.Selected(telegramID); errors.Is(err, timetable.ErrStaleReference) {
		h.logger.Warn("Selection has stale courses",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
	}

	grid := h.timetableService.Grid(telegramID)
	text, kb := common.BuildTimetableScreen(grid, h.timetableService.TotalCredits(telegramID))
	h.sendHTML(ctx, b, chatID, text, kb)
}

// HandleReset обрабатывает команду /reset - спрашивает подтверждение
func (h *Handlers) HandleReset(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := h.message(update)
	if msg == nil {
		return
	}

	count := len(h.timetableService.Sessions().Selection(msg.From.ID))
	if count == 0 {
		h.sendHTML(ctx, b, msg.Chat.ID, "시간표가 이미 비어 있습니다.", nil)
		return
	}

	text, kb := common.BuildResetConfirmScreen(count)
	h.sendHTML(ctx, b, msg.Chat.ID, text, kb)
}

// HandleRemove обрабатывает команду "/remove N" - удаление N-го курса (с 1)
func (h *Handlers) HandleRemove(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := h.message(update)
	if msg == nil {
		return
	}

	n, err := strconv.Atoi(commandArgs(msg.Text))
	if err != nil {
		h.sendError(ctx, b, msg.Chat.ID, "❌ 사용법: /remove N (N은 내 시간표의 번호)")
		return
	}

	telegramID := msg.From.ID
	// Номера на экране не учитывают устаревшие ключи
	h.timetableService.PruneStale(telegramID)

	key, err := h.timetableService.RemoveAt(telegramID, n-1)
	if err != nil {
		h.logger.Info("Remove by index rejected",
			zap.Int64("telegram_id", telegramID),
			zap.Int("n", n),
			zap.Error(err))
		h.sendError(ctx, b, msg.Chat.ID, fmt.Sprintf("❌ %d번 강의가 없습니다. /mytimetable 에서 번호를 확인하세요.", n))
		return
	}

	name := key.String()
	if c, err := h.timetableService.Course(key); err == nil {
		name = c.Name
	}
	h.sendHTML(ctx, b, msg.Chat.ID, fmt.Sprintf("➖ %s 뺐습니다.", html.EscapeString(name)), nil)
	h.sendTimetable(ctx, b, msg.Chat.ID, telegramID)
}
