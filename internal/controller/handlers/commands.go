package handlers

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := h.message(update)
	if msg == nil {
		return
	}

	h.stateManager.ClearState(msg.From.ID)

	cat := h.timetableService.Catalog()
	welcomeText := fmt.Sprintf(
		"👋 안녕하세요, %s님!\n\n"+
			"이번 학기 강의 %d개 중에서 시간이 겹치지 않게 시간표를 짜 드립니다.\n"+
			"담은 강의와 겹치거나 같은 과목인 강의는 목록에서 자동으로 빠집니다.\n\n%s",
		html.EscapeString(msg.From.FirstName),
		cat.Len(),
		common.MainMenuText(),
	)

	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button("📚 강의 찾기", callbacktypes.DepartmentsPage+"0"),
			keyboard.MyTimetableButton(),
		).
		Build()

	h.sendHTML(ctx, b, msg.Chat.ID, welcomeText, kb)

	h.logger.Info("User started bot",
		zap.Int64("telegram_id", msg.From.ID),
		zap.String("username", msg.From.Username))
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := h.message(update)
	if msg == nil {
		return
	}

	helpText := "❓ <b>도움말</b>\n\n" +
		"1. /courses 에서 학과를 고르거나 /search 로 강의를 검색합니다.\n" +
		"2. ➕ 버튼으로 강의를 담으면 목록이 다시 계산됩니다.\n" +
		"3. /mytimetable 에서 시간표를 확인하고 이미지나 CSV로 받을 수 있습니다.\n\n" +
		"같은 과목의 다른 분반은 하나만 담을 수 있고, 시간이 하루라도 겹치면 담을 수 없습니다.\n" +
		"시간이 정해지지 않은 강의는 언제든 담을 수 있습니다.\n\n" +
		common.MainMenuText()

	h.sendHTML(ctx, b, msg.Chat.ID, helpText, nil)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := h.message(update)
	if msg == nil {
		return
	}

	telegramID := msg.From.ID
	if h.stateManager.GetState(telegramID) == state.StateNone {
		h.sendHTML(ctx, b, msg.Chat.ID, "❌ 취소할 작업이 없습니다.", nil)
		return
	}

	h.stateManager.SetState(telegramID, state.StateNone)
	h.sendHTML(ctx, b, msg.Chat.ID, "✅ 취소했습니다.\n\n/help 로 명령어를 확인하세요.", nil)
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := h.message(update)
	if msg == nil || msg.Text == "" {
		return
	}

	// Игнорируем команды (они обрабатываются другими handlers)
	if strings.HasPrefix(msg.Text, "/") {
		return
	}

	telegramID := msg.From.ID
	currentState := h.stateManager.GetState(telegramID)

	switch currentState {
	case state.StateNone:
		h.logger.Debug("No active state, ignoring message",
			zap.Int64("telegram_id", telegramID))
	case state.StateSearchKeyword:
		h.handleSearchKeyword(ctx, b, msg)
	default:
		h.logger.Warn("Unknown state", zap.String("state", string(currentState)))
	}
}
