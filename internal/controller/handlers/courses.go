package handlers

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Ограничения поискового запроса
const (
	SearchKeywordMinLength = 1
	SearchKeywordMaxLength = 30
)

// HandleCourses обрабатывает команду /courses - выбор кафедры
func (h *Handlers) HandleCourses(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := h.message(update)
	if msg == nil {
		return
	}

	text, kb := common.BuildDepartmentsScreen(h.timetableService.Departments(), 0)
	h.sendHTML(ctx, b, msg.Chat.ID, text, kb)
}

// HandleSearch обрабатывает команду /search.
// "/search 자료" ищет сразу, просто "/search" запускает диалог.
func (h *Handlers) HandleSearch(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := h.message(update)
	if msg == nil {
		return
	}

	if kw := commandArgs(msg.Text); kw != "" {
		h.search(ctx, b, msg, kw)
		return
	}

	h.stateManager.SetState(msg.From.ID, state.StateSearchKeyword)
	h.sendHTML(ctx, b, msg.Chat.ID,
		"🔎 검색할 강의명이나 교수명을 입력하세요.\n\n취소: /cancel", nil)
}

// handleSearchKeyword обрабатывает ввод ключевого слова в диалоге поиска
func (h *Handlers) handleSearchKeyword(ctx context.Context, b *bot.Bot, msg *models.Message) {
	h.search(ctx, b, msg, msg.Text)
}

func (h *Handlers) search(ctx context.Context, b *bot.Bot, msg *models.Message, keyword string) {
	telegramID := msg.From.ID
	keyword = strings.TrimSpace(keyword)

	n := utf8.RuneCountInString(keyword)
	if n < SearchKeywordMinLength || n > SearchKeywordMaxLength {
		h.sendError(ctx, b, msg.Chat.ID, "❌ 검색어는 1~30자로 입력해 주세요.")
		return
	}

	h.stateManager.SetData(telegramID, state.DataSearchKeyword, keyword)
	h.stateManager.SetState(telegramID, state.StateNone)

	scope := common.SearchScope(keyword)
	available := h.timetableService.Available(telegramID, scope.Filter)
	selected := len(h.timetableService.Sessions().Selection(telegramID))

	h.logger.Info("Course search",
		zap.Int64("telegram_id", telegramID),
		zap.String("keyword", keyword),
		zap.Int("results", len(available)))

	text, kb := common.BuildCoursesScreen(scope, available, 0, selected)
	h.sendHTML(ctx, b, msg.Chat.ID, text, kb)
}
