package common

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Helper functions для всех callback handlers

// AnswerCallback отвечает на callback query (без alert)
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert отвечает на callback query с alert (всплывающее окно)
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback извлекает сообщение из callback query
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// CallbackArgs возвращает части callback data после префикса.
// Например: "courses_page:d3:2" -> ["d3", "2"]
func CallbackArgs(data, prefix string) []string {
	rest := strings.TrimPrefix(data, prefix)
	if rest == "" {
		return nil
	}
	return strings.Split(rest, ":")
}

// ParseIntArg разбирает i-й аргумент callback data как число
func ParseIntArg(args []string, i int) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("%w: missing argument %d", ErrInvalidFormat, i)
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return n, nil
}

// ParseKeyArg разбирает i-й аргумент callback data как ключ курса
func ParseKeyArg(args []string, i int) (timetable.CourseKey, error) {
	if i >= len(args) {
		return timetable.CourseKey{}, fmt.Errorf("%w: missing course key", ErrInvalidFormat)
	}
	key, err := timetable.ParseCourseKey(args[i])
	if err != nil {
		return timetable.CourseKey{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return key, nil
}

// IsMessageNotModifiedError проверяет ошибку Telegram "message is not modified"
func IsMessageNotModifiedError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
