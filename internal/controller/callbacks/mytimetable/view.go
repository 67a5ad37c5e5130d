package mytimetable

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleView показывает расписание пользователя в текущем сообщении
func HandleView(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithMessage(ctx, b, callback, h, func(hc *common.HandlerContext) {
		if err := render(hc); err != nil {
			common.HandleError(hc, err, "view_timetable")
			return
		}
		hc.Answer("")
	})
}

// HandleRemove убирает курс из расписания
func HandleRemove(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithMessage(ctx, b, callback, h, func(hc *common.HandlerContext) {
		key, err := common.ParseKeyArg(common.CallbackArgs(callback.Data, callbacktypes.RemoveCourse), 0)
		if err != nil {
			common.HandleError(hc, err, "remove_course")
			return
		}

		name := key.String()
		if c, err := hc.Service().Course(key); err == nil {
			name = c.Name
		}

		if err := hc.Service().RemoveCourse(hc.TelegramID, key); err != nil {
			// Повторное нажатие на уже удалённый курс
			if errors.Is(err, timetable.ErrNotFound) {
				render(hc)
			}
			common.HandleRejection(hc, err, "remove_course")
			return
		}

		if err := render(hc); err != nil {
			common.HandleError(hc, err, "remove_course")
			return
		}
		hc.Answer(fmt.Sprintf("➖ %s 뺐습니다", name))
	})
}

// HandleImage отправляет расписание картинкой
func HandleImage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithMessage(ctx, b, callback, h, func(hc *common.HandlerContext) {
		svc := hc.Service()
		grid := svc.Grid(hc.TelegramID)
		if len(grid.Courses) == 0 {
			hc.AnswerAlert("아직 담은 강의가 없습니다")
			return
		}

		imageData, err := h.Renderer.Render(grid)
		if err != nil {
			common.HandleError(hc, fmt.Errorf("%w: %v", common.ErrRenderingFailed, err), "timetable_image")
			return
		}

		caption := fmt.Sprintf("🗓 내 시간표 · 총 %s학점", formatting.FormatCredits(svc.TotalCredits(hc.TelegramID)))
		if err := hc.SendPhoto(svc.FileName(hc.TelegramID, "png"), imageData, caption); err != nil {
			common.HandleError(hc, err, "timetable_image")
			return
		}

		h.Logger.Info("Timetable image sent",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Int("bytes", len(imageData)))
		hc.Answer("")
	})
}

// HandleExport отправляет выбранные курсы CSV-файлом в формате каталога
func HandleExport(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithMessage(ctx, b, callback, h, func(hc *common.HandlerContext) {
		var buf bytes.Buffer
		fileName, err := hc.Service().ExportCSV(hc.TelegramID, &buf)
		if err != nil {
			common.HandleError(hc, err, "timetable_export")
			return
		}

		if err := hc.SendDocument(fileName, buf.Bytes(), "📄 내 시간표 CSV"); err != nil {
			common.HandleError(hc, err, "timetable_export")
			return
		}
		hc.Answer("")
	})
}

// HandleResetAsk запрашивает подтверждение сброса
func HandleResetAsk(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithMessage(ctx, b, callback, h, func(hc *common.HandlerContext) {
		count := len(hc.Service().Sessions().Selection(hc.TelegramID))
		if count == 0 {
			hc.Answer("시간표가 이미 비어 있습니다")
			return
		}

		text, kb := common.BuildResetConfirmScreen(count)
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "reset_ask")
			return
		}
		hc.Answer("")
	})
}

// HandleResetConfirm очищает расписание
func HandleResetConfirm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithMessage(ctx, b, callback, h, func(hc *common.HandlerContext) {
		hc.Service().Reset(hc.TelegramID)

		if err := render(hc); err != nil {
			common.HandleError(hc, err, "reset_confirm")
			return
		}
		hc.Answer("🗑 초기화했습니다")
	})
}

// render перерисовывает экран расписания в сообщении callback
func render(hc *common.HandlerContext) error {
	svc := hc.Service()
	text, kb := common.BuildTimetableScreen(svc.Grid(hc.TelegramID), svc.TotalCredits(hc.TelegramID))
	return hc.EditMessage(text, kb)
}
