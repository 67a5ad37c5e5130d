package courses

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandleAddCourse добавляет курс и обновляет список, из которого он выбран.
// Список пересчитывается, поэтому конфликтующие курсы из него пропадают.
func HandleAddCourse(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithMessage(ctx, b, callback, h, func(hc *common.HandlerContext) {
		args := common.CallbackArgs(callback.Data, callbacktypes.AddCourse)
		key, err := common.ParseKeyArg(args, 0)
		if err != nil {
			common.HandleError(hc, err, "add_course")
			return
		}
		page, err := common.ParseIntArg(args, 2)
		if err != nil {
			common.HandleError(hc, err, "add_course")
			return
		}

		course, err := hc.Service().AddCourse(hc.TelegramID, key)
		if err != nil {
			common.HandleRejection(hc, err, "add_course")
			// Список мог устареть: перерисовываем без повторного ответа
			refresh(hc, args[1], page)
			return
		}

		showCourses(hc, args[1], page, fmt.Sprintf("✅ %s 담기 완료", course.Name))
	})
}

// refresh перерисовывает список, не отвечая на callback
func refresh(hc *common.HandlerContext, token string, page int) {
	scope, err := common.ResolveScope(hc, token)
	if err != nil {
		return
	}
	available := hc.Service().Available(hc.TelegramID, scope.Filter)
	selected := len(hc.Service().Sessions().Selection(hc.TelegramID))
	text, kb := common.BuildCoursesScreen(scope, available, page, selected)
	hc.EditMessage(text, kb)
}
