package courses

import (
	"context"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleDepartmentsPage показывает страницу списка кафедр
func HandleDepartmentsPage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithMessage(ctx, b, callback, h, func(hc *common.HandlerContext) {
		page, err := common.ParseIntArg(common.CallbackArgs(callback.Data, callbacktypes.DepartmentsPage), 0)
		if err != nil {
			common.HandleError(hc, err, "departments_page")
			return
		}

		text, kb := common.BuildDepartmentsScreen(hc.Service().Departments(), page)
		if err := hc.EditMessage(text, kb); err != nil {
			common.HandleError(hc, err, "departments_page")
			return
		}
		hc.Answer("")
	})
}

// HandleSelectScope открывает первую страницу курсов выбранной области
func HandleSelectScope(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithMessage(ctx, b, callback, h, func(hc *common.HandlerContext) {
		token := callback.Data[len(callbacktypes.SelectScope):]
		showCourses(hc, token, 0, "")
	})
}

// HandleCoursesPage показывает страницу курсов
func HandleCoursesPage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithMessage(ctx, b, callback, h, func(hc *common.HandlerContext) {
		args := common.CallbackArgs(callback.Data, callbacktypes.CoursesPage)
		page, err := common.ParseIntArg(args, 1)
		if err != nil {
			common.HandleError(hc, err, "courses_page")
			return
		}
		showCourses(hc, args[0], page, "")
	})
}

// showCourses перерисовывает список доступных курсов и отвечает на callback
func showCourses(hc *common.HandlerContext, token string, page int, answer string) {
	scope, err := common.ResolveScope(hc, token)
	if err != nil {
		common.HandleError(hc, err, "resolve_scope")
		return
	}

	svc := hc.Service()
	available := svc.Available(hc.TelegramID, scope.Filter)
	selected := len(svc.Sessions().Selection(hc.TelegramID))

	hc.Handler.Logger.Debug("Showing available courses",
		zap.Int64("telegram_id", hc.TelegramID),
		zap.String("scope", scope.Token),
		zap.Int("page", page),
		zap.Int("available", len(available)))

	text, kb := common.BuildCoursesScreen(scope, available, page, selected)
	if err := hc.EditMessage(text, kb); err != nil {
		common.HandleError(hc, err, "show_courses")
		return
	}
	hc.Answer(answer)
}
