package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/courses"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/mytimetable"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Route распределяет callback query по соответствующим обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID),
		zap.String("user_name", callback.From.FirstName))

	switch {
	// ===== Common Navigation =====
	case data == callbacktypes.Noop:
		common.AnswerCallback(ctx, b, callback.ID, "")
	case data == callbacktypes.BackToMain:
		common.HandleBackToMain(ctx, b, callback, h)

	// ===== Course browsing =====
	case strings.HasPrefix(data, callbacktypes.DepartmentsPage):
		courses.HandleDepartmentsPage(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.SelectScope):
		courses.HandleSelectScope(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.CoursesPage):
		courses.HandleCoursesPage(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.AddCourse):
		courses.HandleAddCourse(ctx, b, callback, h)

	// ===== My timetable =====
	case data == callbacktypes.ViewTimetable:
		mytimetable.HandleView(ctx, b, callback, h)
	case strings.HasPrefix(data, callbacktypes.RemoveCourse):
		mytimetable.HandleRemove(ctx, b, callback, h)
	case data == callbacktypes.TimetableImage:
		mytimetable.HandleImage(ctx, b, callback, h)
	case data == callbacktypes.TimetableExport:
		mytimetable.HandleExport(ctx, b, callback, h)
	case data == callbacktypes.ResetAsk:
		mytimetable.HandleResetAsk(ctx, b, callback, h)
	case data == callbacktypes.ResetConfirm:
		mytimetable.HandleResetConfirm(ctx, b, callback, h)

	default:
		h.Logger.Warn("Unknown callback data",
			zap.String("data", data),
			zap.Int64("user_id", callback.From.ID))
		common.AnswerCallback(ctx, b, callback.ID, "❓ 알 수 없는 요청")
	}
}
