package controller

import (
	"context"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/timetable_bot/internal/controller/handlers"
	"github.com/Freeeeeet/timetable_bot/internal/controller/state"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	timetableService *service.TimetableService,
	renderer callbacktypes.ImageRenderer,
	logger *zap.Logger,
) *BotController {
	// Создаём менеджер состояний
	stateManager := state.NewManager()

	// Создаём обработчики команд
	cmdHandlers := handlers.NewHandlers(
		timetableService,
		stateManager,
		logger,
	)

	// Создаём callback handler с зависимостями
	callbackHandler := callbacks.NewHandler(
		timetableService,
		state.NewAdapter(stateManager),
		renderer,
		logger,
	)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/courses", bot.MatchTypeExact, c.handlers.HandleCourses)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/search", bot.MatchTypePrefix, c.handlers.HandleSearch)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/mytimetable", bot.MatchTypeExact, c.handlers.HandleMyTimetable)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/remove", bot.MatchTypePrefix, c.handlers.HandleRemove)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/reset", bot.MatchTypeExact, c.handlers.HandleReset)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Обработчик текстовых сообщений (для диалогов с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 시작하기"},
		{Command: "courses", Description: "📚 학과별 강의 보기"},
		{Command: "search", Description: "🔎 강의 검색"},
		{Command: "mytimetable", Description: "🗓 내 시간표"},
		{Command: "reset", Description: "🗑 시간표 초기화"},
		{Command: "help", Description: "❓ 도움말"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
