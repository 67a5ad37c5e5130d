package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/timetable_bot/internal/app"
	"github.com/Freeeeeet/timetable_bot/internal/catalog"
	"github.com/Freeeeeet/timetable_bot/internal/config"
	"github.com/Freeeeeet/timetable_bot/internal/controller"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/repository"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment, cfg.LogLevel)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Sugar().Infow("Starting timetable bot",
		"catalog_source", cfg.CatalogSource,
		"token_length", len(cfg.TelegramToken))

	source, closeSource, err := openSource(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open catalog source", zap.Error(err))
	}
	defer closeSource()

	cat, err := catalog.Load(ctx, source, logger)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}

	timetableService := service.NewTimetableService(cat, service.NewSessionStore(), logger)

	renderer, err := common.NewTimetableRenderer(cfg.FontPath)
	if err != nil {
		logger.Fatal("Failed to load font", zap.String("font_path", cfg.FontPath), zap.Error(err))
	}
	if cfg.FontPath == "" {
		logger.Warn("FONT_PATH is not set, timetable images will not show Hangul")
	}

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(b, timetableService, renderer, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Warn("Failed to register bot commands menu", zap.Error(err))
	}

	scheduler := app.NewScheduler(timetableService, source, app.SchedulerConfig{
		SessionTTL:     cfg.SessionTTL,
		SweepInterval:  cfg.SweepInterval,
		ReloadInterval: cfg.ReloadInterval,
	}, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	botController.Start(ctx)
	logger.Info("Bot stopped")
}

// openSource возвращает источник каталога по конфигурации.
// Для Postgres применяет миграции; закрытие пула - через возвращаемую функцию.
func openSource(ctx context.Context, cfg *config.Config, logger *zap.Logger) (catalog.Source, func(), error) {
	if !cfg.UsesDatabase() {
		src, err := catalog.OpenSource(cfg.CatalogSource, cfg.CatalogPath, cfg.CatalogMajorSheet, cfg.CatalogGeneralSheet)
		return src, func() {}, err
	}

	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return repository.NewCourseRepository(pool, logger), pool.Close, nil
}
