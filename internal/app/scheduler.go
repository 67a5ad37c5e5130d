package app

import (
	"context"
	"sync"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/catalog"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"go.uber.org/zap"
)

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	timetableService *service.TimetableService
	source           catalog.Source
	sessionTTL       time.Duration
	sweepInterval    time.Duration
	reloadInterval   time.Duration
	logger           *zap.Logger
	stopChan         chan struct{}
	stopOnce         sync.Once
	wg               sync.WaitGroup
}

// SchedulerConfig параметры фоновых задач
type SchedulerConfig struct {
	SessionTTL     time.Duration
	SweepInterval  time.Duration
	ReloadInterval time.Duration // 0 отключает перезагрузку каталога
}

// NewScheduler создаёт новый планировщик
func NewScheduler(timetableService *service.TimetableService, source catalog.Source, cfg SchedulerConfig, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		timetableService: timetableService,
		source:           source,
		sessionTTL:       cfg.SessionTTL,
		sweepInterval:    cfg.SweepInterval,
		reloadInterval:   cfg.ReloadInterval,
		logger:           logger,
		stopChan:         make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler",
		zap.Duration("session_ttl", s.sessionTTL),
		zap.Duration("sweep_interval", s.sweepInterval),
		zap.Duration("reload_interval", s.reloadInterval))

	if s.sweepInterval > 0 {
		s.run(ctx, "session sweep", s.sweepInterval, s.sweepSessions)
	}
	if s.reloadInterval > 0 && s.source != nil {
		s.run(ctx, "catalog reload", s.reloadInterval, s.reloadCatalog)
	}
}

// Stop останавливает фоновые задачи и ждёт их завершения
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping background scheduler")
		close(s.stopChan)
	})
	s.wg.Wait()
}

// run периодически выполняет task, пока не остановлен планировщик или ctx
func (s *Scheduler) run(ctx context.Context, name string, interval time.Duration, task func(context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				task(ctx)
			case <-s.stopChan:
				s.logger.Info("Task stopped", zap.String("task", name))
				return
			case <-ctx.Done():
				s.logger.Info("Task cancelled", zap.String("task", name))
				return
			}
		}
	}()
}

// sweepSessions удаляет неактивные сессии
func (s *Scheduler) sweepSessions(context.Context) {
	removed := s.timetableService.Sessions().Sweep(s.sessionTTL)
	s.logger.Info("Idle sessions swept",
		zap.Int("removed", removed),
		zap.Int("active", s.timetableService.Sessions().Len()))
}

// reloadCatalog перечитывает каталог из источника
func (s *Scheduler) reloadCatalog(ctx context.Context) {
	if err := s.timetableService.Reload(ctx, s.source); err != nil {
		s.logger.Error("Scheduled catalog reload failed", zap.Error(err))
	}
}
