package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/YazzTTV/productif-notifier/internal/domain/models"
	"github.com/YazzTTV/productif-notifier/internal/notifier/eventbus"
)

// TriggerScheduler — планировщик пользовательских триггеров.
type TriggerScheduler interface {
	HandleEvent(event models.ChangeEvent)

	ReinstallAll(ctx context.Context)

	LiveHandleCount() int

	Stop()
}

// ChangeWatcher — наблюдатель изменений настроек.
type ChangeWatcher interface {
	Start()

	Stop()

	LastCycleAt() time.Time
}

// SessionWatchdog — сторож фокус-сессий.
type SessionWatchdog interface {
	Start()

	Stop()
}

// ActionBridge — мост между планировщиком и отправкой.
type ActionBridge interface {
	Start()

	Stop()

	QueueDepth() int
}

// EventBus — шина изменений.
type EventBus interface {
	Subscribe(kind models.EventKind, handler eventbus.Handler)

	Publish(event models.ChangeEvent)
}

// NotifierService собирает компоненты движка уведомлений и управляет их
// жизненным циклом. Порядок запуска: мост, начальная установка триггеров,
// фоновые циклы; остановка в обратном порядке, мост последним, чтобы
// дать очереди достояться.
type NotifierService struct {
	bus       EventBus
	scheduler TriggerScheduler
	watcher   ChangeWatcher
	watchdog  SessionWatchdog
	bridge    ActionBridge
	logger    *slog.Logger

	refreshAt     string
	refreshRunner *gocron.Scheduler

	mu      sync.Mutex
	running bool
}

func NewNotifierService(
	bus EventBus,
	triggerScheduler TriggerScheduler,
	changeWatcher ChangeWatcher,
	sessionWatchdog SessionWatchdog,
	actionBridge ActionBridge,
	refreshAt string,
	logger *slog.Logger,
) *NotifierService {
	return &NotifierService{
		bus:           bus,
		scheduler:     triggerScheduler,
		watcher:       changeWatcher,
		watchdog:      sessionWatchdog,
		bridge:        actionBridge,
		refreshAt:     refreshAt,
		refreshRunner: gocron.NewScheduler(time.UTC),
		logger:        logger,
	}
}

func (s *NotifierService) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	s.logger.Info("Запуск движка уведомлений")

	s.bus.Subscribe(models.EventPreferencesUpdated, s.scheduler.HandleEvent)
	s.bus.Subscribe(models.EventUserDeleted, s.scheduler.HandleEvent)
	s.bus.Subscribe(models.EventRestartRequested, s.scheduler.HandleEvent)

	s.bridge.Start()
	s.scheduler.ReinstallAll(ctx)
	s.watcher.Start()
	s.watchdog.Start()

	// ежедневный переустанов возвращает хендлы слотов, пропущенных из-за
	// выходного дня, и пересчитывает случайный сдвиг времени
	_, err := s.refreshRunner.Every(1).Day().At(s.refreshAt).Do(func() {
		s.logger.Info("Ежедневный переустанов триггеров")

		s.bus.Publish(models.ChangeEvent{
			Kind:       models.EventRestartRequested,
			OccurredAt: time.Now(),
		})
	})
	if err != nil {
		s.logger.Error("Ошибка при настройке ежедневного переустанова",
			"at", s.refreshAt,
			"error", err,
		)
	} else {
		s.refreshRunner.StartAsync()
	}

	s.running = true
}

func (s *NotifierService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.logger.Info("Остановка движка уведомлений")

	s.refreshRunner.Stop()
	s.watchdog.Stop()
	s.watcher.Stop()
	s.scheduler.Stop()
	s.bridge.Stop()

	s.running = false
}

// Status — снимок состояния движка для операторского API.
func (s *NotifierService) Status() models.SchedulerStatus {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()

	return models.SchedulerStatus{
		SchedulerRunning:   running,
		LiveHandleCount:    s.scheduler.LiveHandleCount(),
		QueueDepth:         s.bridge.QueueDepth(),
		LastWatcherCycleAt: s.watcher.LastCycleAt(),
	}
}

// Restart запрашивает переустанов триггеров всех пользователей.
func (s *NotifierService) Restart() {
	s.logger.Info("Запрошен переустанов всех триггеров")

	s.bus.Publish(models.ChangeEvent{
		Kind:       models.EventRestartRequested,
		OccurredAt: time.Now(),
	})
}

// ForceRefresh запрашивает переустанов триггеров одного пользователя,
// не дожидаясь цикла наблюдателя.
func (s *NotifierService) ForceRefresh(userID string) {
	s.logger.Info("Запрошен переустанов триггеров пользователя",
		"userID", userID,
	)

	s.bus.Publish(models.ChangeEvent{
		Kind:       models.EventPreferencesUpdated,
		UserID:     userID,
		OccurredAt: time.Now(),
	})
}
