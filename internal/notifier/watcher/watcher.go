package watcher

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/YazzTTV/productif-notifier/internal/common/metrics"
	customerrors "github.com/YazzTTV/productif-notifier/internal/domain/errors"
	"github.com/YazzTTV/productif-notifier/internal/domain/models"
)

// Store — читающая сторона адаптера хранилища настроек.
type Store interface {
	GetPreferences(ctx context.Context, userID string) (*models.NotificationPreference, error)

	GetCheckInSchedule(ctx context.Context, userID string) (*models.CheckInSchedule, error)

	ListUserIDs(ctx context.Context) ([]string, error)
}

// EventPublisher — публикующая сторона шины изменений.
type EventPublisher interface {
	Publish(event models.ChangeEvent)
}

// HandleLister отдаёт пользователей с хотя бы одним живым хендлом.
type HandleLister interface {
	ActiveUserIDs() []string
}

type cacheEntry struct {
	hash     string
	snapshot *models.UserSnapshot
}

// Watcher опрашивает хранилище с фиксированным интервалом и сравнивает
// наблюдаемое состояние каждого пользователя с закэшированным снимком.
// Расхождение означает правку мимо API-слоя (админка, миграция данных,
// другой процесс) и публикуется в шину как обычное событие изменения.
type Watcher struct {
	store          Store
	bus            EventPublisher
	handles        HandleLister
	logger         *slog.Logger
	interval       time.Duration
	fullScanCycles int

	runner *gocron.Scheduler

	mu          sync.Mutex
	cache       map[string]*cacheEntry
	cycleCount  int
	lastCycleAt time.Time
}

func NewWatcher(
	store Store,
	bus EventPublisher,
	handles HandleLister,
	interval time.Duration,
	fullScanCycles int,
	logger *slog.Logger,
) *Watcher {
	if fullScanCycles <= 0 {
		fullScanCycles = 20
	}

	return &Watcher{
		store:          store,
		bus:            bus,
		handles:        handles,
		logger:         logger,
		interval:       interval,
		fullScanCycles: fullScanCycles,
		runner:         gocron.NewScheduler(time.UTC),
		cache:          make(map[string]*cacheEntry),
	}
}

func (w *Watcher) Start() {
	w.logger.Info("Запуск наблюдателя изменений",
		"interval", w.interval.String(),
		"fullScanCycles", w.fullScanCycles,
	)

	_, err := w.runner.Every(w.interval).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), w.interval)
		defer cancel()

		w.Cycle(ctx)
	})
	if err != nil {
		w.logger.Error("Ошибка при настройке наблюдателя изменений",
			"error", err,
		)

		return
	}

	w.runner.StartAsync()
}

func (w *Watcher) Stop() {
	w.logger.Info("Остановка наблюдателя изменений")
	w.runner.Stop()
}

func (w *Watcher) LastCycleAt() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.lastCycleAt
}

// Cycle выполняет один проход опроса. Обычный проход покрывает только
// пользователей с живыми хендлами; каждый N-й проход сканирует всех
// пользователей хранилища и дополнительно ловит удаления.
func (w *Watcher) Cycle(ctx context.Context) {
	w.mu.Lock()
	fullScan := w.cycleCount%w.fullScanCycles == 0
	w.cycleCount++
	w.mu.Unlock()

	var ids []string

	if fullScan {
		storeIDs, err := w.store.ListUserIDs(ctx)
		if err != nil {
			w.logger.Error("Ошибка при получении списка пользователей, используем активных",
				"error", err,
			)

			ids = w.handles.ActiveUserIDs()
			fullScan = false
		} else {
			ids = storeIDs
		}
	} else {
		ids = w.handles.ActiveUserIDs()
	}

	seen := make(map[string]struct{}, len(ids))

	for _, id := range ids {
		seen[id] = struct{}{}
		w.checkUser(ctx, id)
	}

	if fullScan {
		w.detectDeleted(seen)
	}

	w.mu.Lock()
	w.lastCycleAt = time.Now()
	w.mu.Unlock()

	metrics.WatcherCycles.Inc()
}

func (w *Watcher) checkUser(ctx context.Context, userID string) {
	snapshot, err := w.fetchSnapshot(ctx, userID)
	if err != nil {
		if errors.Is(err, &customerrors.ErrPreferencesNotFound{}) {
			w.forgetUser(userID)
			return
		}

		// транзиентная ошибка: событие не публикуем, чтобы не устроить
		// шторм переустановок, попробуем в следующем цикле
		w.logger.Warn("Ошибка при опросе пользователя, пропуск до следующего цикла",
			"userID", userID,
			"error", err,
		)

		return
	}

	hash, err := snapshotHash(snapshot)
	if err != nil {
		w.logger.Error("Ошибка при хешировании снимка состояния",
			"userID", userID,
			"error", err,
		)

		return
	}

	w.mu.Lock()
	old, known := w.cache[userID]
	w.cache[userID] = &cacheEntry{hash: hash, snapshot: snapshot}
	w.mu.Unlock()

	if !known {
		metrics.WatcherDriftDetected.WithLabelValues("new_user").Inc()

		w.bus.Publish(models.ChangeEvent{
			Kind:       models.EventPreferencesUpdated,
			UserID:     userID,
			Old:        nil,
			New:        snapshot,
			OccurredAt: time.Now(),
		})

		return
	}

	if old.hash == hash {
		return
	}

	w.logger.Info("Обнаружено изменение настроек мимо API",
		"userID", userID,
	)

	metrics.WatcherDriftDetected.WithLabelValues("preferences_updated").Inc()

	w.bus.Publish(models.ChangeEvent{
		Kind:       models.EventPreferencesUpdated,
		UserID:     userID,
		Old:        old.snapshot,
		New:        snapshot,
		OccurredAt: time.Now(),
	})
}

func (w *Watcher) fetchSnapshot(ctx context.Context, userID string) (*models.UserSnapshot, error) {
	prefs, err := w.store.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	schedule, err := w.store.GetCheckInSchedule(ctx, userID)
	if err != nil && !errors.Is(err, &customerrors.ErrScheduleNotFound{}) {
		return nil, err
	}

	return &models.UserSnapshot{
		Preferences: prefs,
		CheckIn:     schedule,
	}, nil
}

// forgetUser публикует user_deleted для пользователя, которого наблюдатель
// раньше видел, а теперь в хранилище нет.
func (w *Watcher) forgetUser(userID string) {
	w.mu.Lock()
	_, known := w.cache[userID]
	delete(w.cache, userID)
	w.mu.Unlock()

	if !known {
		return
	}

	w.logger.Info("Пользователь удалён из хранилища",
		"userID", userID,
	)

	metrics.WatcherDriftDetected.WithLabelValues("user_deleted").Inc()

	w.bus.Publish(models.ChangeEvent{
		Kind:       models.EventUserDeleted,
		UserID:     userID,
		OccurredAt: time.Now(),
	})
}

func (w *Watcher) detectDeleted(seen map[string]struct{}) {
	w.mu.Lock()
	var gone []string

	for id := range w.cache {
		if _, ok := seen[id]; !ok {
			gone = append(gone, id)
		}
	}
	w.mu.Unlock()

	for _, id := range gone {
		w.forgetUser(id)
	}
}

func snapshotHash(snapshot *models.UserSnapshot) (string, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:]), nil
}
