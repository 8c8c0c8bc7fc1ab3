package watchdog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/YazzTTV/productif-notifier/internal/common/metrics"
	"github.com/YazzTTV/productif-notifier/internal/domain/models"
	"github.com/YazzTTV/productif-notifier/internal/notifier/dedup"
)

// SessionStore — доступ к фокус-сессиям.
type SessionStore interface {
	ListActiveSessions(ctx context.Context) ([]*models.FocusSession, error)

	UpdateSession(ctx context.Context, id string, patch *models.FocusSessionPatch) error
}

// PreferenceReader отдаёт настройки пользователя для выбора канала доставки.
type PreferenceReader interface {
	GetPreferences(ctx context.Context, userID string) (*models.NotificationPreference, error)
}

// ActionQueue — очередь моста планировщика.
type ActionQueue interface {
	Enqueue(action *models.SendAction) error
}

// Transactor выполняет функцию в рамках одной транзакции хранилища.
type Transactor interface {
	WithTransaction(ctx context.Context, txFunc func(ctx context.Context) error) error
}

// Watchdog сканирует активные фокус-сессии с фиксированным интервалом.
// Сессии, дожившие до планового конца, переводятся в completed независимо
// от того, удалось ли уведомить пользователя: переход состояния важнее
// доставки сообщения.
type Watchdog struct {
	sessions        SessionStore
	prefs           PreferenceReader
	queue           ActionQueue
	txManager       Transactor
	logger          *slog.Logger
	interval        time.Duration
	reminderMinutes int

	runner *gocron.Scheduler
	now    func() time.Time
}

func NewWatchdog(
	sessions SessionStore,
	prefs PreferenceReader,
	queue ActionQueue,
	txManager Transactor,
	interval time.Duration,
	reminderMinutes int,
	logger *slog.Logger,
) *Watchdog {
	return &Watchdog{
		sessions:        sessions,
		prefs:           prefs,
		queue:           queue,
		txManager:       txManager,
		logger:          logger,
		interval:        interval,
		reminderMinutes: reminderMinutes,
		runner:          gocron.NewScheduler(time.UTC),
		now:             time.Now,
	}
}

func (w *Watchdog) Start() {
	w.logger.Info("Запуск сторожа фокус-сессий",
		"interval", w.interval.String(),
		"reminderMinutes", w.reminderMinutes,
	)

	_, err := w.runner.Every(w.interval).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), w.interval)
		defer cancel()

		w.Scan(ctx)
	})
	if err != nil {
		w.logger.Error("Ошибка при настройке сторожа фокус-сессий",
			"error", err,
		)

		return
	}

	w.runner.StartAsync()
}

func (w *Watchdog) Stop() {
	w.logger.Info("Остановка сторожа фокус-сессий")
	w.runner.Stop()
}

// Scan выполняет один сторожевой проход по всем активным сессиям.
func (w *Watchdog) Scan(ctx context.Context) {
	sessions, err := w.sessions.ListActiveSessions(ctx)
	if err != nil {
		w.logger.Error("Ошибка при получении активных сессий",
			"error", err,
		)

		return
	}

	metrics.ActiveSessions.Set(float64(len(sessions)))

	now := w.now()

	for _, session := range sessions {
		elapsed := int(now.Sub(session.StartedAt).Minutes())
		remaining := session.PlannedMinutes - elapsed

		switch {
		case remaining <= 0:
			w.completeSession(ctx, session, now, elapsed)
		case remaining == w.reminderMinutes:
			w.remindSession(ctx, session)
		}
	}
}

// completeSession переводит сессию в completed и, если переход удался,
// ставит в очередь сообщение о завершении. Ошибка обновления оставляет
// сессию активной, следующий проход попробует ещё раз.
func (w *Watchdog) completeSession(ctx context.Context, session *models.FocusSession, now time.Time, elapsed int) {
	status := models.SessionCompleted
	completedAt := now
	actual := elapsed

	patch := &models.FocusSessionPatch{
		Status:        &status,
		CompletedAt:   &completedAt,
		ActualMinutes: &actual,
	}

	err := w.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return w.sessions.UpdateSession(txCtx, session.ID, patch)
	})
	if err != nil {
		w.logger.Error("Ошибка при завершении фокус-сессии",
			"sessionID", session.ID,
			"userID", session.UserID,
			"error", err,
		)

		return
	}

	metrics.SessionTransitions.WithLabelValues("completed").Inc()

	w.logger.Info("Фокус-сессия завершена по таймауту",
		"sessionID", session.ID,
		"userID", session.UserID,
		"plannedMinutes", session.PlannedMinutes,
		"actualMinutes", actual,
	)

	message := completionText(session.PlannedMinutes, actual)

	w.enqueue(ctx, session, models.ActionSessionCompleted, message)
}

func (w *Watchdog) remindSession(ctx context.Context, session *models.FocusSession) {
	metrics.SessionTransitions.WithLabelValues("reminder").Inc()

	message := fmt.Sprintf("⏳ Осталось %d минут фокус-сессии. Финишная прямая!", w.reminderMinutes)

	w.enqueue(ctx, session, models.ActionSessionReminder, message)
}

// enqueue разрешает канал доставки через настройки пользователя и ставит
// действие в очередь моста. Выключенные уведомления или отсутствие канала
// гасят сообщение, но не влияют на состояние сессии.
func (w *Watchdog) enqueue(ctx context.Context, session *models.FocusSession, kind models.ActionKind, message string) {
	prefs, err := w.prefs.GetPreferences(ctx, session.UserID)
	if err != nil {
		w.logger.Warn("Ошибка при чтении настроек пользователя, сообщение не отправлено",
			"sessionID", session.ID,
			"userID", session.UserID,
			"error", err,
		)

		return
	}

	if prefs == nil || !prefs.Enabled {
		return
	}

	channel, address, ok := prefs.PrimaryChannel()
	if !ok {
		w.logger.Warn("У пользователя нет включённого канала доставки",
			"userID", session.UserID,
		)

		return
	}

	action := &models.SendAction{
		Kind:        kind,
		UserID:      session.UserID,
		Channel:     channel,
		Address:     address,
		Fingerprint: dedup.Fingerprint(string(kind), session.UserID, session.ID),
		Message:     message,
		EnqueuedAt:  w.now(),
	}

	if err := w.queue.Enqueue(action); err != nil {
		w.logger.Error("Ошибка при постановке действия в очередь",
			"sessionID", session.ID,
			"userID", session.UserID,
			"kind", string(kind),
			"error", err,
		)
	}
}

func completionText(planned, actual int) string {
	if actual > planned {
		return fmt.Sprintf(
			"✅ Фокус-сессия завершена! План был %d минут, по факту вышло %d. Отличная выдержка!",
			planned, actual,
		)
	}

	return fmt.Sprintf("✅ Фокус-сессия завершена! %d минут концентрации. Отличная работа!", planned)
}
