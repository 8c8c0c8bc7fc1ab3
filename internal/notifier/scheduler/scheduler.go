package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/YazzTTV/productif-notifier/internal/common/metrics"
	"github.com/YazzTTV/productif-notifier/internal/domain/models"
	"github.com/YazzTTV/productif-notifier/internal/notifier/dedup"
)

// PreferenceStore — читающая сторона адаптера хранилища настроек.
type PreferenceStore interface {
	GetPreferences(ctx context.Context, userID string) (*models.NotificationPreference, error)

	GetCheckInSchedule(ctx context.Context, userID string) (*models.CheckInSchedule, error)

	ListUserIDs(ctx context.Context) ([]string, error)

	SaveConversationState(ctx context.Context, state *models.ConversationState) error
}

// ActionQueue — очередь моста планировщика.
type ActionQueue interface {
	Enqueue(action *models.SendAction) error
}

type handleKey struct {
	userID    string
	slotIndex int
}

type handle struct {
	job       *gocron.Job
	triggerAt string
}

// UserScheduler владеет множеством живых триггеров, по одному на слот
// расписания пользователя. На пользователя заводится отдельный gocron-раннер
// в его таймзоне; ключ (userID, slotIndex) содержит не более одного живого
// хендла в любой момент времени.
type UserScheduler struct {
	store         PreferenceStore
	queue         ActionQueue
	logger        *slog.Logger
	jitterMinutes int

	// installMu сериализует последовательность снятие-чтение-установка:
	// конкурентные события preferences_updated для одного пользователя
	// иначе могут оба пройти снятие и оставить осиротевший раннер.
	installMu sync.Mutex

	mu      sync.Mutex
	runners map[string]*gocron.Scheduler
	handles map[handleKey]*handle
	rnd     *rand.Rand
	now     func() time.Time
}

func NewUserScheduler(
	store PreferenceStore,
	queue ActionQueue,
	jitterMinutes int,
	logger *slog.Logger,
) *UserScheduler {
	return &UserScheduler{
		store:         store,
		queue:         queue,
		logger:        logger,
		jitterMinutes: jitterMinutes,
		runners:       make(map[string]*gocron.Scheduler),
		handles:       make(map[handleKey]*handle),
		rnd:           rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // не криптографический источник
		now:           time.Now,
	}
}

// InstallForUser снимает все прежние хендлы пользователя и устанавливает
// новые по текущим настройкам. Повторный вызов с неизменными настройками
// идемпотентен.
func (s *UserScheduler) InstallForUser(ctx context.Context, userID string) error {
	s.installMu.Lock()
	defer s.installMu.Unlock()

	s.removeForUser(userID)

	prefs, err := s.store.GetPreferences(ctx, userID)
	if err != nil {
		metrics.InstallErrors.Inc()
		return fmt.Errorf("ошибка при чтении настроек пользователя %s: %w", userID, err)
	}

	if prefs == nil || !prefs.Enabled {
		s.logger.Debug("Уведомления пользователя выключены, хендлы не устанавливаются",
			"userID", userID,
		)

		return nil
	}

	schedule, err := s.store.GetCheckInSchedule(ctx, userID)
	if err != nil {
		metrics.InstallErrors.Inc()
		return fmt.Errorf("ошибка при чтении расписания пользователя %s: %w", userID, err)
	}

	if schedule == nil || !schedule.Enabled || len(schedule.Slots) == 0 {
		return nil
	}

	loc, err := time.LoadLocation(prefs.Timezone)
	if err != nil {
		s.logger.Warn("Неизвестная таймзона, используем UTC",
			"userID", userID,
			"timezone", prefs.Timezone,
		)

		loc = time.UTC
	}

	localNow := s.now().In(loc)

	s.mu.Lock()
	defer s.mu.Unlock()

	runner := gocron.NewScheduler(loc)
	installed := 0

	for i, slot := range schedule.Slots {
		if schedule.SkipWeekends && isWeekend(localNow) {
			// сегодня выходной: слот без хендла до ежедневного переустановa
			continue
		}

		minutes, err := parseSlotTime(slot.Time)
		if err != nil {
			s.logger.Warn("Пропуск некорректного слота расписания",
				"userID", userID,
				"slot", i,
				"time", slot.Time,
				"error", err,
			)

			continue
		}

		if schedule.Randomize {
			minutes = applyJitter(minutes, s.jitterMinutes, s.rnd)
		}

		triggerAt := formatSlotTime(minutes)

		slotIndex := i
		slotCopy := slot

		job, err := runner.Every(1).Day().At(triggerAt).Do(func() {
			s.fire(userID, slotIndex, slotCopy, prefs, schedule, loc)
		})
		if err != nil {
			s.logger.Error("Ошибка при установке триггера",
				"userID", userID,
				"slot", slotIndex,
				"time", triggerAt,
				"error", err,
			)

			continue
		}

		s.handles[handleKey{userID: userID, slotIndex: slotIndex}] = &handle{
			job:       job,
			triggerAt: triggerAt,
		}
		installed++
	}

	if installed == 0 {
		return nil
	}

	if old, ok := s.runners[userID]; ok {
		old.Stop()
		old.Clear()
	}

	runner.StartAsync()
	s.runners[userID] = runner

	metrics.LiveHandles.Set(float64(len(s.handles)))

	s.logger.Info("Триггеры пользователя установлены",
		"userID", userID,
		"handles", installed,
		"timezone", loc.String(),
	)

	return nil
}

// RemoveForUser синхронно снимает все хендлы пользователя: после возврата
// старые триггеры больше не ставят действия в очередь.
func (s *UserScheduler) RemoveForUser(userID string) {
	s.installMu.Lock()
	defer s.installMu.Unlock()

	s.removeForUser(userID)
}

func (s *UserScheduler) removeForUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runner, ok := s.runners[userID]
	if ok {
		runner.Stop()
		runner.Clear()
		delete(s.runners, userID)
	}

	for key := range s.handles {
		if key.userID == userID {
			delete(s.handles, key)
		}
	}

	metrics.LiveHandles.Set(float64(len(s.handles)))
}

// ReinstallAll переустанавливает триггеры всех известных пользователей.
// Ошибка одного пользователя не прерывает остальных.
func (s *UserScheduler) ReinstallAll(ctx context.Context) {
	ids, err := s.store.ListUserIDs(ctx)
	if err != nil {
		s.logger.Error("Ошибка при получении списка пользователей",
			"error", err,
		)

		return
	}

	s.logger.Info("Переустановка триггеров всех пользователей",
		"users", len(ids),
	)

	for _, id := range ids {
		if err := s.InstallForUser(ctx, id); err != nil {
			s.logger.Error("Ошибка при переустановке триггеров пользователя",
				"userID", id,
				"error", err,
			)
		}
	}
}

// HandleEvent — подписчик шины изменений.
func (s *UserScheduler) HandleEvent(event models.ChangeEvent) {
	ctx := context.Background()

	switch event.Kind {
	case models.EventPreferencesUpdated:
		if err := s.InstallForUser(ctx, event.UserID); err != nil {
			s.logger.Error("Ошибка при установке триггеров по событию",
				"userID", event.UserID,
				"error", err,
			)
		}
	case models.EventUserDeleted:
		s.RemoveForUser(event.UserID)
	case models.EventRestartRequested:
		s.ReinstallAll(ctx)
	}
}

// Stop снимает все хендлы и останавливает все раннеры.
func (s *UserScheduler) Stop() {
	s.installMu.Lock()
	defer s.installMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	for userID, runner := range s.runners {
		runner.Stop()
		runner.Clear()
		delete(s.runners, userID)
	}

	s.handles = make(map[handleKey]*handle)
	metrics.LiveHandles.Set(0)

	s.logger.Info("Планировщик пользовательских триггеров остановлен")
}

func (s *UserScheduler) LiveHandleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.handles)
}

func (s *UserScheduler) HandleCountForUser(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0

	for key := range s.handles {
		if key.userID == userID {
			count++
		}
	}

	return count
}

// ScheduledTimes возвращает вычисленные локальные времена срабатывания
// хендлов пользователя в порядке слотов.
func (s *UserScheduler) ScheduledTimes(userID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	type entry struct {
		slot int
		at   string
	}

	var entries []entry

	for key, h := range s.handles {
		if key.userID == userID {
			entries = append(entries, entry{slot: key.slotIndex, at: h.triggerAt})
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].slot < entries[j].slot })

	times := make([]string, 0, len(entries))
	for _, e := range entries {
		times = append(times, e.at)
	}

	return times
}

// ActiveUserIDs — пользователи, у которых есть хотя бы один живой хендл.
func (s *UserScheduler) ActiveUserIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{})

	for key := range s.handles {
		seen[key.userID] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// fire выполняется в момент срабатывания триггера: выбирает тип чек-ина и
// вариант текста, записывает маркер ожидаемого ответа и ставит действие в
// очередь моста.
func (s *UserScheduler) fire(
	userID string,
	slotIndex int,
	slot models.CheckInSlot,
	prefs *models.NotificationPreference,
	schedule *models.CheckInSchedule,
	loc *time.Location,
) {
	localNow := s.now().In(loc)

	// страховка на случай хендла, пережившего выходной день
	if schedule.SkipWeekends && isWeekend(localNow) {
		return
	}

	if !prefs.InAllowedHours(localNow) || !prefs.OnAllowedDay(localNow) {
		s.logger.Debug("Срабатывание вне разрешённого окна, пропуск",
			"userID", userID,
			"slot", slotIndex,
		)

		return
	}

	if len(slot.Types) == 0 {
		return
	}

	channel, address, ok := prefs.PrimaryChannel()
	if !ok {
		s.logger.Warn("У пользователя нет включённого канала доставки",
			"userID", userID,
		)

		return
	}

	s.mu.Lock()
	checkInType := slot.Types[s.rnd.Intn(len(slot.Types))]
	text, hasText := pickVariant(checkInType, s.rnd)
	s.mu.Unlock()

	if !hasText {
		s.logger.Warn("Нет вариантов текста для типа чек-ина",
			"userID", userID,
			"type", string(checkInType),
		)

		return
	}

	metrics.TriggerFirings.WithLabelValues(string(checkInType)).Inc()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	state := &models.ConversationState{
		UserID:       userID,
		AwaitingType: checkInType,
		Platform:     channel,
		PromptedAt:   localNow,
	}

	if err := s.store.SaveConversationState(ctx, state); err != nil {
		s.logger.Error("Ошибка при сохранении состояния диалога",
			"userID", userID,
			"error", err,
		)
	}

	scope := fmt.Sprintf("%s#%d", localNow.Format("2006-01-02"), slotIndex)

	action := &models.SendAction{
		Kind:        models.ActionCheckInPrompt,
		UserID:      userID,
		Channel:     channel,
		Address:     address,
		Fingerprint: dedup.Fingerprint(string(models.ActionCheckInPrompt), userID, scope),
		Message:     text,
		EnqueuedAt:  s.now(),
	}

	if err := s.queue.Enqueue(action); err != nil {
		s.logger.Error("Ошибка при постановке действия в очередь",
			"userID", userID,
			"error", err,
		)
	}
}
