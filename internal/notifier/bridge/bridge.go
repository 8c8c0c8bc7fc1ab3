package bridge

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/YazzTTV/productif-notifier/internal/common/metrics"
	customerrors "github.com/YazzTTV/productif-notifier/internal/domain/errors"
	"github.com/YazzTTV/productif-notifier/internal/domain/models"
)

// DedupGuard решает, является ли попытка отправки дубликатом.
type DedupGuard interface {
	ShouldSend(ctx context.Context, recipient, fingerprint string, window time.Duration) (bool, error)
}

// Sender — исходящая доставка по каналам.
type Sender interface {
	Send(ctx context.Context, channel models.Channel, address, content string) (*models.SendResult, error)
}

// DeliveryRecorder фиксирует исход каждой попытки отправки.
type DeliveryRecorder interface {
	Save(ctx context.Context, record *models.DeliveryRecord) error
}

// Auditor зеркалирует исходы доставок во внешний поток аудита.
type Auditor interface {
	PublishDelivery(ctx context.Context, record *models.DeliveryRecord) error
}

// Bridge — однопоточная очередь действий. Действия из планировщика и
// сторожа сессий обрабатываются одним воркером в порядке FIFO, поэтому два
// действия для одного пользователя никогда не выполняются конкурентно.
type Bridge struct {
	actions     chan *models.SendAction
	guard       DedupGuard
	sender      Sender
	deliveries  DeliveryRecorder
	auditor     Auditor
	logger      *slog.Logger
	sendTimeout time.Duration
	dedupWindow time.Duration

	mu      sync.Mutex
	started bool
	stopped bool
	done    chan struct{}
}

func NewBridge(
	guard DedupGuard,
	sender Sender,
	deliveries DeliveryRecorder,
	auditor Auditor,
	queueSize int,
	sendTimeout, dedupWindow time.Duration,
	logger *slog.Logger,
) *Bridge {
	if queueSize <= 0 {
		queueSize = 1024
	}

	return &Bridge{
		actions:     make(chan *models.SendAction, queueSize),
		guard:       guard,
		sender:      sender,
		deliveries:  deliveries,
		auditor:     auditor,
		logger:      logger,
		sendTimeout: sendTimeout,
		dedupWindow: dedupWindow,
		done:        make(chan struct{}),
	}
}

func (b *Bridge) Start() {
	b.mu.Lock()
	if b.started || b.stopped {
		b.mu.Unlock()
		return
	}

	b.started = true
	b.mu.Unlock()

	b.logger.Info("Запуск моста планировщика")

	go b.drain()
}

// Stop закрывает очередь и дожидается обработки оставшихся действий.
// Безопасен и для моста, который не запускался.
func (b *Bridge) Stop() {
	b.mu.Lock()
	if b.stopped {
		b.mu.Unlock()
		return
	}

	b.stopped = true
	started := b.started

	close(b.actions)
	b.mu.Unlock()

	if started {
		<-b.done
	}

	b.logger.Info("Мост планировщика остановлен")
}

// Enqueue ставит действие в очередь. Переполненная очередь не блокирует
// вызывающего: действие отбрасывается с ошибкой.
func (b *Bridge) Enqueue(action *models.SendAction) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return &customerrors.ErrQueueOverflow{Depth: len(b.actions)}
	}

	if action.EnqueuedAt.IsZero() {
		action.EnqueuedAt = time.Now()
	}

	select {
	case b.actions <- action:
		metrics.QueueDepth.Set(float64(len(b.actions)))
		return nil
	default:
		metrics.DroppedActions.Inc()

		b.logger.Error("Очередь действий переполнена, действие отброшено",
			"kind", string(action.Kind),
			"userID", action.UserID,
		)

		return &customerrors.ErrQueueOverflow{Depth: len(b.actions)}
	}
}

func (b *Bridge) QueueDepth() int {
	return len(b.actions)
}

func (b *Bridge) drain() {
	defer close(b.done)

	for action := range b.actions {
		b.process(action)
		metrics.QueueDepth.Set(float64(len(b.actions)))
	}
}

func (b *Bridge) process(action *models.SendAction) {
	ctx, cancel := context.WithTimeout(context.Background(), b.sendTimeout)
	defer cancel()

	allowed, err := b.guard.ShouldSend(ctx, action.UserID, action.Fingerprint, b.dedupWindow)
	if err != nil {
		b.logger.Warn("Ошибка при проверке дубликата",
			"kind", string(action.Kind),
			"userID", action.UserID,
			"error", err,
		)
	}

	if !allowed {
		b.record(ctx, action, models.OutcomeBlockedDuplicate, "", "")
		return
	}

	result, err := b.sender.Send(ctx, action.Channel, action.Address, action.Message)
	if err != nil {
		b.logger.Error("Ошибка при отправке сообщения",
			"kind", string(action.Kind),
			"userID", action.UserID,
			"channel", string(action.Channel),
			"error", err,
		)

		b.record(ctx, action, models.OutcomeFailed, "", err.Error())

		return
	}

	providerID := ""
	if result != nil {
		providerID = result.ProviderMessageID
	}

	b.logger.Info("Сообщение успешно отправлено",
		"kind", string(action.Kind),
		"userID", action.UserID,
		"channel", string(action.Channel),
	)

	b.record(ctx, action, models.OutcomeSent, providerID, "")
}

func (b *Bridge) record(
	ctx context.Context,
	action *models.SendAction,
	outcome models.DeliveryOutcome,
	providerID, errMsg string,
) {
	record := &models.DeliveryRecord{
		Recipient:         action.UserID,
		Fingerprint:       action.Fingerprint,
		Channel:           action.Channel,
		Outcome:           outcome,
		ProviderMessageID: providerID,
		Error:             errMsg,
		CreatedAt:         time.Now(),
	}

	metrics.DeliveryOutcomes.WithLabelValues(string(action.Channel), string(outcome)).Inc()

	if err := b.deliveries.Save(ctx, record); err != nil {
		b.logger.Error("Ошибка при сохранении записи о доставке",
			"userID", action.UserID,
			"outcome", string(outcome),
			"error", err,
		)
	}

	if b.auditor != nil {
		if err := b.auditor.PublishDelivery(ctx, record); err != nil {
			b.logger.Warn("Ошибка при публикации события доставки в аудит",
				"userID", action.UserID,
				"error", err,
			)
		}
	}
}
