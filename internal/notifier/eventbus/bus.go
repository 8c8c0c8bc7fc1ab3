package eventbus

import (
	"log/slog"
	"sync"
	"time"

	"github.com/YazzTTV/productif-notifier/internal/domain/models"
)

type Handler func(event models.ChangeEvent)

// Bus — типизированная внутрипроцессная шина событий изменений.
// Publish регистрирует обработчики синхронно, но сами обработчики
// выполняются fire-and-forget относительно публикующего.
type Bus struct {
	mu       sync.RWMutex
	handlers map[models.EventKind][]Handler
	logger   *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		handlers: make(map[models.EventKind][]Handler),
		logger:   logger,
	}
}

func (b *Bus) Subscribe(kind models.EventKind, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[kind] = append(b.handlers[kind], handler)
}

func (b *Bus) Publish(event models.ChangeEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Kind]))
	copy(handlers, b.handlers[event.Kind])
	b.mu.RUnlock()

	b.logger.Debug("Публикация события",
		"kind", string(event.Kind),
		"userID", event.UserID,
		"handlers", len(handlers),
	)

	for _, handler := range handlers {
		h := handler

		go func() {
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("Паника в обработчике события",
						"kind", string(event.Kind),
						"panic", r,
					)
				}
			}()

			h(event)
		}()
	}
}
