package dedup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/YazzTTV/productif-notifier/internal/domain/models"
)

// DeliveryStore — журнал доставок, источник истины для защиты от дублей.
type DeliveryStore interface {
	FindRecent(ctx context.Context, recipient, fingerprint string, window time.Duration) (*models.DeliveryRecord, error)
}

// Reserver — быстрый барьер против конкурирующих триггеров: первая
// резервация ключа в окне выигрывает.
type Reserver interface {
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

type Guard struct {
	deliveries DeliveryStore
	reserver   Reserver
	window     time.Duration
	logger     *slog.Logger
}

func NewGuard(deliveries DeliveryStore, reserver Reserver, window time.Duration, logger *slog.Logger) *Guard {
	return &Guard{
		deliveries: deliveries,
		reserver:   reserver,
		window:     window,
		logger:     logger,
	}
}

func (g *Guard) Window() time.Duration {
	return g.window
}

// ShouldSend возвращает false, если для пары (получатель, отпечаток) в окне
// уже есть успешная доставка или резервация. Ошибки защиты не блокируют
// отправку: контракт — at-least-once с дедупликацией.
func (g *Guard) ShouldSend(ctx context.Context, recipient, fingerprint string, window time.Duration) (bool, error) {
	if window <= 0 {
		window = g.window
	}

	record, err := g.deliveries.FindRecent(ctx, recipient, fingerprint, window)
	if err != nil {
		g.logger.Warn("Ошибка при поиске недавней доставки, отправка разрешена",
			"recipient", recipient,
			"error", err,
		)

		return true, err
	}

	if record != nil {
		g.logger.Info("Дубликат заблокирован по журналу доставок",
			"recipient", recipient,
			"fingerprint", fingerprint,
			"sentAt", record.CreatedAt,
		)

		return false, nil
	}

	if g.reserver == nil {
		return true, nil
	}

	key := fmt.Sprintf("dedup:%s:%s", recipient, fingerprint)

	ok, err := g.reserver.Reserve(ctx, key, window)
	if err != nil {
		g.logger.Warn("Ошибка при резервации ключа дедупликации, отправка разрешена",
			"recipient", recipient,
			"error", err,
		)

		return true, nil
	}

	if !ok {
		g.logger.Info("Дубликат заблокирован по резервации",
			"recipient", recipient,
			"fingerprint", fingerprint,
		)
	}

	return ok, nil
}

type RedisReserver struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisReserver(ctx context.Context, redisURL, password string, db int, logger *slog.Logger) (*RedisReserver, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ошибка при подключении к Redis: %w", err)
	}

	logger.Info("Соединение с Redis для дедупликации успешно установлено")

	return &RedisReserver{
		client: client,
		logger: logger,
	}, nil
}

func (r *RedisReserver) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, key, time.Now().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("ошибка при резервации ключа в Redis: %w", err)
	}

	return ok, nil
}

func (r *RedisReserver) Close() error {
	return r.client.Close()
}
