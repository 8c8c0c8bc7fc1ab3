package repository

import (
	"context"
	"time"

	"github.com/YazzTTV/productif-notifier/internal/domain/models"
)

// PreferenceRepository — доступ к настройкам уведомлений и расписаниям
// чек-инов. Единственная точка чтения персистентного состояния для
// планировщика и наблюдателя.
type PreferenceRepository interface {
	GetPreferences(ctx context.Context, userID string) (*models.NotificationPreference, error)

	GetCheckInSchedule(ctx context.Context, userID string) (*models.CheckInSchedule, error)

	ListUserIDs(ctx context.Context) ([]string, error)

	SaveConversationState(ctx context.Context, state *models.ConversationState) error
}

// SessionRepository — доступ к фокус-сессиям для сторожевого цикла.
type SessionRepository interface {
	ListActiveSessions(ctx context.Context) ([]*models.FocusSession, error)

	UpdateSession(ctx context.Context, id string, patch *models.FocusSessionPatch) error
}

// DeliveryRepository — журнал попыток отправки (append-only).
type DeliveryRepository interface {
	Save(ctx context.Context, record *models.DeliveryRecord) error

	FindRecent(ctx context.Context, recipient, fingerprint string, window time.Duration) (*models.DeliveryRecord, error)
}
