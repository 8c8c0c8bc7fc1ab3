package watchdog

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/YazzTTV/productif-notifier/internal/domain/models"
	"github.com/YazzTTV/productif-notifier/internal/notifier/watchdog/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func chatPreferences(userID string) *models.NotificationPreference {
	return &models.NotificationPreference{
		UserID:      userID,
		Enabled:     true,
		ChatEnabled: true,
		ChatAddress: "12345",
		Timezone:    "UTC",
	}
}

// passthroughTx выполняет функцию сразу, без реальной транзакции.
func passthroughTx(t *testing.T) *mocks.Transactor {
	t.Helper()

	tx := mocks.NewTransactor(t)
	tx.On("WithTransaction", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, txFunc func(ctx context.Context) error) error {
			return txFunc(ctx)
		}).
		Maybe()

	return tx
}

func newTestWatchdog(
	t *testing.T,
	sessions *mocks.SessionStore,
	prefs *mocks.PreferenceReader,
	queue *mocks.ActionQueue,
	now time.Time,
) *Watchdog {
	t.Helper()

	w := NewWatchdog(sessions, prefs, queue, passthroughTx(t), 2*time.Minute, 5, testLogger())
	w.now = func() time.Time { return now }

	return w
}

func TestScan_CompletesOverdueSession(t *testing.T) {
	sessions := mocks.NewSessionStore(t)
	prefs := mocks.NewPreferenceReader(t)
	queue := mocks.NewActionQueue(t)

	now := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)

	session := &models.FocusSession{
		ID:             "session-1",
		UserID:         "user-1",
		StartedAt:      now.Add(-31 * time.Minute),
		PlannedMinutes: 30,
		Status:         models.SessionActive,
	}

	sessions.On("ListActiveSessions", mock.Anything).Return([]*models.FocusSession{session}, nil)

	sessions.On("UpdateSession", mock.Anything, "session-1", mock.MatchedBy(func(patch *models.FocusSessionPatch) bool {
		return patch.Status != nil && *patch.Status == models.SessionCompleted &&
			patch.CompletedAt != nil && patch.CompletedAt.Equal(now) &&
			patch.ActualMinutes != nil && *patch.ActualMinutes >= session.PlannedMinutes
	})).Return(nil)

	prefs.On("GetPreferences", mock.Anything, "user-1").Return(chatPreferences("user-1"), nil)

	queue.On("Enqueue", mock.MatchedBy(func(action *models.SendAction) bool {
		return action.Kind == models.ActionSessionCompleted &&
			action.UserID == "user-1" &&
			action.Channel == models.ChannelChat &&
			action.Address == "12345" &&
			action.Fingerprint != ""
	})).Return(nil)

	w := newTestWatchdog(t, sessions, prefs, queue, now)

	w.Scan(context.Background())
}

func TestScan_ReminderOnlyAtThreshold(t *testing.T) {
	sessions := mocks.NewSessionStore(t)
	prefs := mocks.NewPreferenceReader(t)
	queue := mocks.NewActionQueue(t)

	now := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)

	// осталось ровно 5, 4 и 6 минут; напоминание положено только первой
	atThreshold := &models.FocusSession{
		ID:             "session-5",
		UserID:         "user-1",
		StartedAt:      now.Add(-25 * time.Minute),
		PlannedMinutes: 30,
		Status:         models.SessionActive,
	}
	pastThreshold := &models.FocusSession{
		ID:             "session-4",
		UserID:         "user-1",
		StartedAt:      now.Add(-26 * time.Minute),
		PlannedMinutes: 30,
		Status:         models.SessionActive,
	}
	beforeThreshold := &models.FocusSession{
		ID:             "session-6",
		UserID:         "user-1",
		StartedAt:      now.Add(-24 * time.Minute),
		PlannedMinutes: 30,
		Status:         models.SessionActive,
	}

	sessions.On("ListActiveSessions", mock.Anything).
		Return([]*models.FocusSession{atThreshold, pastThreshold, beforeThreshold}, nil)

	prefs.On("GetPreferences", mock.Anything, "user-1").Return(chatPreferences("user-1"), nil).Once()

	queue.On("Enqueue", mock.MatchedBy(func(action *models.SendAction) bool {
		return action.Kind == models.ActionSessionReminder
	})).Return(nil).Once()

	w := newTestWatchdog(t, sessions, prefs, queue, now)

	w.Scan(context.Background())

	sessions.AssertNotCalled(t, "UpdateSession", mock.Anything, mock.Anything, mock.Anything)
}

func TestScan_UpdateFailureKeepsSessionActive(t *testing.T) {
	sessions := mocks.NewSessionStore(t)
	prefs := mocks.NewPreferenceReader(t)
	queue := mocks.NewActionQueue(t)

	now := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)

	session := &models.FocusSession{
		ID:             "session-1",
		UserID:         "user-1",
		StartedAt:      now.Add(-40 * time.Minute),
		PlannedMinutes: 30,
		Status:         models.SessionActive,
	}

	sessions.On("ListActiveSessions", mock.Anything).Return([]*models.FocusSession{session}, nil)
	sessions.On("UpdateSession", mock.Anything, "session-1", mock.Anything).Return(assert.AnError)

	w := newTestWatchdog(t, sessions, prefs, queue, now)

	w.Scan(context.Background())

	// сообщение о завершении не ставится, пока переход не зафиксирован
	queue.AssertNotCalled(t, "Enqueue", mock.Anything)
	prefs.AssertNotCalled(t, "GetPreferences", mock.Anything, mock.Anything)
}

func TestScan_DisabledPreferencesSuppressMessageNotTransition(t *testing.T) {
	sessions := mocks.NewSessionStore(t)
	prefs := mocks.NewPreferenceReader(t)
	queue := mocks.NewActionQueue(t)

	now := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)

	session := &models.FocusSession{
		ID:             "session-1",
		UserID:         "user-1",
		StartedAt:      now.Add(-35 * time.Minute),
		PlannedMinutes: 30,
		Status:         models.SessionActive,
	}

	sessions.On("ListActiveSessions", mock.Anything).Return([]*models.FocusSession{session}, nil)
	sessions.On("UpdateSession", mock.Anything, "session-1", mock.Anything).Return(nil)

	prefs.On("GetPreferences", mock.Anything, "user-1").Return(&models.NotificationPreference{
		UserID:  "user-1",
		Enabled: false,
	}, nil)

	w := newTestWatchdog(t, sessions, prefs, queue, now)

	w.Scan(context.Background())

	queue.AssertNotCalled(t, "Enqueue", mock.Anything)
}

func TestCompletionText(t *testing.T) {
	onTime := completionText(30, 30)
	overrun := completionText(30, 33)

	assert.Contains(t, onTime, "30")
	assert.NotEqual(t, onTime, overrun)
	assert.Contains(t, overrun, "33")
}

func TestScan_ListErrorAborts(t *testing.T) {
	sessions := mocks.NewSessionStore(t)
	prefs := mocks.NewPreferenceReader(t)
	queue := mocks.NewActionQueue(t)

	sessions.On("ListActiveSessions", mock.Anything).Return(nil, assert.AnError)

	w := newTestWatchdog(t, sessions, prefs, queue, time.Now())

	require.NotPanics(t, func() {
		w.Scan(context.Background())
	})

	queue.AssertNotCalled(t, "Enqueue", mock.Anything)
}
