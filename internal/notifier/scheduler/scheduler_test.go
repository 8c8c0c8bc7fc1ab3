package scheduler

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/YazzTTV/productif-notifier/internal/domain/models"
	"github.com/YazzTTV/productif-notifier/internal/notifier/scheduler/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func enabledPreferences(userID string) *models.NotificationPreference {
	return &models.NotificationPreference{
		UserID:      userID,
		Enabled:     true,
		ChatEnabled: true,
		ChatAddress: "12345",
		Timezone:    "UTC",
	}
}

// tuesday — будний день для детерминированных проверок установки.
var tuesday = time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)

func TestInstallForUser_InstallsHandlePerSlot(t *testing.T) {
	store := mocks.NewPreferenceStore(t)
	queue := mocks.NewActionQueue(t)

	sched := NewUserScheduler(store, queue, 15, testLogger())
	sched.now = func() time.Time { return tuesday }

	t.Cleanup(sched.Stop)

	store.On("GetPreferences", mock.Anything, "user-1").Return(enabledPreferences("user-1"), nil)
	store.On("GetCheckInSchedule", mock.Anything, "user-1").Return(&models.CheckInSchedule{
		UserID:  "user-1",
		Enabled: true,
		Slots: []models.CheckInSlot{
			{Time: "08:00", Types: []models.CheckInType{models.CheckInMood}},
			{Time: "20:00", Types: []models.CheckInType{models.CheckInProgress}},
		},
	}, nil)

	err := sched.InstallForUser(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, 2, sched.HandleCountForUser("user-1"))
	assert.Equal(t, []string{"08:00", "20:00"}, sched.ScheduledTimes("user-1"))
	assert.Equal(t, []string{"user-1"}, sched.ActiveUserIDs())
}

func TestInstallForUser_RepeatedInstallDoesNotLeakHandles(t *testing.T) {
	store := mocks.NewPreferenceStore(t)
	queue := mocks.NewActionQueue(t)

	sched := NewUserScheduler(store, queue, 15, testLogger())
	sched.now = func() time.Time { return tuesday }

	t.Cleanup(sched.Stop)

	store.On("GetPreferences", mock.Anything, "user-1").Return(enabledPreferences("user-1"), nil)
	store.On("GetCheckInSchedule", mock.Anything, "user-1").Return(&models.CheckInSchedule{
		UserID:  "user-1",
		Enabled: true,
		Slots: []models.CheckInSlot{
			{Time: "09:00", Types: []models.CheckInType{models.CheckInMood}},
		},
	}, nil)

	for i := 0; i < 5; i++ {
		require.NoError(t, sched.InstallForUser(context.Background(), "user-1"))
	}

	assert.Equal(t, 1, sched.HandleCountForUser("user-1"))
	assert.Equal(t, 1, sched.LiveHandleCount())
}

func TestInstallForUser_DisabledPreferences(t *testing.T) {
	store := mocks.NewPreferenceStore(t)
	queue := mocks.NewActionQueue(t)

	sched := NewUserScheduler(store, queue, 15, testLogger())

	t.Cleanup(sched.Stop)

	store.On("GetPreferences", mock.Anything, "user-1").Return(&models.NotificationPreference{
		UserID:  "user-1",
		Enabled: false,
	}, nil)

	err := sched.InstallForUser(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Zero(t, sched.HandleCountForUser("user-1"))
	store.AssertNotCalled(t, "GetCheckInSchedule", mock.Anything, "user-1")
}

func TestInstallForUser_DisabledScheduleRemovesOldHandles(t *testing.T) {
	store := mocks.NewPreferenceStore(t)
	queue := mocks.NewActionQueue(t)

	sched := NewUserScheduler(store, queue, 15, testLogger())
	sched.now = func() time.Time { return tuesday }

	t.Cleanup(sched.Stop)

	store.On("GetPreferences", mock.Anything, "user-1").Return(enabledPreferences("user-1"), nil)
	store.On("GetCheckInSchedule", mock.Anything, "user-1").Return(&models.CheckInSchedule{
		UserID:  "user-1",
		Enabled: true,
		Slots: []models.CheckInSlot{
			{Time: "09:00", Types: []models.CheckInType{models.CheckInMood}},
		},
	}, nil).Once()

	require.NoError(t, sched.InstallForUser(context.Background(), "user-1"))
	require.Equal(t, 1, sched.HandleCountForUser("user-1"))

	store.On("GetCheckInSchedule", mock.Anything, "user-1").Return(&models.CheckInSchedule{
		UserID:  "user-1",
		Enabled: false,
	}, nil).Once()

	require.NoError(t, sched.InstallForUser(context.Background(), "user-1"))
	assert.Zero(t, sched.HandleCountForUser("user-1"))
}

func TestInstallForUser_RandomizeShiftsWithinJitterWindow(t *testing.T) {
	store := mocks.NewPreferenceStore(t)
	queue := mocks.NewActionQueue(t)

	sched := NewUserScheduler(store, queue, 15, testLogger())
	sched.now = func() time.Time { return tuesday }

	t.Cleanup(sched.Stop)

	store.On("GetPreferences", mock.Anything, "user-1").Return(enabledPreferences("user-1"), nil)
	store.On("GetCheckInSchedule", mock.Anything, "user-1").Return(&models.CheckInSchedule{
		UserID:    "user-1",
		Enabled:   true,
		Randomize: true,
		Slots: []models.CheckInSlot{
			{Time: "09:00", Types: []models.CheckInType{models.CheckInEnergy}},
		},
	}, nil)

	require.NoError(t, sched.InstallForUser(context.Background(), "user-1"))

	times := sched.ScheduledTimes("user-1")
	require.Len(t, times, 1)

	minutes, err := parseSlotTime(times[0])
	require.NoError(t, err)

	assert.GreaterOrEqual(t, minutes, 9*60-15)
	assert.LessOrEqual(t, minutes, 9*60+15)
}

func TestInstallForUser_SkipWeekends(t *testing.T) {
	store := mocks.NewPreferenceStore(t)
	queue := mocks.NewActionQueue(t)

	sched := NewUserScheduler(store, queue, 15, testLogger())

	t.Cleanup(sched.Stop)

	schedule := &models.CheckInSchedule{
		UserID:       "user-1",
		Enabled:      true,
		SkipWeekends: true,
		Slots: []models.CheckInSlot{
			{Time: "09:00", Types: []models.CheckInType{models.CheckInMood}},
		},
	}

	store.On("GetPreferences", mock.Anything, "user-1").Return(enabledPreferences("user-1"), nil)
	store.On("GetCheckInSchedule", mock.Anything, "user-1").Return(schedule, nil)

	saturday := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	sched.now = func() time.Time { return saturday }

	require.NoError(t, sched.InstallForUser(context.Background(), "user-1"))
	assert.Zero(t, sched.HandleCountForUser("user-1"))

	sched.now = func() time.Time { return tuesday }

	require.NoError(t, sched.InstallForUser(context.Background(), "user-1"))
	assert.Equal(t, 1, sched.HandleCountForUser("user-1"))
}

func TestInstallForUser_InvalidSlotSkipped(t *testing.T) {
	store := mocks.NewPreferenceStore(t)
	queue := mocks.NewActionQueue(t)

	sched := NewUserScheduler(store, queue, 15, testLogger())
	sched.now = func() time.Time { return tuesday }

	t.Cleanup(sched.Stop)

	store.On("GetPreferences", mock.Anything, "user-1").Return(enabledPreferences("user-1"), nil)
	store.On("GetCheckInSchedule", mock.Anything, "user-1").Return(&models.CheckInSchedule{
		UserID:  "user-1",
		Enabled: true,
		Slots: []models.CheckInSlot{
			{Time: "25:99", Types: []models.CheckInType{models.CheckInMood}},
			{Time: "10:00", Types: []models.CheckInType{models.CheckInFocus}},
		},
	}, nil)

	require.NoError(t, sched.InstallForUser(context.Background(), "user-1"))

	assert.Equal(t, 1, sched.HandleCountForUser("user-1"))
	assert.Equal(t, []string{"10:00"}, sched.ScheduledTimes("user-1"))
}

func TestInstallForUser_ConcurrentInstallsKeepSingleRunner(t *testing.T) {
	store := mocks.NewPreferenceStore(t)
	queue := mocks.NewActionQueue(t)

	sched := NewUserScheduler(store, queue, 15, testLogger())
	sched.now = func() time.Time { return tuesday }

	t.Cleanup(sched.Stop)

	store.On("GetPreferences", mock.Anything, "user-1").Return(enabledPreferences("user-1"), nil)
	store.On("GetCheckInSchedule", mock.Anything, "user-1").Return(&models.CheckInSchedule{
		UserID:  "user-1",
		Enabled: true,
		Slots: []models.CheckInSlot{
			{Time: "09:00", Types: []models.CheckInType{models.CheckInMood}},
		},
	}, nil)

	var wg sync.WaitGroup

	for i := 0; i < 2; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			assert.NoError(t, sched.InstallForUser(context.Background(), "user-1"))
		}()
	}

	wg.Wait()

	sched.mu.Lock()
	runnerCount := len(sched.runners)
	sched.mu.Unlock()

	assert.Equal(t, 1, runnerCount)
	assert.Equal(t, 1, sched.LiveHandleCount())

	sched.RemoveForUser("user-1")

	sched.mu.Lock()
	runnerCount = len(sched.runners)
	sched.mu.Unlock()

	assert.Zero(t, runnerCount)
	assert.Zero(t, sched.LiveHandleCount())
}

func TestInstallForUser_ReplacesStrayRunner(t *testing.T) {
	store := mocks.NewPreferenceStore(t)
	queue := mocks.NewActionQueue(t)

	sched := NewUserScheduler(store, queue, 15, testLogger())
	sched.now = func() time.Time { return tuesday }

	t.Cleanup(sched.Stop)

	stray := gocron.NewScheduler(time.UTC)
	stray.StartAsync()

	sched.mu.Lock()
	sched.runners["user-1"] = stray
	sched.mu.Unlock()

	store.On("GetPreferences", mock.Anything, "user-1").Return(enabledPreferences("user-1"), nil)
	store.On("GetCheckInSchedule", mock.Anything, "user-1").Return(&models.CheckInSchedule{
		UserID:  "user-1",
		Enabled: true,
		Slots: []models.CheckInSlot{
			{Time: "09:00", Types: []models.CheckInType{models.CheckInMood}},
		},
	}, nil)

	require.NoError(t, sched.InstallForUser(context.Background(), "user-1"))

	assert.False(t, stray.IsRunning())

	sched.mu.Lock()
	replaced := sched.runners["user-1"] != stray
	sched.mu.Unlock()

	assert.True(t, replaced)
}

func TestHandleEvent_UserDeletedRemovesHandles(t *testing.T) {
	store := mocks.NewPreferenceStore(t)
	queue := mocks.NewActionQueue(t)

	sched := NewUserScheduler(store, queue, 15, testLogger())
	sched.now = func() time.Time { return tuesday }

	t.Cleanup(sched.Stop)

	store.On("GetPreferences", mock.Anything, "user-1").Return(enabledPreferences("user-1"), nil)
	store.On("GetCheckInSchedule", mock.Anything, "user-1").Return(&models.CheckInSchedule{
		UserID:  "user-1",
		Enabled: true,
		Slots: []models.CheckInSlot{
			{Time: "09:00", Types: []models.CheckInType{models.CheckInMood}},
		},
	}, nil)

	require.NoError(t, sched.InstallForUser(context.Background(), "user-1"))
	require.Equal(t, 1, sched.LiveHandleCount())

	sched.HandleEvent(models.ChangeEvent{
		Kind:   models.EventUserDeleted,
		UserID: "user-1",
	})

	assert.Zero(t, sched.LiveHandleCount())
	assert.Empty(t, sched.ActiveUserIDs())
}

func TestReinstallAll_ContinuesAfterUserError(t *testing.T) {
	store := mocks.NewPreferenceStore(t)
	queue := mocks.NewActionQueue(t)

	sched := NewUserScheduler(store, queue, 15, testLogger())
	sched.now = func() time.Time { return tuesday }

	t.Cleanup(sched.Stop)

	store.On("ListUserIDs", mock.Anything).Return([]string{"broken", "user-2"}, nil)
	store.On("GetPreferences", mock.Anything, "broken").Return(nil, assert.AnError)
	store.On("GetPreferences", mock.Anything, "user-2").Return(enabledPreferences("user-2"), nil)
	store.On("GetCheckInSchedule", mock.Anything, "user-2").Return(&models.CheckInSchedule{
		UserID:  "user-2",
		Enabled: true,
		Slots: []models.CheckInSlot{
			{Time: "11:00", Types: []models.CheckInType{models.CheckInProgress}},
		},
	}, nil)

	sched.ReinstallAll(context.Background())

	assert.Zero(t, sched.HandleCountForUser("broken"))
	assert.Equal(t, 1, sched.HandleCountForUser("user-2"))
}
