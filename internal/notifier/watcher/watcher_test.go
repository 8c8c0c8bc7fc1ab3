package watcher_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	customerrors "github.com/YazzTTV/productif-notifier/internal/domain/errors"
	"github.com/YazzTTV/productif-notifier/internal/domain/models"
	"github.com/YazzTTV/productif-notifier/internal/notifier/watcher"
	"github.com/YazzTTV/productif-notifier/internal/notifier/watcher/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func preferencesV(userID, timezone string) *models.NotificationPreference {
	return &models.NotificationPreference{
		UserID:      userID,
		Enabled:     true,
		ChatEnabled: true,
		ChatAddress: "12345",
		Timezone:    timezone,
	}
}

func collectEvents(bus *mocks.EventPublisher, events *[]models.ChangeEvent) {
	bus.On("Publish", mock.Anything).Run(func(args mock.Arguments) {
		event, _ := args.Get(0).(models.ChangeEvent)
		*events = append(*events, event)
	}).Return().Maybe()
}

func TestCycle_FirstSightPublishesUpdate(t *testing.T) {
	store := mocks.NewStore(t)
	bus := mocks.NewEventPublisher(t)
	handles := mocks.NewHandleLister(t)

	var events []models.ChangeEvent

	collectEvents(bus, &events)

	store.On("ListUserIDs", mock.Anything).Return([]string{"user-1"}, nil)
	store.On("GetPreferences", mock.Anything, "user-1").Return(preferencesV("user-1", "UTC"), nil)
	store.On("GetCheckInSchedule", mock.Anything, "user-1").
		Return(nil, &customerrors.ErrScheduleNotFound{UserID: "user-1"})

	w := watcher.NewWatcher(store, bus, handles, 15*time.Second, 1, testLogger())

	w.Cycle(context.Background())

	require.Len(t, events, 1)
	assert.Equal(t, models.EventPreferencesUpdated, events[0].Kind)
	assert.Equal(t, "user-1", events[0].UserID)
	assert.Nil(t, events[0].Old)
	require.NotNil(t, events[0].New)
	assert.Nil(t, events[0].New.CheckIn)
	assert.False(t, w.LastCycleAt().IsZero())
}

func TestCycle_UnchangedStateStaysSilent(t *testing.T) {
	store := mocks.NewStore(t)
	bus := mocks.NewEventPublisher(t)
	handles := mocks.NewHandleLister(t)

	var events []models.ChangeEvent

	collectEvents(bus, &events)

	store.On("ListUserIDs", mock.Anything).Return([]string{"user-1"}, nil)
	store.On("GetPreferences", mock.Anything, "user-1").Return(preferencesV("user-1", "UTC"), nil)
	store.On("GetCheckInSchedule", mock.Anything, "user-1").Return(&models.CheckInSchedule{
		UserID:  "user-1",
		Enabled: true,
		Slots: []models.CheckInSlot{
			{Time: "09:00", Types: []models.CheckInType{models.CheckInMood}},
		},
	}, nil)

	w := watcher.NewWatcher(store, bus, handles, 15*time.Second, 1, testLogger())

	w.Cycle(context.Background())
	w.Cycle(context.Background())
	w.Cycle(context.Background())

	// только событие первого знакомства, дальше состояние не менялось
	assert.Len(t, events, 1)
}

func TestCycle_DriftPublishesOldAndNew(t *testing.T) {
	store := mocks.NewStore(t)
	bus := mocks.NewEventPublisher(t)
	handles := mocks.NewHandleLister(t)

	var events []models.ChangeEvent

	collectEvents(bus, &events)

	store.On("ListUserIDs", mock.Anything).Return([]string{"user-1"}, nil)
	store.On("GetPreferences", mock.Anything, "user-1").
		Return(preferencesV("user-1", "UTC"), nil).Once()
	store.On("GetPreferences", mock.Anything, "user-1").
		Return(preferencesV("user-1", "Europe/Moscow"), nil).Once()
	store.On("GetCheckInSchedule", mock.Anything, "user-1").
		Return(nil, &customerrors.ErrScheduleNotFound{UserID: "user-1"})

	w := watcher.NewWatcher(store, bus, handles, 15*time.Second, 1, testLogger())

	w.Cycle(context.Background())
	w.Cycle(context.Background())

	require.Len(t, events, 2)

	drift := events[1]
	require.NotNil(t, drift.Old)
	require.NotNil(t, drift.New)
	assert.Equal(t, "UTC", drift.Old.Preferences.Timezone)
	assert.Equal(t, "Europe/Moscow", drift.New.Preferences.Timezone)
}

func TestCycle_TransientErrorKeepsCache(t *testing.T) {
	store := mocks.NewStore(t)
	bus := mocks.NewEventPublisher(t)
	handles := mocks.NewHandleLister(t)

	var events []models.ChangeEvent

	collectEvents(bus, &events)

	store.On("ListUserIDs", mock.Anything).Return([]string{"user-1"}, nil)
	store.On("GetPreferences", mock.Anything, "user-1").
		Return(preferencesV("user-1", "UTC"), nil).Once()
	store.On("GetPreferences", mock.Anything, "user-1").
		Return(nil, assert.AnError).Once()
	store.On("GetPreferences", mock.Anything, "user-1").
		Return(preferencesV("user-1", "UTC"), nil).Once()
	store.On("GetCheckInSchedule", mock.Anything, "user-1").
		Return(nil, &customerrors.ErrScheduleNotFound{UserID: "user-1"})

	w := watcher.NewWatcher(store, bus, handles, 15*time.Second, 1, testLogger())

	w.Cycle(context.Background())
	w.Cycle(context.Background())
	w.Cycle(context.Background())

	// сбой чтения не породил ни дрейфа, ни удаления
	require.Len(t, events, 1)
	assert.Equal(t, models.EventPreferencesUpdated, events[0].Kind)
}

func TestCycle_MissingPreferencesMeansDeleted(t *testing.T) {
	store := mocks.NewStore(t)
	bus := mocks.NewEventPublisher(t)
	handles := mocks.NewHandleLister(t)

	var events []models.ChangeEvent

	collectEvents(bus, &events)

	store.On("ListUserIDs", mock.Anything).Return([]string{"user-1"}, nil)
	store.On("GetPreferences", mock.Anything, "user-1").
		Return(preferencesV("user-1", "UTC"), nil).Once()
	store.On("GetPreferences", mock.Anything, "user-1").
		Return(nil, &customerrors.ErrPreferencesNotFound{UserID: "user-1"}).Once()
	store.On("GetCheckInSchedule", mock.Anything, "user-1").
		Return(nil, &customerrors.ErrScheduleNotFound{UserID: "user-1"}).Once()

	w := watcher.NewWatcher(store, bus, handles, 15*time.Second, 1, testLogger())

	w.Cycle(context.Background())
	w.Cycle(context.Background())

	require.Len(t, events, 2)
	assert.Equal(t, models.EventUserDeleted, events[1].Kind)
	assert.Equal(t, "user-1", events[1].UserID)
}

func TestCycle_FullScanDetectsVanishedUser(t *testing.T) {
	store := mocks.NewStore(t)
	bus := mocks.NewEventPublisher(t)
	handles := mocks.NewHandleLister(t)

	var events []models.ChangeEvent

	collectEvents(bus, &events)

	store.On("ListUserIDs", mock.Anything).Return([]string{"user-1"}, nil).Once()
	store.On("ListUserIDs", mock.Anything).Return([]string{}, nil).Once()
	store.On("GetPreferences", mock.Anything, "user-1").Return(preferencesV("user-1", "UTC"), nil).Once()
	store.On("GetCheckInSchedule", mock.Anything, "user-1").
		Return(nil, &customerrors.ErrScheduleNotFound{UserID: "user-1"}).Once()

	w := watcher.NewWatcher(store, bus, handles, 15*time.Second, 1, testLogger())

	w.Cycle(context.Background())
	w.Cycle(context.Background())

	require.Len(t, events, 2)
	assert.Equal(t, models.EventUserDeleted, events[1].Kind)
}

func TestCycle_RegularPassCoversOnlyActiveUsers(t *testing.T) {
	store := mocks.NewStore(t)
	bus := mocks.NewEventPublisher(t)
	handles := mocks.NewHandleLister(t)

	var events []models.ChangeEvent

	collectEvents(bus, &events)

	store.On("ListUserIDs", mock.Anything).Return([]string{"user-1"}, nil).Once()
	store.On("GetPreferences", mock.Anything, "user-1").Return(preferencesV("user-1", "UTC"), nil)
	store.On("GetCheckInSchedule", mock.Anything, "user-1").
		Return(nil, &customerrors.ErrScheduleNotFound{UserID: "user-1"})

	handles.On("ActiveUserIDs").Return([]string{"user-1"}).Once()

	w := watcher.NewWatcher(store, bus, handles, 15*time.Second, 100, testLogger())

	w.Cycle(context.Background())
	w.Cycle(context.Background())

	store.AssertNumberOfCalls(t, "ListUserIDs", 1)
	handles.AssertNumberOfCalls(t, "ActiveUserIDs", 1)
}
