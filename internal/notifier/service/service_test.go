package service_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/YazzTTV/productif-notifier/internal/domain/models"
	"github.com/YazzTTV/productif-notifier/internal/notifier/service"
	"github.com/YazzTTV/productif-notifier/internal/notifier/service/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

type fixtures struct {
	bus       *mocks.EventBus
	scheduler *mocks.TriggerScheduler
	watcher   *mocks.ChangeWatcher
	watchdog  *mocks.SessionWatchdog
	bridge    *mocks.ActionBridge
	service   *service.NotifierService
}

func newFixtures(t *testing.T) *fixtures {
	t.Helper()

	f := &fixtures{
		bus:       mocks.NewEventBus(t),
		scheduler: mocks.NewTriggerScheduler(t),
		watcher:   mocks.NewChangeWatcher(t),
		watchdog:  mocks.NewSessionWatchdog(t),
		bridge:    mocks.NewActionBridge(t),
	}

	f.service = service.NewNotifierService(
		f.bus, f.scheduler, f.watcher, f.watchdog, f.bridge, "00:05", testLogger(),
	)

	return f
}

func (f *fixtures) expectStart() {
	f.bus.On("Subscribe", models.EventPreferencesUpdated, mock.Anything).Return()
	f.bus.On("Subscribe", models.EventUserDeleted, mock.Anything).Return()
	f.bus.On("Subscribe", models.EventRestartRequested, mock.Anything).Return()
	f.bridge.On("Start").Return()
	f.scheduler.On("ReinstallAll", mock.Anything).Return()
	f.watcher.On("Start").Return()
	f.watchdog.On("Start").Return()
}

func (f *fixtures) expectStop() {
	f.watchdog.On("Stop").Return()
	f.watcher.On("Stop").Return()
	f.scheduler.On("Stop").Return()
	f.bridge.On("Stop").Return()
}

func TestStart_WiresSubscriptionsAndComponents(t *testing.T) {
	f := newFixtures(t)

	f.expectStart()
	f.expectStop()

	f.service.Start(context.Background())

	// повторный Start идемпотентен
	f.service.Start(context.Background())

	f.bus.AssertNumberOfCalls(t, "Subscribe", 3)
	f.bridge.AssertNumberOfCalls(t, "Start", 1)
	f.scheduler.AssertNumberOfCalls(t, "ReinstallAll", 1)

	f.service.Stop()
}

func TestStop_WithoutStartIsNoop(t *testing.T) {
	f := newFixtures(t)

	f.service.Stop()

	f.bridge.AssertNotCalled(t, "Stop")
}

func TestStatus_AggregatesComponentState(t *testing.T) {
	f := newFixtures(t)

	lastCycle := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)

	f.scheduler.On("LiveHandleCount").Return(12)
	f.bridge.On("QueueDepth").Return(3)
	f.watcher.On("LastCycleAt").Return(lastCycle)

	status := f.service.Status()

	assert.False(t, status.SchedulerRunning)
	assert.Equal(t, 12, status.LiveHandleCount)
	assert.Equal(t, 3, status.QueueDepth)
	assert.True(t, status.LastWatcherCycleAt.Equal(lastCycle))
}

func TestRestart_PublishesRestartEvent(t *testing.T) {
	f := newFixtures(t)

	f.bus.On("Publish", mock.MatchedBy(func(event models.ChangeEvent) bool {
		return event.Kind == models.EventRestartRequested
	})).Return()

	f.service.Restart()
}

func TestForceRefresh_PublishesPreferencesUpdated(t *testing.T) {
	f := newFixtures(t)

	f.bus.On("Publish", mock.MatchedBy(func(event models.ChangeEvent) bool {
		return event.Kind == models.EventPreferencesUpdated && event.UserID == "user-1"
	})).Return()

	f.service.ForceRefresh("user-1")
}
