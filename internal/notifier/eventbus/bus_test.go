package eventbus_test

import (
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YazzTTV/productif-notifier/internal/domain/models"
	"github.com/YazzTTV/productif-notifier/internal/notifier/eventbus"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func TestBus_DeliversToSubscribersOfKind(t *testing.T) {
	bus := eventbus.NewBus(testLogger())

	var wg sync.WaitGroup

	wg.Add(2)

	var mu sync.Mutex

	var got []models.ChangeEvent

	handler := func(event models.ChangeEvent) {
		mu.Lock()
		got = append(got, event)
		mu.Unlock()
		wg.Done()
	}

	bus.Subscribe(models.EventPreferencesUpdated, handler)
	bus.Subscribe(models.EventPreferencesUpdated, handler)

	other := make(chan struct{}, 1)
	bus.Subscribe(models.EventUserDeleted, func(models.ChangeEvent) {
		other <- struct{}{}
	})

	bus.Publish(models.ChangeEvent{
		Kind:   models.EventPreferencesUpdated,
		UserID: "user-1",
	})

	wg.Wait()

	mu.Lock()
	defer mu.Unlock()

	require.Len(t, got, 2)
	assert.Equal(t, "user-1", got[0].UserID)
	assert.False(t, got[0].OccurredAt.IsZero())

	select {
	case <-other:
		t.Fatal("обработчик другого вида событий не должен был сработать")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_PublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := eventbus.NewBus(testLogger())

	require.NotPanics(t, func() {
		bus.Publish(models.ChangeEvent{Kind: models.EventRestartRequested})
	})
}

func TestBus_PanickingHandlerDoesNotAffectOthers(t *testing.T) {
	bus := eventbus.NewBus(testLogger())

	done := make(chan struct{})

	bus.Subscribe(models.EventUserDeleted, func(models.ChangeEvent) {
		panic("упавший обработчик")
	})
	bus.Subscribe(models.EventUserDeleted, func(models.ChangeEvent) {
		close(done)
	})

	bus.Publish(models.ChangeEvent{
		Kind:   models.EventUserDeleted,
		UserID: "user-1",
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("второй обработчик не получил событие")
	}
}
