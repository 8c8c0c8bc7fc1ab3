package models

import "time"

type EventKind string

const (
	EventPreferencesUpdated EventKind = "preferences_updated"
	EventUserDeleted        EventKind = "user_deleted"
	EventRestartRequested   EventKind = "restart_requested"
)

// UserSnapshot — наблюдаемое состояние настроек пользователя на момент
// опроса хранилища.
type UserSnapshot struct {
	Preferences *NotificationPreference
	CheckIn     *CheckInSchedule
}

// ChangeEvent — событие шины изменений. Для preferences_updated заполнены
// Old/New (Old == nil для впервые увиденного пользователя), для остальных
// видов достаточно UserID.
type ChangeEvent struct {
	Kind       EventKind
	UserID     string
	Old        *UserSnapshot
	New        *UserSnapshot
	OccurredAt time.Time
}

// SchedulerStatus — снимок состояния движка для операторского API.
type SchedulerStatus struct {
	SchedulerRunning   bool      `json:"schedulerRunning"`
	LiveHandleCount    int       `json:"liveHandleCount"`
	QueueDepth         int       `json:"queueDepth"`
	LastWatcherCycleAt time.Time `json:"lastWatcherCycleAt"`
}
