package models

import "time"

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
)

// FocusSession — тайм-боксированная фокус-сессия пользователя.
// Переход active → completed одноразовый: завершённая сессия никогда
// не возвращается в работу и не попадает в последующие сканы.
type FocusSession struct {
	ID             string
	UserID         string
	StartedAt      time.Time
	PlannedMinutes int
	Status         SessionStatus
	CompletedAt    *time.Time
	ActualMinutes  *int
	CreatedAt      time.Time
}

// FocusSessionPatch — частичное обновление сессии; nil-поля не трогаются.
type FocusSessionPatch struct {
	Status        *SessionStatus
	CompletedAt   *time.Time
	ActualMinutes *int
}
