package models

import "time"

type ActionKind string

const (
	ActionCheckInPrompt    ActionKind = "checkin_prompt"
	ActionSessionReminder  ActionKind = "session_reminder"
	ActionSessionCompleted ActionKind = "session_completed"
)

// SendAction — единица работы моста планировщика: сообщение, которое нужно
// провести через защиту от дублей и отправить пользователю.
type SendAction struct {
	Kind        ActionKind
	UserID      string
	Channel     Channel
	Address     string
	Fingerprint string
	Message     string
	EnqueuedAt  time.Time
}
