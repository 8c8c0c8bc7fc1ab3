package models

import "time"

type CheckInType string

const (
	CheckInMood     CheckInType = "mood"
	CheckInEnergy   CheckInType = "energy"
	CheckInFocus    CheckInType = "focus"
	CheckInProgress CheckInType = "progress"
)

// CheckInSlot — одна настроенная пара (время суток, набор типов чек-инов).
type CheckInSlot struct {
	Time  string        `json:"time"`
	Types []CheckInType `json:"types"`
}

// CheckInSchedule — расписание поведенческих чек-инов пользователя.
// Каждый слот порождает не более одного живого триггера.
type CheckInSchedule struct {
	UserID       string
	Enabled      bool
	Slots        []CheckInSlot
	Randomize    bool
	SkipWeekends bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ConversationState — маркер "ожидаем ответ типа X с платформы Y",
// записывается перед отправкой чек-ина, чтобы входящий ответ можно было
// сопоставить с вопросом без дополнительного контекста.
type ConversationState struct {
	UserID       string
	AwaitingType CheckInType
	Platform     Channel
	PromptedAt   time.Time
}
