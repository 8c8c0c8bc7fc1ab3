package models

import "time"

type DeliveryOutcome string

const (
	OutcomeSent             DeliveryOutcome = "sent"
	OutcomeBlockedDuplicate DeliveryOutcome = "blocked_duplicate"
	OutcomeFailed           DeliveryOutcome = "failed"
)

// DeliveryRecord — журнальная запись одной попытки отправки (append-only).
// Используется защитой от дублей и для аудита.
type DeliveryRecord struct {
	ID                int64
	Recipient         string
	Fingerprint       string
	Channel           Channel
	Outcome           DeliveryOutcome
	ProviderMessageID string
	Error             string
	CreatedAt         time.Time
}

// SendResult — результат одной попытки отправки через провайдера.
type SendResult struct {
	Success           bool
	ProviderMessageID string
}
