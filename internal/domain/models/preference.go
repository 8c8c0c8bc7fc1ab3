package models

import "time"

type Channel string

const (
	ChannelChat  Channel = "chat"
	ChannelPush  Channel = "push"
	ChannelEmail Channel = "email"
)

type ReminderCategory string

const (
	CategoryMorning      ReminderCategory = "morning"
	CategoryTask         ReminderCategory = "task"
	CategoryHabit        ReminderCategory = "habit"
	CategoryMotivation   ReminderCategory = "motivation"
	CategoryDailySummary ReminderCategory = "daily_summary"
)

// NotificationPreference хранит настройки уведомлений одного пользователя.
// Запись создаётся и изменяется API-слоем, планировщик её только читает.
type NotificationPreference struct {
	UserID       string
	Enabled      bool
	ChatEnabled  bool
	PushEnabled  bool
	EmailEnabled bool
	Categories   []ReminderCategory
	StartHour    int
	EndHour      int
	AllowedDays  []time.Weekday
	Timezone     string
	ChatAddress  string
	PushToken    string
	EmailAddress string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PrimaryChannel возвращает первый включённый канал доставки и его адрес.
// Порядок предпочтения: чат, пуш, почта.
func (p *NotificationPreference) PrimaryChannel() (Channel, string, bool) {
	switch {
	case p.ChatEnabled && p.ChatAddress != "":
		return ChannelChat, p.ChatAddress, true
	case p.PushEnabled && p.PushToken != "":
		return ChannelPush, p.PushToken, true
	case p.EmailEnabled && p.EmailAddress != "":
		return ChannelEmail, p.EmailAddress, true
	default:
		return "", "", false
	}
}

// InAllowedHours проверяет, попадает ли локальное время пользователя
// в разрешённое окно [StartHour, EndHour). Нулевое окно трактуется как
// "без ограничений".
func (p *NotificationPreference) InAllowedHours(local time.Time) bool {
	if p.StartHour == 0 && p.EndHour == 0 {
		return true
	}

	h := local.Hour()

	if p.StartHour <= p.EndHour {
		return h >= p.StartHour && h < p.EndHour
	}

	// окно через полночь, например 22:00–06:00
	return h >= p.StartHour || h < p.EndHour
}

// OnAllowedDay проверяет день недели против списка разрешённых дней.
// Пустой список означает "каждый день".
func (p *NotificationPreference) OnAllowedDay(local time.Time) bool {
	if len(p.AllowedDays) == 0 {
		return true
	}

	for _, d := range p.AllowedDays {
		if d == local.Weekday() {
			return true
		}
	}

	return false
}
