package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/YazzTTV/productif-notifier/internal/domain/models"
)

func at(hour int) time.Time {
	return time.Date(2025, 3, 4, hour, 30, 0, 0, time.UTC)
}

func TestInAllowedHours(t *testing.T) {
	unrestricted := &models.NotificationPreference{}

	assert.True(t, unrestricted.InAllowedHours(at(3)))

	daytime := &models.NotificationPreference{StartHour: 9, EndHour: 21}

	assert.True(t, daytime.InAllowedHours(at(9)))
	assert.True(t, daytime.InAllowedHours(at(20)))
	assert.False(t, daytime.InAllowedHours(at(21)))
	assert.False(t, daytime.InAllowedHours(at(8)))

	overnight := &models.NotificationPreference{StartHour: 22, EndHour: 6}

	assert.True(t, overnight.InAllowedHours(at(23)))
	assert.True(t, overnight.InAllowedHours(at(5)))
	assert.False(t, overnight.InAllowedHours(at(12)))
}

func TestOnAllowedDay(t *testing.T) {
	tuesday := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)

	everyDay := &models.NotificationPreference{}

	assert.True(t, everyDay.OnAllowedDay(sunday))

	weekdaysOnly := &models.NotificationPreference{
		AllowedDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
	}

	assert.True(t, weekdaysOnly.OnAllowedDay(tuesday))
	assert.False(t, weekdaysOnly.OnAllowedDay(sunday))
}

func TestPrimaryChannel(t *testing.T) {
	tests := []struct {
		name        string
		prefs       models.NotificationPreference
		wantChannel models.Channel
		wantAddress string
		wantOK      bool
	}{
		{
			name: "чат в приоритете",
			prefs: models.NotificationPreference{
				ChatEnabled: true, ChatAddress: "12345",
				PushEnabled: true, PushToken: "token-1",
			},
			wantChannel: models.ChannelChat,
			wantAddress: "12345",
			wantOK:      true,
		},
		{
			name: "пуш при выключенном чате",
			prefs: models.NotificationPreference{
				PushEnabled: true, PushToken: "token-1",
				EmailEnabled: true, EmailAddress: "user@example.com",
			},
			wantChannel: models.ChannelPush,
			wantAddress: "token-1",
			wantOK:      true,
		},
		{
			name: "почта последней",
			prefs: models.NotificationPreference{
				EmailEnabled: true, EmailAddress: "user@example.com",
			},
			wantChannel: models.ChannelEmail,
			wantAddress: "user@example.com",
			wantOK:      true,
		},
		{
			name: "канал включён, но адрес пуст",
			prefs: models.NotificationPreference{
				ChatEnabled: true,
			},
			wantOK: false,
		},
		{
			name:   "ни одного канала",
			prefs:  models.NotificationPreference{},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			channel, address, ok := tt.prefs.PrimaryChannel()

			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.wantChannel, channel)
				assert.Equal(t, tt.wantAddress, address)
			}
		})
	}
}
