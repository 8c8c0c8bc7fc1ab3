package scheduler

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	customerrors "github.com/YazzTTV/productif-notifier/internal/domain/errors"
)

const minutesPerDay = 24 * 60

// parseSlotTime разбирает время слота "HH:MM" в минуты от полуночи.
func parseSlotTime(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, &customerrors.ErrInvalidSlotTime{Value: value}
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, &customerrors.ErrInvalidSlotTime{Value: value}
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, &customerrors.ErrInvalidSlotTime{Value: value}
	}

	return hour*60 + minute, nil
}

// applyJitter сдвигает номинальное время на псевдослучайное смещение в
// пределах ±maxJitter минут. Смещение вычисляется при установке триггера,
// а не при срабатывании, поэтому оно стабильно в рамках одной установки.
func applyJitter(minutes, maxJitter int, rnd *rand.Rand) int {
	if maxJitter <= 0 {
		return minutes
	}

	offset := rnd.Intn(2*maxJitter+1) - maxJitter

	shifted := minutes + offset
	if shifted < 0 {
		shifted = 0
	}

	if shifted >= minutesPerDay {
		shifted = minutesPerDay - 1
	}

	return shifted
}

func formatSlotTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
