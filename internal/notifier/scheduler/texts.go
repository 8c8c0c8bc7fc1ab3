package scheduler

import (
	"math/rand"

	"github.com/YazzTTV/productif-notifier/internal/domain/models"
)

// Варианты текстов чек-инов. Вариант выбирается равновероятно, чтобы
// пользователь не получал один и тот же текст дословно изо дня в день.
var checkInVariants = map[models.CheckInType][]string{
	models.CheckInMood: {
		"👋 Привет! Как настроение прямо сейчас?",
		"🙂 Короткий чек-ин: как ты себя чувствуешь?",
		"💭 Минутка рефлексии — какое у тебя настроение?",
	},
	models.CheckInEnergy: {
		"⚡ Сколько у тебя сейчас энергии по шкале от 1 до 10?",
		"🔋 Чек-ин энергии: как заряд на остаток дня?",
		"🌤 Как силы? Оцени уровень энергии одним числом.",
	},
	models.CheckInFocus: {
		"🎯 Насколько легко тебе сейчас сосредоточиться?",
		"🧠 Чек-ин фокуса: что помогает или мешает концентрации?",
		"🔍 Как идёт работа — получается держать фокус?",
	},
	models.CheckInProgress: {
		"📈 Как продвигаются сегодняшние задачи?",
		"✅ Короткий чек-ин: что уже удалось закрыть сегодня?",
		"🗒 Расскажи в паре слов, как идёт день по плану.",
	},
}

// pickVariant возвращает случайный вариант текста для типа чек-ина.
func pickVariant(checkInType models.CheckInType, rnd *rand.Rand) (string, bool) {
	variants, ok := checkInVariants[checkInType]
	if !ok || len(variants) == 0 {
		return "", false
	}

	return variants[rnd.Intn(len(variants))], true
}
