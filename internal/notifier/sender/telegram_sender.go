package sender

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/YazzTTV/productif-notifier/internal/domain/models"
)

// TelegramSender доставляет сообщения канала chat через Telegram Bot API.
// Адрес получателя — идентификатор чата.
type TelegramSender struct {
	bot    *tgbotapi.BotAPI
	logger *slog.Logger
}

func NewTelegramSender(token string, logger *slog.Logger) (*TelegramSender, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании Telegram бота: %w", err)
	}

	logger.Info("Telegram бот успешно инициализирован",
		"username", bot.Self.UserName,
	)

	return &TelegramSender{
		bot:    bot,
		logger: logger,
	}, nil
}

func (s *TelegramSender) Send(
	_ context.Context,
	_ models.Channel,
	address, content string,
) (*models.SendResult, error) {
	chatID, err := strconv.ParseInt(address, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("некорректный адрес чата %q: %w", address, err)
	}

	msg := tgbotapi.NewMessage(chatID, content)
	msg.ParseMode = tgbotapi.ModeHTML

	sent, err := s.bot.Send(msg)
	if err != nil {
		return nil, fmt.Errorf("ошибка при отправке сообщения в Telegram: %w", err)
	}

	s.logger.Debug("Сообщение отправлено в Telegram",
		"chatID", chatID,
		"messageID", sent.MessageID,
	)

	return &models.SendResult{
		Success:           true,
		ProviderMessageID: strconv.Itoa(sent.MessageID),
	}, nil
}
