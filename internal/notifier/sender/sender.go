package sender

import (
	"context"
	"log/slog"

	customerrors "github.com/YazzTTV/productif-notifier/internal/domain/errors"
	"github.com/YazzTTV/productif-notifier/internal/domain/models"
)

// Sender абстрагирует исходящую доставку по одному каналу. Ненулевая ошибка
// означает неуспех попытки; повторы внутри одной попытки — дело реализации
// (HTTP-клиент с ретраями), мост повторно не отправляет.
type Sender interface {
	Send(ctx context.Context, channel models.Channel, address, content string) (*models.SendResult, error)
}

// MultiChannelSender маршрутизирует отправку по каналу на зарегистрированные
// отправители.
type MultiChannelSender struct {
	senders map[models.Channel]Sender
	logger  *slog.Logger
}

func NewMultiChannelSender(logger *slog.Logger) *MultiChannelSender {
	return &MultiChannelSender{
		senders: make(map[models.Channel]Sender),
		logger:  logger,
	}
}

func (s *MultiChannelSender) Register(channel models.Channel, sender Sender) {
	s.senders[channel] = sender
}

func (s *MultiChannelSender) Send(
	ctx context.Context,
	channel models.Channel,
	address, content string,
) (*models.SendResult, error) {
	sender, ok := s.senders[channel]
	if !ok {
		return nil, &customerrors.ErrUnknownChannel{Channel: string(channel)}
	}

	return sender.Send(ctx, channel, address, content)
}

// FallbackSender пробует основного провайдера канала и при неуспехе
// переключается на резервного (тот же канал и адрес, другой транспорт).
type FallbackSender struct {
	primary   Sender
	secondary Sender
	logger    *slog.Logger
}

func NewFallbackSender(primary, secondary Sender, logger *slog.Logger) *FallbackSender {
	return &FallbackSender{
		primary:   primary,
		secondary: secondary,
		logger:    logger,
	}
}

func (s *FallbackSender) Send(
	ctx context.Context,
	channel models.Channel,
	address, content string,
) (*models.SendResult, error) {
	result, err := s.primary.Send(ctx, channel, address, content)
	if err == nil {
		return result, nil
	}

	s.logger.Warn("Основной провайдер недоступен, переключаемся на резервный",
		"primaryError", err,
		"channel", string(channel),
	)

	fallbackResult, fallbackErr := s.secondary.Send(ctx, channel, address, content)
	if fallbackErr != nil {
		return nil, err
	}

	s.logger.Info("Сообщение успешно отправлено через резервного провайдера",
		"channel", string(channel),
	)

	return fallbackResult, nil
}
