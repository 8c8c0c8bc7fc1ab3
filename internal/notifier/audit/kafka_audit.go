package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/YazzTTV/productif-notifier/internal/domain/models"
)

type deliveryEventMessage struct {
	Recipient         string `json:"recipient"`
	Fingerprint       string `json:"fingerprint"`
	Channel           string `json:"channel"`
	Outcome           string `json:"outcome"`
	ProviderMessageID string `json:"providerMessageId,omitempty"`
	Error             string `json:"error,omitempty"`
	CreatedAt         string `json:"createdAt"`
}

// KafkaAuditor публикует исходы доставок в аудиторский топик; сообщения,
// которые не удалось доставить в основной топик, уходят в DLQ.
type KafkaAuditor struct {
	producer    *kafka.Writer
	dlqProducer *kafka.Writer
	logger      *slog.Logger
	topic       string
	dlqTopic    string
}

func NewKafkaAuditor(brokers []string, topic, dlqTopic string, logger *slog.Logger) *KafkaAuditor {
	producer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		Logger:       kafka.LoggerFunc(logger.Debug),
		ErrorLogger:  kafka.LoggerFunc(logger.Error),
	}

	dlqProducer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        dlqTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		Logger:       kafka.LoggerFunc(logger.Debug),
		ErrorLogger:  kafka.LoggerFunc(logger.Error),
	}

	return &KafkaAuditor{
		producer:    producer,
		dlqProducer: dlqProducer,
		logger:      logger,
		topic:       topic,
		dlqTopic:    dlqTopic,
	}
}

func (a *KafkaAuditor) PublishDelivery(ctx context.Context, record *models.DeliveryRecord) error {
	message := deliveryEventMessage{
		Recipient:         record.Recipient,
		Fingerprint:       record.Fingerprint,
		Channel:           string(record.Channel),
		Outcome:           string(record.Outcome),
		ProviderMessageID: record.ProviderMessageID,
		Error:             record.Error,
		CreatedAt:         record.CreatedAt.Format(time.RFC3339),
	}

	value, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("ошибка при сериализации события доставки: %w", err)
	}

	err = a.producer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(record.Recipient),
		Value: value,
		Time:  time.Now(),
	})
	if err != nil {
		a.logger.Error("Ошибка при отправке события доставки в Kafka",
			"error", err,
			"topic", a.topic,
		)

		if dlqErr := a.sendToDLQ(ctx, value, err.Error()); dlqErr != nil {
			a.logger.Error("Ошибка при отправке события в DLQ",
				"error", dlqErr,
			)
		}

		return fmt.Errorf("ошибка при отправке события доставки в Kafka: %w", err)
	}

	return nil
}

func (a *KafkaAuditor) sendToDLQ(ctx context.Context, message []byte, errMsg string) error {
	return a.dlqProducer.WriteMessages(ctx, kafka.Message{
		Key:   []byte("error"),
		Value: message,
		Headers: []kafka.Header{
			{Key: "error", Value: []byte(errMsg)},
			{Key: "timestamp", Value: []byte(time.Now().Format(time.RFC3339))},
		},
		Time: time.Now(),
	})
}

func (a *KafkaAuditor) Close() error {
	if err := a.producer.Close(); err != nil {
		return err
	}

	return a.dlqProducer.Close()
}
