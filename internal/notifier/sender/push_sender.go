package sender

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/YazzTTV/productif-notifier/internal/domain/models"
)

type pushRequest struct {
	Token   string `json:"token"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Source  string `json:"source"`
	Urgency string `json:"urgency"`
}

type pushResponse struct {
	MessageID string `json:"messageId"`
	Error     string `json:"error,omitempty"`
}

// PushSender доставляет сообщения через HTTP API пуш-провайдера.
// Адрес получателя — токен устройства.
type PushSender struct {
	client   *resty.Client
	baseURL  string
	apiToken string
	logger   *slog.Logger
}

func NewPushSender(client *resty.Client, baseURL, apiToken string, logger *slog.Logger) *PushSender {
	return &PushSender{
		client:   client,
		baseURL:  baseURL,
		apiToken: apiToken,
		logger:   logger,
	}
}

func (s *PushSender) Send(
	ctx context.Context,
	_ models.Channel,
	address, content string,
) (*models.SendResult, error) {
	var result pushResponse

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.apiToken).
		SetBody(&pushRequest{
			Token:   address,
			Title:   "Productif",
			Body:    content,
			Source:  "notifier",
			Urgency: "normal",
		}).
		SetResult(&result).
		Post(s.baseURL + "/v1/push")
	if err != nil {
		return nil, fmt.Errorf("ошибка при отправке пуш-уведомления: %w", err)
	}

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusAccepted {
		return nil, fmt.Errorf("ошибка при отправке пуш-уведомления: статус %d: %s", resp.StatusCode(), result.Error)
	}

	s.logger.Debug("Пуш-уведомление отправлено",
		"providerMessageID", result.MessageID,
	)

	return &models.SendResult{
		Success:           true,
		ProviderMessageID: result.MessageID,
	}, nil
}
