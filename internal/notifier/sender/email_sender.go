package sender

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/YazzTTV/productif-notifier/internal/domain/models"
)

type emailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type emailResponse struct {
	ID    string `json:"id"`
	Error string `json:"error,omitempty"`
}

// EmailSender доставляет сообщения через HTTP API почтового провайдера.
// Адрес получателя — email.
type EmailSender struct {
	client   *resty.Client
	baseURL  string
	apiToken string
	from     string
	logger   *slog.Logger
}

func NewEmailSender(client *resty.Client, baseURL, apiToken, from string, logger *slog.Logger) *EmailSender {
	return &EmailSender{
		client:   client,
		baseURL:  baseURL,
		apiToken: apiToken,
		from:     from,
		logger:   logger,
	}
}

func (s *EmailSender) Send(
	ctx context.Context,
	_ models.Channel,
	address, content string,
) (*models.SendResult, error) {
	var result emailResponse

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.apiToken).
		SetBody(&emailRequest{
			From:    s.from,
			To:      address,
			Subject: "Productif — напоминание",
			HTML:    content,
		}).
		SetResult(&result).
		Post(s.baseURL + "/emails")
	if err != nil {
		return nil, fmt.Errorf("ошибка при отправке письма: %w", err)
	}

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		return nil, fmt.Errorf("ошибка при отправке письма: статус %d: %s", resp.StatusCode(), result.Error)
	}

	s.logger.Debug("Письмо отправлено",
		"providerMessageID", result.ID,
	)

	return &models.SendResult{
		Success:           true,
		ProviderMessageID: result.ID,
	}, nil
}
