package mail

import (
	"context"
	"log/slog"
	"net/http"

	"pescastur/internal/domain/entity"
	"pescastur/internal/domain/service"
	"pescastur/internal/errors"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendGridSendEndpoint = "/v3/mail/send"

type sendGridSender struct {
	apiKey string
	host   string
	sender Sender
	logger *slog.Logger
}

// NewSendGridSender sends through the SendGrid v3 API. An empty host means api.sendgrid.com.
func NewSendGridSender(apiKey, host string, sender Sender, logger *slog.Logger) (service.EmailSender, error) {
	if apiKey == "" {
		return nil, errors.New("sendgrid api key is required")
	}

	return &sendGridSender{
		apiKey: apiKey,
		host:   host,
		sender: sender,
		logger: logger,
	}, nil
}

func (s *sendGridSender) Send(ctx context.Context, message *entity.EmailMessage) error {
	if err := validateMessage(s.sender, message); err != nil {
		return err
	}

	email := sgmail.NewSingleEmail(
		sgmail.NewEmail(s.sender.Name, s.sender.Email),
		message.Subject,
		sgmail.NewEmail("", message.To),
		message.Body,
		htmlEnvelope(message.Body),
	)

	request := sendgrid.GetRequest(s.apiKey, sendGridSendEndpoint, s.host)
	request.Method = http.MethodPost
	request.Body = sgmail.GetRequestBody(email)

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return errors.Wrap(service.ErrProviderUnavailable, "sendgrid: "+err.Error())
	}

	if isOutageStatus(response.StatusCode) {
		return errors.Wrapf(service.ErrProviderUnavailable, "sendgrid: status=%d", response.StatusCode)
	}
	if response.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("sendgrid send failed: status=%d, body=%s", response.StatusCode, response.Body)
	}

	s.logger.Info("[SendGrid] Mail sent",
		slog.Int("status", response.StatusCode),
		slog.String("to", message.To),
		slog.String("subject", message.Subject),
	)

	return nil
}
