package mail

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"pescastur/internal/domain/entity"
	"pescastur/internal/domain/service"
	"pescastur/internal/errors"

	"github.com/mailjet/mailjet-apiv3-go/v4"
)

const (
	mailjetTimeout       = 30 * time.Second
	mailjetRecipientName = "Cliente"
	mailjetCustomID      = "PescasturTransactional"
)

type mailjetSender struct {
	client *mailjet.Client
	sender Sender
	logger *slog.Logger
}

// NewMailjetSender sends through the Mailjet Send API v3.1. baseURL is only set in tests.
func NewMailjetSender(apiKey, secretKey string, sender Sender, logger *slog.Logger, baseURL ...string) (service.EmailSender, error) {
	if apiKey == "" || secretKey == "" {
		return nil, errors.New("mailjet api key and secret key are required")
	}

	client := mailjet.NewMailjetClient(apiKey, secretKey, baseURL...)
	client.SetClient(&http.Client{
		Timeout:   mailjetTimeout,
		Transport: outageTransport{next: http.DefaultTransport},
	})

	return &mailjetSender{
		client: client,
		sender: sender,
		logger: logger,
	}, nil
}

// outageTransport fails 5xx and 429 answers before the SDK decodes them, so
// an outage with an empty or non-JSON body is still reported as one.
type outageTransport struct {
	next http.RoundTripper
}

func (t outageTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if isOutageStatus(resp.StatusCode) {
		_ = resp.Body.Close()

		return nil, errors.Wrapf(service.ErrProviderUnavailable, "mailjet: status=%d", resp.StatusCode)
	}

	return resp, nil
}

func isOutageStatus(code int) bool {
	return code >= http.StatusInternalServerError || code == http.StatusTooManyRequests
}

func (s *mailjetSender) Send(ctx context.Context, message *entity.EmailMessage) error {
	if err := validateMessage(s.sender, message); err != nil {
		return err
	}
	// the SDK call is not context aware
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	messages := mailjet.MessagesV31{
		Info: []mailjet.InfoMessagesV31{
			{
				From: &mailjet.RecipientV31{
					Email: s.sender.Email,
					Name:  s.sender.Name,
				},
				To: &mailjet.RecipientsV31{
					mailjet.RecipientV31{
						Email: message.To,
						Name:  mailjetRecipientName,
					},
				},
				Subject:  message.Subject,
				TextPart: message.Body,
				HTMLPart: htmlEnvelope(message.Body),
				CustomID: mailjetCustomID,
			},
		},
	}

	res, err := s.client.SendMailV31(&messages)
	if err != nil {
		return mailjetError(err)
	}

	for _, result := range res.ResultsV31 {
		if result.Status != "success" {
			return errors.Errorf("mailjet rejected message: status=%s", result.Status)
		}
	}

	s.logger.Info("[Mailjet] Mail sent",
		slog.String("to", message.To),
		slog.String("subject", message.Subject),
	)

	return nil
}

func mailjetError(err error) error {
	if errors.Is(err, service.ErrProviderUnavailable) {
		return errors.WithStack(err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return errors.Wrap(service.ErrProviderUnavailable, "mailjet: "+err.Error())
	}

	var info *mailjet.ErrorInfoV31
	if errors.As(err, &info) && isOutageStatus(info.StatusCode) {
		return errors.Wrapf(service.ErrProviderUnavailable, "mailjet: status=%d %s", info.StatusCode, info.Message)
	}

	return errors.Wrap(err, "mailjet send failed")
}
