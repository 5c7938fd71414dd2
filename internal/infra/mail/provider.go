package mail

import (
	"log/slog"

	"pescastur/config"
	"pescastur/internal/domain/constants"
	"pescastur/internal/domain/service"
	"pescastur/internal/errors"

	"go.uber.org/fx"
)

// Params holds dependencies for EmailSender, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewEmailSender creates the EmailSender selected by mail.provider
func NewEmailSender(params Params) (service.EmailSender, error) {
	cfg := params.Config.Mail
	logger := params.Logger
	sender := Sender{Email: cfg.FromEmail, Name: cfg.FromName}

	switch cfg.Provider {
	case constants.MailProviderMailjet:
		logger.Info("Using Mailjet email sender", slog.String("from", sender.Email))

		return NewMailjetSender(cfg.Mailjet.APIKey, cfg.Mailjet.SecretKey, sender, logger)

	case constants.MailProviderSendGrid:
		logger.Info("Using SendGrid email sender", slog.String("from", sender.Email))

		return NewSendGridSender(cfg.SendGrid.APIKey, cfg.SendGrid.Host, sender, logger)

	case constants.MailProviderNoop, "":
		logger.Info("Mail provider not configured, using no-op sender")

		return &noopSender{sender: sender, logger: logger}, nil

	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}
}
