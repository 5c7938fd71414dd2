package mail

import (
	"context"
	"log/slog"

	"pescastur/internal/domain/entity"
)

// noopSender only logs, for local setups without provider credentials
type noopSender struct {
	sender Sender
	logger *slog.Logger
}

func (s *noopSender) Send(_ context.Context, message *entity.EmailMessage) error {
	if err := validateMessage(s.sender, message); err != nil {
		return err
	}

	s.logger.Info("[NoopMail] Mail delivery disabled, skipping",
		slog.String("to", message.To),
		slog.String("subject", message.Subject),
	)

	return nil
}
