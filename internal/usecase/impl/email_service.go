package impl

import (
	"context"
	"log/slog"

	deliverycontext "pescastur/internal/delivery/context"
	"pescastur/internal/domain/entity"
	domainerrors "pescastur/internal/domain/errors"
	"pescastur/internal/domain/service"
	"pescastur/internal/usecase"

	"github.com/pkg/errors"
)

type emailService struct {
	sender service.EmailSender
	logger *slog.Logger
}

// NewEmailService creates the transactional email use case.
func NewEmailService(sender service.EmailSender, logger *slog.Logger) usecase.EmailUsecase {
	return &emailService{
		sender: sender,
		logger: logger,
	}
}

func (srv *emailService) SendEmail(ctx context.Context, message *entity.EmailMessage) error {
	if message == nil || message.To == "" {
		return domainerrors.ErrValidationFailed.WithDetails("to:required")
	}

	if err := srv.sender.Send(ctx, message); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to send email",
			slog.String("to", message.To),
			slog.Any("error", err),
		)

		return errors.Wrap(domainerrors.ErrEmailSendFailed, err.Error())
	}

	return nil
}
