package service

import (
	"context"

	"pescastur/internal/domain/entity"
)

// EmailSender delivers transactional email from the shop's fixed sender identity.
type EmailSender interface {
	Send(ctx context.Context, message *entity.EmailMessage) error
}
