package usecase

import (
	"context"

	"pescastur/internal/domain/entity"
)

// EmailUsecase sends transactional emails.
type EmailUsecase interface {
	SendEmail(ctx context.Context, message *entity.EmailMessage) error
}
