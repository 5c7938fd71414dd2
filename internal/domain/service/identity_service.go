package service

import (
	"context"

	"pescastur/internal/domain/entity"
)

// IdentityService manages credential accounts in the external identity provider.
type IdentityService interface {
	// CreateAccount registers email/password and returns the new external ID.
	CreateAccount(ctx context.Context, email, password string) (string, error)

	// UpdateAccount changes the credentials and flags of an account.
	UpdateAccount(ctx context.Context, uid string, update *entity.AccountUpdate) error

	// DeleteAccount removes an account.
	DeleteAccount(ctx context.Context, uid string) error

	// FindIDByEmail resolves an email to its external ID. Returns ErrAccountNotFound when absent.
	FindIDByEmail(ctx context.Context, email string) (string, error)

	// VerifyIDToken checks a client ID token and returns the account it belongs to.
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}
