// Package identity adapts Firebase Authentication to service.IdentityService.
package identity

import (
	"context"
	"log/slog"

	"pescastur/internal/domain/entity"
	"pescastur/internal/domain/service"
	"pescastur/internal/errors"

	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/errorutils"
	"go.uber.org/fx"
)

// authClient is the subset of *auth.Client used here.
type authClient interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	UpdateUser(ctx context.Context, uid string, user *auth.UserToUpdate) (*auth.UserRecord, error)
	DeleteUser(ctx context.Context, uid string) error
	GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error)
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type firebaseIdentityService struct {
	client authClient
	logger *slog.Logger
}

// Params holds dependencies for the identity service, injected by Fx
type Params struct {
	fx.In

	Client *auth.Client
	Logger *slog.Logger
}

func NewFirebaseIdentityService(params Params) service.IdentityService {
	return newIdentityService(params.Client, params.Logger)
}

func newIdentityService(client authClient, logger *slog.Logger) *firebaseIdentityService {
	return &firebaseIdentityService{
		client: client,
		logger: logger,
	}
}

func (s *firebaseIdentityService) CreateAccount(ctx context.Context, email, password string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		EmailVerified(false).
		Disabled(false)

	record, err := s.client.CreateUser(ctx, params)
	if err != nil {
		return "", translateError(err, "create account")
	}

	s.logger.Debug("Account created", slog.String("uid", record.UID))

	return record.UID, nil
}

func (s *firebaseIdentityService) UpdateAccount(ctx context.Context, uid string, update *entity.AccountUpdate) error {
	params := (&auth.UserToUpdate{}).
		EmailVerified(update.EmailVerified).
		Disabled(update.Disabled)
	if update.Email != "" {
		params = params.Email(update.Email)
	}
	if update.Password != "" {
		params = params.Password(update.Password)
	}

	if _, err := s.client.UpdateUser(ctx, uid, params); err != nil {
		return translateError(err, "update account")
	}

	return nil
}

func (s *firebaseIdentityService) DeleteAccount(ctx context.Context, uid string) error {
	if err := s.client.DeleteUser(ctx, uid); err != nil {
		return translateError(err, "delete account")
	}

	return nil
}

func (s *firebaseIdentityService) FindIDByEmail(ctx context.Context, email string) (string, error) {
	record, err := s.client.GetUserByEmail(ctx, email)
	if err != nil {
		return "", translateError(err, "find account by email")
	}

	return record.UID, nil
}

func (s *firebaseIdentityService) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := s.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", translateError(err, "verify id token")
	}

	return token.UID, nil
}

// translateError maps Firebase Authentication failures onto the service sentinels.
func translateError(err error, op string) error {
	var sentinel error

	switch {
	case auth.IsUserNotFound(err):
		sentinel = service.ErrAccountNotFound
	case auth.IsEmailAlreadyExists(err), auth.IsUIDAlreadyExists(err):
		sentinel = service.ErrAccountAlreadyExists
	case auth.IsIDTokenInvalid(err), auth.IsIDTokenExpired(err), auth.IsIDTokenRevoked(err):
		sentinel = service.ErrInvalidIDToken
	case errorutils.IsInvalidArgument(err):
		sentinel = service.ErrInvalidAccountData
	case errorutils.IsUnavailable(err), errorutils.IsDeadlineExceeded(err),
		errors.Is(err, context.DeadlineExceeded):
		sentinel = service.ErrProviderUnavailable
	default:
		return errors.Wrap(err, op)
	}

	return errors.Wrapf(sentinel, "%s: %v", op, err)
}
