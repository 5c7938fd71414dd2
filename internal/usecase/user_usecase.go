package usecase

import (
	"context"

	"pescastur/internal/domain/entity"
)

// UserUsecase defines the account and details operations of a customer.
type UserUsecase interface {
	// RegisterUser creates the identity account and the details document.
	// Email and ProfileImage are required.
	RegisterUser(ctx context.Context, user *entity.User) error

	// UpdateUserAuth moves the account found by oldUser.Email to the
	// credentials of newUser.
	UpdateUserAuth(ctx context.Context, newUser, oldUser *entity.User) error

	// UpdateUserDetails merges the details of the account found by user.Email.
	UpdateUserDetails(ctx context.Context, user *entity.User) error

	// DeleteUser removes the account, its details and its profile image.
	DeleteUser(ctx context.Context, email string) error

	// GetUserDetails reads the details document of userID.
	GetUserDetails(ctx context.Context, userID string) (*entity.User, error)

	// GetProfilePhoto returns the stored profile image key of userID, "" when unset.
	GetProfilePhoto(ctx context.Context, userID string) (string, error)

	// Authenticate verifies a client ID token and returns its user ID.
	Authenticate(ctx context.Context, idToken string) (string, error)
}
