// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the application layer and the document store.
package repository

import (
	"context"

	"pescastur/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when no details document exists for a user.
var ErrUserNotFound = errors.New("user details not found")

// UserRepository persists the details document of a user, keyed by the identity provider ID.
type UserRepository interface {
	// SaveUserDetails fully replaces the details document of userID.
	SaveUserDetails(ctx context.Context, userID string, user *entity.User) error

	// UpdateUserDetails merges the non-empty fields of user into an existing document.
	// ProfilePhoto is written only when non-empty.
	UpdateUserDetails(ctx context.Context, userID string, user *entity.User) error

	// DeleteUserDetails removes the details document. Deleting a missing document is not an error.
	DeleteUserDetails(ctx context.Context, userID string) error

	// GetUserDetails reads the details document.
	GetUserDetails(ctx context.Context, userID string) (*entity.User, error)

	// GetProfilePhoto returns the stored profile image key, or "" when the
	// document or the field does not exist.
	GetProfilePhoto(ctx context.Context, userID string) (string, error)
}
