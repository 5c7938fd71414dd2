// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "pescastur/internal/delivery/context"
	"pescastur/internal/domain/entity"
	domainerrors "pescastur/internal/domain/errors"
	"pescastur/internal/domain/repository"
	"pescastur/internal/domain/service"
	"pescastur/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	identity service.IdentityService
	userRepo repository.UserRepository
	storage  service.ObjectStorage
	logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	identity service.IdentityService,
	userRepo repository.UserRepository,
	storage service.ObjectStorage,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		identity: identity,
		userRepo: userRepo,
		storage:  storage,
		logger:   logger,
	}
}

// RegisterUser creates the account, stores the profile image and saves the
// details. A failure after the account exists deletes it again.
func (srv *userService) RegisterUser(ctx context.Context, user *entity.User) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if user == nil {
		return domainerrors.ErrNullUserData
	}
	email := strings.TrimSpace(user.Email)
	if email == "" {
		return domainerrors.ErrEmailRequired
	}
	if user.ProfileImage.IsEmpty() {
		return domainerrors.ErrProfilePhotoRequired
	}

	userID, err := srv.identity.CreateAccount(ctx, email, user.Password)
	if err != nil {
		return identityError(err, domainerrors.ErrUserRegistrationFailed)
	}

	key, err := srv.storage.Upload(ctx, user.ProfileImage)
	if err != nil {
		srv.rollbackAccount(ctx, logger, userID)

		return providerError(err, domainerrors.ErrUserRegistrationFailed)
	}

	details := *user
	details.ID = userID
	details.Email = email
	details.ProfilePhoto = key
	if details.RegisteredAt == nil {
		now := time.Now().UTC()
		details.RegisteredAt = &now
	}

	if err := srv.userRepo.SaveUserDetails(ctx, userID, &details); err != nil {
		srv.deleteObject(ctx, logger, key)
		srv.rollbackAccount(ctx, logger, userID)

		return domainerrors.ErrUserRegistrationFailed.WithDetails(err.Error())
	}

	logger.Info("User registered", slog.String("user_id", userID))

	return nil
}

func (srv *userService) rollbackAccount(ctx context.Context, logger *slog.Logger, userID string) {
	if err := srv.identity.DeleteAccount(ctx, userID); err != nil {
		logger.Error("Failed to roll back account", slog.String("user_id", userID), slog.Any("error", err))
	}
}

func (srv *userService) deleteObject(ctx context.Context, logger *slog.Logger, key string) {
	if key == "" {
		return
	}
	if _, err := srv.storage.Delete(ctx, key); err != nil {
		logger.Warn("Failed to delete stored object", slog.String("key", key), slog.Any("error", err))
	}
}

// UpdateUserAuth replaces the credentials of the account owning oldUser.Email.
func (srv *userService) UpdateUserAuth(ctx context.Context, newUser, oldUser *entity.User) error {
	if newUser == nil || oldUser == nil {
		return domainerrors.ErrNullUserData
	}
	if strings.TrimSpace(oldUser.Email) == "" {
		return domainerrors.ErrEmailRequired
	}

	userID, err := srv.identity.FindIDByEmail(ctx, strings.TrimSpace(oldUser.Email))
	if err != nil {
		return identityError(err, domainerrors.ErrUserAuthUpdateFailed)
	}

	err = srv.identity.UpdateAccount(ctx, userID, &entity.AccountUpdate{
		Email:         strings.TrimSpace(newUser.Email),
		Password:      newUser.Password,
		EmailVerified: false,
		Disabled:      false,
	})
	if err != nil {
		return identityError(err, domainerrors.ErrUserAuthUpdateFailed)
	}

	return nil
}

// UpdateUserDetails merges the details of the account owning user.Email.
// A new profile image replaces the stored one; without one the stored
// image is kept. A user with no stored image keeps none: the image field
// is left out of the merge and nothing is uploaded.
func (srv *userService) UpdateUserDetails(ctx context.Context, user *entity.User) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if user == nil {
		return domainerrors.ErrNullUserData
	}
	email := strings.TrimSpace(user.Email)
	if email == "" {
		return domainerrors.ErrEmailRequired
	}

	userID, err := srv.identity.FindIDByEmail(ctx, email)
	if err != nil {
		return identityError(err, domainerrors.ErrUserDetailsUpdateFailed)
	}

	details := *user
	details.ProfilePhoto = ""

	if !user.ProfileImage.IsEmpty() {
		existing, err := srv.userRepo.GetProfilePhoto(ctx, userID)
		if err != nil {
			return domainerrors.ErrUserDetailsUpdateFailed.WithDetails(err.Error())
		}

		if existing == "" {
			logger.Debug("no stored profile photo, new image ignored", slog.String("userID", userID))
		} else {
			srv.deleteObject(ctx, logger, existing)

			key, err := srv.storage.Upload(ctx, user.ProfileImage)
			if err != nil {
				return providerError(err, domainerrors.ErrUserDetailsUpdateFailed)
			}
			details.ProfilePhoto = key
		}
	}

	if err := srv.userRepo.UpdateUserDetails(ctx, userID, &details); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, err.Error())
		}

		return domainerrors.ErrUserDetailsUpdateFailed.WithDetails(err.Error())
	}

	return nil
}

// DeleteUser removes the account and its details. The profile image is
// removed last and only logged on failure.
func (srv *userService) DeleteUser(ctx context.Context, email string) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	email = strings.TrimSpace(email)
	if email == "" {
		return domainerrors.ErrEmailRequired
	}

	userID, err := srv.identity.FindIDByEmail(ctx, email)
	if err != nil {
		return identityError(err, domainerrors.ErrUserDeleteFailed)
	}

	photo, err := srv.userRepo.GetProfilePhoto(ctx, userID)
	if err != nil {
		logger.Warn("Failed to read profile photo before delete", slog.String("user_id", userID), slog.Any("error", err))
	}

	if err := srv.identity.DeleteAccount(ctx, userID); err != nil {
		return identityError(err, domainerrors.ErrUserDeleteFailed)
	}

	if err := srv.userRepo.DeleteUserDetails(ctx, userID); err != nil {
		return domainerrors.ErrUserDeleteFailed.WithDetails(err.Error())
	}

	srv.deleteObject(ctx, logger, photo)
	logger.Info("User deleted", slog.String("user_id", userID))

	return nil
}

func (srv *userService) GetUserDetails(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.GetUserDetails(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, err.Error())
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "get user details")
	}

	return user, nil
}

func (srv *userService) GetProfilePhoto(ctx context.Context, userID string) (string, error) {
	photo, err := srv.userRepo.GetProfilePhoto(ctx, userID)
	if err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "get profile photo")
	}

	return photo, nil
}

// Authenticate verifies an ID token issued to a client by the identity provider.
func (srv *userService) Authenticate(ctx context.Context, idToken string) (string, error) {
	if strings.TrimSpace(idToken) == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("idToken:required")
	}

	userID, err := srv.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidIDToken), errors.Is(err, service.ErrAccountNotFound):
			return "", errors.Wrap(domainerrors.ErrAuthenticationFailed, err.Error())
		default:
			return "", providerError(err, domainerrors.ErrAuthenticationFailed)
		}
	}

	return userID, nil
}
