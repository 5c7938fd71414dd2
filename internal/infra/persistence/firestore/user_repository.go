package firestore

import (
	"context"
	"sort"

	"pescastur/internal/domain/constants"
	"pescastur/internal/domain/entity"
	"pescastur/internal/domain/repository"
	"pescastur/internal/errors"
	"pescastur/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

type userRepository struct {
	client *firestore.Client
}

// NewUserRepository creates the users/{id} repository
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) doc(userID string) *firestore.DocumentRef {
	return r.client.Collection(constants.UsersCollection).Doc(userID)
}

func (r *userRepository) SaveUserDetails(ctx context.Context, userID string, user *entity.User) error {
	if _, err := r.doc(userID).Set(ctx, model.UserToDocument(user)); err != nil {
		return errors.Wrapf(err, "save details of %s", userID)
	}

	return nil
}

func (r *userRepository) UpdateUserDetails(ctx context.Context, userID string, user *entity.User) error {
	patch := model.UserToPatch(user)
	if len(patch) == 0 {
		// nothing to merge, but a missing document is still reported
		_, err := r.GetUserDetails(ctx, userID)

		return err
	}

	paths := make([]string, 0, len(patch))
	for path := range patch {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	updates := make([]firestore.Update, 0, len(paths))
	for _, path := range paths {
		updates = append(updates, firestore.Update{Path: path, Value: patch[path]})
	}

	if _, err := r.doc(userID).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return errors.WithStack(repository.ErrUserNotFound)
		}

		return errors.Wrapf(err, "update details of %s", userID)
	}

	return nil
}

func (r *userRepository) DeleteUserDetails(ctx context.Context, userID string) error {
	if _, err := r.doc(userID).Delete(ctx); err != nil {
		return errors.Wrapf(err, "delete details of %s", userID)
	}

	return nil
}

func (r *userRepository) GetUserDetails(ctx context.Context, userID string) (*entity.User, error) {
	snap, err := r.doc(userID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.WithStack(repository.ErrUserNotFound)
		}

		return nil, errors.Wrapf(err, "get details of %s", userID)
	}

	return model.UserFromDocument(snap.Ref.ID, snap.Data()), nil
}

func (r *userRepository) GetProfilePhoto(ctx context.Context, userID string) (string, error) {
	snap, err := r.doc(userID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return "", nil
		}

		return "", errors.Wrapf(err, "get profile photo of %s", userID)
	}

	photo, _ := snap.Data()[model.UserFieldProfilePhoto].(string)

	return photo, nil
}
