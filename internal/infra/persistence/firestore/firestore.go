// Package firestore implements the repositories on Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"pescastur/internal/domain/constants"
	"pescastur/internal/domain/lifecycle"
	"pescastur/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// New creates the Firestore client of the Firebase project. FIRESTORE_EMULATOR_HOST
// is honoured by the SDK, so local runs need no credentials.
func New(params Params) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := ping(ctx, client); err != nil {
				return errors.Wrap(err, "failed to reach Firestore")
			}
			params.Logger.Info("Firestore client ready")

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// ping reads at most one product, which exercises auth and connectivity.
func ping(ctx context.Context, client *firestore.Client) error {
	iter := client.Collection(constants.ProductsCollection).Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return errors.WithStack(err)
	}

	return nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
