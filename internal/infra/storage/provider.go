package storage

import (
	"context"
	"log/slog"

	"pescastur/config"
	"pescastur/internal/domain/constants"
	"pescastur/internal/domain/lifecycle"
	"pescastur/internal/domain/service"
	"pescastur/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// Params holds dependencies for ObjectStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App
}

// NewObjectStorage creates the ObjectStorage selected by storage.provider
func NewObjectStorage(params Params) (service.ObjectStorage, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	var b backend

	switch cfg.Provider {
	case constants.StorageProviderFirebase:
		client, err := params.App.Storage(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get firebase storage client")
		}

		bucketName := params.Config.Firebase.StorageBucket
		if bucketName == "" {
			bucket, err := client.DefaultBucket()
			if err != nil {
				return nil, errors.Wrap(err, "failed to get default bucket")
			}
			b = newFirebaseBackend(bucket, "default")
		} else {
			bucket, err := client.Bucket(bucketName)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to get bucket %s", bucketName)
			}
			b = newFirebaseBackend(bucket, bucketName)
		}

	case constants.StorageProviderMinio:
		mb, err := newMinioBackend(cfg.Minio)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return mb.ensureBucket(ctx)
			},
		})
		b = mb

	case constants.StorageProviderBlob:
		bb, err := openBlobBackend(params.Ctx, cfg.BlobURL)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return bb.Close()
			},
		})
		b = bb

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}

	logger.Info("Object storage initialized", slog.String("backend", b.Name()))

	return newObjectStorage(b, logger), nil
}
