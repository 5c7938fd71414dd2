package storage

import (
	"context"

	"pescastur/internal/errors"

	gcs "cloud.google.com/go/storage"
)

// firebaseBackend writes to the Cloud Storage bucket of the Firebase project.
type firebaseBackend struct {
	bucket *gcs.BucketHandle
	name   string
}

func newFirebaseBackend(bucket *gcs.BucketHandle, name string) *firebaseBackend {
	return &firebaseBackend{bucket: bucket, name: name}
}

func (b *firebaseBackend) Put(ctx context.Context, key string, data []byte, contentType string) error {
	writer := b.bucket.Object(key).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()

		return errors.WithStack(err)
	}

	return errors.WithStack(writer.Close())
}

func (b *firebaseBackend) Delete(ctx context.Context, key string) (bool, error) {
	err := b.bucket.Object(key).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.WithStack(err)
	}

	return true, nil
}

func (b *firebaseBackend) Name() string {
	return "firebase:" + b.name
}
