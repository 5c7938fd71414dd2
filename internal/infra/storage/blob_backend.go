package storage

import (
	"context"

	"pescastur/internal/errors"

	"gocloud.dev/blob"
	// registered URL schemes for storage.blobUrl
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// blobBackend writes to any Go CDK bucket URL (mem://, file:///dir, gs://bucket).
type blobBackend struct {
	bucket *blob.Bucket
	url    string
}

func openBlobBackend(ctx context.Context, url string) (*blobBackend, error) {
	if url == "" {
		return nil, errors.New("blob url is required for blob provider")
	}

	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", url)
	}

	return &blobBackend{bucket: bucket, url: url}, nil
}

func (b *blobBackend) Put(ctx context.Context, key string, data []byte, contentType string) error {
	return errors.WithStack(b.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType: contentType,
	}))
}

func (b *blobBackend) Delete(ctx context.Context, key string) (bool, error) {
	err := b.bucket.Delete(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return false, nil
	}
	if err != nil {
		return false, errors.WithStack(err)
	}

	return true, nil
}

func (b *blobBackend) Name() string {
	return "blob:" + b.url
}

func (b *blobBackend) Close() error {
	return errors.WithStack(b.bucket.Close())
}
