package storage

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"pescastur/config"
	"pescastur/internal/errors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioBackend writes to an S3 compatible bucket through MinIO.
type minioBackend struct {
	client *minio.Client
	bucket string
}

func newMinioBackend(cfg config.MinioConfig) (*minioBackend, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("minio endpoint is required")
	}
	if strings.TrimSpace(cfg.AccessKey) == "" || strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, errors.New("minio access key and secret key are required")
	}
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("minio bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create minio client")
	}

	return &minioBackend{client: client, bucket: cfg.Bucket}, nil
}

// ensureBucket creates the bucket on first start.
func (b *minioBackend) ensureBucket(ctx context.Context) error {
	exists, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return errors.WithStack(err)
	}
	if exists {
		return nil
	}

	return errors.WithStack(b.client.MakeBucket(ctx, b.bucket, minio.MakeBucketOptions{}))
}

func (b *minioBackend) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := b.client.PutObject(ctx, b.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})

	return errors.WithStack(err)
}

// Delete stats first because RemoveObject succeeds for missing keys.
func (b *minioBackend) Delete(ctx context.Context, key string) (bool, error) {
	if _, err := b.client.StatObject(ctx, b.bucket, key, minio.StatObjectOptions{}); err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
			return false, nil
		}

		return false, errors.WithStack(err)
	}

	if err := b.client.RemoveObject(ctx, b.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return false, errors.WithStack(err)
	}

	return true, nil
}

func (b *minioBackend) Name() string {
	return "minio:" + b.bucket
}
