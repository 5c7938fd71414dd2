// Package storage implements service.ObjectStorage on top of interchangeable
// bucket backends (Firebase Storage, MinIO, Go CDK blob).
package storage

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"

	"pescastur/internal/domain/constants"
	"pescastur/internal/domain/entity"
	"pescastur/internal/domain/service"
	"pescastur/internal/errors"
	"pescastur/internal/util"

	"github.com/google/uuid"
)

// backend writes raw objects to one bucket.
type backend interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	// Delete reports false when the object did not exist.
	Delete(ctx context.Context, key string) (bool, error)
	Name() string
}

type objectStorage struct {
	backend backend
	logger  *slog.Logger
	newID   func() string
}

func newObjectStorage(b backend, logger *slog.Logger) *objectStorage {
	return &objectStorage{
		backend: b,
		logger:  logger,
		newID:   uuid.NewString,
	}
}

// Upload stores the bytes under "{uuid}-{filename}" and returns that key.
func (s *objectStorage) Upload(ctx context.Context, file *entity.FileUpload) (string, error) {
	if file.IsEmpty() {
		return "", errors.New("empty upload")
	}

	filename := util.SanitizeFilename(file.Filename, constants.DefaultProfileImageName)
	key := s.newID() + "-" + filename
	contentType := detectContentType(file)

	if err := s.backend.Put(ctx, key, file.Content, contentType); err != nil {
		return "", errors.Wrapf(err, "upload %s to %s", key, s.backend.Name())
	}

	// checksum only when debug is on
	if s.logger.Enabled(ctx, slog.LevelDebug) {
		s.logger.DebugContext(ctx, "Object uploaded",
			slog.String("backend", s.backend.Name()),
			slog.String("key", key),
			slog.String("content_type", contentType),
			slog.String("size", util.FormatBytes(file.Size())),
			slog.String("sha256", util.Checksum(file.Content)),
		)
	}

	return key, nil
}

func (s *objectStorage) Delete(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, nil
	}

	deleted, err := s.backend.Delete(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "delete %s from %s", key, s.backend.Name())
	}

	s.logger.Debug("Object delete",
		slog.String("backend", s.backend.Name()),
		slog.String("key", key),
		slog.Bool("deleted", deleted),
	)

	return deleted, nil
}

// detectContentType trusts the client header first, then the extension, then the bytes.
func detectContentType(file *entity.FileUpload) string {
	if file.ContentType != "" && file.ContentType != "application/octet-stream" {
		return file.ContentType
	}
	if byExt := mime.TypeByExtension(filepath.Ext(file.Filename)); byExt != "" {
		return byExt
	}

	return http.DetectContentType(file.Content)
}

var _ service.ObjectStorage = (*objectStorage)(nil)
