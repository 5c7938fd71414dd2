package service

import (
	"context"

	"pescastur/internal/domain/entity"
)

// ObjectStorage stores uploaded files under generated keys.
type ObjectStorage interface {
	// Upload writes the file and returns its key, "{random}-{originalFilename}".
	Upload(ctx context.Context, file *entity.FileUpload) (string, error)

	// Delete removes an object. It returns false when the object did not exist.
	Delete(ctx context.Context, key string) (bool, error)
}
