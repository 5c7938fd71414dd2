package usecase

import (
	"context"
	"time"

	"pescastur/internal/domain/entity"
)

// ProductUsecase defines the catalog operations.
type ProductUsecase interface {
	GetAllProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
	GetProductPhoto(ctx context.Context, productID string) (string, error)

	// AddComment appends comment to the product and returns the write time.
	AddComment(ctx context.Context, productID, comment string) (time.Time, error)

	// AddRating appends rating to the product and returns the write time.
	AddRating(ctx context.Context, productID string, rating int) (time.Time, error)

	// UpdateStocks takes every requested quantity out of stock using the
	// configured batch policy.
	UpdateStocks(ctx context.Context, requests []entity.StockRequest) ([]entity.StockLevel, error)
}
