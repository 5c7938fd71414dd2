package repository

import (
	"context"
	"fmt"
	"time"

	"pescastur/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product document does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a decrement would leave a negative stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// StockError names the product that stopped a stock batch.
type StockError struct {
	ProductID string
	Err       error
}

func (e *StockError) Error() string {
	return fmt.Sprintf("product %s: %v", e.ProductID, e.Err)
}

func (e *StockError) Unwrap() error {
	return e.Err
}

// ProductRepository defines the operations on the product catalog.
type ProductRepository interface {
	// GetAllProducts lists the catalog with each document ID set as the product ID.
	GetAllProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProductByUID reads one product.
	GetProductByUID(ctx context.Context, productID string) (*entity.Product, error)

	// GetProductPhoto returns the image URL of a product, or "" when the
	// document or the field does not exist.
	GetProductPhoto(ctx context.Context, productID string) (string, error)

	// AddCommentToComments appends comment with array-union semantics and
	// returns the server time of the write.
	AddCommentToComments(ctx context.Context, productID, comment string) (time.Time, error)

	// AddRatingToRatings appends rating with array-union semantics and
	// returns the server time of the write.
	AddRatingToRatings(ctx context.Context, productID string, rating int) (time.Time, error)

	// UpdateProductStocks decrements the stock of every requested product.
	// Failures are reported as *StockError wrapping ErrProductNotFound or
	// ErrInsufficientStock. The returned levels are the decrements that were
	// committed, which under the sequential policy may be non-empty on error.
	UpdateProductStocks(ctx context.Context, requests []entity.StockRequest, policy entity.StockBatchPolicy) ([]entity.StockLevel, error)
}
