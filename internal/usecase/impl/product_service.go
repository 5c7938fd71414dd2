package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pescastur/config"
	deliverycontext "pescastur/internal/delivery/context"
	"pescastur/internal/domain/entity"
	domainerrors "pescastur/internal/domain/errors"
	"pescastur/internal/domain/repository"
	"pescastur/internal/domain/service"
	"pescastur/internal/usecase"

	"github.com/pkg/errors"
)

type productService struct {
	productRepo repository.ProductRepository
	publisher   service.EventPublisher
	policy      entity.StockBatchPolicy
	logger      *slog.Logger
}

// NewProductService creates the catalog use cases. The stock batch policy is
// read from the catalog configuration.
func NewProductService(
	productRepo repository.ProductRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) (usecase.ProductUsecase, error) {
	var configured string
	if cfg.Catalog != nil {
		configured = cfg.Catalog.StockBatchPolicy
	}

	policy, err := entity.ParseStockBatchPolicy(configured)
	if err != nil {
		return nil, err
	}

	return &productService{
		productRepo: productRepo,
		publisher:   publisher,
		policy:      policy,
		logger:      logger,
	}, nil
}

func (srv *productService) GetAllProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.GetAllProducts(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list products")
	}

	return products, nil
}

func (srv *productService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := srv.productRepo.GetProductByUID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithMessageArgs(productID)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "get product")
	}

	return product, nil
}

func (srv *productService) GetProductPhoto(ctx context.Context, productID string) (string, error) {
	photo, err := srv.productRepo.GetProductPhoto(ctx, productID)
	if err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "get product photo")
	}

	return photo, nil
}

func (srv *productService) AddComment(ctx context.Context, productID, comment string) (time.Time, error) {
	if productID == "" {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("uid:required")
	}
	if strings.TrimSpace(comment) == "" {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("comentarios:required")
	}

	updatedAt, err := srv.productRepo.AddCommentToComments(ctx, productID, comment)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return time.Time{}, domainerrors.ErrProductNotFound.WithMessageArgs(productID)
		}

		return time.Time{}, domainerrors.ErrAddCommentFailed.WithDetails(err.Error())
	}

	return updatedAt, nil
}

func (srv *productService) AddRating(ctx context.Context, productID string, rating int) (time.Time, error) {
	if productID == "" {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("uid:required")
	}

	updatedAt, err := srv.productRepo.AddRatingToRatings(ctx, productID, rating)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return time.Time{}, domainerrors.ErrProductNotFound.WithMessageArgs(productID)
		}

		return time.Time{}, domainerrors.ErrAddRatingFailed.WithDetails(err.Error())
	}

	return updatedAt, nil
}

// UpdateStocks applies the batch and publishes one event per committed
// decrement, including those committed before a sequential batch failed.
func (srv *productService) UpdateStocks(ctx context.Context, requests []entity.StockRequest) ([]entity.StockLevel, error) {
	if len(requests) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("products:required")
	}
	for idx, req := range requests {
		if req.ProductID == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("[%d].uid:required", idx))
		}
		if req.Quantity < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("[%d].cantidad:min", idx))
		}
		if req.Quantity > entity.MaxStockQuantity {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("[%d].cantidad:max", idx))
		}
	}

	levels, err := srv.productRepo.UpdateProductStocks(ctx, requests, srv.policy)
	srv.publishLevels(ctx, levels)

	if err != nil {
		return levels, stockError(err)
	}

	return levels, nil
}

func (srv *productService) publishLevels(ctx context.Context, levels []entity.StockLevel) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	occurredAt := time.Now().UTC().Format(time.RFC3339)

	for _, level := range levels {
		event := &service.StockLevelEvent{
			RequestID:  requestID,
			ProductID:  level.ProductID,
			Previous:   level.Previous,
			Remaining:  level.Remaining,
			Quantity:   level.Previous - level.Remaining,
			OccurredAt: occurredAt,
		}

		if err := srv.publisher.PublishStockLevel(ctx, event); err != nil {
			logger.Warn("Failed to publish stock level",
				slog.String("product_id", level.ProductID),
				slog.Any("error", err),
			)
		}
	}
}
