package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"pescastur/internal/domain/entity"
	domainerrors "pescastur/internal/domain/errors"
	"pescastur/internal/domain/repository"
	"pescastur/internal/domain/service"
	mockRepo "pescastur/internal/mocks/repository"
	mockService "pescastur/internal/mocks/service"
	"pescastur/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	publisher   *mockService.MockEventPublisher
}

func createTestProductService(t *testing.T, policy string) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc, err := NewProductService(productRepo, publisher, newTestConfig(policy), newDiscardLogger())
	require.NoError(t, err)

	return productServiceFixtures{
		service:     svc,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

func TestNewProductService_UnknownPolicy(t *testing.T) {
	_, err := NewProductService(nil, nil, newTestConfig("eventual"), newDiscardLogger())
	assert.Error(t, err)
}

func TestProductService_GetProduct(t *testing.T) {
	fx := createTestProductService(t, "")
	ctx := context.Background()
	want := &entity.Product{ID: "p1", Name: "Bonito"}

	fx.productRepo.EXPECT().GetProductByUID(ctx, "p1").Return(want, nil)
	fx.productRepo.EXPECT().GetProductByUID(ctx, "p2").Return(nil, errors.WithStack(repository.ErrProductNotFound))

	got, err := fx.service.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = fx.service.GetProduct(ctx, "p2")
	appErr := requireHTTPCode(t, err, http.StatusNotFound)
	assert.Equal(t, "Error: Producto con ID p2 no encontrado en la base de datos", appErr.Message())
}

func TestProductService_GetAllProducts_Failure(t *testing.T) {
	fx := createTestProductService(t, "")
	ctx := context.Background()

	fx.productRepo.EXPECT().GetAllProducts(ctx).Return(nil, errors.New("deadline exceeded"))

	_, err := fx.service.GetAllProducts(ctx)
	requireHTTPCode(t, err, http.StatusInternalServerError)
}

func TestProductService_AddComment(t *testing.T) {
	ctx := context.Background()
	updated := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		fx := createTestProductService(t, "")
		fx.productRepo.EXPECT().AddCommentToComments(ctx, "p1", "muy fresco").Return(updated, nil)

		got, err := fx.service.AddComment(ctx, "p1", "muy fresco")
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("empty comment", func(t *testing.T) {
		fx := createTestProductService(t, "")

		_, err := fx.service.AddComment(ctx, "p1", " ")
		requireHTTPCode(t, err, http.StatusBadRequest)
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestProductService(t, "")
		fx.productRepo.EXPECT().AddCommentToComments(ctx, "p1", "x").Return(time.Time{}, errors.New("unavailable"))

		_, err := fx.service.AddComment(ctx, "p1", "x")
		appErr := requireHTTPCode(t, err, http.StatusInternalServerError)
		assert.Equal(t, "Error adding comment", appErr.Message())
	})
}

func TestProductService_AddRating_NotFound(t *testing.T) {
	fx := createTestProductService(t, "")
	ctx := context.Background()

	fx.productRepo.EXPECT().AddRatingToRatings(ctx, "p9", 4).Return(time.Time{}, errors.WithStack(repository.ErrProductNotFound))

	_, err := fx.service.AddRating(ctx, "p9", 4)
	requireHTTPCode(t, err, http.StatusNotFound)
}

func TestProductService_UpdateStocks_Success(t *testing.T) {
	fx := createTestProductService(t, "atomic")
	ctx := context.Background()
	requests := []entity.StockRequest{{ProductID: "A", Quantity: 5}, {ProductID: "B", Quantity: 1}}
	levels := []entity.StockLevel{
		{ProductID: "A", Previous: 10, Remaining: 5},
		{ProductID: "B", Previous: 3, Remaining: 2},
	}

	fx.productRepo.EXPECT().UpdateProductStocks(ctx, requests, entity.StockBatchAtomic).Return(levels, nil)
	fx.publisher.EXPECT().
		PublishStockLevel(ctx, mock.MatchedBy(func(e *service.StockLevelEvent) bool {
			return e.ProductID == "A" && e.Quantity == 5 && e.Remaining == 5
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishStockLevel(ctx, mock.MatchedBy(func(e *service.StockLevelEvent) bool {
			return e.ProductID == "B" && e.Quantity == 1 && e.Remaining == 2
		})).
		Return(errors.New("topic gone"))

	got, err := fx.service.UpdateStocks(ctx, requests)

	require.NoError(t, err, "publish failures never fail the request")
	assert.Equal(t, levels, got)
}

func TestProductService_UpdateStocks_PartialFailure(t *testing.T) {
	fx := createTestProductService(t, "")
	ctx := context.Background()
	requests := []entity.StockRequest{{ProductID: "A", Quantity: 5}, {ProductID: "B", Quantity: 20}}
	applied := []entity.StockLevel{{ProductID: "A", Previous: 10, Remaining: 5}}

	fx.productRepo.EXPECT().UpdateProductStocks(ctx, requests, entity.StockBatchSequential).
		Return(applied, errors.WithStack(&repository.StockError{ProductID: "B", Err: repository.ErrInsufficientStock}))
	fx.publisher.EXPECT().PublishStockLevel(ctx, mock.Anything).Return(nil).Once()

	got, err := fx.service.UpdateStocks(ctx, requests)

	require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	appErr := requireHTTPCode(t, err, http.StatusConflict)
	assert.Equal(t, "Error: Stock insuficiente para el producto con ID B", appErr.Message())
	assert.Equal(t, applied, got)
}

func TestProductService_UpdateStocks_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		requests []entity.StockRequest
		repoErr  error
		wantCode int
	}{
		{name: "empty batch", requests: nil, wantCode: http.StatusBadRequest},
		{name: "missing id", requests: []entity.StockRequest{{Quantity: 1}}, wantCode: http.StatusBadRequest},
		{name: "negative quantity", requests: []entity.StockRequest{{ProductID: "A", Quantity: -1}}, wantCode: http.StatusBadRequest},
		{name: "quantity above cap", requests: []entity.StockRequest{{ProductID: "A", Quantity: entity.MaxStockQuantity + 1}}, wantCode: http.StatusBadRequest},
		{
			name:     "unknown product",
			requests: []entity.StockRequest{{ProductID: "Z", Quantity: 1}},
			repoErr:  &repository.StockError{ProductID: "Z", Err: repository.ErrProductNotFound},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "store failure",
			requests: []entity.StockRequest{{ProductID: "A", Quantity: 1}},
			repoErr:  errors.New("transaction aborted"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t, "sequential")
			if tt.repoErr != nil {
				fx.productRepo.EXPECT().UpdateProductStocks(ctx, tt.requests, entity.StockBatchSequential).Return(nil, tt.repoErr)
			}

			_, err := fx.service.UpdateStocks(ctx, tt.requests)
			requireHTTPCode(t, err, tt.wantCode)
		})
	}
}
