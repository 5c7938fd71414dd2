package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pescastur/internal/domain/entity"
	domainerrors "pescastur/internal/domain/errors"
	mockUsecase "pescastur/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProductHandler(t *testing.T) (*ProductHandler, *mockUsecase.MockProductUsecase) {
	productUC := mockUsecase.NewMockProductUsecase(t)

	return NewProductHandler(ProductHandlerParams{ProductUC: productUC, Logger: newDiscardLogger()}), productUC
}

func TestProductHandler_UpdateStocks(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		setup       func(uc *mockUsecase.MockProductUsecase)
		wantStatus  int
		wantMessage string
		wantCode    string
	}{
		{
			name: "all products updated",
			body: `[{"uid":"A","cantidad":5},{"uid":"B","cantidad":0}]`,
			setup: func(uc *mockUsecase.MockProductUsecase) {
				uc.EXPECT().
					UpdateStocks(mock.Anything, []entity.StockRequest{{ProductID: "A", Quantity: 5}, {ProductID: "B", Quantity: 0}}).
					Return([]entity.StockLevel{{ProductID: "A", Previous: 10, Remaining: 5}, {ProductID: "B", Previous: 1, Remaining: 1}}, nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: stocksUpdatedMessage,
		},
		{
			name: "insufficient stock",
			body: `[{"uid":"A","cantidad":5},{"uid":"B","cantidad":20}]`,
			setup: func(uc *mockUsecase.MockProductUsecase) {
				uc.EXPECT().UpdateStocks(mock.Anything, mock.Anything).
					Return(nil, domainerrors.ErrInsufficientStock.WithMessageArgs("B"))
			},
			wantStatus:  http.StatusConflict,
			wantMessage: "Error: Stock insuficiente para el producto con ID B",
			wantCode:    "INSUFFICIENT_STOCK",
		},
		{
			name: "unknown product",
			body: `[{"uid":"Z","cantidad":1}]`,
			setup: func(uc *mockUsecase.MockProductUsecase) {
				uc.EXPECT().UpdateStocks(mock.Anything, mock.Anything).
					Return(nil, domainerrors.ErrProductNotFound.WithMessageArgs("Z"))
			},
			wantStatus:  http.StatusNotFound,
			wantMessage: "Error: Producto con ID Z no encontrado en la base de datos",
			wantCode:    "PRODUCT_NOT_FOUND",
		},
		{name: "missing quantity", body: `[{"uid":"A"}]`, wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_FAILED"},
		{name: "negative quantity", body: `[{"uid":"A","cantidad":-2}]`, wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_FAILED"},
		{name: "huge repeated quantities", body: `[{"uid":"A","cantidad":4611686018427387904},{"uid":"A","cantidad":4611686018427387904}]`, wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_FAILED"},
		{name: "empty batch", body: `[]`, wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_FAILED"},
		{name: "not an array", body: `{"uid":"A"}`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newTestProductHandler(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/products/update-stocks", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			require.NoError(t, h.UpdateStocks(newTestEcho().NewContext(req, rec)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			if tt.wantCode == "" {
				assert.Equal(t, tt.wantMessage, env.Data["message"])

				return
			}
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, env.Error.Message)
			}
		})
	}
}

func TestProductHandler_AddCommentToComments_UsesLastEntry(t *testing.T) {
	h, uc := newTestProductHandler(t)
	updated := time.Date(2026, 5, 4, 12, 30, 0, 0, time.UTC)

	uc.EXPECT().AddComment(mock.Anything, "p1", "nuevo").Return(updated, nil)

	body := `{"uid":"p1","comentarios":["viejo","nuevo"]}`
	req := httptest.NewRequest(http.MethodPatch, "/api/products/addCommentToComments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.AddCommentToComments(newTestEcho().NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Comment added successfully", env.Data["message"])
	assert.Equal(t, "2026-05-04T12:30:00Z", env.Data["updateTime"])
}

func TestProductHandler_AddRatingToRatings(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		h, _ := newTestProductHandler(t)

		req := httptest.NewRequest(http.MethodPatch, "/api/products/addRatingToRatings", strings.NewReader(`{"uid":"p1","rating":[]}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.AddRatingToRatings(newTestEcho().NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure hides details", func(t *testing.T) {
		h, uc := newTestProductHandler(t)
		uc.EXPECT().AddRating(mock.Anything, "p1", 5).Return(time.Time{}, domainerrors.ErrAddRatingFailed.WithDetails("rpc error"))

		req := httptest.NewRequest(http.MethodPatch, "/api/products/addRatingToRatings", strings.NewReader(`{"uid":"p1","rating":[3,5]}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.AddRatingToRatings(newTestEcho().NewContext(req, rec)))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "Error adding rating", env.Error.Message)
		assert.Nil(t, env.Error.Details)
	})
}

func TestProductHandler_GetProduct(t *testing.T) {
	h, uc := newTestProductHandler(t)
	uc.EXPECT().GetProduct(mock.Anything, "p1").Return(&entity.Product{ID: "p1", Name: "Bonito", Stock: 3}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/products/p1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("uid")
	c.SetParamValues("p1")

	require.NoError(t, h.GetProduct(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "p1", env.Data["uid"])
	assert.Equal(t, "Bonito", env.Data["nombre"])
	assert.InDelta(t, 3, env.Data["cantidadStock"], 0)
}

func TestProductHandler_GetProductPhoto_Absent(t *testing.T) {
	h, uc := newTestProductHandler(t)
	uc.EXPECT().GetProductPhoto(mock.Anything, "p1").Return("", nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/products/p1/photo", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("uid")
	c.SetParamValues("p1")

	require.NoError(t, h.GetProductPhoto(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", decodeEnvelope(t, rec).Data["imagenURL"])
}
