package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pescastur/internal/delivery/api/response"
	"pescastur/internal/domain/entity"
	"pescastur/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const stocksUpdatedMessage = "Pedido procesado y stock actualizado correctamente para todos los productos"

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for catalog handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// AddCommentRequest carries the product with its comment list; the last
// element is the comment to append.
type AddCommentRequest struct {
	UID      string   `json:"uid" validate:"required"`
	Comments []string `json:"comentarios" validate:"required,min=1"`
}

// AddRatingRequest carries the product with its rating list; the last
// element is the rating to append.
type AddRatingRequest struct {
	UID     string `json:"uid" validate:"required"`
	Ratings []int  `json:"rating" validate:"required,min=1"`
}

// StockItemRequest is one entry of an update-stocks batch
type StockItemRequest struct {
	UID      string `json:"uid" validate:"required"`
	Quantity *int   `json:"cantidad" validate:"required,min=0,max=1000000"`
}

// UpdateStocksRequest wraps the JSON array body so it can be validated
type UpdateStocksRequest struct {
	Products []StockItemRequest `json:"products" validate:"required,min=1,dive"`
}

// GetAllProducts handles GET /api/products/all
func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	products, err := h.productUC.GetAllProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct handles GET /api/products/:uid
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUC.GetProduct(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// GetProductPhoto handles GET /api/products/:uid/photo
func (h *ProductHandler) GetProductPhoto(c echo.Context) error {
	photo, err := h.productUC.GetProductPhoto(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"imagenURL": photo})
}

// AddCommentToComments handles PATCH /api/products/addCommentToComments
func (h *ProductHandler) AddCommentToComments(c echo.Context) error {
	var req AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	updatedAt, err := h.productUC.AddComment(c.Request().Context(), req.UID, req.Comments[len(req.Comments)-1])
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.MessageData{
		Message:    "Comment added successfully",
		UpdateTime: updatedAt.UTC().Format(time.RFC3339Nano),
	})
}

// AddRatingToRatings handles PATCH /api/products/addRatingToRatings
func (h *ProductHandler) AddRatingToRatings(c echo.Context) error {
	var req AddRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	updatedAt, err := h.productUC.AddRating(c.Request().Context(), req.UID, req.Ratings[len(req.Ratings)-1])
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.MessageData{
		Message:    "Rating added successfully",
		UpdateTime: updatedAt.UTC().Format(time.RFC3339Nano),
	})
}

// UpdateStocks handles POST /api/products/update-stocks
func (h *ProductHandler) UpdateStocks(c echo.Context) error {
	var req UpdateStocksRequest
	if err := c.Bind(&req.Products); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid stock update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	requests := make([]entity.StockRequest, 0, len(req.Products))
	for _, item := range req.Products {
		requests = append(requests, entity.StockRequest{
			ProductID: item.UID,
			Quantity:  *item.Quantity,
		})
	}

	if _, err := h.productUC.UpdateStocks(c.Request().Context(), requests); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, stocksUpdatedMessage)
}
