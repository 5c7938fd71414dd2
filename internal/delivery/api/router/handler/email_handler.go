package handler

import (
	"log/slog"

	"pescastur/internal/delivery/api/response"
	"pescastur/internal/domain/entity"
	"pescastur/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EmailHandlerParams holds dependencies for EmailHandler, injected by Fx.
type EmailHandlerParams struct {
	fx.In

	EmailUC usecase.EmailUsecase
	Logger  *slog.Logger
}

// EmailHandler serves the transactional email endpoint
type EmailHandler struct {
	emailUC usecase.EmailUsecase
	logger  *slog.Logger
}

// NewEmailHandler is the constructor for EmailHandler
func NewEmailHandler(params EmailHandlerParams) *EmailHandler {
	return &EmailHandler{
		emailUC: params.EmailUC,
		logger:  params.Logger,
	}
}

// SendEmailRequest represents the request body for sending an email
type SendEmailRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body"`
}

// SendEmail handles POST /api/email/send
func (h *EmailHandler) SendEmail(c echo.Context) error {
	var req SendEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid email input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.emailUC.SendEmail(c.Request().Context(), &entity.EmailMessage{
		To:      req.To,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Email sent successfully")
}
