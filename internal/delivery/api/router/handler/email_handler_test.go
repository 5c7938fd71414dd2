package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pescastur/internal/domain/entity"
	domainerrors "pescastur/internal/domain/errors"
	mockUsecase "pescastur/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEmailHandler_SendEmail(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(uc *mockUsecase.MockEmailUsecase)
		wantStatus int
	}{
		{
			name: "sent",
			body: `{"to":"ana@pescastur.es","subject":"Pedido","body":"Gracias"}`,
			setup: func(uc *mockUsecase.MockEmailUsecase) {
				uc.EXPECT().
					SendEmail(mock.Anything, &entity.EmailMessage{To: "ana@pescastur.es", Subject: "Pedido", Body: "Gracias"}).
					Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid recipient",
			body:       `{"to":"not-an-email","subject":"Pedido"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "provider down",
			body: `{"to":"ana@pescastur.es","subject":"Pedido","body":"Gracias"}`,
			setup: func(uc *mockUsecase.MockEmailUsecase) {
				uc.EXPECT().SendEmail(mock.Anything, mock.Anything).Return(domainerrors.ErrEmailSendFailed)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emailUC := mockUsecase.NewMockEmailUsecase(t)
			if tt.setup != nil {
				tt.setup(emailUC)
			}
			h := NewEmailHandler(EmailHandlerParams{EmailUC: emailUC, Logger: newDiscardLogger()})

			req := httptest.NewRequest(http.MethodPost, "/api/email/send", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			require.NoError(t, h.SendEmail(newTestEcho().NewContext(req, rec)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "Email sent successfully", decodeEnvelope(t, rec).Data["message"])
			}
		})
	}
}
