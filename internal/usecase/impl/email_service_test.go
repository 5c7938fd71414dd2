package impl

import (
	"context"
	"net/http"
	"testing"

	"pescastur/internal/domain/entity"
	mockService "pescastur/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestEmailService_SendEmail(t *testing.T) {
	ctx := context.Background()
	message := &entity.EmailMessage{To: "ana@pescastur.es", Subject: "Pedido", Body: "Gracias"}

	t.Run("delivered", func(t *testing.T) {
		sender := mockService.NewMockEmailSender(t)
		sender.EXPECT().Send(ctx, message).Return(nil)

		require.NoError(t, NewEmailService(sender, newDiscardLogger()).SendEmail(ctx, message))
	})

	t.Run("provider failure surfaces as 503", func(t *testing.T) {
		sender := mockService.NewMockEmailSender(t)
		sender.EXPECT().Send(ctx, message).Return(errors.New("401 unauthorized"))

		err := NewEmailService(sender, newDiscardLogger()).SendEmail(ctx, message)
		requireHTTPCode(t, err, http.StatusServiceUnavailable)
	})

	t.Run("missing recipient", func(t *testing.T) {
		sender := mockService.NewMockEmailSender(t)

		err := NewEmailService(sender, newDiscardLogger()).SendEmail(ctx, &entity.EmailMessage{Subject: "s"})
		requireHTTPCode(t, err, http.StatusBadRequest)
	})
}
