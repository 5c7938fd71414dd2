package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"pescastur/config"
	deliverycontext "pescastur/internal/delivery/context"
	"pescastur/internal/domain/entity"
	"pescastur/internal/domain/service"
	"pescastur/internal/usecase"

	"github.com/pkg/errors"
)

type stockAlertService struct {
	sender       service.EmailSender
	notification service.NotificationService
	threshold    int
	recipient    string
	pushTopic    string
	logger       *slog.Logger
}

// NewStockAlertService creates the low stock alert use case of the worker.
func NewStockAlertService(
	sender service.EmailSender,
	notification service.NotificationService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.StockAlertUsecase {
	srv := &stockAlertService{
		sender:       sender,
		notification: notification,
		logger:       logger,
	}
	if cfg.StockAlert != nil {
		srv.threshold = cfg.StockAlert.Threshold
		srv.recipient = cfg.StockAlert.Recipient
		srv.pushTopic = cfg.StockAlert.PushTopic
	}

	return srv
}

// HandleStockLevel sends the configured alerts once the remaining stock is at
// or below the threshold. Errors wrap service.ErrProviderUnavailable when a
// redelivery may succeed.
func (srv *stockAlertService) HandleStockLevel(ctx context.Context, event *service.StockLevelEvent) (bool, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if event == nil || event.ProductID == "" {
		return false, errors.New("stock level event without product")
	}
	if event.Remaining > srv.threshold {
		return false, nil
	}

	subject := fmt.Sprintf("Stock bajo: producto %s", event.ProductID)
	body := fmt.Sprintf("El producto %s tiene %d unidades en stock (antes %d).", event.ProductID, event.Remaining, event.Previous)

	if srv.recipient != "" {
		err := srv.sender.Send(ctx, &entity.EmailMessage{
			To:      srv.recipient,
			Subject: subject,
			Body:    body,
		})
		if err != nil {
			return false, errors.Wrap(err, "send stock alert email")
		}
	}

	if srv.pushTopic != "" {
		err := srv.notification.SendTopicNotification(ctx, srv.pushTopic, subject, body, map[string]string{
			"product_id": event.ProductID,
			"remaining":  strconv.Itoa(event.Remaining),
		})
		if err != nil {
			return false, errors.Wrap(err, "send stock alert push")
		}
	}

	logger.Info("Low stock alert sent",
		slog.String("product_id", event.ProductID),
		slog.Int("remaining", event.Remaining),
	)

	return true, nil
}
