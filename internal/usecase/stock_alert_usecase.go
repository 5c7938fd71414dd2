package usecase

import (
	"context"

	"pescastur/internal/domain/service"
)

// StockAlertUsecase reacts to committed stock decrements.
type StockAlertUsecase interface {
	// HandleStockLevel alerts when the remaining stock reaches the configured threshold.
	// It reports whether an alert was sent.
	HandleStockLevel(ctx context.Context, event *service.StockLevelEvent) (bool, error)
}
