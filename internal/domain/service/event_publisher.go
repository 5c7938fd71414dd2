package service

import (
	"context"
)

// StockLevelEvent is published after a stock decrement is committed
type StockLevelEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	ProductID  string `json:"product_id"`
	Previous   int    `json:"previous"`
	Remaining  int    `json:"remaining"`
	Quantity   int    `json:"quantity"`
	OccurredAt string `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishStockLevel publishes a stock level event for async processing
	PublishStockLevel(ctx context.Context, event *StockLevelEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
