package entity

import "github.com/pkg/errors"

// MaxStockQuantity caps one batch entry. No stock is ever that large.
const MaxStockQuantity = 1_000_000

// StockRequest asks to take Quantity units of a product out of stock.
type StockRequest struct {
	ProductID string
	Quantity  int
}

// StockLevel is the outcome of one applied decrement.
type StockLevel struct {
	ProductID string
	Previous  int
	Remaining int
}

// StockBatchPolicy decides what happens to a batch when one entry fails.
type StockBatchPolicy string

const (
	// StockBatchSequential applies entries one by one. Entries applied before
	// a failing one keep their decrement.
	StockBatchSequential StockBatchPolicy = "sequential"
	// StockBatchAtomic applies the whole batch or nothing.
	StockBatchAtomic StockBatchPolicy = "atomic"
)

// ParseStockBatchPolicy validates a configured policy name.
func ParseStockBatchPolicy(value string) (StockBatchPolicy, error) {
	switch policy := StockBatchPolicy(value); policy {
	case StockBatchSequential, StockBatchAtomic:
		return policy, nil
	case "":
		return StockBatchSequential, nil
	default:
		return "", errors.Errorf("unknown stock batch policy: %s", value)
	}
}
