package firestore

import (
	"context"
	"math"

	"pescastur/internal/domain/entity"
	"pescastur/internal/domain/repository"
	"pescastur/internal/errors"
	"pescastur/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

// UpdateProductStocks decrements stocks inside Firestore transactions, so a
// concurrent batch can never read a stale stock and drive it below zero.
func (r *productRepository) UpdateProductStocks(ctx context.Context, requests []entity.StockRequest, policy entity.StockBatchPolicy) ([]entity.StockLevel, error) {
	if policy == entity.StockBatchAtomic {
		return r.updateStocksAtomic(ctx, requests)
	}

	return r.updateStocksSequential(ctx, requests)
}

// updateStocksSequential runs one transaction per entry and stops at the first
// failure. Entries committed before the failure stay committed.
func (r *productRepository) updateStocksSequential(ctx context.Context, requests []entity.StockRequest) ([]entity.StockLevel, error) {
	applied := make([]entity.StockLevel, 0, len(requests))

	for _, req := range requests {
		level, err := r.decrement(ctx, req)
		if err != nil {
			return applied, err
		}
		applied = append(applied, level)
	}

	return applied, nil
}

func (r *productRepository) decrement(ctx context.Context, req entity.StockRequest) (entity.StockLevel, error) {
	ref := r.collection().Doc(req.ProductID)

	var level entity.StockLevel
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return &repository.StockError{ProductID: req.ProductID, Err: repository.ErrProductNotFound}
			}

			return errors.Wrapf(err, "read stock of %s", req.ProductID)
		}

		current := model.ProductStock(snap.Data())
		if req.Quantity > current {
			return &repository.StockError{ProductID: req.ProductID, Err: repository.ErrInsufficientStock}
		}

		level = entity.StockLevel{
			ProductID: req.ProductID,
			Previous:  current,
			Remaining: current - req.Quantity,
		}

		return tx.Update(ref, []firestore.Update{
			{Path: model.ProductFieldStock, Value: int64(level.Remaining)},
		})
	})
	if err != nil {
		return entity.StockLevel{}, translateStockError(err, req.ProductID)
	}

	return level, nil
}

// updateStocksAtomic checks every entry before writing any of them, in a
// single transaction. Repeated product IDs are summed.
func (r *productRepository) updateStocksAtomic(ctx context.Context, requests []entity.StockRequest) ([]entity.StockLevel, error) {
	order, totals, err := aggregateStockRequests(requests)
	if err != nil {
		return nil, err
	}

	refs := make([]*firestore.DocumentRef, 0, len(order))
	for _, id := range order {
		refs = append(refs, r.collection().Doc(id))
	}

	var levels []entity.StockLevel
	err = r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snaps, err := tx.GetAll(refs)
		if err != nil {
			return errors.Wrap(err, "read stocks")
		}

		levels = make([]entity.StockLevel, 0, len(order))
		for i, snap := range snaps {
			id := order[i]
			if !snap.Exists() {
				return &repository.StockError{ProductID: id, Err: repository.ErrProductNotFound}
			}

			current := model.ProductStock(snap.Data())
			if totals[id] > current {
				return &repository.StockError{ProductID: id, Err: repository.ErrInsufficientStock}
			}

			levels = append(levels, entity.StockLevel{
				ProductID: id,
				Previous:  current,
				Remaining: current - totals[id],
			})
		}

		for i, level := range levels {
			if err := tx.Update(refs[i], []firestore.Update{
				{Path: model.ProductFieldStock, Value: int64(level.Remaining)},
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, translateStockError(err, "")
	}

	return levels, nil
}

// aggregateStockRequests sums repeated product IDs in first-seen order. A sum
// that would overflow int can never be covered by a stock, so it fails as
// insufficient stock before anything is read.
func aggregateStockRequests(requests []entity.StockRequest) ([]string, map[string]int, error) {
	order := make([]string, 0, len(requests))
	totals := make(map[string]int, len(requests))
	for _, req := range requests {
		total, seen := totals[req.ProductID]
		if !seen {
			order = append(order, req.ProductID)
		}
		if req.Quantity > math.MaxInt-total {
			return nil, nil, errors.WithStack(&repository.StockError{ProductID: req.ProductID, Err: repository.ErrInsufficientStock})
		}
		totals[req.ProductID] = total + req.Quantity
	}

	return order, totals, nil
}

func translateStockError(err error, productID string) error {
	var stockErr *repository.StockError
	if errors.As(err, &stockErr) {
		return errors.WithStack(stockErr)
	}

	if productID == "" {
		return errors.Wrap(err, "update stocks")
	}

	return errors.Wrapf(err, "update stock of %s", productID)
}
