package impl

import (
	domainerrors "pescastur/internal/domain/errors"
	"pescastur/internal/domain/repository"
	"pescastur/internal/domain/service"

	"github.com/pkg/errors"
)

// identityError translates an identity provider failure into an AppError.
// Unclassified failures become fallback.
func identityError(err error, fallback *domainerrors.BaseError) error {
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, err.Error())
	case errors.Is(err, service.ErrAccountAlreadyExists):
		return errors.Wrap(domainerrors.ErrUserAlreadyExists, err.Error())
	case errors.Is(err, service.ErrInvalidAccountData):
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	default:
		return providerError(err, fallback)
	}
}

// providerError maps outages to 503 and everything else to fallback.
func providerError(err error, fallback *domainerrors.BaseError) error {
	if errors.Is(err, service.ErrProviderUnavailable) {
		return errors.Wrap(domainerrors.ErrProviderUnavailable, err.Error())
	}

	return errors.Wrap(fallback.WithDetails(err.Error()), "provider call failed")
}

// stockError translates the failure of a stock batch.
func stockError(err error) error {
	var stockErr *repository.StockError
	if errors.As(err, &stockErr) {
		switch {
		case errors.Is(stockErr.Err, repository.ErrProductNotFound):
			return domainerrors.ErrProductNotFound.WithMessageArgs(stockErr.ProductID)
		case errors.Is(stockErr.Err, repository.ErrInsufficientStock):
			return domainerrors.ErrInsufficientStock.WithMessageArgs(stockErr.ProductID)
		}
	}

	return domainerrors.ErrStockUpdateFailed.WithDetails(err.Error())
}
