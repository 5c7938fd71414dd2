package impl

import (
	"io"
	"log/slog"
	"testing"

	"pescastur/config"
	domainerrors "pescastur/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(policy string) *config.Config {
	return &config.Config{
		Catalog: &config.CatalogConfig{StockBatchPolicy: policy},
		StockAlert: &config.StockAlertConfig{
			Threshold: 5,
			Recipient: "almacen@pescastur.es",
			PushTopic: "stock-alerts",
		},
	}
}

// requireHTTPCode asserts that err carries an AppError with the given status.
func requireHTTPCode(t *testing.T, err error, code int) domainerrors.AppError {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	require.Equal(t, code, appErr.HTTPCode())

	return appErr
}
