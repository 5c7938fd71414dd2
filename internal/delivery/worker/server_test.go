package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pescastur/config"
	"pescastur/internal/delivery/worker/handler"
	mockUsecase "pescastur/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestWorker(t *testing.T) *workerServer {
	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config:       cfg,
		Logger:       logger,
		StockAlertUC: mockUsecase.NewMockStockAlertUsecase(t),
	})

	srv, err := NewServer(ServerParams{
		Lc:          fxtest.NewLifecycle(t),
		Cfg:         cfg,
		Logger:      logger,
		PushHandler: push,
	})
	require.NoError(t, err)

	return srv.(*workerServer)
}

func TestWorkerServer_Health(t *testing.T) {
	srv := newTestWorker(t)

	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestWorkerServer_RejectsOversizedPush(t *testing.T) {
	srv := newTestWorker(t)

	body := `{"message":{"data":"` + strings.Repeat("A", 70*1024) + `"}}`
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
