package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pescastur/config"
	deliverycontext "pescastur/internal/delivery/context"
	domainerrors "pescastur/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_ReusesIncomingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	var seenID string
	var seenLogger *slog.Logger
	err := mw.Process(func(c echo.Context) error {
		seenID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		seenLogger = deliverycontext.GetLogger(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "req-123", seenID)
	assert.NotNil(t, seenLogger)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-123", deliverycontext.GetRequestID(c))
}

func TestRequestIDMiddleware_GeneratesWhenMissing(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	err := mw.Process(func(c echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
}

func TestRequestIDMiddleware_ReplacesOversizedHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxRequestIDLength+1))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	require.NoError(t, mw.Process(func(c echo.Context) error { return nil })(c))

	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
}

func TestLoggerMiddleware_LogsServerErrorsOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := &config.Config{}

	mw := NewLoggerMiddleware(logger, cfg)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/products/all", nil), httptest.NewRecorder())

	err := mw.Handle(func(c echo.Context) error { return domainerrors.ErrProviderUnavailable })(c)
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"status":503`)

	buf.Reset()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/products/x", nil), httptest.NewRecorder())
	err = mw.Handle(func(c echo.Context) error { return domainerrors.ErrNotFound })(c)
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestLoggerMiddleware_DebugLogsEverything(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true

	mw := NewLoggerMiddleware(logger, cfg)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health?verbose=1", nil), httptest.NewRecorder())

	err := mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"query":"verbose=1"`)
}
