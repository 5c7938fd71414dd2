package handler

import (
	"net/http"

	"pescastur/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck answers the liveness probe
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
