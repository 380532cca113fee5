package handler

import (
	"net/http"

	"meetup/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness; it never calls the maps provider.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
