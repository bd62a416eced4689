package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is the liveness endpoint used by load balancers and
// monitoring to verify the frontend is serving. It does not touch the
// backend: a degraded backend still leaves this process healthy.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
