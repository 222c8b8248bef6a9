package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is the liveness probe used by the container platform.  It returns
// plain text "ok" with a 200 status and touches no dependency.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
