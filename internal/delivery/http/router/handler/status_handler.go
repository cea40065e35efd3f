// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"mugclub/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// Index answers the root path so uptime checks have something cheap to hit.
func Index(c echo.Context) error {
	return response.Success(c, http.StatusOK, "message", "Hello world!")
}

// Wakeup exists for platform keep-alive pings.
func Wakeup(c echo.Context) error {
	return response.Success(c, http.StatusOK, "message", "👍")
}
