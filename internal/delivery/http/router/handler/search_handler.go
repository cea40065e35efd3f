package handler

import (
	"log/slog"
	"net/http"

	"mugclub/internal/delivery/http/response"
	"mugclub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SearchHandler holds dependencies for the reference-data search handlers.
type SearchHandler struct {
	uc     usecase.SearchUsecase
	logger *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler, injected by Fx.
func NewSearchHandler(uc usecase.SearchUsecase, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		uc:     uc,
		logger: logger,
	}
}

// SearchBeers answers ranked beer matches for the query parameter.
func (h *SearchHandler) SearchBeers(c echo.Context) error {
	output, err := h.uc.SearchBeers(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "beers", output.Beers)
}

// SearchBreweries answers ranked brewery matches for the query parameter.
func (h *SearchHandler) SearchBreweries(c echo.Context) error {
	output, err := h.uc.SearchBreweries(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "breweries", output.Breweries)
}
