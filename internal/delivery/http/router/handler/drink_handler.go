package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "mugclub/internal/delivery/context"
	"mugclub/internal/delivery/http/response"
	"mugclub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DrinkHandler holds dependencies for the drink-log handlers. Every route it
// serves sits behind the session guard.
type DrinkHandler struct {
	uc     usecase.DrinkUsecase
	logger *slog.Logger
}

// NewDrinkHandler is the constructor for DrinkHandler, injected by Fx.
func NewDrinkHandler(uc usecase.DrinkUsecase, logger *slog.Logger) *DrinkHandler {
	return &DrinkHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListDrinks returns the authenticated person's full drink history.
func (h *DrinkHandler) ListDrinks(c echo.Context) error {
	person := deliverycontext.GetPerson(c)
	if person == nil {
		return response.Fail(c, http.StatusUnauthorized, "Session not found")
	}

	output, err := h.uc.ListDrinks(c.Request().Context(), person.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "drinks", output.Drinks)
}

// RecordDrink logs a drink for the authenticated person.
func (h *DrinkHandler) RecordDrink(c echo.Context) error {
	person := deliverycontext.GetPerson(c)
	if person == nil {
		return response.Fail(c, http.StatusUnauthorized, "Session not found")
	}

	var input usecase.RecordDrinkInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid drink input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}
	input.PersonID = person.ID

	output, err := h.uc.RecordDrink(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "drink", output.Drink)
}

// DeleteDrink removes one of the authenticated person's drinks.
func (h *DrinkHandler) DeleteDrink(c echo.Context) error {
	person := deliverycontext.GetPerson(c)
	if person == nil {
		return response.Fail(c, http.StatusUnauthorized, "Session not found")
	}

	drinkID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid drink id")
	}

	if err := h.uc.DeleteDrink(c.Request().Context(), drinkID, person.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "message", "Deleted.")
}
