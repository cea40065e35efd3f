package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "mugclub/internal/delivery/context"
	"mugclub/internal/delivery/http/response"
	"mugclub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the phone-login handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// BeginAuth handles the request to start a phone login.
func (h *AuthHandler) BeginAuth(c echo.Context) error {
	var input usecase.BeginAuthInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.BeginAuth(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "message", output.Message)
}

// CompleteAuth handles the request to finish a phone login with the texted
// code.
func (h *AuthHandler) CompleteAuth(c echo.Context) error {
	var input usecase.CompleteAuthInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "Invalid verification input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CompleteAuth(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "session", output.Session)
}

// TestAuth answers only behind the session guard, so clients can check
// whether their token is still good.
func (h *AuthHandler) TestAuth(c echo.Context) error {
	person := deliverycontext.GetPerson(c)
	if person == nil {
		return response.Fail(c, http.StatusUnauthorized, "Session not found")
	}

	return response.Success(c, http.StatusOK, "message", fmt.Sprintf("Hello person %d", person.ID))
}
