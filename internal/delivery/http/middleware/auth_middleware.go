package middleware

import (
	deliverycontext "mugclub/internal/delivery/context"
	"mugclub/internal/delivery/http/response"
	domainerrors "mugclub/internal/domain/errors"
	"mugclub/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware guards routes behind a login session. Clients send their
// session token as the raw Authorization header value.
type AuthMiddleware struct {
	sessionRepo repository.SessionRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionRepo repository.SessionRepository) *AuthMiddleware {
	return &AuthMiddleware{sessionRepo: sessionRepo}
}

// Authenticate resolves the presented token to its person and stores the
// person on the request context. Missing, unknown and expired tokens all get
// the same 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(echo.HeaderAuthorization)
		if token == "" {
			return response.Fail(c, domainerrors.ErrSessionNotFound.HTTPCode(),
				domainerrors.ErrSessionNotFound.Message())
		}

		person, err := m.sessionRepo.FindPersonByID(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return response.Fail(c, domainerrors.ErrSessionNotFound.HTTPCode(),
					domainerrors.ErrSessionNotFound.Message())
			}

			return errors.WithStack(err)
		}

		deliverycontext.SetPerson(c, person)

		return next(c)
	}
}
