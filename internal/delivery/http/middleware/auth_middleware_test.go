package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "mugclub/internal/delivery/context"
	"mugclub/internal/domain/entity"
	"mugclub/internal/domain/repository"
	mockRepo "mugclub/internal/mocks/repository"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, sessionRepo repository.SessionRepository, token string) (*httptest.ResponseRecorder, *entity.Person, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/drink", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.Person
	next := func(c echo.Context) error {
		seen = deliverycontext.GetPerson(c)

		return c.NoContent(http.StatusOK)
	}

	err := NewAuthMiddleware(sessionRepo).Authenticate(next)(c)

	return rec, seen, err
}

func TestAuthMiddleware_ValidSession(t *testing.T) {
	mockSessionRepo := mockRepo.NewMockSessionRepository(t)
	person := &entity.Person{ID: 21}

	mockSessionRepo.EXPECT().
		FindPersonByID(mock.Anything, "token-1").
		Return(person, nil)

	rec, seen, err := runAuthenticate(t, mockSessionRepo, "token-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, person, seen)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	// No expectations: the guard must reject before touching storage.
	rec, seen, err := runAuthenticate(t, mockRepo.NewMockSessionRepository(t), "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "fail", body["status"])
}

func TestAuthMiddleware_UnknownOrExpiredToken(t *testing.T) {
	mockSessionRepo := mockRepo.NewMockSessionRepository(t)

	mockSessionRepo.EXPECT().
		FindPersonByID(mock.Anything, "stale-token").
		Return(nil, repository.ErrSessionNotFound)

	rec, seen, err := runAuthenticate(t, mockSessionRepo, "stale-token")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}
