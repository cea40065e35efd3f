package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	deliverycontext "mugclub/internal/delivery/context"
	deliverymiddleware "mugclub/internal/delivery/http/middleware"
	"mugclub/internal/delivery/http/validator"
	"mugclub/internal/domain/entity"
	mockUsecase "mugclub/internal/mocks/usecase"
	"mugclub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockAuthUsecase) {
	t.Helper()

	mockUC := mockUsecase.NewMockAuthUsecase(t)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = deliverymiddleware.NewErrorMiddleware(testLogger()).HandleHTTPError

	h := NewAuthHandler(mockUC, testLogger())
	e.POST("/auth", h.BeginAuth)
	e.POST("/auth/verify", h.CompleteAuth)
	e.GET("/auth/test", h.TestAuth, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetPerson(c, &entity.Person{ID: 7})
			return next(c)
		}
	})

	return e, mockUC
}

func postForm(e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// The verification form carries the texted code under the field "code".
func TestAuthHandler_CompleteAuth_BindsCodeField(t *testing.T) {
	e, mockUC := newAuthTestServer(t)

	mockUC.EXPECT().
		CompleteAuth(mock.Anything, &usecase.CompleteAuthInput{
			CountryCode:      "1",
			PhoneNumber:      "5558675309",
			VerificationCode: "1234",
		}).
		Return(&usecase.CompleteAuthOutput{
			Session: &entity.Session{ID: "token", PersonID: 7},
		}, nil)

	rec := postForm(e, "/auth/verify", url.Values{
		"country_code": {"1"},
		"phone_number": {"5558675309"},
		"code":         {"1234"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	session, ok := data["session"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "token", session["id"])
}

func TestAuthHandler_CompleteAuth_MissingCode(t *testing.T) {
	e, _ := newAuthTestServer(t)

	rec := postForm(e, "/auth/verify", url.Values{
		"country_code": {"1"},
		"phone_number": {"5558675309"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "fail", body["status"])
}

func TestAuthHandler_BeginAuth(t *testing.T) {
	e, mockUC := newAuthTestServer(t)

	mockUC.EXPECT().
		BeginAuth(mock.Anything, &usecase.BeginAuthInput{
			CountryCode: "1",
			PhoneNumber: "5558675309",
		}).
		Return(&usecase.BeginAuthOutput{Message: "Text message sent"}, nil)

	rec := postForm(e, "/auth", url.Values{
		"country_code": {"1"},
		"phone_number": {"5558675309"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Text message sent", data["message"])
}

func TestAuthHandler_TestAuth_GreetsByID(t *testing.T) {
	e, _ := newAuthTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Hello person 7", data["message"])
}
