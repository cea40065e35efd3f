package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess_WrapsPayloadUnderField(t *testing.T) {
	c, rec := newTestContext(t)

	require.NoError(t, Success(c, http.StatusOK, "message", "Hello world!"))

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, map[string]any{"message": "Hello world!"}, body["data"])
	assert.Nil(t, body["messages"])
}

func TestFail_NullsDataAndCarriesMessages(t *testing.T) {
	c, rec := newTestContext(t)

	require.NoError(t, Fail(c, http.StatusBadRequest, "Invalid phone number"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, "fail", body["status"])
	assert.Nil(t, body["data"])
	assert.Equal(t, []any{"Invalid phone number"}, body["messages"])
}

func TestError_ReportsServerFault(t *testing.T) {
	c, rec := newTestContext(t)

	require.NoError(t, Error(c, http.StatusInternalServerError, "Internal server error"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, "error", body["status"])
	assert.Nil(t, body["data"])
	assert.Equal(t, []any{"Internal server error"}, body["messages"])
}
