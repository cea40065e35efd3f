package verify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mugclub/config"
	domainerrors "mugclub/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVerifier(t *testing.T, handler http.HandlerFunc) *AuthyVerifier {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Authy.APIKey = "test-key"
	cfg.Authy.BaseURL = srv.URL

	return NewAuthyVerifier(cfg).(*AuthyVerifier)
}

func TestAuthyVerifier_StartVerification(t *testing.T) {
	verifier := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, startVerificationPath, r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get(apiKeyHeader))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "sms", r.PostFormValue("via"))
		assert.Equal(t, "1", r.PostFormValue("country_code"))
		assert.Equal(t, "5558675309", r.PostFormValue("phone_number"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Text message sent to +1 555-867-5309","success":true}`))
	})

	start, err := verifier.StartVerification(context.Background(), "1", "5558675309")
	require.NoError(t, err)
	assert.Equal(t, "Text message sent to +1 555-867-5309", start.Message)
}

func TestAuthyVerifier_StartVerification_ProviderRejects(t *testing.T) {
	verifier := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Something went wrong","success":false}`))
	})

	_, err := verifier.StartVerification(context.Background(), "1", "5558675309")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProviderFailed.ErrorCode(), appErr.ErrorCode())
}

func TestAuthyVerifier_CheckVerification(t *testing.T) {
	verifier := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, checkVerificationPath, r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("country_code"))
		assert.Equal(t, "5558675309", r.URL.Query().Get("phone_number"))
		assert.Equal(t, "1234", r.URL.Query().Get("verification_code"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Verification code is correct.","success":true}`))
	})

	require.NoError(t, verifier.CheckVerification(context.Background(), "1", "5558675309", "1234"))
}

func TestAuthyVerifier_CheckVerification_WrongCode(t *testing.T) {
	verifier := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Verification code is incorrect","success":false}`))
	})

	err := verifier.CheckVerification(context.Background(), "1", "5558675309", "0000")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCode.ErrorCode(), appErr.ErrorCode())
}

func TestAuthyVerifier_CheckVerification_ProviderDown(t *testing.T) {
	verifier := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"message":"Maintenance","success":false}`))
	})

	err := verifier.CheckVerification(context.Background(), "1", "5558675309", "1234")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProviderFailed.ErrorCode(), appErr.ErrorCode())
}

func TestAuthyVerifier_UndecodableBody(t *testing.T) {
	verifier := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	})

	_, err := verifier.StartVerification(context.Background(), "1", "5558675309")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProviderFailed.ErrorCode(), appErr.ErrorCode())
}
