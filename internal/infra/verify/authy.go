// Package verify holds the client for the external phone-verification
// provider.
package verify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mugclub/config"
	domainerrors "mugclub/internal/domain/errors"
	"mugclub/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	startVerificationPath = "/protected/json/phones/verification/start"
	checkVerificationPath = "/protected/json/phones/verification/check"

	apiKeyHeader = "X-Authy-API-Key"

	defaultRequestTimeout = 10 * time.Second
)

// authyResponse is the subset of the provider's payload the service cares
// about. Success is reported in-band, alongside the HTTP status.
type authyResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// AuthyVerifier implements service.PhoneVerifier against the Authy
// phone-verification REST API.
type AuthyVerifier struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewAuthyVerifier is the constructor for AuthyVerifier.
func NewAuthyVerifier(cfg *config.Config) service.PhoneVerifier {
	return &AuthyVerifier{
		apiKey:  cfg.Authy.APIKey,
		baseURL: strings.TrimRight(cfg.Authy.BaseURL, "/"),
		client:  &http.Client{Timeout: defaultRequestTimeout},
	}
}

// StartVerification asks the provider to text a one-time code to the number.
func (v *AuthyVerifier) StartVerification(ctx context.Context, countryCode, phoneNumber string) (*service.VerificationStart, error) {
	form := url.Values{}
	form.Set("via", "sms")
	form.Set("country_code", countryCode)
	form.Set("phone_number", phoneNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		v.baseURL+startVerificationPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build verification start request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(apiKeyHeader, v.apiKey)

	body, statusCode, err := v.do(req)
	if err != nil {
		return nil, err
	}

	if statusCode != http.StatusOK || !body.Success {
		return nil, domainerrors.ErrProviderFailed.WithDetails(body.Message)
	}

	return &service.VerificationStart{Message: body.Message}, nil
}

// CheckVerification validates a submitted code. The provider answers a wrong
// code with a 4xx status, which maps to ErrInvalidCode; anything else that is
// not a success is a provider failure.
func (v *AuthyVerifier) CheckVerification(ctx context.Context, countryCode, phoneNumber, code string) error {
	query := url.Values{}
	query.Set("country_code", countryCode)
	query.Set("phone_number", phoneNumber)
	query.Set("verification_code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		v.baseURL+checkVerificationPath+"?"+query.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "failed to build verification check request")
	}
	req.Header.Set(apiKeyHeader, v.apiKey)

	body, statusCode, err := v.do(req)
	if err != nil {
		return err
	}

	switch {
	case statusCode == http.StatusOK && body.Success:
		return nil
	case statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError:
		return domainerrors.ErrInvalidCode.WithDetails(body.Message)
	default:
		return domainerrors.ErrProviderFailed.WithDetails(body.Message)
	}
}

// do sends the request and decodes the provider's JSON envelope. Transport
// failures and undecodable bodies both count as provider failures.
func (v *AuthyVerifier) do(req *http.Request) (*authyResponse, int, error) {
	resp, err := v.client.Do(req)
	if err != nil {
		return nil, 0, domainerrors.ErrProviderFailed.WrapMessage(err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, 0, domainerrors.ErrProviderFailed.WrapMessage("failed to read provider response")
	}

	var body authyResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, 0, domainerrors.ErrProviderFailed.WrapMessage("failed to decode provider response")
	}

	return &body, resp.StatusCode, nil
}
