// Package service declares the external collaborator interfaces the domain
// depends on.
package service

import "context"

// VerificationStart carries the provider's response to a verification request.
type VerificationStart struct {
	// Message is the provider's human-readable status, relayed to the client.
	Message string
}

// PhoneVerifier sends and checks one-time SMS verification codes through an
// external provider.
type PhoneVerifier interface {
	// StartVerification asks the provider to text a code to the number.
	StartVerification(ctx context.Context, countryCode, phoneNumber string) (*VerificationStart, error)

	// CheckVerification validates a submitted code. A wrong code returns
	// domainerrors.ErrInvalidCode; provider outages return
	// domainerrors.ErrProviderFailed.
	CheckVerification(ctx context.Context, countryCode, phoneNumber, code string) error
}
