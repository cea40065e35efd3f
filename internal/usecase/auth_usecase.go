// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mugclub/internal/domain/entity"
)

// --- Input DTOs ---

// BeginAuthInput defines the data required to start a phone login.
type BeginAuthInput struct {
	CountryCode string `form:"country_code" json:"country_code" validate:"required"`
	PhoneNumber string `form:"phone_number" json:"phone_number" validate:"required"`
}

// CompleteAuthInput defines the data required to finish a phone login.
type CompleteAuthInput struct {
	CountryCode      string `form:"country_code" json:"country_code" validate:"required"`
	PhoneNumber      string `form:"phone_number" json:"phone_number" validate:"required"`
	VerificationCode string `form:"code" json:"code" validate:"required"`
}

// --- Output DTOs ---

// BeginAuthOutput relays the provider's status message to the client.
type BeginAuthOutput struct {
	Message string
}

// CompleteAuthOutput returns the session token the client will present on
// subsequent requests.
type CompleteAuthOutput struct {
	Session *entity.Session
}

// AuthUsecase defines the interface for phone-number authentication.
// This is the contract that the delivery layer will depend on.
type AuthUsecase interface {
	// BeginAuth validates the number and asks the provider to text a code.
	BeginAuth(ctx context.Context, input *BeginAuthInput) (*BeginAuthOutput, error)

	// CompleteAuth checks the code, finds or creates the person bound to the
	// number, and issues a fresh session.
	CompleteAuth(ctx context.Context, input *CompleteAuthInput) (*CompleteAuthOutput, error)
}
