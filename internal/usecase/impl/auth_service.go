// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"regexp"
	"time"

	"mugclub/config"
	deliverycontext "mugclub/internal/delivery/context"
	"mugclub/internal/domain/entity"
	domainerrors "mugclub/internal/domain/errors"
	"mugclub/internal/domain/repository"
	"mugclub/internal/domain/service"
	"mugclub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// phoneNumberPattern accepts any formatting of a 6-to-11-digit number,
// grouped 3-3-up to 5, with arbitrary punctuation between the groups.
var phoneNumberPattern = regexp.MustCompile(`^\D*\d{3}\D*\d{3}\D*\d{0,5}\D*$`)

// sessionTokenBytes is the entropy behind a session token. 48 random bytes
// encode to a 64-character URL-safe string.
const sessionTokenBytes = 48

// authService implements the AuthUsecase interface.
type authService struct {
	txManager  repository.TransactionManager
	verifier   service.PhoneVerifier
	sessionTTL time.Duration
	logger     *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Verifier  service.PhoneVerifier
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:  params.TxManager,
		verifier:   params.Verifier,
		sessionTTL: params.Config.Session.TTL,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginAuth validates the number and asks the provider to text a code. No
// database state changes until the code comes back verified.
func (srv *authService) BeginAuth(ctx context.Context, input *usecase.BeginAuthInput) (*usecase.BeginAuthOutput, error) {
	if !phoneNumberPattern.MatchString(input.PhoneNumber) {
		return nil, domainerrors.ErrInvalidPhoneNumber
	}

	srv.log(ctx).Info("Starting phone verification", slog.String("country_code", input.CountryCode))

	start, err := srv.verifier.StartVerification(ctx, input.CountryCode, input.PhoneNumber)
	if err != nil {
		return nil, err
	}

	return &usecase.BeginAuthOutput{Message: start.Message}, nil
}

// CompleteAuth checks the code with the provider, then finds or creates the
// person bound to the number and issues a fresh session, all in one
// transaction.
func (srv *authService) CompleteAuth(ctx context.Context, input *usecase.CompleteAuthInput) (*usecase.CompleteAuthOutput, error) {
	if !phoneNumberPattern.MatchString(input.PhoneNumber) {
		return nil, domainerrors.ErrInvalidPhoneNumber
	}

	if err := srv.verifier.CheckVerification(ctx, input.CountryCode, input.PhoneNumber, input.VerificationCode); err != nil {
		return nil, err
	}

	identifier := input.CountryCode + input.PhoneNumber

	token, err := generateSessionToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	var session *entity.Session
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		personID, err := srv.resolvePerson(ctx, repoFactory, identifier)
		if err != nil {
			return err
		}

		session = &entity.Session{
			ID:        token,
			PersonID:  personID,
			ExpiresAt: time.Now().Add(srv.sessionTTL),
		}

		return repoFactory.SessionRepo().Create(ctx, session)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Session issued", slog.Int64("person_id", session.PersonID))

	return &usecase.CompleteAuthOutput{Session: session}, nil
}

// resolvePerson finds the person bound to the identifier, creating person and
// identity on first login. When a concurrent first login wins the identity
// insert, the conflicted insert reads back the winner's binding.
func (srv *authService) resolvePerson(ctx context.Context, repoFactory repository.RepositoryFactory, identifier string) (int64, error) {
	identityRepo := repoFactory.IdentityRepo()

	identity, err := identityRepo.FindByIdentifier(ctx, identifier)
	if err == nil {
		return identity.PersonID, nil
	}
	if !errors.Is(err, repository.ErrIdentityNotFound) {
		return 0, errors.Wrap(err, "failed to look up identity")
	}

	person, err := repoFactory.PersonRepo().Create(ctx)
	if err != nil {
		return 0, err
	}

	identity, err = identityRepo.Create(ctx, identifier, person.ID)
	if err == nil {
		return identity.PersonID, nil
	}
	if !errors.Is(err, repository.ErrAlreadyExists) {
		return 0, errors.Wrap(err, "failed to create identity")
	}

	// Lost the race: another request bound this identifier between our
	// lookup and insert. Its person wins; ours stays unreferenced.
	identity, err = identityRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		return 0, errors.Wrap(err, "failed to re-read identity after conflict")
	}

	return identity.PersonID, nil
}

// generateSessionToken draws a fresh opaque bearer token from crypto/rand.
func generateSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
