package impl

import (
	"context"
	"testing"
	"time"

	"mugclub/config"
	"mugclub/internal/domain/entity"
	domainerrors "mugclub/internal/domain/errors"
	"mugclub/internal/domain/repository"
	"mugclub/internal/domain/service"
	mockRepo "mugclub/internal/mocks/repository"
	mockSvc "mugclub/internal/mocks/service"
	"mugclub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSessionTTL = 336 * time.Hour

func newAuthService(txManager repository.TransactionManager, verifier service.PhoneVerifier) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		TxManager: txManager,
		Verifier:  verifier,
		Config:    &config.Config{Session: config.SessionConfig{TTL: testSessionTTL}},
		Logger:    testLogger(),
	})
}

func TestPhoneNumberPattern(t *testing.T) {
	tests := []struct {
		number string
		valid  bool
	}{
		{"5558675309", true},
		{"555-867-5309", true},
		{"(555) 867-5309", true},
		{"555.867.5309", true},
		{"123456", true},
		{"5550100", true},
		{"555 010 04567", true},
		{"", false},
		{"12345", false},
		{"555867530912", false},
		{"not a number", false},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.valid, phoneNumberPattern.MatchString(tt.number))
		})
	}
}

func TestAuthService_BeginAuth(t *testing.T) {
	mockVerifier := mockSvc.NewMockPhoneVerifier(t)
	svc := newAuthService(mockRepo.NewMockTransactionManager(t), mockVerifier)

	ctx := context.Background()

	mockVerifier.EXPECT().
		StartVerification(ctx, "1", "555-867-5309").
		Return(&service.VerificationStart{Message: "Text message sent"}, nil)

	output, err := svc.BeginAuth(ctx, &usecase.BeginAuthInput{
		CountryCode: "1",
		PhoneNumber: "555-867-5309",
	})
	require.NoError(t, err)
	assert.Equal(t, "Text message sent", output.Message)
}

func TestAuthService_BeginAuth_InvalidPhone(t *testing.T) {
	// The verifier mock has no expectations, so any provider call fails the test.
	svc := newAuthService(mockRepo.NewMockTransactionManager(t), mockSvc.NewMockPhoneVerifier(t))

	output, err := svc.BeginAuth(context.Background(), &usecase.BeginAuthInput{
		CountryCode: "1",
		PhoneNumber: "12345",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPhoneNumber)
}

func TestAuthService_BeginAuth_ProviderDown(t *testing.T) {
	mockVerifier := mockSvc.NewMockPhoneVerifier(t)
	svc := newAuthService(mockRepo.NewMockTransactionManager(t), mockVerifier)

	ctx := context.Background()

	mockVerifier.EXPECT().
		StartVerification(ctx, "1", "5558675309").
		Return(nil, domainerrors.ErrProviderFailed)

	_, err := svc.BeginAuth(ctx, &usecase.BeginAuthInput{
		CountryCode: "1",
		PhoneNumber: "5558675309",
	})
	assert.ErrorIs(t, err, domainerrors.ErrProviderFailed)
}

func TestAuthService_CompleteAuth_WrongCode(t *testing.T) {
	mockVerifier := mockSvc.NewMockPhoneVerifier(t)
	svc := newAuthService(mockRepo.NewMockTransactionManager(t), mockVerifier)

	ctx := context.Background()

	mockVerifier.EXPECT().
		CheckVerification(ctx, "1", "5558675309", "0000").
		Return(domainerrors.ErrInvalidCode)

	output, err := svc.CompleteAuth(ctx, &usecase.CompleteAuthInput{
		CountryCode:      "1",
		PhoneNumber:      "5558675309",
		VerificationCode: "0000",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCode)
}

func TestAuthService_CompleteAuth_ExistingIdentity(t *testing.T) {
	mockVerifier := mockSvc.NewMockPhoneVerifier(t)
	mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
	mockSessionRepo := mockRepo.NewMockSessionRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
	factory.EXPECT().SessionRepo().Return(mockSessionRepo)

	svc := newAuthService(passthroughTx(t, factory), mockVerifier)

	ctx := context.Background()

	mockVerifier.EXPECT().
		CheckVerification(ctx, "1", "5558675309", "1234").
		Return(nil)

	mockIdentityRepo.EXPECT().
		FindByIdentifier(ctx, "15558675309").
		Return(&entity.Identity{ID: 2, Identifier: "15558675309", PersonID: 7}, nil)

	var created *entity.Session
	mockSessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(_ context.Context, session *entity.Session) {
			created = session
		}).
		Return(nil)

	before := time.Now()
	output, err := svc.CompleteAuth(ctx, &usecase.CompleteAuthInput{
		CountryCode:      "1",
		PhoneNumber:      "5558675309",
		VerificationCode: "1234",
	})
	require.NoError(t, err)
	require.NotNil(t, output.Session)
	require.NotNil(t, created)

	assert.Equal(t, int64(7), created.PersonID)
	assert.Len(t, created.ID, 64)
	assert.WithinDuration(t, before.Add(testSessionTTL), created.ExpiresAt, time.Minute)
	assert.Equal(t, created, output.Session)
}

func TestAuthService_CompleteAuth_FirstLogin(t *testing.T) {
	mockVerifier := mockSvc.NewMockPhoneVerifier(t)
	mockPersonRepo := mockRepo.NewMockPersonRepository(t)
	mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
	mockSessionRepo := mockRepo.NewMockSessionRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().PersonRepo().Return(mockPersonRepo)
	factory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
	factory.EXPECT().SessionRepo().Return(mockSessionRepo)

	svc := newAuthService(passthroughTx(t, factory), mockVerifier)

	ctx := context.Background()

	mockVerifier.EXPECT().
		CheckVerification(ctx, "1", "5550100", "1234").
		Return(nil)

	mockIdentityRepo.EXPECT().
		FindByIdentifier(ctx, "15550100").
		Return(nil, repository.ErrIdentityNotFound)

	mockPersonRepo.EXPECT().
		Create(ctx).
		Return(&entity.Person{ID: 11}, nil)

	mockIdentityRepo.EXPECT().
		Create(ctx, "15550100", int64(11)).
		Return(&entity.Identity{ID: 5, Identifier: "15550100", PersonID: 11}, nil)

	mockSessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Return(nil)

	output, err := svc.CompleteAuth(ctx, &usecase.CompleteAuthInput{
		CountryCode:      "1",
		PhoneNumber:      "5550100",
		VerificationCode: "1234",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), output.Session.PersonID)
}

func TestAuthService_CompleteAuth_LostFirstLoginRace(t *testing.T) {
	mockVerifier := mockSvc.NewMockPhoneVerifier(t)
	mockPersonRepo := mockRepo.NewMockPersonRepository(t)
	mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
	mockSessionRepo := mockRepo.NewMockSessionRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().PersonRepo().Return(mockPersonRepo)
	factory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
	factory.EXPECT().SessionRepo().Return(mockSessionRepo)

	svc := newAuthService(passthroughTx(t, factory), mockVerifier)

	ctx := context.Background()

	mockVerifier.EXPECT().
		CheckVerification(ctx, "1", "5550100", "1234").
		Return(nil)

	mockIdentityRepo.EXPECT().
		FindByIdentifier(ctx, "15550100").
		Return(nil, repository.ErrIdentityNotFound).
		Once()

	mockPersonRepo.EXPECT().
		Create(ctx).
		Return(&entity.Person{ID: 12}, nil)

	// A concurrent first login bound the identifier between our lookup and insert.
	mockIdentityRepo.EXPECT().
		Create(ctx, "15550100", int64(12)).
		Return(nil, repository.ErrAlreadyExists)

	mockIdentityRepo.EXPECT().
		FindByIdentifier(ctx, "15550100").
		Return(&entity.Identity{ID: 6, Identifier: "15550100", PersonID: 3}, nil).
		Once()

	mockSessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Return(nil)

	output, err := svc.CompleteAuth(ctx, &usecase.CompleteAuthInput{
		CountryCode:      "1",
		PhoneNumber:      "5550100",
		VerificationCode: "1234",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), output.Session.PersonID)
}

func TestAuthService_CompleteAuth_SessionCreateFails(t *testing.T) {
	mockVerifier := mockSvc.NewMockPhoneVerifier(t)
	mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
	mockSessionRepo := mockRepo.NewMockSessionRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
	factory.EXPECT().SessionRepo().Return(mockSessionRepo)

	svc := newAuthService(passthroughTx(t, factory), mockVerifier)

	ctx := context.Background()
	dbErr := errors.New("connection reset")

	mockVerifier.EXPECT().
		CheckVerification(ctx, "1", "5558675309", "1234").
		Return(nil)

	mockIdentityRepo.EXPECT().
		FindByIdentifier(ctx, "15558675309").
		Return(&entity.Identity{ID: 2, PersonID: 7}, nil)

	mockSessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Return(dbErr)

	output, err := svc.CompleteAuth(ctx, &usecase.CompleteAuthInput{
		CountryCode:      "1",
		PhoneNumber:      "5558675309",
		VerificationCode: "1234",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, dbErr)
}

func TestGenerateSessionToken_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 32 {
		token, err := generateSessionToken()
		require.NoError(t, err)
		assert.Len(t, token, 64)

		_, dup := seen[token]
		assert.False(t, dup)
		seen[token] = struct{}{}
	}
}
