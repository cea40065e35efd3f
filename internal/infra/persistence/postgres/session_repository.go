package postgres

import (
	"context"

	"mugclub/internal/domain/entity"
	domainerrors "mugclub/internal/domain/errors"
	"mugclub/internal/domain/repository"
	"mugclub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the repository.SessionRepository interface.
// Expiry is enforced at lookup time: every read filters on expires_at, so an
// expired token is indistinguishable from one that never existed.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new session.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := &model.SessionModel{
		ID:        session.ID,
		PersonID:  session.PersonID,
		ExpiresAt: session.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// FindByID retrieves a live session by token.
func (repo *sessionRepository) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	var sessionM model.SessionModel

	err := repo.db.WithContext(ctx).
		Where("id = ? AND expires_at > now()", id).
		First(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by id")
	}

	return toSessionDomain(&sessionM), nil
}

// FindPersonByID resolves a live session token straight to its person.
func (repo *sessionRepository) FindPersonByID(ctx context.Context, id string) (*entity.Person, error) {
	var personM model.PersonModel

	err := repo.db.WithContext(ctx).
		Joins("JOIN sessions ON sessions.person_id = people.id").
		Where("sessions.id = ? AND sessions.expires_at > now()", id).
		First(&personM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve session to person")
	}

	return toPersonDomain(&personM), nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM SessionModel to a domain Session entity.
func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:        data.ID,
		PersonID:  data.PersonID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}
