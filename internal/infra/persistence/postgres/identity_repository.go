package postgres

import (
	"context"

	"mugclub/internal/domain/entity"
	"mugclub/internal/domain/repository"
	"mugclub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// identityRepository implements the repository.IdentityRepository interface.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository is the constructor for identityRepository.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

// FindByIdentifier retrieves the identity bound to an external identifier.
func (repo *identityRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Identity, error) {
	var identityM model.IdentityModel

	err := repo.db.WithContext(ctx).
		Where("identifier = ?", identifier).
		First(&identityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by identifier")
	}

	return toIdentityDomain(&identityM), nil
}

// Create binds an identifier to a person. A concurrent binding of the same
// identifier surfaces as ErrAlreadyExists so the caller can re-read instead
// of aborting the whole transaction on a unique violation.
func (repo *identityRepository) Create(ctx context.Context, identifier string, personID int64) (*entity.Identity, error) {
	identityM := &model.IdentityModel{
		Identifier: identifier,
		PersonID:   personID,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(identityM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, repository.ErrAlreadyExists
		}

		return nil, errors.Wrap(result.Error, "failed to create identity")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrAlreadyExists
	}

	return toIdentityDomain(identityM), nil
}

// --- Mapper Functions ---

// toIdentityDomain converts a GORM IdentityModel to a domain Identity entity.
func toIdentityDomain(data *model.IdentityModel) *entity.Identity {
	if data == nil {
		return nil
	}

	return &entity.Identity{
		ID:         data.ID,
		Identifier: data.Identifier,
		PersonID:   data.PersonID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
