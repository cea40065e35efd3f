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

// breweryRepository implements the repository.BreweryRepository interface.
type breweryRepository struct {
	db *gorm.DB
}

// NewBreweryRepository is the constructor for breweryRepository.
func NewBreweryRepository(db *gorm.DB) repository.BreweryRepository {
	return &breweryRepository{db: db}
}

// FindByName retrieves a brewery, matching its name case-insensitively.
func (repo *breweryRepository) FindByName(ctx context.Context, name string) (*entity.Brewery, error) {
	var breweryM model.BreweryModel

	err := repo.db.WithContext(ctx).
		Where("lower(name) = lower(?)", name).
		First(&breweryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBreweryNotFound
		}

		return nil, errors.Wrap(err, "failed to find brewery by name")
	}

	return toBreweryDomain(&breweryM), nil
}

// Insert creates a brewery, keeping the name's original casing. A concurrent
// insert of the same name (ignoring case) surfaces as ErrAlreadyExists.
func (repo *breweryRepository) Insert(ctx context.Context, name string) (*entity.Brewery, error) {
	breweryM := &model.BreweryModel{Name: name}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(breweryM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, repository.ErrAlreadyExists
		}

		return nil, errors.Wrap(result.Error, "failed to insert brewery")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrAlreadyExists
	}

	return toBreweryDomain(breweryM), nil
}

// --- Mapper Functions ---

// toBreweryDomain converts a GORM BreweryModel to a domain Brewery entity.
func toBreweryDomain(data *model.BreweryModel) *entity.Brewery {
	if data == nil {
		return nil
	}

	return &entity.Brewery{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
