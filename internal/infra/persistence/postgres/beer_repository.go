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

// beerRepository implements the repository.BeerRepository interface.
type beerRepository struct {
	db *gorm.DB
}

// NewBeerRepository is the constructor for beerRepository.
func NewBeerRepository(db *gorm.DB) repository.BeerRepository {
	return &beerRepository{db: db}
}

// FindByNameAndBrewery retrieves a beer scoped to a brewery, matching its
// name case-insensitively.
func (repo *beerRepository) FindByNameAndBrewery(ctx context.Context, name string, breweryID int64) (*entity.Beer, error) {
	var beerM model.BeerModel

	err := repo.db.WithContext(ctx).
		Where("lower(name) = lower(?) AND brewery_id = ?", name, breweryID).
		First(&beerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBeerNotFound
		}

		return nil, errors.Wrap(err, "failed to find beer by name and brewery")
	}

	return toBeerDomain(&beerM), nil
}

// Insert creates a beer under the given brewery, keeping the name's original
// casing. A concurrent insert of the same beer surfaces as ErrAlreadyExists.
func (repo *beerRepository) Insert(ctx context.Context, name string, breweryID int64) (*entity.Beer, error) {
	beerM := &model.BeerModel{
		Name:      name,
		BreweryID: breweryID,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(beerM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, repository.ErrAlreadyExists
		}

		return nil, errors.Wrap(result.Error, "failed to insert beer")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrAlreadyExists
	}

	return toBeerDomain(beerM), nil
}

// --- Mapper Functions ---

// toBeerDomain converts a GORM BeerModel to a domain Beer entity.
func toBeerDomain(data *model.BeerModel) *entity.Beer {
	if data == nil {
		return nil
	}

	return &entity.Beer{
		ID:        data.ID,
		Name:      data.Name,
		BreweryID: data.BreweryID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
