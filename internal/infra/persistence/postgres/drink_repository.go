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

// expandedDrinkSelect joins a drink with its beer and brewery names. The API
// never exposes raw drink rows, only this read model.
const expandedDrinkSelect = `
SELECT drinks.id, drinks.drank_on, beers.name, breweries.name AS brewery,
       drinks.rating, drinks.comment
FROM drinks
JOIN beers ON beers.id = drinks.beer_id
JOIN breweries ON breweries.id = beers.brewery_id`

// drinkRepository implements the repository.DrinkRepository interface.
type drinkRepository struct {
	db *gorm.DB
}

// NewDrinkRepository is the constructor for drinkRepository.
func NewDrinkRepository(db *gorm.DB) repository.DrinkRepository {
	return &drinkRepository{db: db}
}

// Create inserts a drink and fills in its generated id and timestamps.
func (repo *drinkRepository) Create(ctx context.Context, drink *entity.Drink) error {
	drinkM := &model.DrinkModel{
		PersonID: drink.PersonID,
		DrankOn:  drink.DrankOn.Time,
		BeerID:   drink.BeerID,
		Rating:   drink.Rating,
		Comment:  drink.Comment,
	}

	if err := repo.db.WithContext(ctx).Create(drinkM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("rating must be between 0 and 5")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("referenced person or beer does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create drink")
	}

	drink.ID = drinkM.ID
	drink.CreatedAt = drinkM.CreatedAt
	drink.UpdatedAt = drinkM.UpdatedAt

	return nil
}

// FindExpandedByID retrieves one drink joined with its beer and brewery names.
func (repo *drinkRepository) FindExpandedByID(ctx context.Context, id int64) (*entity.ExpandedDrink, error) {
	var row model.ExpandedDrinkRow

	err := repo.db.WithContext(ctx).
		Raw(expandedDrinkSelect+" WHERE drinks.id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDrinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find expanded drink by id")
	}

	return toExpandedDrinkDomain(&row), nil
}

// ListByPerson retrieves all of a person's drinks, oldest first.
func (repo *drinkRepository) ListByPerson(ctx context.Context, personID int64) ([]*entity.ExpandedDrink, error) {
	var rows []model.ExpandedDrinkRow

	err := repo.db.WithContext(ctx).
		Raw(expandedDrinkSelect+" WHERE drinks.person_id = ? ORDER BY drinks.drank_on ASC", personID).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list drinks by person")
	}

	drinks := make([]*entity.ExpandedDrink, 0, len(rows))
	for i := range rows {
		drinks = append(drinks, toExpandedDrinkDomain(&rows[i]))
	}

	return drinks, nil
}

// DeleteOwned deletes a drink only if it belongs to personID, and reports how
// many rows went away so the caller can distinguish not-found from deleted.
func (repo *drinkRepository) DeleteOwned(ctx context.Context, id, personID int64) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND person_id = ?", id, personID).
		Delete(&model.DrinkModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete drink")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toExpandedDrinkDomain converts a scanned join row to a domain ExpandedDrink.
func toExpandedDrinkDomain(data *model.ExpandedDrinkRow) *entity.ExpandedDrink {
	if data == nil {
		return nil
	}

	return &entity.ExpandedDrink{
		ID:      data.ID,
		DrankOn: entity.Date{Time: data.DrankOn},
		Name:    data.Name,
		Brewery: data.Brewery,
		Rating:  data.Rating,
		Comment: data.Comment,
	}
}
