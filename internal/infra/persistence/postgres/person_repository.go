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

// personRepository implements the repository.PersonRepository interface.
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository is the constructor for personRepository.
func NewPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &personRepository{db: db}
}

// Create inserts a new empty person row. The database fills in everything.
func (repo *personRepository) Create(ctx context.Context) (*entity.Person, error) {
	personM := &model.PersonModel{}

	if err := repo.db.WithContext(ctx).Create(personM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create person")
	}

	return toPersonDomain(personM), nil
}

// FindByID retrieves a person by id.
func (repo *personRepository) FindByID(ctx context.Context, id int64) (*entity.Person, error) {
	var personM model.PersonModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&personM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find person by id")
	}

	return toPersonDomain(&personM), nil
}

// --- Mapper Functions ---

// toPersonDomain converts a GORM PersonModel to a domain Person entity.
func toPersonDomain(data *model.PersonModel) *entity.Person {
	if data == nil {
		return nil
	}

	return &entity.Person{
		ID:        data.ID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
