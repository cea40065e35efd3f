package repository

import (
	"context"

	"mugclub/internal/domain/entity"
)

// DrinkRepository manages drink rows and their expanded read model.
type DrinkRepository interface {
	// Create inserts a drink and fills in its generated id and timestamps.
	Create(ctx context.Context, drink *entity.Drink) error

	// FindExpandedByID retrieves one drink joined with its beer and brewery
	// names, or ErrDrinkNotFound.
	FindExpandedByID(ctx context.Context, id int64) (*entity.ExpandedDrink, error)

	// ListByPerson retrieves all of a person's drinks, expanded, ordered by
	// drank_on ascending.
	ListByPerson(ctx context.Context, personID int64) ([]*entity.ExpandedDrink, error)

	// DeleteOwned deletes the drink with the given id only if it belongs to
	// personID, and reports how many rows went away.
	DeleteOwned(ctx context.Context, id, personID int64) (int64, error)
}

// SearchRepository runs ranked full-text searches over the reference data.
// The tsquery argument is a sanitized to_tsquery expression, never raw user
// input.
type SearchRepository interface {
	SearchBeers(ctx context.Context, tsquery string) ([]*entity.BeerSearchResult, error)
	SearchBreweries(ctx context.Context, tsquery string) ([]*entity.BrewerySearchResult, error)
}
