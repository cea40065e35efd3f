package repository

import (
	"context"

	"mugclub/internal/domain/entity"
)

// BreweryRepository manages brewery reference rows.
type BreweryRepository interface {
	// FindByName retrieves a brewery by case-insensitive name match, or
	// ErrBreweryNotFound.
	FindByName(ctx context.Context, name string) (*entity.Brewery, error)

	// Insert creates a brewery. Returns ErrAlreadyExists when a concurrent
	// request created a brewery with the same name first.
	Insert(ctx context.Context, name string) (*entity.Brewery, error)
}

// BeerRepository manages beer reference rows.
type BeerRepository interface {
	// FindByNameAndBrewery retrieves a beer by case-insensitive name match
	// scoped to a brewery, or ErrBeerNotFound.
	FindByNameAndBrewery(ctx context.Context, name string, breweryID int64) (*entity.Beer, error)

	// Insert creates a beer under the given brewery. Returns ErrAlreadyExists
	// when a concurrent request created the same beer first.
	Insert(ctx context.Context, name string, breweryID int64) (*entity.Beer, error)
}
