package usecase

import (
	"context"

	"mugclub/internal/domain/entity"
)

// --- Output DTOs ---

// SearchBeersOutput returns ranked beer matches, best first.
type SearchBeersOutput struct {
	Beers []*entity.BeerSearchResult
}

// SearchBreweriesOutput returns ranked brewery matches, best first.
type SearchBreweriesOutput struct {
	Breweries []*entity.BrewerySearchResult
}

// SearchUsecase defines the interface for full-text searches over the beer
// and brewery reference data.
type SearchUsecase interface {
	// SearchBeers runs a ranked search over beer names, weighted above their
	// brewery names. A query with nothing searchable in it is rejected with
	// ErrEmptyQuery.
	SearchBeers(ctx context.Context, query string) (*SearchBeersOutput, error)

	// SearchBreweries runs a ranked search over brewery names.
	SearchBreweries(ctx context.Context, query string) (*SearchBreweriesOutput, error)
}
