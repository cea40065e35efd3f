package postgres

import (
	"context"

	"mugclub/internal/domain/entity"
	"mugclub/internal/domain/repository"
	"mugclub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Beer searches weight the beer name above its brewery name, so "stone ipa"
// prefers Stone's IPA over an IPA that merely mentions stone.
const beerSearchSelect = `
SELECT beers.id, beers.name, breweries.name AS brewery,
       ts_rank(
         setweight(to_tsvector('english', beers.name), 'A') ||
         setweight(to_tsvector('english', breweries.name), 'B'),
         to_tsquery('english', ?)
       ) AS rank
FROM beers
JOIN breweries ON breweries.id = beers.brewery_id
WHERE setweight(to_tsvector('english', beers.name), 'A') ||
      setweight(to_tsvector('english', breweries.name), 'B') @@
      to_tsquery('english', ?)
ORDER BY rank DESC`

const brewerySearchSelect = `
SELECT breweries.id, breweries.name,
       ts_rank(to_tsvector('english', breweries.name), to_tsquery('english', ?)) AS rank
FROM breweries
WHERE to_tsvector('english', breweries.name) @@ to_tsquery('english', ?)
ORDER BY rank DESC`

// searchRepository implements the repository.SearchRepository interface over
// Postgres full-text search.
type searchRepository struct {
	db *gorm.DB
}

// NewSearchRepository is the constructor for searchRepository.
func NewSearchRepository(db *gorm.DB) repository.SearchRepository {
	return &searchRepository{db: db}
}

// SearchBeers runs a ranked full-text search over beer and brewery names.
func (repo *searchRepository) SearchBeers(ctx context.Context, tsquery string) ([]*entity.BeerSearchResult, error) {
	var rows []model.BeerSearchRow

	err := repo.db.WithContext(ctx).
		Raw(beerSearchSelect, tsquery, tsquery).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search beers")
	}

	results := make([]*entity.BeerSearchResult, 0, len(rows))
	for i := range rows {
		results = append(results, &entity.BeerSearchResult{
			ID:      rows[i].ID,
			Name:    rows[i].Name,
			Brewery: rows[i].Brewery,
			Rank:    rows[i].Rank,
		})
	}

	return results, nil
}

// SearchBreweries runs a ranked full-text search over brewery names.
func (repo *searchRepository) SearchBreweries(ctx context.Context, tsquery string) ([]*entity.BrewerySearchResult, error) {
	var rows []model.BrewerySearchRow

	err := repo.db.WithContext(ctx).
		Raw(brewerySearchSelect, tsquery, tsquery).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search breweries")
	}

	results := make([]*entity.BrewerySearchResult, 0, len(rows))
	for i := range rows {
		results = append(results, &entity.BrewerySearchResult{
			ID:   rows[i].ID,
			Name: rows[i].Name,
			Rank: rows[i].Rank,
		})
	}

	return results, nil
}
