package impl

import (
	"context"
	"testing"

	"mugclub/internal/domain/entity"
	domainerrors "mugclub/internal/domain/errors"
	"mugclub/internal/domain/repository"
	mockRepo "mugclub/internal/mocks/repository"
	"mugclub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchService(searchRepo repository.SearchRepository) usecase.SearchUsecase {
	return NewSearchService(SearchServiceParams{
		SearchRepo: searchRepo,
		Logger:     testLogger(),
	})
}

func TestSearchService_SearchBeers(t *testing.T) {
	mockSearchRepo := mockRepo.NewMockSearchRepository(t)
	svc := newSearchService(mockSearchRepo)

	ctx := context.Background()

	expected := []*entity.BeerSearchResult{
		{ID: 9, Name: "Breakfast Stout", Brewery: "Founders", Rank: 0.99},
		{ID: 14, Name: "Stout Day", Brewery: "Other Half", Rank: 0.33},
	}
	mockSearchRepo.EXPECT().
		SearchBeers(ctx, "breakfast:* <-> stout:*").
		Return(expected, nil)

	output, err := svc.SearchBeers(ctx, "breakfast stout!")
	require.NoError(t, err)
	assert.Equal(t, expected, output.Beers)
}

func TestSearchService_SearchBeers_EmptyQuery(t *testing.T) {
	// No repository expectations: an unsearchable query never reaches the db.
	svc := newSearchService(mockRepo.NewMockSearchRepository(t))

	output, err := svc.SearchBeers(context.Background(), "!?!")
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyQuery)
}

func TestSearchService_SearchBreweries(t *testing.T) {
	mockSearchRepo := mockRepo.NewMockSearchRepository(t)
	svc := newSearchService(mockSearchRepo)

	ctx := context.Background()

	expected := []*entity.BrewerySearchResult{
		{ID: 8, Name: "Tree House", Rank: 0.87},
	}
	mockSearchRepo.EXPECT().
		SearchBreweries(ctx, "tree:* <-> house:*").
		Return(expected, nil)

	output, err := svc.SearchBreweries(ctx, "tree house")
	require.NoError(t, err)
	assert.Equal(t, expected, output.Breweries)
}

func TestSearchService_SearchBreweries_EmptyQuery(t *testing.T) {
	svc := newSearchService(mockRepo.NewMockSearchRepository(t))

	output, err := svc.SearchBreweries(context.Background(), "")
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyQuery)
}
