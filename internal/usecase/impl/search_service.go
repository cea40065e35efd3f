package impl

import (
	"context"
	"log/slog"

	deliverycontext "mugclub/internal/delivery/context"
	domainerrors "mugclub/internal/domain/errors"
	"mugclub/internal/domain/repository"
	"mugclub/internal/usecase"

	"go.uber.org/fx"
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	searchRepo repository.SearchRepository
	logger     *slog.Logger
}

// SearchServiceParams holds dependencies for searchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	SearchRepo repository.SearchRepository
	Logger     *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		searchRepo: params.SearchRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchBeers runs a ranked full-text search over beer and brewery names.
func (srv *searchService) SearchBeers(ctx context.Context, query string) (*usecase.SearchBeersOutput, error) {
	tsquery := sanitizeTSQuery(query)
	if tsquery == "" {
		return nil, domainerrors.ErrEmptyQuery
	}

	srv.log(ctx).Debug("Searching beers", slog.String("tsquery", tsquery))

	beers, err := srv.searchRepo.SearchBeers(ctx, tsquery)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "beer search failed")
	}

	return &usecase.SearchBeersOutput{Beers: beers}, nil
}

// SearchBreweries runs a ranked full-text search over brewery names.
func (srv *searchService) SearchBreweries(ctx context.Context, query string) (*usecase.SearchBreweriesOutput, error) {
	tsquery := sanitizeTSQuery(query)
	if tsquery == "" {
		return nil, domainerrors.ErrEmptyQuery
	}

	srv.log(ctx).Debug("Searching breweries", slog.String("tsquery", tsquery))

	breweries, err := srv.searchRepo.SearchBreweries(ctx, tsquery)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "brewery search failed")
	}

	return &usecase.SearchBreweriesOutput{Breweries: breweries}, nil
}
