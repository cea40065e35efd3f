package impl

import (
	"context"
	"log/slog"

	deliverycontext "mugclub/internal/delivery/context"
	"mugclub/internal/domain/entity"
	domainerrors "mugclub/internal/domain/errors"
	"mugclub/internal/domain/repository"
	"mugclub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// drinkService implements the DrinkUsecase interface.
type drinkService struct {
	txManager repository.TransactionManager
	drinkRepo repository.DrinkRepository
	logger    *slog.Logger
}

// DrinkServiceParams holds dependencies for drinkService, injected by Fx.
type DrinkServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	DrinkRepo repository.DrinkRepository
	Logger    *slog.Logger
}

// NewDrinkService is the constructor for drinkService.
func NewDrinkService(params DrinkServiceParams) usecase.DrinkUsecase {
	return &drinkService{
		txManager: params.TxManager,
		drinkRepo: params.DrinkRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *drinkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordDrink resolves the brewery, then the beer, then inserts the drink,
// all in one transaction. Both reference lookups create the row on first
// sight, so two people logging the same new beer at once converge on one row.
func (srv *drinkService) RecordDrink(ctx context.Context, input *usecase.RecordDrinkInput) (*usecase.RecordDrinkOutput, error) {
	srv.log(ctx).Info("Recording drink",
		slog.Int64("person_id", input.PersonID),
		slog.String("beer", input.Beer),
		slog.String("brewery", input.Brewery))

	var expanded *entity.ExpandedDrink
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		brewery, err := srv.resolveBrewery(ctx, repoFactory.BreweryRepo(), input.Brewery)
		if err != nil {
			return err
		}

		beer, err := srv.resolveBeer(ctx, repoFactory.BeerRepo(), input.Beer, brewery.ID)
		if err != nil {
			return err
		}

		drink := &entity.Drink{
			PersonID: input.PersonID,
			DrankOn:  input.DrankOn,
			BeerID:   beer.ID,
			Rating:   input.Rating,
			Comment:  input.Comment,
		}
		if err := repoFactory.DrinkRepo().Create(ctx, drink); err != nil {
			return err
		}

		expanded, err = repoFactory.DrinkRepo().FindExpandedByID(ctx, drink.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return &usecase.RecordDrinkOutput{Drink: expanded}, nil
}

// ListDrinks returns every drink the person has logged, oldest first.
func (srv *drinkService) ListDrinks(ctx context.Context, personID int64) (*usecase.ListDrinksOutput, error) {
	drinks, err := srv.drinkRepo.ListByPerson(ctx, personID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list drinks")
	}

	return &usecase.ListDrinksOutput{Drinks: drinks}, nil
}

// DeleteDrink removes a drink the person owns. A drink that does not exist
// and a drink owned by someone else are indistinguishable to the caller.
func (srv *drinkService) DeleteDrink(ctx context.Context, drinkID, personID int64) error {
	deleted, err := srv.drinkRepo.DeleteOwned(ctx, drinkID, personID)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete drink")
	}

	switch {
	case deleted == 0:
		return domainerrors.ErrDrinkNotFound
	case deleted > 1:
		// The primary key should make this impossible.
		return domainerrors.ErrInternalError.WithDetails("delete matched more than one drink")
	default:
		return nil
	}
}

// resolveBrewery finds a brewery by name or creates it, reading back the
// winner when a concurrent create got there first.
func (srv *drinkService) resolveBrewery(ctx context.Context, breweryRepo repository.BreweryRepository, name string) (*entity.Brewery, error) {
	brewery, err := breweryRepo.FindByName(ctx, name)
	if err == nil {
		return brewery, nil
	}
	if !errors.Is(err, repository.ErrBreweryNotFound) {
		return nil, errors.Wrap(err, "failed to look up brewery")
	}

	brewery, err = breweryRepo.Insert(ctx, name)
	if err == nil {
		return brewery, nil
	}
	if !errors.Is(err, repository.ErrAlreadyExists) {
		return nil, errors.Wrap(err, "failed to create brewery")
	}

	brewery, err = breweryRepo.FindByName(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-read brewery after conflict")
	}

	return brewery, nil
}

// resolveBeer finds a beer by name within a brewery or creates it, reading
// back the winner when a concurrent create got there first.
func (srv *drinkService) resolveBeer(ctx context.Context, beerRepo repository.BeerRepository, name string, breweryID int64) (*entity.Beer, error) {
	beer, err := beerRepo.FindByNameAndBrewery(ctx, name, breweryID)
	if err == nil {
		return beer, nil
	}
	if !errors.Is(err, repository.ErrBeerNotFound) {
		return nil, errors.Wrap(err, "failed to look up beer")
	}

	beer, err = beerRepo.Insert(ctx, name, breweryID)
	if err == nil {
		return beer, nil
	}
	if !errors.Is(err, repository.ErrAlreadyExists) {
		return nil, errors.Wrap(err, "failed to create beer")
	}

	beer, err = beerRepo.FindByNameAndBrewery(ctx, name, breweryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-read beer after conflict")
	}

	return beer, nil
}
