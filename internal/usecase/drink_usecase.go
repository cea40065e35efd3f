package usecase

import (
	"context"

	"mugclub/internal/domain/entity"
)

// --- Input DTOs ---

// RecordDrinkInput defines the data required to log a drink. Beer and brewery
// arrive as free-text names; the usecase resolves or creates the reference
// rows.
type RecordDrinkInput struct {
	PersonID int64       `form:"-" json:"-"`
	DrankOn  entity.Date `form:"drank_on" json:"drank_on" validate:"required"`
	Beer     string      `form:"beer" json:"beer" validate:"required"`
	Brewery  string      `form:"brewery" json:"brewery" validate:"required"`
	Rating   int16       `form:"rating" json:"rating" validate:"gte=0,lte=5"`
	Comment  *string     `form:"comment" json:"comment"`
}

// --- Output DTOs ---

// RecordDrinkOutput returns the newly recorded drink in its expanded form.
type RecordDrinkOutput struct {
	Drink *entity.ExpandedDrink
}

// ListDrinksOutput returns a person's full drink history, oldest first.
type ListDrinksOutput struct {
	Drinks []*entity.ExpandedDrink
}

// DrinkUsecase defines the interface for drink-log operations.
type DrinkUsecase interface {
	// RecordDrink resolves the beer and brewery names, creating either on
	// first sight, and logs the drink for the person.
	RecordDrink(ctx context.Context, input *RecordDrinkInput) (*RecordDrinkOutput, error)

	// ListDrinks returns every drink the person has logged.
	ListDrinks(ctx context.Context, personID int64) (*ListDrinksOutput, error)

	// DeleteDrink removes a drink the person owns. Someone else's drink, or a
	// drink that never existed, both come back as ErrDrinkNotFound.
	DeleteDrink(ctx context.Context, drinkID, personID int64) error
}
