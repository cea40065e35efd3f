package entity

import "time"

// Drink is one recorded beer, owned by the person who logged it.
type Drink struct {
	ID        int64     `json:"id"`
	PersonID  int64     `json:"person_id"`
	DrankOn   Date      `json:"drank_on"`
	BeerID    int64     `json:"beer_id"`
	Rating    int16     `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExpandedDrink is a Drink joined with its beer and brewery names for display.
type ExpandedDrink struct {
	ID      int64   `json:"id"`
	DrankOn Date    `json:"drank_on"`
	Name    string  `json:"name"`
	Brewery string  `json:"brewery"`
	Rating  int16   `json:"rating"`
	Comment *string `json:"comment"`
}
