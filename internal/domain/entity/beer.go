package entity

import "time"

// Brewery is lazily-created reference data. Names are unique ignoring case.
type Brewery struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Beer is lazily-created reference data, unique by (name, brewery) ignoring
// case on the name.
type Beer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	BreweryID int64     `json:"brewery_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeerSearchResult is one ranked row of a beer full-text search.
type BeerSearchResult struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Brewery string  `json:"brewery"`
	Rank    float32 `json:"rank"`
}

// BrewerySearchResult is one ranked row of a brewery full-text search.
type BrewerySearchResult struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Rank float32 `json:"rank"`
}
