// Package repository defines the persistence interfaces the use cases depend
// on, keeping them free of any specific database driver.
package repository

import "mugclub/internal/errors"

// Sentinel errors returned by repository implementations. Use cases translate
// these into domain errors at their boundary.
var (
	ErrPersonNotFound   = errors.New("person not found")
	ErrIdentityNotFound = errors.New("identity not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrBreweryNotFound  = errors.New("brewery not found")
	ErrBeerNotFound     = errors.New("beer not found")
	ErrDrinkNotFound    = errors.New("drink not found")

	// ErrAlreadyExists reports that an insert was skipped because a concurrent
	// writer created the row first. Callers retry their lookup once.
	ErrAlreadyExists = errors.New("row already exists")
)
