// Package entity contains the pure domain objects of the beer log.
package entity

import "time"

// Person is an account holder. People carry no profile data; everything a
// client needs to know about one lives on its drinks.
type Person struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity binds an external login identifier (a phone number) to a Person.
// At most one identity ever exists per identifier.
type Identity struct {
	ID         int64     `json:"id"`
	Identifier string    `json:"identifier"`
	PersonID   int64     `json:"person_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Session is a bearer token proving a Person authenticated successfully.
// The ID is the opaque token itself.
type Session struct {
	ID        string    `json:"id"`
	PersonID  int64     `json:"person_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
