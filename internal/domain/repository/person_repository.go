package repository

import (
	"context"

	"mugclub/internal/domain/entity"
)

// PersonRepository manages Person rows. People are only ever created as a
// side effect of a first-seen identity; there is no update or delete.
type PersonRepository interface {
	// Create inserts a new empty person row and returns it with generated
	// id and timestamps.
	Create(ctx context.Context) (*entity.Person, error)

	// FindByID retrieves a person by id.
	FindByID(ctx context.Context, id int64) (*entity.Person, error)
}

// IdentityRepository manages the identifier-to-person bindings.
type IdentityRepository interface {
	// FindByIdentifier retrieves the identity bound to the given external
	// identifier, or ErrIdentityNotFound.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Identity, error)

	// Create binds an identifier to a person. Returns ErrAlreadyExists when a
	// concurrent request bound the identifier first.
	Create(ctx context.Context, identifier string, personID int64) (*entity.Identity, error)
}

// SessionRepository manages login sessions.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a live session by token. Expired sessions behave
	// exactly like unknown ones: ErrSessionNotFound.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// FindPersonByID resolves a live session token straight to its person,
	// or ErrSessionNotFound.
	FindPersonByID(ctx context.Context, id string) (*entity.Person, error)
}
