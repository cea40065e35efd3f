package postgres

import (
	"context"
	"testing"
	"time"

	"mugclub/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionColumns = []string{"id", "person_id", "created_at", "updated_at", "expires_at"}

// An expired session row must be filtered out by the query itself, so a stale
// token looks exactly like an unknown one.
func TestSessionRepository_FindByID_ExpiredTokenFilteredAtLookup(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE id = \$1 AND expires_at > now\(\)`).
		WillReturnRows(sqlmock.NewRows(sessionColumns))

	_, err := repo.FindByID(context.Background(), "stale-token")

	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_FindByID_LiveToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE id = \$1 AND expires_at > now\(\)`).
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow("live-token", int64(7), now, now, now.Add(time.Hour)))

	session, err := repo.FindByID(context.Background(), "live-token")

	require.NoError(t, err)
	assert.Equal(t, "live-token", session.ID)
	assert.Equal(t, int64(7), session.PersonID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_FindPersonByID_ExpiredTokenFilteredAtLookup(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectQuery(`FROM "people" JOIN sessions ON sessions\.person_id = people\.id WHERE sessions\.id = \$1 AND sessions\.expires_at > now\(\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}))

	_, err := repo.FindPersonByID(context.Background(), "stale-token")

	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_FindPersonByID_LiveToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	now := time.Now()
	mock.ExpectQuery(`FROM "people" JOIN sessions ON sessions\.person_id = people\.id WHERE sessions\.id = \$1 AND sessions\.expires_at > now\(\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(7), now, now))

	person, err := repo.FindPersonByID(context.Background(), "live-token")

	require.NoError(t, err)
	assert.Equal(t, int64(7), person.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
