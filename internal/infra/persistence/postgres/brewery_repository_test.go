package postgres

import (
	"context"
	"testing"

	"mugclub/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreweryRepository_Insert_ConflictSkipped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBreweryRepository(db)

	// ON CONFLICT DO NOTHING returns no row when the name already exists.
	mock.ExpectQuery(`INSERT INTO "breweries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Insert(context.Background(), "Tree House")

	assert.ErrorIs(t, err, repository.ErrAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBreweryRepository_Insert_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBreweryRepository(db)

	mock.ExpectQuery(`INSERT INTO "breweries"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	_, err := repo.Insert(context.Background(), "Tree House")

	assert.ErrorIs(t, err, repository.ErrAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}
