package postgres

import (
	"context"
	"testing"
	"time"

	"mugclub/internal/domain/entity"
	domainerrors "mugclub/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrinkRepository_Create_CheckViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDrinkRepository(db)

	mock.ExpectQuery(`INSERT INTO "drinks"`).
		WillReturnError(&pgconn.PgError{Code: pgCheckViolation})

	err := repo.Create(context.Background(), &entity.Drink{
		PersonID: 7,
		DrankOn:  entity.Date{Time: time.Now()},
		BeerID:   15,
		Rating:   9,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDrinkRepository_Create_ForeignKeyViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDrinkRepository(db)

	mock.ExpectQuery(`INSERT INTO "drinks"`).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

	err := repo.Create(context.Background(), &entity.Drink{
		PersonID: 7,
		DrankOn:  entity.Date{Time: time.Now()},
		BeerID:   404,
		Rating:   4,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	require.NoError(t, mock.ExpectationsWereMet())
}
