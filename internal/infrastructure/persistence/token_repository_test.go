package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskflow/backend/internal/domain/shared"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockTokenRepository creates a GormTokenRepository with a mocked SQL connection
func newMockTokenRepository(t *testing.T) (*GormTokenRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormTokenRepository(gormDB), mock, mockDB
}

func TestGormTokenRepository_FindValid(t *testing.T) {
	t.Run("finds token inside its window", func(t *testing.T) {
		repo, mock, mockDB := newMockTokenRepository(t)
		defer mockDB.Close()

		tokenID := uuid.New()
		userID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "token", "user_id", "created_at"}).
			AddRow(tokenID, "123456", userID, time.Now())

		mock.ExpectQuery(`SELECT \* FROM "tokens" WHERE token = \$1 AND created_at > \$2 ORDER BY .* LIMIT .*`).
			WithArgs("123456", sqlmock.AnyArg(), 1).
			WillReturnRows(rows)

		token, err := repo.FindValid(context.Background(), "123456")

		assert.NoError(t, err)
		assert.Equal(t, tokenID, token.ID)
		assert.Equal(t, userID, token.UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("expired token behaves like a missing one", func(t *testing.T) {
		repo, mock, mockDB := newMockTokenRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "tokens" WHERE token = \$1 AND created_at > \$2 ORDER BY .* LIMIT .*`).
			WithArgs("654321", sqlmock.AnyArg(), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		token, err := repo.FindValid(context.Background(), "654321")

		assert.Nil(t, token)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormTokenRepository_Delete(t *testing.T) {
	t.Run("deletes existing token", func(t *testing.T) {
		repo, mock, mockDB := newMockTokenRepository(t)
		defer mockDB.Close()

		tokenID := uuid.New()

		mock.ExpectExec(`DELETE FROM "tokens" WHERE id = \$1`).
			WithArgs(tokenID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), tokenID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing token returns not found", func(t *testing.T) {
		repo, mock, mockDB := newMockTokenRepository(t)
		defer mockDB.Close()

		tokenID := uuid.New()

		mock.ExpectExec(`DELETE FROM "tokens" WHERE id = \$1`).
			WithArgs(tokenID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), tokenID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormTokenRepository_DeleteExpired(t *testing.T) {
	t.Run("sweeps rows past the window", func(t *testing.T) {
		repo, mock, mockDB := newMockTokenRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`DELETE FROM "tokens" WHERE created_at <= \$1`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 3))

		err := repo.DeleteExpired(context.Background())

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
