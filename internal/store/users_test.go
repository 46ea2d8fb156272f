package store_test

import (
	"context"
	"go-practice/internal/store"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_Create(t *testing.T) {
	t.Run("Should insert a user and return the stored row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		now := time.Now().UTC()
		mock.ExpectQuery(`INSERT INTO users \(email,password,created_at\) VALUES \(\$1,\$2,NOW\(\)\) RETURNING id, email, password, created_at`).
			WithArgs("a@example.com", "hash").
			WillReturnRows(mock.NewRows([]string{"id", "email", "password", "created_at"}).
				AddRow(int64(1), "a@example.com", "hash", now))

		user, err := store.NewUserRepo(mock).Create(context.Background(), "a@example.com", "hash")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "a@example.com", user.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should map a unique violation to ErrDuplicate", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("a@example.com", "hash").
			WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})

		_, err = store.NewUserRepo(mock).Create(context.Background(), "a@example.com", "hash")
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})
}

func TestUserRepo_GetByEmail(t *testing.T) {
	t.Run("Should look the email up case-insensitively", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT id, email, password, created_at FROM users WHERE lower\(email\) = lower\(\$1\)`).
			WithArgs("A@Example.com").
			WillReturnRows(mock.NewRows([]string{"id", "email", "password", "created_at"}).
				AddRow(int64(3), "a@example.com", "hash", time.Now().UTC()))

		user, err := store.NewUserRepo(mock).GetByEmail(context.Background(), "A@Example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(3), user.ID)
		assert.Equal(t, "hash", user.Password)
	})

	t.Run("Should report ErrNotFound for an unknown email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT (.+) FROM users`).
			WithArgs("nobody@example.com").
			WillReturnError(pgx.ErrNoRows)

		_, err = store.NewUserRepo(mock).GetByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}
