package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/toys"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestCatsRepo_GetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCatsRepo(db)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("existing cat", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, owner_user_id, name, breed, description, age, created_at, updated_at FROM cats WHERE id = \$1`).
			WithArgs("c1").
			WillReturnRows(sqlmock.NewRows(catColumns).
				AddRow("c1", "u1", "Mochi", "Tabby", "naps", 3, now, now))

		c, err := repo.GetByID(context.Background(), "c1")
		require.NoError(t, err)
		assert.Equal(t, "Mochi", c.Name)
		assert.Equal(t, "u1", c.OwnerUserID)
		assert.Equal(t, 3, c.Age)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing cat", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM cats WHERE id = \$1`).
			WithArgs("nope").
			WillReturnRows(sqlmock.NewRows(catColumns))

		_, err := repo.GetByID(context.Background(), "nope")
		assert.ErrorIs(t, err, cats.ErrNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("blank id never hits the db", func(t *testing.T) {
		_, err := repo.GetByID(context.Background(), "  ")
		assert.ErrorIs(t, err, cats.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatsRepo_ListByOwner(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCatsRepo(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM cats WHERE owner_user_id = \$1 ORDER BY created_at ASC, id ASC`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(catColumns).
			AddRow("c1", "u1", "Mochi", "Tabby", "", 1, now, now).
			AddRow("c2", "u1", "Pip", "Siamese", "", 2, now, now))

	out, err := repo.ListByOwner(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "c1", out[0].ID)
	assert.Equal(t, "c2", out[1].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatsRepo_Update(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCatsRepo(db)
	now := time.Now()

	c := cats.Cat{ID: "c1", Breed: "Tabby", Description: "d", Age: 4, UpdatedAt: now}

	t.Run("updates mutable columns only", func(t *testing.T) {
		mock.ExpectExec(`UPDATE cats SET age = \$1, breed = \$2, description = \$3, updated_at = \$4 WHERE id = \$5`).
			WithArgs(4, "Tabby", "d", now, "c1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Update(context.Background(), c))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows affected", func(t *testing.T) {
		mock.ExpectExec(`UPDATE cats SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), c)
		assert.ErrorIs(t, err, cats.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatsRepo_Delete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCatsRepo(db)

	mock.ExpectExec(`DELETE FROM cats WHERE id = \$1`).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "c1"))

	mock.ExpectExec(`DELETE FROM cats WHERE id = \$1`).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "c1"), cats.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatsRepo_AddToy(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCatsRepo(db)

	t.Run("insert ignores duplicates", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO cat_toys .* ON CONFLICT DO NOTHING`).
			WithArgs("c1", "t1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, repo.AddToy(context.Background(), "c1", "t1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing toy", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO cat_toys`).
			WillReturnError(&pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "cat_toys_toy_id_fkey"})

		err := repo.AddToy(context.Background(), "c1", "t9")
		assert.ErrorIs(t, err, toys.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing cat", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO cat_toys`).
			WillReturnError(&pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "cat_toys_cat_id_fkey"})

		err := repo.AddToy(context.Background(), "c9", "t1")
		assert.ErrorIs(t, err, cats.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatsRepo_ListFeedings(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCatsRepo(db)
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, cat_id, date, meal, created_at FROM feedings WHERE cat_id = \$1 ORDER BY date DESC, created_at DESC`).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "cat_id", "date", "meal", "created_at"}).
			AddRow("f2", "c1", day, "dinner", now).
			AddRow("f1", "c1", day, "breakfast", now))

	out, err := repo.ListFeedings(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, cats.MealDinner, out[0].Meal)
	assert.Equal(t, cats.MealBreakfast, out[1].Meal)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatsRepo_CreatePhoto_MissingCat(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCatsRepo(db)

	mock.ExpectExec(`INSERT INTO photos`).
		WillReturnError(&pgconn.PgError{Code: codeForeignKeyViolation})

	err := repo.CreatePhoto(context.Background(), cats.Photo{ID: "p1", CatID: "gone", URL: "u", CreatedAt: time.Now()})
	assert.ErrorIs(t, err, cats.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
