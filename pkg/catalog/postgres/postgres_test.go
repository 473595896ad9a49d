package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"coffeeshop/pkg/catalog"
)

var columns = []string{"id", "name", "description", "price", "category", "is_available", "created_at"}

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO coffees").
		WithArgs("Latte", "milk", sqlmock.AnyArg(), "Hot", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(9), now))

	c := catalog.Coffee{Name: "Latte", Description: "milk", Price: decimal.RequireFromString("4.75"), Category: "Hot", Available: true}
	require.NoError(t, repo.Create(context.Background(), &c))
	require.Equal(t, int64(9), c.ID)
	require.True(t, now.Equal(c.CreatedAt))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM coffees WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(1), "Espresso", nil, "3.50", "Hot", true, time.Now()))

	c, err := repo.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Espresso", c.Name)
	require.Empty(t, c.Description)
	require.True(t, c.Price.Equal(decimal.RequireFromString("3.5")))

	mock.ExpectQuery("SELECT (.+) FROM coffees WHERE id").
		WithArgs(int64(2)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.Get(context.Background(), 2)
	require.ErrorIs(t, err, catalog.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListAvailable(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("WHERE is_available = true ORDER BY category, name").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(7), "Iced Coffee", "cold", "4.00", "Cold", true, time.Now()).
			AddRow(int64(1), "Espresso", "strong", "3.50", "Hot", true, time.Now()))

	list, err := repo.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Cold", list[0].Category)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAndDeleteNotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE coffees").WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.Update(context.Background(), catalog.Coffee{ID: 42, Name: "x"})
	require.ErrorIs(t, err, catalog.ErrNotFound)

	mock.ExpectExec("DELETE FROM coffees").WithArgs(int64(42)).WillReturnResult(sqlmock.NewResult(0, 0))
	err = repo.Delete(context.Background(), 42)
	require.ErrorIs(t, err, catalog.ErrNotFound)

	mock.ExpectExec("DELETE FROM coffees").WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), 1))
	require.NoError(t, mock.ExpectationsWereMet())
}
