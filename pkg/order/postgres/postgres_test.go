package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffeeshop/pkg/order"
)

var (
	orderCols = []string{"id", "user_id", "total_amount", "status", "created_at"}
	itemCols  = []string{"id", "order_id", "coffee_id", "name", "quantity", "price"}
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func sampleOrder() order.Order {
	return order.Order{
		AccountID: 7,
		Status:    order.StatusPending,
		Total:     decimal.RequireFromString("11.75"),
		Items: []order.Item{
			{CoffeeID: 1, Name: "Espresso", Quantity: 2, Price: decimal.RequireFromString("3.50")},
			{CoffeeID: 3, Name: "Latte", Quantity: 1, Price: decimal.RequireFromString("4.75")},
		},
	}
}

func TestCreateCommitsHeaderAndItems(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(int64(7), sqlmock.AnyArg(), "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(100), now))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(int64(100), int64(1), "Espresso", 2, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1000)))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(int64(100), int64(3), "Latte", 1, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1001)))
	mock.ExpectCommit()

	o := sampleOrder()
	require.NoError(t, repo.Create(context.Background(), &o))

	assert.Equal(t, int64(100), o.ID)
	assert.Equal(t, int64(1000), o.Items[0].ID)
	assert.Equal(t, int64(1001), o.Items[1].ID)
	assert.Equal(t, int64(100), o.Items[1].OrderID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRollsBackOnItemFailure(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(100), time.Now()))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1000)))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	o := sampleOrder()
	err := repo.Create(context.Background(), &o)
	require.ErrorContains(t, err, "connection reset")

	assert.Zero(t, o.ID, "order must be untouched on failure")
	assert.Zero(t, o.Items[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRollsBackOnCommitFailure(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), time.Now()))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	o := sampleOrder()
	require.Error(t, repo.Create(context.Background(), &o))
	assert.Zero(t, o.ID)
}

func TestGetWithItems(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id").
		WithArgs(int64(100)).
		WillReturnRows(sqlmock.NewRows(orderCols).AddRow(int64(100), int64(7), "11.75", "preparing", time.Now()))
	mock.ExpectQuery("FROM order_items WHERE order_id = ANY").
		WillReturnRows(sqlmock.NewRows(itemCols).
			AddRow(int64(1000), int64(100), int64(1), "Espresso", 2, "3.50").
			AddRow(int64(1001), int64(100), int64(3), "Latte", 1, "4.75"))

	o, err := repo.Get(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPreparing, o.Status)
	assert.True(t, o.Total.Equal(decimal.RequireFromString("11.75")))
	require.Len(t, o.Items, 2)
	assert.Equal(t, "Latte", o.Items[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByAccount(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`FROM orders WHERE user_id = \$1 ORDER BY created_at DESC, id DESC LIMIT \$2`).
		WithArgs(int64(7), 5).
		WillReturnRows(sqlmock.NewRows(orderCols).
			AddRow(int64(2), int64(7), "4.75", "pending", time.Now()).
			AddRow(int64(1), int64(7), "7.00", "completed", time.Now().Add(-time.Hour)))
	mock.ExpectQuery("FROM order_items WHERE order_id = ANY").
		WillReturnRows(sqlmock.NewRows(itemCols).
			AddRow(int64(10), int64(1), int64(1), "Espresso", 2, "3.50").
			AddRow(int64(11), int64(2), int64(3), "Latte", 1, "4.75"))

	list, err := repo.List(context.Background(), order.Filter{AccountID: 7, Limit: 5})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Latte", list[0].Items[0].Name)
	assert.Equal(t, "Espresso", list[1].Items[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newMock(t)
	ctx := context.Background()

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(int64(1), "pending", "ready").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateStatus(ctx, 1, order.StatusPending, order.StatusReady))

	mock.ExpectExec("UPDATE orders SET status").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	require.ErrorIs(t, repo.UpdateStatus(ctx, 2, order.StatusPending, order.StatusReady), order.ErrNotFound)

	mock.ExpectExec("UPDATE orders SET status").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	require.ErrorIs(t, repo.UpdateStatus(ctx, 3, order.StatusPending, order.StatusReady), order.ErrStatusChanged)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStats(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(3, "21.25"))

	s, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, s.Orders)
	assert.True(t, s.Revenue.Equal(decimal.RequireFromString("21.25")))
}
