package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"coffeeshop/pkg/order"
)

const (
	orderColumns = "id, user_id, total_amount, status, created_at"
	itemColumns  = "id, order_id, coffee_id, name, quantity, price"
)

// Repository persists orders in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the order header and every item in one transaction. On any
// failure the transaction is rolled back and o is left untouched.
func (r *Repository) Create(ctx context.Context, o *order.Order) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	created := *o
	created.Items = make([]order.Item, len(o.Items))
	copy(created.Items, o.Items)

	err = tx.QueryRowContext(ctx,
		"INSERT INTO orders (user_id, total_amount, status) VALUES ($1, $2, $3) RETURNING id, created_at",
		o.AccountID, o.Total, o.Status,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i := range created.Items {
		it := &created.Items[i]
		it.OrderID = created.ID
		err = tx.QueryRowContext(ctx,
			"INSERT INTO order_items (order_id, coffee_id, name, quantity, price) VALUES ($1, $2, $3, $4, $5) RETURNING id",
			it.OrderID, it.CoffeeID, it.Name, it.Quantity, it.Price,
		).Scan(&it.ID)
		if err != nil {
			return fmt.Errorf("insert order item %d: %w", it.CoffeeID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	*o = created
	return nil
}

// Get retrieves an order with its items.
func (r *Repository) Get(ctx context.Context, id int64) (order.Order, error) {
	var o order.Order
	err := r.db.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id).
		Scan(&o.ID, &o.AccountID, &o.Total, &o.Status, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return order.Order{}, order.ErrNotFound
	}
	if err != nil {
		return order.Order{}, fmt.Errorf("select order: %w", err)
	}

	items, err := r.items(ctx, []int64{id})
	if err != nil {
		return order.Order{}, err
	}
	o.Items = items[id]
	return o, nil
}

// List fetches orders newest first, each with its items.
func (r *Repository) List(ctx context.Context, f order.Filter) ([]order.Order, error) {
	var (
		where []string
		args  []any
	)
	if f.AccountID != 0 {
		args = append(args, f.AccountID)
		where = append(where, fmt.Sprintf("user_id = $%d", len(args)))
	}
	query := "SELECT " + orderColumns + " FROM orders"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var (
		orders []order.Order
		ids    []int64
	)
	for rows.Next() {
		var o order.Order
		if err := rows.Scan(&o.ID, &o.AccountID, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	items, err := r.items(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

// UpdateStatus sets the status of order id when it is still from.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to order.Status) error {
	res, err := r.db.ExecContext(ctx, "UPDATE orders SET status = $3 WHERE id = $1 AND status = $2", id, from, to)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)", id).Scan(&exists); err != nil {
		return fmt.Errorf("select order: %w", err)
	}
	if !exists {
		return order.ErrNotFound
	}
	return order.ErrStatusChanged
}

// CountByAccount returns the number of orders owned by accountID.
func (r *Repository) CountByAccount(ctx context.Context, accountID int64) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders WHERE user_id = $1", accountID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// Stats returns the order count and total revenue.
func (r *Repository) Stats(ctx context.Context) (order.Stats, error) {
	var s order.Stats
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*), COALESCE(SUM(total_amount), 0) FROM orders").
		Scan(&s.Orders, &s.Revenue)
	if err != nil {
		return order.Stats{}, fmt.Errorf("order stats: %w", err)
	}
	return s, nil
}

func (r *Repository) items(ctx context.Context, orderIDs []int64) (map[int64][]order.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+itemColumns+" FROM order_items WHERE order_id = ANY($1) ORDER BY order_id, id",
		pq.Array(orderIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]order.Item, len(orderIDs))
	for rows.Next() {
		var it order.Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.CoffeeID, &it.Name, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, rows.Err()
}
