// Package memory implements an in-memory order repository.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"coffeeshop/pkg/order"
)

// Repository provides an in-memory implementation of order.Repository.
// Orders and their items are stored together under one lock, so a Create
// is visible all at once or not at all.
type Repository struct {
	mu        sync.RWMutex
	nextOrder int64
	nextItem  int64
	orders    map[int64]order.Order
	now       func() time.Time
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{
		orders: make(map[int64]order.Order),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Create stores the order and its items.
func (r *Repository) Create(ctx context.Context, o *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextOrder++
	o.ID = r.nextOrder
	o.CreatedAt = r.now()
	for i := range o.Items {
		r.nextItem++
		o.Items[i].ID = r.nextItem
		o.Items[i].OrderID = o.ID
	}
	r.orders[o.ID] = clone(*o)
	return nil
}

// Get retrieves an order with its items.
func (r *Repository) Get(ctx context.Context, id int64) (order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return order.Order{}, order.ErrNotFound
	}
	return clone(o), nil
}

// List returns orders newest first.
func (r *Repository) List(ctx context.Context, f order.Filter) ([]order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if f.AccountID != 0 && o.AccountID != f.AccountID {
			continue
		}
		out = append(out, clone(o))
	}
	slices.SortFunc(out, func(a, b order.Order) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// UpdateStatus changes the status of an order that is still in from.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to order.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return order.ErrNotFound
	}
	if o.Status != from {
		return order.ErrStatusChanged
	}
	o.Status = to
	r.orders[id] = o
	return nil
}

// CountByAccount returns the number of orders owned by accountID.
func (r *Repository) CountByAccount(ctx context.Context, accountID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, o := range r.orders {
		if o.AccountID == accountID {
			n++
		}
	}
	return n, nil
}

// Stats returns the order count and the sum of all order totals.
func (r *Repository) Stats(ctx context.Context) (order.Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := order.Stats{Revenue: decimal.Zero}
	for _, o := range r.orders {
		s.Orders++
		s.Revenue = s.Revenue.Add(o.Total)
	}
	return s, nil
}

func clone(o order.Order) order.Order {
	o.Items = slices.Clone(o.Items)
	return o
}
