package order

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/shopspring/decimal"

	"coffeeshop/pkg/catalog"
)

// CatalogReader looks up coffees by id.
type CatalogReader interface {
	Get(ctx context.Context, id int64) (catalog.Coffee, error)
}

// Engine turns requested quantities into persisted orders and drives the
// order status lifecycle.
type Engine struct {
	repo    Repository
	catalog CatalogReader
}

// NewEngine returns an Engine that prices orders from catalog and stores
// them in repo.
func NewEngine(repo Repository, catalog CatalogReader) *Engine {
	return &Engine{repo: repo, catalog: catalog}
}

// PlaceOrder creates a pending order for accountID from quantities (coffee
// id -> quantity).
//
// Coffees that are missing or unavailable are skipped. The unit price and
// name of every remaining coffee are captured at this moment. If nothing is
// left, ErrEmptyOrder is returned and nothing is stored. The header and all
// items are written in a single atomic Create. Quantities must lie in
// 1..MaxQuantity.
func (e *Engine) PlaceOrder(ctx context.Context, accountID int64, quantities map[int64]int) (Order, error) {
	for id, qty := range quantities {
		if qty <= 0 || qty > MaxQuantity {
			return Order{}, fmt.Errorf("%w: coffee %d has quantity %d", ErrInvalidQuantity, id, qty)
		}
	}

	o := Order{
		AccountID: accountID,
		Status:    StatusPending,
		Total:     decimal.Zero,
	}
	for _, id := range slices.Sorted(maps.Keys(quantities)) {
		c, err := e.catalog.Get(ctx, id)
		if errors.Is(err, catalog.ErrNotFound) {
			continue
		}
		if err != nil {
			return Order{}, fmt.Errorf("lookup coffee %d: %w", id, err)
		}
		if !c.Available {
			continue
		}

		item := Item{
			CoffeeID: c.ID,
			Name:     c.Name,
			Quantity: quantities[id],
			Price:    c.Price,
		}
		o.Total = o.Total.Add(item.Subtotal())
		o.Items = append(o.Items, item)
	}

	if len(o.Items) == 0 {
		return Order{}, ErrEmptyOrder
	}
	if o.Total.GreaterThanOrEqual(MaxTotal) {
		return Order{}, fmt.Errorf("%w: total %s is too large", ErrInvalidQuantity, o.Total.StringFixed(2))
	}

	if err := e.repo.Create(ctx, &o); err != nil {
		return Order{}, fmt.Errorf("create order: %w", err)
	}
	return o, nil
}

// UpdateStatus moves order id to status to. Terminal orders cannot change.
func (e *Engine) UpdateStatus(ctx context.Context, id int64, to Status) (Order, error) {
	if !to.Valid() {
		return Order{}, fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	o, err := e.repo.Get(ctx, id)
	if err != nil {
		return Order{}, err
	}
	if !o.Status.CanTransition(to) {
		return Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
	}
	if o.Status == to {
		return o, nil
	}
	if err := e.repo.UpdateStatus(ctx, id, o.Status, to); err != nil {
		return Order{}, err
	}
	o.Status = to
	return o, nil
}
