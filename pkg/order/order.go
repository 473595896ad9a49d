package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MaxQuantity is the largest quantity of one coffee in an order or cart.
const MaxQuantity = 99

// MaxTotal bounds an order total. total_amount is NUMERIC(12,2).
var MaxTotal = decimal.New(1, 10)

// Order represents a placed customer order. Total is fixed when the order is
// created and always equals the sum of its item subtotals.
type Order struct {
	ID        int64           `json:"id"`
	AccountID int64           `json:"account_id"`
	Total     decimal.Decimal `json:"total_amount"`
	Status    Status          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	Items     []Item          `json:"items"`
}

// Item is one line of an order. Name and Price are copied from the catalog
// when the order is placed and never follow later catalog edits.
type Item struct {
	ID       int64           `json:"id"`
	OrderID  int64           `json:"order_id"`
	CoffeeID int64           `json:"coffee_id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Subtotal returns Price x Quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Filter narrows a List call. Zero values mean no restriction.
type Filter struct {
	AccountID int64
	Limit     int
}

// Stats summarizes all orders for the admin dashboard.
type Stats struct {
	Orders  int             `json:"total_orders"`
	Revenue decimal.Decimal `json:"total_revenue"`
}

// Repository defines behavior for persisting orders.
type Repository interface {
	// Create stores the order header and all of its items atomically and
	// fills in the generated IDs and creation time.
	Create(ctx context.Context, o *Order) error
	Get(ctx context.Context, id int64) (Order, error)
	// List returns orders with their items, newest first.
	List(ctx context.Context, f Filter) ([]Order, error)
	// UpdateStatus sets the status of order id to to, provided it is still
	// from. A mismatch yields ErrStatusChanged.
	UpdateStatus(ctx context.Context, id int64, from, to Status) error
	CountByAccount(ctx context.Context, accountID int64) (int, error)
	Stats(ctx context.Context) (Stats, error)
}

var (
	// ErrNotFound indicates the requested order does not exist.
	ErrNotFound = errors.New("order not found")
	// ErrEmptyOrder is returned when no requested item can be ordered.
	ErrEmptyOrder = errors.New("empty order")
	// ErrInvalidQuantity is returned for a quantity outside 1..MaxQuantity
	// or an order whose total reaches MaxTotal.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInvalidStatus is returned for an unknown status value.
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrInvalidTransition is returned when an order in a terminal status
	// is changed.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrStatusChanged is returned when the status was modified concurrently.
	ErrStatusChanged = errors.New("order status changed concurrently")
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled}

// ParseStatus validates s as a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further changes are allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether an order in s may be moved to to. Any known
// status can be set while the order is not terminal.
func (s Status) CanTransition(to Status) bool {
	if !to.Valid() {
		return false
	}
	if s == to {
		return true
	}
	return !s.Terminal()
}
