// Package catalog holds the coffee menu.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategory is used when a coffee is created without one.
const DefaultCategory = "Hot"

// Coffee is a purchasable menu item. Available gates whether it can be
// ordered.
type Coffee struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Repository defines behavior for persisting coffees.
type Repository interface {
	Create(ctx context.Context, c *Coffee) error
	Get(ctx context.Context, id int64) (Coffee, error)
	List(ctx context.Context) ([]Coffee, error)
	ListAvailable(ctx context.Context) ([]Coffee, error)
	Update(ctx context.Context, c Coffee) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

var (
	// ErrNotFound indicates the requested coffee does not exist.
	ErrNotFound = errors.New("coffee not found")
	// ErrInvalidCoffee is returned when a coffee fails validation.
	ErrInvalidCoffee = errors.New("invalid coffee")
)

// Normalize trims text fields and applies the default category.
func (c *Coffee) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	c.Category = strings.TrimSpace(c.Category)
	if c.Category == "" {
		c.Category = DefaultCategory
	}
}

// MaxPrice bounds a coffee price. coffees.price is NUMERIC(10,2).
var MaxPrice = decimal.New(1, 8)

// Validate checks the fields required by the admin forms.
func (c Coffee) Validate() error {
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidCoffee)
	case c.Description == "":
		return fmt.Errorf("%w: description is required", ErrInvalidCoffee)
	case !c.Price.IsPositive():
		return fmt.Errorf("%w: price must be positive", ErrInvalidCoffee)
	case !c.Price.Equal(c.Price.Truncate(2)):
		return fmt.Errorf("%w: price must have at most 2 decimal places", ErrInvalidCoffee)
	case c.Price.GreaterThanOrEqual(MaxPrice):
		return fmt.Errorf("%w: price must be below %s", ErrInvalidCoffee, MaxPrice)
	}
	return nil
}

// Group is one category of the menu.
type Group struct {
	Category string   `json:"category"`
	Coffees  []Coffee `json:"coffees"`
}

// GroupByCategory groups coffees by category, keeping the input order of
// both categories and coffees.
func GroupByCategory(coffees []Coffee) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, c := range coffees {
		i, ok := index[c.Category]
		if !ok {
			i = len(groups)
			index[c.Category] = i
			groups = append(groups, Group{Category: c.Category})
		}
		groups[i].Coffees = append(groups[i].Coffees, c)
	}
	return groups
}
