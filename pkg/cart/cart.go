// Package cart implements the per-session shopping cart: a map from coffee
// id to a positive quantity.
package cart

import (
	"iter"
	"maps"
	"slices"
)

// Cart maps coffee ids to quantities. A zero Cart is ready to use. A Cart
// never holds a quantity <= 0; such entries are removed instead.
type Cart map[int64]int

// Add increments the quantity of id by one.
func (c *Cart) Add(id int64) {
	if *c == nil {
		*c = make(Cart)
	}
	(*c)[id]++
}

// Set stores qty for id. A qty <= 0 removes the entry.
func (c *Cart) Set(id int64, qty int) {
	if qty <= 0 {
		c.Remove(id)
		return
	}
	if *c == nil {
		*c = make(Cart)
	}
	(*c)[id] = qty
}

// Remove deletes id from the cart. Removing a missing id is a no-op.
func (c Cart) Remove(id int64) {
	delete(c, id)
}

// Clear empties the cart.
func (c Cart) Clear() {
	clear(c)
}

// Len returns the number of distinct coffees in the cart.
func (c Cart) Len() int {
	return len(c)
}

// Count returns the total number of units in the cart.
func (c Cart) Count() int {
	n := 0
	for _, q := range c {
		n += q
	}
	return n
}

// Quantity returns the quantity held for id.
func (c Cart) Quantity(id int64) int {
	return c[id]
}

// Snapshot returns the cart contents as a sequence of (id, quantity) pairs
// in ascending id order. The sequence reads a copy taken when Snapshot is
// called, so it can be ranged over any number of times and is unaffected by
// later changes to the cart.
func (c Cart) Snapshot() iter.Seq2[int64, int] {
	frozen := maps.Clone(c)
	ids := slices.Sorted(maps.Keys(frozen))
	return func(yield func(int64, int) bool) {
		for _, id := range ids {
			if !yield(id, frozen[id]) {
				return
			}
		}
	}
}

// Quantities returns a copy of the cart as a plain map.
func (c Cart) Quantities() map[int64]int {
	out := make(map[int64]int, len(c))
	maps.Copy(out, c)
	return out
}
