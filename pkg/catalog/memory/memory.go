// Package memory implements an in-memory coffee repository.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"coffeeshop/pkg/catalog"
)

// Repository provides an in-memory implementation of catalog.Repository.
type Repository struct {
	mu      sync.RWMutex
	nextID  int64
	coffees map[int64]catalog.Coffee
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{coffees: make(map[int64]catalog.Coffee)}
}

// Create stores the coffee and assigns its ID and creation time.
func (r *Repository) Create(ctx context.Context, c *catalog.Coffee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	c.ID = r.nextID
	c.CreatedAt = time.Now().UTC()
	r.coffees[c.ID] = *c
	return nil
}

// Get retrieves a coffee by ID.
func (r *Repository) Get(ctx context.Context, id int64) (catalog.Coffee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.coffees[id]
	if !ok {
		return catalog.Coffee{}, catalog.ErrNotFound
	}
	return c, nil
}

// List returns all coffees ordered by ID.
func (r *Repository) List(ctx context.Context) ([]catalog.Coffee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]catalog.Coffee, 0, len(r.coffees))
	for _, c := range r.coffees {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b catalog.Coffee) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// ListAvailable returns available coffees ordered by category, then name.
func (r *Repository) ListAvailable(ctx context.Context) ([]catalog.Coffee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []catalog.Coffee
	for _, c := range r.coffees {
		if c.Available {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b catalog.Coffee) int {
		return cmp.Or(cmp.Compare(a.Category, b.Category), cmp.Compare(a.Name, b.Name))
	})
	return out, nil
}

// Update replaces an existing coffee. The creation time is preserved.
func (r *Repository) Update(ctx context.Context, c catalog.Coffee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.coffees[c.ID]
	if !ok {
		return catalog.ErrNotFound
	}
	c.CreatedAt = old.CreatedAt
	r.coffees[c.ID] = c
	return nil
}

// Delete removes a coffee by ID.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.coffees[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(r.coffees, id)
	return nil
}

// Count returns the number of coffees.
func (r *Repository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.coffees), nil
}
