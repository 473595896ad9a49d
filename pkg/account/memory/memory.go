// Package memory implements an in-memory account repository.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"coffeeshop/pkg/account"
)

// Repository provides an in-memory implementation of account.Repository.
// Emails are unique.
type Repository struct {
	mu       sync.RWMutex
	nextID   int64
	accounts map[int64]account.Account
	byEmail  map[string]int64
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{
		accounts: make(map[int64]account.Account),
		byEmail:  make(map[string]int64),
	}
}

// Create stores the account and assigns its ID and creation time.
func (r *Repository) Create(ctx context.Context, a *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	email := account.NormalizeEmail(a.Email)
	if _, ok := r.byEmail[email]; ok {
		return account.ErrDuplicateEmail
	}
	r.nextID++
	a.ID = r.nextID
	a.Email = email
	a.CreatedAt = time.Now().UTC()
	r.accounts[a.ID] = *a
	r.byEmail[email] = a.ID
	return nil
}

// Get retrieves an account by ID.
func (r *Repository) Get(ctx context.Context, id int64) (account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return account.Account{}, account.ErrNotFound
	}
	return a, nil
}

// GetByEmail retrieves an account by its email address.
func (r *Repository) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[account.NormalizeEmail(email)]
	if !ok {
		return account.Account{}, account.ErrNotFound
	}
	return r.accounts[id], nil
}

// List returns all accounts, newest first.
func (r *Repository) List(ctx context.Context) ([]account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]account.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b account.Account) int { return cmp.Compare(b.ID, a.ID) })
	return out, nil
}

// Delete removes an account by ID.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return account.ErrNotFound
	}
	delete(r.byEmail, a.Email)
	delete(r.accounts, id)
	return nil
}

// Count returns the number of accounts.
func (r *Repository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts), nil
}
