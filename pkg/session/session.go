// Package session holds per-login state: who is signed in and their cart.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"coffeeshop/pkg/account"
	"coffeeshop/pkg/cart"
)

// ErrNotFound indicates the session expired or was logged out.
var ErrNotFound = errors.New("session not found")

// Session is the state kept between requests of one signed-in user.
type Session struct {
	ID        string    `json:"id"`
	AccountID int64     `json:"account_id"`
	FirstName string    `json:"first_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	Cart      cart.Cart `json:"cart"`
	CreatedAt time.Time `json:"created_at"`
}

// New starts an empty session for a.
func New(a account.Account) *Session {
	return &Session{
		ID:        uuid.NewString(),
		AccountID: a.ID,
		FirstName: a.FirstName,
		Email:     a.Email,
		IsAdmin:   a.IsAdmin,
		Cart:      cart.Cart{},
		CreatedAt: time.Now().UTC(),
	}
}

// Store persists sessions with an expiry.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type ctxKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored in ctx, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}
