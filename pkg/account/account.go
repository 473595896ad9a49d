// Package account manages customer and administrator accounts.
package account

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Password length limits in bytes. bcrypt cannot hash more than
// MaxPasswordLength bytes.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// Account is a registered user. PasswordHash never leaves the service.
type Account struct {
	ID            int64     `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	ContactNumber string    `json:"contact_number"`
	PasswordHash  []byte    `json:"-"`
	IsAdmin       bool      `json:"is_admin"`
	CreatedAt     time.Time `json:"created_at"`
}

// Repository defines behavior for persisting accounts.
type Repository interface {
	Create(ctx context.Context, a *Account) error
	Get(ctx context.Context, id int64) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	List(ctx context.Context) ([]Account, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

var (
	// ErrNotFound indicates the requested account does not exist.
	ErrNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrInvalidCredentials is returned for an unknown email or a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRegistration wraps registration validation failures.
	ErrInvalidRegistration = errors.New("invalid registration")
	// ErrHasOrders prevents deleting an account that owns orders.
	ErrHasOrders = errors.New("account has orders")
	// ErrSelfDelete prevents an administrator from deleting themselves.
	ErrSelfDelete = errors.New("cannot delete your own account")
)

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HashPassword returns a salted bcrypt hash of password.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// CheckPassword reports whether password matches the stored hash.
func (a Account) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(password)) == nil
}
