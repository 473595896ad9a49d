package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"coffeeshop/pkg/account"
)

const (
	accountColumns = "id, first_name, last_name, email, contact_number, password_hash, is_admin, created_at"

	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Repository persists accounts in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new account. A taken email yields account.ErrDuplicateEmail.
func (r *Repository) Create(ctx context.Context, a *account.Account) error {
	a.Email = account.NormalizeEmail(a.Email)
	query := `
		INSERT INTO users (first_name, last_name, email, contact_number, password_hash, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		a.FirstName, a.LastName, a.Email, a.ContactNumber, a.PasswordHash, a.IsAdmin,
	).Scan(&a.ID, &a.CreatedAt)
	if isCode(err, uniqueViolation) {
		return account.ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Get retrieves an account by ID.
func (r *Repository) Get(ctx context.Context, id int64) (account.Account, error) {
	return r.one(ctx, "SELECT "+accountColumns+" FROM users WHERE id = $1", id)
}

// GetByEmail retrieves an account by email.
func (r *Repository) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	return r.one(ctx, "SELECT "+accountColumns+" FROM users WHERE email = $1", account.NormalizeEmail(email))
}

// List fetches all accounts, newest first.
func (r *Repository) List(ctx context.Context) ([]account.Account, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+accountColumns+" FROM users ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var accounts []account.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// Delete removes an account. Accounts referenced by orders cannot be
// removed and yield account.ErrHasOrders.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if isCode(err, foreignKeyViolation) {
		return account.ErrHasOrders
	}
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return account.ErrNotFound
	}
	return nil
}

// Count returns the number of accounts.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *Repository) one(ctx context.Context, query string, arg any) (account.Account, error) {
	a, err := scanAccount(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return account.Account{}, account.ErrNotFound
	}
	if err != nil {
		return account.Account{}, fmt.Errorf("select user: %w", err)
	}
	return a, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (account.Account, error) {
	var a account.Account
	var first, last, contact sql.NullString
	err := s.Scan(&a.ID, &first, &last, &a.Email, &contact, &a.PasswordHash, &a.IsAdmin, &a.CreatedAt)
	a.FirstName, a.LastName, a.ContactNumber = first.String, last.String, contact.String
	return a, err
}

func isCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}
