package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coffeeshop/pkg/catalog"
)

const coffeeColumns = "id, name, description, price, category, is_available, created_at"

// Repository persists coffees in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new coffee and fills in its ID and creation time.
func (r *Repository) Create(ctx context.Context, c *catalog.Coffee) error {
	query := `
		INSERT INTO coffees (name, description, price, category, is_available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		c.Name, c.Description, c.Price, c.Category, c.Available,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert coffee: %w", err)
	}
	return nil
}

// Get retrieves a coffee by ID.
func (r *Repository) Get(ctx context.Context, id int64) (catalog.Coffee, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+coffeeColumns+" FROM coffees WHERE id = $1", id)
	c, err := scanCoffee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Coffee{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Coffee{}, fmt.Errorf("select coffee: %w", err)
	}
	return c, nil
}

// List fetches all coffees ordered by ID.
func (r *Repository) List(ctx context.Context) ([]catalog.Coffee, error) {
	return r.query(ctx, "SELECT "+coffeeColumns+" FROM coffees ORDER BY id")
}

// ListAvailable fetches the coffees that can be ordered, grouped for the menu.
func (r *Repository) ListAvailable(ctx context.Context) ([]catalog.Coffee, error) {
	return r.query(ctx, "SELECT "+coffeeColumns+" FROM coffees WHERE is_available = true ORDER BY category, name")
}

// Update replaces the editable fields of an existing coffee.
func (r *Repository) Update(ctx context.Context, c catalog.Coffee) error {
	query := `
		UPDATE coffees
		SET name = $2, description = $3, price = $4, category = $5, is_available = $6
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Description, c.Price, c.Category, c.Available)
	if err != nil {
		return fmt.Errorf("update coffee: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// Delete removes a coffee by ID. Order items that reference it are kept.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM coffees WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete coffee: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// Count returns the number of coffees.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM coffees").Scan(&n); err != nil {
		return 0, fmt.Errorf("count coffees: %w", err)
	}
	return n, nil
}

func (r *Repository) query(ctx context.Context, query string, args ...any) ([]catalog.Coffee, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select coffees: %w", err)
	}
	defer rows.Close()

	var coffees []catalog.Coffee
	for rows.Next() {
		c, err := scanCoffee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan coffee: %w", err)
		}
		coffees = append(coffees, c)
	}
	return coffees, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCoffee(s scanner) (catalog.Coffee, error) {
	var c catalog.Coffee
	var desc, category sql.NullString
	err := s.Scan(&c.ID, &c.Name, &desc, &c.Price, &category, &c.Available, &c.CreatedAt)
	c.Description = desc.String
	c.Category = category.String
	return c, err
}
