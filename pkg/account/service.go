package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// OrderCounter reports how many orders an account owns.
type OrderCounter interface {
	CountByAccount(ctx context.Context, accountID int64) (int, error)
}

// Registration is the data submitted by the sign-up form.
type Registration struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	ContactNumber   string `json:"contact"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Validate checks the registration form rules.
func (r *Registration) Validate() error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = NormalizeEmail(r.Email)
	r.ContactNumber = strings.TrimSpace(r.ContactNumber)

	for _, f := range []string{r.FirstName, r.LastName, r.Email, r.ContactNumber, r.Password, r.ConfirmPassword} {
		if f == "" {
			return fmt.Errorf("%w: please fill in all fields", ErrInvalidRegistration)
		}
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("%w: invalid email address", ErrInvalidRegistration)
	}
	if r.Password != r.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", ErrInvalidRegistration)
	}
	if len(r.Password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidRegistration, MinPasswordLength)
	}
	if len(r.Password) > MaxPasswordLength {
		return fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidRegistration, MaxPasswordLength)
	}
	return nil
}

// Service implements registration, login and account administration.
type Service struct {
	repo   Repository
	orders OrderCounter
}

// NewService returns a Service backed by repo. orders may be nil, in which
// case account deletion does not check for owned orders.
func NewService(repo Repository, orders OrderCounter) *Service {
	return &Service{repo: repo, orders: orders}
}

// Register validates the form and stores a new customer account.
func (s *Service) Register(ctx context.Context, r Registration) (Account, error) {
	if err := r.Validate(); err != nil {
		return Account{}, err
	}
	return s.create(ctx, r, false)
}

// CreateAdmin stores an administrator account. Used for seeding.
func (s *Service) CreateAdmin(ctx context.Context, r Registration) (Account, error) {
	r.Email = NormalizeEmail(r.Email)
	return s.create(ctx, r, true)
}

func (s *Service) create(ctx context.Context, r Registration, admin bool) (Account, error) {
	hash, err := HashPassword(r.Password)
	if err != nil {
		return Account{}, fmt.Errorf("hash password: %w", err)
	}
	a := Account{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		ContactNumber: r.ContactNumber,
		PasswordHash:  hash,
		IsAdmin:       admin,
	}
	if err := s.repo.Create(ctx, &a); err != nil {
		return Account{}, err
	}
	return a, nil
}

// Authenticate returns the account matching email and password.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Account, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return Account{}, ErrInvalidCredentials
	}
	a, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return Account{}, err
	}
	if !a.CheckPassword(password) {
		return Account{}, ErrInvalidCredentials
	}
	return a, nil
}

// Get returns the account with the given ID.
func (s *Service) Get(ctx context.Context, id int64) (Account, error) {
	return s.repo.Get(ctx, id)
}

// List returns all accounts.
func (s *Service) List(ctx context.Context) ([]Account, error) {
	return s.repo.List(ctx)
}

// Count returns the number of accounts.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// Delete removes the account id on behalf of actorID. Accounts with order
// history are kept so past orders stay resolvable.
func (s *Service) Delete(ctx context.Context, actorID, id int64) error {
	if actorID == id {
		return ErrSelfDelete
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	if s.orders != nil {
		n, err := s.orders.CountByAccount(ctx, id)
		if err != nil {
			return fmt.Errorf("count orders: %w", err)
		}
		if n > 0 {
			return ErrHasOrders
		}
	}
	return s.repo.Delete(ctx, id)
}
