package account_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffeeshop/pkg/account"
	"coffeeshop/pkg/account/memory"
)

type fakeOrders map[int64]int

func (f fakeOrders) CountByAccount(_ context.Context, id int64) (int, error) {
	return f[id], nil
}

func validRegistration() account.Registration {
	return account.Registration{
		FirstName:       "Grace",
		LastName:        "Hopper",
		Email:           "Grace@Example.com",
		ContactNumber:   "555-0100",
		Password:        "cobol60",
		ConfirmPassword: "cobol60",
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	ctx := context.Background()
	svc := account.NewService(memory.New(), nil)

	a, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", a.Email)
	assert.False(t, a.IsAdmin)
	assert.NotEqual(t, "cobol60", string(a.PasswordHash))
	assert.True(t, a.CheckPassword("cobol60"))
	assert.False(t, a.CheckPassword("cobol61"))

	_, err = svc.Register(ctx, validRegistration())
	require.ErrorIs(t, err, account.ErrDuplicateEmail)
}

func TestRegisterValidation(t *testing.T) {
	svc := account.NewService(memory.New(), nil)

	tests := map[string]func(r *account.Registration){
		"missing field":  func(r *account.Registration) { r.ContactNumber = "  " },
		"bad email":      func(r *account.Registration) { r.Email = "grace" },
		"mismatch":       func(r *account.Registration) { r.ConfirmPassword = "cobol59" },
		"short password": func(r *account.Registration) { r.Password, r.ConfirmPassword = "abc", "abc" },
		"long password": func(r *account.Registration) {
			long := strings.Repeat("x", account.MaxPasswordLength+1)
			r.Password, r.ConfirmPassword = long, long
		},
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			r := validRegistration()
			mutate(&r)
			_, err := svc.Register(context.Background(), r)
			require.ErrorIs(t, err, account.ErrInvalidRegistration)
		})
	}

	n, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	r := validRegistration()
	r.Password = strings.Repeat("x", account.MaxPasswordLength)
	r.ConfirmPassword = r.Password
	_, err = svc.Register(context.Background(), r)
	require.NoError(t, err)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := account.NewService(memory.New(), nil)
	created, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	a, err := svc.Authenticate(ctx, " GRACE@example.com", "cobol60")
	require.NoError(t, err)
	assert.Equal(t, created.ID, a.ID)

	_, err = svc.Authenticate(ctx, "grace@example.com", "wrong!")
	require.ErrorIs(t, err, account.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "cobol60")
	require.ErrorIs(t, err, account.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "", "")
	require.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	orders := fakeOrders{}
	svc := account.NewService(memory.New(), orders)

	admin, err := svc.CreateAdmin(ctx, account.Registration{FirstName: "Admin", Email: "admin@coffee.com", Password: "admin123"})
	require.NoError(t, err)
	require.True(t, admin.IsAdmin)

	customer, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, admin.ID, admin.ID), account.ErrSelfDelete)
	require.ErrorIs(t, svc.Delete(ctx, admin.ID, 999), account.ErrNotFound)

	orders[customer.ID] = 1
	require.ErrorIs(t, svc.Delete(ctx, admin.ID, customer.ID), account.ErrHasOrders)

	delete(orders, customer.ID)
	require.NoError(t, svc.Delete(ctx, admin.ID, customer.ID))

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
