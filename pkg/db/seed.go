package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"coffeeshop/pkg/account"
	"coffeeshop/pkg/catalog"
	"coffeeshop/pkg/logger"
)

// AdminEmail is the login of the seeded administrator.
const AdminEmail = "admin@coffee.com"

var sampleCoffees = []catalog.Coffee{
	{Name: "Espresso", Description: "Strong and concentrated coffee", Price: decimal.RequireFromString("3.50"), Category: "Hot"},
	{Name: "Cappuccino", Description: "Espresso with steamed milk foam", Price: decimal.RequireFromString("4.50"), Category: "Hot"},
	{Name: "Latte", Description: "Espresso with steamed milk", Price: decimal.RequireFromString("4.75"), Category: "Hot"},
	{Name: "Americano", Description: "Espresso with hot water", Price: decimal.RequireFromString("3.75"), Category: "Hot"},
	{Name: "Mocha", Description: "Chocolate-flavored latte", Price: decimal.RequireFromString("5.00"), Category: "Hot"},
	{Name: "Macchiato", Description: "Espresso with a dash of milk", Price: decimal.RequireFromString("4.25"), Category: "Hot"},
	{Name: "Iced Coffee", Description: "Chilled coffee with ice", Price: decimal.RequireFromString("4.00"), Category: "Cold"},
	{Name: "Cold Brew", Description: "Slow-steeped cold coffee", Price: decimal.RequireFromString("4.50"), Category: "Cold"},
	{Name: "Flat White", Description: "Smooth espresso with microfoam", Price: decimal.RequireFromString("4.75"), Category: "Hot"},
	{Name: "Turkish Coffee", Description: "Traditional finely ground coffee", Price: decimal.RequireFromString("4.25"), Category: "Hot"},
}

// Seed creates the administrator account if it is missing and fills an
// empty menu with the sample coffees. Running it again changes nothing.
func Seed(ctx context.Context, log *logger.Logger, accounts *account.Service, coffees catalog.Repository, adminPassword string) error {
	_, err := accounts.CreateAdmin(ctx, account.Registration{
		FirstName:     "Admin",
		LastName:      "User",
		Email:         AdminEmail,
		ContactNumber: "1234567890",
		Password:      adminPassword,
	})
	switch {
	case errors.Is(err, account.ErrDuplicateEmail):
		log.Debug(ctx, "admin account exists", "email", AdminEmail)
	case err != nil:
		return fmt.Errorf("seed admin: %w", err)
	default:
		log.Info(ctx, "admin account created", "email", AdminEmail)
	}

	n, err := coffees.Count(ctx)
	if err != nil {
		return fmt.Errorf("count coffees: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, c := range sampleCoffees {
		c.Available = true
		if err := coffees.Create(ctx, &c); err != nil {
			return fmt.Errorf("seed coffee %s: %w", c.Name, err)
		}
	}
	log.Info(ctx, "sample menu created", "coffees", len(sampleCoffees))
	return nil
}
