package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		coffee Coffee
		ok     bool
	}{
		{"valid", Coffee{Name: "Latte", Description: "milk", Price: decimal.RequireFromString("4.75")}, true},
		{"missing name", Coffee{Description: "milk", Price: decimal.NewFromInt(1)}, false},
		{"missing description", Coffee{Name: "Latte", Price: decimal.NewFromInt(1)}, false},
		{"zero price", Coffee{Name: "Latte", Description: "milk"}, false},
		{"negative price", Coffee{Name: "Latte", Description: "milk", Price: decimal.NewFromInt(-1)}, false},
		{"trailing zero", Coffee{Name: "Latte", Description: "milk", Price: decimal.RequireFromString("4.750")}, true},
		{"too many decimals", Coffee{Name: "Latte", Description: "milk", Price: decimal.RequireFromString("3.999")}, false},
		{"largest price", Coffee{Name: "Latte", Description: "milk", Price: decimal.RequireFromString("99999999.99")}, true},
		{"price too large", Coffee{Name: "Latte", Description: "milk", Price: decimal.NewFromInt(100000000)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coffee.Validate()
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, ErrInvalidCoffee), "got %v", err)
		})
	}
}

func TestNormalize(t *testing.T) {
	c := Coffee{Name: "  Mocha ", Description: " choc "}
	c.Normalize()
	require.Equal(t, "Mocha", c.Name)
	require.Equal(t, "choc", c.Description)
	require.Equal(t, DefaultCategory, c.Category)
}

func TestGroupByCategory(t *testing.T) {
	coffees := []Coffee{
		{ID: 3, Name: "Cold Brew", Category: "Cold"},
		{ID: 1, Name: "Americano", Category: "Hot"},
		{ID: 4, Name: "Iced Coffee", Category: "Cold"},
		{ID: 2, Name: "Espresso", Category: "Hot"},
	}

	groups := GroupByCategory(coffees)
	require.Len(t, groups, 2)
	require.Equal(t, "Cold", groups[0].Category)
	require.Equal(t, []int64{3, 4}, []int64{groups[0].Coffees[0].ID, groups[0].Coffees[1].ID})
	require.Equal(t, "Hot", groups[1].Category)
	require.Len(t, groups[1].Coffees, 2)

	require.Empty(t, GroupByCategory(nil))
}
