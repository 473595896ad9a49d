package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"coffeeshop/pkg/catalog"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New()

	c := catalog.Coffee{Name: "Espresso", Description: "strong", Price: decimal.RequireFromString("3.50"), Category: "Hot", Available: true}
	if err := repo.Create(ctx, &c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID == 0 {
		t.Fatal("expected ID to be assigned")
	}

	got, err := repo.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Espresso" {
		t.Fatalf("expected Espresso, got %s", got.Name)
	}

	c.Price = decimal.RequireFromString("3.75")
	if err := repo.Update(ctx, c); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = repo.Get(ctx, c.ID)
	if !got.Price.Equal(decimal.RequireFromString("3.75")) {
		t.Fatalf("expected updated price, got %s", got.Price)
	}

	n, err := repo.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("count: %v n=%d", err, n)
	}

	if err := repo.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, c.ID); err != catalog.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, c.ID); err != catalog.ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if err := repo.Update(ctx, c); err != catalog.ErrNotFound {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
}

func TestListAvailableOrdering(t *testing.T) {
	ctx := context.Background()
	repo := New()
	for _, c := range []catalog.Coffee{
		{Name: "Mocha", Category: "Hot", Available: true},
		{Name: "Cold Brew", Category: "Cold", Available: false},
		{Name: "Americano", Category: "Hot", Available: true},
		{Name: "Iced Coffee", Category: "Cold", Available: true},
	} {
		c := c
		if err := repo.Create(ctx, &c); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	list, err := repo.ListAvailable(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var names []string
	for _, c := range list {
		names = append(names, c.Name)
	}
	want := []string{"Iced Coffee", "Americano", "Mocha"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}

	all, _ := repo.List(ctx)
	if len(all) != 4 || all[0].Name != "Mocha" {
		t.Fatalf("unexpected full list: %+v", all)
	}
}
