package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"coffeeshop/pkg/order"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New()
	o := order.Order{
		AccountID: 1,
		Status:    order.StatusPending,
		Total:     decimal.RequireFromString("7.00"),
		Items: []order.Item{
			{CoffeeID: 10, Name: "Espresso", Quantity: 2, Price: decimal.RequireFromString("3.50")},
		},
	}
	if err := repo.Create(ctx, &o); err != nil {
		t.Fatalf("create: %v", err)
	}
	if o.ID == 0 || o.Items[0].ID == 0 || o.Items[0].OrderID != o.ID {
		t.Fatalf("expected ids to be assigned: %+v", o)
	}

	got, err := repo.Get(ctx, o.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].Name != "Espresso" {
		t.Fatalf("unexpected items: %+v", got.Items)
	}

	// mutating the returned copy must not leak into the store
	got.Items[0].Price = decimal.NewFromInt(99)
	again, _ := repo.Get(ctx, o.ID)
	if !again.Items[0].Price.Equal(decimal.RequireFromString("3.50")) {
		t.Fatalf("stored item changed through a returned copy: %s", again.Items[0].Price)
	}

	if err := repo.UpdateStatus(ctx, o.ID, order.StatusPending, order.StatusPreparing); err != nil {
		t.Fatalf("update status: %v", err)
	}
	if err := repo.UpdateStatus(ctx, o.ID, order.StatusPending, order.StatusReady); err != order.ErrStatusChanged {
		t.Fatalf("expected ErrStatusChanged, got %v", err)
	}
	if err := repo.UpdateStatus(ctx, 404, order.StatusPending, order.StatusReady); err != order.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := repo.Get(ctx, 404); err != order.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListFilterAndStats(t *testing.T) {
	ctx := context.Background()
	repo := New()
	for _, acct := range []int64{1, 2, 1} {
		o := order.Order{AccountID: acct, Status: order.StatusPending, Total: decimal.NewFromInt(acct)}
		if err := repo.Create(ctx, &o); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, err := repo.List(ctx, order.Filter{})
	if err != nil || len(all) != 3 {
		t.Fatalf("list: %v len=%d", err, len(all))
	}
	if all[0].ID != 3 {
		t.Fatalf("expected newest first, got id %d", all[0].ID)
	}

	mine, _ := repo.List(ctx, order.Filter{AccountID: 1})
	if len(mine) != 2 {
		t.Fatalf("expected 2 orders for account 1, got %d", len(mine))
	}

	recent, _ := repo.List(ctx, order.Filter{Limit: 1})
	if len(recent) != 1 {
		t.Fatalf("expected limit to apply, got %d", len(recent))
	}

	n, _ := repo.CountByAccount(ctx, 2)
	if n != 1 {
		t.Fatalf("expected 1 order for account 2, got %d", n)
	}

	stats, _ := repo.Stats(ctx)
	if stats.Orders != 3 || !stats.Revenue.Equal(decimal.NewFromInt(4)) {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
