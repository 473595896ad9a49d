package order

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses {
		got, err := ParseStatus(string(s))
		if err != nil || got != s {
			t.Fatalf("ParseStatus(%q) = %q, %v", s, got, err)
		}
	}
	if _, err := ParseStatus("shipped"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusPreparing, true},
		{StatusPending, StatusCancelled, true},
		{StatusReady, StatusPending, true},
		{StatusReady, StatusCompleted, true},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusPreparing, false},
		{StatusCancelled, StatusCancelled, true},
		{StatusPending, Status("lost"), false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestItemSubtotal(t *testing.T) {
	it := Item{Quantity: 3, Price: decimal.RequireFromString("4.25")}
	if !it.Subtotal().Equal(decimal.RequireFromString("12.75")) {
		t.Fatalf("unexpected subtotal %s", it.Subtotal())
	}
}
