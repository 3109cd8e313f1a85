package calculator

import (
	"testing"

	"github.com/mmynk/splitledger/internal/models"
)

func TestCalculateBalances(t *testing.T) {
	expenses := []models.Expense{
		// Alice paid 90 for three people: Bob and Carol owe her 30 each.
		expense("90", models.CategoryFood, "alice", "alice", "bob", "carol"),
		// Bob paid 20 just for himself: no debt.
		expense("20", models.CategoryBills, "bob"),
	}

	balances, edges := CalculateBalances(expenses)

	want := map[models.UserID]struct{ paid, owed, net string }{
		"alice": {"90", "30", "60"},
		"bob":   {"20", "50", "-30"},
		"carol": {"0", "30", "-30"},
	}
	if len(balances) != len(want) {
		t.Fatalf("got %d balances, want %d", len(balances), len(want))
	}
	for _, b := range balances {
		w := want[b.UserID]
		if !b.TotalPaid.Equal(dec(w.paid)) || !b.TotalOwed.Equal(dec(w.owed)) || !b.NetBalance.Equal(dec(w.net)) {
			t.Errorf("%s: paid=%s owed=%s net=%s, want %+v", b.UserID, b.TotalPaid, b.TotalOwed, b.NetBalance, w)
		}
	}
	if balances[0].UserID != "alice" || balances[2].UserID != "carol" {
		t.Errorf("balances not sorted by user id: %v", balances)
	}

	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2: %+v", len(edges), edges)
	}
	for _, e := range edges {
		if e.To != "alice" || !e.Amount.Equal(dec("30")) {
			t.Errorf("unexpected edge %+v", e)
		}
	}
}

func TestCalculateBalancesThirds(t *testing.T) {
	expenses := []models.Expense{
		expense("100", models.CategoryFood, "alice", "alice", "bob", "carol"),
	}
	_, edges := CalculateBalances(expenses)
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2: %+v", len(edges), edges)
	}
}

func TestCalculateBalancesEmpty(t *testing.T) {
	balances, edges := CalculateBalances(nil)
	if len(balances) != 0 || len(edges) != 0 {
		t.Errorf("expected no balances or edges, got %v %v", balances, edges)
	}
}
