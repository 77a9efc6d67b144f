package calculator

import (
	"math"
	"testing"
)

func TestApplyLedger(t *testing.T) {
	base := map[string]float64{"A": 60, "B": -30, "C": -30}

	t.Run("partial settlement then re-plan", func(t *testing.T) {
		adjusted := ApplyLedger(base, []Event{
			{Payer: "B", Receiver: "A", Amount: 30, Completed: true},
		})

		want := map[string]float64{"A": 30, "B": 0, "C": -30}
		for member, expected := range want {
			if math.Abs(adjusted.Balances[member]-expected) > epsilon {
				t.Errorf("%s balance = %v, want %v", member, adjusted.Balances[member], expected)
			}
		}

		if len(adjusted.Transactions) != 1 {
			t.Fatalf("transactions = %v, want exactly one", adjusted.Transactions)
		}
		tx := adjusted.Transactions[0]
		if tx.From != "C" || tx.To != "A" || math.Abs(tx.Amount-30) > epsilon {
			t.Errorf("transaction = %v, want C->A 30", tx)
		}
	})

	t.Run("non-completed events are ignored", func(t *testing.T) {
		adjusted := ApplyLedger(base, []Event{
			{Payer: "B", Receiver: "A", Amount: 30, Completed: false},
			{Payer: "C", Receiver: "A", Amount: 30, Completed: false},
		})
		for member, balance := range base {
			if adjusted.Balances[member] != balance {
				t.Errorf("%s balance changed to %v, want %v", member, adjusted.Balances[member], balance)
			}
		}
	})

	t.Run("base map is not mutated", func(t *testing.T) {
		ApplyLedger(base, []Event{{Payer: "B", Receiver: "A", Amount: 30, Completed: true}})
		if base["A"] != 60 || base["B"] != -30 {
			t.Errorf("base mutated: %v", base)
		}
	})

	t.Run("full ledger settles everything", func(t *testing.T) {
		adjusted := ApplyLedger(base, []Event{
			{Payer: "B", Receiver: "A", Amount: 30, Completed: true},
			{Payer: "C", Receiver: "A", Amount: 30, Completed: true},
		})
		if len(adjusted.Transactions) != 0 {
			t.Errorf("expected settled state, got transactions %v", adjusted.Transactions)
		}
	})
}

func TestApplyLedger_OrderIndependent(t *testing.T) {
	base := map[string]float64{"A": 100, "B": -40, "C": -60}
	events := []Event{
		{Payer: "B", Receiver: "A", Amount: 15, Completed: true},
		{Payer: "C", Receiver: "A", Amount: 60, Completed: true},
		{Payer: "B", Receiver: "A", Amount: 25, Completed: true},
	}

	permutations := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}

	reference := ApplyLedger(base, events)
	for _, perm := range permutations {
		shuffled := []Event{events[perm[0]], events[perm[1]], events[perm[2]]}
		adjusted := ApplyLedger(base, shuffled)
		for member, expected := range reference.Balances {
			if math.Abs(adjusted.Balances[member]-expected) > 1e-9 {
				t.Errorf("permutation %v: %s balance = %v, want %v",
					perm, member, adjusted.Balances[member], expected)
			}
		}
	}
}

func TestApplySettlement(t *testing.T) {
	current := map[string]float64{"A": 30, "B": 0, "C": -30}

	adjusted := ApplySettlement(current, Event{
		Payer: "C", Receiver: "A", Amount: 30, Completed: true,
	})

	for member, balance := range adjusted.Balances {
		if math.Abs(balance) > epsilon {
			t.Errorf("%s balance = %v, want settled", member, balance)
		}
	}
	if len(adjusted.Transactions) != 0 {
		t.Errorf("expected no transactions, got %v", adjusted.Transactions)
	}

	// Idempotent reconciliation: reapplying the confirmed ledger from the
	// original base must match the optimistic result.
	batch := ApplyLedger(current, []Event{{Payer: "C", Receiver: "A", Amount: 30, Completed: true}})
	for member, expected := range batch.Balances {
		if adjusted.Balances[member] != expected {
			t.Errorf("single/batch mismatch for %s: %v vs %v", member, adjusted.Balances[member], expected)
		}
	}
}
