package calculator

// Event carries the minimal settlement information needed for ledger
// adjustment. Payer and Receiver are member IDs. Only completed settlements
// adjust balances; pending or failed ones are skipped but never deleted.
type Event struct {
	Payer     string
	Receiver  string
	Amount    float64
	Completed bool
}

// Adjusted is the result of folding settlement events into a balance map:
// the adjusted balances and the transaction plan derived from them.
type Adjusted struct {
	Balances     map[string]float64
	Transactions []Transaction
}

// ApplyLedger folds completed settlement events into the base balances and
// re-plans the outstanding transactions. A settlement payment is the inverse
// of an expense: the payer's balance improves by the amount, the receiver's
// decreases by it.
//
// The fold is pure addition, so the result is independent of event order and
// reapplying the same ledger to the same base always yields the same output.
// The input map is not mutated.
func ApplyLedger(base map[string]float64, events []Event) *Adjusted {
	balances := make(map[string]float64, len(base))
	for member, balance := range base {
		balances[member] = balance
	}

	for _, event := range events {
		if !event.Completed {
			continue
		}
		balances[event.Payer] += event.Amount
		balances[event.Receiver] -= event.Amount
	}

	return &Adjusted{
		Balances:     balances,
		Transactions: PlanTransactions(balances),
	}
}

// ApplySettlement folds a single settlement event into the current balances.
// It exists for optimistic application of a new settlement before persistence
// confirms; callers reconcile by reapplying the confirmed ledger, which is
// safe because both functions are pure.
func ApplySettlement(current map[string]float64, event Event) *Adjusted {
	return ApplyLedger(current, []Event{event})
}
