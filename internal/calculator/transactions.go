package calculator

import (
	"math"
	"sort"
)

// epsilon absorbs floating-point noise from share division. Balances within
// epsilon of zero count as settled, and no transaction smaller than epsilon
// is ever suggested.
const epsilon = 0.01

// Transaction is a suggested payment that reduces outstanding balances.
// Transactions are derived values, recomputed on every balance change, and
// are never persisted.
type Transaction struct {
	From   string  // member who should pay
	To     string  // member who should receive
	Amount float64
}

// position is one side of the greedy merge: a member and how much of their
// balance remains unsettled.
type position struct {
	member string
	amount float64
}

// PlanTransactions produces a list of payments that drives every balance to
// within epsilon of zero. Members are partitioned into debtors and creditors
// in ascending member-ID order, then matched greedily: each step settles
// min(debtor remaining, creditor remaining) between the current pair and
// advances whichever side is exhausted.
//
// The result is a small, reproducible plan, not a minimum-transaction-count
// solution (that problem is NP-hard). A fully settled balance map yields an
// empty plan.
func PlanTransactions(balances map[string]float64) []Transaction {
	members := make([]string, 0, len(balances))
	for member := range balances {
		members = append(members, member)
	}
	sort.Strings(members)

	var debtors, creditors []position
	for _, member := range members {
		balance := balances[member]
		switch {
		case balance < -epsilon:
			debtors = append(debtors, position{member: member, amount: -balance})
		case balance > epsilon:
			creditors = append(creditors, position{member: member, amount: balance})
		}
	}

	var transactions []Transaction
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]
		settled := math.Min(debtor.amount, creditor.amount)

		if settled > epsilon {
			transactions = append(transactions, Transaction{
				From:   debtor.member,
				To:     creditor.member,
				Amount: settled,
			})
		}

		debtor.amount -= settled
		creditor.amount -= settled

		if debtor.amount <= epsilon {
			i++
		}
		if creditor.amount <= epsilon {
			j++
		}
	}

	return transactions
}
