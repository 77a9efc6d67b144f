package calculator

import "fmt"

// Expense carries the minimal expense information needed for balance
// calculations. PaidBy and Participants are member IDs.
type Expense struct {
	Amount       float64
	PaidBy       string
	Participants []string
}

// Report holds the derived totals for one trip. All maps are keyed by
// member ID and contain an entry for every member, including settled ones.
type Report struct {
	// Balances is each member's net position.
	// Positive = owed money, negative = owes money.
	Balances map[string]float64

	// SpentAmounts is the total each member personally paid out.
	SpentAmounts map[string]float64

	// PersonShares is the total attributable to each member as a consumer.
	PersonShares map[string]float64

	// TotalExpense is the sum of all expense amounts.
	TotalExpense float64
}

// ComputeBalances derives net balances, spend totals and person shares from
// a member set and its expenses.
//
// Algorithm:
//   - initialize every member's balance, spend and share to 0
//   - for each expense, share = amount / len(participants); each participant's
//     balance decreases by the share and their person-share grows by it
//   - the payer's balance and spend grow by the full amount
//
// Amounts accumulate in double precision with no intermediate rounding;
// rounding happens only at the formatting boundary. An empty member set
// short-circuits to an empty report.
//
// An expense referencing a member outside the member set, or carrying a
// positive amount with no participants, is rejected rather than silently
// fabricating balance entries.
func ComputeBalances(members []string, expenses []Expense) (*Report, error) {
	report := &Report{
		Balances:     make(map[string]float64, len(members)),
		SpentAmounts: make(map[string]float64, len(members)),
		PersonShares: make(map[string]float64, len(members)),
	}
	if len(members) == 0 {
		return report, nil
	}

	for _, m := range members {
		report.Balances[m] = 0
		report.SpentAmounts[m] = 0
		report.PersonShares[m] = 0
	}

	for i, expense := range expenses {
		if len(expense.Participants) == 0 {
			if expense.Amount > 0 {
				return nil, fmt.Errorf("expense %d: amount %.2f has no participants", i, expense.Amount)
			}
			continue
		}
		if _, ok := report.Balances[expense.PaidBy]; !ok {
			return nil, fmt.Errorf("expense %d: payer %q is not a member", i, expense.PaidBy)
		}

		share := expense.Amount / float64(len(expense.Participants))
		for _, participant := range expense.Participants {
			if _, ok := report.Balances[participant]; !ok {
				return nil, fmt.Errorf("expense %d: participant %q is not a member", i, participant)
			}
			report.Balances[participant] -= share
			report.PersonShares[participant] += share
		}

		report.Balances[expense.PaidBy] += expense.Amount
		report.SpentAmounts[expense.PaidBy] += expense.Amount
		report.TotalExpense += expense.Amount
	}

	return report, nil
}
