package api

import (
	"github.com/tripsplit/tripsplit/internal/calculator"
	"github.com/tripsplit/tripsplit/internal/models"
	"github.com/tripsplit/tripsplit/internal/service"
)

// JSON shapes for the API. Field names follow the client's camelCase
// convention (paidBy, createdAt).

type userJSON struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}

type tripJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date,omitempty"`
	Currency    string `json:"currency,omitempty"`
	HasPasscode bool   `json:"hasPasscode"`
	CreatedAt   int64  `json:"createdAt"`
}

type memberJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}

type expenseJSON struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Amount       float64  `json:"amount"`
	PaidBy       string   `json:"paidBy"`
	Participants []string `json:"participants"`
	Description  string   `json:"description,omitempty"`
	CreatedAt    int64    `json:"createdAt"`
}

type settlementJSON struct {
	ID               string  `json:"id"`
	Payer            string  `json:"payer"`
	Receiver         string  `json:"receiver"`
	Amount           float64 `json:"amount"`
	OriginalAmount   float64 `json:"originalAmount,omitempty"`
	OriginalPayer    string  `json:"originalPayer,omitempty"`
	OriginalReceiver string  `json:"originalReceiver,omitempty"`
	ProcessedBy      string  `json:"processedBy,omitempty"`
	Status           string  `json:"status"`
	CreatedAt        int64   `json:"createdAt"`
}

type transactionJSON struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type memberSummaryJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type reportJSON struct {
	TripID              string              `json:"tripId"`
	Currency            string              `json:"currency,omitempty"`
	CurrencySymbol      string              `json:"currencySymbol,omitempty"`
	Members             []memberSummaryJSON `json:"members"`
	Balances            map[string]float64  `json:"balances"`
	OutstandingBalances map[string]float64  `json:"outstandingBalances"`
	SpentAmounts        map[string]float64  `json:"spentAmounts"`
	PersonShares        map[string]float64  `json:"personShares"`
	TotalExpense        float64             `json:"totalExpense"`
	Transactions        []transactionJSON   `json:"transactions"`
}

type settlementResultJSON struct {
	Settlement   *settlementJSON    `json:"settlement,omitempty"`
	Balances     map[string]float64 `json:"balances"`
	Transactions []transactionJSON  `json:"transactions"`
}

func toUserJSON(user *models.User) userJSON {
	return userJSON{ID: user.ID, Email: user.Email, Name: user.Name, CreatedAt: user.CreatedAt}
}

func toTripJSON(trip *models.Trip) tripJSON {
	return tripJSON{
		ID:          trip.ID,
		Name:        trip.Name,
		Date:        trip.Date,
		Currency:    trip.Currency,
		HasPasscode: trip.HasPasscode(),
		CreatedAt:   trip.CreatedAt,
	}
}

func toMemberJSON(member *models.Member) memberJSON {
	return memberJSON{ID: member.ID, Name: member.Name, CreatedAt: member.CreatedAt}
}

func toExpenseJSON(expense *models.Expense) expenseJSON {
	return expenseJSON{
		ID:           expense.ID,
		Name:         expense.Name,
		Amount:       expense.Amount,
		PaidBy:       expense.PaidBy,
		Participants: expense.Participants,
		Description:  expense.Description,
		CreatedAt:    expense.CreatedAt,
	}
}

func toSettlementJSON(settlement *models.Settlement) settlementJSON {
	return settlementJSON{
		ID:               settlement.ID,
		Payer:            settlement.Payer,
		Receiver:         settlement.Receiver,
		Amount:           settlement.Amount,
		OriginalAmount:   settlement.OriginalAmount,
		OriginalPayer:    settlement.OriginalPayer,
		OriginalReceiver: settlement.OriginalReceiver,
		ProcessedBy:      settlement.ProcessedBy,
		Status:           string(settlement.Status),
		CreatedAt:        settlement.CreatedAt,
	}
}

func toTransactionsJSON(transactions []calculator.Transaction) []transactionJSON {
	out := make([]transactionJSON, len(transactions))
	for i, tx := range transactions {
		out[i] = transactionJSON{From: tx.From, To: tx.To, Amount: tx.Amount}
	}
	return out
}

func toReportJSON(report *service.TripReport) reportJSON {
	members := make([]memberSummaryJSON, len(report.Members))
	for i, member := range report.Members {
		members[i] = memberSummaryJSON{ID: member.ID, Name: member.Name}
	}
	return reportJSON{
		TripID:              report.TripID,
		Currency:            report.Currency,
		CurrencySymbol:      report.CurrencySymbol,
		Members:             members,
		Balances:            report.Balances,
		OutstandingBalances: report.OutstandingBalances,
		SpentAmounts:        report.SpentAmounts,
		PersonShares:        report.PersonShares,
		TotalExpense:        report.TotalExpense,
		Transactions:        toTransactionsJSON(report.Transactions),
	}
}

func toSettlementResultJSON(result *service.SettlementResult) settlementResultJSON {
	out := settlementResultJSON{
		Balances:     result.Balances,
		Transactions: toTransactionsJSON(result.Transactions),
	}
	if result.Settlement != nil {
		settlement := toSettlementJSON(result.Settlement)
		out.Settlement = &settlement
	}
	return out
}
