package service

import (
	"context"
	"log/slog"

	"github.com/tripsplit/tripsplit/internal/calculator"
	"github.com/tripsplit/tripsplit/internal/currency"
	"github.com/tripsplit/tripsplit/internal/metrics"
	"github.com/tripsplit/tripsplit/internal/middleware"
	"github.com/tripsplit/tripsplit/internal/models"
	"github.com/tripsplit/tripsplit/internal/storage"
)

// ReportService assembles balance reports and records settlements.
type ReportService struct {
	store storage.Store
}

// NewReportService creates a new ReportService with the given storage backend.
func NewReportService(store storage.Store) *ReportService {
	return &ReportService{store: store}
}

// MemberSummary pairs a member ID with its display name so clients can
// label the ID-keyed balance maps.
type MemberSummary struct {
	ID   string
	Name string
}

// TripReport is the full derived state of one trip. Balances holds the
// expense-derived positions; OutstandingBalances folds in the completed
// settlement ledger, and Transactions is the plan for the outstanding state.
type TripReport struct {
	TripID              string
	Currency            string
	CurrencySymbol      string
	Members             []MemberSummary
	Balances            map[string]float64
	OutstandingBalances map[string]float64
	SpentAmounts        map[string]float64
	PersonShares        map[string]float64
	TotalExpense        float64
	Transactions        []calculator.Transaction
}

// SettlementRequest is a proposed payment between two members.
type SettlementRequest struct {
	Payer    string
	Receiver string
	Amount   float64
}

// SettlementResult is the outcome of recording or previewing a settlement:
// the adjusted balances and the remaining transaction plan. Settlement is
// nil for previews.
type SettlementResult struct {
	Settlement   *models.Settlement
	Balances     map[string]float64
	Transactions []calculator.Transaction
}

// GetReport computes the full report for a trip: expense-derived balances,
// spend and share totals, then the outstanding state after the settlement
// ledger, and the suggested transactions for it.
func (s *ReportService) GetReport(ctx context.Context, userID, tripID string) (*TripReport, error) {
	slog.Info("GetReport request received", "trip_id", tripID)

	trip, err := ownedTrip(ctx, s.store, tripID, userID)
	if err != nil {
		return nil, err
	}

	members, report, adjusted, err := s.computeTrip(ctx, tripID)
	if err != nil {
		slog.Error("GetReport failed", "trip_id", tripID, "error", err)
		return nil, err
	}

	summaries := make([]MemberSummary, len(members))
	for i, member := range members {
		summaries[i] = MemberSummary{ID: member.ID, Name: member.Name}
	}

	metrics.ReportsComputed.Inc()
	slog.Info("Report computed", "trip_id", tripID,
		"members", len(members), "total_expense", report.TotalExpense,
		"transactions", len(adjusted.Transactions))

	return &TripReport{
		TripID:              trip.ID,
		Currency:            trip.Currency,
		CurrencySymbol:      currency.Symbol(trip.Currency),
		Members:             summaries,
		Balances:            report.Balances,
		OutstandingBalances: adjusted.Balances,
		SpentAmounts:        report.SpentAmounts,
		PersonShares:        report.PersonShares,
		TotalExpense:        report.TotalExpense,
		Transactions:        adjusted.Transactions,
	}, nil
}

// RecordSettlement validates a settlement against the current outstanding
// plan, appends it to the ledger as completed, and returns the adjusted
// state. A settlement matching a suggested transaction is capped at the
// suggestion; any other pair is custom and uncapped.
func (s *ReportService) RecordSettlement(ctx context.Context, userID, tripID string, req SettlementRequest) (*SettlementResult, error) {
	slog.Info("RecordSettlement request received", "trip_id", tripID,
		"payer", req.Payer, "receiver", req.Receiver, "amount", req.Amount)

	if _, err := ownedTrip(ctx, s.store, tripID, userID); err != nil {
		return nil, err
	}

	members, _, adjusted, err := s.computeTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	suggestion := findTransaction(adjusted.Transactions, req.Payer, req.Receiver)
	if err := validateSettlementRequest(req, members, suggestion); err != nil {
		slog.Warn("RecordSettlement rejected", "trip_id", tripID, "error", err)
		return nil, err
	}

	settlement := &models.Settlement{
		TripID:      tripID,
		Payer:       req.Payer,
		Receiver:    req.Receiver,
		Amount:      req.Amount,
		ProcessedBy: middleware.GetEmail(ctx),
		Status:      models.SettlementCompleted,
	}
	if suggestion != nil {
		settlement.OriginalAmount = suggestion.Amount
		settlement.OriginalPayer = suggestion.From
		settlement.OriginalReceiver = suggestion.To
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		slog.Error("RecordSettlement failed", "trip_id", tripID, "error", err)
		return nil, err
	}

	result := calculator.ApplySettlement(adjusted.Balances, calculator.Event{
		Payer:     settlement.Payer,
		Receiver:  settlement.Receiver,
		Amount:    settlement.Amount,
		Completed: true,
	})

	metrics.SettlementsRecorded.Inc()
	slog.Info("Settlement recorded", "trip_id", tripID, "settlement_id", settlement.ID)

	return &SettlementResult{
		Settlement:   settlement,
		Balances:     result.Balances,
		Transactions: result.Transactions,
	}, nil
}

// PreviewSettlement applies a settlement to the current outstanding balances
// without persisting anything, for optimistic client updates. The validation
// is identical to RecordSettlement.
func (s *ReportService) PreviewSettlement(ctx context.Context, userID, tripID string, req SettlementRequest) (*SettlementResult, error) {
	if _, err := ownedTrip(ctx, s.store, tripID, userID); err != nil {
		return nil, err
	}

	members, _, adjusted, err := s.computeTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	suggestion := findTransaction(adjusted.Transactions, req.Payer, req.Receiver)
	if err := validateSettlementRequest(req, members, suggestion); err != nil {
		return nil, err
	}

	result := calculator.ApplySettlement(adjusted.Balances, calculator.Event{
		Payer:     req.Payer,
		Receiver:  req.Receiver,
		Amount:    req.Amount,
		Completed: true,
	})

	return &SettlementResult{
		Balances:     result.Balances,
		Transactions: result.Transactions,
	}, nil
}

// ListSettlements retrieves a trip's settlement history, newest first.
// All statuses are returned; only completed ones affect balances.
func (s *ReportService) ListSettlements(ctx context.Context, userID, tripID string) ([]*models.Settlement, error) {
	if _, err := ownedTrip(ctx, s.store, tripID, userID); err != nil {
		return nil, err
	}
	return s.store.ListSettlementsByTrip(ctx, tripID)
}

// computeTrip loads a trip's members, expenses and ledger and runs the
// calculator pipeline: base report, then ledger-adjusted outstanding state.
func (s *ReportService) computeTrip(ctx context.Context, tripID string) ([]*models.Member, *calculator.Report, *calculator.Adjusted, error) {
	members, err := s.store.ListMembers(ctx, tripID)
	if err != nil {
		return nil, nil, nil, err
	}
	expenses, err := s.store.ListExpenses(ctx, tripID)
	if err != nil {
		return nil, nil, nil, err
	}
	settlements, err := s.store.ListSettlementsByTrip(ctx, tripID)
	if err != nil {
		return nil, nil, nil, err
	}

	memberIDs := make([]string, len(members))
	for i, member := range members {
		memberIDs[i] = member.ID
	}

	calcExpenses := make([]calculator.Expense, len(expenses))
	for i, expense := range expenses {
		calcExpenses[i] = calculator.Expense{
			Amount:       expense.Amount,
			PaidBy:       expense.PaidBy,
			Participants: expense.Participants,
		}
	}

	report, err := calculator.ComputeBalances(memberIDs, calcExpenses)
	if err != nil {
		return nil, nil, nil, err
	}

	events := make([]calculator.Event, len(settlements))
	for i, settlement := range settlements {
		events[i] = calculator.Event{
			Payer:     settlement.Payer,
			Receiver:  settlement.Receiver,
			Amount:    settlement.Amount,
			Completed: settlement.Status == models.SettlementCompleted,
		}
	}

	return members, report, calculator.ApplyLedger(report.Balances, events), nil
}

// findTransaction locates the suggested transaction for a payer/receiver
// pair, or nil if the pair has no suggestion (custom settlement).
func findTransaction(transactions []calculator.Transaction, payer, receiver string) *calculator.Transaction {
	for i := range transactions {
		if transactions[i].From == payer && transactions[i].To == receiver {
			return &transactions[i]
		}
	}
	return nil
}

// validateSettlementRequest runs the field validator with the suggestion cap
// and layers on the trip-membership checks.
func validateSettlementRequest(req SettlementRequest, members []*models.Member, suggestion *calculator.Transaction) error {
	maxAmount := calculator.NoCap
	if suggestion != nil {
		maxAmount = suggestion.Amount
	}

	result := calculator.ValidateSettlement(req.Amount, req.Payer, req.Receiver, maxAmount)
	fields := result.Errors

	memberSet := make(map[string]bool, len(members))
	for _, member := range members {
		memberSet[member.ID] = true
	}
	if req.Payer != "" && !memberSet[req.Payer] {
		fields["payer"] = "payer must be a trip member"
	}
	if req.Receiver != "" && !memberSet[req.Receiver] {
		fields["receiver"] = "receiver must be a trip member"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
