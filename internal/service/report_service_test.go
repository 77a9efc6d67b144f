package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/tripsplit/tripsplit/internal/middleware"
	"github.com/tripsplit/tripsplit/internal/models"
	"github.com/tripsplit/tripsplit/internal/storage"
)

// seedTrip builds a trip with three members and one 90.00 expense paid by the
// first member, split equally. The resulting balances are +60, -30, -30.
func seedTrip(t *testing.T, store storage.Store, ownerID string) (*models.Trip, []*models.Member) {
	t.Helper()
	ctx := context.Background()
	trips := NewTripService(store)

	trip, err := trips.CreateTrip(ctx, ownerID, TripRequest{Name: "Beach", Currency: "USD"})
	if err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}

	var members []*models.Member
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		member, err := trips.AddMember(ctx, ownerID, trip.ID, name)
		if err != nil {
			t.Fatalf("AddMember failed: %v", err)
		}
		members = append(members, member)
	}

	_, err = trips.AddExpense(ctx, ownerID, trip.ID, ExpenseRequest{
		Name:         "Hotel",
		Amount:       90,
		PaidBy:       members[0].ID,
		Participants: []string{members[0].ID, members[1].ID, members[2].ID},
	})
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	return trip, members
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

func TestReportService_GetReport(t *testing.T) {
	store, owner := newTestStore(t)
	svc := NewReportService(store)
	ctx := context.Background()

	trip, members := seedTrip(t, store, owner.ID)
	alice, bob, carol := members[0], members[1], members[2]

	report, err := svc.GetReport(ctx, owner.ID, trip.ID)
	if err != nil {
		t.Fatalf("GetReport failed: %v", err)
	}

	if report.CurrencySymbol != "$" {
		t.Errorf("CurrencySymbol = %q, want $", report.CurrencySymbol)
	}
	if len(report.Members) != 3 {
		t.Errorf("got %d member summaries, want 3", len(report.Members))
	}
	if !approxEqual(report.TotalExpense, 90) {
		t.Errorf("TotalExpense = %v, want 90", report.TotalExpense)
	}

	wantBalances := map[string]float64{alice.ID: 60, bob.ID: -30, carol.ID: -30}
	for id, want := range wantBalances {
		if !approxEqual(report.Balances[id], want) {
			t.Errorf("Balances[%s] = %v, want %v", id, report.Balances[id], want)
		}
		// No settlements yet, so outstanding matches the base balances.
		if !approxEqual(report.OutstandingBalances[id], want) {
			t.Errorf("OutstandingBalances[%s] = %v, want %v", id, report.OutstandingBalances[id], want)
		}
	}

	if len(report.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(report.Transactions))
	}
	for _, tx := range report.Transactions {
		if tx.To != alice.ID || !approxEqual(tx.Amount, 30) {
			t.Errorf("unexpected transaction %+v, want 30 owed to %s", tx, alice.ID)
		}
	}
}

func TestReportService_RecordSettlement(t *testing.T) {
	store, owner := newTestStore(t)
	svc := NewReportService(store)
	ctx := context.WithValue(context.Background(), middleware.EmailKey, owner.Email)

	trip, members := seedTrip(t, store, owner.ID)
	alice, bob, carol := members[0], members[1], members[2]

	result, err := svc.RecordSettlement(ctx, owner.ID, trip.ID, SettlementRequest{
		Payer:    bob.ID,
		Receiver: alice.ID,
		Amount:   30,
	})
	if err != nil {
		t.Fatalf("RecordSettlement failed: %v", err)
	}

	settlement := result.Settlement
	if settlement == nil || settlement.ID == "" {
		t.Fatal("expected a persisted settlement")
	}
	if settlement.Status != models.SettlementCompleted {
		t.Errorf("Status = %q, want completed", settlement.Status)
	}
	if settlement.ProcessedBy != owner.Email {
		t.Errorf("ProcessedBy = %q, want %q", settlement.ProcessedBy, owner.Email)
	}
	if !approxEqual(settlement.OriginalAmount, 30) || settlement.OriginalPayer != bob.ID {
		t.Errorf("expected suggestion snapshot, got %+v", settlement)
	}

	if !approxEqual(result.Balances[alice.ID], 30) || !approxEqual(result.Balances[bob.ID], 0) {
		t.Errorf("adjusted balances = %v, want Alice 30 and Bob 0", result.Balances)
	}
	if len(result.Transactions) != 1 || result.Transactions[0].From != carol.ID {
		t.Errorf("remaining transactions = %v, want one from Carol", result.Transactions)
	}

	settlements, err := svc.ListSettlements(ctx, owner.ID, trip.ID)
	if err != nil || len(settlements) != 1 {
		t.Fatalf("ListSettlements = %v, %v, want one settlement", settlements, err)
	}

	// A later report folds the ledger into the outstanding state.
	report, err := svc.GetReport(ctx, owner.ID, trip.ID)
	if err != nil {
		t.Fatalf("GetReport failed: %v", err)
	}
	if !approxEqual(report.Balances[bob.ID], -30) {
		t.Errorf("base Balances[bob] = %v, want -30", report.Balances[bob.ID])
	}
	if !approxEqual(report.OutstandingBalances[bob.ID], 0) {
		t.Errorf("OutstandingBalances[bob] = %v, want 0", report.OutstandingBalances[bob.ID])
	}
}

func TestReportService_RecordSettlement_Validation(t *testing.T) {
	store, owner := newTestStore(t)
	svc := NewReportService(store)
	ctx := context.Background()

	trip, members := seedTrip(t, store, owner.ID)
	alice, bob := members[0], members[1]

	tests := []struct {
		name      string
		req       SettlementRequest
		wantField string
	}{
		{
			name:      "amount exceeds suggested transaction",
			req:       SettlementRequest{Payer: bob.ID, Receiver: alice.ID, Amount: 50},
			wantField: "amount",
		},
		{
			name:      "non-positive amount",
			req:       SettlementRequest{Payer: bob.ID, Receiver: alice.ID, Amount: 0},
			wantField: "amount",
		},
		{
			name:      "payer is not a trip member",
			req:       SettlementRequest{Payer: "stranger", Receiver: alice.ID, Amount: 10},
			wantField: "payer",
		},
		{
			name:      "payer and receiver identical",
			req:       SettlementRequest{Payer: bob.ID, Receiver: bob.ID, Amount: 10},
			wantField: "receiver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RecordSettlement(ctx, owner.ID, trip.ID, tt.req)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if _, ok := validationErr.Fields[tt.wantField]; !ok {
				t.Errorf("expected error on field %q, got %v", tt.wantField, validationErr.Fields)
			}
		})
	}

	// Nothing should have been persisted by the rejected attempts.
	settlements, err := svc.ListSettlements(ctx, owner.ID, trip.ID)
	if err != nil || len(settlements) != 0 {
		t.Errorf("ListSettlements = %v, %v, want none", settlements, err)
	}
}

func TestReportService_RecordSettlement_CustomUncapped(t *testing.T) {
	store, owner := newTestStore(t)
	svc := NewReportService(store)
	ctx := context.Background()

	trip, members := seedTrip(t, store, owner.ID)
	bob, carol := members[1], members[2]

	// Bob paying Carol matches no suggested transaction, so any positive
	// amount is accepted and no suggestion snapshot is recorded.
	result, err := svc.RecordSettlement(ctx, owner.ID, trip.ID, SettlementRequest{
		Payer:    bob.ID,
		Receiver: carol.ID,
		Amount:   100,
	})
	if err != nil {
		t.Fatalf("RecordSettlement failed: %v", err)
	}
	if result.Settlement.OriginalPayer != "" || result.Settlement.OriginalAmount != 0 {
		t.Errorf("expected no suggestion snapshot, got %+v", result.Settlement)
	}
	if !approxEqual(result.Balances[bob.ID], 70) || !approxEqual(result.Balances[carol.ID], -130) {
		t.Errorf("adjusted balances = %v, want Bob 70 and Carol -130", result.Balances)
	}
}

func TestReportService_PreviewSettlement(t *testing.T) {
	store, owner := newTestStore(t)
	svc := NewReportService(store)
	ctx := context.Background()

	trip, members := seedTrip(t, store, owner.ID)
	alice, bob := members[0], members[1]

	result, err := svc.PreviewSettlement(ctx, owner.ID, trip.ID, SettlementRequest{
		Payer:    bob.ID,
		Receiver: alice.ID,
		Amount:   30,
	})
	if err != nil {
		t.Fatalf("PreviewSettlement failed: %v", err)
	}
	if result.Settlement != nil {
		t.Error("preview should not produce a persisted settlement")
	}
	if !approxEqual(result.Balances[bob.ID], 0) {
		t.Errorf("Balances[bob] = %v, want 0", result.Balances[bob.ID])
	}

	settlements, err := svc.ListSettlements(ctx, owner.ID, trip.ID)
	if err != nil || len(settlements) != 0 {
		t.Errorf("ListSettlements = %v, %v, want none after preview", settlements, err)
	}

	// Previews are validated exactly like real settlements.
	_, err = svc.PreviewSettlement(ctx, owner.ID, trip.ID, SettlementRequest{
		Payer:    bob.ID,
		Receiver: alice.ID,
		Amount:   50,
	})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("expected ValidationError for over-cap preview, got %v", err)
	}
}

func TestReportService_EmptyTrip(t *testing.T) {
	store, owner := newTestStore(t)
	trips := NewTripService(store)
	svc := NewReportService(store)
	ctx := context.Background()

	trip, err := trips.CreateTrip(ctx, owner.ID, TripRequest{Name: "Empty"})
	if err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}

	report, err := svc.GetReport(ctx, owner.ID, trip.ID)
	if err != nil {
		t.Fatalf("GetReport failed: %v", err)
	}
	if report.TotalExpense != 0 || len(report.Transactions) != 0 {
		t.Errorf("empty trip report = %+v, want zero totals and no transactions", report)
	}
}
