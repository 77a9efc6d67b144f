package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/tripsplit/tripsplit/internal/models"
	"github.com/tripsplit/tripsplit/internal/storage/sqlite"
)

// newTestStore creates a SQLite store on a temp file with one registered user.
func newTestStore(t *testing.T) (*sqlite.SQLiteStore, *models.User) {
	t.Helper()

	tempDir := t.TempDir()
	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	user := models.NewUser("owner@example.com", "Owner", "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return store, user
}

func TestTripService_CRUD(t *testing.T) {
	store, owner := newTestStore(t)
	svc := NewTripService(store)
	ctx := context.Background()

	trip, err := svc.CreateTrip(ctx, owner.ID, TripRequest{Name: "Goa", Date: "2026-01-10", Currency: "INR"})
	if err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}
	if trip.ID == "" {
		t.Fatal("expected trip ID to be generated")
	}

	trips, err := svc.ListTrips(ctx, owner.ID)
	if err != nil || len(trips) != 1 {
		t.Fatalf("ListTrips = %v, %v, want one trip", trips, err)
	}

	updated, err := svc.UpdateTrip(ctx, owner.ID, trip.ID, TripRequest{Name: "Goa 2026", Currency: "USD"})
	if err != nil {
		t.Fatalf("UpdateTrip failed: %v", err)
	}
	if updated.Name != "Goa 2026" || updated.Currency != "USD" {
		t.Errorf("UpdateTrip = %+v, want renamed trip", updated)
	}

	if err := svc.DeleteTrip(ctx, owner.ID, trip.ID); err != nil {
		t.Fatalf("DeleteTrip failed: %v", err)
	}
	if _, err := svc.GetTrip(ctx, owner.ID, trip.ID); err == nil {
		t.Error("expected GetTrip to fail after delete")
	}
}

func TestTripService_OwnershipEnforced(t *testing.T) {
	store, owner := newTestStore(t)
	svc := NewTripService(store)
	ctx := context.Background()

	intruder := models.NewUser("other@example.com", "Other", "hash")
	if err := store.CreateUser(ctx, intruder); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	trip, err := svc.CreateTrip(ctx, owner.ID, TripRequest{Name: "Private"})
	if err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}

	if _, err := svc.GetTrip(ctx, intruder.ID, trip.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if err := svc.DeleteTrip(ctx, intruder.ID, trip.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestTripService_MemberImmutableOnceReferenced(t *testing.T) {
	store, owner := newTestStore(t)
	svc := NewTripService(store)
	ctx := context.Background()

	trip, err := svc.CreateTrip(ctx, owner.ID, TripRequest{Name: "Trip"})
	if err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}
	alice, err := svc.AddMember(ctx, owner.ID, trip.ID, "Alice")
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	bob, err := svc.AddMember(ctx, owner.ID, trip.ID, "Bob")
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}

	// Before any expense, members can be renamed and removed.
	if _, err := svc.RenameMember(ctx, owner.ID, trip.ID, alice.ID, "Alicia"); err != nil {
		t.Fatalf("RenameMember failed: %v", err)
	}

	_, err = svc.AddExpense(ctx, owner.ID, trip.ID, ExpenseRequest{
		Name:         "Dinner",
		Amount:       100,
		PaidBy:       alice.ID,
		Participants: []string{alice.ID, bob.ID},
	})
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	if _, err := svc.RenameMember(ctx, owner.ID, trip.ID, alice.ID, "Al"); !errors.Is(err, ErrMemberReferenced) {
		t.Errorf("expected ErrMemberReferenced on rename, got %v", err)
	}
	if err := svc.RemoveMember(ctx, owner.ID, trip.ID, bob.ID); !errors.Is(err, ErrMemberReferenced) {
		t.Errorf("expected ErrMemberReferenced on remove, got %v", err)
	}
}

func TestTripService_ExpenseValidation(t *testing.T) {
	store, owner := newTestStore(t)
	svc := NewTripService(store)
	ctx := context.Background()

	trip, err := svc.CreateTrip(ctx, owner.ID, TripRequest{Name: "Trip"})
	if err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}
	alice, err := svc.AddMember(ctx, owner.ID, trip.ID, "Alice")
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}

	tests := []struct {
		name       string
		req        ExpenseRequest
		wantFields []string
	}{
		{
			name:       "non-positive amount and empty participants",
			req:        ExpenseRequest{Name: "Bad", Amount: 0, PaidBy: alice.ID},
			wantFields: []string{"amount", "participants"},
		},
		{
			name:       "payer is not a member",
			req:        ExpenseRequest{Name: "Bad", Amount: 10, PaidBy: "stranger", Participants: []string{alice.ID}},
			wantFields: []string{"paidBy"},
		},
		{
			name:       "participant is not a member",
			req:        ExpenseRequest{Name: "Bad", Amount: 10, PaidBy: alice.ID, Participants: []string{"stranger"}},
			wantFields: []string{"participants"},
		},
		{
			name:       "duplicate participants",
			req:        ExpenseRequest{Name: "Bad", Amount: 10, PaidBy: alice.ID, Participants: []string{alice.ID, alice.ID}},
			wantFields: []string{"participants"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddExpense(ctx, owner.ID, trip.ID, tt.req)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			for _, field := range tt.wantFields {
				if _, ok := validationErr.Fields[field]; !ok {
					t.Errorf("expected error on field %q, got %v", field, validationErr.Fields)
				}
			}
		})
	}
}

func TestTripService_Passcode(t *testing.T) {
	store, owner := newTestStore(t)
	svc := NewTripService(store)
	ctx := context.Background()

	open, err := svc.CreateTrip(ctx, owner.ID, TripRequest{Name: "Open"})
	if err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}
	locked, err := svc.CreateTrip(ctx, owner.ID, TripRequest{Name: "Locked", Passcode: "1234"})
	if err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}
	if !locked.HasPasscode() {
		t.Error("expected passcode hash to be set")
	}

	granted, err := svc.VerifyPasscode(ctx, owner.ID, open.ID, "")
	if err != nil || !granted {
		t.Errorf("unprotected trip should grant access, got %v %v", granted, err)
	}

	granted, err = svc.VerifyPasscode(ctx, owner.ID, locked.ID, "1234")
	if err != nil || !granted {
		t.Errorf("correct passcode should grant access, got %v %v", granted, err)
	}

	granted, err = svc.VerifyPasscode(ctx, owner.ID, locked.ID, "9999")
	if err != nil || granted {
		t.Errorf("wrong passcode should deny access, got %v %v", granted, err)
	}
}
