package service

import (
	"context"
	"log/slog"

	"github.com/tripsplit/tripsplit/internal/auth"
	"github.com/tripsplit/tripsplit/internal/models"
	"github.com/tripsplit/tripsplit/internal/storage"
)

// TripService manages trips, their members and their expenses.
type TripService struct {
	store storage.Store
}

// NewTripService creates a new TripService with the given storage backend.
func NewTripService(store storage.Store) *TripService {
	return &TripService{store: store}
}

// TripRequest carries the user-editable trip fields. An empty passcode on
// update clears protection.
type TripRequest struct {
	Name     string
	Date     string
	Currency string
	Passcode string
}

// ExpenseRequest carries the user-editable expense fields. PaidBy and
// Participants are member IDs.
type ExpenseRequest struct {
	Name         string
	Amount       float64
	PaidBy       string
	Participants []string
	Description  string
}

// CreateTrip creates a trip owned by the given user.
func (s *TripService) CreateTrip(ctx context.Context, ownerID string, req TripRequest) (*models.Trip, error) {
	slog.Info("CreateTrip request received", "owner_id", ownerID, "name", req.Name)

	if req.Name == "" {
		return nil, &ValidationError{Fields: map[string]string{"name": "trip name is required"}}
	}

	passcodeHash, err := auth.HashPasscode(req.Passcode)
	if err != nil {
		return nil, err
	}

	trip := &models.Trip{
		OwnerID:      ownerID,
		Name:         req.Name,
		Date:         req.Date,
		Currency:     req.Currency,
		PasscodeHash: passcodeHash,
	}
	if err := s.store.CreateTrip(ctx, trip); err != nil {
		slog.Error("CreateTrip failed", "error", err)
		return nil, err
	}

	slog.Info("Trip created", "trip_id", trip.ID)
	return trip, nil
}

// GetTrip retrieves one of the user's trips.
func (s *TripService) GetTrip(ctx context.Context, userID, tripID string) (*models.Trip, error) {
	return ownedTrip(ctx, s.store, tripID, userID)
}

// ListTrips retrieves all trips owned by the user, newest first.
func (s *TripService) ListTrips(ctx context.Context, userID string) ([]*models.Trip, error) {
	return s.store.ListTripsByOwner(ctx, userID)
}

// UpdateTrip updates a trip's editable fields.
func (s *TripService) UpdateTrip(ctx context.Context, userID, tripID string, req TripRequest) (*models.Trip, error) {
	slog.Info("UpdateTrip request received", "trip_id", tripID)

	trip, err := ownedTrip(ctx, s.store, tripID, userID)
	if err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, &ValidationError{Fields: map[string]string{"name": "trip name is required"}}
	}

	passcodeHash, err := auth.HashPasscode(req.Passcode)
	if err != nil {
		return nil, err
	}

	trip.Name = req.Name
	trip.Date = req.Date
	trip.Currency = req.Currency
	trip.PasscodeHash = passcodeHash
	if err := s.store.UpdateTrip(ctx, trip); err != nil {
		slog.Error("UpdateTrip failed", "trip_id", tripID, "error", err)
		return nil, err
	}

	slog.Info("Trip updated", "trip_id", tripID)
	return trip, nil
}

// DeleteTrip removes a trip and everything it owns.
func (s *TripService) DeleteTrip(ctx context.Context, userID, tripID string) error {
	slog.Info("DeleteTrip request received", "trip_id", tripID)

	if _, err := ownedTrip(ctx, s.store, tripID, userID); err != nil {
		return err
	}
	if err := s.store.DeleteTrip(ctx, tripID); err != nil {
		slog.Error("DeleteTrip failed", "trip_id", tripID, "error", err)
		return err
	}

	slog.Info("Trip deleted", "trip_id", tripID)
	return nil
}

// VerifyPasscode checks an entered passcode against the trip's stored hash.
// Trips without a passcode always grant access.
func (s *TripService) VerifyPasscode(ctx context.Context, userID, tripID, passcode string) (bool, error) {
	trip, err := ownedTrip(ctx, s.store, tripID, userID)
	if err != nil {
		return false, err
	}
	granted := auth.VerifyPasscode(passcode, trip.PasscodeHash)
	slog.Info("Passcode verification", "trip_id", tripID, "granted", granted)
	return granted, nil
}

// AddMember adds a named member to a trip.
func (s *TripService) AddMember(ctx context.Context, userID, tripID, name string) (*models.Member, error) {
	slog.Info("AddMember request received", "trip_id", tripID, "name", name)

	if _, err := ownedTrip(ctx, s.store, tripID, userID); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, &ValidationError{Fields: map[string]string{"name": "member name is required"}}
	}

	member := &models.Member{TripID: tripID, Name: name}
	if err := s.store.AddMember(ctx, member); err != nil {
		slog.Error("AddMember failed", "trip_id", tripID, "error", err)
		return nil, err
	}

	slog.Info("Member added", "trip_id", tripID, "member_id", member.ID)
	return member, nil
}

// ListMembers retrieves a trip's members.
func (s *TripService) ListMembers(ctx context.Context, userID, tripID string) ([]*models.Member, error) {
	if _, err := ownedTrip(ctx, s.store, tripID, userID); err != nil {
		return nil, err
	}
	return s.store.ListMembers(ctx, tripID)
}

// RenameMember changes a member's display name. Members referenced by any
// expense are immutable.
func (s *TripService) RenameMember(ctx context.Context, userID, tripID, memberID, name string) (*models.Member, error) {
	slog.Info("RenameMember request received", "trip_id", tripID, "member_id", memberID)

	member, err := s.tripMember(ctx, userID, tripID, memberID)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, &ValidationError{Fields: map[string]string{"name": "member name is required"}}
	}

	referenced, err := s.store.MemberReferenced(ctx, tripID, memberID)
	if err != nil {
		return nil, err
	}
	if referenced {
		return nil, ErrMemberReferenced
	}

	member.Name = name
	if err := s.store.UpdateMember(ctx, member); err != nil {
		slog.Error("RenameMember failed", "member_id", memberID, "error", err)
		return nil, err
	}

	slog.Info("Member renamed", "member_id", memberID)
	return member, nil
}

// RemoveMember deletes a member. Members referenced by any expense are
// immutable.
func (s *TripService) RemoveMember(ctx context.Context, userID, tripID, memberID string) error {
	slog.Info("RemoveMember request received", "trip_id", tripID, "member_id", memberID)

	if _, err := s.tripMember(ctx, userID, tripID, memberID); err != nil {
		return err
	}

	referenced, err := s.store.MemberReferenced(ctx, tripID, memberID)
	if err != nil {
		return err
	}
	if referenced {
		return ErrMemberReferenced
	}

	if err := s.store.DeleteMember(ctx, memberID); err != nil {
		slog.Error("RemoveMember failed", "member_id", memberID, "error", err)
		return err
	}

	slog.Info("Member removed", "member_id", memberID)
	return nil
}

// AddExpense records a new expense after validating it against the trip's
// member set.
func (s *TripService) AddExpense(ctx context.Context, userID, tripID string, req ExpenseRequest) (*models.Expense, error) {
	slog.Info("AddExpense request received", "trip_id", tripID, "name", req.Name, "amount", req.Amount)

	if _, err := ownedTrip(ctx, s.store, tripID, userID); err != nil {
		return nil, err
	}
	if err := s.validateExpense(ctx, tripID, req); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		TripID:       tripID,
		Name:         req.Name,
		Amount:       req.Amount,
		PaidBy:       req.PaidBy,
		Participants: req.Participants,
		Description:  req.Description,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "trip_id", tripID, "error", err)
		return nil, err
	}

	slog.Info("Expense added", "trip_id", tripID, "expense_id", expense.ID)
	return expense, nil
}

// ListExpenses retrieves a trip's expenses, newest first.
func (s *TripService) ListExpenses(ctx context.Context, userID, tripID string) ([]*models.Expense, error) {
	if _, err := ownedTrip(ctx, s.store, tripID, userID); err != nil {
		return nil, err
	}
	return s.store.ListExpenses(ctx, tripID)
}

// UpdateExpense replaces an expense's fields after revalidation.
func (s *TripService) UpdateExpense(ctx context.Context, userID, tripID, expenseID string, req ExpenseRequest) (*models.Expense, error) {
	slog.Info("UpdateExpense request received", "trip_id", tripID, "expense_id", expenseID)

	expense, err := s.tripExpense(ctx, userID, tripID, expenseID)
	if err != nil {
		return nil, err
	}
	if err := s.validateExpense(ctx, tripID, req); err != nil {
		return nil, err
	}

	expense.Name = req.Name
	expense.Amount = req.Amount
	expense.PaidBy = req.PaidBy
	expense.Participants = req.Participants
	expense.Description = req.Description
	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		slog.Error("UpdateExpense failed", "expense_id", expenseID, "error", err)
		return nil, err
	}

	slog.Info("Expense updated", "expense_id", expenseID)
	return expense, nil
}

// DeleteExpense removes an expense.
func (s *TripService) DeleteExpense(ctx context.Context, userID, tripID, expenseID string) error {
	slog.Info("DeleteExpense request received", "trip_id", tripID, "expense_id", expenseID)

	if _, err := s.tripExpense(ctx, userID, tripID, expenseID); err != nil {
		return err
	}
	if err := s.store.DeleteExpense(ctx, expenseID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", expenseID, "error", err)
		return err
	}

	slog.Info("Expense deleted", "expense_id", expenseID)
	return nil
}

// validateExpense checks an expense request against the trip's member set,
// collecting every violated field.
func (s *TripService) validateExpense(ctx context.Context, tripID string, req ExpenseRequest) error {
	fields := make(map[string]string)

	if req.Amount <= 0 {
		fields["amount"] = "amount must be greater than 0"
	}
	if len(req.Participants) == 0 {
		fields["participants"] = "at least one participant is required"
	}

	members, err := s.store.ListMembers(ctx, tripID)
	if err != nil {
		return err
	}
	memberSet := make(map[string]bool, len(members))
	for _, m := range members {
		memberSet[m.ID] = true
	}

	if !memberSet[req.PaidBy] {
		fields["paidBy"] = "payer must be a trip member"
	}
	seen := make(map[string]bool, len(req.Participants))
	for _, participant := range req.Participants {
		if !memberSet[participant] {
			fields["participants"] = "participants must be trip members"
			break
		}
		if seen[participant] {
			fields["participants"] = "participants must be unique"
			break
		}
		seen[participant] = true
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// tripMember loads a member and verifies trip ownership and membership.
func (s *TripService) tripMember(ctx context.Context, userID, tripID, memberID string) (*models.Member, error) {
	if _, err := ownedTrip(ctx, s.store, tripID, userID); err != nil {
		return nil, err
	}
	member, err := s.store.GetMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member.TripID != tripID {
		return nil, ErrForbidden
	}
	return member, nil
}

// tripExpense loads an expense and verifies trip ownership and containment.
func (s *TripService) tripExpense(ctx context.Context, userID, tripID, expenseID string) (*models.Expense, error) {
	if _, err := ownedTrip(ctx, s.store, tripID, userID); err != nil {
		return nil, err
	}
	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.TripID != tripID {
		return nil, ErrForbidden
	}
	return expense, nil
}
