// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/tripsplit/tripsplit/internal/models"
)

// ErrNotFound is wrapped by store implementations when a requested record
// does not exist, so callers can map it to a 404 without string matching.
var ErrNotFound = errors.New("not found")

// Store defines the interface for tripsplit storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateUser persists a new user. Fails if the email is already taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateTrip persists a new trip, populating ID and CreatedAt if unset.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip retrieves a trip by ID.
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// ListTripsByOwner retrieves all trips owned by a user, newest first.
	ListTripsByOwner(ctx context.Context, ownerID string) ([]*models.Trip, error)

	// UpdateTrip updates a trip's name, date, currency and passcode hash.
	UpdateTrip(ctx context.Context, trip *models.Trip) error

	// DeleteTrip removes a trip and everything it owns.
	DeleteTrip(ctx context.Context, tripID string) error

	// AddMember persists a new trip member.
	AddMember(ctx context.Context, member *models.Member) error

	// GetMember retrieves a member by ID.
	GetMember(ctx context.Context, memberID string) (*models.Member, error)

	// ListMembers retrieves all members of a trip in insertion order.
	ListMembers(ctx context.Context, tripID string) ([]*models.Member, error)

	// UpdateMember renames a member.
	UpdateMember(ctx context.Context, member *models.Member) error

	// DeleteMember removes a member. Callers must first check that the
	// member is not referenced by any expense.
	DeleteMember(ctx context.Context, memberID string) error

	// MemberReferenced reports whether any expense of the trip references
	// the member as payer or participant.
	MemberReferenced(ctx context.Context, tripID, memberID string) (bool, error)

	// CreateExpense persists a new expense with its participant rows.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by ID, including participants.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpenses retrieves all expenses of a trip, newest first.
	ListExpenses(ctx context.Context, tripID string) ([]*models.Expense, error)

	// UpdateExpense replaces an expense's fields and participant set.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an expense and its participant rows.
	DeleteExpense(ctx context.Context, expenseID string) error

	// CreateSettlement appends a settlement to the trip's ledger.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// ListSettlementsByTrip retrieves a trip's settlements, newest first.
	ListSettlementsByTrip(ctx context.Context, tripID string) ([]*models.Settlement, error)

	// Close releases any resources held by the store.
	Close() error
}
