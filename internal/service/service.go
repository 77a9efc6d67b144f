// Package service implements the business rules on top of the storage layer:
// ownership checks, member immutability, expense validation, and report and
// settlement assembly around the calculator package.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tripsplit/tripsplit/internal/models"
	"github.com/tripsplit/tripsplit/internal/storage"
)

var (
	// ErrForbidden is returned when a trip exists but belongs to another user.
	ErrForbidden = errors.New("trip does not belong to user")

	// ErrMemberReferenced is returned when renaming or deleting a member who
	// appears in any expense's payer or participant list.
	ErrMemberReferenced = errors.New("member is referenced by an expense and cannot be changed")
)

// ValidationError carries field-level validation failures as data so the API
// layer can return them all at once.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

// ownedTrip loads a trip and verifies it belongs to the given user.
func ownedTrip(ctx context.Context, store storage.Store, tripID, userID string) (*models.Trip, error) {
	trip, err := store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.OwnerID != userID {
		return nil, ErrForbidden
	}
	return trip, nil
}
