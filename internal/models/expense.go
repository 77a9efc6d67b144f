package models

// Expense represents an amount paid by one member on behalf of a set of
// participants. The amount is split equally among the participants.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// TripID is the trip this expense belongs to.
	TripID string

	// Name is the short label for the expense (e.g., "Dinner").
	Name string

	// Amount is the full amount paid. Must be positive.
	Amount float64

	// PaidBy is the member ID of the payer.
	PaidBy string

	// Participants are the member IDs sharing this expense. Must be non-empty
	// and free of duplicates; the payer may or may not be among them.
	Participants []string

	// Description is optional free text.
	Description string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	// Used only for ordering in listings, never for calculation.
	CreatedAt int64
}
