package models

// SettlementStatus is the lifecycle state of a recorded settlement.
// Only completed settlements adjust balances; other states are kept for
// history display.
type SettlementStatus string

const (
	SettlementCompleted SettlementStatus = "completed"
	SettlementPending   SettlementStatus = "pending"
	SettlementFailed    SettlementStatus = "failed"
)

// Settlement represents a real-world payment between two trip members,
// recorded to reduce their outstanding balances. Settlements are append-only.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// TripID is the trip this settlement belongs to.
	TripID string

	// Payer is the member ID of the person who paid.
	Payer string

	// Receiver is the member ID of the person who was paid.
	Receiver string

	// Amount is the payment amount. May be less than the suggested amount
	// for a partial settlement.
	Amount float64

	// OriginalAmount, OriginalPayer and OriginalReceiver record the suggested
	// transaction this settlement was made against. Zero-valued for custom
	// settlements that did not originate from a suggestion.
	OriginalAmount   float64
	OriginalPayer    string
	OriginalReceiver string

	// ProcessedBy is the email of the user who recorded the settlement.
	ProcessedBy string

	// Status is the settlement lifecycle state.
	Status SettlementStatus

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64
}
