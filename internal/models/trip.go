package models

// Trip represents a group event whose expenses are split among its members.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID string

	// OwnerID is the user who created the trip. All trip routes are scoped
	// to the owner.
	OwnerID string

	// Name is the display name of the trip (e.g., "Goa 2025").
	Name string

	// Date is a free-form date string supplied by the user. It is stored and
	// echoed back verbatim; nothing is computed from it.
	Date string

	// Currency is the ISO currency code used for display (e.g., "USD").
	// Amounts themselves are currency-agnostic.
	Currency string

	// PasscodeHash is the bcrypt hash of the optional edit passcode.
	// Empty means the trip is not passcode protected.
	PasscodeHash string

	// CreatedAt is the Unix timestamp when the trip was created.
	CreatedAt int64
}

// HasPasscode reports whether the trip requires a passcode for edit access.
func (t *Trip) HasPasscode() bool {
	return t.PasscodeHash != ""
}

// Member represents one person within a trip. Balances, spend totals and
// shares are all keyed by the member ID.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string

	// TripID is the trip this member belongs to.
	TripID string

	// Name is the display name of the member.
	Name string

	// CreatedAt is the Unix timestamp when the member was added.
	CreatedAt int64
}
