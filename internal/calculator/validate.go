package calculator

import (
	"fmt"
	"math"
)

// NoCap is the max amount for custom settlements that did not originate from
// a suggested transaction.
var NoCap = math.Inf(1)

// ValidationResult reports every violated field at once so a caller can
// highlight all invalid inputs in a single pass.
type ValidationResult struct {
	Valid  bool
	Errors map[string]string // field name -> message
}

// ValidateSettlement checks a proposed settlement against the business rules:
// the amount must be positive and, when the settlement is made against a
// suggested transaction, must not exceed that suggestion; payer and receiver
// must both be present and differ. The cap comparison happens at 2-decimal
// rounding so float drift in a suggested amount never rejects paying it in
// full.
//
// Always returns a result, never an error.
func ValidateSettlement(amount float64, payer, receiver string, maxAmount float64) ValidationResult {
	errors := make(map[string]string)

	if amount <= 0 {
		errors["amount"] = "amount must be greater than 0"
	} else if !math.IsInf(maxAmount, 1) && round2(amount) > round2(maxAmount) {
		errors["amount"] = fmt.Sprintf("amount cannot exceed %.2f", maxAmount)
	}

	if payer == "" {
		errors["payer"] = "please select who is paying"
	}
	if receiver == "" {
		errors["receiver"] = "please select who is receiving"
	}
	if payer != "" && receiver != "" && payer == receiver {
		errors["receiver"] = "payer and receiver cannot be the same person"
	}

	return ValidationResult{
		Valid:  len(errors) == 0,
		Errors: errors,
	}
}

// round2 rounds to 2 decimal places, the presentation granularity.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
