// Package currency maps currency codes to display symbols and formats
// amounts at the 2-decimal presentation granularity. It carries no numeric
// logic of its own; the calculator works on abstract amounts.
package currency

import "strconv"

// symbols is the set of currencies the trip picker offers.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"INR": "₹",
	"GBP": "£",
}

// Symbol returns the display symbol for a currency code, or the empty string
// for an unknown code.
func Symbol(code string) string {
	return symbols[code]
}

// Codes returns the supported currency codes in a fixed order, for pickers.
func Codes() []string {
	return []string{"INR", "USD", "EUR", "GBP"}
}

// Format renders an amount with its currency symbol and exactly two decimal
// places. This is the only place amounts are rounded; the calculator
// accumulates at full precision.
func Format(amount float64, code string) string {
	return Symbol(code) + strconv.FormatFloat(amount, 'f', 2, 64)
}
