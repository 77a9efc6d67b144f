package currency

import "testing"

func TestSymbol(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"USD", "$"},
		{"EUR", "€"},
		{"INR", "₹"},
		{"GBP", "£"},
		{"JPY", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Symbol(tt.code); got != tt.want {
			t.Errorf("Symbol(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		amount float64
		code   string
		want   string
	}{
		{50, "USD", "$50.00"},
		{33.333333333, "INR", "₹33.33"},
		{-12.5, "GBP", "£-12.50"},
		{0.005, "EUR", "€0.01"},
		{7.1, "XXX", "7.10"},
	}

	for _, tt := range tests {
		if got := Format(tt.amount, tt.code); got != tt.want {
			t.Errorf("Format(%v, %q) = %q, want %q", tt.amount, tt.code, got, tt.want)
		}
	}
}
