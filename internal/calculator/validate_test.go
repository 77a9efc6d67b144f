package calculator

import "testing"

func TestValidateSettlement(t *testing.T) {
	tests := []struct {
		name       string
		amount     float64
		payer      string
		receiver   string
		maxAmount  float64
		wantValid  bool
		wantFields []string
	}{
		{
			name:      "valid capped settlement",
			amount:    25.50,
			payer:     "B",
			receiver:  "A",
			maxAmount: 30,
			wantValid: true,
		},
		{
			name:      "valid custom settlement with no cap",
			amount:    10000,
			payer:     "B",
			receiver:  "A",
			maxAmount: NoCap,
			wantValid: true,
		},
		{
			name:       "zero amount",
			amount:     0,
			payer:      "B",
			receiver:   "A",
			maxAmount:  30,
			wantFields: []string{"amount"},
		},
		{
			name:       "amount exceeds cap",
			amount:     30.01,
			payer:      "B",
			receiver:   "A",
			maxAmount:  30,
			wantFields: []string{"amount"},
		},
		{
			name:      "float drift in cap does not reject full payment",
			amount:    30,
			payer:     "B",
			receiver:  "A",
			maxAmount: 29.999999999999996,
			wantValid: true,
		},
		{
			name:       "missing payer and receiver",
			amount:     10,
			maxAmount:  30,
			wantFields: []string{"payer", "receiver"},
		},
		{
			name:       "payer equals receiver",
			amount:     10,
			payer:      "A",
			receiver:   "A",
			maxAmount:  30,
			wantFields: []string{"receiver"},
		},
		{
			name:       "negative amount and matching pair reported together",
			amount:     -5,
			payer:      "A",
			receiver:   "A",
			maxAmount:  30,
			wantFields: []string{"amount", "receiver"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSettlement(tt.amount, tt.payer, tt.receiver, tt.maxAmount)
			if result.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v (errors: %v)", result.Valid, tt.wantValid, result.Errors)
			}
			for _, field := range tt.wantFields {
				if _, ok := result.Errors[field]; !ok {
					t.Errorf("expected error on field %q, got %v", field, result.Errors)
				}
			}
			if tt.wantValid && len(result.Errors) != 0 {
				t.Errorf("valid result carries errors: %v", result.Errors)
			}
		})
	}
}
