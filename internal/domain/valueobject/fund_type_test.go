package valueobject

import "testing"

func TestParseFundType(t *testing.T) {
	tests := []struct {
		input    string
		expected FundType
		wantErr  bool
	}{
		{input: "CASH", expected: FundTypeCash},
		{input: "meal_card", expected: FundTypeMealCard},
		{input: "NAKIT", expected: FundTypeCash},
		{input: "YK", expected: FundTypeMealCard},
		{input: "CREDIT", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFundType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
