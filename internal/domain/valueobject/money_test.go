package valueobject

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "plain integer", input: "10000", expected: "10000"},
		{name: "dot decimal", input: "1234.56", expected: "1234.56"},
		{name: "turkish notation", input: "1.234,56", expected: "1234.56"},
		{name: "negative", input: "-500", expected: "-500"},
		{name: "lira suffix", input: "250,5 ₺", expected: "250.5"},
		{name: "rounds to minor unit", input: "10.005", expected: "10.01"},
		{name: "empty", input: "  ", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got %s", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestSumAmounts(t *testing.T) {
	got := SumAmounts(decimal.NewFromInt(-500), decimal.NewFromInt(200), decimal.RequireFromString("0.10"))
	if !got.Equal(decimal.RequireFromString("-299.90")) {
		t.Errorf("expected -299.90, got %s", got)
	}
	if !SumAmounts().IsZero() {
		t.Error("expected zero for empty sum")
	}
}

func TestFormatTRY(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{name: "grouped with comma decimals", amount: "1234.5", expected: "1.234,50 ₺"},
		{name: "zero", amount: "0", expected: "0,00 ₺"},
		{name: "below one lira", amount: "-0.5", expected: "-0,50 ₺"},
		{name: "rounded half up", amount: "1234.565", expected: "1.234,57 ₺"},
		{name: "beyond float precision", amount: "12345678901234567.89", expected: "12.345.678.901.234.567,89 ₺"},
		{name: "beyond int64", amount: "123456789012345678901.23", expected: "123.456.789.012.345.678.901,23 ₺"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTRY(decimal.RequireFromString(tt.amount)); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}

	due := FormatDue(decimal.NewFromInt(-1500))
	if strings.Contains(due, "-") {
		t.Errorf("expected absolute amount, got %q", due)
	}
}
