package valueobject

import (
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "2025-01"},
		{input: "1999-12"},
		{input: "2025-13", wantErr: true},
		{input: "2025-1", wantErr: true},
		{input: "2025/01", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParsePeriod(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPeriodNext(t *testing.T) {
	tests := []struct {
		current  Period
		expected Period
	}{
		{current: "2025-01", expected: "2025-02"},
		{current: "2025-12", expected: "2026-01"},
		{current: "2024-02", expected: "2024-03"},
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			got, err := tt.current.Next()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
			if !tt.current.Before(got) {
				t.Errorf("expected %s to be before %s", tt.current, got)
			}
		})
	}

	if _, err := Period("bogus").Next(); err == nil {
		t.Error("expected error for invalid period")
	}
}

func TestPeriodContains(t *testing.T) {
	p := Period("2025-03")

	if !p.Contains("2025-03-15") {
		t.Error("expected 2025-03-15 to be in 2025-03")
	}
	if p.Contains("2025-04-01") {
		t.Error("expected 2025-04-01 not to be in 2025-03")
	}
	if p.Contains("2025-031") {
		t.Error("expected malformed date not to match")
	}
}

func TestPeriodBoundsAndLabel(t *testing.T) {
	start, end, err := Period("2024-02").Bounds()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Day() != 1 || end.Day() != 29 {
		t.Errorf("expected 1..29, got %d..%d", start.Day(), end.Day())
	}

	if got := Period("2025-08").Label(); got != "Ağustos 2025" {
		t.Errorf("expected Ağustos 2025, got %s", got)
	}
	if got := PeriodOf(time.Date(2025, 11, 30, 23, 0, 0, 0, time.UTC)); got != "2025-11" {
		t.Errorf("expected 2025-11, got %s", got)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-03-04T10:20:30.000Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2025-03-04" {
		t.Errorf("expected 2025-03-04, got %s", got)
	}
	if _, err := ParseDate("04/03/2025"); err == nil {
		t.Error("expected error for non ISO date")
	}
}
