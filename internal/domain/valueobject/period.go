package valueobject

import (
	"fmt"
	"strings"
	"time"
)

// periodLayout is the reference layout of a period label (YYYY-MM).
const periodLayout = "2006-01"

// dateLayout is the reference layout of a daily expense date (YYYY-MM-DD).
const dateLayout = "2006-01-02"

// monthNames holds the Turkish month names used in period labels.
var monthNames = map[time.Month]string{
	time.January:   "Ocak",
	time.February:  "Şubat",
	time.March:     "Mart",
	time.April:     "Nisan",
	time.May:       "Mayıs",
	time.June:      "Haziran",
	time.July:      "Temmuz",
	time.August:    "Ağustos",
	time.September: "Eylül",
	time.October:   "Ekim",
	time.November:  "Kasım",
	time.December:  "Aralık",
}

// Period identifies one budgeting month using the YYYY-MM label.
// The fixed width of the label makes lexicographic order chronological.
type Period string

// PeriodOf returns the period containing the given instant.
func PeriodOf(t time.Time) Period {
	return Period(t.Format(periodLayout))
}

// ParsePeriod validates and returns a period label.
func ParsePeriod(label string) (Period, error) {
	label = strings.TrimSpace(label)
	if len(label) != len(periodLayout) {
		return "", fmt.Errorf("invalid period %q: expected YYYY-MM", label)
	}
	if _, err := time.Parse(periodLayout, label); err != nil {
		return "", fmt.Errorf("invalid period %q: %w", label, err)
	}
	return Period(label), nil
}

// IsValid reports whether the period is a well formed YYYY-MM label.
func (p Period) IsValid() bool {
	_, err := ParsePeriod(string(p))
	return err == nil
}

// String returns the period label.
func (p Period) String() string {
	return string(p)
}

// Start returns the first day of the period in UTC.
func (p Period) Start() (time.Time, error) {
	t, err := time.Parse(periodLayout, string(p))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid period %q: %w", p, err)
	}
	return t, nil
}

// Bounds returns the first and the last day of the period.
func (p Period) Bounds() (start, end time.Time, err error) {
	start, err = p.Start()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 1, -1), nil
}

// Next returns the period that follows p.
func (p Period) Next() (Period, error) {
	start, err := p.Start()
	if err != nil {
		return "", err
	}
	return PeriodOf(start.AddDate(0, 1, 0)), nil
}

// Before reports whether p is strictly earlier than other.
func (p Period) Before(other Period) bool {
	return p < other
}

// Contains reports whether a YYYY-MM-DD date belongs to the period.
func (p Period) Contains(date string) bool {
	return strings.HasPrefix(date, string(p)+"-")
}

// Label returns a human readable label such as "Mart 2025".
func (p Period) Label() string {
	start, err := p.Start()
	if err != nil {
		return string(p)
	}
	return fmt.Sprintf("%s %d", monthNames[start.Month()], start.Year())
}

// ParseDate validates a YYYY-MM-DD date. RFC 3339 timestamps are
// truncated to their date part.
func ParseDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) > len(dateLayout) && raw[len(dateLayout)] == 'T' {
		raw = raw[:len(dateLayout)]
	}
	if _, err := time.Parse(dateLayout, raw); err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", raw)
	}
	return raw, nil
}

// DateOf formats an instant as a YYYY-MM-DD date.
func DateOf(t time.Time) string {
	return t.Format(dateLayout)
}
