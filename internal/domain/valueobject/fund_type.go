package valueobject

import (
	"fmt"
	"strings"
)

// FundType identifies the budget a daily entry is drawn from.
type FundType string

const (
	FundTypeCash     FundType = "CASH"
	FundTypeMealCard FundType = "MEAL_CARD"
)

// legacyFundTypes maps the fund names used by older backups.
var legacyFundTypes = map[string]FundType{
	"NAKIT": FundTypeCash,
	"YK":    FundTypeMealCard,
}

// ParseFundType returns the fund type for a label, accepting legacy names.
func ParseFundType(raw string) (FundType, error) {
	label := strings.ToUpper(strings.TrimSpace(raw))
	switch FundType(label) {
	case FundTypeCash, FundTypeMealCard:
		return FundType(label), nil
	}
	if ft, ok := legacyFundTypes[label]; ok {
		return ft, nil
	}
	return "", fmt.Errorf("invalid fund type %q: must be CASH or MEAL_CARD", raw)
}

// IsValid reports whether the fund type is known.
func (f FundType) IsValid() bool {
	return f == FundTypeCash || f == FundTypeMealCard
}
