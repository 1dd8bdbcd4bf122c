package valueobject

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySuffix is appended to formatted amounts.
const CurrencySuffix = "₺"

var trPrinter = message.NewPrinter(language.Turkish)

// FormatTRY formats an amount with Turkish separators and the lira suffix,
// e.g. "1.234,50 ₺".
func FormatTRY(amount decimal.Decimal) string {
	rounded := RoundMoney(amount)
	whole, fraction, _ := strings.Cut(rounded.Abs().StringFixed(MoneyScale), ".")

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + groupThousands(whole) + "," + fraction + " " + CurrencySuffix
}

// FormatDue formats the absolute value of a signed balance.
func FormatDue(amount decimal.Decimal) string {
	return FormatTRY(amount.Abs())
}

func groupThousands(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return trPrinter.Sprintf("%d", n)
	}

	// Beyond int64.
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
