package output

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var indianPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatCurrency formats a decimal as rupees with Indian digit grouping,
// dropping the fraction when it is zero.
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + "₹" + indianPrinter.Sprintf("%v", number.Decimal(rounded.InexactFloat64(), number.MaxFractionDigits(2)))
}

// FormatRate renders a fractional rate as a percentage, e.g. 0.05 → "5%".
func FormatRate(rate decimal.Decimal) string {
	pct := rate.Mul(decimal.NewFromInt(100)).Round(2).String()
	return pct + "%"
}

// FormatBound renders a slab upper bound, with "and above" for the open band.
func FormatBound(upTo *decimal.Decimal) string {
	if upTo == nil {
		return "and above"
	}
	return "up to " + FormatCurrency(*upTo)
}

func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
