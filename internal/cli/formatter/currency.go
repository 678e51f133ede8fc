package formatter

import (
	"fmt"
	"math"
	"strings"
)

// currencySymbols maps the currency codes the original product offered.
// Unknown codes fall back to the code itself.
var currencySymbols = map[string]string{
	"BRL": "R$",
	"USD": "$",
	"EUR": "€",
}

// FormatCurrency renders an amount in pt-BR style: dot-grouped thousands,
// comma decimal separator, symbol in front. Malformed values render as
// zero rather than propagating.
func FormatCurrency(value float64, currency string) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}

	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency
	}

	negative := value < 0
	cents := int64(math.Round(math.Abs(value) * 100))
	whole := cents / 100
	frac := cents % 100

	grouped := groupThousands(whole)
	out := fmt.Sprintf("%s %s,%02d", symbol, grouped, frac)
	if negative {
		out = "-" + out
	}
	return out
}

func groupThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return strings.Join(groups, ".")
}
