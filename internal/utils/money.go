package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// Money formats an amount with thousands separators and two decimals,
// prefixed by symbol.  Negative amounts print as "-₱1,500.00".
func Money(symbol string, amount float64) string {
	if amount < 0 {
		return "-" + symbol + moneyPrinter.Sprintf("%.2f", math.Abs(amount))
	}
	return symbol + moneyPrinter.Sprintf("%.2f", amount)
}

// Percent formats a ratio already expressed in percent, e.g. 42.5 -> "42.50%".
func Percent(p float64) string {
	return moneyPrinter.Sprintf("%.2f%%", p)
}
