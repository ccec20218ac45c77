// Package renderer renders chart series and their summaries as markdown.
package renderer

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount formats a value in currency, or as a plain number with two decimals if
// currency is empty.
func Amount(value float64, currency string) string {
	d := decimal.NewFromFloat(value)
	if currency == "" {
		return d.StringFixed(2)
	}
	// to get a never nil currency I need to call the Money constructor
	cur := money.New(0, currency).Currency()
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// SignedAmount is like Amount but always shows the sign, 0 is represented as "-".
func SignedAmount(value float64, currency string) string {
	if value == 0 {
		return "-"
	}
	if value > 0 {
		return "+" + Amount(value, currency)
	}
	return Amount(value, currency)
}

// Percent formats a ratio as a signed percentage, 0 is represented as "-".
func Percent(ratio float64) string {
	res := fmt.Sprintf("%+.2f%%", ratio*100)
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}
