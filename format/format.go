// Package format renders converted coin amounts as display strings.
package format

import (
	"fmt"

	"github.com/leekchan/accounting"

	coin "go-coin-overlay"
	"go-coin-overlay/convert"
)

// Host color-directive syntax for the decorated variant. Surfaces that render
// their own color get the plain variant instead.
const (
	colorDirective = "|cFFFFD700"
	colorReset     = "|r"
)

// Formatter renders a converted amount inside the fixed display template.
// Output is deterministic: the same amount and variant always produce the
// same bytes.
type Formatter struct {
	converter convert.Service
	currency  string
	ac        accounting.Accounting
}

// New constructs a valid Formatter for the given target currency.
func New(converter convert.Service, currency string) *Formatter {
	return &Formatter{
		converter: converter,
		currency:  currency,
		ac: accounting.Accounting{
			Symbol:    "",
			Precision: 2,
			Thousand:  ",",
			Decimal:   ".",
		},
	}
}

// Format renders the converted value of amount to two decimal places inside a
// parenthetical currency suffix. The decorated variant wraps the text in the
// host color directive. Zero, absent and negative amounts render as "".
func (f *Formatter) Format(amount coin.Copper, decorated bool) string {
	if amount <= 0 {
		return ""
	}
	value := f.ac.FormatMoneyDecimal(f.converter.Convert(amount).Value)
	if decorated {
		return fmt.Sprintf(" (%s%s %s%s)", colorDirective, value, f.currency, colorReset)
	}
	return fmt.Sprintf(" (%s %s)", value, f.currency)
}
