// Package currency renders catalog prices for display. Colombian pesos
// are listed in whole units, so fraction digits are dropped.
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter produces the price text shown on a product card, e.g.
// "$ 20.000" for es-CO / COP.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewFormatter builds a formatter for a BCP 47 locale and an ISO 4217
// currency code.
func NewFormatter(locale, code string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", code, err)
	}
	return &Formatter{printer: message.NewPrinter(tag), unit: unit}, nil
}

// Format renders an amount with the currency symbol and locale-grouped
// whole units.
func (f *Formatter) Format(amount decimal.Decimal) string {
	v, _ := amount.Round(0).Float64()
	sym := f.printer.Sprint(currency.Symbol(f.unit))
	return sym + " " + f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
}

// Code returns the ISO 4217 code the formatter was built with.
func (f *Formatter) Code() string { return f.unit.String() }
