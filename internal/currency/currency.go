// Package currency formats whole-unit menu prices for display.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultSymbol is the rupee sign used by the bundled menu
const DefaultSymbol = "₹"

// Formatter renders amounts with a currency symbol and digit grouping
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter creates a formatter for the given symbol.
// An empty symbol uses DefaultSymbol.
func NewFormatter(symbol string) *Formatter {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(language.English),
	}
}

// Format renders an amount such as ₹1,250
func (f *Formatter) Format(amount int) string {
	return f.printer.Sprintf("%s%d", f.symbol, amount)
}

// Symbol returns the currency symbol
func (f *Formatter) Symbol() string {
	return f.symbol
}
