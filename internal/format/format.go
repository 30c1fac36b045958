// Package format renders money and dates for display. Nothing it produces
// is ever parsed back into stored values.
package format

import (
	"fmt"

	"github.com/ironman07017-lang/vibeosys-inventory/internal/domain"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Formatter struct {
	symbol     string
	printer    *message.Printer
	dateLayout string
}

func NewFormatter(currencySymbol, locale, dateLayout string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid display locale %q: %w", locale, err)
	}
	if dateLayout == "" {
		dateLayout = domain.DateLayout
	}
	return &Formatter{
		symbol:     currencySymbol,
		printer:    message.NewPrinter(tag),
		dateLayout: dateLayout,
	}, nil
}

// Money formats amount with two decimals and locale digit grouping,
// e.g. ₹11,000.00.
func (f *Formatter) Money(amount decimal.Decimal) string {
	return f.symbol + f.printer.Sprintf("%.2f", amount.Round(2).InexactFloat64())
}

// Date returns "" for an unset date.
func (f *Formatter) Date(d domain.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(f.dateLayout)
}
