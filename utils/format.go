package utils

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// PriceFormatter turns integer cents into a display string for one locale.
// Each formatter owns its printer; nothing process-wide is changed.
type PriceFormatter struct {
	printer   *message.Printer
	symbol    string
	separator string
}

func NewPriceFormatter(tag language.Tag, symbol string) *PriceFormatter {
	printer := message.NewPrinter(tag)
	return &PriceFormatter{
		printer:   printer,
		symbol:    symbol,
		separator: decimalSeparator(printer),
	}
}

// decimalSeparator asks the locale how it writes 1.5.
func decimalSeparator(printer *message.Printer) string {
	sample := printer.Sprint(number.Decimal(1.5, number.Scale(1)))
	sep := strings.TrimSuffix(strings.TrimPrefix(sample, "1"), "5")
	if sep == "" {
		return "."
	}
	return sep
}

// NewPriceFormatterFromLocale parses a BCP 47 locale such as "en-US".
func NewPriceFormatterFromLocale(locale, symbol string) (*PriceFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}
	return NewPriceFormatter(tag, symbol), nil
}

func (f *PriceFormatter) Format(cents int) string {
	amount := decimal.New(int64(cents), -2)

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	// the whole part is grouped by the locale, the cents come straight from
	// the decimal so no float rounding is involved
	_, fraction, _ := strings.Cut(amount.StringFixed(2), ".")
	whole := f.printer.Sprint(number.Decimal(amount.IntPart()))

	return sign + f.symbol + whole + f.separator + fraction
}

var defaultPriceFormatter = NewPriceFormatter(language.AmericanEnglish, "$")

// FormatPrice formats cents with the en-US formatter: 4999 -> "$49.99".
func FormatPrice(cents int) string {
	return defaultPriceFormatter.Format(cents)
}

// DefaultPriceFormatter returns the en-US formatter behind FormatPrice.
func DefaultPriceFormatter() *PriceFormatter {
	return defaultPriceFormatter
}
