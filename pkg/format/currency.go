// Package format provides money formatting for recommendation messages.
package format

import (
	"math"
	"strings"

	"github.com/iwvelando/vendor-insights/pkg/constants"
	"github.com/iwvelando/vendor-insights/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer returns an English message printer. Printers buffer their output
// and must not be shared between goroutines.
func printer() *message.Printer {
	return message.NewPrinter(language.English)
}

// Money returns an amount prefixed with its ISO currency code and with
// thousands separators (e.g., "USD -1,234.56"). An empty code falls back to
// the default currency.
func Money(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = constants.DefaultCurrencyCode
	}
	return code + " " + NumericCurrency(amount)
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	rounded := mathutil.Round(math.Abs(amount))
	formatted := printer().Sprintf("%.2f", rounded)
	if amount < 0 && rounded != 0 {
		return "-" + formatted
	}
	return formatted
}

// Count formats an integer with thousands separators.
func Count(n int) string {
	return printer().Sprintf("%d", n)
}
