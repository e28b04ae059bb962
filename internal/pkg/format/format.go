// Package format holds the display formatting helpers shared by the JSON views
// and the HTML renderer.
package format

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencyLabel is the fixed currency unit shown next to every price.
const currencyLabel = "Birr"

var printer = message.NewPrinter(language.English)

// Currency renders an amount with en-US thousands separators and the currency
// unit label. Negative or NaN amounts are treated as zero.
func Currency(amount float64) string {
	if math.IsNaN(amount) || amount < 0 {
		amount = 0
	}
	return printer.Sprintf("%v %s", number.Decimal(amount), currencyLabel)
}

// TelHref builds a dial link from a free-form phone string. Every character
// except digits and '+' is stripped; empty input yields an empty href.
func TelHref(phone string) string {
	if phone == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range phone {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "tel:" + b.String()
}

// Truncate cuts a description down to the card preview length.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
