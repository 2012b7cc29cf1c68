// Package format holds pure display-formatting helpers.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency renders an amount in minor units (cents) as a dollar string
// with digit grouping, e.g. 123456 -> "$1,234.56". Integer math only,
// so amounts round-trip exactly.
func Currency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	dollars := printer.Sprintf("%d", cents/100)
	return fmt.Sprintf("%s$%s.%02d", sign, dollars, cents%100)
}
