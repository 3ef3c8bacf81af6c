// Package format renders amounts in the Turkish locale convention:
// "." groups thousands and "," separates decimals, e.g. 12.345,67.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TL formats an amount with two decimals and Turkish separators.
func TL(v float64) string {
	s := decimal.NewFromFloat(v).StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(ch)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// Ratio formats a ratio with exactly two decimal places (dot decimal, as
// stored in the persisted document).
func Ratio(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
