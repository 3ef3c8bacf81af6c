// Package xlsx writes the balance sheet as a spreadsheet and reconciles
// externally authored spreadsheets back onto the canonical schema keys.
package xlsx

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9 ]+`)
	whitespaceRegex      = regexp.MustCompile(`\s+`)
)

// Normalize prepares a label for comparison: decompose and drop combining
// marks so accented and accent-free spellings are equivalent, lowercase,
// replace anything outside [a-z0-9 ] with a space, collapse whitespace.
// Dotless ı has no combining mark to strip, so it is folded explicitly.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}))
	result, _, _ := transform.String(t, s)
	result = strings.ToLower(result)
	result = strings.ReplaceAll(result, "ı", "i")
	result = nonAlphanumericRegex.ReplaceAllString(result, " ")
	result = whitespaceRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
