package model

import (
	"strconv"
	"strings"
)

// Reserved entry keys that hold text rather than an amount.
const (
	KeyEntityName    = "isletmeAdi"
	KeyStatementDate = "bilancoTarihi"
)

// Value is a single balance-sheet entry: a numeric amount for line items,
// or free text for the two reserved keys (entity name, statement date).
type Value struct {
	text   string
	num    float64
	isText bool
}

// Amount returns a numeric Value.
func Amount(v float64) Value {
	return Value{num: v}
}

// Text returns a text Value.
func Text(s string) Value {
	return Value{text: s, isText: true}
}

// IsText reports whether the value holds text.
func (v Value) IsText() bool { return v.isText }

// AmountOrZero returns the numeric amount. Text values (including numeric
// text that failed to parse at entry time) contribute 0.
func (v Value) AmountOrZero() float64 {
	if v.isText {
		return 0
	}
	return v.num
}

// TextOrEmpty returns the text content, or "" for numeric values.
func (v Value) TextOrEmpty() string {
	if v.isText {
		return v.text
	}
	return ""
}

// Entries is the flat key -> value mapping that a data-entry session edits.
// It is owned by the calling adapter; computations take it as input and
// return fresh derived values.
type Entries map[string]Value

// AmountOrZero returns the amount stored under key, or 0 when the key is
// missing or holds text.
func (e Entries) AmountOrZero(key string) float64 {
	return e[key].AmountOrZero()
}

// TextOrEmpty returns the text stored under key, or "".
func (e Entries) TextOrEmpty(key string) string {
	return e[key].TextOrEmpty()
}

// ParseAmountOrZero converts user-entered text to an amount. Spaces are
// dropped and a decimal comma is accepted. Empty or unparseable input
// becomes 0 so data entry stays resilient to partial or garbled input,
// and no error is returned.
func ParseAmountOrZero(s string) float64 {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	if normalized == "" {
		return 0
	}
	f, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0
	}
	return f
}
