// Package id assigns document identifiers for the balance-sheet store.
package id

// NextIdentifier returns the identifier for a new document given the
// existing identifiers sorted descending: one past the largest, starting
// at 1 for an empty store.
func NextIdentifier(existingDesc []int64) int64 {
	for _, v := range existingDesc {
		if v >= 1 {
			return v + 1
		}
	}
	return 1
}
