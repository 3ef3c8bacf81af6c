// Package balance computes section totals, validates a balance sheet for
// internal consistency, and builds the persisted document.
package balance

import (
	"github.com/bilanco-dev/bilanco/internal/model"
	"github.com/bilanco-dev/bilanco/internal/schema"
)

// sumKeys adds the amounts under keys. Missing keys and text values
// contribute 0, so the sums are defined for any input mapping.
func sumKeys(entries model.Entries, keys []string) float64 {
	total := 0.0
	for _, key := range keys {
		total += entries.AmountOrZero(key)
	}
	return total
}

// SumCurrentAssets totals the current-asset line items.
func SumCurrentAssets(entries model.Entries) float64 {
	return sumKeys(entries, schema.CurrentAssetKeys())
}

// SumFixedAssets totals the fixed-asset line items net of accumulated
// depreciation, which is entered positive and subtracted.
func SumFixedAssets(entries model.Entries) float64 {
	total := sumKeys(entries, schema.FixedAssetKeys())
	return total - entries.AmountOrZero(schema.KeyAccumulatedDepreciation)
}

// SumShortTermLiabilities totals the short-term liability line items.
func SumShortTermLiabilities(entries model.Entries) float64 {
	return sumKeys(entries, schema.ShortTermLiabilityKeys())
}

// SumLongTermLiabilities totals the long-term liability line items.
func SumLongTermLiabilities(entries model.Entries) float64 {
	return sumKeys(entries, schema.LongTermLiabilityKeys())
}

// SumEquity totals the equity line items.
func SumEquity(entries model.Entries) float64 {
	return sumKeys(entries, schema.EquityKeys())
}
