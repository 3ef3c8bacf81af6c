package balance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bilanco-dev/bilanco/internal/model"
	"github.com/bilanco-dev/bilanco/internal/schema"
)

func TestSumCurrentAssets(t *testing.T) {
	entries := model.Entries{
		"kasa":         model.Amount(1000),
		"bankalar":     model.Amount(2500),
		"ticariMallar": model.Amount(500),
		// Liability keys must not leak into the asset total.
		"saticilar": model.Amount(9999),
	}
	assert.Equal(t, 4000.0, SumCurrentAssets(entries))
}

func TestSumFixedAssets_SubtractsDepreciation(t *testing.T) {
	entries := model.Entries{
		"binalar":                         model.Amount(100000),
		"tasitlar":                        model.Amount(30000),
		schema.KeyAccumulatedDepreciation: model.Amount(20000),
	}
	assert.Equal(t, 110000.0, SumFixedAssets(entries))
}

func TestSumLiabilitySides(t *testing.T) {
	entries := model.Entries{
		"bankKredileri":         model.Amount(5000),
		"saticilar":             model.Amount(1500),
		"uzunVadeBankKredileri": model.Amount(20000),
		"odenmisSermaye":        model.Amount(50000),
		"donemNetKari":          model.Amount(7500),
	}
	assert.Equal(t, 6500.0, SumShortTermLiabilities(entries))
	assert.Equal(t, 20000.0, SumLongTermLiabilities(entries))
	assert.Equal(t, 57500.0, SumEquity(entries))
}

// The asset-side total must agree with a reference summation over the
// registry's key lists with depreciation subtracted.
func TestAssetTotalMatchesReference(t *testing.T) {
	entries := model.Entries{}
	for i, key := range schema.AllNumericKeys() {
		entries[key] = model.Amount(float64((i + 1) * 10))
	}

	var want float64
	for _, key := range schema.CurrentAssetKeys() {
		want += entries.AmountOrZero(key)
	}
	for _, key := range schema.FixedAssetKeys() {
		want += entries.AmountOrZero(key)
	}
	want -= entries.AmountOrZero(schema.KeyAccumulatedDepreciation)

	assert.InDelta(t, want, SumCurrentAssets(entries)+SumFixedAssets(entries), 1e-9)
}

func TestSumsTolerateMissingAndTextValues(t *testing.T) {
	assert.Equal(t, 0.0, SumCurrentAssets(model.Entries{}))

	entries := model.Entries{
		"kasa":     model.Text("not a number"),
		"bankalar": model.Amount(100),
	}
	assert.Equal(t, 100.0, SumCurrentAssets(entries))
}

func TestLiquidityRatio(t *testing.T) {
	entries := model.Entries{
		"kasa":      model.Amount(1000),
		"saticilar": model.Amount(2000),
	}
	assert.InDelta(t, 0.5, LiquidityRatio(entries), 1e-9)

	// Zero short-term debt divides by 1.
	noDebt := model.Entries{"kasa": model.Amount(1000)}
	assert.InDelta(t, 1000.0, LiquidityRatio(noDebt), 1e-9)
}
