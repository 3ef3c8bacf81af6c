package balance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilanco-dev/bilanco/internal/model"
)

func namedEntries(kv map[string]float64) model.Entries {
	entries := model.Entries{
		model.KeyEntityName:    model.Text("Atlas Ticaret"),
		model.KeyStatementDate: model.Text("2026-08-30"),
	}
	for k, v := range kv {
		entries[k] = model.Amount(v)
	}
	return entries
}

func TestValidate_BalancedSheet(t *testing.T) {
	entries := namedEntries(map[string]float64{
		"kasa":           1000,
		"odenmisSermaye": 1000,
	})
	assert.Empty(t, Validate(entries))
}

func TestValidate_Imbalance(t *testing.T) {
	entries := namedEntries(map[string]float64{
		"kasa":           1000,
		"odenmisSermaye": 500,
	})

	findings := Validate(entries)
	require.Len(t, findings, 1)
	assert.Equal(t, model.SeverityCritical, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "1.000,00")
	assert.Contains(t, findings[0].Message, "Fark: 500,00 TL")
}

func TestValidate_WithinTolerance(t *testing.T) {
	entries := namedEntries(map[string]float64{
		"kasa":           1000.005,
		"odenmisSermaye": 1000,
	})
	assert.Empty(t, Validate(entries))
}

func TestValidate_EmptySheet(t *testing.T) {
	entries := namedEntries(nil)

	findings := Validate(entries)
	require.Len(t, findings, 1)
	assert.Equal(t, model.SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "Hiçbir varlık girilmemiş")
}

func TestValidate_ZeroAssetsWithLiabilities(t *testing.T) {
	entries := namedEntries(map[string]float64{
		"saticilar": 1000,
	})

	findings := Validate(entries)
	require.Len(t, findings, 3)
	assert.True(t, model.HasCritical(findings))

	assert.Equal(t, model.SeverityCritical, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "Bilanço dengesizliği")
	assert.Contains(t, findings[0].Message, "Pasif (1.000,00 TL)")

	assert.Contains(t, findings[1].Message, "Likidite oranı düşük")
	assert.Contains(t, findings[2].Message, "Bilanço boş")
}

func TestValidate_MissingEntityName(t *testing.T) {
	entries := model.Entries{
		model.KeyEntityName: model.Text("   "),
		"kasa":              model.Amount(100),
		"odenmisSermaye":    model.Amount(100),
	}

	findings := Validate(entries)
	require.Len(t, findings, 1)
	assert.Equal(t, model.SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "İşletme adı")
}

func TestValidate_NegativeEquity(t *testing.T) {
	entries := namedEntries(map[string]float64{
		"odenmisSermaye": -100,
	})

	findings := Validate(entries)
	require.Len(t, findings, 3)

	assert.Equal(t, model.SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "odenmisSermaye negatif değer içeriyor")

	assert.Equal(t, model.SeverityCritical, findings[1].Severity)
	assert.Contains(t, findings[1].Message, "Öz kaynaklar negatif")

	assert.Equal(t, model.SeverityWarning, findings[2].Severity)
	assert.Contains(t, findings[2].Message, "Bilanço boş")
}

func TestValidate_DepreciationExemptFromNegativeCheck(t *testing.T) {
	entries := namedEntries(map[string]float64{
		"binalar":        100000,
		"birikmiAmort":   -20000, // subtracting a negative adds it back
		"odenmisSermaye": 120000,
	})
	assert.Empty(t, Validate(entries))
}

func TestValidate_LowLiquidity(t *testing.T) {
	entries := namedEntries(map[string]float64{
		"kasa":          1000,
		"binalar":       1000,
		"bankKredileri": 2000,
	})

	findings := Validate(entries)
	require.Len(t, findings, 1)
	assert.Equal(t, model.SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "Likidite oranı düşük (0.50)")
}

func TestValidate_Idempotent(t *testing.T) {
	entries := namedEntries(map[string]float64{
		"kasa":           500,
		"odenmisSermaye": -100,
	})
	assert.Equal(t, Validate(entries), Validate(entries))
}

func TestHasCritical(t *testing.T) {
	assert.False(t, model.HasCritical(nil))
	assert.False(t, model.HasCritical([]model.Finding{{Severity: model.SeverityWarning}}))
	assert.True(t, model.HasCritical([]model.Finding{
		{Severity: model.SeverityWarning},
		{Severity: model.SeverityCritical},
	}))
}
