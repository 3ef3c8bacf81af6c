package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilanco-dev/bilanco/internal/balance"
	"github.com/bilanco-dev/bilanco/internal/model"
	"github.com/bilanco-dev/bilanco/internal/store"
)

func writeDocument(t *testing.T, kv map[string]float64) string {
	t.Helper()
	entries := model.Entries{
		model.KeyEntityName:    model.Text("Atlas Ticaret"),
		model.KeyStatementDate: model.Text("2026-08-30"),
	}
	for k, v := range kv {
		entries[k] = model.Amount(v)
	}
	doc := balance.BuildDocument(entries, balance.Validate(entries))
	path := filepath.Join(t.TempDir(), "bilanco.json")
	require.NoError(t, store.SaveJSON(path, doc))
	return path
}

func TestValidateCommand_CleanSheet(t *testing.T) {
	path := writeDocument(t, map[string]float64{
		"kasa":           1000,
		"odenmisSermaye": 1000,
	})

	var out bytes.Buffer
	cmd := newValidateCommand()
	cmd.SetArgs([]string{path})
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Doğrulama başarılı")
}

func TestValidateCommand_CriticalBlocks(t *testing.T) {
	path := writeDocument(t, map[string]float64{
		"kasa":           1000,
		"odenmisSermaye": 500,
	})

	var out bytes.Buffer
	cmd := newValidateCommand()
	cmd.SetArgs([]string{path})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	assert.ErrorIs(t, err, errCritical)
	assert.Contains(t, out.String(), "KRİTİK")
	assert.Contains(t, out.String(), "Bilanço dengesizliği")
}

func TestPrintFindings(t *testing.T) {
	var out bytes.Buffer
	printFindings(&out, []model.Finding{
		{Severity: model.SeverityWarning, Message: "İşletme adı boş bırakılmamalıdır."},
	})
	assert.Contains(t, out.String(), "Doğrulama Sonuçları:")
	assert.Contains(t, out.String(), "- UYARI: İşletme adı")
}

// Turkish casing: dotted i uppercases to İ, dotless ı to I.
func TestSeverityLabel(t *testing.T) {
	assert.Equal(t, "KRİTİK", severityLabel(model.SeverityCritical))
	assert.Equal(t, "UYARI", severityLabel(model.SeverityWarning))
}
