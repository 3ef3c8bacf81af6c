package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bilanco.json")
	doc := testDocument("Atlas Ticaret", "2026-08-30")

	require.NoError(t, SaveJSON(path, doc))

	got, err := LoadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, doc.EntityInfo, got.EntityInfo)
	assert.Equal(t, doc.Assets, got.Assets)
	assert.Equal(t, doc.Liabilities, got.Liabilities)
	assert.Equal(t, doc.Ratios, got.Ratios)
	assert.Equal(t, doc.Validation, got.Validation)
}

func TestLoadJSON_Missing(t *testing.T) {
	_, err := LoadJSON(filepath.Join(t.TempDir(), "yok.json"))
	assert.Error(t, err)
}
