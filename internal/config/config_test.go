package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Örnek Ticaret A.Ş.")
	cfg.Database.Path = "data/bilanco.db"
	cfg.Import.FuzzyMatching = true
	cfg.Import.Cutoff = 0.75

	path := filepath.Join(t.TempDir(), "bilanco.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Business.Name, got.Business.Name)
	assert.Equal(t, cfg.Database.Path, got.Database.Path)
	assert.True(t, got.Import.FuzzyMatching)
	assert.InDelta(t, 0.75, got.Import.Cutoff, 0.001)
}

func TestDefaults(t *testing.T) {
	cfg := Default("Örnek Ticaret A.Ş.")

	assert.Equal(t, "Örnek Ticaret A.Ş.", cfg.Business.Name)
	assert.Equal(t, "bilanco.db", cfg.Database.Path)
	assert.False(t, cfg.Import.FuzzyMatching)
	assert.InDelta(t, 0.82, cfg.Import.Cutoff, 0.001)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault_Missing(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "bilanco.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "bilanco.db", cfg.Database.Path)
}
