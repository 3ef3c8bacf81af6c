package commands

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilanco-dev/bilanco/internal/config"
)

func TestInitCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := newInitCommand()
	cmd.SetArgs([]string{"--name", "Atlas Ticaret"})
	cmd.SetOut(&bytes.Buffer{})
	require.NoError(t, cmd.Execute())

	cfg, err := config.Load(config.DefaultFileName)
	require.NoError(t, err)
	assert.Equal(t, "Atlas Ticaret", cfg.Business.Name)
	assert.Equal(t, "bilanco.db", cfg.Database.Path)
	assert.False(t, cfg.Import.FuzzyMatching)
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(config.DefaultFileName, []byte("business:\n  name: var\n"), 0o644))

	cmd := newInitCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
