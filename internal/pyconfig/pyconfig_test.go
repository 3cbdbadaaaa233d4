package pyconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/pyfmt/internal/pyconfig"
)

func TestDefaultConfig(t *testing.T) {
	cfg := pyconfig.Default()
	assert.Equal(t, "pyfmt", cfg.Name)
	assert.Equal(t, "'", cfg.DefaultQuote)
	assert.Equal(t, 4, cfg.IndentWidth)
	assert.Empty(t, cfg.Ignore)
}

func TestWriteDefaultThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".pyfmt.yaml")
	require.NoError(t, pyconfig.WriteDefault(path))

	cfg, err := pyconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, pyconfig.Default(), cfg)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := pyconfig.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unterminated\n"), 0o644))

	_, err := pyconfig.Load(path)
	assert.Error(t, err)
}
