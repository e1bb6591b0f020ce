package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardcser/look-and-say/internal/sequence"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lookandsay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, sequence.Memoized, cfg.DefaultStrategy())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeConfig(t, `
strategy: iterative
cache: bolt
spill_dir: /tmp/terms
max_depth: 50
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, sequence.Iterative, cfg.DefaultStrategy())
	assert.Equal(t, "bolt", cfg.Cache)
	assert.Equal(t, 50, cfg.MaxDepth)
	assert.Equal(t, 3, cfg.CompressionLevel)

	t.Setenv("LOOKANDSAY_STRATEGY", "recursive")
	t.Setenv("LOOKANDSAY_COMPRESSION_LEVEL", "0")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, sequence.Recursive, cfg.DefaultStrategy())
	assert.Equal(t, 0, cfg.CompressionLevel)
	assert.Equal(t, "/tmp/terms", cfg.SpillDir)

	opts := cfg.CacheOptions("abc")
	assert.Equal(t, "bolt", opts.Backend)
	assert.Equal(t, "/tmp/terms", opts.Dir)
	assert.Equal(t, "abc", opts.ID)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "strategy: [unclosed"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "strategy: sideways"))
	assert.ErrorIs(t, err, sequence.ErrUnknownStrategy)

	_, err = Load(writeConfig(t, "cache: redis"))
	assert.Error(t, err)

	t.Setenv("LOOKANDSAY_MAX_DEPTH", "not-a-number")
	_, err = Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.MaxDepth = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.CompressionLevel = 23
	assert.Error(t, cfg.Validate())
}
