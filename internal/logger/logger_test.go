package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lookandsay.log")
	require.NoError(t, Init(path))
	t.Cleanup(func() { _ = Close() })

	Infof("computed term %d", 42)
	Debugf("hidden at info level")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "computed term 42")
	assert.NotContains(t, string(data), "hidden")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(func() { _ = Close() })

	require.NoError(t, SetLevel("debug"))
	Debugf("cache hit for %d", 7)
	assert.Contains(t, buf.String(), "cache hit for 7")

	require.NoError(t, SetLevel("ERROR"))
	Warnf("dropped")
	assert.NotContains(t, buf.String(), "dropped")
	Errorf("kept")
	assert.Contains(t, buf.String(), "kept")

	assert.Error(t, SetLevel("loud"))
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("LOOKANDSAY_LOG", "/var/log/las.log")
	assert.Equal(t, "/var/log/las.log", DefaultPath())
}

func TestInitWriter_ReleasesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lookandsay.log")
	require.NoError(t, Init(path))
	require.NotNil(t, logFile)

	var buf bytes.Buffer
	InitWriter(&buf)
	assert.Nil(t, logFile)

	Infof("after switch")
	assert.Contains(t, buf.String(), "after switch")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "after switch")
	assert.NoError(t, Close())
}
