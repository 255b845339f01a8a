package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DisabledByDefault(t *testing.T) {
	t.Setenv("GIT_STATUSLINE_DEBUG", "")
	t.Setenv("GIT_STATUSLINE_DEBUG_FILE", "")

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_CustomDebugFile(t *testing.T) {
	t.Setenv("GIT_STATUSLINE_DEBUG", "1") // inherited, keeps stderr quiet
	t.Setenv("GIT_STATUSLINE_DEBUG_FILE", "")
	logFile := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(false, logFile, DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Equal(t, logFile, path)

	Logger.Debug("hello", "key", "value")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"key":"value"`)
}

func TestRotateLogs_RemovesOldest(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	for i, name := range []string{"a.log", "b.log", "c.log", "keep.txt"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		mod := now.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, mod, mod))
	}

	require.NoError(t, rotateLogs(dir, 2))

	_, err := os.Stat(filepath.Join(dir, "a.log"))
	assert.True(t, os.IsNotExist(err), "oldest log should be removed")
	_, err = os.Stat(filepath.Join(dir, "b.log"))
	assert.True(t, os.IsNotExist(err), "second oldest log should be removed to make room")
	assert.FileExists(t, filepath.Join(dir, "c.log"))
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
}

func TestRotateLogs_UnderLimit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("x"), 0644))

	require.NoError(t, rotateLogs(dir, 5))

	assert.FileExists(t, filepath.Join(dir, "a.log"))
}
