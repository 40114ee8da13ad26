package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}

	files, err := collectFiles([]string{filepath.Join(dir, "*.txt")})
	require.NoError(t, err)
	assert.Len(t, files, 2)

	// Direct path with no glob match still resolves.
	files, err = collectFiles([]string{filepath.Join(dir, "c.md")})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "c.md")}, files)

	// Pattern matching nothing is skipped, not an error.
	files, err = collectFiles([]string{filepath.Join(dir, "*.pdf")})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLoadCatalog_DefaultsToBuiltin(t *testing.T) {
	defs, err := loadCatalog("")
	require.NoError(t, err)
	assert.NotEmpty(t, defs)
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := loadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
