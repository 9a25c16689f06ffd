package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleaner_Clean(t *testing.T) {
	cleaner := NewCleaner()
	dir := t.TempDir()

	t.Run("removes the output file", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "META-INF", "springfox.javadoc.properties"), "#header\n")
		removed, err := cleaner.Clean(path)
		require.NoError(t, err)
		assert.True(t, removed)
		assert.NoFileExists(t, path)
	})

	t.Run("missing file is fine", func(t *testing.T) {
		removed, err := cleaner.Clean(filepath.Join(dir, "nothing.properties"))
		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("refuses directories", func(t *testing.T) {
		sub := filepath.Join(dir, "sub")
		require.NoError(t, os.MkdirAll(sub, 0o755))
		_, err := cleaner.Clean(sub)
		require.Error(t, err)
		assert.DirExists(t, sub)
	})
}
