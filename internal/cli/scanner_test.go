package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/internal/utils"
)

func TestDirectoryScanner_Resolve(t *testing.T) {
	// tempDir/
	//   ├── model.yaml
	//   ├── notes.txt
	//   ├── api/
	//   │   ├── pets.go
	//   │   └── admin/
	//   │       └── admin.go
	//   ├── vendor/
	//   │   └── dependency.go (skipped)
	//   └── empty_dir/
	tempDir := t.TempDir()
	apiDir := filepath.Join(tempDir, "api")
	adminDir := filepath.Join(apiDir, "admin")
	emptyDir := filepath.Join(tempDir, "empty_dir")

	modelFile := writeFile(t, filepath.Join(tempDir, "model.yaml"), "classes: []\n")
	writeFile(t, filepath.Join(tempDir, "notes.txt"), "not an input")
	writeFile(t, filepath.Join(apiDir, "pets.go"), "package api\n")
	writeFile(t, filepath.Join(adminDir, "admin.go"), "package admin\n")
	writeFile(t, filepath.Join(tempDir, "vendor", "dependency.go"), "package vendor\n")
	require.NoError(t, os.MkdirAll(emptyDir, 0o755))

	scanner := NewDirectoryScanner(utils.NewFileProcessor())

	t.Run("model file and single directory", func(t *testing.T) {
		inputs, err := scanner.Resolve([]string{modelFile, apiDir})
		require.NoError(t, err)
		assert.Equal(t, []string{modelFile}, inputs.ModelFiles)
		assert.Equal(t, []string{apiDir}, inputs.PackageDirs)
	})

	t.Run("recursive pattern", func(t *testing.T) {
		inputs, err := scanner.Resolve([]string{tempDir + "/..."})
		require.NoError(t, err)
		assert.Empty(t, inputs.ModelFiles)
		assert.ElementsMatch(t, []string{apiDir, adminDir}, inputs.PackageDirs)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		inputs, err := scanner.Resolve([]string{apiDir, apiDir + "/..."})
		require.NoError(t, err)
		assert.Equal(t, []string{apiDir, adminDir}, inputs.PackageDirs)
	})

	t.Run("relative recursive pattern", func(t *testing.T) {
		originalDir, err := os.Getwd()
		require.NoError(t, err)
		defer os.Chdir(originalDir)
		require.NoError(t, os.Chdir(apiDir))

		inputs, err := scanner.Resolve([]string{"./..."})
		require.NoError(t, err)
		require.Len(t, inputs.PackageDirs, 2)
		for _, dir := range inputs.PackageDirs {
			assert.True(t, filepath.IsAbs(dir))
		}
	})

	t.Run("directory without Go files", func(t *testing.T) {
		_, err := scanner.Resolve([]string{emptyDir})
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ConfigurationErrorCode))
		assert.Contains(t, err.Error(), "contains no Go files")
	})

	t.Run("unsupported file", func(t *testing.T) {
		_, err := scanner.Resolve([]string{filepath.Join(tempDir, "notes.txt")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported input")
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := scanner.Resolve([]string{filepath.Join(tempDir, "missing.yaml")})
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.FileSystemErrorCode))
	})
}
