package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/routedoc/internal/utils"
)

func TestModuleResolver_ResolvePackagePath(t *testing.T) {
	resolver := NewModuleResolver(utils.NewFileReader())

	t.Run("package below go.mod", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "go.mod"), `module github.com/example/testapp

go 1.21

require (
	github.com/labstack/echo/v4 v4.11.1
)
`)
		pkgDir := filepath.Join(root, "internal", "controllers")
		require.NoError(t, os.MkdirAll(pkgDir, 0o755))

		path, err := resolver.ResolvePackagePath(pkgDir)
		require.NoError(t, err)
		assert.Equal(t, "github.com/example/testapp/internal/controllers", path)

		path, err = resolver.ResolvePackagePath(root)
		require.NoError(t, err)
		assert.Equal(t, "github.com/example/testapp", path)
	})

	t.Run("go.mod without module declaration", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "go.mod"), "go 1.21\n")

		_, err := resolver.ResolvePackagePath(root)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no module declaration found")
	})
}

func TestModuleResolver_BuildPackagePath(t *testing.T) {
	resolver := NewModuleResolver(utils.NewFileReader())
	root := filepath.Join(string(filepath.Separator), "src", "app")

	testCases := []struct {
		name       string
		packageDir string
		expected   string
	}{
		{"module root", root, "github.com/example/app"},
		{"subdirectory", filepath.Join(root, "internal", "controllers"), "github.com/example/app/internal/controllers"},
		{"nested subdirectory", filepath.Join(root, "internal", "services", "user"), "github.com/example/app/internal/services/user"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := resolver.BuildPackagePath("github.com/example/app", root, tc.packageDir)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}
