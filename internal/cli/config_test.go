package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/routedoc/internal/errors"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("overrides defaults", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "full.yaml"), `
annotation_package: com.acme.web
output: docs/api.properties
header: API docs
inputs: [model.yaml, ./api/...]
`)
		cfg, err := LoadFileConfig(path)
		require.NoError(t, err)
		assert.Equal(t, FileConfig{
			AnnotationPackage: "com.acme.web",
			Output:            "docs/api.properties",
			Header:            "API docs",
			Inputs:            []string{"model.yaml", "./api/..."},
		}, cfg)
	})

	t.Run("keeps defaults for missing keys", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "partial.yaml"), "header: 42\n")
		cfg, err := LoadFileConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "42", cfg.Header, "values are decoded weakly")
		assert.Equal(t, DefaultOutput, cfg.Output)
		assert.Equal(t, "org.springframework.web.bind.annotation", cfg.AnnotationPackage)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "empty.yaml"), "")
		cfg, err := LoadFileConfig(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultFileConfig(), cfg)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "unknown.yaml"), "outptu: x\n")
		_, err := LoadFileConfig(path)
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ConfigurationErrorCode))
	})

	t.Run("empty output", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "nooutput.yaml"), "output: ''\n")
		_, err := LoadFileConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "output must not be empty")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, filepath.Join(dir, "bad.yaml"), "header: [unterminated\n")
		_, err := LoadFileConfig(path)
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ConfigurationErrorCode))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFileConfig(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ConfigurationErrorCode))
	})
}

func TestConfigOutputPath(t *testing.T) {
	cfg := Config{ClassDir: filepath.Join("build", "classes"), Output: DefaultOutput}
	assert.Equal(t, filepath.Join("build", "classes", "META-INF", "springfox.javadoc.properties"), cfg.OutputPath())
}
