package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/routedoc/internal/errors"
)

func TestParseArgs(t *testing.T) {
	var out bytes.Buffer
	cfg, err := ParseArgs("routedoc", []string{"-classdir", "build", "-exceptionRef", "TRUE", "model.yaml", "./api/..."}, &out)
	require.NoError(t, err)

	assert.Equal(t, "build", cfg.ClassDir)
	assert.True(t, cfg.IncludeExceptionDocs)
	assert.Equal(t, []string{"model.yaml", "./api/..."}, cfg.Inputs)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, "Springfox javadoc properties", cfg.Header)
	assert.Equal(t, "org.springframework.web.bind.annotation", cfg.AnnotationPackage)
	assert.Empty(t, out.String())
}

func TestParseArgsExceptionRef(t *testing.T) {
	tests := map[string]bool{
		"true":  true,
		"True":  true,
		"false": false,
		"yes":   false,
		"1":     false,
	}
	for value, want := range tests {
		t.Run(value, func(t *testing.T) {
			cfg, err := ParseArgs("routedoc", []string{"-classdir", "c", "-exceptionRef", value, "m.yaml"}, &bytes.Buffer{})
			require.NoError(t, err)
			assert.Equal(t, want, cfg.IncludeExceptionDocs)
		})
	}

	cfg, err := ParseArgs("routedoc", []string{"-classdir", "c", "m.yaml"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, cfg.IncludeExceptionDocs)
}

func TestParseArgsUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing classdir", []string{"m.yaml"}, "-classdir is required"},
		{"duplicate classdir", []string{"-classdir", "a", "-classdir", "b", "m.yaml"}, "only one -classdir option allowed"},
		{"duplicate exceptionRef", []string{"-classdir", "a", "-exceptionRef", "true", "-exceptionRef", "false", "m.yaml"}, "only one -exceptionRef option allowed"},
		{"no inputs", []string{"-classdir", "a"}, "at least one input is required"},
		{"verbose and quiet", []string{"-classdir", "a", "-verbose", "-quiet", "m.yaml"}, "mutually exclusive"},
		{"unknown flag", []string{"-classdir", "a", "-frobnicate", "m.yaml"}, "frobnicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := ParseArgs("routedoc", tt.args, &out)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.True(t, errors.HasCode(err, errors.ConfigurationErrorCode))
			assert.Contains(t, out.String(), "Usage: routedoc")
		})
	}
}

func TestParseArgsHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := ParseArgs("routedoc", []string{"-help"}, &out)
	assert.ErrorIs(t, err, ErrHelp)
	assert.Contains(t, out.String(), "-classdir")
}

func TestParseArgsModes(t *testing.T) {
	cfg, err := ParseArgs("routedoc", []string{"-dump", "m.yaml"}, &bytes.Buffer{})
	require.NoError(t, err, "-dump does not need -classdir")
	assert.True(t, cfg.Dump)

	cfg, err = ParseArgs("routedoc", []string{"-classdir", "c", "-clean"}, &bytes.Buffer{})
	require.NoError(t, err, "-clean does not need inputs")
	assert.True(t, cfg.Clean)

	_, err = ParseArgs("routedoc", []string{"-classdir", "c", "-clean", "-dump", "m.yaml"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestParseArgsConfigFile(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "routedoc.yaml"), "output: api.properties\ninputs: [extra.yaml]\n")

	cfg, err := ParseArgs("routedoc", []string{"-classdir", "c", "-config", path, "m.yaml"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "api.properties", cfg.Output)
	assert.Equal(t, []string{"m.yaml", "extra.yaml"}, cfg.Inputs)

	cfg, err = ParseArgs("routedoc", []string{"-classdir", "c", "-config", path}, &bytes.Buffer{})
	require.NoError(t, err, "inputs may come from the configuration file alone")
	assert.Equal(t, []string{"extra.yaml"}, cfg.Inputs)
}
