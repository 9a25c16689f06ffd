package cli

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/internal/extractor"
)

// DefaultOutput is the output file, relative to the class directory
const DefaultOutput = "META-INF/springfox.javadoc.properties"

// Config holds the configuration for one run
type Config struct {
	// ClassDir is the root the output file is written under
	ClassDir string

	// IncludeExceptionDocs enables the .throws.<i> keys
	IncludeExceptionDocs bool

	// Inputs are model files and Go package directories; dir/... recurses
	Inputs []string

	AnnotationPackage string
	Output            string
	Header            string

	Verbose bool
	Quiet   bool
	// Dump prints the loaded documentation model instead of writing output
	Dump bool
	// Clean removes the output file instead of writing it
	Clean bool
}

// OutputPath returns the absolute location of the properties file
func (c Config) OutputPath() string {
	return filepath.Join(c.ClassDir, filepath.FromSlash(c.Output))
}

// FileConfig is the optional YAML configuration file
type FileConfig struct {
	AnnotationPackage string   `mapstructure:"annotation_package"`
	Output            string   `mapstructure:"output"`
	Header            string   `mapstructure:"header"`
	Inputs            []string `mapstructure:"inputs"`
}

// DefaultFileConfig returns the settings used when no configuration file is given
func DefaultFileConfig() FileConfig {
	return FileConfig{
		AnnotationPackage: extractor.DefaultAnnotationPackage,
		Output:            DefaultOutput,
		Header:            extractor.DefaultHeader,
	}
}

// LoadFileConfig reads a configuration file on top of the defaults.
// Values are decoded weakly, so a quoted number or a bare word both work.
func LoadFileConfig(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.WrapConfigurationError(path, "read", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return cfg, errors.WrapConfigurationError(path, "parse", err)
	}
	if raw == nil {
		return cfg, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return cfg, errors.WrapConfigurationError(path, "prepare", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return cfg, errors.WrapConfigurationError(path, "decode", err).
			WithSuggestion("Known keys: annotation_package, output, header, inputs")
	}

	if cfg.Output == "" {
		return cfg, errors.ConfigurationError(path, "output must not be empty")
	}
	if cfg.AnnotationPackage == "" {
		cfg.AnnotationPackage = extractor.DefaultAnnotationPackage
	}
	return cfg, nil
}

// apply copies the file settings into c; inputs from the file come after
// the command-line inputs.
func (fc FileConfig) apply(c *Config) {
	c.AnnotationPackage = fc.AnnotationPackage
	c.Output = fc.Output
	c.Header = fc.Header
	c.Inputs = append(c.Inputs, fc.Inputs...)
}
