package cli

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/toyz/routedoc/internal/errors"
)

// ErrHelp is returned by ParseArgs when -help was requested
var ErrHelp = flag.ErrHelp

// onceString is a string flag that may be given at most once
type onceString struct {
	name  string
	value string
	set   bool
}

func (o *onceString) String() string {
	if o == nil {
		return ""
	}
	return o.value
}

func (o *onceString) Set(v string) error {
	if o.set {
		return fmt.Errorf("only one -%s option allowed", o.name)
	}
	o.value = v
	o.set = true
	return nil
}

// onceBool is a boolean switch that may be given at most once
type onceBool struct {
	name  string
	value bool
	set   bool
}

func (o *onceBool) String() string {
	if o == nil {
		return "false"
	}
	return strconv.FormatBool(o.value)
}

func (o *onceBool) Set(v string) error {
	if o.set {
		return fmt.Errorf("only one -%s option allowed", o.name)
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	o.value = b
	o.set = true
	return nil
}

func (o *onceBool) IsBoolFlag() bool { return true }

// NewFlagSet declares every option on a new flag set writing usage to output
func NewFlagSet(name string, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: %s -classdir <dir> [options] <inputs...>\n\n", name)
		fmt.Fprintf(output, "Extracts endpoint documentation into a properties file.\n")
		fmt.Fprintf(output, "Routes come from Spring-style mapping annotations on documented classes and methods.\n\n")
		fmt.Fprintf(output, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(output, "\nInputs:\n")
		fmt.Fprintf(output, "  model.yaml         A documentation model file (.yaml, .yml or .json)\n")
		fmt.Fprintf(output, "  ./controllers      A Go package directory (no recursion)\n")
		fmt.Fprintf(output, "  ./internal/...     A directory tree of Go packages\n")
		fmt.Fprintf(output, "\nExamples:\n")
		fmt.Fprintf(output, "  %s -classdir build/classes model.yaml\n", name)
		fmt.Fprintf(output, "  %s -classdir build -exceptionRef true ./api/...\n", name)
		fmt.Fprintf(output, "  %s -dump ./api/...\n", name)
		fmt.Fprintf(output, "  %s -classdir build -clean\n", name)
	}
	return fs
}

// ParseArgs parses command-line arguments into a Config. Usage problems are
// reported as configuration errors after printing usage to output.
func ParseArgs(name string, args []string, output io.Writer) (Config, error) {
	classDir := &onceString{name: "classdir"}
	exceptionRef := &onceString{name: "exceptionRef"}
	configFile := &onceString{name: "config"}
	verbose := &onceBool{name: "verbose"}
	quiet := &onceBool{name: "quiet"}
	dump := &onceBool{name: "dump"}
	clean := &onceBool{name: "clean"}

	fs := NewFlagSet(name, output)
	fs.Var(classDir, "classdir", "Root `directory` of the generated properties file (required)")
	fs.Var(exceptionRef, "exceptionRef", "Emit exception documentation when `true`")
	fs.Var(configFile, "config", "YAML configuration `file`")
	fs.Var(verbose, "verbose", "Enable verbose output")
	fs.Var(quiet, "quiet", "Only show errors")
	fs.Var(dump, "dump", "Print the loaded documentation model as YAML and exit")
	fs.Var(clean, "clean", "Delete the generated properties file and exit")

	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return Config{}, ErrHelp
		}
		return Config{}, errors.WrapConfigurationError("command line", "parse", err)
	}

	cfg := Config{
		ClassDir:             classDir.value,
		IncludeExceptionDocs: strings.EqualFold(exceptionRef.value, "true"),
		Inputs:               fs.Args(),
		Verbose:              verbose.value,
		Quiet:                quiet.value,
		Dump:                 dump.value,
		Clean:                clean.value,
	}

	fileConfig := DefaultFileConfig()
	if configFile.set {
		loaded, err := LoadFileConfig(configFile.value)
		if err != nil {
			return Config{}, err
		}
		fileConfig = loaded
	}
	fileConfig.apply(&cfg)

	if err := cfg.validate(); err != nil {
		fs.Usage()
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Verbose && c.Quiet:
		return errors.ConfigurationError("command line", "-verbose and -quiet are mutually exclusive")
	case c.Dump && c.Clean:
		return errors.ConfigurationError("command line", "-dump and -clean are mutually exclusive")
	case c.ClassDir == "" && !c.Dump:
		return errors.ConfigurationError("command line", "-classdir is required").
			WithSuggestion("Pass the directory the properties file belongs under, e.g. -classdir build/classes")
	case len(c.Inputs) == 0 && !c.Clean:
		return errors.ConfigurationError("command line", "at least one input is required").
			WithSuggestion("Pass a model file or a Go package directory such as ./api/...")
	}
	return nil
}
