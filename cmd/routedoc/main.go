package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/routedoc/internal/cli"
	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/internal/utils"
)

func main() {
	os.Exit(run(filepath.Base(os.Args[0]), os.Args[1:], os.Stdout, os.Stderr))
}

func run(name string, args []string, stdout, stderr io.Writer) int {
	config, err := cli.ParseArgs(name, args, stderr)
	if err != nil {
		if stderrors.Is(err, cli.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// Create diagnostic system based on flags
	level := utils.DiagnosticInfo
	switch {
	case config.Quiet:
		level = utils.DiagnosticError
	case config.Verbose:
		level = utils.DiagnosticVerbose
	case config.Dump:
		// keep stdout clean for the model
		level = utils.DiagnosticWarn
	}
	diagnostics := utils.NewDiagnosticSystemWithWriters(level, stdout, stderr)

	if config.Clean {
		path := config.OutputPath()
		removed, err := cli.NewCleaner().Clean(path)
		if err != nil {
			diagnostics.Error("Clean operation failed: %v", err)
			return 1
		}
		if removed {
			diagnostics.Success("Removed %s", path)
		} else {
			diagnostics.Info("Nothing to clean at %s", path)
		}
		return 0
	}

	if config.Verbose {
		diagnostics.Section("routedoc")
		diagnostics.Subsection("Configuration")
		diagnostics.List("Inputs: %s", strings.Join(config.Inputs, ", "))
		diagnostics.List("Output: %s", config.OutputPath())
		diagnostics.List("Annotation package: %s", config.AnnotationPackage)
		diagnostics.List("Exception docs: %t", config.IncludeExceptionDocs)
	}

	generator := cli.NewGenerator(diagnostics)
	generator.SetDumpOutput(stdout)
	if err := generator.Run(config); err != nil {
		diagnostics.Error("Extraction failed: %v", err)
		for _, hint := range suggestions(err) {
			diagnostics.Indent()
			diagnostics.List("%s", hint)
			diagnostics.Unindent()
		}
		return 1
	}
	if config.Dump {
		return 0
	}

	summary := generator.GetSummary()
	diagnostics.Summary("Extraction complete", summary.Stats())
	if summary.Written {
		diagnostics.Success("Documentation written to %s", summary.OutputPath)
	}
	return 0
}

func suggestions(err error) []string {
	var coded errors.CodedError
	if stderrors.As(err, &coded) {
		return coded.Suggestions()
	}
	return nil
}
