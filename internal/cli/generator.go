package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/internal/extractor"
	"github.com/toyz/routedoc/internal/models"
	"github.com/toyz/routedoc/internal/parser"
	"github.com/toyz/routedoc/internal/utils"
)

// GenerationSummary describes one run
type GenerationSummary struct {
	extractor.Summary
	ModelFiles         int
	PackagesProcessed  int
	SkippedAnnotations int
	OutputPath         string
	// Written is false when the output could not be written
	Written bool
}

// Stats returns the summary in the shape DiagnosticSystem.Summary expects
func (s GenerationSummary) Stats() map[string]interface{} {
	stats := s.Summary.Stats()
	stats["Model files"] = s.ModelFiles
	stats["Packages processed"] = s.PackagesProcessed
	stats["Skipped annotations"] = s.SkippedAnnotations
	return stats
}

// Generator coordinates loading, extraction and writing
type Generator struct {
	fileProcessor  *utils.FileProcessor
	scanner        *DirectoryScanner
	moduleResolver *ModuleResolver
	diagnostics    *utils.DiagnosticSystem
	dumpOutput     io.Writer
	now            func() time.Time
	summary        GenerationSummary
}

// NewGenerator creates a generator reporting through diagnostics
func NewGenerator(diagnostics *utils.DiagnosticSystem) *Generator {
	fp := utils.NewFileProcessor()
	return &Generator{
		fileProcessor:  fp,
		scanner:        NewDirectoryScanner(fp),
		moduleResolver: NewModuleResolver(fp.FileReader()),
		diagnostics:    diagnostics,
		dumpOutput:     os.Stdout,
		now:            time.Now,
	}
}

// SetDumpOutput redirects the -dump model output
func (g *Generator) SetDumpOutput(w io.Writer) {
	g.dumpOutput = w
}

// SetClock replaces the clock used for the timestamp comment
func (g *Generator) SetClock(now func() time.Time) {
	g.now = now
}

// GetSummary returns the summary of the last run
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Run executes one complete pass. Configuration and input problems are
// returned; failing to write the output is reported but not returned.
func (g *Generator) Run(config Config) error {
	g.summary = GenerationSummary{OutputPath: config.OutputPath()}

	g.diagnostics.Debug("Inputs: %v", config.Inputs)
	inputs, err := g.scanner.Resolve(config.Inputs)
	if err != nil {
		return err
	}

	classes, err := g.load(inputs, config)
	if err != nil {
		return err
	}

	if config.Dump {
		if err := models.Dump(g.dumpOutput, classes); err != nil {
			return errors.Wrap(errors.UnknownErrorCode, "failed to dump documentation model", err)
		}
		return nil
	}

	docs := make([]models.ClassDoc, len(classes))
	for i, class := range classes {
		docs[i] = class
	}

	store := extractor.NewStore()
	ext := extractor.New(extractor.Options{
		IncludeExceptionDocs: config.IncludeExceptionDocs,
		AnnotationPackage:    config.AnnotationPackage,
		Logger:               g.diagnostics,
	})
	g.summary.Summary = ext.Extract(docs, store)

	g.writeOutput(config, store)
	return nil
}

// load reads every model file and Go package, then links interface references across all of them
func (g *Generator) load(inputs Inputs, config Config) ([]*models.Class, error) {
	var classes []*models.Class
	var problems *errors.MultipleErrors

	for _, path := range inputs.ModelFiles {
		g.diagnostics.Verbose("Loading model %s", path)
		loaded, err := models.LoadFile(path)
		if err != nil {
			addProblem(&problems, err)
			continue
		}
		g.summary.ModelFiles++
		classes = append(classes, loaded...)
	}

	goParser := parser.NewParserWithProcessor(g.fileProcessor, config.AnnotationPackage, g.diagnostics)
	for _, dir := range inputs.PackageDirs {
		packagePath, err := g.moduleResolver.ResolvePackagePath(dir)
		if err != nil {
			addProblem(&problems, errors.Wrapf(errors.ConfigurationErrorCode, err, "failed to resolve module of %s", dir))
			continue
		}
		g.diagnostics.Verbose("Parsing package %s", packageLabel(packagePath, dir))
		parsed, err := goParser.ParseDirectory(dir, packagePath)
		if err != nil {
			addProblem(&problems, err)
			continue
		}
		g.summary.PackagesProcessed++
		classes = append(classes, parsed...)
	}
	g.summary.SkippedAnnotations = goParser.Warnings()

	if err := problems.ErrOrNil(); err != nil {
		return nil, err
	}

	if err := models.Link(classes); err != nil {
		return nil, err
	}
	return classes, nil
}

// writeOutput writes the properties file. Failures are reported through
// diagnostics only, and a failing close is ignored.
func (g *Generator) writeOutput(config Config, store *extractor.Store) {
	path := g.summary.OutputPath
	g.diagnostics.Notice("Writing output to %s", path)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		g.diagnostics.Error("%v", errors.WrapFileSystemError("create directory for", path, err))
		return
	}

	file, err := os.Create(path)
	if err != nil {
		g.diagnostics.Error("%v", errors.WrapFileSystemError("create", path, err))
		return
	}
	defer func() { _ = file.Close() }()

	if err := store.Write(file, config.Header, g.now()); err != nil {
		g.diagnostics.Error("%v", errors.WrapFileSystemError("write", path, err))
		return
	}
	g.summary.Written = true
}

func addProblem(problems **errors.MultipleErrors, err error) {
	coded, ok := err.(errors.CodedError)
	if !ok {
		coded = errors.Wrap(errors.UnknownErrorCode, "failed to load input", err)
	}
	errors.AddToMultiple(problems, coded)
}

func packageLabel(packagePath, dir string) string {
	if packagePath == "" {
		return dir
	}
	return packagePath
}
