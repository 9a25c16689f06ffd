// Package parser builds documentation models from Go source. Named struct
// and interface types become classes; their doc comments carry the
// annotations and block tags.
package parser

import (
	"go/ast"
	"go/token"
	"path/filepath"

	"github.com/toyz/routedoc/internal/annotations"
	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/internal/models"
	"github.com/toyz/routedoc/internal/utils"
)

// Parser extracts documented classes from Go packages
type Parser struct {
	fileProcessor *utils.FileProcessor
	annotations   *annotations.ParticipleParser
	reporter      Reporter
	warnings      int
}

// NewParser creates a parser that qualifies mapping annotations with annotationPackage
func NewParser(annotationPackage string, reporter Reporter) *Parser {
	return NewParserWithProcessor(utils.NewFileProcessor(), annotationPackage, reporter)
}

// NewParserWithProcessor creates a parser sharing an existing file processor
func NewParserWithProcessor(fp *utils.FileProcessor, annotationPackage string, reporter Reporter) *Parser {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Parser{
		fileProcessor: fp,
		annotations:   annotations.NewParticipleParser(annotationPackage),
		reporter:      reporter,
	}
}

// Warnings returns how many annotations were skipped because they did not parse
func (p *Parser) Warnings() int {
	return p.warnings
}

// ParseSource parses a single source file held in memory. packagePath
// qualifies class names; empty uses the Go package name.
func (p *Parser) ParseSource(filename, source, packagePath string) ([]*models.Class, error) {
	file, err := p.fileProcessor.FileReader().ParseGoSource(filename, source)
	if err != nil {
		return nil, errors.WrapParseError(filename, err)
	}
	if packagePath == "" {
		packagePath = file.Name.Name
	}
	return p.buildClasses([]utils.ParsedFile{{Path: filename, File: file}}, packagePath), nil
}

// ParseDirectory parses the non-test Go files of one package directory
func (p *Parser) ParseDirectory(dir, packagePath string) ([]*models.Class, error) {
	files, packageName, err := p.fileProcessor.ParseDirectoryFiles(dir)
	if err != nil {
		return nil, errors.WrapParseError("package "+filepath.Base(dir), err).
			WithLocation(errors.SourceLocation{File: dir})
	}
	if packagePath == "" {
		packagePath = packageName
	}
	return p.buildClasses(files, packagePath), nil
}

// typeInfo is one named struct or interface type of the package
type typeInfo struct {
	name  string
	doc   *ast.CommentGroup
	iface *ast.InterfaceType
	class *models.Class
	// methodKeys holds name+signature+results of every method, exported or not
	methodKeys []string
}

func (p *Parser) buildClasses(files []utils.ParsedFile, packagePath string) []*models.Class {
	var types []*typeInfo
	byName := make(map[string]*typeInfo)

	for _, pf := range files {
		for _, decl := range pf.File.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(gen.Specs) == 1 {
					doc = gen.Doc
				}
				info := &typeInfo{name: ts.Name.Name, doc: doc}
				switch t := ts.Type.(type) {
				case *ast.StructType:
				case *ast.InterfaceType:
					info.iface = t
				default:
					continue
				}
				info.class = &models.Class{
					Name:        packagePath + "." + ts.Name.Name,
					Interface:   info.iface != nil,
					Annotations: p.parseAnnotations(p.split(doc), p.location(doc)),
				}
				types = append(types, info)
				byName[info.name] = info
			}
		}
	}

	for _, pf := range files {
		for _, decl := range pf.File.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || len(fn.Recv.List) == 0 {
				continue
			}
			info, ok := byName[receiverName(fn.Recv.List[0].Type)]
			if !ok || info.iface != nil {
				continue
			}
			info.methodKeys = append(info.methodKeys, methodKey(fn.Name.Name, fn.Type))
			if fn.Name.IsExported() {
				info.class.Methods = append(info.class.Methods, p.buildMethod(fn.Name.Name, fn.Type, fn.Doc))
			}
		}
	}

	for _, info := range types {
		if info.iface == nil {
			continue
		}
		for _, field := range info.iface.Methods.List {
			fnType, ok := field.Type.(*ast.FuncType)
			if !ok {
				if embedded, ok := byName[embeddedName(field.Type)]; ok && embedded.iface != nil {
					info.class.InterfaceNames = append(info.class.InterfaceNames, embedded.class.Name)
				}
				continue
			}
			for _, name := range field.Names {
				info.methodKeys = append(info.methodKeys, methodKey(name.Name, fnType))
				info.class.Methods = append(info.class.Methods, p.buildMethod(name.Name, fnType, field.Doc))
			}
		}
	}

	classes := make([]*models.Class, 0, len(types))
	for _, info := range types {
		if info.iface == nil {
			info.class.InterfaceNames = implementedInterfaces(info, types, byName)
		}
		classes = append(classes, info.class)
	}
	return classes
}

func (p *Parser) buildMethod(name string, fnType *ast.FuncType, doc *ast.CommentGroup) *models.Method {
	parts := p.split(doc)
	return &models.Method{
		Name:        name,
		Signature:   Signature(fnType),
		Comment:     parts.Text,
		Annotations: p.parseAnnotations(parts, p.location(doc)),
		Tags:        parts.Tags,
	}
}

func (p *Parser) split(doc *ast.CommentGroup) annotations.DocComment {
	if doc == nil {
		return annotations.DocComment{}
	}
	return annotations.SplitDocComment(doc.Text())
}

func (p *Parser) parseAnnotations(doc annotations.DocComment, loc errors.SourceLocation) []models.Annotation {
	var parsed []models.Annotation
	for _, raw := range doc.Annotations {
		at := loc
		if at.Line > 0 {
			at.Line += raw.Line
		}
		annotation, err := p.annotations.ParseAnnotation(raw.Text, at)
		if err != nil {
			p.warnings++
			p.reporter.Warn("skipping annotation: %v", err)
			continue
		}
		parsed = append(parsed, annotation)
	}
	return parsed
}

func (p *Parser) location(doc *ast.CommentGroup) errors.SourceLocation {
	if doc == nil {
		return errors.SourceLocation{}
	}
	pos := p.fileProcessor.FileReader().Position(doc.Pos())
	return errors.SourceLocation{File: pos.Filename, Line: pos.Line}
}

// implementedInterfaces lists the package interfaces whose whole method set the struct provides
func implementedInterfaces(info *typeInfo, types []*typeInfo, byName map[string]*typeInfo) []string {
	provided := make(map[string]bool, len(info.methodKeys))
	for _, key := range info.methodKeys {
		provided[key] = true
	}

	var names []string
	for _, candidate := range types {
		if candidate.iface == nil {
			continue
		}
		required := methodSet(candidate, byName, make(map[string]bool))
		if len(required) == 0 {
			continue
		}
		matches := true
		for _, key := range required {
			if !provided[key] {
				matches = false
				break
			}
		}
		if matches {
			names = append(names, candidate.class.Name)
		}
	}
	return names
}

// methodSet returns the method keys of an interface including embedded package interfaces
func methodSet(info *typeInfo, byName map[string]*typeInfo, seen map[string]bool) []string {
	if seen[info.name] {
		return nil
	}
	seen[info.name] = true

	keys := append([]string(nil), info.methodKeys...)
	for _, field := range info.iface.Methods.List {
		if _, ok := field.Type.(*ast.FuncType); ok {
			continue
		}
		if embedded, ok := byName[embeddedName(field.Type)]; ok && embedded.iface != nil {
			keys = append(keys, methodSet(embedded, byName, seen)...)
		}
	}
	return keys
}
