// Package extractor derives HTTP routes from mapping annotations and
// flattens the documentation of every endpoint method into
// <route>.<VERB>.<field> keys.
package extractor

import (
	"strconv"

	"github.com/toyz/routedoc/internal/models"
)

// Key suffixes of the emitted fields
const (
	notesField  = "notes"
	paramField  = "param"
	returnField = "return"
	throwsField = "throws"
)

// Logger receives progress messages; *utils.DiagnosticSystem satisfies it
type Logger interface {
	Verbose(format string, args ...interface{})
	Debug(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Verbose(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{})   {}

// Options configures an Extractor
type Options struct {
	// IncludeExceptionDocs enables the <route>.throws.<i> keys
	IncludeExceptionDocs bool
	// AnnotationPackage overrides DefaultAnnotationPackage
	AnnotationPackage string
	Logger            Logger
}

// Summary counts what one extraction pass did
type Summary struct {
	Classes          int
	Methods          int
	Routes           int
	SkippedFragments int
	InheritedDocs    int
	Keys             int
}

// Stats returns the summary in the shape DiagnosticSystem.Summary expects
func (s Summary) Stats() map[string]interface{} {
	return map[string]interface{}{
		"Classes":           s.Classes,
		"Methods":           s.Methods,
		"Routes":            s.Routes,
		"Skipped fragments": s.SkippedFragments,
		"Inherited docs":    s.InheritedDocs,
		"Keys written":      s.Keys,
	}
}

// Extractor walks documented classes and fills a Store
type Extractor struct {
	mappings      Mappings
	includeThrows bool
	logger        Logger
}

// New creates an Extractor
func New(opts Options) *Extractor {
	logger := opts.Logger
	if logger == nil {
		logger = nopLogger{}
	}
	return &Extractor{
		mappings:      NewMappings(opts.AnnotationPackage),
		includeThrows: opts.IncludeExceptionDocs,
		logger:        logger,
	}
}

// Extract processes classes in order and writes their documentation keys to store
func (e *Extractor) Extract(classes []models.ClassDoc, store *Store) Summary {
	var summary Summary
	for _, class := range classes {
		e.processClass(class, store, &summary)
	}
	return summary
}

func (e *Extractor) processClass(class models.ClassDoc, store *Store, summary *Summary) {
	summary.Classes++
	route := ResolveClassRoute(class, e.mappings)
	e.logger.Debug("%s: prefix %q, default verb %q", class.GetQualifiedName(), route.PathPrefix, route.DefaultVerb)

	for _, method := range class.GetMethods() {
		summary.Methods++
		e.processMethod(class, route, method, store, summary)
	}
}

func (e *Extractor) processMethod(class models.ClassDoc, classRoute ClassRoute, method models.MethodDoc, store *Store, summary *Summary) {
	var source models.MethodDoc
	docSource := func() models.MethodDoc {
		if source != nil {
			return source
		}
		source = method
		if method.GetCommentText() == "" {
			if inherited, ok := FindInterfaceMethod(class.GetInterfaces(), method); ok {
				e.logger.Verbose("%s.%s%s inherits its documentation", class.GetQualifiedName(), method.GetName(), method.GetSignature())
				summary.InheritedDocs++
				source = inherited
			}
		}
		return source
	}

	for _, ann := range method.GetAnnotations() {
		if !e.mappings.IsMapping(ann.GetTypeName()) {
			continue
		}
		for _, fragment := range PathValues(ann) {
			verb, ok := ResolveVerb(ann, classRoute, e.mappings)
			if !ok {
				summary.SkippedFragments++
				e.logger.Debug("%s.%s: no verb for path %s", class.GetQualifiedName(), method.GetName(), fragment)
				continue
			}
			route := ComposeRoute(classRoute.PathPrefix, fragment, verb)
			summary.Routes++
			summary.Keys += e.emit(route, docSource(), store)
		}
	}
}

// emit writes the documentation fields of doc under route and returns how many keys were written
func (e *Extractor) emit(route string, doc models.MethodDoc, store *Store) int {
	written := 0
	save := func(key, value string) {
		if store.Save(key, value) {
			written++
		}
	}

	save(route+"."+notesField, doc.GetCommentText())

	for _, param := range doc.GetParamTags() {
		save(route+"."+paramField+"."+param.ParameterName, param.ParameterComment)
	}

	for _, tag := range doc.GetTags() {
		if tag.Name == models.ReturnTagName {
			save(route+"."+returnField, tag.Text)
			break
		}
	}

	if e.includeThrows {
		for i, throws := range doc.GetThrowsTags() {
			save(route+"."+throwsField+"."+strconv.Itoa(i), throws.SimpleName()+"-"+throws.ExceptionComment)
		}
	}
	return written
}
