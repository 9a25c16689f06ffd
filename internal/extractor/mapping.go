package extractor

import "strings"

// DefaultAnnotationPackage is the package of the Spring web binding annotations
const DefaultAnnotationPackage = "org.springframework.web.bind.annotation"

// Element names inspected on mapping annotations
const (
	valueElement  = "value"
	pathElement   = "path"
	methodElement = "method"
)

const requestMappingName = "RequestMapping"

// fixedVerbAnnotations maps the simple name of every fixed-verb mapping annotation to its verb
var fixedVerbAnnotations = map[string]string{
	"DeleteMapping": "DELETE",
	"GetMapping":    "GET",
	"PatchMapping":  "PATCH",
	"PostMapping":   "POST",
	"PutMapping":    "PUT",
}

// requestMethods maps RequestMethod constants, relative to the annotation package, to verbs
var requestMethods = map[string]string{
	"RequestMethod.DELETE": "DELETE",
	"RequestMethod.GET":    "GET",
	"RequestMethod.PATCH":  "PATCH",
	"RequestMethod.POST":   "POST",
	"RequestMethod.PUT":    "PUT",
}

// Mappings recognizes the mapping annotations of one annotation package
type Mappings struct {
	pkg string
}

// NewMappings returns the mapping tables for annotations declared in pkg.
// An empty pkg selects DefaultAnnotationPackage.
func NewMappings(pkg string) Mappings {
	if pkg == "" {
		pkg = DefaultAnnotationPackage
	}
	return Mappings{pkg: pkg}
}

// Package returns the annotation package
func (m Mappings) Package() string {
	return m.pkg
}

func (m Mappings) simpleName(typeName string) (string, bool) {
	if !strings.HasPrefix(typeName, m.pkg) || len(typeName) <= len(m.pkg) || typeName[len(m.pkg)] != '.' {
		return "", false
	}
	return typeName[len(m.pkg)+1:], true
}

// IsRequestMapping reports whether typeName is the general request-mapping annotation
func (m Mappings) IsRequestMapping(typeName string) bool {
	name, ok := m.simpleName(typeName)
	return ok && name == requestMappingName
}

// FixedVerb returns the verb implied by a fixed-verb mapping annotation
func (m Mappings) FixedVerb(typeName string) (string, bool) {
	name, ok := m.simpleName(typeName)
	if !ok {
		return "", false
	}
	verb, ok := fixedVerbAnnotations[name]
	return verb, ok
}

// IsMapping reports whether typeName is one of the six recognized mapping annotations
func (m Mappings) IsMapping(typeName string) bool {
	if m.IsRequestMapping(typeName) {
		return true
	}
	_, ok := m.FixedVerb(typeName)
	return ok
}

// MethodVerb maps a fully qualified RequestMethod constant to its verb
func (m Mappings) MethodVerb(raw string) (string, bool) {
	name, ok := m.simpleName(raw)
	if !ok {
		return "", false
	}
	verb, ok := requestMethods[name]
	return verb, ok
}

// QualifiedName returns the fully qualified name of a simple annotation or constant name
func (m Mappings) QualifiedName(simple string) string {
	return m.pkg + "." + simple
}

// IsKnownSimpleName reports whether name is the simple name of a mapping
// annotation or of the RequestMethod enum, the names the Go source frontend
// qualifies on its own.
func IsKnownSimpleName(name string) bool {
	if name == requestMappingName || name == "RequestMethod" {
		return true
	}
	_, ok := fixedVerbAnnotations[name]
	return ok
}
