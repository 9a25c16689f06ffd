package extractor

import (
	"strings"

	"github.com/toyz/routedoc/internal/models"
)

// ClassRoute is the class-level part of every route of a class
type ClassRoute struct {
	PathPrefix string
	// DefaultVerb is the raw method element text of the class mapping
	DefaultVerb string
	HasDefault  bool
}

// ResolveClassRoute reads the path prefix and default verb from the first
// RequestMapping annotation of class. Every value or path element of that
// annotation is appended to the prefix.
func ResolveClassRoute(class models.ClassDoc, mappings Mappings) ClassRoute {
	var route ClassRoute
	for _, ann := range class.GetAnnotations() {
		if !mappings.IsRequestMapping(ann.GetTypeName()) {
			continue
		}
		var prefix strings.Builder
		for _, ev := range ann.GetElementValues() {
			switch ev.Name {
			case valueElement, pathElement:
				prefix.WriteString(NormalizePathPrefix(ev.Value))
			case methodElement:
				route.DefaultVerb = ev.Value
				route.HasDefault = true
			}
		}
		route.PathPrefix = prefix.String()
		break
	}
	return route
}

// NormalizePathPrefix unquotes raw and makes it start with a slash and not end with one
func NormalizePathPrefix(raw string) string {
	path := stripQuotes(raw)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimSuffix(path, "/")
}

// PathValues splits the value or path element of a mapping annotation into
// raw path fragments. An annotation with neither element yields none.
func PathValues(ann models.AnnotationDesc) []string {
	for _, ev := range ann.GetElementValues() {
		if ev.Name != valueElement && ev.Name != pathElement {
			continue
		}
		list := strings.TrimPrefix(ev.Value, "{")
		list = strings.TrimSuffix(list, "}")
		return strings.Split(list, ", ")
	}
	return nil
}

// ResolveVerb determines the verb of one mapping annotation occurrence.
// RequestMapping uses its method element when that names a known
// RequestMethod and the class default otherwise; fixed-verb annotations
// always use their own verb.
func ResolveVerb(ann models.AnnotationDesc, class ClassRoute, mappings Mappings) (string, bool) {
	typeName := ann.GetTypeName()
	if mappings.IsRequestMapping(typeName) {
		for _, ev := range ann.GetElementValues() {
			if ev.Name != methodElement {
				continue
			}
			if verb, ok := mappings.MethodVerb(ev.Value); ok {
				return verb, true
			}
			break
		}
		return defaultVerb(class, mappings)
	}
	return mappings.FixedVerb(typeName)
}

// defaultVerb normalizes the class default through the RequestMethod table
func defaultVerb(class ClassRoute, mappings Mappings) (string, bool) {
	if !class.HasDefault {
		return "", false
	}
	return mappings.MethodVerb(class.DefaultVerb)
}

// ComposeRoute joins the class prefix, an unquoted path fragment and the verb
// into the route part of an output key.
func ComposeRoute(prefix, fragment, verb string) string {
	path := strings.ReplaceAll(stripQuotes(fragment), `\\`, `\`)

	var route strings.Builder
	route.WriteString(prefix)
	if !strings.HasPrefix(path, "/") {
		route.WriteByte('/')
	}
	route.WriteString(path)
	route.WriteByte('.')
	route.WriteString(verb)
	return route.String()
}

func stripQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
