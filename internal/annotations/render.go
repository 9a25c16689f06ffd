package annotations

import (
	"strings"

	"github.com/toyz/routedoc/internal/extractor"
)

// render prints a value like javadoc does: literals as written, arrays of
// one element as that element, other arrays as {a, b} and RequestMethod
// constants fully qualified.
func (p *ParticipleParser) render(v *valueNode) string {
	switch {
	case v == nil:
		return ""
	case v.Array:
		if len(v.Elements) == 1 {
			return p.render(v.Elements[0])
		}
		parts := make([]string, len(v.Elements))
		for i, element := range v.Elements {
			parts[i] = p.render(element)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case v.Literal != nil:
		return *v.Literal
	default:
		if len(v.Ref) == 2 && extractor.IsKnownSimpleName(v.Ref[0]) {
			return p.mappings.QualifiedName(strings.Join(v.Ref, "."))
		}
		return strings.Join(v.Ref, ".")
	}
}
