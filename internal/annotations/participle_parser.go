package annotations

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/internal/extractor"
	"github.com/toyz/routedoc/internal/models"
)

// ParticipleParser parses annotation text using alecthomas/participle
type ParticipleParser struct {
	parser   *participle.Parser[annotationNode]
	mappings extractor.Mappings
}

// annotationNode is the root of a parsed annotation: @Name(elements)
type annotationNode struct {
	Name     []string       `parser:"'@' @Ident ( '.' @Ident )*"`
	Elements []*elementNode `parser:"( '(' ( @@ ( ',' @@ )* )? ')' )?"`
}

// elementNode is one element; Name is empty for the shorthand value form
type elementNode struct {
	Name  string     `parser:"( @Ident '=' )?"`
	Value *valueNode `parser:"@@"`
}

// valueNode is a literal, a dotted reference or an array of values
type valueNode struct {
	Array    bool         `parser:"( @'{'"`
	Elements []*valueNode `parser:"  ( @@ ( ',' @@ )* ','? )? '}'"`
	Literal  *string      `parser:"| @( String | Char | Number )"`
	Ref      []string     `parser:"| @Ident ( '.' @Ident )* )"`
}

var annotationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Char", Pattern: `'(\\.|[^'\\])+'`},
	{Name: "Number", Pattern: `[-+]?(0[xX][0-9a-fA-F_]+|[0-9][0-9_]*(\.[0-9]+)?([eE][-+]?[0-9]+)?)[lLfFdD]?`},
	{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
	{Name: "Punct", Pattern: `[@.(){},=]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// NewParticipleParser creates a parser that qualifies mapping annotations
// with annotationPackage; empty selects the Spring web binding package.
func NewParticipleParser(annotationPackage string) *ParticipleParser {
	parser := participle.MustBuild[annotationNode](
		participle.Lexer(annotationLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)

	return &ParticipleParser{
		parser:   parser,
		mappings: extractor.NewMappings(annotationPackage),
	}
}

// ParseAnnotation parses one annotation into the model form, element values
// rendered the way javadoc prints them.
func (p *ParticipleParser) ParseAnnotation(text string, location errors.SourceLocation) (models.Annotation, error) {
	node, err := p.parser.ParseString(location.File, strings.TrimSpace(text))
	if err != nil {
		return models.Annotation{}, errors.WrapParseError("annotation", err).
			WithInput(text).
			WithLocation(location)
	}

	annotation := models.Annotation{TypeName: p.typeName(node.Name)}

	unnamed := 0
	for _, element := range node.Elements {
		name := element.Name
		if name == "" {
			unnamed++
			name = "value"
		}
		annotation.Values = append(annotation.Values, models.ElementValue{
			Name:  name,
			Value: p.render(element.Value),
		})
	}
	if unnamed > 0 && len(node.Elements) > 1 {
		return models.Annotation{}, errors.NewSyntaxError(
			fmt.Sprintf("annotation @%s mixes an unnamed value with other elements", strings.Join(node.Name, "."))).
			WithInput(text).
			WithLocation(location)
	}

	return annotation, nil
}

// typeName qualifies the simple names of the mapping annotations
func (p *ParticipleParser) typeName(parts []string) string {
	if len(parts) == 1 && extractor.IsKnownSimpleName(parts[0]) {
		return p.mappings.QualifiedName(parts[0])
	}
	return strings.Join(parts, ".")
}
