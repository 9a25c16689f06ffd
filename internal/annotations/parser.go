package annotations

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/toyz/routedoc/internal/models"
)

// SplitDocComment splits comment text, as returned by ast.CommentGroup.Text,
// into its parts. Free text runs up to the first line starting with '@'.
// A lowercase @name starts a block tag whose text continues on the
// following lines; any other @Name starts an annotation that may span lines
// until its parentheses balance.
func SplitDocComment(text string) DocComment {
	var (
		doc       DocComment
		free      []string
		blocks    bool
		tag       *models.Tag
		pending   *RawAnnotation
		openParen int
	)

	flushTag := func() {
		if tag != nil {
			tag.Text = strings.TrimSpace(tag.Text)
			doc.Tags = append(doc.Tags, *tag)
			tag = nil
		}
	}

	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if pending != nil {
			pending.Text += " " + trimmed
			openParen = parenDepth(trimmed, openParen)
			if openParen <= 0 {
				doc.Annotations = append(doc.Annotations, *pending)
				pending = nil
			}
			continue
		}

		if name, ok := blockName(trimmed); ok {
			blocks = true
			flushTag()
			if isTagName(name) {
				tag = &models.Tag{Name: "@" + name, Text: strings.TrimSpace(trimmed[len(name)+1:])}
				continue
			}
			openParen = parenDepth(trimmed, 0)
			if openParen > 0 {
				pending = &RawAnnotation{Text: trimmed, Line: i}
				continue
			}
			doc.Annotations = append(doc.Annotations, RawAnnotation{Text: trimmed, Line: i})
			continue
		}

		switch {
		case !blocks:
			free = append(free, line)
		case tag != nil:
			tag.Text += "\n" + trimmed
		}
	}

	if pending != nil {
		// unbalanced; keep it so the parser reports the problem
		doc.Annotations = append(doc.Annotations, *pending)
	}
	flushTag()

	doc.Text = strings.TrimSpace(strings.Join(free, "\n"))
	return doc
}

// blockName returns the name following a leading '@'
func blockName(line string) (string, bool) {
	if !strings.HasPrefix(line, "@") {
		return "", false
	}
	end := strings.IndexFunc(line[1:], func(r rune) bool {
		return unicode.IsSpace(r) || r == '('
	})
	name := line[1:]
	if end >= 0 {
		name = line[1 : end+1]
	}
	return name, name != ""
}

// isTagName reports whether name is a javadoc block tag rather than an annotation
func isTagName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsLower(r) && !strings.Contains(name, ".")
}

// parenDepth adds the parenthesis balance of s, outside literals, to depth
func parenDepth(s string, depth int) int {
	var quote rune
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
		case quote != 0:
			if r == '\\' {
				escaped = true
			} else if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			depth--
		}
	}
	return depth
}
