// Package annotations reads Java-style annotations and javadoc block tags
// out of Go doc comments.
package annotations

import "github.com/toyz/routedoc/internal/models"

// DocComment is a doc comment split into free text, block tags and raw annotations
type DocComment struct {
	Text        string
	Tags        []models.Tag
	Annotations []RawAnnotation
}

// RawAnnotation is the unparsed text of one annotation
type RawAnnotation struct {
	Text string
	// Line is the zero-based line of the comment the annotation starts on
	Line int
}
