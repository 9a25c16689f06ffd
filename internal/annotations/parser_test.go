package annotations

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toyz/routedoc/internal/models"
)

func TestSplitDocComment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected DocComment
	}{
		{
			name:     "text only",
			input:    "Get pet\nby its id.\n",
			expected: DocComment{Text: "Get pet\nby its id."},
		},
		{
			name: "tags and annotations",
			input: "Get pet\n\n@GetMapping(\"/{id}\")\n@param id pet id\n@return the pet\n",
			expected: DocComment{
				Text: "Get pet",
				Tags: []models.Tag{
					{Name: "@param", Text: "id pet id"},
					{Name: "@return", Text: "the pet"},
				},
				Annotations: []RawAnnotation{{Text: `@GetMapping("/{id}")`, Line: 2}},
			},
		},
		{
			name:  "tag continuation lines",
			input: "Updates.\n@param body the new\n  representation\n@throws NotFoundException when\nmissing",
			expected: DocComment{
				Text: "Updates.",
				Tags: []models.Tag{
					{Name: "@param", Text: "body the new\nrepresentation"},
					{Name: "@throws", Text: "NotFoundException when\nmissing"},
				},
			},
		},
		{
			name:  "multi-line annotation",
			input: "@RequestMapping(\n  value = {\"/a\", \"/b\"},\n  method = RequestMethod.GET)\n@return things",
			expected: DocComment{
				Tags: []models.Tag{{Name: "@return", Text: "things"}},
				Annotations: []RawAnnotation{{
					Text: `@RequestMapping( value = {"/a", "/b"}, method = RequestMethod.GET)`,
					Line: 0,
				}},
			},
		},
		{
			name:  "parentheses inside strings",
			input: "@GetMapping(\"/(x\")\n@return y",
			expected: DocComment{
				Tags:        []models.Tag{{Name: "@return", Text: "y"}},
				Annotations: []RawAnnotation{{Text: `@GetMapping("/(x")`}},
			},
		},
		{
			name:  "qualified annotation",
			input: "@org.example.Audit\n@deprecated use v2",
			expected: DocComment{
				Tags:        []models.Tag{{Name: "@deprecated", Text: "use v2"}},
				Annotations: []RawAnnotation{{Text: "@org.example.Audit"}},
			},
		},
		{
			name:  "unbalanced annotation kept",
			input: "@GetMapping(\"/x\"\nstill open",
			expected: DocComment{
				Annotations: []RawAnnotation{{Text: "@GetMapping(\"/x\" still open"}},
			},
		},
		{
			name:  "lines after an annotation are not text",
			input: "Intro\n@Audited\ntrailing words",
			expected: DocComment{
				Text:        "Intro",
				Annotations: []RawAnnotation{{Text: "@Audited", Line: 1}},
			},
		},
		{
			name:     "lone at sign is text",
			input:    "mail me @ home",
			expected: DocComment{Text: "mail me @ home"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitDocComment(tt.input))
		})
	}
}

func TestParenDepth(t *testing.T) {
	assert.Equal(t, 1, parenDepth(`@A("x"`, 0))
	assert.Equal(t, 0, parenDepth(`@A(")")`, 0))
	assert.Equal(t, 0, parenDepth(`@A('(')`, 0))
	assert.Equal(t, 0, parenDepth(`@A("\")")`, 0))
	assert.Equal(t, 1, parenDepth(`x)`, 2))
}
