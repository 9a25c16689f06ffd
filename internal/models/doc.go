// Package models holds the documentation tree the extractor walks: classes,
// their methods, annotations and javadoc block tags. Backends build the
// concrete records; the extractor only sees the Get* accessor interfaces.
package models

import "strings"

// ClassDoc is the read-only view of a documented class or interface
type ClassDoc interface {
	GetQualifiedName() string
	IsInterface() bool
	GetAnnotations() []AnnotationDesc
	GetMethods() []MethodDoc
	GetInterfaces() []ClassDoc
}

// MethodDoc is the read-only view of a documented method
type MethodDoc interface {
	GetName() string
	GetSignature() string
	GetAnnotations() []AnnotationDesc
	GetCommentText() string
	GetTags() []Tag
	GetParamTags() []ParamTag
	GetThrowsTags() []ThrowsTag
}

// AnnotationDesc is the read-only view of an annotation usage
type AnnotationDesc interface {
	GetTypeName() string
	GetElementValues() []ElementValue
}

// ElementValue is one name=value pair of an annotation. Value is the
// source-like rendering of the value: string literals keep their quotes,
// arrays with more than one element are written as {a, b}.
type ElementValue struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// Tag is a javadoc block tag; Name includes the leading '@'
type Tag struct {
	Name string `yaml:"name" json:"name"`
	Text string `yaml:"text" json:"text"`
}

// ParamTag is a parsed @param tag
type ParamTag struct {
	ParameterName    string
	ParameterComment string
}

// ThrowsTag is a parsed @throws or @exception tag
type ThrowsTag struct {
	ExceptionName    string
	ExceptionComment string
}

// SimpleName returns the exception type without its package qualifier
func (t ThrowsTag) SimpleName() string {
	if i := strings.LastIndex(t.ExceptionName, "."); i >= 0 {
		return t.ExceptionName[i+1:]
	}
	return t.ExceptionName
}

// Tag names understood by the accessors
const (
	ParamTagName     = "@param"
	ReturnTagName    = "@return"
	ThrowsTagName    = "@throws"
	ExceptionTagName = "@exception"
)

// Annotation is an annotation usage with its element values in declaration order
type Annotation struct {
	TypeName string         `yaml:"type" json:"type"`
	Values   []ElementValue `yaml:"values,omitempty" json:"values,omitempty"`
}

func (a Annotation) GetTypeName() string {
	return a.TypeName
}

func (a Annotation) GetElementValues() []ElementValue {
	return a.Values
}

// Method is a documented method
type Method struct {
	Name        string       `yaml:"name" json:"name"`
	Signature   string       `yaml:"signature" json:"signature"`
	Comment     string       `yaml:"comment,omitempty" json:"comment,omitempty"`
	Annotations []Annotation `yaml:"annotations,omitempty" json:"annotations,omitempty"`
	Tags        []Tag        `yaml:"tags,omitempty" json:"tags,omitempty"`
}

func (m *Method) GetName() string {
	return m.Name
}

func (m *Method) GetSignature() string {
	return m.Signature
}

func (m *Method) GetAnnotations() []AnnotationDesc {
	return toAnnotationDescs(m.Annotations)
}

func (m *Method) GetCommentText() string {
	return m.Comment
}

func (m *Method) GetTags() []Tag {
	return m.Tags
}

// GetParamTags splits every @param tag into the parameter name and its
// comment. Type parameter tags (@param <T> ...) are not parameters.
func (m *Method) GetParamTags() []ParamTag {
	var params []ParamTag
	for _, tag := range m.Tags {
		if tag.Name != ParamTagName {
			continue
		}
		name, comment := splitFirstWord(tag.Text)
		if strings.HasPrefix(name, "<") {
			continue
		}
		params = append(params, ParamTag{ParameterName: name, ParameterComment: comment})
	}
	return params
}

// GetThrowsTags splits every @throws and @exception tag into the exception type and its comment
func (m *Method) GetThrowsTags() []ThrowsTag {
	var throws []ThrowsTag
	for _, tag := range m.Tags {
		if tag.Name != ThrowsTagName && tag.Name != ExceptionTagName {
			continue
		}
		name, comment := splitFirstWord(tag.Text)
		throws = append(throws, ThrowsTag{ExceptionName: name, ExceptionComment: comment})
	}
	return throws
}

// Class is a documented class or interface. InterfaceNames are resolved
// into GetInterfaces by Link.
type Class struct {
	Name           string       `yaml:"name" json:"name"`
	Interface      bool         `yaml:"interface,omitempty" json:"interface,omitempty"`
	InterfaceNames []string     `yaml:"interfaces,omitempty" json:"interfaces,omitempty"`
	Annotations    []Annotation `yaml:"annotations,omitempty" json:"annotations,omitempty"`
	Methods        []*Method    `yaml:"methods,omitempty" json:"methods,omitempty"`

	interfaces []*Class
}

func (c *Class) GetQualifiedName() string {
	return c.Name
}

func (c *Class) IsInterface() bool {
	return c.Interface
}

func (c *Class) GetAnnotations() []AnnotationDesc {
	return toAnnotationDescs(c.Annotations)
}

func (c *Class) GetMethods() []MethodDoc {
	methods := make([]MethodDoc, len(c.Methods))
	for i, m := range c.Methods {
		methods[i] = m
	}
	return methods
}

func (c *Class) GetInterfaces() []ClassDoc {
	interfaces := make([]ClassDoc, len(c.interfaces))
	for i, intf := range c.interfaces {
		interfaces[i] = intf
	}
	return interfaces
}

func toAnnotationDescs(annotations []Annotation) []AnnotationDesc {
	descs := make([]AnnotationDesc, len(annotations))
	for i, a := range annotations {
		descs[i] = a
	}
	return descs
}

// splitFirstWord separates the leading whitespace-delimited word from the rest of text
func splitFirstWord(text string) (string, string) {
	text = strings.TrimSpace(text)
	i := strings.IndexAny(text, " \t\n\r")
	if i < 0 {
		return text, ""
	}
	return text[:i], strings.TrimSpace(text[i+1:])
}
