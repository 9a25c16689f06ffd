package models

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/toyz/routedoc/internal/errors"
)

// Document is the serialized form of a documentation model. JSON documents
// are accepted too since YAML is a superset of JSON.
type Document struct {
	Classes []*Class `yaml:"classes" json:"classes"`
}

// LoadFile reads a model document from disk
func LoadFile(path string) ([]*Class, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", path, err)
	}
	classes, err := Load(bytes.NewReader(content))
	if err != nil {
		var coded *errors.BaseError
		switch e := err.(type) {
		case *errors.ValidationError:
			coded = e.BaseError
		case *errors.SyntaxError:
			coded = e.BaseError
		}
		if coded != nil && coded.Loc.IsEmpty() {
			coded.WithLocation(errors.SourceLocation{File: path})
		}
		return nil, err
	}
	return classes, nil
}

// Load decodes a model document and validates it. Interface references are
// left unresolved; call Link once every document has been loaded.
func Load(r io.Reader) ([]*Class, error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.WrapParseError("documentation model", err)
	}

	if err := validate(doc.Classes); err != nil {
		return nil, err
	}
	return doc.Classes, nil
}

// Dump writes classes in the model document format
func Dump(w io.Writer, classes []*Class) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(Document{Classes: classes}); err != nil {
		return fmt.Errorf("failed to encode documentation model: %w", err)
	}
	return encoder.Close()
}

func validate(classes []*Class) error {
	for i, class := range classes {
		if class == nil {
			return errors.NewValidationError(fmt.Sprintf("classes[%d]", i), "a class", "null")
		}
		if class.Name == "" {
			return errors.NewValidationError(fmt.Sprintf("classes[%d].name", i), "a qualified name", "empty")
		}
		for j, method := range class.Methods {
			if method == nil || method.Name == "" {
				return errors.NewValidationError(fmt.Sprintf("%s.methods[%d].name", class.Name, j), "a method name", "empty")
			}
		}
	}
	return nil
}

// Link resolves every class's interface names. A name that matches no class
// becomes an empty interface, the way an undocumented library type would
// appear. The first class declared under a name wins. Cyclic interface
// hierarchies are rejected.
func Link(classes []*Class) error {
	byName := make(map[string]*Class, len(classes))
	for _, class := range classes {
		if _, exists := byName[class.Name]; !exists {
			byName[class.Name] = class
		}
	}

	for _, class := range classes {
		class.interfaces = class.interfaces[:0]
		for _, name := range class.InterfaceNames {
			intf, ok := byName[name]
			if !ok {
				intf = &Class{Name: name, Interface: true}
				byName[name] = intf
			}
			class.interfaces = append(class.interfaces, intf)
		}
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[*Class]int)
	var visit func(c *Class, path []string) error
	visit = func(c *Class, path []string) error {
		switch state[c] {
		case visiting:
			return errors.NewValidationError(c.Name+".interfaces", "an acyclic interface hierarchy",
				fmt.Sprintf("cycle %v", append(path, c.Name)))
		case done:
			return nil
		}
		state[c] = visiting
		for _, intf := range c.interfaces {
			if err := visit(intf, append(path, c.Name)); err != nil {
				return err
			}
		}
		state[c] = done
		return nil
	}

	for _, class := range classes {
		if err := visit(class, nil); err != nil {
			return err
		}
	}
	return nil
}
