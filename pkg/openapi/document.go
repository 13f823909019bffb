package openapi

import (
	"errors"
)

// Source identifies where an OpenAPI document originated so loaders can
// operate on files, fs.FS entries or URLs.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Document wraps the raw OpenAPI payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("openapi: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the OpenAPI payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Operation is the subset of an OpenAPI operation needed to derive fields.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	RequestBody Schema
}

// NewOperation validates core fields.
func NewOperation(id, method, path string, request Schema) (Operation, error) {
	if id == "" {
		return Operation{}, errors.New("openapi: operation id is required")
	}
	if method == "" {
		return Operation{}, errors.New("openapi: operation method is required")
	}
	if path == "" {
		return Operation{}, errors.New("openapi: operation path is required")
	}
	return Operation{
		ID:          id,
		Method:      method,
		Path:        path,
		RequestBody: request,
	}, nil
}

// Schema is a request body or one of its nested properties.
type Schema struct {
	Ref         string
	Type        string
	Format      string
	Required    []string
	Properties  map[string]Schema
	Items       *Schema
	Enum        []any
	Description string
	Default     any
	Minimum     *float64
	Maximum     *float64
	MinLength   *int
	MaxLength   *int
	Pattern     string
	ReadOnly    bool
	Extensions  map[string]any
}

// Clone creates a deep copy of the schema tree.
func (s Schema) Clone() Schema {
	cloned := s
	if len(s.Required) > 0 {
		cloned.Required = append([]string(nil), s.Required...)
	}
	if len(s.Enum) > 0 {
		cloned.Enum = append([]any(nil), s.Enum...)
	}
	if len(s.Properties) > 0 {
		cloned.Properties = make(map[string]Schema, len(s.Properties))
		for k, v := range s.Properties {
			cloned.Properties[k] = v.Clone()
		}
	}
	if s.Items != nil {
		items := s.Items.Clone()
		cloned.Items = &items
	}
	if len(s.Extensions) > 0 {
		cloned.Extensions = make(map[string]any, len(s.Extensions))
		for k, v := range s.Extensions {
			cloned.Extensions[k] = v
		}
	}
	return cloned
}

// Extension returns the string value of an extension key.
func (s Schema) Extension(key string) (string, bool) {
	raw, ok := s.Extensions[key]
	if !ok {
		return "", false
	}
	value, ok := raw.(string)
	return value, ok && value != ""
}

// IsRequired reports whether name is listed in Required.
func (s Schema) IsRequired(name string) bool {
	for _, candidate := range s.Required {
		if candidate == name {
			return true
		}
	}
	return false
}
