package openapi

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-fieldedit/pkg/bundle"
)

// Field is one editable property of an operation request body.
type Field struct {
	// Name is the dotted property path, e.g. "address.city".
	Name        string
	Required    bool
	Description string
	Default     string
	Rule        string
	Bundle      bundle.Bundle
}

// Fields flattens the request body of op into editable fields sorted by
// name. Nested objects contribute their properties under a dotted path;
// arrays are skipped.
func (r *Resolver) Fields(op Operation) ([]Field, error) {
	var fields []Field
	if err := r.collect(op.RequestBody, "", &fields); err != nil {
		return nil, fmt.Errorf("openapi: operation %s: %w", op.ID, err)
	}
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Name < fields[j].Name
	})
	return fields, nil
}

func (r *Resolver) collect(schema Schema, prefix string, out *[]Field) error {
	for name, prop := range schema.Properties {
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		switch prop.Type {
		case "array":
			continue
		case "object":
			if len(prop.Properties) > 0 {
				if err := r.collect(prop, path, out); err != nil {
					return err
				}
				continue
			}
		}

		b, ruleName, err := r.Resolve(prop)
		if err != nil {
			return fmt.Errorf("property %s: %w", path, err)
		}
		b.Name = nonEmpty(b.Name, path)
		field := Field{
			Name:        path,
			Required:    schema.IsRequired(name),
			Description: bundle.SanitizeText(prop.Description),
			Rule:        ruleName,
			Bundle:      b,
		}
		if prop.Default != nil {
			field.Default = fmt.Sprint(prop.Default)
		}
		*out = append(*out, field)
	}
	return nil
}

func nonEmpty(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
