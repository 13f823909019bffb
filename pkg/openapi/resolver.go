package openapi

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-fieldedit/pkg/bundle"
	"github.com/goliatone/go-fieldedit/pkg/validator"
)

// Extension keys read from schema properties.
const (
	ExtTemplate    = "x-fieldedit-template"
	ExtPreset      = "x-fieldedit-preset"
	ExtPlaceholder = "x-fieldedit-placeholder"
	ExtPrefix      = "x-fieldedit-prefix"
	ExtSuffix      = "x-fieldedit-suffix"
)

// Built-in rule names.
const (
	RuleReadOnly = "readonly"
	RulePreset   = "preset"
	RuleChoice   = "choice"
	RuleTemplate = "template"
	RuleFormat   = "format"
	RuleInteger  = "integer"
	RuleNumber   = "number"
	RuleBoolean  = "boolean"
)

// Matcher decides whether a rule handles the supplied schema.
type Matcher func(schema Schema) bool

// Builder produces the bundle for a schema accepted by its matcher.
type Builder func(schema Schema) (bundle.Bundle, error)

type rule struct {
	name     string
	priority int
	match    Matcher
	build    Builder
	order    int
}

// Resolver selects a bundle for a schema property based on registered rules.
// Higher priority wins; ties fall back to registration order. Properties no
// rule accepts get a plain text bundle.
type Resolver struct {
	mu      sync.RWMutex
	rules   []rule
	catalog *bundle.Catalog
}

// NewResolver constructs a resolver with the built-in rules registered.
// Presets named through x-fieldedit-preset are looked up in catalog.
func NewResolver(catalog *bundle.Catalog) *Resolver {
	if catalog == nil {
		catalog = bundle.NewCatalog()
	}
	r := &Resolver{catalog: catalog}
	r.registerBuiltins()
	return r
}

// Register adds a rule with the provided name and priority. The latest
// registration of a duplicate name still competes on priority.
func (r *Resolver) Register(name string, priority int, match Matcher, build Builder) {
	if r == nil || match == nil || build == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    match,
		build:    build,
		order:    len(r.rules),
	})
}

// Resolve returns the bundle for a schema property together with the name of
// the rule that produced it. Length and pattern constraints are layered onto
// free-text bundles, and presentation extensions are applied last.
func (r *Resolver) Resolve(schema Schema) (bundle.Bundle, string, error) {
	b, name, err := r.base(schema)
	if err != nil {
		return bundle.Bundle{}, name, err
	}
	if !b.FixedChoice() && !b.ReadOnly {
		b, err = constrain(b, schema)
		if err != nil {
			return bundle.Bundle{}, name, err
		}
	}
	return present(b, schema).Sanitized(), name, nil
}

func (r *Resolver) base(schema Schema) (bundle.Bundle, string, error) {
	if r == nil {
		return bundle.Bundle{Name: "text"}, "", nil
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if !entry.match(schema) {
			continue
		}
		b, err := entry.build(schema)
		if err != nil {
			return bundle.Bundle{}, entry.name, fmt.Errorf("openapi: rule %s: %w", entry.name, err)
		}
		return b, entry.name, nil
	}
	return bundle.Bundle{Name: "text"}, "", nil
}

func (r *Resolver) registerBuiltins() {
	r.Register(RuleReadOnly, 100, func(s Schema) bool {
		return s.ReadOnly
	}, func(Schema) (bundle.Bundle, error) {
		return bundle.ReadOnly(), nil
	})

	r.Register(RulePreset, 95, func(s Schema) bool {
		_, ok := s.Extension(ExtPreset)
		return ok
	}, func(s Schema) (bundle.Bundle, error) {
		name, _ := s.Extension(ExtPreset)
		b, ok := r.catalog.Lookup(name)
		if !ok {
			return bundle.Bundle{}, fmt.Errorf("unknown preset %q", name)
		}
		return b, nil
	})

	r.Register(RuleChoice, 90, func(s Schema) bool {
		return len(s.Enum) > 0
	}, func(s Schema) (bundle.Bundle, error) {
		values := make([]string, 0, len(s.Enum))
		for _, v := range s.Enum {
			values = append(values, fmt.Sprint(v))
		}
		return bundle.Choice(values...), nil
	})

	r.Register(RuleTemplate, 85, func(s Schema) bool {
		_, ok := s.Extension(ExtTemplate)
		return ok
	}, func(s Schema) (bundle.Bundle, error) {
		pattern, _ := s.Extension(ExtTemplate)
		tmpl, err := validator.Template(pattern)
		if err != nil {
			return bundle.Bundle{}, err
		}
		return bundle.Bundle{
			Name:        RuleTemplate,
			Validators:  []validator.Validator{tmpl},
			Keyboard:    bundle.KeyboardNumber,
			Placeholder: pattern,
		}, nil
	})

	r.Register(RuleFormat, 80, func(s Schema) bool {
		_, ok := formatPreset(s.Format)
		return ok
	}, func(s Schema) (bundle.Bundle, error) {
		factory, _ := formatPreset(s.Format)
		return factory(), nil
	})

	r.Register(RuleInteger, 70, func(s Schema) bool {
		return s.Type == "integer"
	}, func(s Schema) (bundle.Bundle, error) {
		b := bundle.IntegerWithin(nil, nil)
		if v := numericRange(s, validator.ParseInt, func(f float64) int { return int(f) }); v != nil {
			b.Validators = append(b.Validators, v)
		}
		return b, nil
	})

	r.Register(RuleNumber, 60, func(s Schema) bool {
		return s.Type == "number"
	}, func(s Schema) (bundle.Bundle, error) {
		b := bundle.Bundle{
			Name:       RuleNumber,
			Validators: []validator.Validator{validator.OnlyIn("1234567890.-")},
			Keyboard:   bundle.KeyboardDecimal,
			Alignment:  bundle.AlignRight,
			Preselect:  true,
		}
		if v := numericRange(s, validator.ParseFloat, func(f float64) float64 { return f }); v != nil {
			b.Validators = append(b.Validators, v)
		}
		return b, nil
	})

	r.Register(RuleBoolean, 50, func(s Schema) bool {
		return s.Type == "boolean"
	}, func(Schema) (bundle.Bundle, error) {
		return bundle.Choice("true", "false"), nil
	})
}

func formatPreset(format string) (bundle.Factory, bool) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "email":
		return bundle.Email, true
	case "uri", "url":
		return bundle.URL, true
	case "date":
		return bundle.Date, true
	case "phone", "tel":
		return bundle.Phone, true
	}
	return nil, false
}

func numericRange[T int | float64](s Schema, parse validator.ParseFunc[T], conv func(float64) T) validator.Validator {
	switch {
	case s.Minimum != nil && s.Maximum != nil:
		return validator.Between(parse, conv(*s.Minimum), conv(*s.Maximum))
	case s.Minimum != nil:
		return validator.AtLeast(parse, conv(*s.Minimum))
	case s.Maximum != nil:
		return validator.AtMost(parse, conv(*s.Maximum))
	}
	return nil
}

func constrain(b bundle.Bundle, s Schema) (bundle.Bundle, error) {
	if s.Pattern != "" {
		p, err := validator.NewPattern(s.Pattern)
		if err != nil {
			return bundle.Bundle{}, fmt.Errorf("openapi: pattern %q: %w", s.Pattern, err)
		}
		b = b.With(p)
	}
	switch {
	case s.MinLength != nil && s.MaxLength != nil:
		b = b.With(validator.LengthBetween(*s.MinLength, *s.MaxLength))
	case s.MinLength != nil:
		b = b.With(validator.MinLength(*s.MinLength))
	case s.MaxLength != nil:
		b = b.With(validator.MaxLength(*s.MaxLength))
	}
	return b, nil
}

func present(b bundle.Bundle, s Schema) bundle.Bundle {
	if v, ok := s.Extension(ExtPlaceholder); ok {
		b.Placeholder = v
	}
	if v, ok := s.Extension(ExtPrefix); ok {
		b.Prefix = v
	}
	if v, ok := s.Extension(ExtSuffix); ok {
		b.Suffix = v
	}
	return b
}
