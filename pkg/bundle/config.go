package bundle

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/goliatone/go-fieldedit/pkg/validator"
)

// Validator kinds accepted in bundle files.
const (
	KindTrim     = "trim"
	KindLength   = "length"
	KindCharset  = "charset"
	KindDigits   = "digits"
	KindRange    = "range"
	KindPattern  = "pattern"
	KindEmail    = "email"
	KindURL      = "url"
	KindDecimal  = "decimal"
	KindNumber   = "number"
	KindTemplate = "template"
	KindAnd      = "and"
)

// ValidatorConfig is the file representation of a validator.
type ValidatorConfig struct {
	Kind     string            `json:"kind" yaml:"kind"`
	Min      *float64          `json:"min,omitempty" yaml:"min,omitempty"`
	Max      *float64          `json:"max,omitempty" yaml:"max,omitempty"`
	Exact    *int              `json:"exact,omitempty" yaml:"exact,omitempty"`
	Type     string            `json:"type,omitempty" yaml:"type,omitempty"`
	Chars    string            `json:"chars,omitempty" yaml:"chars,omitempty"`
	Pattern  string            `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Places   int               `json:"places,omitempty" yaml:"places,omitempty"`
	Locale   string            `json:"locale,omitempty" yaml:"locale,omitempty"`
	Fraction *int              `json:"fractionDigits,omitempty" yaml:"fractionDigits,omitempty"`
	Members  []ValidatorConfig `json:"members,omitempty" yaml:"members,omitempty"`
}

// Build turns the configuration into a validator.
func (c ValidatorConfig) Build() (validator.Validator, error) {
	switch strings.ToLower(strings.TrimSpace(c.Kind)) {
	case KindTrim:
		return validator.Trim{}, nil
	case KindLength:
		return c.buildLength()
	case KindCharset:
		if c.Chars == "" {
			return nil, errors.New("bundle: charset validator requires chars")
		}
		return validator.OnlyIn(c.Chars), nil
	case KindDigits:
		return validator.Digits(), nil
	case KindRange:
		return c.buildRange()
	case KindPattern:
		if c.Pattern == "" {
			return nil, errors.New("bundle: pattern validator requires pattern")
		}
		return validator.NewPattern(c.Pattern)
	case KindEmail:
		return validator.Email(), nil
	case KindURL:
		return validator.URL{}, nil
	case KindDecimal:
		return validator.Decimal(c.Places), nil
	case KindNumber:
		return c.buildNumber()
	case KindTemplate:
		if c.Pattern == "" {
			return nil, errors.New("bundle: template validator requires pattern")
		}
		return validator.Template(c.Pattern)
	case KindAnd:
		members, err := BuildValidators(c.Members)
		if err != nil {
			return nil, err
		}
		return validator.And(members...), nil
	case "":
		return nil, errors.New("bundle: validator kind is required")
	default:
		return nil, fmt.Errorf("bundle: unknown validator kind %q", c.Kind)
	}
}

func (c ValidatorConfig) buildLength() (validator.Validator, error) {
	switch {
	case c.Exact != nil:
		return validator.ExactLength(*c.Exact), nil
	case c.Min != nil && c.Max != nil:
		return validator.LengthBetween(int(*c.Min), int(*c.Max)), nil
	case c.Min != nil:
		return validator.MinLength(int(*c.Min)), nil
	case c.Max != nil:
		return validator.MaxLength(int(*c.Max)), nil
	default:
		return nil, errors.New("bundle: length validator requires min, max or exact")
	}
}

func (c ValidatorConfig) buildRange() (validator.Validator, error) {
	if c.Min == nil && c.Max == nil {
		return nil, errors.New("bundle: range validator requires min or max")
	}
	switch strings.ToLower(c.Type) {
	case "", "int", "integer":
		return intRange(c.Min, c.Max), nil
	case "float", "number":
		return floatRange(c.Min, c.Max), nil
	default:
		return nil, fmt.Errorf("bundle: unknown range type %q", c.Type)
	}
}

func intRange(min, max *float64) validator.Validator {
	switch {
	case min != nil && max != nil:
		return validator.IntBetween(int(*min), int(*max))
	case min != nil:
		return validator.AtLeast(validator.ParseInt, int(*min))
	default:
		return validator.AtMost(validator.ParseInt, int(*max))
	}
}

func floatRange(min, max *float64) validator.Validator {
	switch {
	case min != nil && max != nil:
		return validator.Between(validator.ParseFloat, *min, *max)
	case min != nil:
		return validator.AtLeast(validator.ParseFloat, *min)
	default:
		return validator.AtMost(validator.ParseFloat, *max)
	}
}

func (c ValidatorConfig) buildNumber() (validator.Validator, error) {
	tag := language.English
	if c.Locale != "" {
		parsed, err := language.Parse(c.Locale)
		if err != nil {
			return nil, fmt.Errorf("bundle: number locale %q: %w", c.Locale, err)
		}
		tag = parsed
	}
	fraction := 2
	if c.Fraction != nil {
		fraction = *c.Fraction
	}
	return validator.Number(validator.NewLocaleFormatter(tag, fraction)), nil
}

// BuildValidators builds every entry in order.
func BuildValidators(configs []ValidatorConfig) ([]validator.Validator, error) {
	out := make([]validator.Validator, 0, len(configs))
	for idx, cfg := range configs {
		v, err := cfg.Build()
		if err != nil {
			return nil, fmt.Errorf("validator %d: %w", idx, err)
		}
		out = append(out, v)
	}
	return out, nil
}
