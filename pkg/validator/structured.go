package validator

import (
	"unicode/utf8"

	"github.com/goliatone/go-fieldedit/pkg/template"
)

// StructuredTemplate shapes digit input with a template such as
// "ddd-ddd-dddd". The stored value is the digits alone; the display value is
// the greedy fill of those digits.
type StructuredTemplate struct {
	tpl template.Template
}

// Template parses pattern into a StructuredTemplate.
func Template(pattern string) (StructuredTemplate, error) {
	tpl, err := template.New(pattern)
	if err != nil {
		return StructuredTemplate{}, err
	}
	return StructuredTemplate{tpl: tpl}, nil
}

// MustTemplate panics when pattern is invalid.
func MustTemplate(pattern string) StructuredTemplate {
	return StructuredTemplate{tpl: template.MustNew(pattern)}
}

// Pattern returns the source pattern.
func (s StructuredTemplate) Pattern() string {
	return s.tpl.Pattern()
}

func (s StructuredTemplate) Validate(text string) error {
	got, want := len(template.Digits(text)), s.tpl.Placeholders()
	switch {
	case got < want:
		return problem(KindIncompleteTemplate, "incomplete")
	case got > want:
		return problem(KindIncompleteTemplate, "too many digits")
	default:
		return nil
	}
}

func (s StructuredTemplate) Process(markedUp string) string {
	return template.Digits(markedUp)
}

func (s StructuredTemplate) Unprocess(raw string) string {
	return s.tpl.Fill(raw, true)
}

func (s StructuredTemplate) AllowUpdate(updated, added string) bool {
	return utf8.RuneCountInString(updated) <= s.tpl.Len() && template.AllDigits(added)
}

func (s StructuredTemplate) ShouldStop(value string) bool {
	return len(template.Digits(value)) == s.tpl.Placeholders() && s.Validate(value) == nil
}

func (s StructuredTemplate) ReplaceAfterAdd(value string) (string, bool) {
	return s.tpl.Fill(value, true), true
}

func (s StructuredTemplate) ReplaceAfterDelete(value string) (string, bool) {
	return s.tpl.Fill(value, false), true
}
