package bundle

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// SanitizeText strips markup from decoration strings that arrive from files
// or schema documents. Hosts render prefixes, suffixes and placeholders as
// plain labels.
func SanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := textSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// Sanitized returns a copy of b with its decoration strings and choices
// passed through SanitizeText.
func (b Bundle) Sanitized() Bundle {
	cloned := b.Clone()
	cloned.Prefix = SanitizeText(b.Prefix)
	cloned.Suffix = SanitizeText(b.Suffix)
	cloned.Placeholder = SanitizeText(b.Placeholder)
	for i, choice := range cloned.Choices {
		cloned.Choices[i] = SanitizeText(choice)
	}
	return cloned
}
