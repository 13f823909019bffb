package terminal

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goliatone/go-fieldedit/pkg/bundle"
)

var upper = cases.Upper(language.Und)

// Capitalize applies the capitalization hint to typed, which is about to be
// appended to text.
func Capitalize(text, typed string, hint bundle.Capitalization) string {
	switch hint {
	case bundle.CapitalizeAll:
		return upper.String(typed)
	case bundle.CapitalizeWords:
		if startsWord(text) {
			return upperFirst(typed)
		}
	case bundle.CapitalizeSentences:
		if startsSentence(text) {
			return upperFirst(typed)
		}
	}
	return typed
}

func upperFirst(s string) string {
	for i, r := range s {
		if !unicode.IsLetter(r) {
			return s
		}
		size := len(string(r))
		return upper.String(s[:i+size]) + s[i+size:]
	}
	return s
}

func startsWord(text string) bool {
	if text == "" {
		return true
	}
	last := []rune(text)
	return unicode.IsSpace(last[len(last)-1])
}

func startsSentence(text string) bool {
	trimmed := strings.TrimRightFunc(text, unicode.IsSpace)
	if trimmed == "" {
		return true
	}
	if len(trimmed) == len(text) {
		return false
	}
	return strings.ContainsAny(trimmed[len(trimmed)-1:], ".!?")
}
