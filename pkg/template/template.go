package template

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Placeholder marks a digit slot in a pattern.
const Placeholder = 'd'

// ErrEmptyPattern is returned when a pattern has no tokens.
var ErrEmptyPattern = errors.New("template: pattern is empty")

// TokenKind distinguishes digit slots from literal runes.
type TokenKind int

const (
	TokenDigit TokenKind = iota
	TokenLiteral
)

// Token is one element of a parsed pattern.
type Token struct {
	Kind    TokenKind
	Literal rune
}

// Template is an immutable parsed pattern. The zero value is an empty template
// that fills every value to "".
type Template struct {
	pattern string
	tokens  []Token
	slots   int
}

// New parses a pattern such as "ddd-ddd-dddd".
func New(pattern string) (Template, error) {
	if pattern == "" {
		return Template{}, ErrEmptyPattern
	}
	tokens := make([]Token, 0, utf8.RuneCountInString(pattern))
	slots := 0
	for _, r := range pattern {
		if r == Placeholder {
			tokens = append(tokens, Token{Kind: TokenDigit})
			slots++
			continue
		}
		tokens = append(tokens, Token{Kind: TokenLiteral, Literal: r})
	}
	return Template{pattern: pattern, tokens: tokens, slots: slots}, nil
}

// MustNew panics when the pattern cannot be parsed. Intended for presets.
func MustNew(pattern string) Template {
	tpl, err := New(pattern)
	if err != nil {
		panic(err)
	}
	return tpl
}

// Pattern returns the source pattern.
func (t Template) Pattern() string {
	return t.pattern
}

// Placeholders reports the number of digit slots.
func (t Template) Placeholders() int {
	return t.slots
}

// Len reports the pattern length in runes, literals included.
func (t Template) Len() int {
	return len(t.tokens)
}

// Tokens returns a copy of the parsed tokens.
func (t Template) Tokens() []Token {
	return append([]Token(nil), t.tokens...)
}

// Fill lays the digits of value out over the pattern, left to right. Building
// stops at the first digit slot with no digit left. Literals are always
// emitted in greedy mode; otherwise only while digits remain, so the result
// never ends in a separator.
func (t Template) Fill(value string, greedy bool) string {
	queue := Digits(value)
	var out strings.Builder
	out.Grow(len(t.tokens))
	next := 0
	for _, tok := range t.tokens {
		remaining := next < len(queue)
		switch tok.Kind {
		case TokenDigit:
			if !remaining {
				return out.String()
			}
			out.WriteByte(queue[next])
			next++
		case TokenLiteral:
			if !greedy && !remaining {
				return out.String()
			}
			out.WriteRune(tok.Literal)
		}
	}
	return out.String()
}

// Digits returns the ASCII digits of s in order.
func Digits(s string) string {
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		if IsDigit(rune(s[i])) {
			out.WriteByte(s[i])
		}
	}
	return out.String()
}

// IsDigit reports whether r is an ASCII digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// AllDigits reports whether every rune of s is an ASCII digit. An empty string
// is all digits.
func AllDigits(s string) bool {
	for _, r := range s {
		if !IsDigit(r) {
			return false
		}
	}
	return true
}
