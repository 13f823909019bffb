package validator

import "strings"

// DigitChars is the character set accepted by Digits.
const DigitChars = "1234567890"

// Charset accepts only characters from a fixed set. Process drops anything
// outside the set; Unprocess returns the raw value unchanged.
type Charset struct {
	NopResponder
	allowed string
}

// OnlyIn builds a Charset accepting the runes of allowed.
func OnlyIn(allowed string) Charset {
	return Charset{allowed: allowed}
}

// Digits accepts ASCII digits only.
func Digits() Charset {
	return OnlyIn(DigitChars)
}

// Allowed returns the accepted characters.
func (c Charset) Allowed() string {
	return c.allowed
}

func (c Charset) Validate(text string) error {
	var invalid strings.Builder
	for _, r := range text {
		if !strings.ContainsRune(c.allowed, r) {
			invalid.WriteRune(r)
		}
	}
	if invalid.Len() == 0 {
		return nil
	}
	return problemf(KindCharset, "invalid character(s): `%s`", invalid.String())
}

func (c Charset) AllowUpdate(updated, _ string) bool {
	return c.Validate(updated) == nil
}

func (c Charset) Process(markedUp string) string {
	return keepOnly(markedUp, c.allowed)
}

func (c Charset) Unprocess(raw string) string {
	return raw
}

func keepOnly(text, allowed string) string {
	var out strings.Builder
	out.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(allowed, r) {
			out.WriteRune(r)
		}
	}
	return out.String()
}
