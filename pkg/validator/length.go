package validator

import "unicode/utf8"

// Length bounds the number of characters in the text. It rejects additions
// past the maximum and asks to stop editing when the maximum is reached.
type Length struct {
	NopResponder
	min, max       int
	hasMin, hasMax bool
}

// MinLength requires at least n characters.
func MinLength(n int) Length {
	return Length{min: n, hasMin: true}
}

// MaxLength allows at most n characters.
func MaxLength(n int) Length {
	return Length{max: n, hasMax: true}
}

// LengthBetween requires between min and max characters, inclusive.
func LengthBetween(min, max int) Length {
	return Length{min: min, max: max, hasMin: true, hasMax: true}
}

// ExactLength requires exactly n characters.
func ExactLength(n int) Length {
	return LengthBetween(n, n)
}

// Bounds returns the configured limits; a negative value means unbounded.
func (l Length) Bounds() (min, max int) {
	min, max = -1, -1
	if l.hasMin {
		min = l.min
	}
	if l.hasMax {
		max = l.max
	}
	return min, max
}

func (l Length) Validate(text string) error {
	n := utf8.RuneCountInString(text)
	if l.hasMin && n < l.min {
		return problem(KindLength, "too short")
	}
	if l.hasMax && n > l.max {
		return problem(KindLength, "too long")
	}
	return nil
}

func (l Length) AllowUpdate(updated, _ string) bool {
	return !l.hasMax || utf8.RuneCountInString(updated) <= l.max
}

func (l Length) ShouldStop(value string) bool {
	return l.hasMax && utf8.RuneCountInString(value) == l.max
}
