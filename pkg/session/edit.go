package session

import (
	"fmt"
	"unicode/utf8"
)

// Range is a half-open span of characters (runes).
type Range struct {
	Start int
	End   int
}

// Edit replaces the characters in Range with Replacement.
type Edit struct {
	Range       Range
	Replacement string
}

// Insert returns an edit inserting s at position at.
func Insert(at int, s string) Edit {
	return Edit{Range: Range{Start: at, End: at}, Replacement: s}
}

// Delete returns an edit removing [start, end).
func Delete(start, end int) Edit {
	return Edit{Range: Range{Start: start, End: end}}
}

// Append returns an edit adding s at the end of text.
func Append(text, s string) Edit {
	return Insert(utf8.RuneCountInString(text), s)
}

// Backspace returns an edit removing the last character of text.
func Backspace(text string) Edit {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return Delete(0, 0)
	}
	return Delete(n-1, n)
}

// IsDeletion reports whether the edit adds nothing.
func (e Edit) IsDeletion() bool {
	return e.Replacement == ""
}

// Apply computes the naive post-edit text.
func (e Edit) Apply(text string) (string, error) {
	runes := []rune(text)
	if e.Range.Start < 0 || e.Range.End < e.Range.Start || e.Range.End > len(runes) {
		return "", fmt.Errorf("%w: [%d,%d) of %d", ErrInvalidRange, e.Range.Start, e.Range.End, len(runes))
	}
	out := make([]rune, 0, len(runes)-(e.Range.End-e.Range.Start)+utf8.RuneCountInString(e.Replacement))
	out = append(out, runes[:e.Range.Start]...)
	out = append(out, []rune(e.Replacement)...)
	out = append(out, runes[e.Range.End:]...)
	return string(out), nil
}
