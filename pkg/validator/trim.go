package validator

import "strings"

// Trim strips surrounding whitespace in both directions of the round trip. It
// never reports a problem.
type Trim struct{}

func (Trim) Validate(string) error { return nil }

func (Trim) Process(markedUp string) string { return strings.TrimSpace(markedUp) }

func (Trim) Unprocess(raw string) string { return strings.TrimSpace(raw) }
