package validator

// Validator decides whether the final text of a field is acceptable. Validate
// returns nil for valid text and a *Problem (or a join of them) otherwise.
type Validator interface {
	Validate(text string) error
}

// Responder governs how an individual keystroke is treated.
type Responder interface {
	// AllowUpdate reports whether the edit producing updated, by adding the
	// added string, may proceed.
	AllowUpdate(updated, added string) bool
	// ShouldStop reports whether editing should end once value is reached.
	ShouldStop(value string) bool
	// ReplaceAfterAdd may rewrite the text produced by an addition.
	ReplaceAfterAdd(value string) (string, bool)
	// ReplaceAfterDelete may rewrite the text produced by a deletion.
	ReplaceAfterDelete(value string) (string, bool)
}

// Preprocessor maps between display markup and the raw stored value.
type Preprocessor interface {
	Process(markedUp string) string
	Unprocess(raw string) string
}

// NopResponder provides the neutral answer for every Responder method. Embed
// it to implement only the hooks a validator cares about.
type NopResponder struct{}

func (NopResponder) AllowUpdate(string, string) bool { return true }

func (NopResponder) ShouldStop(string) bool { return false }

func (NopResponder) ReplaceAfterAdd(string) (string, bool) { return "", false }

func (NopResponder) ReplaceAfterDelete(string) (string, bool) { return "", false }

// AsResponder reports whether v also behaves as a Responder.
func AsResponder(v Validator) (Responder, bool) {
	if v == nil {
		return nil, false
	}
	r, ok := v.(Responder)
	return r, ok
}

// AsPreprocessor reports whether v also behaves as a Preprocessor.
func AsPreprocessor(v Validator) (Preprocessor, bool) {
	if v == nil {
		return nil, false
	}
	p, ok := v.(Preprocessor)
	return p, ok
}

// Valid is shorthand for v.Validate(text) == nil.
func Valid(v Validator, text string) bool {
	return v.Validate(text) == nil
}

// Func adapts a plain function into a Validator.
type Func func(text string) error

// Validate calls f(text).
func (f Func) Validate(text string) error {
	return f(text)
}
