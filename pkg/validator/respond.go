package validator

// Verdict is the outcome of a keystroke decision.
type Verdict int

const (
	// VerdictApply lets the naive edit through unchanged.
	VerdictApply Verdict = iota
	// VerdictVeto rejects the keystroke; the text stays as it was.
	VerdictVeto
	// VerdictRewrite replaces the edited text with Decision.Text.
	VerdictRewrite
)

func (v Verdict) String() string {
	switch v {
	case VerdictApply:
		return "apply"
	case VerdictVeto:
		return "veto"
	case VerdictRewrite:
		return "rewrite"
	default:
		return "unknown"
	}
}

// Decision is the answer of Decide.
type Decision struct {
	Verdict Verdict
	Text    string
}

// Responders returns the members of list that implement Responder, in order.
func Responders(list []Validator) []Responder {
	out := make([]Responder, 0, len(list))
	for _, v := range list {
		if r, ok := AsResponder(v); ok {
			out = append(out, r)
		}
	}
	return out
}

// Decide applies the keystroke rule to responders. updated is the text after
// the naive edit and added the inserted string, empty for a deletion.
//
// A deletion takes the first rewrite offered by ReplaceAfterDelete. An
// addition is vetoed by the first responder whose AllowUpdate refuses; when
// all approve, the first rewrite offered by ReplaceAfterAdd wins.
func Decide(responders []Responder, updated, added string) Decision {
	if added == "" {
		for _, r := range responders {
			if text, ok := r.ReplaceAfterDelete(updated); ok {
				return Decision{Verdict: VerdictRewrite, Text: text}
			}
		}
		return Decision{Verdict: VerdictApply, Text: updated}
	}
	for _, r := range responders {
		if !r.AllowUpdate(updated, added) {
			return Decision{Verdict: VerdictVeto}
		}
	}
	for _, r := range responders {
		if text, ok := r.ReplaceAfterAdd(updated); ok {
			return Decision{Verdict: VerdictRewrite, Text: text}
		}
	}
	return Decision{Verdict: VerdictApply, Text: updated}
}

// AnyShouldStop reports whether any responder asks to stop at value.
func AnyShouldStop(responders []Responder, value string) bool {
	for _, r := range responders {
		if r.ShouldStop(value) {
			return true
		}
	}
	return false
}

// ProcessAll runs Process for every Preprocessor in list, in order.
func ProcessAll(list []Validator, markedUp string) string {
	text := markedUp
	for _, v := range list {
		if p, ok := AsPreprocessor(v); ok {
			text = p.Process(text)
		}
	}
	return text
}

// UnprocessAll runs Unprocess for every Preprocessor in list, in order.
func UnprocessAll(list []Validator, raw string) string {
	text := raw
	for _, v := range list {
		if p, ok := AsPreprocessor(v); ok {
			text = p.Unprocess(text)
		}
	}
	return text
}

// ValidateAll collects the problems of every validator in list.
func ValidateAll(list []Validator, text string) error {
	return And(list...).Validate(text)
}
