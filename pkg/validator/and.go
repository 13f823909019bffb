package validator

import "errors"

// Conjunction is the logical AND of its members. Its problem is the
// newline-joined reasons of every failing member, in member order. As a
// Responder it applies the keystroke rule of Decide to its members, and it
// stops as soon as any member asks to.
type Conjunction struct {
	members []Validator
}

// And combines members, skipping nil entries.
func And(members ...Validator) Conjunction {
	kept := make([]Validator, 0, len(members))
	for _, m := range members {
		if m != nil {
			kept = append(kept, m)
		}
	}
	return Conjunction{members: kept}
}

// Members returns a copy of the member list.
func (c Conjunction) Members() []Validator {
	return append([]Validator(nil), c.members...)
}

func (c Conjunction) Validate(text string) error {
	var problems []error
	for _, m := range c.members {
		if err := m.Validate(text); err != nil {
			problems = append(problems, err)
		}
	}
	return errors.Join(problems...)
}

func (c Conjunction) AllowUpdate(updated, added string) bool {
	for _, r := range Responders(c.members) {
		if !r.AllowUpdate(updated, added) {
			return false
		}
	}
	return true
}

func (c Conjunction) ShouldStop(value string) bool {
	return AnyShouldStop(Responders(c.members), value)
}

func (c Conjunction) ReplaceAfterAdd(value string) (string, bool) {
	for _, r := range Responders(c.members) {
		if text, ok := r.ReplaceAfterAdd(value); ok {
			return text, true
		}
	}
	return "", false
}

func (c Conjunction) ReplaceAfterDelete(value string) (string, bool) {
	for _, r := range Responders(c.members) {
		if text, ok := r.ReplaceAfterDelete(value); ok {
			return text, true
		}
	}
	return "", false
}

func (c Conjunction) Process(markedUp string) string {
	return ProcessAll(c.members, markedUp)
}

func (c Conjunction) Unprocess(raw string) string {
	return UnprocessAll(c.members, raw)
}
