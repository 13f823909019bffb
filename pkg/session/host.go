package session

import "github.com/goliatone/go-fieldedit/pkg/bundle"

// Host is the editable widget driven by an Editor.
type Host interface {
	Text() string
	SetText(text string)
	Placeholder() string
	// Apply receives the bundle presentation hints on every begin-edit. The
	// placeholder is only set when the host reported none.
	Apply(p bundle.Presentation)
	// Resign drops focus after the editor has ended the session.
	Resign()
}

// Selector is implemented by hosts that can select their whole text.
type Selector interface {
	SelectAll()
}

// ProblemReporter is implemented by hosts with an error indicator.
type ProblemReporter interface {
	ShowProblem(reason string)
	ClearProblem()
}

// ChoicePresenter is implemented by hosts that can offer a fixed list of
// values instead of free text.
type ChoicePresenter interface {
	PresentChoices(choices []string, readOnly bool)
}

// KeyboardAvoider is implemented by hosts that react to keyboard geometry.
type KeyboardAvoider interface {
	AvoidKeyboard(evt KeyboardEvent)
}

// The fallback handler chained behind an Editor may implement any of the
// following. Each hook runs after the editor's own logic.

// BeginGate may refuse the start of an edit.
type BeginGate interface {
	ShouldBeginEditing(h Host) bool
}

// BeginObserver is told once editing has started.
type BeginObserver interface {
	DidBeginEditing(h Host)
}

// ChangeGate may decline a keystroke the editor neither vetoed nor rewrote.
type ChangeGate interface {
	ShouldChangeText(h Host, edit Edit) bool
}

// EndObserver is told once editing has ended.
type EndObserver interface {
	DidEndEditing(h Host, reason EndReason)
}

// ReturnHandler takes over the return key.
type ReturnHandler interface {
	ShouldReturn(h Host) bool
}

// EndReason says why editing ended.
type EndReason string

const (
	ReasonCommitted EndReason = "committed"
	ReasonReturn    EndReason = "return"
	ReasonAutoStop  EndReason = "auto_stop"
	ReasonCancelled EndReason = "cancelled"
	ReasonPicked    EndReason = "picked"
)
