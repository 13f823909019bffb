package testsupport

import (
	"github.com/goliatone/go-fieldedit/pkg/bundle"
	"github.com/goliatone/go-fieldedit/pkg/session"
)

// Field is a recording session.Host with every optional capability.
type Field struct {
	text        string
	placeholder string

	Applied   []bundle.Presentation
	History   []string
	Resigned  int
	Selected  int
	Problems  []string
	Cleared   int
	Choices   []string
	ReadOnly  bool
	Presented int
	Keyboard  []session.KeyboardEvent

	// OnApply runs inside Apply, letting tests inject events mid-Begin.
	OnApply func(p bundle.Presentation)
}

var (
	_ session.Host            = (*Field)(nil)
	_ session.Selector        = (*Field)(nil)
	_ session.ProblemReporter = (*Field)(nil)
	_ session.ChoicePresenter = (*Field)(nil)
	_ session.KeyboardAvoider = (*Field)(nil)
)

// NewField returns a host holding text.
func NewField(text string) *Field {
	return &Field{text: text}
}

// WithPlaceholder sets the host's own placeholder.
func (f *Field) WithPlaceholder(placeholder string) *Field {
	f.placeholder = placeholder
	return f
}

func (f *Field) Text() string { return f.text }

func (f *Field) SetText(text string) {
	f.text = text
	f.History = append(f.History, text)
}

func (f *Field) Placeholder() string { return f.placeholder }

func (f *Field) Apply(p bundle.Presentation) {
	if p.Placeholder != "" {
		f.placeholder = p.Placeholder
	}
	f.Applied = append(f.Applied, p)
	if f.OnApply != nil {
		f.OnApply(p)
	}
}

func (f *Field) Resign() { f.Resigned++ }

func (f *Field) SelectAll() { f.Selected++ }

func (f *Field) ShowProblem(reason string) { f.Problems = append(f.Problems, reason) }

func (f *Field) ClearProblem() { f.Cleared++ }

func (f *Field) PresentChoices(choices []string, readOnly bool) {
	f.Choices = append([]string(nil), choices...)
	f.ReadOnly = readOnly
	f.Presented++
}

func (f *Field) AvoidKeyboard(evt session.KeyboardEvent) {
	f.Keyboard = append(f.Keyboard, evt)
}

// Type appends each rune of s as its own keystroke and returns the outcomes
// together with the text after every keystroke.
func Type(e *session.Editor, h session.Host, s string) ([]session.Outcome, []string) {
	outcomes := make([]session.Outcome, 0, len(s))
	texts := make([]string, 0, len(s))
	for _, r := range s {
		outcomes = append(outcomes, e.Change(h, session.Append(h.Text(), string(r))))
		texts = append(texts, h.Text())
	}
	return outcomes, texts
}

// Backspace deletes the last character.
func Backspace(e *session.Editor, h session.Host) session.Outcome {
	return e.Change(h, session.Backspace(h.Text()))
}
