package session

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goliatone/go-fieldedit/pkg/bundle"
	"github.com/goliatone/go-fieldedit/pkg/validator"
)

// Outcome reports what Change did with a keystroke. The host never applies
// its own edit, whatever the outcome.
type Outcome int

const (
	// OutcomeIgnored means the keystroke broke the lifecycle contract.
	OutcomeIgnored Outcome = iota
	// OutcomeVetoed means a responder rejected the keystroke.
	OutcomeVetoed
	// OutcomeDeclined means the fallback handler declined the keystroke.
	OutcomeDeclined
	// OutcomeRewritten means a responder replaced the edited text.
	OutcomeRewritten
	// OutcomeApplied means the edit went through unchanged.
	OutcomeApplied
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeVetoed:
		return "vetoed"
	case OutcomeDeclined:
		return "declined"
	case OutcomeRewritten:
		return "rewritten"
	case OutcomeApplied:
		return "applied"
	default:
		return "unknown"
	}
}

// Changed reports whether the host text was updated.
func (o Outcome) Changed() bool {
	return o == OutcomeRewritten || o == OutcomeApplied
}

// Editor validates and shapes the text of one field across edit cycles.
type Editor struct {
	name       string
	bundle     bundle.Bundle
	oneOff     []validator.Validator
	validators []validator.Validator
	responders []validator.Responder
	fallback   any
	registry   *Registry
	logger     *slog.Logger
	strict     bool
	onFinish   FinishFunc
	newID      func() string

	current *Session
	problem error
}

// New builds an editor for b. One-off validators given with WithValidators
// take precedence over the bundle's.
func New(b bundle.Bundle, opts ...Option) *Editor {
	e := &Editor{
		bundle:   b.Clone(),
		registry: NewRegistry(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	if e.name == "" {
		e.name = b.Name
	}
	e.validators = append(append([]validator.Validator(nil), e.oneOff...), e.bundle.Validators...)
	e.responders = validator.Responders(e.validators)
	e.logger = e.logger.With("field", e.name)
	return e
}

// Bundle returns a copy of the bundle the editor was built with.
func (e *Editor) Bundle() bundle.Bundle {
	return e.bundle.Clone()
}

// Validators returns the effective validator list.
func (e *Editor) Validators() []validator.Validator {
	return append([]validator.Validator(nil), e.validators...)
}

// Session returns the current session, or nil between edit cycles.
func (e *Editor) Session() *Session {
	return e.current
}

// Stage returns the stage of the current session; StageIdle when none.
func (e *Editor) Stage() Stage {
	return e.current.Stage()
}

// Problem returns the reason the last ShouldEnd refused, or nil.
func (e *Editor) Problem() error {
	return e.problem
}

// Attach applies the presentation hints, or presents the choices of a
// fixed-choice field, without starting an edit.
func (e *Editor) Attach(h Host) {
	if h == nil {
		e.violation(ErrNilHost)
		return
	}
	if e.bundle.FixedChoice() {
		e.presentChoices(h)
		return
	}
	e.apply(h)
}

// Begin asks to start editing. It applies the presentation hints, consults
// the fallback BeginGate, converts the host text to its raw form and enters
// Editing. Fixed-choice fields never begin.
func (e *Editor) Begin(h Host) bool {
	if h == nil {
		e.violation(ErrNilHost)
		return false
	}
	if e.current != nil && e.current.stage == StageEditing {
		e.violation(ErrAlreadyEditing)
		return false
	}
	if e.bundle.FixedChoice() {
		e.presentChoices(h)
		return false
	}

	s := newSession(e.newID(), h, e.onFinish)
	done := e.registry.markStarting(s)
	defer done()

	e.apply(h)
	if gate, ok := e.fallback.(BeginGate); ok && !gate.ShouldBeginEditing(h) {
		e.logger.Debug("begin refused by fallback", "session_id", s.id)
		return false
	}

	current := h.Text()
	if raw := validator.ProcessAll(e.validators, current); raw != current {
		h.SetText(raw)
	}

	if err := s.enter(e.registry); err != nil {
		e.violation(err)
		return false
	}
	e.current = s
	e.problem = nil

	if e.bundle.Preselect {
		if sel, ok := h.(Selector); ok {
			sel.SelectAll()
		}
	}
	if obs, ok := e.fallback.(BeginObserver); ok {
		obs.DidBeginEditing(h)
	}
	e.logger.Debug("begin", "session_id", s.id, "text", h.Text())
	return true
}

// Change decides one keystroke. See validator.Decide for the rule applied to
// the responders; an addition that settles the text may end the session.
func (e *Editor) Change(h Host, edit Edit) Outcome {
	if h == nil {
		e.violation(ErrNilHost)
		return OutcomeIgnored
	}
	s := e.current
	if s == nil || s.stage != StageEditing {
		e.violation(ErrNotEditing)
		return OutcomeIgnored
	}

	updated, err := edit.Apply(h.Text())
	if err != nil {
		e.violation(err)
		return OutcomeIgnored
	}

	var outcome Outcome
	decision := validator.Decide(e.responders, updated, edit.Replacement)
	switch decision.Verdict {
	case validator.VerdictVeto:
		e.logger.Debug("veto", "session_id", s.id, "updated", updated)
		return OutcomeVetoed
	case validator.VerdictRewrite:
		h.SetText(decision.Text)
		e.logger.Debug("rewrite", "session_id", s.id, "text", decision.Text)
		outcome = OutcomeRewritten
	default:
		if gate, ok := e.fallback.(ChangeGate); ok && !gate.ShouldChangeText(h, edit) {
			return OutcomeDeclined
		}
		h.SetText(updated)
		outcome = OutcomeApplied
	}

	if edit.IsDeletion() {
		e.clearProblem(h)
		return outcome
	}
	e.autoStop(h)
	return outcome
}

// ShouldEnd is the end gatekeeper. Empty text may always end; otherwise every
// validator must accept the text.
func (e *Editor) ShouldEnd(h Host) bool {
	if h == nil {
		e.violation(ErrNilHost)
		return false
	}
	s := e.current
	if s == nil || s.stage != StageEditing {
		return true
	}
	text := h.Text()
	if text == "" {
		return true
	}
	if err := validator.ValidateAll(e.validators, text); err != nil {
		e.problem = err
		reason := validator.Reason(err)
		e.logger.Debug("end refused", "session_id", s.id, "reason", reason)
		if rep, ok := h.(ProblemReporter); ok {
			rep.ShowProblem(reason)
		}
		return false
	}
	return true
}

// End finishes the edit cycle: the text is converted back to its display
// form, the fallback is notified and the completion callback fires. Calling
// End with no session editing does nothing.
func (e *Editor) End(h Host, reason EndReason) {
	if h == nil {
		e.violation(ErrNilHost)
		return
	}
	s := e.current
	if s == nil || s.stage != StageEditing {
		e.logger.Debug("end without editing session", "reason", string(reason))
		return
	}

	text := h.Text()
	if text != "" {
		if display := validator.UnprocessAll(e.validators, text); display != text {
			h.SetText(display)
			text = display
		}
	}
	e.clearProblem(h)
	s.leave()
	e.current = nil

	if obs, ok := e.fallback.(EndObserver); ok {
		obs.DidEndEditing(h, reason)
	}
	if finish := s.takeFinish(); finish != nil {
		finish(text, text != "")
	}
	e.logger.Debug("end", "session_id", s.id, "reason", string(reason), "text", text)
}

// Return handles the submit key. A fallback ReturnHandler decides when
// present; otherwise the editor tries to end the edit and drop focus.
func (e *Editor) Return(h Host) bool {
	if h == nil {
		e.violation(ErrNilHost)
		return false
	}
	if handler, ok := e.fallback.(ReturnHandler); ok {
		return handler.ShouldReturn(h)
	}
	e.resign(h, ReasonReturn)
	return true
}

// Pick delivers a value chosen on a fixed-choice field straight to the
// completion callback, without validation.
func (e *Editor) Pick(h Host, value string) error {
	if h == nil {
		return ErrNilHost
	}
	if !e.bundle.FixedChoice() {
		return ErrNotFixedChoice
	}
	if e.bundle.ReadOnly {
		return ErrReadOnly
	}
	h.SetText(value)
	if obs, ok := e.fallback.(EndObserver); ok {
		obs.DidEndEditing(h, ReasonPicked)
	}
	if e.onFinish != nil {
		e.onFinish(value, true)
	}
	e.logger.Debug("picked", "value", value)
	return nil
}

// Close abandons the current session without completing it and releases its
// registry subscription.
func (e *Editor) Close() {
	if e.current == nil {
		return
	}
	e.logger.Debug("closed", "session_id", e.current.id, "stage", e.current.stage.String())
	e.current.leave()
	e.current = nil
}

// Resign ends the edit if the gatekeeper allows and asks the host to drop
// focus. It reports whether the session ended.
func (e *Editor) Resign(h Host) bool {
	if h == nil {
		e.violation(ErrNilHost)
		return false
	}
	return e.resign(h, ReasonCommitted)
}

func (e *Editor) resign(h Host, reason EndReason) bool {
	if e.current == nil {
		h.Resign()
		return true
	}
	if !e.ShouldEnd(h) {
		return false
	}
	e.End(h, reason)
	h.Resign()
	return true
}

func (e *Editor) autoStop(h Host) {
	text := h.Text()
	if !validator.AnyShouldStop(e.responders, text) {
		return
	}
	if text != "" && validator.ValidateAll(e.validators, text) != nil {
		return
	}
	e.logger.Debug("auto stop", "session_id", e.current.id, "text", text)
	e.resign(h, ReasonAutoStop)
}

func (e *Editor) apply(h Host) {
	p := e.bundle.Presentation()
	if h.Placeholder() != "" {
		p.Placeholder = ""
	}
	h.Apply(p)
}

func (e *Editor) presentChoices(h Host) {
	if presenter, ok := h.(ChoicePresenter); ok {
		presenter.PresentChoices(append([]string(nil), e.bundle.Choices...), e.bundle.ReadOnly)
	}
}

func (e *Editor) clearProblem(h Host) {
	e.problem = nil
	if rep, ok := h.(ProblemReporter); ok {
		rep.ClearProblem()
	}
}

func (e *Editor) violation(err error) {
	if e.strict {
		panic(err)
	}
	e.logger.Error("contract violation", "error", err)
}
