package session

import (
	"log/slog"

	"github.com/goliatone/go-fieldedit/pkg/validator"
)

// Option configures an Editor.
type Option func(*Editor)

// FinishFunc receives the final text once editing ends. committed is false
// when the field was left empty.
type FinishFunc func(text string, committed bool)

// WithName labels the field in logs.
func WithName(name string) Option {
	return func(e *Editor) {
		e.name = name
	}
}

// WithValidators adds one-off validators. They run before the bundle's.
func WithValidators(validators ...validator.Validator) Option {
	return func(e *Editor) {
		e.oneOff = append(e.oneOff, validators...)
	}
}

// WithFallback chains a pre-existing handler. It may implement any of
// BeginGate, BeginObserver, ChangeGate, EndObserver and ReturnHandler.
func WithFallback(handler any) Option {
	return func(e *Editor) {
		e.fallback = handler
	}
}

// WithRegistry shares a registry between editors.
func WithRegistry(reg *Registry) Option {
	return func(e *Editor) {
		if reg != nil {
			e.registry = reg
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithStrict makes contract violations panic instead of being logged.
func WithStrict(strict bool) Option {
	return func(e *Editor) {
		e.strict = strict
	}
}

// OnFinish sets the completion callback, fired once per edit cycle.
func OnFinish(fn FinishFunc) Option {
	return func(e *Editor) {
		e.onFinish = fn
	}
}

// WithIDGenerator overrides how session IDs are minted.
func WithIDGenerator(fn func() string) Option {
	return func(e *Editor) {
		if fn != nil {
			e.newID = fn
		}
	}
}
