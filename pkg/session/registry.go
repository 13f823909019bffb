package session

import (
	"sync"
	"time"
)

// KeyboardEvent describes a change in on-screen keyboard geometry.
type KeyboardEvent struct {
	Visible  bool
	Height   int
	Duration time.Duration
}

// KeyboardSource publishes keyboard events until the returned cancel func is
// called.
type KeyboardSource interface {
	Subscribe(fn func(KeyboardEvent)) (cancel func())
}

// Registry tracks which session is currently editing among a set of fields.
// At most one session holds the registry at a time.
type Registry struct {
	mu       sync.Mutex
	active   *Session
	starting *Session
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Active returns the ID of the session currently editing.
func (r *Registry) Active() (string, bool) {
	if r == nil {
		return "", false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == nil {
		return "", false
	}
	return r.active.id, true
}

// HandleKeyboard routes evt to the session currently editing. An event that
// arrives while a session is still starting is held in that session's single
// pending slot and replayed once it reaches Editing. With no session the
// event is dropped.
func (r *Registry) HandleKeyboard(evt KeyboardEvent) {
	if r == nil {
		return
	}
	r.mu.Lock()
	active, starting := r.active, r.starting
	r.mu.Unlock()

	switch {
	case active != nil:
		active.deliver(evt)
	case starting != nil:
		starting.hold(evt)
	}
}

// Watch feeds events from src into HandleKeyboard until stop is called.
func (r *Registry) Watch(src KeyboardSource) (stop func()) {
	if r == nil || src == nil {
		return func() {}
	}
	return src.Subscribe(r.HandleKeyboard)
}

func (r *Registry) markStarting(s *Session) func() {
	r.mu.Lock()
	r.starting = s
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		if r.starting == s {
			r.starting = nil
		}
		r.mu.Unlock()
	}
}

func (r *Registry) subscribe(s *Session) (func(), error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active != nil && r.active != s {
		return nil, ErrAnotherActive
	}
	r.active = s
	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			if r.active == s {
				r.active = nil
			}
			r.mu.Unlock()
		})
	}, nil
}
