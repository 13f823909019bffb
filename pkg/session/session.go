package session

import (
	"sync"
)

// Stage is the lifecycle stage of a Session.
type Stage int

const (
	StageIdle Stage = iota
	StageEditing
	StageEnded
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageEditing:
		return "editing"
	case StageEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session is the state of one edit cycle. It is created by Editor.Begin and
// discarded once it reaches StageEnded.
type Session struct {
	id     string
	host   Host
	stage  Stage
	finish FinishFunc

	mu      sync.Mutex
	pending *KeyboardEvent
	release func()
}

func newSession(id string, host Host, finish FinishFunc) *Session {
	return &Session{id: id, host: host, finish: finish}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// Stage returns the current stage.
func (s *Session) Stage() Stage {
	if s == nil {
		return StageIdle
	}
	return s.stage
}

// hold stores evt in the single pending slot, replacing any earlier event.
func (s *Session) hold(evt KeyboardEvent) {
	s.mu.Lock()
	s.pending = &evt
	s.mu.Unlock()
}

func (s *Session) takePending() (KeyboardEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return KeyboardEvent{}, false
	}
	evt := *s.pending
	s.pending = nil
	return evt, true
}

func (s *Session) deliver(evt KeyboardEvent) {
	if avoider, ok := s.host.(KeyboardAvoider); ok {
		avoider.AvoidKeyboard(evt)
	}
}

// enter moves the session to StageEditing and holds the registry until leave.
func (s *Session) enter(reg *Registry) error {
	release, err := reg.subscribe(s)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.release = release
	s.mu.Unlock()
	s.stage = StageEditing
	if evt, ok := s.takePending(); ok {
		s.deliver(evt)
	}
	return nil
}

// leave ends the session and releases its subscription. It is safe to call
// more than once.
func (s *Session) leave() {
	s.mu.Lock()
	release := s.release
	s.release = nil
	s.pending = nil
	s.mu.Unlock()
	if release != nil {
		release()
	}
	s.stage = StageEnded
}

func (s *Session) takeFinish() FinishFunc {
	fn := s.finish
	s.finish = nil
	return fn
}
