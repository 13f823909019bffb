package session

import "errors"

var (
	// ErrInvalidRange reports an edit range that does not fit the current text.
	ErrInvalidRange = errors.New("session: edit range outside current text")
	// ErrAlreadyEditing reports a Begin while the editor's session is editing.
	ErrAlreadyEditing = errors.New("session: begin while already editing")
	// ErrNotEditing reports a keystroke with no session in the Editing stage.
	ErrNotEditing = errors.New("session: change outside editing")
	// ErrAnotherActive reports a Begin while a different session holds the
	// registry.
	ErrAnotherActive = errors.New("session: another session is editing")
	// ErrNilHost reports a lifecycle call without a host.
	ErrNilHost = errors.New("session: host is nil")
	// ErrNotFixedChoice is returned by Pick on free-text fields.
	ErrNotFixedChoice = errors.New("session: field is not fixed-choice")
	// ErrReadOnly is returned by Pick on read-only fields.
	ErrReadOnly = errors.New("session: field is read-only")
)
