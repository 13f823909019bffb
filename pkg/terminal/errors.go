package terminal

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("terminal: aborted")
	// ErrNoChoice is returned when a select prompt yields no valid option.
	ErrNoChoice = errors.New("terminal: no choice selected")
)
