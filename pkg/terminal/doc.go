// Package terminal edits a field on an interactive terminal. Field is the
// session host that redraws a single line, and Prompt feeds it raw
// keystrokes read through survey's rune reader. Fixed-choice fields are
// offered through a survey select instead.
package terminal
