package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode"
	"unicode/utf8"

	sterm "github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-fieldedit/pkg/session"
)

// KeyReader yields raw keystrokes. *terminal.RuneReader from survey
// satisfies it.
type KeyReader interface {
	ReadRune() (rune, int, error)
}

// RawReader is a KeyReader that can toggle the terminal's raw mode.
type RawReader interface {
	KeyReader
	SetTermMode() error
	RestoreTermMode() error
}

// NewRuneReader wraps stdio in survey's raw-mode rune reader.
func NewRuneReader(stdio sterm.Stdio) RawReader {
	return sterm.NewRuneReader(stdio)
}

// Result is the outcome of one prompt.
type Result struct {
	Text      string
	Committed bool
	Picked    bool
}

// Option configures a Prompt.
type Option func(*Prompt)

// WithPromptDriver overrides the driver used for fixed-choice fields.
func WithPromptDriver(driver PromptDriver) Option {
	return func(p *Prompt) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithLogger sets the logger used for prompt diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Prompt) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Prompt runs an edit cycle for one field on a terminal.
type Prompt struct {
	reader KeyReader
	driver PromptDriver
	out    io.Writer
	logger *slog.Logger
}

// NewPrompt returns a prompt reading keys from reader and drawing to out.
func NewPrompt(reader KeyReader, out io.Writer, opts ...Option) *Prompt {
	p := &Prompt{
		reader: reader,
		out:    out,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.driver == nil {
		p.driver = NewSurveyDriver(out)
	}
	return p
}

// Run edits field through editor until the editor resigns focus or input
// ends. Ctrl-C abandons the session without completing it. Fixed-choice fields are offered through
// the driver; read-only fields are printed.
func (p *Prompt) Run(ctx context.Context, editor *session.Editor, field *Field) (Result, error) {
	if editor == nil || field == nil {
		return Result{}, errors.New("terminal: editor and field are required")
	}
	b := editor.Bundle()
	switch {
	case b.ReadOnly:
		editor.Begin(field)
		return Result{Text: field.Text()}, p.driver.Info(ctx, field.Line())
	case b.FixedChoice():
		return p.choose(ctx, editor, field)
	}

	if raw, ok := p.reader.(RawReader); ok {
		if err := raw.SetTermMode(); err != nil {
			return Result{}, fmt.Errorf("terminal: raw mode: %w", err)
		}
		defer func() {
			if err := raw.RestoreTermMode(); err != nil {
				p.logger.Warn("restore terminal mode", "error", err)
			}
		}()
	}

	if !editor.Begin(field) {
		return Result{Text: field.Text()}, nil
	}
	defer p.newline()
	if err := field.Draw(); err != nil {
		return Result{}, err
	}

	for !field.Resigned() {
		if err := ctx.Err(); err != nil {
			editor.Close()
			return Result{Text: field.Text()}, err
		}
		r, _, err := p.reader.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				editor.Resign(field)
				break
			}
			editor.Close()
			return Result{Text: field.Text()}, fmt.Errorf("terminal: read key: %w", err)
		}
		if stop := p.key(editor, field, r); stop {
			editor.Close()
			return Result{Text: field.Text()}, ErrAborted
		}
		if err := field.Draw(); err != nil {
			return Result{}, err
		}
	}

	if editor.Stage() == session.StageEditing {
		editor.Close()
	}
	text := field.Text()
	return Result{Text: text, Committed: field.Resigned() && text != ""}, nil
}

// key handles one keystroke and reports whether the user aborted.
func (p *Prompt) key(editor *session.Editor, field *Field, r rune) bool {
	switch r {
	case sterm.KeyInterrupt, sterm.KeyEndTransmission:
		return true
	case sterm.KeyEnter, '\n':
		editor.Return(field)
	case sterm.KeyBackspace, sterm.KeyDelete:
		if field.Selected() {
			editor.Change(field, session.Delete(0, utf8.RuneCountInString(field.Text())))
			return false
		}
		editor.Change(field, session.Backspace(field.Text()))
	default:
		if !unicode.IsPrint(r) {
			p.logger.Debug("ignored key", "rune", int(r))
			return false
		}
		text := field.Text()
		typed := Capitalize(text, string(r), field.Presentation().Capitalization)
		if field.Selected() {
			editor.Change(field, session.Edit{
				Range:       session.Range{Start: 0, End: utf8.RuneCountInString(text)},
				Replacement: typed,
			})
			return false
		}
		editor.Change(field, session.Append(text, typed))
	}
	return false
}

func (p *Prompt) choose(ctx context.Context, editor *session.Editor, field *Field) (Result, error) {
	editor.Begin(field)
	choices := field.Choices()
	idx, err := p.driver.Select(ctx, SelectConfig{
		Message:      field.label,
		Options:      choices,
		DefaultIndex: indexOf(choices, field.Text()),
	})
	if err != nil {
		return Result{Text: field.Text()}, err
	}
	if idx < 0 || idx >= len(choices) {
		return Result{Text: field.Text()}, ErrNoChoice
	}
	if err := editor.Pick(field, choices[idx]); err != nil {
		return Result{}, err
	}
	return Result{Text: field.Text(), Committed: true, Picked: true}, nil
}

func (p *Prompt) newline() {
	if p.out != nil {
		fmt.Fprintln(p.out)
	}
}
