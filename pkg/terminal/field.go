package terminal

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-fieldedit/pkg/bundle"
	"github.com/goliatone/go-fieldedit/pkg/session"
)

// ANSI sequences used to redraw the field line.
const (
	clearLine = "\r\x1b[K"
	dim       = "\x1b[2m"
	red       = "\x1b[31m"
	reset     = "\x1b[0m"
)

// Field is a single-line terminal widget implementing session.Host and the
// optional selector, problem and choice capabilities.
type Field struct {
	label        string
	text         string
	placeholder  string
	presentation bundle.Presentation
	problem      string
	selected     bool
	resigned     bool
	choices      []string
	readOnly     bool
	width        int
	plain        bool
	out          io.Writer
}

var (
	_ session.Host            = (*Field)(nil)
	_ session.Selector        = (*Field)(nil)
	_ session.ProblemReporter = (*Field)(nil)
	_ session.ChoicePresenter = (*Field)(nil)
)

// FieldOption customises a Field.
type FieldOption func(*Field)

// WithWidth sets the column width used for right and centre alignment.
func WithWidth(width int) FieldOption {
	return func(f *Field) {
		if width > 0 {
			f.width = width
		}
	}
}

// WithPlain disables ANSI styling.
func WithPlain(plain bool) FieldOption {
	return func(f *Field) {
		f.plain = plain
	}
}

// WithInitialText seeds the field with text.
func WithInitialText(text string) FieldOption {
	return func(f *Field) {
		f.text = text
	}
}

// NewField returns a field labelled label that draws to out.
func NewField(label string, out io.Writer, opts ...FieldOption) *Field {
	f := &Field{label: label, out: out, width: 24}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

func (f *Field) Text() string { return f.text }

func (f *Field) SetText(text string) {
	f.text = text
	f.selected = false
}

func (f *Field) Placeholder() string { return f.placeholder }

func (f *Field) Apply(p bundle.Presentation) {
	f.presentation = p
	if p.Placeholder != "" {
		f.placeholder = p.Placeholder
	}
}

func (f *Field) Resign() { f.resigned = true }

func (f *Field) SelectAll() { f.selected = f.text != "" }

func (f *Field) ShowProblem(reason string) { f.problem = reason }

func (f *Field) ClearProblem() { f.problem = "" }

func (f *Field) PresentChoices(choices []string, readOnly bool) {
	f.choices = append([]string(nil), choices...)
	f.readOnly = readOnly
}

// Resigned reports whether the editor dropped focus.
func (f *Field) Resigned() bool { return f.resigned }

// Selected reports whether the whole text is selected.
func (f *Field) Selected() bool { return f.selected }

// Problem returns the reason currently shown.
func (f *Field) Problem() string { return f.problem }

// Choices returns the presented choices.
func (f *Field) Choices() []string { return append([]string(nil), f.choices...) }

// Presentation returns the last applied hints.
func (f *Field) Presentation() bundle.Presentation { return f.presentation }

// Line renders the field without control sequences for clearing.
func (f *Field) Line() string {
	var b strings.Builder
	if f.label != "" {
		b.WriteString(f.label)
		b.WriteString(": ")
	}

	switch {
	case f.text == "" && f.placeholder != "":
		b.WriteString(f.style(dim, align(f.placeholder, f.presentation.Alignment, f.width)))
	case f.selected:
		b.WriteString(align("["+f.decorated()+"]", f.presentation.Alignment, f.width))
	default:
		b.WriteString(align(f.decorated(), f.presentation.Alignment, f.width))
	}

	if f.problem != "" {
		b.WriteString("  ")
		b.WriteString(f.style(red, strings.ReplaceAll(f.problem, "\n", "; ")))
	}
	return b.String()
}

// Draw redraws the field in place.
func (f *Field) Draw() error {
	if f.out == nil {
		return nil
	}
	prefix := clearLine
	if f.plain {
		prefix = "\r"
	}
	_, err := fmt.Fprint(f.out, prefix+f.Line())
	return err
}

func (f *Field) decorated() string {
	return f.presentation.Prefix + f.text + f.presentation.Suffix
}

func (f *Field) style(code, s string) string {
	if f.plain {
		return s
	}
	return code + s + reset
}

func align(s string, alignment bundle.Alignment, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	switch alignment {
	case bundle.AlignRight:
		return strings.Repeat(" ", pad) + s
	case bundle.AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s
	}
}
