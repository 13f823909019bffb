package terminal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/goliatone/go-fieldedit/pkg/bundle"
	"github.com/goliatone/go-fieldedit/pkg/session"
	"github.com/goliatone/go-fieldedit/pkg/validator"
)

type scriptedKeys struct {
	keys []rune
	pos  int
}

func keys(s string) *scriptedKeys { return &scriptedKeys{keys: []rune(s)} }

func (k *scriptedKeys) ReadRune() (rune, int, error) {
	if k.pos >= len(k.keys) {
		return 0, 0, io.EOF
	}
	r := k.keys[k.pos]
	k.pos++
	return r, len(string(r)), nil
}

type stubDriver struct {
	selectIdx    []int
	selectPos    int
	selects      []SelectConfig
	infoMessages []string
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selects = append(s.selects, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func TestPromptPhoneAutoStops(t *testing.T) {
	t.Parallel()

	var finished []string
	editor := session.New(bundle.Phone(), session.OnFinish(func(text string, committed bool) {
		if committed {
			finished = append(finished, text)
		}
	}))
	var out bytes.Buffer
	field := NewField("Phone", &out, WithPlain(true))
	reader := keys("5551234567999")

	res, err := NewPrompt(reader, &out, WithPromptDriver(&stubDriver{})).Run(context.Background(), editor, field)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Text != "555-123-4567" || !res.Committed {
		t.Fatalf("unexpected result %+v", res)
	}
	if reader.pos != 10 {
		t.Fatalf("prompt should stop reading once the field resigns, read %d keys", reader.pos)
	}
	if len(finished) != 1 || finished[0] != "555-123-4567" {
		t.Fatalf("finish = %v", finished)
	}
	if !strings.Contains(out.String(), "Phone: 555-123-4567") {
		t.Fatalf("output missing final line: %q", out.String())
	}
}

func TestPromptBackspaceAndReturn(t *testing.T) {
	t.Parallel()

	editor := session.New(bundle.Bundle{Validators: []validator.Validator{validator.MinLength(2)}})
	field := NewField("Code", io.Discard, WithPlain(true))

	res, err := NewPrompt(keys("abc\x7f\r"), io.Discard, WithPromptDriver(&stubDriver{})).Run(context.Background(), editor, field)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Text != "ab" || !res.Committed {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestPromptReturnRefusedShowsProblem(t *testing.T) {
	t.Parallel()

	editor := session.New(bundle.Bundle{Validators: []validator.Validator{validator.MinLength(3)}})
	field := NewField("Code", io.Discard, WithPlain(true))

	res, err := NewPrompt(keys("a\r"), io.Discard, WithPromptDriver(&stubDriver{})).Run(context.Background(), editor, field)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Committed {
		t.Fatalf("invalid text must not commit: %+v", res)
	}
	if field.Problem() != "too short" {
		t.Fatalf("problem = %q", field.Problem())
	}
	if !strings.Contains(field.Line(), "too short") {
		t.Fatalf("line should show problem: %q", field.Line())
	}
}

func TestPromptInterruptAborts(t *testing.T) {
	t.Parallel()

	called := false
	editor := session.New(bundle.Bundle{}, session.OnFinish(func(string, bool) { called = true }))
	field := NewField("Name", io.Discard, WithPlain(true))

	_, err := NewPrompt(keys("ab\x03"), io.Discard, WithPromptDriver(&stubDriver{})).Run(context.Background(), editor, field)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if called {
		t.Fatalf("aborted edit must not complete")
	}
	if editor.Session() != nil {
		t.Fatalf("session should be released")
	}
}

func TestPromptPreselectReplacesText(t *testing.T) {
	t.Parallel()

	editor := session.New(bundle.HexColor())
	field := NewField("Color", io.Discard, WithPlain(true), WithInitialText("FFFFFFFF"))

	res, err := NewPrompt(keys("00ff00aa\r"), io.Discard, WithPromptDriver(&stubDriver{})).Run(context.Background(), editor, field)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Text != "00FF00AA" {
		t.Fatalf("text = %q", res.Text)
	}
}

func TestPromptFixedChoice(t *testing.T) {
	t.Parallel()

	driver := &stubDriver{selectIdx: []int{1}}
	editor := session.New(bundle.Choice("free", "pro"))
	field := NewField("Plan", io.Discard, WithInitialText("pro"))

	res, err := NewPrompt(keys(""), io.Discard, WithPromptDriver(driver)).Run(context.Background(), editor, field)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !res.Picked || res.Text != "pro" {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(driver.selects) != 1 || driver.selects[0].DefaultIndex != 1 || driver.selects[0].Message != "Plan" {
		t.Fatalf("unexpected select %+v", driver.selects)
	}

	empty := &stubDriver{}
	if _, err := NewPrompt(keys(""), io.Discard, WithPromptDriver(empty)).Run(context.Background(), editor, NewField("Plan", io.Discard)); err == nil {
		t.Fatal("expected driver error")
	}
}

func TestPromptReadOnly(t *testing.T) {
	t.Parallel()

	driver := &stubDriver{}
	editor := session.New(bundle.ReadOnly())
	field := NewField("ID", io.Discard, WithPlain(true), WithInitialText("acct-1"))

	res, err := NewPrompt(keys("x"), io.Discard, WithPromptDriver(driver)).Run(context.Background(), editor, field)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Text != "acct-1" || res.Committed {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(driver.infoMessages) != 1 || driver.infoMessages[0] != "ID: acct-1" {
		t.Fatalf("info = %v", driver.infoMessages)
	}
}

func TestCapitalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text, typed string
		hint        bundle.Capitalization
		want        string
	}{
		{"", "a", bundle.CapitalizeAll, "A"},
		{"ab", "c", bundle.CapitalizeAll, "C"},
		{"", "a", bundle.CapitalizeWords, "A"},
		{"hello ", "w", bundle.CapitalizeWords, "W"},
		{"hello", "w", bundle.CapitalizeWords, "w"},
		{"Done. ", "n", bundle.CapitalizeSentences, "N"},
		{"Done ", "n", bundle.CapitalizeSentences, "n"},
		{"", "1", bundle.CapitalizeSentences, "1"},
		{"", "a", bundle.CapitalizeNone, "a"},
	}
	for _, tc := range cases {
		if got := Capitalize(tc.text, tc.typed, tc.hint); got != tc.want {
			t.Fatalf("Capitalize(%q, %q, %s) = %q, want %q", tc.text, tc.typed, tc.hint, got, tc.want)
		}
	}
}

func TestFieldLineAlignment(t *testing.T) {
	t.Parallel()

	field := NewField("", io.Discard, WithPlain(true), WithWidth(6))
	field.Apply(bundle.Presentation{Alignment: bundle.AlignRight, Suffix: "%"})
	field.SetText("12")
	if got := field.Line(); got != "   12%" {
		t.Fatalf("line = %q", got)
	}

	field.Apply(bundle.Presentation{Alignment: bundle.AlignCenter})
	if got := field.Line(); got != "  12  " {
		t.Fatalf("centred line = %q", got)
	}

	empty := NewField("Date", io.Discard, WithPlain(true), WithWidth(1))
	empty.Apply(bundle.Presentation{Placeholder: "dd/dd/dd"})
	if got := empty.Line(); got != "Date: dd/dd/dd" {
		t.Fatalf("placeholder line = %q", got)
	}
}
