package session_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldedit/pkg/bundle"
	"github.com/goliatone/go-fieldedit/pkg/session"
	"github.com/goliatone/go-fieldedit/pkg/testsupport"
)

type fakeSource struct {
	fn        func(session.KeyboardEvent)
	cancelled bool
}

func (s *fakeSource) Subscribe(fn func(session.KeyboardEvent)) func() {
	s.fn = fn
	return func() { s.cancelled = true }
}

func TestKeyboardEventDeferredUntilEditing(t *testing.T) {
	t.Parallel()

	reg := session.NewRegistry()
	editor := session.New(bundle.Title(), session.WithRegistry(reg))
	field := testsupport.NewField("")

	first := session.KeyboardEvent{Visible: true, Height: 200}
	second := session.KeyboardEvent{Visible: true, Height: 260}
	field.OnApply = func(bundle.Presentation) {
		reg.HandleKeyboard(first)
		reg.HandleKeyboard(second)
		if len(field.Keyboard) != 0 {
			t.Fatalf("event delivered before editing")
		}
	}

	if !editor.Begin(field) {
		t.Fatalf("begin refused")
	}
	if diff := cmp.Diff([]session.KeyboardEvent{second}, field.Keyboard); diff != "" {
		t.Fatalf("replayed events mismatch (-want +got):\n%s", diff)
	}

	field.OnApply = nil
	reg.HandleKeyboard(first)
	if len(field.Keyboard) != 2 {
		t.Fatalf("events during editing should be delivered directly, got %d", len(field.Keyboard))
	}

	editor.End(field, session.ReasonCommitted)
	reg.HandleKeyboard(first)
	if len(field.Keyboard) != 2 {
		t.Fatalf("events after editing should be dropped")
	}
}

func TestRegistrySingleActiveSession(t *testing.T) {
	t.Parallel()

	reg := session.NewRegistry()
	a := session.New(bundle.Title(), session.WithRegistry(reg), session.WithIDGenerator(func() string { return "a" }))
	b := session.New(bundle.Title(), session.WithRegistry(reg), session.WithIDGenerator(func() string { return "b" }))
	fa, fb := testsupport.NewField(""), testsupport.NewField("")

	if !a.Begin(fa) {
		t.Fatalf("a refused")
	}
	if id, ok := reg.Active(); !ok || id != "a" {
		t.Fatalf("active = %q, %v", id, ok)
	}
	if b.Begin(fb) {
		t.Fatalf("b must not begin while a is editing")
	}
	if b.Stage() != session.StageIdle {
		t.Fatalf("b stage = %v", b.Stage())
	}

	a.End(fa, session.ReasonCommitted)
	if _, ok := reg.Active(); ok {
		t.Fatalf("registry should be released on end")
	}
	if !b.Begin(fb) {
		t.Fatalf("b should begin once a ended")
	}
	b.Close()
	if _, ok := reg.Active(); ok {
		t.Fatalf("registry should be released on close")
	}
	if b.Stage() != session.StageIdle {
		t.Fatalf("closed editor should be idle")
	}
}

func TestRegistryWatch(t *testing.T) {
	t.Parallel()

	reg := session.NewRegistry()
	src := &fakeSource{}
	stop := reg.Watch(src)

	editor := session.New(bundle.Title(), session.WithRegistry(reg))
	field := testsupport.NewField("")
	editor.Begin(field)
	src.fn(session.KeyboardEvent{Visible: false})
	if len(field.Keyboard) != 1 {
		t.Fatalf("watched event not delivered")
	}
	stop()
	if !src.cancelled {
		t.Fatalf("stop should cancel the subscription")
	}
}

func TestEditRanges(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		edit session.Edit
		want string
		err  bool
	}{
		{name: "insert", text: "ac", edit: session.Insert(1, "b"), want: "abc"},
		{name: "replace", text: "abc", edit: session.Edit{Range: session.Range{Start: 0, End: 2}, Replacement: "z"}, want: "zc"},
		{name: "delete runes", text: "héllo", edit: session.Delete(1, 2), want: "hllo"},
		{name: "backspace", text: "ab", edit: session.Backspace("ab"), want: "a"},
		{name: "backspace empty", text: "", edit: session.Backspace(""), want: ""},
		{name: "out of range", text: "ab", edit: session.Delete(1, 3), err: true},
		{name: "inverted", text: "ab", edit: session.Delete(2, 1), err: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.edit.Apply(tc.text)
			if tc.err {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("Apply(%q) = %q, %v; want %q", tc.text, got, err, tc.want)
			}
		})
	}
}
