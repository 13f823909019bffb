package template

import (
	"errors"
	"testing"
)

func TestFill(t *testing.T) {
	t.Parallel()

	phone := MustNew("ddd-ddd-dddd")
	cases := []struct {
		name   string
		value  string
		greedy bool
		want   string
	}{
		{name: "complete greedy", value: "5551234567", greedy: true, want: "555-123-4567"},
		{name: "prefix greedy keeps separator", value: "555", greedy: true, want: "555-"},
		{name: "prefix non greedy stops at separator", value: "555", greedy: false, want: "555"},
		{name: "separator while digits remain", value: "5551", greedy: false, want: "555-1"},
		{name: "ignores literals in input", value: "555-12", greedy: true, want: "555-12"},
		{name: "extra digits dropped", value: "555123456789", greedy: true, want: "555-123-4567"},
		{name: "empty", value: "", greedy: true, want: ""},
		{name: "non digits only", value: "abc", greedy: false, want: ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := phone.Fill(tc.value, tc.greedy); got != tc.want {
				t.Fatalf("Fill(%q, %v) = %q, want %q", tc.value, tc.greedy, got, tc.want)
			}
		})
	}
}

func TestFillLeadingLiteral(t *testing.T) {
	t.Parallel()

	tpl := MustNew("(ddd) ddd")
	if got := tpl.Fill("12", true); got != "(12" {
		t.Fatalf("greedy = %q", got)
	}
	if got := tpl.Fill("", true); got != "(" {
		t.Fatalf("greedy empty = %q", got)
	}
	if got := tpl.Fill("", false); got != "" {
		t.Fatalf("non greedy empty = %q", got)
	}
	if got := tpl.Fill("123456", false); got != "(123) 456" {
		t.Fatalf("non greedy full = %q", got)
	}
}

func TestDigitRoundTrip(t *testing.T) {
	t.Parallel()

	tpl := MustNew("dd/dd/dd")
	for _, s := range []string{"", "1", "12", "123", "1234", "12345", "123456"} {
		if got := Digits(tpl.Fill(s, true)); got != s {
			t.Fatalf("round trip %q = %q", s, got)
		}
	}
}

func TestNewCountsSlots(t *testing.T) {
	t.Parallel()

	tpl, err := New("ddd-ddd-dddd")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if tpl.Placeholders() != 10 || tpl.Len() != 12 {
		t.Fatalf("placeholders=%d len=%d", tpl.Placeholders(), tpl.Len())
	}
	if tpl.Pattern() != "ddd-ddd-dddd" {
		t.Fatalf("pattern = %q", tpl.Pattern())
	}
	if _, err := New(""); !errors.Is(err, ErrEmptyPattern) {
		t.Fatalf("expected ErrEmptyPattern, got %v", err)
	}
}

func TestAllDigits(t *testing.T) {
	t.Parallel()

	if !AllDigits("0123") || !AllDigits("") {
		t.Fatalf("expected digits")
	}
	if AllDigits("12a") || AllDigits("١٢") {
		t.Fatalf("expected non digits to be rejected")
	}
}
