package validator

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

func TestLeafValidators(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		validator Validator
		input     string
		want      string
	}{
		{name: "length ok", validator: LengthBetween(3, 5), input: "abc"},
		{name: "length short", validator: LengthBetween(3, 5), input: "ab", want: "too short"},
		{name: "length long", validator: LengthBetween(3, 5), input: "abcdef", want: "too long"},
		{name: "length counts runes", validator: MaxLength(2), input: "éé"},
		{name: "range ok", validator: IntBetween(-1, 101), input: "50"},
		{name: "range big", validator: IntBetween(-1, 101), input: "150", want: "too big"},
		{name: "range small", validator: IntBetween(-1, 101), input: "-5", want: "too small"},
		{name: "range inclusive", validator: IntBetween(-1, 101), input: "101"},
		{name: "range parse", validator: AtLeast(ParseInt, 0), input: "x1", want: "cannot interpret `x1` as comparable value"},
		{name: "range float", validator: AtMost(ParseFloat, 1.5), input: "1.75", want: "too big"},
		{name: "range equal", validator: EqualTo(ParseString, "b"), input: "a", want: "too small"},
		{name: "charset ok", validator: Digits(), input: "0123"},
		{name: "charset invalid", validator: Digits(), input: "1a2b", want: "invalid character(s): `ab`"},
		{name: "pattern ok", validator: MustPattern(`^[A-Z]{2}\d+$`), input: "AB12"},
		{name: "pattern invalid", validator: MustPattern(`^[A-Z]{2}\d+$`), input: "ab", want: "is invalid"},
		{name: "email ok", validator: Email(), input: "jane.doe@example.com"},
		{name: "email invalid", validator: Email(), input: "jane@", want: "is invalid"},
		{name: "url ok", validator: URL{}, input: "https://example.com/a?b=c"},
		{name: "url blank", validator: URL{}, input: "", want: "Unable to make valid URL"},
		{name: "url spaces", validator: URL{}, input: "http://exa mple.com", want: "Unable to make valid URL"},
		{name: "url bad escape", validator: URL{}, input: "http://example.com/%zz", want: "Unable to make valid URL"},
		{name: "decimal ok", validator: Decimal(2), input: "$12.50"},
		{name: "decimal invalid", validator: Decimal(2), input: "1.2.3", want: "Invalid amount"},
		{name: "decimal empty", validator: Decimal(2), input: "", want: "Invalid amount"},
		{name: "template ok", validator: MustTemplate("ddd-ddd-dddd"), input: "555-123-4567"},
		{name: "template incomplete", validator: MustTemplate("ddd-ddd-dddd"), input: "555-12", want: "incomplete"},
		{name: "template too many", validator: MustTemplate("dd"), input: "123", want: "too many digits"},
		{name: "trim always valid", validator: Trim{}, input: "  x  "},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Reason(tc.validator.Validate(tc.input)); got != tc.want {
				t.Fatalf("Validate(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestProblemKinds(t *testing.T) {
	t.Parallel()

	err := And(Digits(), MinLength(4), URL{}).Validate("a b")
	want := []Kind{KindCharset, KindLength, KindUnparseableURL}
	if diff := cmp.Diff(want, Kinds(err)); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
	if !HasKind(err, KindLength) || HasKind(err, KindRange) {
		t.Fatalf("unexpected HasKind results for %v", err)
	}
	var p *Problem
	if !errors.As(MaxLength(1).Validate("ab"), &p) || p.Kind != KindLength {
		t.Fatalf("expected length problem, got %#v", p)
	}
}

func TestAndJoinsReasonsInOrder(t *testing.T) {
	t.Parallel()

	combined := And(MinLength(4), Digits(), Email())
	got := Reason(combined.Validate("1a"))
	want := "too short\ninvalid character(s): `a`\nis invalid"
	if got != want {
		t.Fatalf("reason = %q, want %q", got, want)
	}
	if err := And(Digits(), MaxLength(3)).Validate("12"); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestAndIsConjunction(t *testing.T) {
	t.Parallel()

	members := []Validator{
		MinLength(2), MaxLength(4), Digits(), IntBetween(10, 99), MustTemplate("dd"), Email(), URL{}, Decimal(1),
	}
	inputs := []string{"", "1", "12", "123", "ab", "a@b.co", "99", "http://x"}
	for _, a := range members {
		for _, b := range members {
			for _, in := range inputs {
				both := a.Validate(in) == nil && b.Validate(in) == nil
				if got := And(a, b).Validate(in) == nil; got != both {
					t.Fatalf("And(%T, %T).Validate(%q) valid=%v, want %v", a, b, in, got, both)
				}
			}
		}
	}
}

func TestCapabilityQueries(t *testing.T) {
	t.Parallel()

	if _, ok := AsResponder(Email()); ok {
		t.Fatalf("email should not respond to keystrokes")
	}
	if _, ok := AsPreprocessor(MaxLength(3)); ok {
		t.Fatalf("length should not preprocess")
	}
	if _, ok := AsResponder(MaxLength(3)); !ok {
		t.Fatalf("length should respond to keystrokes")
	}
	if _, ok := AsPreprocessor(Digits()); !ok {
		t.Fatalf("charset should preprocess")
	}
	if _, ok := AsResponder(nil); ok {
		t.Fatalf("nil validator has no capabilities")
	}
	fn := Func(func(string) error { return nil })
	if _, ok := AsResponder(fn); ok {
		t.Fatalf("func validator has no responder")
	}
}

func TestCharsetProcess(t *testing.T) {
	t.Parallel()

	if got := Digits().Process("12a3"); got != "123" {
		t.Fatalf("process = %q", got)
	}
	if got := Digits().Unprocess("12a3"); got != "12a3" {
		t.Fatalf("unprocess = %q", got)
	}
	if Digits().AllowUpdate("12a", "a") {
		t.Fatalf("expected charset to reject letters")
	}
}

func TestLengthResponder(t *testing.T) {
	t.Parallel()

	l := MaxLength(5)
	if l.AllowUpdate("abcdef", "f") {
		t.Fatalf("expected sixth character to be rejected")
	}
	if !l.ShouldStop("abcde") || l.ShouldStop("abcd") {
		t.Fatalf("unexpected stop answers")
	}
	if MinLength(2).ShouldStop("ab") {
		t.Fatalf("min-only length never stops")
	}
	if _, ok := l.ReplaceAfterAdd("abc"); ok {
		t.Fatalf("length never rewrites")
	}
}

func TestScaledDecimalRewrite(t *testing.T) {
	t.Parallel()

	cases := []struct {
		places int
		value  string
		want   string
	}{
		{places: 3, value: "5", want: "0.005"},
		{places: 3, value: "0.0051", want: "0.051"},
		{places: 3, value: "0.0512", want: "0.512"},
		{places: 3, value: "0.5123", want: "5.123"},
		{places: 2, value: "123456", want: "1234.56"},
		{places: 0, value: "0012", want: "12."},
		{places: 2, value: "000", want: "0.00"},
	}
	for _, tc := range cases {
		got, ok := Decimal(tc.places).ReplaceAfterAdd(tc.value)
		if !ok || got != tc.want {
			t.Fatalf("Decimal(%d).ReplaceAfterAdd(%q) = %q, %v; want %q", tc.places, tc.value, got, ok, tc.want)
		}
	}
	if _, ok := Decimal(2).ReplaceAfterAdd("."); ok {
		t.Fatalf("no digits means no rewrite")
	}
}

func TestStructuredTemplateResponder(t *testing.T) {
	t.Parallel()

	phone := MustTemplate("ddd-ddd-dddd")
	if !phone.AllowUpdate("555-1", "1") {
		t.Fatalf("expected digit to be allowed")
	}
	if phone.AllowUpdate("555-a", "a") {
		t.Fatalf("expected letter to be rejected")
	}
	if phone.AllowUpdate("555-123-45678", "8") {
		t.Fatalf("expected overflow to be rejected")
	}
	if got, _ := phone.ReplaceAfterAdd("555"); got != "555-" {
		t.Fatalf("after add = %q", got)
	}
	if got, _ := phone.ReplaceAfterDelete("555-"); got != "555" {
		t.Fatalf("after delete = %q", got)
	}
	if got, ok := phone.ReplaceAfterDelete(""); !ok || got != "" {
		t.Fatalf("deleting to empty = %q, %v", got, ok)
	}
	if !phone.ShouldStop("555-123-4567") || phone.ShouldStop("555-123-456") {
		t.Fatalf("unexpected stop answers")
	}
	if got := phone.Unprocess("5551234567"); got != "555-123-4567" {
		t.Fatalf("unprocess = %q", got)
	}
	for _, s := range []string{"", "5", "555", "5551", "5551234567"} {
		if got := phone.Process(phone.Unprocess(s)); got != s {
			t.Fatalf("round trip %q = %q", s, got)
		}
	}
}

func TestDecide(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		validators []Validator
		updated    string
		added      string
		want       Decision
	}{
		{
			name:       "veto short circuits rewrites",
			validators: []Validator{MaxLength(3), Decimal(2)},
			updated:    "1234",
			added:      "4",
			want:       Decision{Verdict: VerdictVeto},
		},
		{
			name:       "first rewrite wins",
			validators: []Validator{Decimal(2), MustTemplate("dd-dd")},
			updated:    "123",
			added:      "3",
			want:       Decision{Verdict: VerdictRewrite, Text: "1.23"},
		},
		{
			name:       "plain apply",
			validators: []Validator{MaxLength(5), Email()},
			updated:    "abc",
			added:      "c",
			want:       Decision{Verdict: VerdictApply, Text: "abc"},
		},
		{
			name:       "deletion rewrite",
			validators: []Validator{MaxLength(5), MustTemplate("dd-dd")},
			updated:    "12-",
			want:       Decision{Verdict: VerdictRewrite, Text: "12"},
		},
		{
			name:       "deletion apply",
			validators: []Validator{MaxLength(5)},
			updated:    "12",
			want:       Decision{Verdict: VerdictApply, Text: "12"},
		},
		{
			name:       "nested and matches flat list",
			validators: []Validator{And(Digits(), MaxLength(4)), MustTemplate("dd-dd")},
			updated:    "12",
			added:      "2",
			want:       Decision{Verdict: VerdictRewrite, Text: "12-"},
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Decide(Responders(tc.validators), tc.updated, tc.added)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("decision mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAndShouldStopIsAny(t *testing.T) {
	t.Parallel()

	c := And(MaxLength(2), MinLength(5))
	if !c.ShouldStop("ab") {
		t.Fatalf("expected stop once any member stops")
	}
	if c.ShouldStop("a") {
		t.Fatalf("unexpected stop")
	}
}

func TestAndPreprocessesInOrder(t *testing.T) {
	t.Parallel()

	c := And(Trim{}, Digits())
	if got := c.Process("  12-3 "); got != "123" {
		t.Fatalf("process = %q", got)
	}
	if got := ProcessAll([]Validator{c, Email()}, " 1a "); got != "1" {
		t.Fatalf("process all = %q", got)
	}
}

func TestLocaleFormatter(t *testing.T) {
	t.Parallel()

	en := NewLocaleFormatter(language.English, 2)
	if got := en.Format(1234.5); got != "1,234.5" {
		t.Fatalf("format = %q", got)
	}
	group, decimal := en.Separators()
	if group != "," || decimal != "." {
		t.Fatalf("separators = %q %q", group, decimal)
	}
	value, err := en.Parse("1,234.5")
	if err != nil || value != 1234.5 {
		t.Fatalf("parse = %v, %v", value, err)
	}

	de := NewLocaleFormatter(language.German, 2)
	value, err = de.Parse(de.Format(9876.25))
	if err != nil || value != 9876.25 {
		t.Fatalf("german round trip = %v, %v", value, err)
	}

	n := Number(en)
	if got, ok := n.ReplaceAfterAdd("1,2345"); !ok || got != "12,345" {
		t.Fatalf("reformat = %q", got)
	}
	if got, _ := n.ReplaceAfterAdd("x"); got != "0" {
		t.Fatalf("unparseable rewrites to zero, got %q", got)
	}
	if got := Reason(n.Validate("abc")); got != "cannot make a number for `abc`" {
		t.Fatalf("reason = %q", got)
	}
}
