package validator

import (
	"errors"
	"fmt"
)

// Kind classifies a validation problem.
type Kind string

const (
	KindParse              Kind = "parse"
	KindLength             Kind = "length"
	KindCharset            Kind = "charset"
	KindRange              Kind = "range"
	KindPattern            Kind = "pattern"
	KindIncompleteTemplate Kind = "incomplete_template"
	KindUnparseableURL     Kind = "unparseable_url"
)

// Problem is the error returned by built-in validators. Reason is the
// human-readable text surfaced to the host.
type Problem struct {
	Kind   Kind
	Reason string
}

func (p *Problem) Error() string {
	if p == nil {
		return ""
	}
	return p.Reason
}

func problem(kind Kind, reason string) *Problem {
	return &Problem{Kind: kind, Reason: reason}
}

func problemf(kind Kind, format string, args ...any) *Problem {
	return &Problem{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// Reason returns the composed reason text of err, or "" for nil.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Kinds lists the kinds of every Problem in err, in order, looking through
// errors.Join trees and wrapped errors.
func Kinds(err error) []Kind {
	var out []Kind
	collectKinds(err, &out)
	return out
}

func collectKinds(err error, out *[]Kind) {
	if err == nil {
		return
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, inner := range joined.Unwrap() {
			collectKinds(inner, out)
		}
		return
	}
	var p *Problem
	if errors.As(err, &p) {
		*out = append(*out, p.Kind)
	}
}

// HasKind reports whether err carries a Problem of the given kind.
func HasKind(err error, kind Kind) bool {
	for _, k := range Kinds(err) {
		if k == kind {
			return true
		}
	}
	return false
}
