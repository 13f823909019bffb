package validator

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// EmailExpr is the expression used by Email.
const EmailExpr = "^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\\.[a-zA-Z0-9](?:[a-zA-Z0-9-\\.]{0,61}[a-zA-Z0-9])?$"

var emailPattern = MustPattern(EmailExpr)

// Pattern requires the text to contain a match of a regular expression.
type Pattern struct {
	re *regexp.Regexp
}

// NewPattern compiles expr.
func NewPattern(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("validator: compile pattern: %w", err)
	}
	return Pattern{re: re}, nil
}

// MustPattern panics when expr does not compile.
func MustPattern(expr string) Pattern {
	p, err := NewPattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Email checks addresses against EmailExpr.
func Email() Pattern {
	return emailPattern
}

// Expr returns the source expression.
func (p Pattern) Expr() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

func (p Pattern) Validate(text string) error {
	if p.re == nil || !p.re.MatchString(text) {
		return problem(KindPattern, "is invalid")
	}
	return nil
}

// URL requires text that parses as a URL.
type URL struct{}

func (URL) Validate(text string) error {
	if strings.TrimSpace(text) == "" || strings.ContainsAny(text, " \t\r\n") {
		return problem(KindUnparseableURL, "Unable to make valid URL")
	}
	if _, err := url.Parse(text); err != nil {
		return problem(KindUnparseableURL, "Unable to make valid URL")
	}
	return nil
}
