package validator

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberFormatter converts between numbers and their display text.
type NumberFormatter interface {
	Parse(text string) (float64, error)
	Format(value float64) string
}

// FormattedNumber accepts anything its formatter can parse and reformats the
// text after every addition.
type FormattedNumber struct {
	NopResponder
	formatter NumberFormatter
}

// Number builds a FormattedNumber around f.
func Number(f NumberFormatter) FormattedNumber {
	return FormattedNumber{formatter: f}
}

func (n FormattedNumber) Validate(text string) error {
	if n.formatter == nil {
		return problemf(KindParse, "cannot make a number for `%s`", text)
	}
	if _, err := n.formatter.Parse(text); err != nil {
		return problemf(KindParse, "cannot make a number for `%s`", text)
	}
	return nil
}

func (n FormattedNumber) ReplaceAfterAdd(value string) (string, bool) {
	if n.formatter == nil {
		return "", false
	}
	parsed, err := n.formatter.Parse(value)
	if err != nil {
		parsed = 0
	}
	return n.formatter.Format(parsed), true
}

var errNotANumber = errors.New("validator: not a number")

// LocaleFormatter formats numbers with the grouping and decimal separators of
// a language. Digits are always Latin.
type LocaleFormatter struct {
	printer     *message.Printer
	maxFraction int
	group       string
	decimal     string
}

// NewLocaleFormatter builds a formatter for tag showing at most maxFraction
// fraction digits.
func NewLocaleFormatter(tag language.Tag, maxFraction int) *LocaleFormatter {
	if latn, err := tag.SetTypeForKey("nu", "latn"); err == nil {
		tag = latn
	}
	if maxFraction < 0 {
		maxFraction = 0
	}
	printer := message.NewPrinter(tag)
	group, decimal := separators(printer.Sprint(number.Decimal(1234567.5, number.MinFractionDigits(1), number.MaxFractionDigits(1))))
	return &LocaleFormatter{
		printer:     printer,
		maxFraction: maxFraction,
		group:       group,
		decimal:     decimal,
	}
}

// Separators returns the grouping and decimal separators in use.
func (f *LocaleFormatter) Separators() (group, decimal string) {
	return f.group, f.decimal
}

func (f *LocaleFormatter) Format(value float64) string {
	return f.printer.Sprint(number.Decimal(value, number.MaxFractionDigits(f.maxFraction)))
}

func (f *LocaleFormatter) Parse(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, errNotANumber
	}
	if f.group != "" {
		text = strings.ReplaceAll(text, f.group, "")
	}
	if f.decimal != "" && f.decimal != "." {
		text = strings.ReplaceAll(text, f.decimal, ".")
	}
	var clean strings.Builder
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-', r == '+':
			clean.WriteRune(r)
		case unicode.IsSpace(r):
		default:
			return 0, errNotANumber
		}
	}
	value, err := strconv.ParseFloat(clean.String(), 64)
	if err != nil {
		return 0, errNotANumber
	}
	return value, nil
}

// separators reads the runs of non-digit runes out of a formatted 1234567.5:
// the first run is the grouping separator and the last one the decimal
// separator.
func separators(sample string) (group, decimal string) {
	var runs []string
	var current strings.Builder
	for _, r := range sample {
		if r >= '0' && r <= '9' {
			if current.Len() > 0 {
				runs = append(runs, current.String())
				current.Reset()
			}
			continue
		}
		current.WriteRune(r)
	}
	switch len(runs) {
	case 0:
		return "", "."
	case 1:
		return "", runs[0]
	default:
		return runs[0], runs[len(runs)-1]
	}
}
