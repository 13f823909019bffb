package validator

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-fieldedit/pkg/template"
)

const decimalChars = "1234567890."

// ScaledDecimal treats typed digits as an integer count of the smallest unit
// and shows them with a fixed number of fraction digits: typing 1, 2, 3 with
// two places yields 0.01, 0.12, 1.23.
type ScaledDecimal struct {
	NopResponder
	places int
}

// Decimal builds a ScaledDecimal with the given fraction digits.
func Decimal(places int) ScaledDecimal {
	if places < 0 {
		places = 0
	}
	return ScaledDecimal{places: places}
}

// Places returns the configured fraction digits.
func (d ScaledDecimal) Places() int {
	return d.places
}

func (d ScaledDecimal) Validate(text string) error {
	if _, err := strconv.ParseFloat(keepOnly(text, decimalChars), 64); err != nil {
		return problem(KindParse, "Invalid amount")
	}
	return nil
}

func (d ScaledDecimal) ReplaceAfterAdd(value string) (string, bool) {
	digits := template.Digits(value)
	if digits == "" {
		return "", false
	}
	return d.scale(digits), true
}

// scale shifts the decimal point of an integer digit string left by places,
// keeping one integer digit at minimum.
func (d ScaledDecimal) scale(digits string) string {
	digits = strings.TrimLeft(digits, "0")
	if len(digits) < d.places+1 {
		digits = strings.Repeat("0", d.places+1-len(digits)) + digits
	}
	cut := len(digits) - d.places
	return digits[:cut] + "." + digits[cut:]
}
