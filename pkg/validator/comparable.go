package validator

import (
	"cmp"
	"strconv"
)

// ParseFunc converts field text into an ordered value.
type ParseFunc[T cmp.Ordered] func(text string) (T, error)

// Range checks that the parsed text falls within inclusive bounds.
type Range[T cmp.Ordered] struct {
	parse          ParseFunc[T]
	min, max       T
	hasMin, hasMax bool
}

// AtLeast accepts values greater than or equal to min.
func AtLeast[T cmp.Ordered](parse ParseFunc[T], min T) Range[T] {
	return Range[T]{parse: parse, min: min, hasMin: true}
}

// AtMost accepts values less than or equal to max.
func AtMost[T cmp.Ordered](parse ParseFunc[T], max T) Range[T] {
	return Range[T]{parse: parse, max: max, hasMax: true}
}

// Between accepts values in [min, max].
func Between[T cmp.Ordered](parse ParseFunc[T], min, max T) Range[T] {
	return Range[T]{parse: parse, min: min, max: max, hasMin: true, hasMax: true}
}

// EqualTo accepts only value.
func EqualTo[T cmp.Ordered](parse ParseFunc[T], value T) Range[T] {
	return Between(parse, value, value)
}

// IntBetween is Between with ParseInt.
func IntBetween(min, max int) Range[int] {
	return Between(ParseInt, min, max)
}

func (r Range[T]) Validate(text string) error {
	if r.parse == nil {
		return problemf(KindParse, "cannot interpret `%s` as comparable value", text)
	}
	value, err := r.parse(text)
	if err != nil {
		return problemf(KindParse, "cannot interpret `%s` as comparable value", text)
	}
	if r.hasMin && value < r.min {
		return problem(KindRange, "too small")
	}
	if r.hasMax && value > r.max {
		return problem(KindRange, "too big")
	}
	return nil
}

// ParseInt parses base-10 integers.
func ParseInt(text string) (int, error) {
	return strconv.Atoi(text)
}

// ParseFloat parses 64-bit floating point numbers.
func ParseFloat(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}

// ParseString compares text lexically.
func ParseString(text string) (string, error) {
	return text, nil
}
