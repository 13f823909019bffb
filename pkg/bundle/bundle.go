package bundle

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-fieldedit/pkg/validator"
)

// Keyboard selects the kind of keyboard a host should offer.
type Keyboard string

const (
	KeyboardDefault Keyboard = "default"
	KeyboardASCII   Keyboard = "ascii"
	KeyboardNumber  Keyboard = "numberPad"
	KeyboardDecimal Keyboard = "decimalPad"
	KeyboardEmail   Keyboard = "email"
	KeyboardURL     Keyboard = "url"
	KeyboardPhone   Keyboard = "phone"
)

// Alignment is the horizontal text alignment hint.
type Alignment string

const (
	AlignNatural Alignment = "natural"
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
)

// Capitalization is the autocapitalization hint.
type Capitalization string

const (
	CapitalizeNone      Capitalization = "none"
	CapitalizeWords     Capitalization = "words"
	CapitalizeSentences Capitalization = "sentences"
	CapitalizeAll       Capitalization = "all"
)

// Presentation holds the hints applied to a host on every begin-edit. Empty
// values leave the host's current setting alone.
type Presentation struct {
	Keyboard       Keyboard
	Prefix         string
	Suffix         string
	Alignment      Alignment
	Placeholder    string
	Preselect      bool
	Capitalization Capitalization
}

// Bundle is a validator list plus presentation hints. Choices or ReadOnly put
// the field in fixed-choice mode, where no free text is typed.
type Bundle struct {
	Name           string
	Validators     []validator.Validator
	Keyboard       Keyboard
	Prefix         string
	Suffix         string
	Alignment      Alignment
	Placeholder    string
	Preselect      bool
	Capitalization Capitalization
	Choices        []string
	ReadOnly       bool
}

var readOnly = Bundle{Name: PresetReadOnly, ReadOnly: true}

// ReadOnly returns the bundle for fields that can be shown but not edited.
func ReadOnly() Bundle {
	return readOnly
}

// Choice returns a fixed-choice bundle offering values.
func Choice(values ...string) Bundle {
	return Bundle{Name: PresetChoice, Choices: append([]string(nil), values...)}
}

// Presentation extracts the presentation hints.
func (b Bundle) Presentation() Presentation {
	return Presentation{
		Keyboard:       b.Keyboard,
		Prefix:         b.Prefix,
		Suffix:         b.Suffix,
		Alignment:      b.Alignment,
		Placeholder:    b.Placeholder,
		Preselect:      b.Preselect,
		Capitalization: b.Capitalization,
	}
}

// FixedChoice reports whether the keystroke pipeline is bypassed.
func (b Bundle) FixedChoice() bool {
	return b.ReadOnly || len(b.Choices) > 0
}

// Clone returns a copy that shares no slices with b.
func (b Bundle) Clone() Bundle {
	cloned := b
	cloned.Validators = append([]validator.Validator(nil), b.Validators...)
	cloned.Choices = append([]string(nil), b.Choices...)
	return cloned
}

// With returns a copy of b with extra validators appended.
func (b Bundle) With(validators ...validator.Validator) Bundle {
	cloned := b.Clone()
	cloned.Validators = append(cloned.Validators, validators...)
	return cloned
}

// ParseKeyboard maps a configuration string to a Keyboard.
func ParseKeyboard(raw string) (Keyboard, error) {
	return parseEnum(raw, "keyboard", []Keyboard{
		KeyboardDefault, KeyboardASCII, KeyboardNumber, KeyboardDecimal, KeyboardEmail, KeyboardURL, KeyboardPhone,
	})
}

// ParseAlignment maps a configuration string to an Alignment.
func ParseAlignment(raw string) (Alignment, error) {
	return parseEnum(raw, "alignment", []Alignment{AlignNatural, AlignLeft, AlignCenter, AlignRight})
}

// ParseCapitalization maps a configuration string to a Capitalization.
func ParseCapitalization(raw string) (Capitalization, error) {
	return parseEnum(raw, "capitalization", []Capitalization{
		CapitalizeNone, CapitalizeWords, CapitalizeSentences, CapitalizeAll,
	})
}

func parseEnum[T ~string](raw, label string, allowed []T) (T, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}
	for _, candidate := range allowed {
		if strings.EqualFold(trimmed, string(candidate)) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("bundle: unknown %s %q", label, raw)
}
