package bundle

import (
	"golang.org/x/text/language"

	"github.com/goliatone/go-fieldedit/pkg/validator"
)

// Preset names registered in the default catalog.
const (
	PresetPercent        = "percent"
	PresetHexColor       = "hexColor"
	PresetIntegerPercent = "integerPercent"
	PresetInteger        = "integer"
	PresetEmail          = "email"
	PresetTitle          = "title"
	PresetDate           = "date"
	PresetURL            = "url"
	PresetPhone          = "phone"
	PresetAmount         = "amount"
	PresetReadOnly       = "readonly"
	PresetChoice         = "choice"
)

// Percent accepts a decimal with three places shown as a percentage.
func Percent() Bundle {
	return Bundle{
		Name:       PresetPercent,
		Validators: []validator.Validator{validator.Decimal(3), validator.OnlyIn("1234567890.")},
		Keyboard:   KeyboardDecimal,
		Suffix:     "%",
		Alignment:  AlignRight,
		Preselect:  true,
	}
}

// HexColor accepts eight upper-case hex digits (RRGGBBAA).
func HexColor() Bundle {
	return Bundle{
		Name:           PresetHexColor,
		Validators:     []validator.Validator{validator.OnlyIn("0123456789ABCDEF"), validator.ExactLength(8)},
		Keyboard:       KeyboardASCII,
		Preselect:      true,
		Capitalization: CapitalizeAll,
	}
}

// IntegerPercent accepts whole percentages from 0 to 100.
func IntegerPercent() Bundle {
	return Bundle{
		Name: PresetIntegerPercent,
		Validators: []validator.Validator{
			validator.IntBetween(-1, 101),
			validator.Digits(),
			validator.LengthBetween(1, 2),
		},
		Keyboard:  KeyboardNumber,
		Suffix:    "%",
		Alignment: AlignRight,
	}
}

// IntegerWithin accepts digits whose value lies strictly between min and max
// when they are set.
func IntegerWithin(min, max *int) Bundle {
	validators := []validator.Validator{validator.Digits()}
	switch {
	case min != nil && max != nil:
		validators = append(validators, validator.IntBetween(*min-1, *max+1))
	case min != nil:
		validators = append(validators, validator.AtLeast(validator.ParseInt, *min-1))
	case max != nil:
		validators = append(validators, validator.AtMost(validator.ParseInt, *max+1))
	}
	return Bundle{
		Name:       PresetInteger,
		Validators: validators,
		Keyboard:   KeyboardNumber,
		Alignment:  AlignRight,
		Preselect:  true,
	}
}

// Email accepts an e-mail address.
func Email() Bundle {
	return Bundle{
		Name:       PresetEmail,
		Validators: []validator.Validator{validator.Email()},
		Keyboard:   KeyboardEmail,
	}
}

// Title capitalizes every word and accepts anything.
func Title() Bundle {
	return Bundle{
		Name:           PresetTitle,
		Keyboard:       KeyboardDefault,
		Capitalization: CapitalizeWords,
	}
}

// Date accepts a dd/dd/dd date.
func Date() Bundle {
	return Bundle{
		Name:        PresetDate,
		Validators:  []validator.Validator{validator.MustTemplate("dd/dd/dd")},
		Keyboard:    KeyboardNumber,
		Placeholder: "dd/dd/dd",
	}
}

// URL accepts a URL.
func URL() Bundle {
	return Bundle{
		Name:       PresetURL,
		Validators: []validator.Validator{validator.URL{}},
		Keyboard:   KeyboardURL,
	}
}

// Phone accepts a ten digit ddd-ddd-dddd phone number and ends editing once
// it is complete.
func Phone() Bundle {
	return Bundle{
		Name:       PresetPhone,
		Validators: []validator.Validator{validator.MustTemplate("ddd-ddd-dddd")},
		Keyboard:   KeyboardNumber,
	}
}

// Amount accepts a number formatted for tag with two fraction digits.
func Amount(tag language.Tag) Bundle {
	return Bundle{
		Name:       PresetAmount,
		Validators: []validator.Validator{validator.Number(validator.NewLocaleFormatter(tag, 2))},
		Keyboard:   KeyboardDecimal,
		Alignment:  AlignRight,
	}
}
