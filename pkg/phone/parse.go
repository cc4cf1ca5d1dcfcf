package phone

import (
	"strings"
	"unicode"

	"contacts/pkg/serrors"
)

// digitsOf normalizes a free-text phone number: formatting characters
// (parentheses, hyphens, dots, spaces and any other punctuation) are
// stripped, preserving digit order. Letters survive stripping so that inputs
// like "SOS-1234" are rejected as non-numeric rather than silently losing
// characters.
func digitsOf(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", serrors.With(serrors.ErrInvalidArgument, "phone number is required")
	}

	var b strings.Builder
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	normalized := b.String()
	if !isDigits(normalized) {
		return "", serrors.With(serrors.ErrInvalidArgument,
			"phone number [%q] must be numeric", raw)
	}

	return normalized, nil
}

// ParseAreaCode extracts the area code from a free-text phone number. The
// input must normalize to at least 10 digits; the code is read from the
// trailing 10-digit window, so "1 (503) 555-1234" still yields "503".
// Seven-digit local numbers carry no area code and are rejected.
func ParseAreaCode(raw string) (AreaCode, error) {
	digits, err := digitsOf(raw)
	if err != nil {
		return "", err
	}
	if len(digits) < TenDigitLength {
		return "", serrors.With(serrors.ErrInvalidArgument,
			"phone number [%q] must be a 10-digit number", raw)
	}

	window := digits[len(digits)-TenDigitLength:]

	return AreaCode(window[:AreaCodeLength]), nil
}

// ParseExchangeCode extracts the exchange code from a free-text phone number.
// The input must normalize to at least 7 digits; the code is the first 3
// digits of the trailing 7-digit window.
func ParseExchangeCode(raw string) (ExchangeCode, error) {
	digits, err := digitsOf(raw)
	if err != nil {
		return "", err
	}
	if len(digits) < SevenDigitLength {
		return "", serrors.With(serrors.ErrInvalidArgument,
			"phone number [%q] must contain at least 7 digits", raw)
	}

	window := digits[len(digits)-SevenDigitLength:]

	return ExchangeCode(window[:ExchangeCodeLength]), nil
}

// ParseLineNumber extracts the line number from a free-text phone number:
// the rightmost 4 digits of any input normalizing to at least 4 digits.
// The window is deliberately lenient about grouping, so "31 6 85 31 67"
// yields "3167".
func ParseLineNumber(raw string) (LineNumber, error) {
	digits, err := digitsOf(raw)
	if err != nil {
		return "", err
	}
	if len(digits) < LineNumberLength {
		return "", serrors.With(serrors.ErrInvalidArgument,
			"phone number [%q] must contain at least 4 digits", raw)
	}

	return LineNumber(digits[len(digits)-LineNumberLength:]), nil
}

// Parse decomposes a free-text phone number into a PhoneNumber.
//
// Dispatch is by normalized digit count:
//   - 10 or more digits: area code, exchange code and line number are read
//     from the trailing 10-digit window (leading country-code digits are
//     ignored);
//   - exactly 7 digits: exchange code and line number, no area code;
//   - anything else fails with an invalid-argument error.
func Parse(raw string) (*PhoneNumber, error) {
	digits, err := digitsOf(raw)
	if err != nil {
		return nil, err
	}

	switch {
	case len(digits) >= TenDigitLength:
		window := digits[len(digits)-TenDigitLength:]

		return &PhoneNumber{
			AreaCode:     AreaCode(window[:AreaCodeLength]),
			ExchangeCode: ExchangeCode(window[AreaCodeLength : AreaCodeLength+ExchangeCodeLength]),
			LineNumber:   LineNumber(window[TenDigitLength-LineNumberLength:]),
		}, nil
	case len(digits) == SevenDigitLength:
		return &PhoneNumber{
			ExchangeCode: ExchangeCode(digits[:ExchangeCodeLength]),
			LineNumber:   LineNumber(digits[ExchangeCodeLength:]),
		}, nil
	default:
		return nil, serrors.With(serrors.ErrInvalidArgument,
			"phone number [%q] must be a 7-digit or 10-digit number", raw)
	}
}
