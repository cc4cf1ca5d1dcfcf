// Package phone models North-American-style phone numbers: three fixed-length
// digit segments (area code, exchange code, line number), an optional
// extension, and the PhoneNumber composite that assembles them with a
// country and a type.
//
// Free-text parsing lives in parse.go; it strips common formatting and
// extracts the segments by windowing over the trailing digits.
package phone

import (
	"strings"

	"contacts/pkg/country"
	"contacts/pkg/serrors"
)

// Segment lengths of a North-American phone number.
const (
	AreaCodeLength     = 3
	ExchangeCodeLength = 3
	LineNumberLength   = 4
	// TenDigitLength is the full local-format length: area + exchange + line.
	TenDigitLength = AreaCodeLength + ExchangeCodeLength + LineNumberLength
	// SevenDigitLength is the area-code-less format: exchange + line.
	SevenDigitLength = ExchangeCodeLength + LineNumberLength
)

// AreaCode is the leading 3-digit segment of a 10-digit phone number.
type AreaCode string

// NewAreaCode validates and creates an AreaCode from its exact digit string.
func NewAreaCode(s string) (AreaCode, error) {
	if err := requireDigits("area code", s, AreaCodeLength); err != nil {
		return "", err
	}

	return AreaCode(s), nil
}

// ExchangeCode is the middle 3-digit segment (central office code).
type ExchangeCode string

// NewExchangeCode validates and creates an ExchangeCode from its exact digit
// string.
func NewExchangeCode(s string) (ExchangeCode, error) {
	if err := requireDigits("exchange code", s, ExchangeCodeLength); err != nil {
		return "", err
	}

	return ExchangeCode(s), nil
}

// LineNumber is the trailing 4-digit segment.
type LineNumber string

// NewLineNumber validates and creates a LineNumber from its exact digit
// string.
func NewLineNumber(s string) (LineNumber, error) {
	if err := requireDigits("line number", s, LineNumberLength); err != nil {
		return "", err
	}

	return LineNumber(s), nil
}

// Extension is a digits-only extension of any length.
type Extension string

// NewExtension validates and creates an Extension. Unlike the fixed segments
// it accepts any length, but must be non-blank and digits-only.
func NewExtension(s string) (Extension, error) {
	if strings.TrimSpace(s) == "" {
		return "", serrors.With(serrors.ErrInvalidArgument, "extension is required")
	}
	if !isDigits(s) {
		return "", serrors.With(serrors.ErrInvalidArgument,
			"extension [%q] must contain only digits", s)
	}

	return Extension(s), nil
}

// requireDigits validates a fixed-length digit segment, reporting the
// offending value and expected length on failure.
func requireDigits(what, s string, length int) error {
	if strings.TrimSpace(s) == "" {
		return serrors.With(serrors.ErrInvalidArgument, "%s is required", what)
	}
	if len(s) != length || !isDigits(s) {
		return serrors.With(serrors.ErrInvalidArgument,
			"%s [%q] must be a %d-digit number", what, s, length)
	}

	return nil
}

// isDigits reports whether s is non-empty and all ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// Type categorizes a phone number by the service behind it.
type Type string

// Phone number types.
const (
	TypeUnknown   Type = "UNKNOWN"
	TypeCell      Type = "CELL"
	TypeLandline  Type = "LANDLINE"
	TypeSatellite Type = "SATELLITE"
	TypeVOIP      Type = "VOIP"
)

// phoneTypes is the closed set used by TypeFrom.
var phoneTypes = []Type{TypeUnknown, TypeCell, TypeLandline, TypeSatellite, TypeVOIP}

// TypeFrom resolves a phone type from its name, case-insensitively. It fails
// with an invalid-argument error naming the unmatched input.
func TypeFrom(s string) (Type, error) {
	for _, t := range phoneTypes {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}

	return "", serrors.With(serrors.ErrInvalidArgument, "phone type [%q] is not recognized", s)
}

// PhoneNumber aggregates the three digit segments with an optional country,
// extension and type, plus a mutable text-messaging flag.
//
// AreaCode, ExchangeCode and LineNumber are the identity of the number and
// are set at construction; the optional attributes may be adjusted afterwards
// through the fluent setters.
type PhoneNumber struct {
	AreaCode     AreaCode        `json:"areaCode"`
	ExchangeCode ExchangeCode    `json:"exchangeCode"`
	LineNumber   LineNumber      `json:"lineNumber"`
	Country      country.Country `json:"country,omitempty"`
	Extension    Extension       `json:"extension,omitempty"`
	Type         Type            `json:"type,omitempty"`
	TextEnabled  bool            `json:"textEnabled"`
}

// New assembles a PhoneNumber from already-validated segments.
func New(areaCode AreaCode, exchangeCode ExchangeCode, lineNumber LineNumber) *PhoneNumber {
	return &PhoneNumber{
		AreaCode:     areaCode,
		ExchangeCode: exchangeCode,
		LineNumber:   lineNumber,
	}
}

// Of assembles a PhoneNumber from raw segment strings, validating each.
func Of(areaCode, exchangeCode, lineNumber string) (*PhoneNumber, error) {
	area, err := NewAreaCode(areaCode)
	if err != nil {
		return nil, err
	}

	exchange, err := NewExchangeCode(exchangeCode)
	if err != nil {
		return nil, err
	}

	line, err := NewLineNumber(lineNumber)
	if err != nil {
		return nil, err
	}

	return New(area, exchange, line), nil
}

// From creates an independent copy of an existing PhoneNumber, including its
// optional attributes and flags.
func From(other *PhoneNumber) *PhoneNumber {
	if other == nil {
		return nil
	}
	clone := *other

	return &clone
}

// Clone returns an independent copy of the number.
func (p *PhoneNumber) Clone() *PhoneNumber { return From(p) }

// WithCountry sets the number's country and returns the receiver.
func (p *PhoneNumber) WithCountry(c country.Country) *PhoneNumber {
	p.Country = c

	return p
}

// WithType sets the number's type and returns the receiver.
func (p *PhoneNumber) WithType(t Type) *PhoneNumber {
	p.Type = t

	return p
}

// SetTextEnabled toggles text messaging and returns the receiver.
func (p *PhoneNumber) SetTextEnabled(enabled bool) *PhoneNumber {
	p.TextEnabled = enabled

	return p
}

// SetExtension sets the extension. Extensions are a desk-phone routing
// concept, so cell and satellite numbers refuse them with an
// unsupported-operation error naming the type.
func (p *PhoneNumber) SetExtension(extension Extension) error {
	if p.Type == TypeCell || p.Type == TypeSatellite {
		return serrors.With(serrors.ErrUnsupported,
			"%s phone numbers do not support extensions", strings.ToLower(string(p.Type)))
	}

	p.Extension = extension

	return nil
}

// Roaming reports whether the number is roaming: its country is set and
// differs from the configured local country.
func (p *PhoneNumber) Roaming() bool {
	return p.Country.IsSet() && p.Country != country.Local()
}

// Equal reports whether both numbers share the same segments and extension.
// The optional country, type and text flag do not participate.
func (p *PhoneNumber) Equal(other *PhoneNumber) bool {
	if p == nil || other == nil {
		return p == other
	}

	return p.AreaCode == other.AreaCode &&
		p.ExchangeCode == other.ExchangeCode &&
		p.LineNumber == other.LineNumber &&
		p.Extension == other.Extension
}

// Compare orders numbers lexicographically by area code, exchange code, line
// number, then extension.
func (p *PhoneNumber) Compare(other *PhoneNumber) int {
	if c := strings.Compare(string(p.AreaCode), string(other.AreaCode)); c != 0 {
		return c
	}
	if c := strings.Compare(string(p.ExchangeCode), string(other.ExchangeCode)); c != 0 {
		return c
	}
	if c := strings.Compare(string(p.LineNumber), string(other.LineNumber)); c != 0 {
		return c
	}

	return strings.Compare(string(p.Extension), string(other.Extension))
}

// String renders the number as "(503) 555-1234", appending " x100" when an
// extension is present. A number without an area code renders as "555-1234".
func (p *PhoneNumber) String() string {
	var b strings.Builder

	if p.AreaCode != "" {
		b.WriteString("(")
		b.WriteString(string(p.AreaCode))
		b.WriteString(") ")
	}
	b.WriteString(string(p.ExchangeCode))
	b.WriteString("-")
	b.WriteString(string(p.LineNumber))
	if p.Extension != "" {
		b.WriteString(" x")
		b.WriteString(string(p.Extension))
	}

	return b.String()
}
