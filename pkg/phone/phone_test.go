package phone_test

import (
	"contacts/pkg/country"
	"contacts/pkg/phone"
	"contacts/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegmentConstructors(t *testing.T) {
	area, err := phone.NewAreaCode("503")
	require.NoError(t, err)
	require.Equal(t, phone.AreaCode("503"), area)

	_, err = phone.NewAreaCode("50")
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
	require.ErrorContains(t, err, `area code ["50"] must be a 3-digit number`)

	_, err = phone.NewAreaCode("")
	require.ErrorContains(t, err, "area code is required")

	_, err = phone.NewExchangeCode("55a")
	require.ErrorContains(t, err, `exchange code ["55a"] must be a 3-digit number`)

	_, err = phone.NewLineNumber("12345")
	require.ErrorContains(t, err, `line number ["12345"] must be a 4-digit number`)

	ext, err := phone.NewExtension("100")
	require.NoError(t, err)
	require.Equal(t, phone.Extension("100"), ext)

	_, err = phone.NewExtension("x100")
	require.ErrorContains(t, err, "must contain only digits")

	_, err = phone.NewExtension("  ")
	require.ErrorContains(t, err, "extension is required")
}

func TestOfValidatesSegments(t *testing.T) {
	p, err := phone.Of("503", "555", "1234")
	require.NoError(t, err)
	require.Equal(t, "(503) 555-1234", p.String())

	_, err = phone.Of("503", "555", "12")
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
}

func TestFromCopiesEverything(t *testing.T) {
	original, err := phone.Of("503", "555", "1234")
	require.NoError(t, err)
	original.WithCountry(country.Canada).WithType(phone.TypeLandline).SetTextEnabled(true)
	require.NoError(t, original.SetExtension("42"))

	copied := phone.From(original)
	require.NotSame(t, original, copied)
	require.True(t, original.Equal(copied))
	require.Equal(t, original.Country, copied.Country)
	require.Equal(t, original.Type, copied.Type)
	require.Equal(t, original.TextEnabled, copied.TextEnabled)

	// mutating the copy leaves the original untouched
	copied.WithCountry(country.Mexico)
	require.Equal(t, country.Canada, original.Country)
}

func TestRoaming(t *testing.T) {
	p, err := phone.Of("503", "555", "1234")
	require.NoError(t, err)

	require.False(t, p.Roaming(), "number without a country never roams")

	p.WithCountry(country.Local())
	require.False(t, p.Roaming(), "local-country number does not roam")

	p.WithCountry(country.Germany)
	require.True(t, p.Roaming())
}

func TestSetExtensionCapability(t *testing.T) {
	p, err := phone.Of("503", "555", "1234")
	require.NoError(t, err)

	// untyped numbers accept extensions
	require.NoError(t, p.SetExtension("100"))
	require.Equal(t, phone.Extension("100"), p.Extension)

	landline := phone.From(p).WithType(phone.TypeLandline)
	require.NoError(t, landline.SetExtension("200"))

	cell := phone.From(p).WithType(phone.TypeCell)
	err = cell.SetExtension("300")
	require.ErrorIs(t, err, serrors.ErrUnsupported)
	require.ErrorContains(t, err, "cell phone numbers do not support extensions")

	satellite := phone.From(p).WithType(phone.TypeSatellite)
	require.ErrorIs(t, satellite.SetExtension("300"), serrors.ErrUnsupported)
}

func TestStringRendering(t *testing.T) {
	p, err := phone.Of("503", "555", "1234")
	require.NoError(t, err)
	require.Equal(t, "(503) 555-1234", p.String())

	require.NoError(t, p.SetExtension("100"))
	require.Equal(t, "(503) 555-1234 x100", p.String())

	local, err := phone.Parse("555-1234")
	require.NoError(t, err)
	require.Equal(t, "555-1234", local.String())
}

func TestEqualAndCompare(t *testing.T) {
	a, err := phone.Of("503", "555", "1234")
	require.NoError(t, err)
	b, err := phone.Of("503", "555", "1234")
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.Zero(t, a.Compare(b))

	// country and type are not part of a number's identity
	b.WithCountry(country.Japan).WithType(phone.TypeVOIP)
	require.True(t, a.Equal(b))

	c, err := phone.Of("971", "555", "1234")
	require.NoError(t, err)
	require.False(t, a.Equal(c))
	require.Equal(t, -1, a.Compare(c))
	require.Equal(t, 1, c.Compare(a))

	require.NoError(t, b.SetExtension("9"))
	require.False(t, a.Equal(b), "extension participates in identity")
}

func TestClone(t *testing.T) {
	original, err := phone.Of("503", "555", "1234")
	require.NoError(t, err)

	clone := original.Clone()
	require.True(t, original.Equal(clone))
	require.NotSame(t, original, clone)
}

func TestTypeFrom(t *testing.T) {
	got, err := phone.TypeFrom("landline")
	require.NoError(t, err)
	require.Equal(t, phone.TypeLandline, got)

	got, err = phone.TypeFrom("VoIP")
	require.NoError(t, err)
	require.Equal(t, phone.TypeVOIP, got)

	_, err = phone.TypeFrom("carrier-pigeon")
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
}
