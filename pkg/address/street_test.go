package address_test

import (
	"contacts/pkg/address"
	"contacts/pkg/serrors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStreet(t *testing.T) {
	cases := []struct {
		name       string
		in         string
		number     int
		streetName string
		streetType address.StreetType
		direction  address.Direction
		ok         bool
	}{
		{
			name:       "direction and type",
			in:         "767 SW Airline Rd",
			number:     767,
			streetName: "Airline",
			streetType: address.StreetTypeRoad,
			direction:  address.Southwest,
			ok:         true,
		},
		{
			name:       "type only",
			in:         "100 Oregon St",
			number:     100,
			streetName: "Oregon",
			streetType: address.StreetTypeStreet,
			ok:         true,
		},
		{
			name:       "number and name only",
			in:         "42 Broadway",
			number:     42,
			streetName: "Broadway",
			ok:         true,
		},
		{
			name:       "full type name matches case-insensitively",
			in:         "1600 Pennsylvania avenue",
			number:     1600,
			streetName: "Pennsylvania",
			streetType: address.StreetTypeAvenue,
			ok:         true,
		},
		{
			name:       "multi-word name",
			in:         "221 Baker Hill Dr",
			number:     221,
			streetName: "Baker Hill",
			streetType: address.StreetTypeDrive,
			ok:         true,
		},
		{
			name:       "collapses whitespace runs",
			in:         "  767   SW   Airline   Rd  ",
			number:     767,
			streetName: "Airline",
			streetType: address.StreetTypeRoad,
			direction:  address.Southwest,
			ok:         true,
		},
		{
			name:       "direction token kept as name when nothing follows",
			in:         "100 N",
			number:     100,
			streetName: "N",
			ok:         true,
		},
		{
			name:       "type token kept as name when it is the only candidate",
			in:         "100 Street",
			number:     100,
			streetName: "Street",
			ok:         true,
		},
		{name: "missing number", in: "Main Street", ok: false},
		{name: "single token", in: "100", ok: false},
		{name: "blank", in: "   ", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := address.ParseStreet(tc.in)
			if !tc.ok {
				require.ErrorIs(t, err, serrors.ErrInvalidArgument)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.number, got.Number)
			require.Equal(t, tc.streetName, got.Name)
			require.Equal(t, tc.streetType, got.Type)
			require.Equal(t, tc.direction, got.Direction)
		})
	}
}

func TestParseStreetErrorMessages(t *testing.T) {
	_, err := address.ParseStreet("Main Street")
	require.ErrorContains(t, err, "must begin with a street number")

	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr, "the numeric-parse failure is kept as the cause")

	_, err = address.ParseStreet("100")
	require.ErrorContains(t, err, "must minimally consist of a number and name")
}

func TestStreetString(t *testing.T) {
	street, err := address.ParseStreet("767 SW Airline Rd")
	require.NoError(t, err)
	require.Equal(t, "767 SW Airline RD", street.String())

	street, err = address.ParseStreet("100 Oregon St")
	require.NoError(t, err)
	require.Equal(t, "100 Oregon ST", street.String())

	street, err = address.NewStreet(42, "Broadway")
	require.NoError(t, err)
	require.Equal(t, "42 Broadway", street.String())
}

func TestStreetCompare(t *testing.T) {
	a, err := address.NewStreet(100, "Alder")
	require.NoError(t, err)
	b, err := address.NewStreet(200, "Alder")
	require.NoError(t, err)
	c, err := address.NewStreet(1, "Burnside")
	require.NoError(t, err)

	require.Equal(t, -1, a.Compare(b), "same name orders by number")
	require.Equal(t, -1, b.Compare(c), "name orders before number")
	require.Zero(t, a.Compare(a))
}

func TestStreetTypeFrom(t *testing.T) {
	got, err := address.StreetTypeFrom("rd")
	require.NoError(t, err)
	require.Equal(t, address.StreetTypeRoad, got)

	got, err = address.StreetTypeFrom("Boulevard")
	require.NoError(t, err)
	require.Equal(t, address.StreetTypeBoulevard, got)

	_, err = address.StreetTypeFrom("gravelpath")
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
	require.ErrorContains(t, err, `street type ["gravelpath"] is not recognized`)
}

func TestDirectionFrom(t *testing.T) {
	got, err := address.DirectionFrom("sw")
	require.NoError(t, err)
	require.Equal(t, address.Southwest, got)

	got, err = address.DirectionFrom("North")
	require.NoError(t, err)
	require.Equal(t, address.North, got)

	_, err = address.DirectionFrom("up")
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
}
