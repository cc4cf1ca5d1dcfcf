package phone_test

import (
	"contacts/pkg/phone"
	"contacts/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		area     phone.AreaCode
		exchange phone.ExchangeCode
		line     phone.LineNumber
		ok       bool
	}{
		{
			name:     "formatted 10-digit",
			in:       "(503) 555-1234",
			area:     "503",
			exchange: "555",
			line:     "1234",
			ok:       true,
		},
		{
			name:     "bare 10 digits",
			in:       "5035551234",
			area:     "503",
			exchange: "555",
			line:     "1234",
			ok:       true,
		},
		{
			name:     "dotted format",
			in:       "971.555.0142",
			area:     "971",
			exchange: "555",
			line:     "0142",
			ok:       true,
		},
		{
			name:     "leading country code uses trailing window",
			in:       "1 (503) 555-1234",
			area:     "503",
			exchange: "555",
			line:     "1234",
			ok:       true,
		},
		{
			name:     "7-digit local number has no area code",
			in:       "555-1234",
			area:     "",
			exchange: "555",
			line:     "1234",
			ok:       true,
		},
		{
			name: "letters mixed with digits are non-numeric",
			in:   "SOS-1234",
			ok:   false,
		},
		{
			name: "too few digits",
			in:   "555-123",
			ok:   false,
		},
		{
			name: "blank input",
			in:   "   ",
			ok:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := phone.Parse(tc.in)
			if !tc.ok {
				require.ErrorIs(t, err, serrors.ErrInvalidArgument)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.area, got.AreaCode)
			require.Equal(t, tc.exchange, got.ExchangeCode)
			require.Equal(t, tc.line, got.LineNumber)
		})
	}
}

func TestParseAreaCode(t *testing.T) {
	area, err := phone.ParseAreaCode("(503) 555-1234")
	require.NoError(t, err)
	require.Equal(t, phone.AreaCode("503"), area)

	// 7-digit numbers carry no area code
	_, err = phone.ParseAreaCode("555-1234")
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
	require.ErrorContains(t, err, "must be a 10-digit number")

	// 11 digits resolve against the trailing 10
	area, err = phone.ParseAreaCode("15035551234")
	require.NoError(t, err)
	require.Equal(t, phone.AreaCode("503"), area)
}

func TestParseExchangeCode(t *testing.T) {
	exchange, err := phone.ParseExchangeCode("555-1234")
	require.NoError(t, err)
	require.Equal(t, phone.ExchangeCode("555"), exchange)

	exchange, err = phone.ParseExchangeCode("(503) 555-1234")
	require.NoError(t, err)
	require.Equal(t, phone.ExchangeCode("555"), exchange)

	_, err = phone.ParseExchangeCode("1234")
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
	require.ErrorContains(t, err, "at least 7 digits")
}

func TestParseLineNumber(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want phone.LineNumber
		ok   bool
	}{
		{name: "formatted 10-digit", in: "(503) 555-1234", want: "1234", ok: true},
		{name: "exactly 4 digits", in: "9876", want: "9876", ok: true},
		{name: "5 digits takes rightmost group", in: "55512", want: "5512", ok: true},
		{name: "arbitrary digit groupings", in: "31 6 85 31 67", want: "3167", ok: true},
		{name: "3 digits too short", in: "123", ok: false},
		{name: "letters rejected", in: "HELP", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := phone.ParseLineNumber(tc.in)
			if !tc.ok {
				require.ErrorIs(t, err, serrors.ErrInvalidArgument)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
