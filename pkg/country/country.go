// Package country provides the country reference values shared by the phone
// and address packages, along with the notion of a "local" country — the
// country considered home for the running process, used to default address
// countries and to derive phone roaming status.
package country

import (
	"strings"
	"sync"

	"contacts/pkg/serrors"
)

// Country identifies a country by its ISO 3166-1 alpha-2 code.
// The zero value means "no country set".
type Country string

// Countries recognized by the library. The set is deliberately compact;
// address specialization only requires distinguishing the United States from
// everything else, and the rest exist so phone numbers and postal codes can
// carry an origin.
const (
	Unknown       Country = ""
	Australia     Country = "AU"
	Brazil        Country = "BR"
	Canada        Country = "CA"
	France        Country = "FR"
	Germany       Country = "DE"
	India         Country = "IN"
	Italy         Country = "IT"
	Japan         Country = "JP"
	Mexico        Country = "MX"
	Spain         Country = "ES"
	UnitedKingdom Country = "GB"
	UnitedStates  Country = "US"
)

// names maps each country to its short English name.
var names = map[Country]string{
	Australia:     "Australia",
	Brazil:        "Brazil",
	Canada:        "Canada",
	France:        "France",
	Germany:       "Germany",
	India:         "India",
	Italy:         "Italy",
	Japan:         "Japan",
	Mexico:        "Mexico",
	Spain:         "Spain",
	UnitedKingdom: "United Kingdom",
	UnitedStates:  "United States",
}

// IsSet reports whether the country carries a value.
func (c Country) IsSet() bool { return c != Unknown }

// Alpha2 returns the ISO 3166-1 alpha-2 code.
func (c Country) Alpha2() string { return string(c) }

// Name returns the short English name of the country, or "" when unset or
// unrecognized.
func (c Country) Name() string { return names[c] }

// String returns the alpha-2 code.
func (c Country) String() string { return string(c) }

// From resolves a country from its alpha-2 code or English name,
// case-insensitively. It fails with an invalid-argument error naming the
// unmatched input.
func From(s string) (Country, error) {
	needle := strings.TrimSpace(s)
	if needle == "" {
		return Unknown, serrors.With(serrors.ErrInvalidArgument, "country is required")
	}

	for c, name := range names {
		if strings.EqualFold(needle, string(c)) || strings.EqualFold(needle, name) {
			return c, nil
		}
	}

	return Unknown, serrors.With(serrors.ErrInvalidArgument, "country [%q] is not recognized", s)
}

// local is the country considered home for the running process.
var (
	localMu sync.RWMutex
	local   = UnitedStates //nolint: gochecknoglobals
)

// Local returns the configured local country. It defaults to the United
// States until SetLocal is called.
func Local() Country {
	localMu.RLock()
	defer localMu.RUnlock()

	return local
}

// SetLocal configures the local country for the running process. Unset values
// are ignored so a missing configuration never clears the default.
func SetLocal(c Country) {
	if !c.IsSet() {
		return
	}

	localMu.Lock()
	defer localMu.Unlock()
	local = c
}
