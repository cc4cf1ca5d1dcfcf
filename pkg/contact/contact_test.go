package contact_test

import (
	"encoding/json"
	"testing"

	"contacts/pkg/address"
	"contacts/pkg/contact"
	"contacts/pkg/country"
	"contacts/pkg/email"
	"contacts/pkg/phone"
	"contacts/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c, err := contact.New("Ada Lovelace")
	require.NoError(t, err)
	require.Equal(t, "Ada Lovelace", c.Name)
	require.NotEmpty(t, c.ID.String())
	require.Nil(t, c.Phone)
	require.Nil(t, c.Email)
	require.Nil(t, c.Address)

	other, err := contact.New("Ada Lovelace")
	require.NoError(t, err)
	require.NotEqual(t, c.ID, other.ID, "each contact gets its own identity")
}

func TestNewRejectsBlankName(t *testing.T) {
	_, err := contact.New("   ")
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
	require.EqualError(t, err, "contact name is required")
}

func TestParseID(t *testing.T) {
	id := contact.NewID()
	parsed, err := contact.ParseID(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	_, err = contact.ParseID("not-a-uuid")
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
	require.ErrorContains(t, err, `contact id ["not-a-uuid"] is not a valid uuid`)
}

func fullContact(t *testing.T) *contact.Contact {
	t.Helper()

	number, err := phone.Parse("(503) 555-1234")
	require.NoError(t, err)

	addr, err := email.Parse("ada@example.com")
	require.NoError(t, err)

	city, err := address.NewCity("Portland")
	require.NoError(t, err)
	street, err := address.ParseStreet("100 Oregon St")
	require.NoError(t, err)
	postalCode, err := address.NewPostalCode("97205")
	require.NoError(t, err)
	built, err := address.NewBuilder().
		WithStreet(street).
		WithCity(city).
		WithPostalCode(postalCode).
		WithCountry(country.Canada).
		Build()
	require.NoError(t, err)

	c, err := contact.New("Ada Lovelace")
	require.NoError(t, err)

	return c.WithPhone(number).WithEmail(addr).WithAddress(built)
}

func TestJSONRoundTrip(t *testing.T) {
	c := fullContact(t)

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded contact.Contact
	require.NoError(t, json.Unmarshal(raw, &decoded))

	require.Equal(t, c.ID, decoded.ID)
	require.Equal(t, c.Name, decoded.Name)
	require.True(t, c.Phone.Equal(decoded.Phone))
	require.True(t, c.Email.Equal(decoded.Email))
	require.True(t, c.Address.Equal(decoded.Address))
}

func TestCloneIsDeep(t *testing.T) {
	c := fullContact(t)
	clone := c.Clone()

	require.Equal(t, c.ID, clone.ID)
	require.NotSame(t, c.Phone, clone.Phone)
	require.NotSame(t, c.Email, clone.Email)
	require.NotSame(t, c.Address, clone.Address)

	clone.Phone.SetTextEnabled(true)
	require.False(t, c.Phone.TextEnabled)
}

func TestString(t *testing.T) {
	c := fullContact(t)
	require.Equal(t,
		"Ada Lovelace | (503) 555-1234 | ada@example.com | 100 Oregon ST, Portland, 97205, CA",
		c.String())

	plain, err := contact.New("Grace Hopper")
	require.NoError(t, err)
	require.Equal(t, "Grace Hopper", plain.String())
}
