// Package contact ties a person's typed data together: a stable identity,
// a display name, and optional phone, email and postal address values.
package contact

import (
	"strings"

	"contacts/pkg/address"
	"contacts/pkg/email"
	"contacts/pkg/phone"
	"contacts/pkg/serrors"

	"github.com/google/uuid"
)

// ID identifies a contact for its whole lifetime.
type ID struct {
	uuid.UUID
}

// NewID generates a random ID.
func NewID() ID { return ID{UUID: uuid.New()} }

// ParseID parses an ID from its canonical string form.
func ParseID(s string) (ID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ID{}, serrors.Wrap(serrors.ErrInvalidArgument, err,
			"contact id [%q] is not a valid uuid", s)
	}

	return ID{UUID: id}, nil
}

// Contact is a person with their reachable endpoints. Phone, Email and
// Address are optional; a nil field means the contact has none on record.
type Contact struct {
	ID      ID                  `json:"id"`
	Name    string              `json:"name"`
	Phone   *phone.PhoneNumber  `json:"phone,omitempty"`
	Email   *email.EmailAddress `json:"email,omitempty"`
	Address *address.Address    `json:"address,omitempty"`
}

// New creates a Contact with a fresh ID, rejecting blank names.
func New(name string) (*Contact, error) {
	if strings.TrimSpace(name) == "" {
		return nil, serrors.With(serrors.ErrInvalidArgument, "contact name is required")
	}

	return &Contact{ID: NewID(), Name: name}, nil
}

// WithPhone sets the contact's phone number.
func (c *Contact) WithPhone(p *phone.PhoneNumber) *Contact {
	c.Phone = p

	return c
}

// WithEmail sets the contact's email address.
func (c *Contact) WithEmail(e *email.EmailAddress) *Contact {
	c.Email = e

	return c
}

// WithAddress sets the contact's postal address. Country-specialized
// variants contribute their embedded base address.
func (c *Contact) WithAddress(a address.Addressable) *Contact {
	if a == nil {
		c.Address = nil

		return c
	}
	c.Address = a.Base()

	return c
}

// Clone returns an independent deep copy of the contact.
func (c *Contact) Clone() *Contact {
	clone := *c
	if c.Phone != nil {
		clone.Phone = c.Phone.Clone()
	}
	if c.Email != nil {
		clone.Email = c.Email.Clone()
	}
	if c.Address != nil {
		clone.Address = c.Address.Clone()
	}

	return &clone
}

// String renders the contact's name followed by whichever endpoints are set.
func (c *Contact) String() string {
	parts := make([]string, 0, 4)
	parts = append(parts, c.Name)
	if c.Phone != nil {
		parts = append(parts, c.Phone.String())
	}
	if c.Email != nil {
		parts = append(parts, c.Email.String())
	}
	if c.Address != nil {
		parts = append(parts, c.Address.String())
	}

	return strings.Join(parts, " | ")
}
