// Package email models email addresses as a user (local part) paired with a
// domain, where the domain's top-level extension comes from a closed,
// case-normalized set. Equality ignores case in the domain per RFC hostname
// rules; the local part is compared verbatim.
package email

import (
	"strings"

	"contacts/pkg/serrors"
)

// DomainExtension is a recognized top-level domain, stored lowercase.
type DomainExtension string

// Recognized top-level domains.
const (
	Com DomainExtension = "com"
	Net DomainExtension = "net"
	Org DomainExtension = "org"
	IO  DomainExtension = "io"
	Edu DomainExtension = "edu"
	Gov DomainExtension = "gov"
)

// domainExtensions is the closed set used by DomainExtensionFrom.
var domainExtensions = []DomainExtension{Com, Net, Org, IO, Edu, Gov}

// String returns the lowercase extension without a leading dot.
func (e DomainExtension) String() string { return string(e) }

// DomainExtensionFrom resolves a top-level domain from its name,
// case-insensitively and tolerating a leading dot. It fails with an
// invalid-argument error naming the unmatched input.
func DomainExtensionFrom(s string) (DomainExtension, error) {
	needle := strings.TrimPrefix(strings.TrimSpace(s), ".")
	for _, ext := range domainExtensions {
		if strings.EqualFold(needle, string(ext)) {
			return ext, nil
		}
	}

	return "", serrors.With(serrors.ErrInvalidArgument,
		"domain extension [%q] is not recognized", s)
}

// User is the local part of an email address.
type User struct {
	Name string `json:"name"`
}

// NewUser creates a User, rejecting blank names.
func NewUser(name string) (User, error) {
	if strings.TrimSpace(name) == "" {
		return User{}, serrors.With(serrors.ErrInvalidArgument, "user name is required")
	}

	return User{Name: name}, nil
}

// String returns the user name.
func (u User) String() string { return u.Name }

// Domain is the part of an email address after the @: a name plus a
// recognized top-level extension.
type Domain struct {
	Name      string          `json:"name"`
	Extension DomainExtension `json:"extension"`
}

// NewDomain creates a Domain, rejecting blank names.
func NewDomain(name string, extension DomainExtension) (Domain, error) {
	if strings.TrimSpace(name) == "" {
		return Domain{}, serrors.With(serrors.ErrInvalidArgument, "domain name is required")
	}

	return Domain{Name: name, Extension: extension}, nil
}

// ParseDomain decomposes "example.com" into name and extension, splitting on
// the final dot so "mail.example.com" keeps "mail.example" as the name.
func ParseDomain(s string) (Domain, error) {
	trimmed := strings.TrimSpace(s)
	dot := strings.LastIndex(trimmed, ".")
	if dot <= 0 || dot == len(trimmed)-1 {
		return Domain{}, serrors.With(serrors.ErrInvalidArgument,
			"domain [%q] must be of the form name.extension", s)
	}

	extension, err := DomainExtensionFrom(trimmed[dot+1:])
	if err != nil {
		return Domain{}, err
	}

	return NewDomain(trimmed[:dot], extension)
}

// Equal compares domains ignoring case in the name; extensions are already
// normalized lowercase.
func (d Domain) Equal(other Domain) bool {
	return strings.EqualFold(d.Name, other.Name) && d.Extension == other.Extension
}

// String renders the domain lowercase, e.g. "example.com".
func (d Domain) String() string {
	return strings.ToLower(d.Name) + "." + string(d.Extension)
}

// EmailAddress pairs a user with a domain.
type EmailAddress struct {
	User   User   `json:"user"`
	Domain Domain `json:"domain"`
}

// NewEmailAddress assembles an address from its parts.
func NewEmailAddress(user User, domain Domain) *EmailAddress {
	return &EmailAddress{User: user, Domain: domain}
}

// Parse decomposes "user@example.com" into an EmailAddress. The input must
// contain exactly one @ separating a non-blank local part from a
// name.extension domain.
func Parse(s string) (*EmailAddress, error) {
	trimmed := strings.TrimSpace(s)
	parts := strings.Split(trimmed, "@")
	if len(parts) != 2 {
		return nil, serrors.With(serrors.ErrInvalidArgument,
			"email address [%q] must be of the form user@domain", s)
	}

	user, err := NewUser(parts[0])
	if err != nil {
		return nil, err
	}

	domain, err := ParseDomain(parts[1])
	if err != nil {
		return nil, err
	}

	return NewEmailAddress(user, domain), nil
}

// Equal reports whether both addresses name the same mailbox; the domain is
// compared case-insensitively.
func (e *EmailAddress) Equal(other *EmailAddress) bool {
	if e == nil || other == nil {
		return e == other
	}

	return e.User == other.User && e.Domain.Equal(other.Domain)
}

// Clone returns an independent copy of the address.
func (e *EmailAddress) Clone() *EmailAddress {
	if e == nil {
		return nil
	}
	clone := *e

	return &clone
}

// String renders the address as "user@example.com" with a lowercase domain.
func (e *EmailAddress) String() string {
	return e.User.Name + "@" + e.Domain.String()
}
