package contact

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"
)

// MaxPhones and MaxEmails bound the per-contact detail lists.
const (
	MaxPhones = 3
	MaxEmails = 3
)

// Contact is a single address book entry.
type Contact struct {
	ID        string   `json:"id,omitempty" yaml:"id,omitempty"`
	FirstName string   `json:"first_name" yaml:"first_name"`
	LastName  string   `json:"last_name" yaml:"last_name"`
	Address   string   `json:"address,omitempty" yaml:"address,omitempty"`
	Phones    []string `json:"phones,omitempty" yaml:"phones,omitempty"`
	Emails    []string `json:"emails,omitempty" yaml:"emails,omitempty"`

	// Selected marks the contact for a bulk action. It is never serialised.
	Selected bool `json:"-" yaml:"-"`
}

// Equal reports whether two contacts carry the same data.
// ID and Selected are ignored.
func (c Contact) Equal(o Contact) bool {
	return c.FirstName == o.FirstName &&
		c.LastName == o.LastName &&
		c.Address == o.Address &&
		slices.Equal(c.Phones, o.Phones) &&
		slices.Equal(c.Emails, o.Emails)
}

// FullName joins first and last name.
func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Normalize trims whitespace and drops blank phones and emails.
func (c Contact) Normalize() Contact {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Address = strings.TrimSpace(c.Address)
	c.Phones = compact(c.Phones)
	c.Emails = compact(c.Emails)
	return c
}

// Validate checks the contact can be stored.
func (c Contact) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" && strings.TrimSpace(c.LastName) == "" {
		return fmt.Errorf("%w: first or last name required", ErrInvalidArgument)
	}
	if len(c.Phones) > MaxPhones {
		return fmt.Errorf("%w: at most %d phone numbers", ErrInvalidArgument, MaxPhones)
	}
	if len(c.Emails) > MaxEmails {
		return fmt.Errorf("%w: at most %d email addresses", ErrInvalidArgument, MaxEmails)
	}
	for _, p := range c.Phones {
		if !validPhone(p) {
			return fmt.Errorf("%w: bad phone number %q", ErrInvalidArgument, p)
		}
	}
	for _, e := range c.Emails {
		if _, err := mail.ParseAddress(e); err != nil {
			return fmt.Errorf("%w: bad email %q", ErrInvalidArgument, e)
		}
	}
	return nil
}

func (c Contact) clone() Contact {
	c.Phones = slices.Clone(c.Phones)
	c.Emails = slices.Clone(c.Emails)
	return c
}

func validPhone(p string) bool {
	digits := 0
	for i, r := range p {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '.' || r == '/' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 3
}

func compact(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
