package mail

import (
	"strings"
)

// Address is a validated user@domain pair. The zero value is not a valid
// address; obtain one through NewAddress or ParseAddress.
type Address struct {
	user   string
	domain string
}

// NewAddress validates user and then domain and returns the address made of
// them. The error is a *ParseAddressError of kind InvalidUser or
// InvalidDomain.
func NewAddress(user, domain string) (Address, error) {
	a, err := newAddress(user, domain)
	if err != nil {
		return Address{}, err
	}
	return a, nil
}

func newAddress(user, domain string) (Address, *ParseAddressError) {
	if e := checkPart(user); e != 0 {
		return Address{}, &ParseAddressError{Kind: InvalidUser, Part: e}
	}
	if e := checkPart(domain); e != 0 {
		return Address{}, &ParseAddressError{Kind: InvalidDomain, Part: e}
	}
	return NewAddressUnchecked(user, domain), nil
}

// NewAddressUnchecked builds an address without validating its parts. It is
// meant for parts already known to be valid.
func NewAddressUnchecked(user, domain string) Address {
	return Address{user: user, domain: domain}
}

// ParseAddress parses "user@domain". The domain starts after the last '@'.
func ParseAddress(s string) (Address, error) {
	a, err := parseAddress(s)
	if err != nil {
		return Address{}, err
	}
	return a, nil
}

func parseAddress(s string) (Address, *ParseAddressError) {
	i := strings.LastIndexByte(s, '@')
	if i < 0 {
		return Address{}, &ParseAddressError{Kind: MissingUserOrDomain}
	}
	return newAddress(s[:i], s[i+1:])
}

func (a Address) User() string {
	return a.user
}

func (a Address) Domain() string {
	return a.domain
}

// String renders the address as user@domain.
func (a Address) String() string {
	return a.user + "@" + a.domain
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(b []byte) error {
	v, err := ParseAddress(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
