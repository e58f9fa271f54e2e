package mail

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	a, err := NewAddress("user", "domain.com")
	require.NoError(t, err)
	assert.Equal(t, "user", a.User())
	assert.Equal(t, "domain.com", a.Domain())
}

func TestNewAddressErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		user     string
		domain   string
		expected *ParseAddressError
	}{
		{"", "domain.com", &ParseAddressError{Kind: InvalidUser, Part: ErrEmpty}},
		{"user", "", &ParseAddressError{Kind: InvalidDomain, Part: ErrEmpty}},
		{"user", "@domain.com", &ParseAddressError{Kind: InvalidDomain, Part: ErrForbiddenCharacter}},
		// the user is checked before the domain
		{"", "@domain.com", &ParseAddressError{Kind: InvalidUser, Part: ErrEmpty}},
		{"(name)", "", &ParseAddressError{Kind: InvalidUser, Part: ErrForbiddenCharacter}},
		{"us er", "domain.com", &ParseAddressError{Kind: InvalidUser, Part: ErrForbiddenCharacter}},
	}

	for i, c := range cases {
		t.Run(fmt.Sprintf("#%d: %q %q", i, c.user, c.domain), func(t *testing.T) {
			t.Parallel()
			a, err := NewAddress(c.user, c.domain)
			assert.Equal(t, c.expected, err)
			assert.Equal(t, Address{}, a)
		})
	}
}

func TestNewAddressUnchecked(t *testing.T) {
	a := NewAddressUnchecked("us er", "")
	assert.Equal(t, "us er@", a.String())
}

func TestParseAddress(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text     string
		expected Address
		err      error
	}{
		{"user@domain.com", NewAddressUnchecked("user", "domain.com"), nil},
		{"first.last+tag@sub.domain.com", NewAddressUnchecked("first.last+tag", "sub.domain.com"), nil},
		{"userdomain.com", Address{}, &ParseAddressError{Kind: MissingUserOrDomain}},
		{"", Address{}, &ParseAddressError{Kind: MissingUserOrDomain}},
		{"user name", Address{}, &ParseAddressError{Kind: MissingUserOrDomain}},
		{"@", Address{}, &ParseAddressError{Kind: InvalidUser, Part: ErrEmpty}},
		{"user@", Address{}, &ParseAddressError{Kind: InvalidDomain, Part: ErrEmpty}},
		{"@domain.com", Address{}, &ParseAddressError{Kind: InvalidUser, Part: ErrEmpty}},
		// the last '@' separates the domain
		{"a@b@domain.com", Address{}, &ParseAddressError{Kind: InvalidUser, Part: ErrForbiddenCharacter}},
		{"user@dom ain.com", Address{}, &ParseAddressError{Kind: InvalidDomain, Part: ErrForbiddenCharacter}},
	}

	for i, c := range cases {
		t.Run(fmt.Sprintf("#%d: %q", i, c.text), func(t *testing.T) {
			t.Parallel()
			a, err := ParseAddress(c.text)
			if c.err == nil {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, c.err, err)
			}
			assert.Equal(t, c.expected, a)
		})
	}
}

func TestParseAddressWithoutAtSign(t *testing.T) {
	for _, text := range []string{"x", "userdomain.com", "<>", "  ", "a.b.c"} {
		_, err := ParseAddress(text)
		assert.ErrorIs(t, err, ErrMissingUserOrDomain, text)
	}
}

func TestAddressRoundtrip(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"user", "domain.com"},
		{"u", "d"},
		{"first.last", "example.co.uk"},
		{"x+y=z", "[127.0.0.1]"},
		{"ユーザー", "例え.jp"},
	}

	for _, p := range pairs {
		a, err := NewAddress(p[0], p[1])
		if !assert.NoError(t, err) {
			t.FailNow()
		}
		assert.Equal(t, p[0]+"@"+p[1], a.String())
		b, err := ParseAddress(a.String())
		if assert.NoError(t, err) {
			assert.Equal(t, a, b)
		}
	}
}

func TestAddressErrorMatching(t *testing.T) {
	_, err := ParseAddress("user@")
	assert.True(t, errors.Is(err, &ParseAddressError{Kind: InvalidDomain}))
	assert.True(t, errors.Is(err, ErrEmpty))
	assert.False(t, errors.Is(err, ErrForbiddenCharacter))
	assert.False(t, errors.Is(err, ErrMissingUserOrDomain))
	assert.EqualError(t, err, "mail: invalid domain: part is empty")

	var pae *ParseAddressError
	if assert.True(t, errors.As(err, &pae)) {
		assert.Equal(t, InvalidDomain, pae.Kind)
	}
}

func TestAddressText(t *testing.T) {
	var v struct {
		Address Address `json:"address"`
	}
	err := json.Unmarshal([]byte(`{"address": "user@domain.com"}`), &v)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	assert.Equal(t, NewAddressUnchecked("user", "domain.com"), v.Address)
	b, err := json.Marshal(v)
	if assert.NoError(t, err) {
		assert.JSONEq(t, `{"address": "user@domain.com"}`, string(b))
	}

	err = json.Unmarshal([]byte(`{"address": "userdomain.com"}`), &v)
	assert.ErrorIs(t, err, ErrMissingUserOrDomain)
}
