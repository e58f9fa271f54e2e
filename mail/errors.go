package mail

import (
	"errors"
	"strconv"
)

// InvalidPartError tells why a user part, a domain part or a display name was
// rejected.
type InvalidPartError int

const (
	// ErrEmpty is returned for a zero-length part.
	ErrEmpty InvalidPartError = iota + 1
	// ErrForbiddenCharacter is returned for a part containing one of
	// ForbiddenCharacters or whitespace.
	ErrForbiddenCharacter
)

func (e InvalidPartError) reason() string {
	switch e {
	case ErrEmpty:
		return "part is empty"
	case ErrForbiddenCharacter:
		return "part contains a forbidden character"
	default:
		return "invalid part (" + strconv.Itoa(int(e)) + ")"
	}
}

func (e InvalidPartError) Error() string {
	return "mail: " + e.reason()
}

// AddressErrorKind tells which way an address was rejected.
type AddressErrorKind int

const (
	// MissingUserOrDomain is reported for text without an '@'.
	MissingUserOrDomain AddressErrorKind = iota + 1
	// InvalidUser is reported when the user part fails validation.
	InvalidUser
	// InvalidDomain is reported when the domain part fails validation.
	InvalidDomain
)

func (k AddressErrorKind) String() string {
	switch k {
	case MissingUserOrDomain:
		return "missing user or domain"
	case InvalidUser:
		return "invalid user"
	case InvalidDomain:
		return "invalid domain"
	default:
		return "AddressErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseAddressError is returned by NewAddress and ParseAddress. Part is set
// for InvalidUser and InvalidDomain.
type ParseAddressError struct {
	Kind AddressErrorKind
	Part InvalidPartError
}

// ErrMissingUserOrDomain matches, through errors.Is, any address error of kind
// MissingUserOrDomain.
var ErrMissingUserOrDomain = &ParseAddressError{Kind: MissingUserOrDomain}

func (e *ParseAddressError) reason() string {
	if e.Part == 0 {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Part.reason()
}

func (e *ParseAddressError) Error() string {
	return "mail: " + e.reason()
}

func (e *ParseAddressError) Unwrap() error {
	if e.Part == 0 {
		return nil
	}
	return e.Part
}

// Is matches target when it is a *ParseAddressError of the same kind. A
// target without Part matches any part.
func (e *ParseAddressError) Is(target error) bool {
	t, ok := target.(*ParseAddressError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Part == 0 || t.Part == e.Part)
}

// MailboxErrorKind tells which way a mailbox was rejected.
type MailboxErrorKind int

const (
	// MissingAngleBrackets is reported for bracketless text containing a space.
	MissingAngleBrackets MailboxErrorKind = iota + 1
	// MissingOpeningAngleBracket is reported for a '>' without a '<'.
	MissingOpeningAngleBracket
	// MissingClosingAngleBracket is reported for a '<' without a '>'.
	MissingClosingAngleBracket
	// WrongOrderAngleBrackets is reported when the first '>' precedes the first '<'.
	WrongOrderAngleBrackets
	// InvalidName is reported when a display name fails validation.
	InvalidName
	// InvalidAddress is reported when the address part fails to parse.
	InvalidAddress
)

func (k MailboxErrorKind) String() string {
	switch k {
	case MissingAngleBrackets:
		return "missing angle brackets"
	case MissingOpeningAngleBracket:
		return "missing opening angle bracket"
	case MissingClosingAngleBracket:
		return "missing closing angle bracket"
	case WrongOrderAngleBrackets:
		return "angle brackets in wrong order"
	case InvalidName:
		return "invalid name"
	case InvalidAddress:
		return "invalid address"
	default:
		return "MailboxErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseMailboxError is returned by NewNamedMailbox, ParseMailbox and
// ParseMailboxes. Part is set for InvalidName, Address for InvalidAddress.
type ParseMailboxError struct {
	Kind    MailboxErrorKind
	Part    InvalidPartError
	Address *ParseAddressError
}

// Sentinels matching, through errors.Is, any mailbox error of the bracket
// kind they carry.
var (
	ErrMissingAngleBrackets       = &ParseMailboxError{Kind: MissingAngleBrackets}
	ErrMissingOpeningAngleBracket = &ParseMailboxError{Kind: MissingOpeningAngleBracket}
	ErrMissingClosingAngleBracket = &ParseMailboxError{Kind: MissingClosingAngleBracket}
	ErrWrongOrderAngleBrackets    = &ParseMailboxError{Kind: WrongOrderAngleBrackets}
)

func (e *ParseMailboxError) Error() string {
	switch {
	case e.Address != nil:
		return "mail: " + e.Kind.String() + ": " + e.Address.reason()
	case e.Part != 0:
		return "mail: " + e.Kind.String() + ": " + e.Part.reason()
	default:
		return "mail: " + e.Kind.String()
	}
}

func (e *ParseMailboxError) Unwrap() error {
	switch {
	case e.Address != nil:
		return e.Address
	case e.Part != 0:
		return e.Part
	default:
		return nil
	}
}

// Is matches target when it is a *ParseMailboxError of the same kind. Part
// and Address of the target, when set, must match as well.
func (e *ParseMailboxError) Is(target error) bool {
	t, ok := target.(*ParseMailboxError)
	if !ok || t.Kind != e.Kind {
		return false
	}
	if t.Part != 0 && t.Part != e.Part {
		return false
	}
	if t.Address != nil && (e.Address == nil || !errors.Is(e.Address, t.Address)) {
		return false
	}
	return true
}
