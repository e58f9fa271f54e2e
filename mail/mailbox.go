package mail

import (
	"strings"
)

// Mailbox is an Address with an optional display name, as in
// "Barry Gibbs <bg@example.com>".
type Mailbox struct {
	name    string
	hasName bool
	address Address
}

// NewMailbox returns a mailbox without a display name.
func NewMailbox(address Address) Mailbox {
	return Mailbox{address: address}
}

// NewNamedMailbox validates name and returns a mailbox carrying it. The error
// is a *ParseMailboxError of kind InvalidName.
func NewNamedMailbox(name string, address Address) (Mailbox, error) {
	if e := checkPart(name); e != 0 {
		return Mailbox{}, &ParseMailboxError{Kind: InvalidName, Part: e}
	}
	return Mailbox{name: name, hasName: true, address: address}, nil
}

// ParseMailbox parses "Name <user@domain>", "<user@domain>" or a bare
// "user@domain". Anything following the closing bracket is ignored.
//
// The display name in front of the opening bracket is trimmed but otherwise
// taken as is, so names containing spaces are accepted here while
// NewNamedMailbox would reject them.
func ParseMailbox(s string) (Mailbox, error) {
	m, err := parseMailbox(s)
	if err != nil {
		return Mailbox{}, err
	}
	return m, nil
}

func parseMailbox(s string) (Mailbox, *ParseMailboxError) {
	left := strings.IndexByte(s, '<')
	right := strings.IndexByte(s, '>')
	switch {
	case left < 0 && right >= 0:
		return Mailbox{}, &ParseMailboxError{Kind: MissingOpeningAngleBracket}
	case left >= 0 && right < 0:
		return Mailbox{}, &ParseMailboxError{Kind: MissingClosingAngleBracket}
	case left >= 0:
		if left > right {
			return Mailbox{}, &ParseMailboxError{Kind: WrongOrderAngleBrackets}
		}
		name := strings.TrimSpace(s[:left])
		a, err := parseAddress(s[left+1 : right])
		if err != nil {
			return Mailbox{}, &ParseMailboxError{Kind: InvalidAddress, Address: err}
		}
		return Mailbox{name: name, hasName: name != "", address: a}, nil
	default:
		if strings.Contains(s, " ") {
			return Mailbox{}, &ParseMailboxError{Kind: MissingAngleBrackets}
		}
		a, err := parseAddress(s)
		if err != nil {
			return Mailbox{}, &ParseMailboxError{Kind: InvalidAddress, Address: err}
		}
		return NewMailbox(a), nil
	}
}

// Name returns the display name and whether there is one.
func (m Mailbox) Name() (string, bool) {
	return m.name, m.hasName
}

func (m Mailbox) Address() Address {
	return m.address
}

// Mailboxes returns a list consisting of m alone.
func (m Mailbox) Mailboxes() Mailboxes {
	return FromMailbox(m)
}

// String renders the mailbox as "name <user@domain>", or "<user@domain>" when
// there is no display name.
func (m Mailbox) String() string {
	var sb strings.Builder
	m.appendTo(&sb)
	return sb.String()
}

func (m Mailbox) appendTo(sb *strings.Builder) {
	if m.hasName {
		sb.WriteString(m.name)
		sb.WriteByte(' ')
	}
	sb.WriteByte('<')
	sb.WriteString(m.address.user)
	sb.WriteByte('@')
	sb.WriteString(m.address.domain)
	sb.WriteByte('>')
}

func (m Mailbox) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mailbox) UnmarshalText(b []byte) error {
	v, err := ParseMailbox(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
