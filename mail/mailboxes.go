package mail

import (
	"fmt"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Mailboxes is an ordered list of mailboxes, rendered as a comma-separated
// list. A parsed list always holds at least one mailbox; the zero value is an
// empty list, which Message.WriteTo refuses to render.
type Mailboxes struct {
	list []Mailbox
}

// FromMailbox returns a list consisting of m alone.
func FromMailbox(m Mailbox) Mailboxes {
	return Mailboxes{list: []Mailbox{m}}
}

func NewMailboxes(first Mailbox, rest ...Mailbox) Mailboxes {
	list := make([]Mailbox, 0, len(rest)+1)
	list = append(list, first)
	list = append(list, rest...)
	return Mailboxes{list: list}
}

// ParseMailboxes splits s on commas and parses each trimmed segment with
// ParseMailbox. It stops at the first segment that fails and returns its
// error.
func ParseMailboxes(s string) (Mailboxes, error) {
	segments := strings.Split(s, ",")
	list := make([]Mailbox, len(segments))
	for i, segment := range segments {
		m, err := parseMailbox(strings.TrimSpace(segment))
		if err != nil {
			return Mailboxes{}, err
		}
		list[i] = m
	}
	return Mailboxes{list: list}, nil
}

func (ms Mailboxes) Len() int {
	return len(ms.list)
}

func (ms Mailboxes) At(i int) Mailbox {
	return ms.list[i]
}

// Slice returns a copy of the mailboxes.
func (ms Mailboxes) Slice() []Mailbox {
	return append([]Mailbox(nil), ms.list...)
}

// Append returns a new list with m added after the existing mailboxes.
func (ms Mailboxes) Append(m ...Mailbox) Mailboxes {
	list := make([]Mailbox, 0, len(ms.list)+len(m))
	list = append(list, ms.list...)
	list = append(list, m...)
	return Mailboxes{list: list}
}

// String joins the rendered mailboxes with ", ".
func (ms Mailboxes) String() string {
	var sb strings.Builder
	for i, m := range ms.list {
		if i > 0 {
			sb.WriteString(", ")
		}
		m.appendTo(&sb)
	}
	return sb.String()
}

func (ms Mailboxes) MarshalText() ([]byte, error) {
	return []byte(ms.String()), nil
}

func (ms *Mailboxes) UnmarshalText(b []byte) error {
	v, err := ParseMailboxes(string(b))
	if err != nil {
		return err
	}
	*ms = v
	return nil
}

func (ms Mailboxes) MarshalYAML() (interface{}, error) {
	return ms.String(), nil
}

// UnmarshalYAML accepts either a scalar holding a comma-separated list or a
// sequence of scalars, one mailbox each.
func (ms *Mailboxes) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var s string
		if err := n.Decode(&s); err != nil {
			return err
		}
		v, err := ParseMailboxes(s)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		*ms = v
	case yaml.SequenceNode:
		if len(n.Content) == 0 {
			return fmt.Errorf("line %d: empty mailbox list", n.Line)
		}
		list := make([]Mailbox, len(n.Content))
		for i, c := range n.Content {
			var s string
			if err := c.Decode(&s); err != nil {
				return err
			}
			m, err := ParseMailbox(strings.TrimSpace(s))
			if err != nil {
				return fmt.Errorf("line %d: %w", c.Line, err)
			}
			list[i] = m
		}
		*ms = Mailboxes{list: list}
	default:
		return fmt.Errorf("line %d: mailboxes must be a string or a list of strings", n.Line)
	}
	return nil
}
