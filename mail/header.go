package mail

import (
	"fmt"
	"strings"
)

// Field names a header whose value is a list of mailboxes.
type Field string

const (
	FieldFrom    Field = "From"
	FieldTo      Field = "To"
	FieldCc      Field = "Cc"
	FieldReplyTo Field = "Reply-To"
)

var fields = []Field{FieldFrom, FieldTo, FieldCc, FieldReplyTo}

// ParseField resolves a header field name case-insensitively.
func ParseField(name string) (Field, error) {
	for _, f := range fields {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("mail: unsupported header field %q", name)
}

// Header is a participant header such as "From: name <user@domain.com>".
type Header struct {
	Field     Field
	Mailboxes Mailboxes
}

func From(m Mailboxes) Header {
	return Header{Field: FieldFrom, Mailboxes: m}
}

func To(m Mailboxes) Header {
	return Header{Field: FieldTo, Mailboxes: m}
}

func Cc(m Mailboxes) Header {
	return Header{Field: FieldCc, Mailboxes: m}
}

func ReplyTo(m Mailboxes) Header {
	return Header{Field: FieldReplyTo, Mailboxes: m}
}

func (h Header) String() string {
	return string(h.Field) + ": " + h.Mailboxes.String()
}
