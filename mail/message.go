package mail

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/moriyoshi/brief/internal/bufio"
	"github.com/moriyoshi/brief/internal/logging"
	"github.com/moriyoshi/brief/internal/rfc5322"
)

// Message is a header block made of participant headers.
type Message struct {
	headers []Header
}

// Headers returns a copy of the headers in the order they were added.
func (m Message) Headers() []Header {
	return append([]Header(nil), m.headers...)
}

// Get returns the mailboxes of the first header named f.
func (m Message) Get(f Field) (Mailboxes, bool) {
	for _, h := range m.headers {
		if h.Field == f {
			return h.Mailboxes, true
		}
	}
	return Mailboxes{}, false
}

// WriteTo writes the headers, one per CRLF-terminated line, followed by the
// blank line that ends a header block. Nothing is written when a header holds
// no mailboxes.
func (m Message) WriteTo(w io.Writer) (int64, error) {
	for _, h := range m.headers {
		if h.Mailboxes.Len() == 0 {
			return 0, fmt.Errorf("mail: %s header has no mailboxes", h.Field)
		}
	}
	bl := &rfc5322.Builder{Writer: w}
	for _, h := range m.headers {
		if err := bl.WriteField(string(h.Field), h.Mailboxes.String()); err != nil {
			return bl.Written(), err
		}
	}
	err := bl.End()
	return bl.Written(), err
}

// MessageBuilder accumulates headers. Every method returns a new builder and
// leaves the receiver untouched.
type MessageBuilder struct {
	headers []Header
}

func NewMessageBuilder() MessageBuilder {
	return MessageBuilder{}
}

func (b MessageBuilder) Header(h Header) MessageBuilder {
	headers := make([]Header, 0, len(b.headers)+1)
	headers = append(headers, b.headers...)
	return MessageBuilder{headers: append(headers, h)}
}

func (b MessageBuilder) From(m Mailboxes) MessageBuilder {
	return b.Header(From(m))
}

func (b MessageBuilder) To(m Mailboxes) MessageBuilder {
	return b.Header(To(m))
}

func (b MessageBuilder) Cc(m Mailboxes) MessageBuilder {
	return b.Header(Cc(m))
}

func (b MessageBuilder) ReplyTo(m Mailboxes) MessageBuilder {
	return b.Header(ReplyTo(m))
}

func (b MessageBuilder) Build() Message {
	return Message{headers: append([]Header(nil), b.headers...)}
}

type readOptions struct {
	logger *slog.Logger
	strict bool
}

type ReadOption func(*readOptions)

func WithLogger(logger *slog.Logger) ReadOption {
	return func(o *readOptions) {
		o.logger = logging.OrDiscard(logger)
	}
}

// WithStrict makes ReadMessage fail on header lines that are not fields
// instead of skipping them.
func WithStrict(strict bool) ReadOption {
	return func(o *readOptions) {
		o.strict = strict
	}
}

// ReadMessage reads a header block from r and collects its participant
// headers. Other fields are skipped. Reading stops at the blank line that
// precedes the body.
func ReadMessage(r io.Reader, options ...ReadOption) (Message, error) {
	o := readOptions{logger: logging.Discard()}
	for _, option := range options {
		option(&o)
	}
	var b MessageBuilder
	err := rfc5322.Scan(
		bufio.NewReader(r),
		rfc5322.ScannerHandlerFromFunctions(
			func(l []byte) error {
				if o.strict {
					return fmt.Errorf("mail: unexpected continuation line before the first header %q", l)
				}
				o.logger.Debug("skipping straggler", slog.String("line", string(l)))
				return nil
			},
			func(lines [][]byte) error {
				name, value, ok := rfc5322.SplitField(lines)
				if !ok {
					if o.strict {
						return fmt.Errorf("mail: malformed header line %q", lines[0])
					}
					o.logger.Debug("skipping malformed header line", slog.String("line", string(lines[0])))
					return nil
				}
				f, err := ParseField(string(name))
				if err != nil {
					o.logger.Debug("skipping header", slog.String("field", string(name)))
					return nil
				}
				ms, err := ParseMailboxes(string(value))
				if err != nil {
					return fmt.Errorf("failed to parse %s header: %w", f, err)
				}
				o.logger.Debug("header", slog.String("field", string(f)), slog.Int("mailboxes", ms.Len()))
				b = b.Header(Header{Field: f, Mailboxes: ms})
				return nil
			},
			nil,
		),
	)
	if err != nil {
		return Message{}, err
	}
	return b.Build(), nil
}
