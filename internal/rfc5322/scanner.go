package rfc5322

import (
	"bytes"
	"io"

	"github.com/moriyoshi/brief/internal/bufio"
)

// ScannerHandler receives the pieces of a message as Scan finds them.
// HandleHeaderLine gets a header field as its physical lines, continuation
// lines included, with line endings removed. HandleStraggler gets indented
// lines that precede the first field.
type ScannerHandler interface {
	HandleStraggler([]byte) error
	HandleHeaderLine([][]byte) error
	HandleBody(bufio.Reader) error
}

func readLineSlice(r bufio.Reader) ([]byte, bool, error) {
	l, borrowable, err := r.ReadUpTo('\n')
	if len(l) == 0 {
		return nil, true, err
	}
	if l[len(l)-1] == '\n' {
		l = l[:len(l)-1]
		if len(l) > 0 && l[len(l)-1] == '\r' {
			l = l[:len(l)-1]
		}
	}
	return l, borrowable, err
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t'
}

// Scan reads the header block from r, handing each field to handler, and then
// passes the reader positioned at the start of the body to HandleBody.
func Scan(r bufio.Reader, handler ScannerHandler) error {
	var field [][]byte
	flush := func() error {
		if len(field) == 0 {
			return nil
		}
		err := handler.HandleHeaderLine(field)
		field = nil
		return err
	}
	for {
		l, borrowable, err := readLineSlice(r)
		eof := err == io.EOF
		if err != nil && !eof {
			return err
		}
		if len(l) == 0 {
			// the blank line separating the body, or the end of input
			break
		}
		if isWhitespace(l[0]) {
			if len(field) == 0 {
				if err := handler.HandleStraggler(l); err != nil {
					return err
				}
				if eof {
					break
				}
				continue
			}
		} else if err := flush(); err != nil {
			return err
		}
		if !borrowable {
			l = append([]byte(nil), l...)
		}
		field = append(field, l)
		if eof {
			break
		}
	}
	if err := flush(); err != nil {
		return err
	}
	return handler.HandleBody(r)
}

// SplitField separates a header field given as its physical lines into name
// and value. Continuation lines are joined, each fold becoming a single
// space, and the value is trimmed. ok is false when the first line has no
// colon.
func SplitField(lines [][]byte) (name, value []byte, ok bool) {
	if len(lines) == 0 {
		return nil, nil, false
	}
	i := bytes.IndexByte(lines[0], ':')
	if i < 0 {
		return nil, nil, false
	}
	name = bytes.TrimRight(lines[0][:i], " \t")
	v := append([]byte(nil), lines[0][i+1:]...)
	for _, l := range lines[1:] {
		v = append(v, ' ')
		v = append(v, bytes.TrimLeft(l, " \t")...)
	}
	return name, bytes.TrimSpace(v), true
}

type functionBackedScannerHandler struct {
	StragglerHandler  func([]byte) error
	HeaderLineHandler func([][]byte) error
	BodyHandler       func(bufio.Reader) error
}

func (h *functionBackedScannerHandler) HandleStraggler(l []byte) error {
	if h.StragglerHandler == nil {
		return nil
	}
	return h.StragglerHandler(l)
}

func (h *functionBackedScannerHandler) HandleHeaderLine(l [][]byte) error {
	if h.HeaderLineHandler == nil {
		return nil
	}
	return h.HeaderLineHandler(l)
}

func (h *functionBackedScannerHandler) HandleBody(r bufio.Reader) error {
	if h.BodyHandler == nil {
		return nil
	}
	return h.BodyHandler(r)
}

// ScannerHandlerFromFunctions adapts plain functions to ScannerHandler. Nil
// functions ignore what they would have received.
func ScannerHandlerFromFunctions(
	stragglerHandler func([]byte) error,
	headerLineHandler func([][]byte) error,
	bodyHandler func(bufio.Reader) error,
) ScannerHandler {
	return &functionBackedScannerHandler{
		StragglerHandler:  stragglerHandler,
		HeaderLineHandler: headerLineHandler,
		BodyHandler:       bodyHandler,
	}
}
