package rfc5322

import (
	"io"
)

// Builder writes a header block. Lines are terminated with CRLF; no folding
// is applied.
type Builder struct {
	io.Writer
	n          int64
	shortWrite bool
}

var (
	newline   = []byte{'\r', '\n'}
	separator = []byte{':', ' '}
)

func (bl *Builder) write(b []byte) error {
	n, err := bl.Writer.Write(b)
	bl.n += int64(n)
	if n != len(b) {
		bl.shortWrite = true
	}
	if err == nil && bl.shortWrite {
		err = io.ErrShortWrite
	}
	return err
}

// WriteField writes "name: value" followed by CRLF.
func (bl *Builder) WriteField(name, value string) error {
	for _, b := range [][]byte{[]byte(name), separator, []byte(value), newline} {
		if err := bl.write(b); err != nil {
			return err
		}
	}
	return nil
}

// HandleHeaderLine writes a field given as its physical lines, as handed out
// by Scan.
func (bl *Builder) HandleHeaderLine(chunks [][]byte) error {
	for _, chunk := range chunks {
		if err := bl.write(chunk); err != nil {
			return err
		}
		if err := bl.write(newline); err != nil {
			return err
		}
	}
	return nil
}

// End writes the blank line terminating the header block.
func (bl *Builder) End() error {
	return bl.write(newline)
}

// Written returns the number of bytes written so far.
func (bl *Builder) Written() int64 {
	return bl.n
}

func (bl *Builder) ShortWrite() bool {
	return bl.shortWrite
}
