package bufio

import (
	_bufio "bufio"
	"io"
)

// Reader is a byte-oriented reader that can hand out whole lines.
// ReadUpTo returns the bytes up to and including delim, however long; the
// second return value tells whether the slice stays valid after the next
// read.
type Reader interface {
	io.Reader
	io.ByteScanner
	ReadUpTo(delim byte) ([]byte, bool, error)
}

type BufferWrapper struct {
	*_bufio.Reader
}

// NewReader wraps r, reusing r's buffer when it already is a *bufio.Reader.
func NewReader(r io.Reader) *BufferWrapper {
	if br, ok := r.(*_bufio.Reader); ok {
		return &BufferWrapper{Reader: br}
	}
	return &BufferWrapper{Reader: _bufio.NewReader(r)}
}

// NewReaderSize is NewReader with an explicit buffer size.
func NewReaderSize(r io.Reader, size int) *BufferWrapper {
	return &BufferWrapper{Reader: _bufio.NewReaderSize(r, size)}
}

// ReadUpTo borrows from the reader's buffer when delim is found within it,
// and otherwise collects the pieces into a fresh slice.
func (w *BufferWrapper) ReadUpTo(delim byte) ([]byte, bool, error) {
	b, err := w.ReadSlice(delim)
	if err != _bufio.ErrBufferFull {
		return b, false, err
	}
	l := append([]byte(nil), b...)
	for err == _bufio.ErrBufferFull {
		b, err = w.ReadSlice(delim)
		l = append(l, b...)
	}
	return l, true, err
}

var _ Reader = &BufferWrapper{}
