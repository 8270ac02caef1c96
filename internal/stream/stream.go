// Package stream provides the character stream capability consumed by the
// command lexer: single-byte peek/get/unget with a monotonic read position,
// over any backing medium (in-memory buffer, file, interactive terminal).
package stream

import (
	"bufio"
	"io"
)

// RawStream is the minimal capability a character source must implement.
// Unget pushes back the most recently consumed byte; callers may push back
// at most one byte between reads.
type RawStream interface {
	// Peek returns the next byte without consuming it. ok is false at
	// end of input.
	Peek() (byte, bool)
	// Get consumes and returns the next byte. ok is false at end of input.
	Get() (byte, bool)
	// Unget pushes the last consumed byte back onto the stream.
	Unget()
	// Tell returns the number of bytes consumed so far.
	Tell() int64
}

// BufferStream is a RawStream over an in-memory byte slice.
type BufferStream struct {
	data []byte
	pos  int64
}

// NewBufferStream returns a RawStream reading from s.
func NewBufferStream(s string) *BufferStream {
	return &BufferStream{data: []byte(s)}
}

func (b *BufferStream) Peek() (byte, bool) {
	if b.pos >= int64(len(b.data)) {
		return 0, false
	}
	return b.data[b.pos], true
}

func (b *BufferStream) Get() (byte, bool) {
	if b.pos >= int64(len(b.data)) {
		return 0, false
	}
	c := b.data[b.pos]
	b.pos++
	return c, true
}

func (b *BufferStream) Unget() {
	if b.pos > 0 {
		b.pos--
	}
}

func (b *BufferStream) Tell() int64 {
	return b.pos
}

// ReaderStream adapts an io.Reader (a file, a pipe, interactive stdin) to the
// RawStream capability. The underlying reader need not support seeking; a
// one-byte pushback window is provided by the buffered reader.
type ReaderStream struct {
	r   *bufio.Reader
	pos int64
}

// NewReaderStream returns a RawStream reading from r.
func NewReaderStream(r io.Reader) *ReaderStream {
	return &ReaderStream{r: bufio.NewReader(r)}
}

func (s *ReaderStream) Peek() (byte, bool) {
	buf, err := s.r.Peek(1)
	if err != nil {
		return 0, false
	}
	return buf[0], true
}

func (s *ReaderStream) Get() (byte, bool) {
	c, err := s.r.ReadByte()
	if err != nil {
		return 0, false
	}
	s.pos++
	return c, true
}

func (s *ReaderStream) Unget() {
	if err := s.r.UnreadByte(); err == nil {
		s.pos--
	}
}

func (s *ReaderStream) Tell() int64 {
	return s.pos
}
