package parsec

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

const (
	minReadSize   = 512
	maxBufferSize = 64 << 10
)

// Option configures a Stream.
type Option func(*Stream)

// WithFile sets the file name reported in positions and errors.
func WithFile(name string) Option {
	return func(s *Stream) {
		s.pos.File = name
	}
}

// WithBufferSize sets the initial capacity of the read window of a stream
// backed by an io.ReadSeeker.
func WithBufferSize(n int) Option {
	return func(s *Stream) {
		if n > 0 && s.src != nil && len(s.buf) == 0 {
			s.buf = make([]byte, 0, n)
		}
	}
}

// Mark is an opaque snapshot of a stream location, taken with Stream.Mark
// and restored with Stream.Seek.
type Mark struct {
	pos Position
}

// Position returns the position captured by the mark.
func (m Mark) Position() Position {
	return m.pos
}

// Stream is a positioned cursor over a seekable byte source. It carries the
// failure flag parsers use to signal weak failures; the flag is independent of
// end of input.
//
// A Stream is owned by a single parse and must not be shared between
// goroutines. Parsers themselves hold no state and can be shared freely.
type Stream struct {
	src  io.ReadSeeker
	base int64

	// buf holds the source bytes in [bufStart, bufStart+len(buf)).
	buf      []byte
	bufStart int
	eof      bool
	err      error

	pos    Position
	failed bool

	// expected lists what the parsers that failed at failOffset were looking for.
	failOffset int
	expected   []string
}

// NewStream returns a stream reading from src, starting at the source's
// current offset.
func NewStream(src io.ReadSeeker, opts ...Option) (*Stream, error) {
	base, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("locate stream start: %w", err)
	}
	s := &Stream{
		src:        src,
		base:       base,
		pos:        startPosition(""),
		failOffset: -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.buf == nil {
		s.buf = make([]byte, 0, 4096)
	}
	return s, nil
}

// NewBytesStream returns a stream over an in-memory buffer. Backtracking
// never performs I/O on such a stream.
func NewBytesStream(data []byte, opts ...Option) *Stream {
	s := &Stream{
		src:        bytes.NewReader(data),
		buf:        data,
		eof:        true,
		pos:        startPosition(""),
		failOffset: -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewStringStream returns a stream over input.
func NewStringStream(input string, opts ...Option) *Stream {
	return NewBytesStream([]byte(input), opts...)
}

// Position returns the position of the next byte.
func (s *Stream) Position() Position {
	return s.pos
}

// Offset returns the number of bytes consumed so far.
func (s *Stream) Offset() int {
	return s.pos.Offset
}

// Err returns the first read error other than io.EOF. The grammar sees such an
// error as end of input.
func (s *Stream) Err() error {
	return s.err
}

// Peek returns the next byte without consuming it. ok is false at end of input.
func (s *Stream) Peek() (ch byte, ok bool) {
	i := s.pos.Offset - s.bufStart
	if i >= len(s.buf) && !s.fill() {
		return 0, false
	}
	return s.buf[s.pos.Offset-s.bufStart], true
}

// Consume advances past the next byte and returns it. ok is false at end of
// input, in which case the position does not change.
func (s *Stream) Consume() (ch byte, ok bool) {
	ch, ok = s.Peek()
	if !ok {
		return 0, false
	}
	s.pos.advance(ch)
	return ch, true
}

// AtEnd reports whether the source is exhausted.
func (s *Stream) AtEnd() bool {
	_, ok := s.Peek()
	return !ok
}

// Mark captures the current location.
func (s *Stream) Mark() Mark {
	return Mark{pos: s.pos}
}

// Seek restores the location captured by m: source offset, line and column.
// It leaves the failure flag alone.
func (s *Stream) Seek(m Mark) error {
	off := m.pos.Offset
	if off >= s.bufStart && off <= s.bufStart+len(s.buf) {
		s.pos = m.pos
		return nil
	}
	if _, err := s.src.Seek(s.base+int64(off), io.SeekStart); err != nil {
		return fmt.Errorf("seek to %s: %w", m.pos, err)
	}
	s.buf = s.buf[:0]
	s.bufStart = off
	s.eof = false
	s.pos = m.pos
	return nil
}

// ConsumedSince returns how many bytes were consumed since m was taken.
func (s *Stream) ConsumedSince(m Mark) int {
	return s.pos.Offset - m.pos.Offset
}

// SetFailed marks the stream as failed. The flag stays set until ClearFailed.
func (s *Stream) SetFailed() {
	s.failed = true
}

// ClearFailed resets the failure flag.
func (s *Stream) ClearFailed() {
	s.failed = false
}

// Failed reports whether the last parser applied to the stream failed.
func (s *Stream) Failed() bool {
	return s.failed
}

// Fail marks the stream as failed and records what was expected at the
// current position. Leaf parsers call it on a mismatch.
func (s *Stream) Fail(expected string) {
	s.failed = true
	s.expect(expected)
}

func (s *Stream) expect(what string) {
	if s.failOffset != s.pos.Offset {
		s.failOffset = s.pos.Offset
		s.expected = s.expected[:0]
	}
	if what == "" {
		return
	}
	for _, e := range s.expected {
		if e == what {
			return
		}
	}
	s.expected = append(s.expected, what)
}

// expectMark returns how many expectations are recorded at the current
// position.
func (s *Stream) expectMark() int {
	if s.failOffset != s.pos.Offset {
		return 0
	}
	return len(s.expected)
}

// relabel replaces the expectations recorded at the current position after
// expectMark returned n with what.
func (s *Stream) relabel(n int, what string) {
	if s.failOffset != s.pos.Offset {
		s.failOffset = s.pos.Offset
		n = 0
	}
	s.expected = s.expected[:min(n, len(s.expected))]
	s.expect(what)
}

// Expected returns what the parsers that failed at the current position were
// looking for.
func (s *Stream) Expected() []string {
	if s.failOffset != s.pos.Offset || len(s.expected) == 0 {
		return nil
	}
	return append([]string(nil), s.expected...)
}

func (s *Stream) found() string {
	ch, ok := s.Peek()
	if !ok {
		return "end of input"
	}
	return quoteByte(ch)
}

func (s *Stream) fill() bool {
	if s.eof || s.err != nil || s.src == nil {
		return false
	}
	if len(s.buf) >= maxBufferSize {
		i := s.pos.Offset - s.bufStart
		n := copy(s.buf, s.buf[i:])
		s.buf = s.buf[:n]
		s.bufStart = s.pos.Offset
	}
	if cap(s.buf)-len(s.buf) < minReadSize {
		grown := make([]byte, len(s.buf), 2*cap(s.buf)+minReadSize)
		copy(grown, s.buf)
		s.buf = grown
	}
	for tries := 0; tries < 100; tries++ {
		n, err := s.src.Read(s.buf[len(s.buf):cap(s.buf)])
		s.buf = s.buf[:len(s.buf)+n]
		switch {
		case err == io.EOF:
			s.eof = true
		case err != nil:
			s.err = err
		}
		if n > 0 {
			return true
		}
		if err != nil {
			return false
		}
	}
	s.err = io.ErrNoProgress
	return false
}

func quoteByte(ch byte) string {
	if ch < utf8.RuneSelf {
		return strconv.QuoteRune(rune(ch))
	}
	return fmt.Sprintf(`'\x%02x'`, ch)
}
