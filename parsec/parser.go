package parsec

import (
	"fmt"
	"io"
)

// Parser turns input from a stream into a value of type T.
//
// A parser that does not match sets the stream's failure flag and returns the
// zero value with a nil error: a weak failure when it consumed nothing. A
// parser that fails after consuming input returns an *Error with Tier
// ErrorFailure instead. Callers check the error first, then Stream.Failed,
// and only then trust the value.
//
// Parsers are immutable and may be shared by many grammars and used by
// concurrent parses, each with its own Stream.
type Parser[T any] interface {
	Parse(s *Stream) (T, error)
}

// Func adapts an ordinary function to the Parser interface.
type Func[T any] func(s *Stream) (T, error)

// Parse calls f(s).
func (f Func[T]) Parse(s *Stream) (T, error) {
	return f(s)
}

// Unit is the result of parsers that only match.
type Unit = struct{}

// Parse applies p to s and reports any failure as an error. A weak failure is
// returned as an *Error with Tier WeakFailure; a read error from the source
// takes precedence over parse failures.
func Parse[T any](p Parser[T], s *Stream) (T, error) {
	var zero T
	m := markPosition(s)
	v, err := p.Parse(s)
	if rerr := s.Err(); rerr != nil {
		return zero, fmt.Errorf("read input: %w", rerr)
	}
	if err != nil {
		return zero, err
	}
	if s.Failed() {
		tier := WeakFailure
		if consumedSinceMark(s, m) {
			tier = ErrorFailure
		}
		return zero, failureAt(s, m, tier)
	}
	return v, nil
}

// ParseString applies p to input.
func ParseString[T any](p Parser[T], input string, opts ...Option) (T, error) {
	return Parse(p, NewStringStream(input, opts...))
}

// ParseBytes applies p to data.
func ParseBytes[T any](p Parser[T], data []byte, opts ...Option) (T, error) {
	return Parse(p, NewBytesStream(data, opts...))
}

// ParseReader applies p to the bytes of r starting at its current offset.
func ParseReader[T any](p Parser[T], r io.ReadSeeker, opts ...Option) (T, error) {
	s, err := NewStream(r, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return Parse(p, s)
}
