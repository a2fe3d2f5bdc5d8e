package parsec

import (
	"errors"
	"fmt"
	"strings"
)

// Tier classifies a failure by whether input was consumed before it.
type Tier int

const (
	// WeakFailure is a failure that consumed nothing. Alternation and
	// repetition recover from it.
	WeakFailure Tier = iota
	// ErrorFailure is a failure after consuming input. It ends the parse
	// unless a Try around the failing parser backtracks.
	ErrorFailure
)

func (t Tier) String() string {
	switch t {
	case WeakFailure:
		return "weak failure"
	case ErrorFailure:
		return "error failure"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// ErrStreamFailed is returned by a parser applied to a stream whose failure
// flag is already set.
var ErrStreamFailed = errors.New("parser applied to a failed stream")

// Error describes a failed parse.
//
// Combinators return an *Error with Tier ErrorFailure when a parser fails after
// consuming input. Parse and its variants also report a top-level weak failure
// as an *Error with Tier WeakFailure.
type Error struct {
	Tier     Tier
	Start    Position // where the failing parser began
	Pos      Position // where the mismatch was observed
	Expected []string
	Found    string
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: unexpected %s", e.Pos, e.Found)
	if len(e.Expected) > 0 {
		b.WriteString(", expected ")
		b.WriteString(joinExpected(e.Expected))
	}
	return b.String()
}

// Consumed returns the number of bytes consumed before the mismatch.
func (e *Error) Consumed() int {
	return e.Pos.Offset - e.Start.Offset
}

func joinExpected(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}

// IsErrorFailure reports whether err carries an error failure.
func IsErrorFailure(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Tier == ErrorFailure
}

// markPosition records where a combinator started.
func markPosition(s *Stream) Mark {
	return s.Mark()
}

// consumedSinceMark reports whether input was consumed since m.
func consumedSinceMark(s *Stream, m Mark) bool {
	return s.ConsumedSince(m) > 0
}

func failureAt(s *Stream, m Mark, tier Tier) *Error {
	return &Error{
		Tier:     tier,
		Start:    m.pos,
		Pos:      s.pos,
		Expected: s.Expected(),
		Found:    s.found(),
	}
}

// escalate turns the current failure into an error failure.
func escalate(s *Stream, m Mark) *Error {
	return failureAt(s, m, ErrorFailure)
}

// returnOrEscalate returns v unless the stream failed after consuming input
// since m, in which case the failure becomes an error failure. A weak failure
// yields the zero value with a nil error.
func returnOrEscalate[T any](s *Stream, m Mark, v T) (T, error) {
	var zero T
	if !s.Failed() {
		return v, nil
	}
	if consumedSinceMark(s, m) {
		return zero, escalate(s, m)
	}
	return zero, nil
}
