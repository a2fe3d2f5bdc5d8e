package parsec

import (
	"fmt"

	"github.com/tliron/commonlog"
)

func logger() commonlog.Logger {
	return commonlog.GetLogger("comb.parsec")
}

// Rule is a named parser that is defined after it is created, so a grammar
// can refer to a rule from inside its own definition.
//
//	expr := parsec.NewRule[int]("expression")
//	atom := parsec.Or(number, parsec.Between(lparen, expr, rparen))
//	expr.Define(parsec.ChainLeft1(atom, plus))
//
// A rule that fails without consuming input reports its name as what was
// expected. Define must be called before the rule is first used.
type Rule[T any] struct {
	name string
	p    Parser[T]
}

// NewRule returns an undefined rule.
func NewRule[T any](name string) *Rule[T] {
	return &Rule[T]{name: name}
}

// Name returns the rule's name.
func (r *Rule[T]) Name() string {
	return r.name
}

// Define sets the parser the rule stands for. It panics if the rule is
// already defined.
func (r *Rule[T]) Define(p Parser[T]) *Rule[T] {
	if r.p != nil {
		panic(fmt.Sprintf("parsec: rule %q defined twice", r.name))
	}
	r.p = Label(p, r.name)
	return r
}

func (r *Rule[T]) Parse(s *Stream) (T, error) {
	if r.p == nil {
		var zero T
		return zero, fmt.Errorf("rule %q used before it was defined", r.name)
	}
	return trace(r.name, r.p, s)
}

// Label runs p and, when p fails without consuming input, reports name as
// what was expected instead of whatever p's own parsers expected.
func Label[T any](p Parser[T], name string) Parser[T] {
	return Func[T](func(s *Stream) (T, error) {
		m := markPosition(s)
		n := s.expectMark()
		v, err := p.Parse(s)
		if err == nil && s.Failed() && !consumedSinceMark(s, m) {
			s.relabel(n, name)
		}
		return v, err
	})
}

// Trace logs each application of p at debug level: where it started and how
// it ended.
func Trace[T any](name string, p Parser[T]) Parser[T] {
	return Func[T](func(s *Stream) (T, error) {
		return trace(name, p, s)
	})
}

func trace[T any](name string, p Parser[T], s *Stream) (T, error) {
	log := logger()
	if !log.AllowLevel(commonlog.Debug) {
		return p.Parse(s)
	}
	start := s.Position()
	log.Debugf("%s: enter at %s", name, start)
	v, err := p.Parse(s)
	switch {
	case err != nil:
		log.Debugf("%s: failed at %s: %v", name, s.Position(), err)
	case s.Failed():
		log.Debugf("%s: %s at %s", name, WeakFailure, s.Position())
	default:
		log.Debugf("%s: matched %d bytes from %s", name, s.Position().Offset-start.Offset, start)
	}
	return v, err
}
