package parsec

import "errors"

// Map applies f to the value of p. Failures pass through untouched.
func Map[U, T any](p Parser[U], f func(U) T) Parser[T] {
	return Func[T](func(s *Stream) (T, error) {
		var zero T
		u, err := p.Parse(s)
		if err != nil || s.Failed() {
			return zero, err
		}
		return f(u), nil
	})
}

// Chain runs p and hands its value to f together with the stream, so f can
// continue parsing by hand. A failure f leaves behind after input was
// consumed since Chain began is escalated like in Then.
func Chain[U, T any](p Parser[U], f func(*Stream, U) (T, error)) Parser[T] {
	return Func[T](func(s *Stream) (T, error) {
		var zero T
		m := markPosition(s)
		u, err := p.Parse(s)
		if err != nil || s.Failed() {
			return zero, err
		}
		v, err := f(s, u)
		if err != nil {
			return zero, err
		}
		return returnOrEscalate(s, m, v)
	})
}

// Skip discards the value of p.
func Skip[T any](p Parser[T]) Parser[Unit] {
	return Map(p, func(T) Unit { return Unit{} })
}

// Then runs p and then q, returning q's value. If p fails, q is not tried and
// p's failure is returned as is. If q fails after anything was consumed since
// Then began, the failure is an error failure.
func Then[U, T any](p Parser[U], q Parser[T]) Parser[T] {
	return Func[T](func(s *Stream) (T, error) {
		var zero T
		m := markPosition(s)
		if _, err := p.Parse(s); err != nil || s.Failed() {
			return zero, err
		}
		v, err := q.Parse(s)
		if err != nil {
			return zero, err
		}
		return returnOrEscalate(s, m, v)
	})
}

// ThenSkip runs p and then q like Then, but returns p's value.
func ThenSkip[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return Func[T](func(s *Stream) (T, error) {
		var zero T
		m := markPosition(s)
		v, err := p.Parse(s)
		if err != nil || s.Failed() {
			return zero, err
		}
		if _, err := q.Parse(s); err != nil {
			return zero, err
		}
		return returnOrEscalate(s, m, v)
	})
}

// Between parses open, p and close in order and returns p's value.
func Between[O, T, C any](open Parser[O], p Parser[T], close Parser[C]) Parser[T] {
	return Then(open, ThenSkip(p, close))
}

// Complete requires p to be followed by end of input.
func Complete[T any](p Parser[T]) Parser[T] {
	return ThenSkip(p, EOF())
}

// Or tries p and, if p fails without consuming input, q on the same input.
// An error failure from p is returned without trying q; wrap p in Try to
// attempt q even after p consumed input.
func Or[T any](p, q Parser[T]) Parser[T] {
	return Choice(p, q)
}

// Choice tries each parser in order and returns the first success. It stops
// at the first error failure. When every parser fails weakly, Choice fails
// weakly and the stream lists what each of them expected.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	return Func[T](func(s *Stream) (T, error) {
		var zero T
		if len(ps) == 0 {
			s.Fail("")
			return zero, nil
		}
		m := markPosition(s)
		for i, p := range ps {
			v, err := p.Parse(s)
			if err != nil || !s.Failed() {
				return v, err
			}
			if consumedSinceMark(s, m) {
				return zero, escalate(s, m)
			}
			if i < len(ps)-1 {
				s.ClearFailed()
			}
		}
		return zero, nil
	})
}

// Try runs p and, if p fails after consuming input, rewinds the stream to
// where p began. The failure flag stays set, so the error failure becomes a
// weak failure that Or and the repetition combinators recover from.
// ErrStreamFailed is rewound the same way; any other error is returned as is.
func Try[T any](p Parser[T]) Parser[T] {
	return Func[T](func(s *Stream) (T, error) {
		var zero T
		m := markPosition(s)
		v, err := p.Parse(s)
		if err == nil {
			if s.Failed() && consumedSinceMark(s, m) {
				if serr := s.Seek(m); serr != nil {
					return zero, serr
				}
			}
			return v, nil
		}
		var pe *Error
		if !errors.As(err, &pe) && !errors.Is(err, ErrStreamFailed) {
			return zero, err
		}
		if serr := s.Seek(m); serr != nil {
			return zero, serr
		}
		s.SetFailed()
		return zero, nil
	})
}
