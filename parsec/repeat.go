package parsec

// repeat applies p until it fails, folding each value into acc. The failure
// that ends the loop is cleared. An error failure aborts the loop and is
// returned. A match that consumes nothing also ends the loop, without being
// folded in, so parsers that accept the empty input cannot loop forever.
func repeat[T, A any](s *Stream, p Parser[T], acc A, f func(A, T) A) (A, error) {
	for {
		m := markPosition(s)
		v, err := p.Parse(s)
		if err != nil {
			var zero A
			return zero, err
		}
		if s.Failed() {
			s.ClearFailed()
			return acc, nil
		}
		if !consumedSinceMark(s, m) {
			return acc, nil
		}
		acc = f(acc, v)
	}
}

// ManyFold applies p zero or more times and folds the values into init with
// f. It never fails weakly, but error failures of p propagate. f must not
// modify init in place, since the parser may be reused.
func ManyFold[T, A any](p Parser[T], init A, f func(A, T) A) Parser[A] {
	return Func[A](func(s *Stream) (A, error) {
		return repeat(s, p, init, f)
	})
}

// Many applies p zero or more times and collects the values in order. A weak
// failure of p ends the list; an error failure inside an iteration is
// returned, so wrap p in Try to stop at a partial match instead.
func Many[T any](p Parser[T]) Parser[[]T] {
	return ManyFold(p, []T(nil), appendValue[T])
}

// ManyString applies a byte parser zero or more times and returns the bytes
// as a string.
func ManyString(p Parser[byte]) Parser[string] {
	return Map(Many(p), bytesToString)
}

// SkipMany applies p zero or more times and discards the values.
func SkipMany[T any](p Parser[T]) Parser[Unit] {
	return ManyFold(p, Unit{}, discard[T])
}

// Many1 applies p one or more times, combining the values with f from the
// left. If the first application fails, Many1 fails the same way.
func Many1[T any](p Parser[T], f func(T, T) T) Parser[T] {
	return Func[T](func(s *Stream) (T, error) {
		var zero T
		first, err := p.Parse(s)
		if err != nil || s.Failed() {
			return zero, err
		}
		return repeat(s, p, first, f)
	})
}

// SkipMany1 applies p one or more times and discards the values.
func SkipMany1[T any](p Parser[T]) Parser[Unit] {
	return Many1(Skip(p), keepUnit)
}

// sepByTail parses (sep p)* after a first element. A separator that fails
// ends the list; an element missing after a separator is an error failure
// reported from m.
func sepByTail[T, S, A any](s *Stream, m Mark, p Parser[T], sep Parser[S], acc A, f func(A, T) A) (A, error) {
	var zero A
	for {
		iter := markPosition(s)
		if _, err := sep.Parse(s); err != nil {
			return zero, err
		}
		if s.Failed() {
			s.ClearFailed()
			return acc, nil
		}
		v, err := p.Parse(s)
		if err != nil {
			return zero, err
		}
		if s.Failed() {
			return zero, escalate(s, m)
		}
		acc = f(acc, v)
		if !consumedSinceMark(s, iter) {
			return acc, nil
		}
	}
}

// SepByFold parses zero or more p separated by sep and folds the values into
// init with f. A separator must be followed by an element.
func SepByFold[T, S, A any](p Parser[T], sep Parser[S], init A, f func(A, T) A) Parser[A] {
	return Func[A](func(s *Stream) (A, error) {
		var zero A
		m := markPosition(s)
		v, err := p.Parse(s)
		if err != nil {
			return zero, err
		}
		if s.Failed() {
			s.ClearFailed()
			return init, nil
		}
		return sepByTail(s, m, p, sep, f(init, v), f)
	})
}

// SepBy parses zero or more p separated by sep and collects the values.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return SepByFold(p, sep, []T(nil), appendValue[T])
}

// SepByString parses zero or more bytes separated by sep into a string.
func SepByString[S any](p Parser[byte], sep Parser[S]) Parser[string] {
	return Map(SepBy(p, sep), bytesToString)
}

// SkipSepBy parses zero or more p separated by sep and discards the values.
func SkipSepBy[T, S any](p Parser[T], sep Parser[S]) Parser[Unit] {
	return SepByFold(p, sep, Unit{}, discard[T])
}

// SepBy1Fold parses one or more p separated by sep, combining the values with
// f from the left. If the first element is missing, SepBy1Fold fails the way
// p did.
func SepBy1Fold[T, S any](p Parser[T], sep Parser[S], f func(T, T) T) Parser[T] {
	return Func[T](func(s *Stream) (T, error) {
		var zero T
		m := markPosition(s)
		first, err := p.Parse(s)
		if err != nil || s.Failed() {
			return zero, err
		}
		return sepByTail(s, m, p, sep, first, f)
	})
}

// SepBy1 parses one or more p separated by sep and collects the values.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Func[[]T](func(s *Stream) ([]T, error) {
		m := markPosition(s)
		first, err := p.Parse(s)
		if err != nil || s.Failed() {
			return nil, err
		}
		return sepByTail(s, m, p, sep, []T{first}, appendValue[T])
	})
}

// SkipSepBy1 parses one or more p separated by sep and discards the values.
func SkipSepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[Unit] {
	return SepBy1Fold(Skip(p), sep, keepUnit)
}

// ChainLeft1 parses one or more p separated by op and combines the values
// with the functions op returns, associating to the left.
func ChainLeft1[T any](p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	return Func[T](func(s *Stream) (T, error) {
		var zero T
		m := markPosition(s)
		acc, err := p.Parse(s)
		if err != nil || s.Failed() {
			return zero, err
		}
		for {
			f, err := op.Parse(s)
			if err != nil {
				return zero, err
			}
			if s.Failed() {
				s.ClearFailed()
				return acc, nil
			}
			v, err := p.Parse(s)
			if err != nil {
				return zero, err
			}
			if s.Failed() {
				return zero, escalate(s, m)
			}
			acc = f(acc, v)
		}
	})
}

func appendValue[T any](acc []T, v T) []T { return append(acc, v) }

func discard[T any](acc Unit, _ T) Unit { return acc }

func keepUnit(Unit, Unit) Unit { return Unit{} }

func bytesToString(b []byte) string { return string(b) }
