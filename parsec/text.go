package parsec

// Text is the set of result types Concat accepts: single bytes and strings.
type Text interface {
	byte | string
}

func textString[T Text](v T) string {
	switch x := any(v).(type) {
	case byte:
		return string([]byte{x})
	case string:
		return x
	}
	return ""
}

// AsString turns a byte parser into a parser of one-byte strings.
func AsString(p Parser[byte]) Parser[string] {
	return Map(p, textString[byte])
}

// Concat runs p and then q, like Then, and joins their results. Either operand
// may produce a byte, which is promoted to a one-byte string.
func Concat[A, B Text](p Parser[A], q Parser[B]) Parser[string] {
	return Func[string](func(s *Stream) (string, error) {
		m := markPosition(s)
		a, err := p.Parse(s)
		if err != nil || s.Failed() {
			return "", err
		}
		b, err := q.Parse(s)
		if err != nil {
			return "", err
		}
		return returnOrEscalate(s, m, textString(a)+textString(b))
	})
}

// ConcatAll concatenates the results of ps, applied in sequence.
func ConcatAll(ps ...Parser[string]) Parser[string] {
	if len(ps) == 0 {
		return Func[string](func(*Stream) (string, error) { return "", nil })
	}
	p := ps[0]
	for _, q := range ps[1:] {
		p = Concat(p, q)
	}
	return p
}
