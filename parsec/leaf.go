package parsec

import "strconv"

// byteParser matches a single byte satisfying match. It never consumes on a
// mismatch, so it only ever fails weakly.
type byteParser struct {
	name  string
	match func(byte) bool
}

func (p byteParser) Parse(s *Stream) (byte, error) {
	if s.Failed() {
		return 0, ErrStreamFailed
	}
	ch, ok := s.Peek()
	if ok && p.match(ch) {
		s.Consume()
		return ch, nil
	}
	s.Fail(p.name)
	return 0, nil
}

// Satisfy matches one byte for which pred returns true. name describes the
// byte in error messages.
func Satisfy(name string, pred func(byte) bool) Parser[byte] {
	return byteParser{name: name, match: pred}
}

// Char matches the byte c.
func Char(c byte) Parser[byte] {
	return byteParser{
		name:  quoteByte(c),
		match: func(ch byte) bool { return ch == c },
	}
}

// AnyChar matches any byte.
func AnyChar() Parser[byte] {
	return byteParser{
		name:  "any character",
		match: func(byte) bool { return true },
	}
}

type byteSet [256]bool

func newByteSet(chars string) *byteSet {
	var set byteSet
	for i := 0; i < len(chars); i++ {
		set[chars[i]] = true
	}
	return &set
}

// OneOf matches any byte in chars.
func OneOf(chars string) Parser[byte] {
	set := newByteSet(chars)
	return byteParser{
		name:  "one of " + strconv.Quote(chars),
		match: func(ch byte) bool { return set[ch] },
	}
}

// NoneOf matches any byte not in chars.
func NoneOf(chars string) Parser[byte] {
	set := newByteSet(chars)
	return byteParser{
		name:  "none of " + strconv.Quote(chars),
		match: func(ch byte) bool { return !set[ch] },
	}
}

// Blank matches a space or a tab.
func Blank() Parser[byte] {
	return byteParser{
		name:  "blank",
		match: isBlank,
	}
}

// Letter matches an ASCII letter.
func Letter() Parser[byte] {
	return byteParser{name: "letter", match: isLetter}
}

// AlphaNum matches an ASCII letter or digit.
func AlphaNum() Parser[byte] {
	return byteParser{
		name:  "letter or digit",
		match: func(ch byte) bool { return isLetter(ch) || isDigit(ch) },
	}
}

// Digit matches an ASCII decimal digit.
func Digit() Parser[byte] {
	return byteParser{name: "digit", match: isDigit}
}

func isBlank(ch byte) bool  { return ch == ' ' || ch == '\t' }
func isDigit(ch byte) bool  { return '0' <= ch && ch <= '9' }
func isLetter(ch byte) bool { return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' }

type eofParser struct{}

func (eofParser) Parse(s *Stream) (Unit, error) {
	if s.Failed() {
		return Unit{}, ErrStreamFailed
	}
	if !s.AtEnd() {
		s.Fail("end of input")
	}
	return Unit{}, nil
}

// EOF succeeds only at end of input. It never consumes.
func EOF() Parser[Unit] {
	return eofParser{}
}

type literalParser struct {
	text string
	name string
}

func (p literalParser) Parse(s *Stream) (string, error) {
	if s.Failed() {
		return "", ErrStreamFailed
	}
	m := markPosition(s)
	for i := 0; i < len(p.text); i++ {
		ch, ok := s.Peek()
		if !ok || ch != p.text[i] {
			s.Fail(p.name)
			return returnOrEscalate(s, m, "")
		}
		s.Consume()
	}
	return p.text, nil
}

// Literal matches text byte by byte. A mismatch after the first byte is an
// error failure; wrap it in Try to backtrack instead.
func Literal(text string) Parser[string] {
	return literalParser{text: text, name: strconv.Quote(text)}
}

// SkipChar matches c and discards it.
func SkipChar(c byte) Parser[Unit] {
	return Skip(Char(c))
}

// SkipString matches text and discards it.
func SkipString(text string) Parser[Unit] {
	return Skip(Literal(text))
}

// Blanks consumes any number of spaces and tabs. It never fails, and it
// adds nothing to what is reported as expected after it.
func Blanks() Parser[Unit] {
	return SkipMany(Label(Blank(), ""))
}
