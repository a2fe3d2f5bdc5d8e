package parsec

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestByteLeaves(t *testing.T) {
	tests := []struct {
		name  string
		p     Parser[byte]
		match string
		miss  string
	}{
		{"char", Char('a'), "a", "b"},
		{"any", AnyChar(), "\x00", ""},
		{"one of", OneOf("+-"), "-", "*"},
		{"none of", NoneOf("\"\n"), "x", "\""},
		{"blank", Blank(), "\t", "\n"},
		{"letter", Letter(), "Q", "7"},
		{"alnum", AlphaNum(), "7", "_"},
		{"digit", Digit(), "0", "a"},
		{"satisfy", Satisfy("vowel", func(b byte) bool { return b == 'e' }), "e", "f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStringStream(tt.match)
			v, err := tt.p.Parse(s)
			if err != nil || s.Failed() || v != tt.match[0] {
				t.Errorf("match: Parse() = %q, %v, Failed() = %v", v, err, s.Failed())
			}

			s = NewStringStream(tt.miss)
			_, err = tt.p.Parse(s)
			if err != nil || !s.Failed() {
				t.Errorf("miss: error = %v, Failed() = %v, want weak failure", err, s.Failed())
			}
			if s.Offset() != 0 {
				t.Errorf("miss: Offset() = %d, want 0", s.Offset())
			}
		})
	}
}

func TestLeafOnFailedStream(t *testing.T) {
	leaves := map[string]func(*Stream) error{
		"char":    func(s *Stream) error { _, err := Char('a').Parse(s); return err },
		"literal": func(s *Stream) error { _, err := Literal("a").Parse(s); return err },
		"eof":     func(s *Stream) error { _, err := EOF().Parse(s); return err },
	}
	for name, parse := range leaves {
		t.Run(name, func(t *testing.T) {
			s := NewStringStream("a")
			s.SetFailed()
			if err := parse(s); !errors.Is(err, ErrStreamFailed) {
				t.Errorf("error = %v, want %v", err, ErrStreamFailed)
			}
		})
	}
}

func TestEOF(t *testing.T) {
	if _, err := ParseString(EOF(), ""); err != nil {
		t.Errorf("EOF on empty input: %v", err)
	}

	_, err := ParseString(EOF(), "x")
	pe := asError(t, err)
	if pe.Tier != WeakFailure {
		t.Errorf("Tier = %v, want %v", pe.Tier, WeakFailure)
	}
	if got, want := pe.Error(), "1:1: unexpected 'x', expected end of input"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorMessageAtEndOfInput(t *testing.T) {
	_, err := ParseString(Then(Char('a'), Char('b')), "a", WithFile("in.txt"))
	if got, want := err.Error(), "in.txt:1:2: unexpected end of input, expected 'b'"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestQuoteByte(t *testing.T) {
	tests := map[byte]string{
		'a':  "'a'",
		'\n': `'\n'`,
		0xe9: `'\xe9'`,
	}
	for ch, want := range tests {
		if got := quoteByte(ch); got != want {
			t.Errorf("quoteByte(%#x) = %s, want %s", ch, got, want)
		}
	}
}

func TestBlanksAddNoExpectation(t *testing.T) {
	_, err := ParseString(Then(Blanks(), Char('a')), "  x")
	pe := asError(t, err)
	if diff := cmp.Diff([]string{"'a'"}, pe.Expected); diff != "" {
		t.Errorf("Expected mismatch (-want +got):\n%s", diff)
	}
}

func TestLabelKeepsEarlierExpectations(t *testing.T) {
	p := Then(SkipMany(Digit()), Label(Char(';'), "terminator"))
	_, err := ParseString(p, "12x")
	pe := asError(t, err)
	if diff := cmp.Diff([]string{"digit", "terminator"}, pe.Expected); diff != "" {
		t.Errorf("Expected mismatch (-want +got):\n%s", diff)
	}
}
