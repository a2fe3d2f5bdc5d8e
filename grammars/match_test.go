package grammars

import (
	"testing"

	"github.com/dhamidi/comb/parsec"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a", `identifier "a" @1:1
`},
		{"_x1 & y", `and @1:1
  identifier "_x1" @1:1
  identifier "y" @1:7
`},
		{"a & b | c", `or @1:1
  and @1:1
    identifier "a" @1:1
    identifier "b" @1:5
  identifier "c" @1:9
`},
		{"!{if | else}", `aliases @1:1
  identifier "if" @1:3
  identifier "else" @1:8
`},
		{" a & (b | c) ", `and @1:2
  identifier "a" @1:2
  group @1:6
    or @1:7
      identifier "b" @1:7
      identifier "c" @1:11
`},
	}

	g := Match()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			root, err := parsec.ParseString(g.Root, tt.input)
			if err != nil {
				t.Fatalf("ParseString() error: %v", err)
			}
			if got := root.String(); got != tt.want {
				t.Errorf("String() = \n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestMatchErrors(t *testing.T) {
	tests := []struct {
		input string
		msg   string
	}{
		{"a &", `1:4: unexpected end of input, expected identifier, "!{" or '('`},
		{"a | 1", `1:5: unexpected '1', expected identifier, "!{" or '('`},
		{"!{a b}", "1:5: unexpected 'b', expected '|' or '}'"},
		{"!x", `1:2: unexpected 'x', expected "!{"`},
	}

	g := Match()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := parsec.ParseString(g.Root, tt.input)
			if !parsec.IsErrorFailure(err) {
				t.Fatalf("error = %v, want error failure", err)
			}
			if err.Error() != tt.msg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.msg)
			}
		})
	}
}
