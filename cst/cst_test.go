package cst

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dhamidi/comb/parsec"
)

func pos(offset, line, column int) parsec.Position {
	return parsec.Position{Offset: offset, Line: line, Column: column}
}

func sample() *Node {
	a := NewTerminal("ident", "a", Span{pos(0, 1, 1), pos(1, 1, 2)})
	b := NewTerminal("ident", "b", Span{pos(4, 1, 5), pos(5, 1, 6)})
	return NewNonTerminal("and", a, b)
}

func TestAddChildGrowsSpan(t *testing.T) {
	n := sample()
	want := Span{pos(0, 1, 1), pos(5, 1, 6)}
	if n.Span != want {
		t.Errorf("Span = %+v, want %+v", n.Span, want)
	}

	n.AddChild(nil)
	if len(n.Children) != 2 {
		t.Errorf("len(Children) = %d, want 2", len(n.Children))
	}
}

func TestIsTerminal(t *testing.T) {
	if NewNonTerminal("empty").IsTerminal() {
		t.Error("empty non-terminal reported as terminal")
	}
	if !NewTerminal("ident", "", Span{}).IsTerminal() {
		t.Error("terminal reported as non-terminal")
	}
}

func TestFind(t *testing.T) {
	n := NewNonTerminal("pair", NewTerminal("key", "k", Span{}), NewTerminal("value", "v", Span{}))
	if got := n.Find("value"); got == nil || got.Text != "v" {
		t.Errorf("Find(value) = %v", got)
	}
	if got := n.Find("missing"); got != nil {
		t.Errorf("Find(missing) = %v, want nil", got)
	}
}

func TestString(t *testing.T) {
	want := "and @1:1\n  ident \"a\" @1:1\n  ident \"b\" @1:5\n"
	if got := sample().String(); got != want {
		t.Errorf("String() mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(sample())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	want := map[string]any{
		"kind": "and",
		"span": map[string]any{
			"start": map[string]any{"offset": 0.0, "line": 1.0, "column": 1.0},
			"end":   map[string]any{"offset": 5.0, "line": 1.0, "column": 6.0},
		},
		"children": []any{
			map[string]any{
				"kind": "ident",
				"text": "a",
				"span": map[string]any{
					"start": map[string]any{"offset": 0.0, "line": 1.0, "column": 1.0},
					"end":   map[string]any{"offset": 1.0, "line": 1.0, "column": 2.0},
				},
			},
			map[string]any{
				"kind": "ident",
				"text": "b",
				"span": map[string]any{
					"start": map[string]any{"offset": 4.0, "line": 1.0, "column": 5.0},
					"end":   map[string]any{"offset": 5.0, "line": 1.0, "column": 6.0},
				},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}
