package grammars

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAll(t *testing.T) {
	if diff := cmp.Diff([]string{"csv", "expr", "match"}, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	for _, g := range All() {
		if g.Description == "" || g.Root == nil {
			t.Errorf("grammar %q is incomplete", g.Name)
		}
	}
}

func TestLookup(t *testing.T) {
	g, err := Lookup("expr")
	if err != nil {
		t.Fatalf("Lookup(expr) error: %v", err)
	}
	if g.Name != "expr" {
		t.Errorf("Name = %q, want %q", g.Name, "expr")
	}

	_, err = Lookup("cobol")
	if err == nil || !strings.Contains(err.Error(), "csv, expr, match") {
		t.Errorf("Lookup(cobol) error = %v, want list of grammars", err)
	}
}
