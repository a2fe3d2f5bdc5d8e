package lsp

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/comb/grammars"
)

func TestToPosition(t *testing.T) {
	text := "ab\n\tcd\n"
	tests := []struct {
		offset int
		want   protocol.Position
	}{
		{0, protocol.Position{Line: 0, Character: 0}},
		{2, protocol.Position{Line: 0, Character: 2}},
		{3, protocol.Position{Line: 1, Character: 0}},
		{5, protocol.Position{Line: 1, Character: 2}},
		{7, protocol.Position{Line: 2, Character: 0}},
		{99, protocol.Position{Line: 2, Character: 0}},
	}
	for _, tt := range tests {
		if got := toPosition(text, tt.offset); got != tt.want {
			t.Errorf("toPosition(%d) = %+v, want %+v", tt.offset, got, tt.want)
		}
	}
}

func TestToOffset(t *testing.T) {
	text := "ab\n\tcd\n"
	tests := []struct {
		pos  protocol.Position
		want int
	}{
		{protocol.Position{Line: 0, Character: 1}, 1},
		{protocol.Position{Line: 0, Character: 9}, 2},
		{protocol.Position{Line: 1, Character: 2}, 5},
		{protocol.Position{Line: 2, Character: 0}, 7},
		{protocol.Position{Line: 5, Character: 0}, 7},
	}
	for _, tt := range tests {
		if got := toOffset(text, tt.pos); got != tt.want {
			t.Errorf("toOffset(%+v) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestDiagnostics(t *testing.T) {
	docs := newDocuments(grammars.Expr())

	ok := docs.update("file:///tmp/ok.expr", 1, "1 + 2")
	if got := ok.diagnostics(); got == nil || len(got) != 0 {
		t.Errorf("diagnostics() = %#v, want empty non-nil slice", got)
	}

	bad := docs.update("file:///tmp/bad.expr", 2, "1 + (2 * )")
	got := bad.diagnostics()
	if len(got) != 1 {
		t.Fatalf("len(diagnostics()) = %d, want 1", len(got))
	}
	want := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 9},
		End:   protocol.Position{Line: 0, Character: 10},
	}
	if diff := cmp.Diff(want, got[0].Range); diff != "" {
		t.Errorf("Range mismatch (-want +got):\n%s", diff)
	}
	if got[0].Message != "unexpected ')', expected factor" {
		t.Errorf("Message = %q", got[0].Message)
	}
	if *got[0].Severity != protocol.DiagnosticSeverityError {
		t.Errorf("Severity = %v, want error", *got[0].Severity)
	}
}

func TestDiagnosticAtEndOfInput(t *testing.T) {
	d := toDiagnostic("1 +", mustFail(t, "1 +"))
	want := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 3},
		End:   protocol.Position{Line: 0, Character: 3},
	}
	if diff := cmp.Diff(want, d.Range); diff != "" {
		t.Errorf("Range mismatch (-want +got):\n%s", diff)
	}
}

func TestDiagnosticOnLaterLine(t *testing.T) {
	doc := newDocuments(grammars.CSV()).update("mem", 1, "a,b\nc,\"d")
	got := doc.diagnostics()
	if len(got) != 1 {
		t.Fatalf("len(diagnostics()) = %d, want 1", len(got))
	}
	want := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 4},
		End:   protocol.Position{Line: 1, Character: 4},
	}
	if diff := cmp.Diff(want, got[0].Range); diff != "" {
		t.Errorf("Range mismatch (-want +got):\n%s", diff)
	}
	if want := "unexpected end of input, expected quoted character or closing quote"; got[0].Message != want {
		t.Errorf("Message = %q, want %q", got[0].Message, want)
	}
}

func TestDiagnosticForOtherErrors(t *testing.T) {
	d := toDiagnostic("", errors.New("boom"))
	if d.Message != "boom" || d.Range != (protocol.Range{}) {
		t.Errorf("diagnostic = %+v", d)
	}
}

func mustFail(t *testing.T, text string) error {
	t.Helper()
	doc := newDocuments(grammars.Expr()).update("mem", 0, text)
	if doc.err == nil {
		t.Fatalf("%q parsed without error", text)
	}
	return doc.err
}

func TestDocumentsLifecycle(t *testing.T) {
	docs := newDocuments(grammars.CSV())
	uri := protocol.DocumentUri("file:///tmp/a.csv")

	docs.update(uri, 1, "a,b")
	if doc := docs.get(uri); doc == nil || doc.version != 1 || doc.err != nil {
		t.Fatalf("get() = %+v", doc)
	}
	docs.remove(uri)
	if doc := docs.get(uri); doc != nil {
		t.Errorf("get() after remove = %+v, want nil", doc)
	}
}

func TestHover(t *testing.T) {
	doc := newDocuments(grammars.Match()).update("mem", 1, "a & (b | cd)")

	h := hover(doc, protocol.Position{Line: 0, Character: 10})
	if h == nil {
		t.Fatal("hover() = nil")
	}
	content, ok := h.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("Contents = %T, want MarkupContent", h.Contents)
	}
	if want := `and > group > or > identifier "cd"`; content.Value != want {
		t.Errorf("Value = %q, want %q", content.Value, want)
	}
	wantRange := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 9},
		End:   protocol.Position{Line: 0, Character: 11},
	}
	if diff := cmp.Diff(wantRange, *h.Range); diff != "" {
		t.Errorf("Range mismatch (-want +got):\n%s", diff)
	}

	if h := hover(doc, protocol.Position{Line: 3, Character: 0}); h != nil {
		t.Errorf("hover() past the end = %+v, want nil", h)
	}
}
