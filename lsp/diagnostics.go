package lsp

import (
	"errors"
	"fmt"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/comb/cst"
	"github.com/dhamidi/comb/parsec"
)

// diagnostics returns the diagnostics for the last parse: none when it
// succeeded, otherwise one for the parse error.
func (doc *document) diagnostics() []protocol.Diagnostic {
	if doc.err == nil {
		return []protocol.Diagnostic{}
	}
	return []protocol.Diagnostic{toDiagnostic(doc.text, doc.err)}
}

func toDiagnostic(text string, err error) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	d := protocol.Diagnostic{
		Severity: &severity,
		Source:   &source,
		Message:  err.Error(),
	}

	var pe *parsec.Error
	if !errors.As(err, &pe) {
		return d
	}
	d.Message = describe(pe)
	start := toPosition(text, pe.Pos.Offset)
	end := start
	if pe.Pos.Offset < len(text) && text[pe.Pos.Offset] != '\n' {
		end.Character++
	}
	d.Range = protocol.Range{Start: start, End: end}
	return d
}

// describe renders pe without its position, which the range already carries.
func describe(pe *parsec.Error) string {
	return strings.TrimPrefix(pe.Error(), pe.Pos.String()+": ")
}

// toPosition converts a byte offset into a zero based line and byte column.
func toPosition(text string, offset int) protocol.Position {
	if offset > len(text) {
		offset = len(text)
	}
	line := strings.Count(text[:offset], "\n")
	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(offset - lineStart),
	}
}

// toOffset converts a zero based line and byte column into a byte offset.
// Positions past the end of a line are clamped to its end.
func toOffset(text string, pos protocol.Position) int {
	offset := 0
	for line := protocol.UInteger(0); line < pos.Line; line++ {
		i := strings.IndexByte(text[offset:], '\n')
		if i < 0 {
			return len(text)
		}
		offset += i + 1
	}
	end := strings.IndexByte(text[offset:], '\n')
	if end < 0 {
		end = len(text) - offset
	}
	return offset + min(int(pos.Character), end)
}

func hover(doc *document, pos protocol.Position) *protocol.Hover {
	offset := toOffset(doc.text, pos)
	path := enclosing(doc.tree, offset)
	if len(path) == 0 {
		return nil
	}

	kinds := make([]string, len(path))
	for i, n := range path {
		kinds[i] = n.Kind
	}
	inner := path[len(path)-1]
	value := strings.Join(kinds, " > ")
	if inner.IsTerminal() {
		value += fmt.Sprintf(" %q", inner.Text)
	}

	r := protocol.Range{
		Start: toPosition(doc.text, inner.Span.Start.Offset),
		End:   toPosition(doc.text, inner.Span.End.Offset),
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindPlainText,
			Value: value,
		},
		Range: &r,
	}
}

// enclosing returns the chain of nodes from n down to the innermost node
// whose span contains offset.
func enclosing(n *cst.Node, offset int) []*cst.Node {
	if n == nil || offset < n.Span.Start.Offset || offset >= n.Span.End.Offset {
		return nil
	}
	path := []*cst.Node{n}
	for _, c := range n.Children {
		if sub := enclosing(c, offset); sub != nil {
			return append(path, sub...)
		}
	}
	return path
}
