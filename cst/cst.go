// Package cst provides the concrete syntax trees built by the bundled
// grammars.
package cst

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dhamidi/comb/parsec"
)

// Span represents a range in the input.
type Span struct {
	Start parsec.Position
	End   parsec.Position
}

// Node represents a node in the concrete syntax tree.
// Terminals carry Text; interior nodes have Children.
type Node struct {
	Kind     string  // rule name or token kind
	Text     string  // matched text (terminals only)
	Children []*Node // child nodes (nil for terminals)
	Span     Span    // input span covering this node
}

// IsTerminal returns true if this is a leaf node.
func (n *Node) IsTerminal() bool {
	return n.Children == nil
}

// AddChild appends a child node and grows the span to cover it.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
	if len(n.Children) == 1 {
		n.Span.Start = child.Span.Start
	}
	n.Span.End = child.Span.End
}

// NewTerminal creates a terminal node for text matched over span.
func NewTerminal(kind, text string, span Span) *Node {
	return &Node{
		Kind: kind,
		Text: text,
		Span: span,
	}
}

// NewNonTerminal creates a non-terminal node with the given children.
func NewNonTerminal(kind string, children ...*Node) *Node {
	n := &Node{
		Kind:     kind,
		Children: make([]*Node, 0, len(children)),
	}
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

// Find returns the first child of the given kind, or nil.
func (n *Node) Find(kind string) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// String renders the tree one node per line, children indented by two
// spaces.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, 0)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Kind)
	if n.IsTerminal() {
		fmt.Fprintf(sb, " %q", n.Text)
	}
	fmt.Fprintf(sb, " @%d:%d\n", n.Span.Start.Line, n.Span.Start.Column)
	for _, c := range n.Children {
		c.write(sb, depth+1)
	}
}

type jsonNode struct {
	Kind     string      `json:"kind"`
	Span     *jsonSpan   `json:"span,omitempty"`
	Text     *string     `json:"text,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonSpan struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonPosition struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toJSON())
}

func (n *Node) toJSON() *jsonNode {
	jn := &jsonNode{
		Kind: n.Kind,
	}

	if n.Span.Start.Line != 0 || n.Span.End.Line != 0 {
		jn.Span = &jsonSpan{
			Start: toJSONPosition(n.Span.Start),
			End:   toJSONPosition(n.Span.End),
		}
	}

	if n.IsTerminal() {
		text := n.Text
		jn.Text = &text
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*jsonNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = child.toJSON()
		}
	}

	return jn
}

func toJSONPosition(p parsec.Position) jsonPosition {
	return jsonPosition{Offset: p.Offset, Line: p.Line, Column: p.Column}
}
