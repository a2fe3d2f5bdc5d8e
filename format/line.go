package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/comb/cst"
)

// LineEncoder writes one tab separated line per terminal: kind, start, end
// and the quoted text. It suits grep and cut better than the tree format.
type LineEncoder struct {
	w    io.Writer
	node *cst.Node
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(node *cst.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	if e.node != nil {
		e.writeNode(&sb, e.node)
	}
	return []byte(sb.String()), nil
}

func (e *LineEncoder) writeNode(sb *strings.Builder, n *cst.Node) {
	if n.IsTerminal() {
		fmt.Fprintf(sb, "%s\t%d:%d\t%d:%d\t%s\n",
			n.Kind,
			n.Span.Start.Line, n.Span.Start.Column,
			n.Span.End.Line, n.Span.End.Column,
			strconv.Quote(n.Text),
		)
		return
	}
	for _, c := range n.Children {
		e.writeNode(sb, c)
	}
}
