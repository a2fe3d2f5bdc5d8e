package format

import (
	"io"

	"github.com/dhamidi/comb/cst"
)

// TreeEncoder writes a tree one node per line, children indented under their
// parent.
type TreeEncoder struct {
	w    io.Writer
	node *cst.Node
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(node *cst.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	if e.node == nil {
		return nil, nil
	}
	return []byte(e.node.String()), nil
}
