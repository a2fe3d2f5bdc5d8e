package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/comb/cst"
)

type JSONEncoder struct {
	w    io.Writer
	node *cst.Node
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(node *cst.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.node, "", "  ")
}
