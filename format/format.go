// Package format renders syntax trees and parse errors.
package format

import (
	"encoding"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/comb/cst"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(node *cst.Node) error
}

// Names lists the formats New accepts.
var Names = []string{"tree", "json", "line"}

// New returns the encoder for the named format writing to w.
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "tree":
		return NewTreeEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "line":
		return NewLineEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(Names, ", "))
}
