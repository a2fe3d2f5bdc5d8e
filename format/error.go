package format

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/dhamidi/comb/parsec"
)

type jsonError struct {
	Message  string        `json:"message"`
	Tier     string        `json:"tier,omitempty"`
	Start    *jsonPosition `json:"start,omitempty"`
	Pos      *jsonPosition `json:"position,omitempty"`
	Expected []string      `json:"expected,omitempty"`
	Found    string        `json:"found,omitempty"`
}

type jsonPosition struct {
	File   string `json:"file,omitempty"`
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func toJSONPosition(p parsec.Position) *jsonPosition {
	return &jsonPosition{File: p.File, Offset: p.Offset, Line: p.Line, Column: p.Column}
}

// ErrorJSON renders err as a JSON object. A *parsec.Error anywhere in err's
// chain contributes its positions and expectations.
func ErrorJSON(err error) ([]byte, error) {
	je := jsonError{Message: err.Error()}
	var pe *parsec.Error
	if errors.As(err, &pe) {
		je.Tier = pe.Tier.String()
		je.Start = toJSONPosition(pe.Start)
		je.Pos = toJSONPosition(pe.Pos)
		je.Expected = pe.Expected
		je.Found = pe.Found
	}
	return json.MarshalIndent(je, "", "  ")
}

// EncodeError writes ErrorJSON(err) and a newline to w.
func EncodeError(w io.Writer, err error) error {
	text, jerr := ErrorJSON(err)
	if jerr != nil {
		return jerr
	}
	_, werr := w.Write(append(text, '\n'))
	return werr
}
