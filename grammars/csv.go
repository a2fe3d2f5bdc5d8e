package grammars

import (
	"github.com/dhamidi/comb/cst"
	"github.com/dhamidi/comb/parsec"
)

// CSV parses comma separated values.
//
// Records end at a newline (an optional carriage return before it is
// dropped). A field is either bare text without commas, quotes or line
// breaks, or quoted text in which a doubled quote stands for one quote and
// line breaks are kept. The tree is a "csv" node of "record" nodes whose
// children are "field" terminals holding the unquoted text.
func CSV() Grammar {
	bare := parsec.ManyString(parsec.Satisfy("field character", func(ch byte) bool {
		return ch != ',' && ch != '"' && ch != '\r' && ch != '\n'
	}))

	escapedQuote := parsec.Try(parsec.Then(parsec.Char('"'), parsec.Char('"')))
	quoted := parsec.Between(
		parsec.SkipChar('"'),
		parsec.ManyString(parsec.Label(parsec.Or(parsec.NoneOf(`"`), escapedQuote), "quoted character")),
		parsec.Label(parsec.SkipChar('"'), "closing quote"),
	)

	field := token("field", parsec.Or(quoted, bare))
	record := spanned("record", parsec.SepBy(field, parsec.SkipChar(',')))

	eol := parsec.Label(parsec.Skip(parsec.Then(parsec.SkipMany(parsec.Char('\r')), parsec.Char('\n'))), "end of line")
	line := parsec.ThenSkip(record, parsec.Or(eol, parsec.EOF()))

	file := spanned("csv", parsec.Many(line))

	return Grammar{
		Name:        "csv",
		Description: "comma separated values with quoted fields",
		Root:        parsec.Complete(file),
	}
}

// Records returns the field values of a tree produced by CSV.
func Records(root *cst.Node) [][]string {
	records := make([][]string, 0, len(root.Children))
	for _, r := range root.Children {
		fields := make([]string, 0, len(r.Children))
		for _, f := range r.Children {
			fields = append(fields, f.Text)
		}
		records = append(records, fields)
	}
	return records
}
