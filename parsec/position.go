package parsec

import "fmt"

// tabWidth is the distance between tab stops.
const tabWidth = 8

// Position is a location in the input. Line and Column are 1-based; Column
// counts bytes with tab stops every eight columns.
type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func startPosition(file string) Position {
	return Position{File: file, Line: 1, Column: 1}
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether p was produced by a stream.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p *Position) advance(ch byte) {
	p.Offset++
	switch ch {
	case '\t':
		p.Column += tabWidth - (p.Column-1)%tabWidth
	case '\n':
		p.Line++
		p.Column = 1
	default:
		p.Column++
	}
}
