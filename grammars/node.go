package grammars

import (
	"github.com/dhamidi/comb/cst"
	"github.com/dhamidi/comb/parsec"
)

// token wraps the text matched by p in a terminal node spanning it.
func token(kind string, p parsec.Parser[string]) parsec.Parser[*cst.Node] {
	return parsec.Func[*cst.Node](func(s *parsec.Stream) (*cst.Node, error) {
		start := s.Position()
		text, err := p.Parse(s)
		if err != nil || s.Failed() {
			return nil, err
		}
		return cst.NewTerminal(kind, text, cst.Span{Start: start, End: s.Position()}), nil
	})
}

// spanned wraps the nodes produced by p in a non-terminal whose span covers
// everything p consumed, delimiters included.
func spanned(kind string, p parsec.Parser[[]*cst.Node]) parsec.Parser[*cst.Node] {
	return parsec.Func[*cst.Node](func(s *parsec.Stream) (*cst.Node, error) {
		start := s.Position()
		children, err := p.Parse(s)
		if err != nil || s.Failed() {
			return nil, err
		}
		n := cst.NewNonTerminal(kind, children...)
		n.Span = cst.Span{Start: start, End: s.Position()}
		return n, nil
	})
}

// list1 parses one or more p separated by sep. A single element is returned
// as is; several are gathered under a node of the given kind.
func list1[S any](kind string, p parsec.Parser[*cst.Node], sep parsec.Parser[S]) parsec.Parser[*cst.Node] {
	rest := parsec.Many(parsec.Then(sep, p))
	return parsec.Chain(p, func(s *parsec.Stream, first *cst.Node) (*cst.Node, error) {
		more, err := rest.Parse(s)
		if err != nil || len(more) == 0 {
			return first, err
		}
		return cst.NewNonTerminal(kind, append([]*cst.Node{first}, more...)...), nil
	})
}

// lexeme skips the blanks after p.
func lexeme[T any](p parsec.Parser[T]) parsec.Parser[T] {
	return parsec.ThenSkip(p, parsec.Blanks())
}

func one(n *cst.Node) []*cst.Node {
	return []*cst.Node{n}
}
