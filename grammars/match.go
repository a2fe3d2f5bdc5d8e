package grammars

import (
	"github.com/dhamidi/comb/cst"
	"github.com/dhamidi/comb/parsec"
)

// Match parses match patterns over named tokens:
//
//	keyword & !{if|else} | (name & value)
//
// An identifier starts with a letter or underscore. "&" requires both sides,
// "|" either side and binds looser than "&". "!{a|b}" is an alias set:
// any one of the listed names. Blanks may separate all tokens.
func Match() Grammar {
	pattern := parsec.NewRule[*cst.Node]("pattern")

	identStart := parsec.Or(parsec.Char('_'), parsec.Letter())
	identRest := parsec.ManyString(parsec.Or(parsec.Char('_'), parsec.AlphaNum()))
	ident := lexeme(token("identifier", parsec.Label(parsec.Concat(identStart, identRest), "identifier")))

	aliases := lexeme(spanned("aliases", parsec.Between(
		lexeme(parsec.SkipString("!{")),
		parsec.SepBy(ident, lexeme(parsec.SkipChar('|'))),
		parsec.SkipChar('}'),
	)))

	group := lexeme(spanned("group", parsec.Map(parsec.Between(
		lexeme(parsec.SkipChar('(')),
		parsec.Parser[*cst.Node](pattern),
		parsec.SkipChar(')'),
	), one)))

	term := parsec.Choice(ident, aliases, group)
	conjunction := list1("and", term, lexeme(parsec.SkipChar('&')))
	pattern.Define(list1("or", conjunction, lexeme(parsec.SkipChar('|'))))

	return Grammar{
		Name:        "match",
		Description: "token patterns with &, | and !{alias|sets}",
		Root:        parsec.Complete(parsec.Then(parsec.Blanks(), parsec.Parser[*cst.Node](pattern))),
	}
}
