// Package parsec provides composable parser combinators over a positioned,
// seekable byte stream.
//
// # Overview
//
// A grammar is built directly in Go by composing parsers; there is no grammar
// file and no generation step. Each combinator is itself a Parser, so rules
// nest to any depth:
//
//	ident := parsec.Concat(
//	    parsec.Or(parsec.Char('_'), parsec.Letter()),
//	    parsec.ManyString(parsec.Or(parsec.Char('_'), parsec.AlphaNum())),
//	)
//	list := parsec.SepBy(ident, parsec.SkipChar(','))
//	names, err := parsec.ParseString(parsec.Complete(list), "a,b,c")
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Source    │────▶│   Stream    │────▶│   Parser    │
//	│ (ReadSeeker)│     │ (position)  │     │   (value)   │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                           │                   │
//	                           ▼                   ▼
//	                    ┌─────────────┐     ┌─────────────┐
//	                    │ Mark / Seek │     │  *Error     │
//	                    │ backtrack   │     │  tiering    │
//	                    └─────────────┘     └─────────────┘
//
// # Failures
//
// Parsing follows Parsec's two kinds of failure:
//
//   - A weak failure consumes nothing. The parser sets the stream's failure
//     flag and returns a nil error. Or, Choice and the repetition combinators
//     clear the flag and carry on.
//   - An error failure happens after input was consumed. The parser returns
//     an *Error with Tier ErrorFailure, which ends the parse.
//
// Consuming the first byte of an alternative commits to it, as in an LL(1)
// grammar. Try is the only way back: it rewinds the stream to where its
// parser began and turns the error failure into a weak one.
//
//	keyword := parsec.Or(
//	    parsec.Try(parsec.Literal("let")),
//	    parsec.Literal("loop"),
//	)
//
// Without Try, "loop" would never be attempted once "let" matched the 'l'.
//
// # Positions
//
// Stream tracks the byte offset, line and column of the next byte. A tab
// advances the column to the next tab stop (every eight columns), a newline
// starts the next line. Positions of an *Error point at the mismatch and at
// the start of the parser that failed.
//
// # Recursion
//
// Rule gives a grammar the indirection it needs to refer to itself:
//
//	expr := parsec.NewRule[int]("expression")
//	term := parsec.Or(number, parsec.Between(open, expr, close))
//	expr.Define(parsec.ChainLeft1(term, plus))
//
// Left-recursive rules recurse without consuming input and are not supported.
//
// # Thread Safety
//
// Parsers are immutable once built and may be shared between goroutines. A
// Stream belongs to one parse at a time.
package parsec
