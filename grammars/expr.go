package grammars

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/dhamidi/comb/cst"
	"github.com/dhamidi/comb/parsec"
)

// Expr parses integer arithmetic: + - * / over decimal numbers, unary minus
// and parentheses, with blanks allowed between tokens. Operators of the same
// precedence associate to the left.
//
// Binary operations become "binary" nodes holding the left operand, an
// "operator" terminal and the right operand.
func Expr() Grammar {
	expression := parsec.NewRule[*cst.Node]("expression")
	factor := parsec.NewRule[*cst.Node]("factor")

	number := lexeme(token("number", parsec.Label(parsec.Concat(parsec.Digit(), parsec.ManyString(parsec.Digit())), "number")))

	group := lexeme(spanned("group", parsec.Map(parsec.Between(
		lexeme(parsec.SkipChar('(')),
		parsec.Parser[*cst.Node](expression),
		parsec.SkipChar(')'),
	), one)))

	negation := spanned("negate", parsec.Map(
		parsec.Then(lexeme(parsec.SkipChar('-')), parsec.Parser[*cst.Node](factor)),
		one,
	))

	factor.Define(parsec.Choice(number, group, negation))

	term := parsec.ChainLeft1(parsec.Parser[*cst.Node](factor), operator("*/"))
	expression.Define(parsec.ChainLeft1(term, operator("+-")))

	return Grammar{
		Name:        "expr",
		Description: "integer arithmetic with + - * / and parentheses",
		Root:        parsec.Complete(parsec.Then(parsec.Blanks(), parsec.Parser[*cst.Node](expression))),
	}
}

// operator matches one of ops and returns a function joining two operands
// into a binary node.
func operator(ops string) parsec.Parser[func(l, r *cst.Node) *cst.Node] {
	op := lexeme(token("operator", parsec.AsString(parsec.Label(parsec.OneOf(ops), "operator"))))
	return parsec.Map(op, func(o *cst.Node) func(l, r *cst.Node) *cst.Node {
		return func(l, r *cst.Node) *cst.Node {
			return cst.NewNonTerminal("binary", l, o, r)
		}
	})
}

var (
	// ErrDivisionByZero is returned by Eval for a division by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOverflow is returned by Eval when a result does not fit in an int64.
	ErrOverflow = errors.New("integer overflow")
)

// Eval computes the value of a tree produced by Expr.
func Eval(n *cst.Node) (int64, error) {
	switch n.Kind {
	case "number":
		v, err := strconv.ParseInt(n.Text, 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			err = ErrOverflow
		}
		if err != nil {
			return 0, fmt.Errorf("%s: %w", n.Span.Start, err)
		}
		return v, nil
	case "group":
		return Eval(n.Children[0])
	case "negate":
		v, err := Eval(n.Children[0])
		if err != nil {
			return 0, err
		}
		if v == math.MinInt64 {
			return 0, fmt.Errorf("%s: %w", n.Span.Start, ErrOverflow)
		}
		return -v, nil
	case "binary":
		l, err := Eval(n.Children[0])
		if err != nil {
			return 0, err
		}
		r, err := Eval(n.Children[2])
		if err != nil {
			return 0, err
		}
		op := n.Children[1]
		v, err := apply(op.Text, l, r)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op.Span.Start, err)
		}
		return v, nil
	}
	return 0, fmt.Errorf("%s: unexpected %s node", n.Span.Start, n.Kind)
}

// apply computes l op r, refusing results outside the int64 range.
func apply(op string, l, r int64) (int64, error) {
	switch op {
	case "+":
		if r > 0 && l > math.MaxInt64-r || r < 0 && l < math.MinInt64-r {
			return 0, ErrOverflow
		}
		return l + r, nil
	case "-":
		if r < 0 && l > math.MaxInt64+r || r > 0 && l < math.MinInt64+r {
			return 0, ErrOverflow
		}
		return l - r, nil
	case "*":
		if l == 0 || r == 0 {
			return 0, nil
		}
		if l == -1 && r == math.MinInt64 || r == -1 && l == math.MinInt64 {
			return 0, ErrOverflow
		}
		v := l * r
		if v/r != l {
			return 0, ErrOverflow
		}
		return v, nil
	case "/":
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		if l == math.MinInt64 && r == -1 {
			return 0, ErrOverflow
		}
		return l / r, nil
	}
	return 0, fmt.Errorf("unknown operator %q", op)
}
