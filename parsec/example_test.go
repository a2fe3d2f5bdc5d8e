package parsec_test

import (
	"fmt"

	"github.com/dhamidi/comb/parsec"
)

func ExampleSepBy() {
	digits := parsec.SepBy(parsec.Digit(), parsec.SkipChar(','))
	v, err := parsec.ParseString(digits, "1,2,3")
	fmt.Printf("%q %v\n", v, err)
	// Output: "123" <nil>
}

func ExampleTry() {
	keyword := parsec.Or(
		parsec.Try(parsec.Literal("let")),
		parsec.Literal("loop"),
	)
	v, err := parsec.ParseString(keyword, "loop")
	fmt.Println(v, err)

	_, err = parsec.ParseString(parsec.Or(parsec.Literal("let"), parsec.Literal("loop")), "loop")
	fmt.Println(err)
	// Output:
	// loop <nil>
	// 1:2: unexpected 'o', expected "let"
}

func ExampleNewRule() {
	number := parsec.Map(parsec.Digit(), func(b byte) int { return int(b - '0') })
	plus := parsec.Map(parsec.SkipChar('+'), func(parsec.Unit) func(int, int) int {
		return func(a, b int) int { return a + b }
	})

	expr := parsec.NewRule[int]("expression")
	term := parsec.Or(number, parsec.Between(parsec.SkipChar('('), parsec.Parser[int](expr), parsec.SkipChar(')')))
	expr.Define(parsec.ChainLeft1(term, plus))

	v, err := parsec.ParseString(parsec.Complete(parsec.Parser[int](expr)), "1+(2+3)+4")
	fmt.Println(v, err)
	// Output: 10 <nil>
}
