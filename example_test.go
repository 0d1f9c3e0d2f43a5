package calc_test

import (
	"errors"
	"fmt"
	"strings"

	calc "github.com/tarnan3751/Scientific-Calculator"
)

func ExampleEvaluate() {
	for _, src := range []string{"3+4*2", "(3+4)*2", "2^3^2", "sqrt(16)", "5/0"} {
		r, err := calc.Evaluate(src)
		if err != nil {
			fmt.Println(src, "error:", err)
			continue
		}
		fmt.Println(src, "=", r)
	}

	// Output:
	// 3+4*2 = 11
	// (3+4)*2 = 14
	// 2^3^2 = 64
	// sqrt(16) = 4
	// 5/0 error: 2: division by zero "/"
}

func ExampleToPostfix() {
	toks, _ := calc.Tokenize("sin(30)+2*pi")
	post, _ := calc.ToPostfix(toks)
	fmt.Println(calc.FormatPostfix(post))

	// Output:
	// 30 sin 2 pi * +
}

func ExampleToggledLabel() {
	var labels []string
	for _, label := range []string{"sin", "log", "ln", "sqrt"} {
		labels = append(labels, calc.ToggledLabel(label, true))
	}
	fmt.Println(strings.Join(labels, " "))

	// Output:
	// asin 10^x e^x sqrt
}

func ExampleKindOf() {
	_, err := calc.Evaluate("asin(2)")
	fmt.Println(calc.KindOf(err))
	fmt.Println(errors.Is(err, calc.ErrDomain))

	// Output:
	// argument outside domain
	// true
}
