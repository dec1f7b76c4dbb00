package precedence_test

import (
	"fmt"

	"phpfront/precedence"
	"phpfront/render"
)

func ExampleParseArithmetic() {
	tree, err := precedence.ParseArithmetic("2 * 3 + 5")
	if err != nil {
		fmt.Println(err)
		return
	}
	v, err := precedence.Evaluate(tree)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(render.Compact(tree), "=", v)
	// Output:
	// (exp (op (op 2 * 3) + 5)) = 11
}
