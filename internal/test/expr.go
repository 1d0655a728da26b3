package test

import (
	"math/rand"
	"strconv"
	"strings"
)

var operators = []string{" + ", " - ", " * ", " / "}

// GetRandomExpr returns a syntactically valid expression chaining size
// binary operators. Operands stay in 1..99 so division never hits a zero
// divisor and the expression also evaluates cleanly.
func GetRandomExpr(size int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(rand.Intn(99) + 1))

	for i := 0; i < size; i++ {
		b.WriteString(operators[rand.Intn(len(operators))])

		if rand.Intn(8) == 0 {
			b.WriteString("-")
		}

		b.WriteString(strconv.Itoa(rand.Intn(99) + 1))
	}

	return b.String()
}
