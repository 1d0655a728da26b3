package arith

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.arith.dev/internal/test"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		data   string
		expect int64
	}{
		{"0", 0},
		{"42", 42},
		{"2 + 3", 5},
		{"2 - 3", -1},
		{"2 * 3", 6},
		{"6 / 2", 3},
		{"2 + 3 * 4", 14},
		{"10 - 6 / 2", 7},
		{"10 - 3 - 2", 5},
		{"100 / 10 / 5", 2},
		{"(2 + 3) * 4", 20},
		{"2 * (3 + 4)", 14},
		{"-(5 + 3)", -8},
		{"--5", 5},
		{"-+5", -5},
		{"+5", 5},
		{"7 / 2", 3},
		{"-7 / 2", -3},
		{"  10  +  2  ", 12},
		{"10+2", 12},
		{"((((1))))", 1},
	}

	for _, c := range cases {
		got, err := Evaluate(c.data, nil)
		assert.NoError(t, err, c.data)
		assert.Equal(t, c.expect, got, c.data)
	}
}

func TestEvaluateWithRegistry(t *testing.T) {
	funcs := Registry{
		"max": func(args ...int64) (int64, error) {
			if len(args) == 0 {
				return 0, errors.New("max needs at least one argument")
			}

			v := args[0]
			for _, arg := range args[1:] {
				if arg > v {
					v = arg
				}
			}

			return v, nil
		},
		"random": func(args ...int64) (int64, error) {
			return 42, nil
		},
	}

	cases := []struct {
		data   string
		expect int64
	}{
		{"max(10, 20)", 20},
		{"max(1, 2, 3, 4)", 4},
		{"random()", 42},
		{"max(random(), 10)", 42},
		{"1 + max(2, 3) * 2", 7},
		{"max(1 + 1, 2 * 2)", 4},
	}

	for _, c := range cases {
		got, err := Evaluate(c.data, funcs)
		assert.NoError(t, err, c.data)
		assert.Equal(t, c.expect, got, c.data)
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	for _, data := range []string{"5 / 0", "0 / 0", "1 / (3 - 3)"} {
		_, err := Evaluate(data, nil)

		var divErr *DivisionByZeroError
		assert.True(t, errors.As(err, &divErr), data)
	}
}

func TestEvaluateUnknownFunction(t *testing.T) {
	_, err := Evaluate("max(1, 2)", nil)

	var unknownErr *UnknownFunctionError
	assert.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "max", unknownErr.Name)

	_, err = Evaluate("min(1)", Registry{"max": func(args ...int64) (int64, error) {
		return 0, nil
	}})

	assert.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "min", unknownErr.Name)
}

func TestEvaluateWrapsFunctionFailure(t *testing.T) {
	cause := errors.New("boom")
	funcs := Registry{
		"fail": func(args ...int64) (int64, error) {
			return 0, cause
		},
	}

	_, err := Evaluate("1 + fail(2)", funcs)

	var invErr *FunctionInvocationError
	assert.True(t, errors.As(err, &invErr))
	assert.Equal(t, "fail", invErr.Name)
	assert.True(t, errors.Is(err, cause))
}

func TestEvaluateArgumentOrder(t *testing.T) {
	var calls []string
	record := func(name string, value int64) Func {
		return func(args ...int64) (int64, error) {
			calls = append(calls, name)
			return value, nil
		}
	}

	funcs := Registry{
		"a": record("a", 1),
		"b": record("b", 2),
		"c": record("c", 3),
		"ignore": func(args ...int64) (int64, error) {
			return 0, nil
		},
	}

	// Binary operands evaluate left first, arguments left to right
	_, err := Evaluate("a() + ignore(b(), c())", funcs)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, calls)
}

func TestEvalHandBuiltTree(t *testing.T) {
	// (2+3)*4 assembled directly, without the parser
	expr := &BinaryExpr{
		Operation: BinaryMultiplication,
		Op1: &BinaryExpr{
			Operation: BinaryAddition,
			Op1:       &IntegerLiteral{Value: 2},
			Op2:       &IntegerLiteral{Value: 3},
		},
		Op2: &IntegerLiteral{Value: 4},
	}

	got, err := NewEvaluator(nil).Eval(expr)
	assert.NoError(t, err)
	assert.Equal(t, int64(20), got)
}

func TestEvaluateDoesNotMutateRegistry(t *testing.T) {
	funcs := Registry{
		"one": func(args ...int64) (int64, error) {
			return 1, nil
		},
	}

	_, err := Evaluate("one() + two()", funcs)
	assert.Error(t, err)
	assert.Len(t, funcs, 1)
}

func ExampleEvaluate() {
	funcs := Registry{
		"max": func(args ...int64) (int64, error) {
			v := args[0]
			for _, arg := range args[1:] {
				if arg > v {
					v = arg
				}
			}

			return v, nil
		},
	}

	v, err := Evaluate("2 + max(3, 4) * 2", funcs)
	if err != nil {
		panic(err)
	}

	fmt.Println(v)
	// Output: 10
}

// Use a package-level variable to avoid compiler optimisation
var benchValue int64

func benchmarkEvaluate(size int, b *testing.B) {
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		data := test.GetRandomExpr(size)

		var err error
		b.StartTimer()

		benchValue, err = Evaluate(data, nil)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluate100(b *testing.B) {
	benchmarkEvaluate(100, b)
}

func BenchmarkEvaluate1000(b *testing.B) {
	benchmarkEvaluate(1000, b)
}
