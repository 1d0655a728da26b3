package arith

import "fmt"

// Func is a host-supplied callable invoked for FuncCall nodes. Arguments
// arrive fully evaluated, left to right. The language imposes no arity
// check; an argument-count mismatch is the function's own error to report.
type Func func(args ...int64) (int64, error)

// Registry maps function names to callables. The evaluator only reads it,
// so a registry may be shared between concurrent Evaluate calls when its
// functions tolerate that.
type Registry map[string]Func

// Evaluator walks expression trees against a fixed registry.
type Evaluator struct {
	funcs Registry
}

func NewEvaluator(funcs Registry) *Evaluator {
	return &Evaluator{funcs: funcs}
}

// Evaluate parses input and evaluates it in one step. A nil registry is
// treated as empty, so every function call fails with UnknownFunctionError.
func Evaluate(input string, funcs Registry) (int64, error) {
	expr, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return NewEvaluator(funcs).Eval(expr)
}

// Eval computes the value of expr. Operands are evaluated left to right and
// the first failure aborts the walk.
func (e *Evaluator) Eval(expr Expr) (int64, error) {
	switch n := expr.(type) {
	case *IntegerLiteral:
		return n.Value, nil
	case *UnaryExpr:
		return e.evalUnary(n)
	case *BinaryExpr:
		return e.evalBinary(n)
	case *FuncCall:
		return e.evalCall(n)
	default:
		return 0, fmt.Errorf("unhandled expression node %T", expr)
	}
}

func (e *Evaluator) evalUnary(n *UnaryExpr) (int64, error) {
	v, err := e.Eval(n.Operand)
	if err != nil {
		return 0, err
	}

	if n.Operation == UnaryNegative {
		return -v, nil
	}

	return v, nil
}

func (e *Evaluator) evalBinary(n *BinaryExpr) (int64, error) {
	lhs, err := e.Eval(n.Op1)
	if err != nil {
		return 0, err
	}

	rhs, err := e.Eval(n.Op2)
	if err != nil {
		return 0, err
	}

	switch n.Operation {
	case BinaryAddition:
		return lhs + rhs, nil
	case BinarySubtraction:
		return lhs - rhs, nil
	case BinaryMultiplication:
		return lhs * rhs, nil
	case BinaryDivision:
		if rhs == 0 {
			return 0, &DivisionByZeroError{}
		}

		// Truncates toward zero
		return lhs / rhs, nil
	default:
		return 0, fmt.Errorf("unhandled operation '%s'", n.Operation)
	}
}

func (e *Evaluator) evalCall(n *FuncCall) (int64, error) {
	fn, ok := e.funcs[n.Name]
	if !ok {
		return 0, &UnknownFunctionError{Name: n.Name}
	}

	args := make([]int64, len(n.Args))
	for i, arg := range n.Args {
		v, err := e.Eval(arg)
		if err != nil {
			return 0, err
		}

		args[i] = v
	}

	v, err := fn(args...)
	if err != nil {
		return 0, &FunctionInvocationError{Name: n.Name, Err: err}
	}

	return v, nil
}
