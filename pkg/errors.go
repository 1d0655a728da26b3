package arith

import "fmt"

// LexError reports a character the lexer does not recognize.
type LexError struct {
	Char rune
	Pos  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("offset %d: invalid symbol '%c'", e.Pos, e.Char)
}

// ParseError reports a token that does not fit the grammar. When Msg is
// empty the Expected/Got pair describes the mismatch.
type ParseError struct {
	Pos      int
	Expected TokenType
	Got      TokenType
	Msg      string
}

func (e *ParseError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("offset %d: %s", e.Pos, e.Msg)
	}

	return fmt.Sprintf("offset %d: expected %s, got %s", e.Pos, e.Expected, e.Got)
}

// DivisionByZeroError reports a '/' whose right operand evaluated to zero.
type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string {
	return "division by zero"
}

// UnknownFunctionError reports a call to a name absent from the registry.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function '%s'", e.Name)
}

// FunctionInvocationError wraps a failure raised by a registry function,
// keeping the function name and the original cause.
type FunctionInvocationError struct {
	Name string
	Err  error
}

func (e *FunctionInvocationError) Error() string {
	return fmt.Sprintf("function '%s' failed: %s", e.Name, e.Err)
}

func (e *FunctionInvocationError) Unwrap() error {
	return e.Err
}
