// Package arith evaluates arithmetic expressions over 64-bit integers.
//
// An expression is lexed, parsed by recursive descent into a tree, and
// walked to a single value. The four binary operators carry the usual
// precedence and associate left; unary sign nests freely. Division
// truncates toward zero and fails on a zero divisor. Callers may expose
// named functions to expressions through a Registry, resolved at
// evaluation time.
package arith
