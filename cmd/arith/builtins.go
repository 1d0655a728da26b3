package main

import (
	"errors"
	"fmt"

	"go.arith.dev/pkg"
)

// builtins is the registry exposed to expressions evaluated from the shell.
var builtins = arith.Registry{
	"min": builtinMin,
	"max": builtinMax,
	"abs": builtinAbs,
	"pow": builtinPow,
}

func builtinMin(args ...int64) (int64, error) {
	if len(args) == 0 {
		return 0, errors.New("min needs at least one argument")
	}

	v := args[0]
	for _, arg := range args[1:] {
		if arg < v {
			v = arg
		}
	}

	return v, nil
}

func builtinMax(args ...int64) (int64, error) {
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
}

func builtinAbs(args ...int64) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("abs takes exactly one argument, got %d", len(args))
	}

	if args[0] < 0 {
		return -args[0], nil
	}

	return args[0], nil
}

func builtinPow(args ...int64) (int64, error) {
	if len(args) != 2 {
		return 0, fmt.Errorf("pow takes exactly two arguments, got %d", len(args))
	}

	base, exp := args[0], args[1]
	if exp < 0 {
		return 0, errors.New("pow does not support negative exponents")
	}

	var v int64 = 1
	for i := int64(0); i < exp; i++ {
		v *= base
	}

	return v, nil
}
