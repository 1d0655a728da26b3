package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.arith.dev/pkg"
)

func TestBuiltins(t *testing.T) {
	cases := []struct {
		data   string
		fail   bool
		expect int64
	}{
		{"min(3, 1, 2)", false, 1},
		{"max(3, 1, 2)", false, 3},
		{"abs(-7)", false, 7},
		{"abs(7)", false, 7},
		{"pow(2, 10)", false, 1024},
		{"pow(5, 0)", false, 1},
		{"min()", true, 0},
		{"max()", true, 0},
		{"abs(1, 2)", true, 0},
		{"pow(2, -1)", true, 0},
	}

	for _, c := range cases {
		got, err := arith.Evaluate(c.data, builtins)
		if c.fail {
			assert.Error(t, err, c.data)
			continue
		}

		assert.NoError(t, err, c.data)
		assert.Equal(t, c.expect, got, c.data)
	}
}
