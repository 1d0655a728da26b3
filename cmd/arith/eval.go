package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.arith.dev/pkg"
)

var evalCmd = &cobra.Command{
	Use:   "eval \"EXPRESSION\"",
	Short: "Evaluate an expression and print its value",
	Long:  `Eval computes the value of an expression. The builtin functions min, max, abs and pow are available`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	v, err := arith.Evaluate(args[0], builtins)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}
