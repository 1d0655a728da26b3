package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.arith.dev/pkg"
)

var astCmd = &cobra.Command{
	Use:   "ast \"EXPRESSION\"",
	Short: "Parse an expression and dump its tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

func runAST(cmd *cobra.Command, args []string) error {
	expr, err := arith.Parse(args[0])
	if err != nil {
		return err
	}

	spew.Fdump(cmd.OutOrStdout(), expr)
	return nil
}
