package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.arith.dev/pkg"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens \"EXPRESSION\"",
	Short: "Dump the token stream of an expression",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func runTokens(cmd *cobra.Command, args []string) error {
	toks, err := arith.NewLexer(args[0]).Tokens()
	if err != nil {
		return err
	}

	for _, tok := range toks {
		fmt.Fprintf(cmd.OutOrStdout(), "%4d  %-14s %s\n", tok.Pos, tok.Typ, tok.Value)
	}

	return nil
}
