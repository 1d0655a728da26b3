package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "arith",
	Short:         "Integer arithmetic expression calculator",
	Long:          `arith evaluates integer arithmetic expressions with calls into a set of named functions`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(astCmd)

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
