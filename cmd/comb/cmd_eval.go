package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/comb/grammars"
	"github.com/dhamidi/comb/parsec"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate an integer arithmetic expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammars.Lookup("expr")
			if err != nil {
				return err
			}
			tree, err := parsec.ParseString(g.Root, strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			v, err := grammars.Eval(tree)
			if err != nil {
				return fmt.Errorf("eval: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}
