package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/comb/grammars"
	"github.com/dhamidi/comb/lsp"
)

func newLSPCmd() *cobra.Command {
	var grammarName string
	var debug bool

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start a Language Server Protocol server reporting parse errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammars.Lookup(grammarName)
			if err != nil {
				return err
			}
			server := lsp.NewServer(g, lsp.WithVersion(version), lsp.WithDebug(debug))
			return server.RunStdio()
		},
	}

	addGrammarFlag(cmd, &grammarName)
	cmd.Flags().BoolVar(&debug, "debug", false, "log every protocol message")

	return cmd
}
