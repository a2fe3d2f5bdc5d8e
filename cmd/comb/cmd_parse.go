package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/comb/format"
	"github.com/dhamidi/comb/grammars"
	"github.com/dhamidi/comb/parsec"
)

func newParseCmd() *cobra.Command {
	var grammarName string
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a file and print its syntax tree",
		Long: `Parse a file with one of the bundled grammars and print its syntax tree.

If no file is provided, reads from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammars.Lookup(grammarName)
			if err != nil {
				return err
			}
			encoder, err := format.New(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			src, name, closeSrc, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeSrc()

			tree, err := parsec.ParseReader(g.Root, src, parsec.WithFile(name))
			if err != nil {
				if outputFormat == "json" {
					if jerr := format.EncodeError(cmd.OutOrStdout(), err); jerr != nil {
						return fmt.Errorf("encode error: %w", jerr)
					}
				}
				return fmt.Errorf("parse %s: %w", name, err)
			}

			if err := encoder.Encode(tree); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	addGrammarFlag(cmd, &grammarName)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format ("+strings.Join(format.Names, ", ")+")")

	return cmd
}

func addGrammarFlag(cmd *cobra.Command, name *string) {
	cmd.Flags().StringVarP(name, "grammar", "g", "", "grammar to parse with ("+strings.Join(grammars.Names(), ", ")+")")
	cmd.MarkFlagRequired("grammar")
}

// openInput opens the named file, or buffers stdin, which cannot seek.
func openInput(cmd *cobra.Command, args []string) (io.ReadSeeker, string, func(), error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return bytes.NewReader(data), "<stdin>", func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", nil, fmt.Errorf("open file: %w", err)
	}
	return f, args[0], func() { f.Close() }, nil
}
