package main

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/comb/grammars"
	"github.com/dhamidi/comb/parsec"
)

func newCheckCmd() *cobra.Command {
	var grammarName string
	var jobs int

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check that files parse",
		Long: `Parse every file with the same grammar and report the ones that fail.

Files are parsed concurrently. The exit status is non-zero if any file fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammars.Lookup(grammarName)
			if err != nil {
				return err
			}

			errs := checkFiles(g, args, jobs)

			failed := 0
			for i, name := range args {
				if errs[i] != nil {
					failed++
					fmt.Fprintln(cmd.ErrOrStderr(), errs[i])
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", name)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed to parse", failed, len(args))
			}
			return nil
		},
	}

	addGrammarFlag(cmd, &grammarName)
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "number of files to parse at once")

	return cmd
}

// checkFiles parses each file with g using up to jobs goroutines. Every
// parse gets its own stream; the grammar's parsers are shared.
func checkFiles(g grammars.Grammar, names []string, jobs int) []error {
	log := commonlog.GetLogger("comb.check")
	if jobs < 1 {
		jobs = 1
	}

	errs := make([]error, len(names))
	sem := make(chan struct{}, jobs)
	var wg sync.WaitGroup
	for i, name := range names {
		i, name := i, name
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			errs[i] = checkFile(g, name)
			log.Debugf("%s: checked, error: %v", name, errs[i])
		}()
	}
	wg.Wait()
	return errs
}

func checkFile(g grammars.Grammar, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	if _, err := parsec.ParseReader(g.Root, f, parsec.WithFile(name)); err != nil {
		return err
	}
	return nil
}
