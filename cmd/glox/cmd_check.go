package main

import (
	"fmt"
	"os"

	"github.com/ltungv/lox/glox/internal/lox"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Report the syntax errors of one or more scripts",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.styles()
			failed, unreadable := 0, 0

			for _, path := range args {
				bytes, err := os.ReadFile(path)
				if err != nil {
					unreadable++
					fmt.Fprintln(cmd.ErrOrStderr(), s.file(path+":"), s.err(err.Error()))
					continue
				}

				reporter := newConsoleReporter(cmd.ErrOrStderr(), path, s)
				lox.Run(string(bytes), reporter, a.cfg.Options())
				if reporter.HadError() {
					failed++
					log.Debugf("%s: %d errors", path, reporter.count)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), s.ok("ok"), path)
			}

			switch {
			case unreadable != 0:
				return &exitError{code: exitIOErr}
			case failed != 0:
				return &exitError{code: exitDataErr}
			}
			return nil
		},
	}
}
