package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/ltungv/lox/glox/internal/lox"
	"github.com/spf13/cobra"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse lines interactively",
		Long: `Parse lines interactively and print their syntax tree.

A line ending with ';' or '}' is parsed as a list of statements, anything
else as a single expression.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.styles()
			out := cmd.OutOrStdout()
			reporter := newConsoleReporter(cmd.ErrOrStderr(), "", s)

			sc := bufio.NewScanner(cmd.InOrStdin())
			sc.Split(bufio.ScanLines)
			for {
				fmt.Fprint(out, s.prompt(">"), " ")
				if !sc.Scan() {
					break
				}
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					continue
				}

				if strings.HasSuffix(line, ";") || strings.HasSuffix(line, "}") {
					stmts := lox.Run(line, reporter, a.cfg.Options())
					if !reporter.HadError() {
						if err := printProgram(out, stmts, a.cfg.Format); err != nil {
							return err
						}
					}
				} else {
					expr := lox.RunExpression(line, reporter, a.cfg.Options())
					if !reporter.HadError() {
						if err := printExpr(out, expr, a.cfg.Format); err != nil {
							return err
						}
					}
				}
				reporter.Reset()
			}
			fmt.Fprintln(out)

			if err := sc.Err(); err != nil {
				return &exitError{exitIOErr, fmt.Errorf("read input: %w", err)}
			}
			return nil
		},
	}
}
