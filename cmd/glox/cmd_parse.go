package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ltungv/lox/glox/internal/ast"
	"github.com/ltungv/lox/glox/internal/config"
	"github.com/ltungv/lox/glox/internal/lox"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	var outputFormat string
	var expression bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a script and print its syntax tree",
		Long: `Parse a script and print its syntax tree.

The script is read from standard input when no file is given or the file
is "-". Syntax errors are printed to standard error and nothing is printed
to standard output.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := a.cfg.Format
			if cmd.Flags().Changed("format") {
				format = outputFormat
			}
			if err := checkFormat(format); err != nil {
				return err
			}

			src, name, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			reporter := newConsoleReporter(cmd.ErrOrStderr(), name, a.styles())
			if expression {
				expr := lox.RunExpression(src, reporter, a.cfg.Options())
				if reporter.HadError() {
					return &exitError{code: exitDataErr}
				}
				return printExpr(cmd.OutOrStdout(), expr, format)
			}

			stmts := lox.Run(src, reporter, a.cfg.Options())
			if reporter.HadError() {
				return &exitError{code: exitDataErr}
			}
			return printProgram(cmd.OutOrStdout(), stmts, format)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", config.FormatSExpr, "output format (sexpr, source, json)")
	cmd.Flags().BoolVarP(&expression, "expression", "e", false, "parse the input as a single expression")

	return cmd
}

// readSource returns the script named by args and the name to report errors
// under, standard input has no name.
func readSource(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		bytes, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", &exitError{exitIOErr, fmt.Errorf("read stdin: %w", err)}
		}
		return string(bytes), "", nil
	}

	bytes, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", &exitError{exitIOErr, fmt.Errorf("read script: %w", err)}
	}
	return string(bytes), args[0], nil
}

func checkFormat(format string) error {
	switch format {
	case config.FormatSExpr, config.FormatSource, config.FormatJSON:
		return nil
	}
	return &exitError{exitUsage, fmt.Errorf("unknown format: %s", format)}
}

func printProgram(w io.Writer, stmts []ast.Stmt, format string) error {
	switch format {
	case config.FormatSource:
		_, err := fmt.Fprint(w, ast.NewSourcePrinter("  ").Print(stmts))
		return err
	case config.FormatJSON:
		return ast.EncodeJSON(w, stmts)
	}
	if len(stmts) == 0 {
		return nil
	}
	printer := &ast.Printer{}
	_, err := fmt.Fprintln(w, printer.PrintProgram(stmts))
	return err
}

func printExpr(w io.Writer, expr ast.Expr, format string) error {
	switch format {
	case config.FormatSource:
		_, err := fmt.Fprintln(w, ast.NewSourcePrinter("  ").PrintExpr(expr))
		return err
	case config.FormatJSON:
		return ast.EncodeExprJSON(w, expr)
	}
	printer := &ast.Printer{}
	_, err := fmt.Fprintln(w, printer.Print(expr))
	return err
}
