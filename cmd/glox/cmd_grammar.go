package main

import (
	"fmt"
	"io"
	"reflect"

	"github.com/ltungv/lox/glox/internal/grammar"
	"github.com/spf13/cobra"
)

func newGrammarCmd(a *app) *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of the language",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !verify {
				_, err := fmt.Fprint(cmd.OutOrStdout(), grammar.Source)
				return err
			}

			s := a.styles()
			g, err := grammar.Verify()
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err, s)
				return &exitError{code: exitDataErr}
			}
			fmt.Fprintln(
				cmd.OutOrStdout(),
				s.ok("ok"),
				fmt.Sprintf("%d productions reachable from %s", len(grammar.Productions(g)), grammar.Start),
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "check that the grammar is complete instead of printing it")

	return cmd
}

// printErrors prints each error of an error list on its own line
func printErrors(w io.Writer, err error, s styles) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, s.err(fmt.Sprint(v.Index(i).Interface())))
		}
		return
	}
	fmt.Fprintln(w, s.err(err.Error()))
}
