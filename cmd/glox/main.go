package main

// This is the front end of the Lox programming language written in Go. It
// parses scripts and reports their syntax errors.

import (
	"errors"
	"fmt"
	"os"

	"github.com/ltungv/lox/glox/internal/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

const (
	exitIOErr   = 1
	exitUsage   = 64
	exitDataErr = 65
)

var log = commonlog.GetLogger("glox.cli")

// exitError ends the program with the given status. The wrapped error, if
// any, is printed first.
type exitError struct {
	code int
	err  error
}

func (err *exitError) Error() string {
	if err.err == nil {
		return fmt.Sprintf("exit status %d", err.code)
	}
	return err.err.Error()
}

func (err *exitError) Unwrap() error {
	return err.err
}

// app carries the settings shared by every subcommand
type app struct {
	configPath string
	verbosity  int
	maxDepth   int
	noColor    bool

	cfg *config.Config
}

func (a *app) load(cmd *cobra.Command) error {
	var cfg *config.Config
	var err error
	if a.configPath != "" {
		cfg, err = config.Load(a.configPath)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return &exitError{exitUsage, err}
	}

	if a.verbosity > 0 {
		cfg.Verbosity = a.verbosity
	}
	if cmd.Flags().Changed("max-depth") {
		if a.maxDepth < 0 {
			return &exitError{exitUsage, fmt.Errorf("--max-depth must not be negative, got %d", a.maxDepth)}
		}
		cfg.MaxDepth = a.maxDepth
	}
	if a.noColor {
		cfg.Color = false
	}

	commonlog.Configure(cfg.Verbosity, nil)
	log.Debugf("max depth %d, format %s", cfg.MaxDepth, cfg.Format)

	a.cfg = cfg
	return nil
}

func (a *app) styles() styles {
	return newStyles(a.cfg.Color)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "glox",
		Short:         "Parse and check Lox scripts",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &exitError{exitUsage, err}
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (default: .glox.toml, .glox.yaml or .glox.yml)")
	flags.CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity")
	flags.IntVar(&a.maxDepth, "max-depth", 0, "nesting bound, 0 disables it (default from config)")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newReplCmd(a))
	rootCmd.AddCommand(newLSPCmd(a))
	rootCmd.AddCommand(newGrammarCmd(a))

	return rootCmd
}

// usageArgs turns argument validation errors into usage errors
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &exitError{exitUsage, err}
		}
		return nil
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		code := exitIOErr
		var exit *exitError
		if errors.As(err, &exit) {
			code = exit.code
			err = exit.err
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(code)
	}
}
