package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorOK      = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

type paint func(strs ...string) string

func plain(strs ...string) string {
	return strings.Join(strs, " ")
}

// styles holds how each kind of output is rendered
type styles struct {
	err    paint
	file   paint
	ok     paint
	prompt paint
}

func newStyles(color bool) styles {
	if !color {
		return styles{plain, plain, plain, plain}
	}
	return styles{
		err:    lipgloss.NewStyle().Foreground(colorError).Render,
		file:   lipgloss.NewStyle().Foreground(colorMuted).Bold(true).Render,
		ok:     lipgloss.NewStyle().Foreground(colorOK).Bold(true).Render,
		prompt: lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render,
	}
}

// consoleReporter prints each error on its own line, prefixed by the name of
// the file it was found in.
type consoleReporter struct {
	out    io.Writer
	file   string
	styles styles
	count  int
}

func newConsoleReporter(out io.Writer, file string, s styles) *consoleReporter {
	return &consoleReporter{out: out, file: file, styles: s}
}

func (reporter *consoleReporter) Report(err error) {
	reporter.count++
	if reporter.file != "" {
		fmt.Fprintln(reporter.out, reporter.styles.file(reporter.file+":"), reporter.styles.err(err.Error()))
		return
	}
	fmt.Fprintln(reporter.out, reporter.styles.err(err.Error()))
}

func (reporter *consoleReporter) HadError() bool {
	return reporter.count != 0
}

func (reporter *consoleReporter) Reset() {
	reporter.count = 0
}
