package lox

import (
	"github.com/ltungv/lox/glox/internal/ast"
	"github.com/ltungv/lox/glox/internal/parser"
	"github.com/ltungv/lox/glox/internal/report"
	"github.com/ltungv/lox/glox/internal/scanner"
)

// Options controls how a source is parsed.
type Options struct {
	// MaxDepth bounds the nesting of expressions and statements, zero or
	// less removes the bound.
	MaxDepth int
}

// DefaultOptions returns the options used when none are configured
func DefaultOptions() Options {
	return Options{MaxDepth: parser.DefaultMaxDepth}
}

func (opts Options) parserOptions() []parser.Option {
	return []parser.Option{parser.WithMaxDepth(opts.MaxDepth)}
}

// Run scans and parses a whole program. Diagnostics are sent to the given
// reporter as they are found, scanner errors first.
func Run(source string, reporter report.Reporter, opts Options) []ast.Stmt {
	tokens := scanner.New([]rune(source), reporter).Scan()
	return parser.New(tokens, reporter, opts.parserOptions()...).Parse()
}

// RunExpression scans and parses a single expression. It returns nil when no
// expression could be parsed.
func RunExpression(source string, reporter report.Reporter, opts Options) ast.Expr {
	tokens := scanner.New([]rune(source), reporter).Scan()
	return parser.New(tokens, reporter, opts.parserOptions()...).ParseExpression()
}

// Parse is like Run but returns the diagnostics instead of reporting them.
func Parse(source string, opts Options) ([]ast.Stmt, []error) {
	reporter := report.NewListReporter()
	stmts := Run(source, reporter, opts)
	return stmts, reporter.Errors()
}

// ParseExpression is like RunExpression but returns the diagnostics instead
// of reporting them.
func ParseExpression(source string, opts Options) (ast.Expr, []error) {
	reporter := report.NewListReporter()
	expr := RunExpression(source, reporter, opts)
	return expr, reporter.Errors()
}
