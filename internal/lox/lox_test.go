package lox

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ltungv/lox/glox/internal/ast"
	"github.com/ltungv/lox/glox/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messages(errs []error) []string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

func TestParse(t *testing.T) {
	testCases := []struct {
		src    string
		sexpr  string
		errors []string
	}{
		{"print 1;", "(print 1)", []string{}},
		{"var a = \"x\";\nprint a;", "(var a \"x\")\n(print a)", []string{}},
		{"", "", []string{}},
		{
			"print 1 +; @",
			"(error)",
			[]string{
				"[line 1] Error: Unexpected character.",
				"[line 1] Error at ';': Expect expression.",
			},
		},
		{
			"print \"oops;",
			"(error)",
			[]string{
				"[line 1] Error: Unterminated string.",
				"[line 1] Error at end: Expect expression.",
			},
		},
	}

	assert := assert.New(t)
	printer := &ast.Printer{}
	for _, tc := range testCases {
		stmts, errs := Parse(tc.src, DefaultOptions())

		assert.Equal(tc.sexpr, printer.PrintProgram(stmts), tc.src)
		assert.Equal(tc.errors, messages(errs), tc.src)
	}
}

func TestParseExpression(t *testing.T) {
	assert := assert.New(t)
	printer := &ast.Printer{}

	expr, errs := ParseExpression("1 + 2 * 3", DefaultOptions())
	require.NotNil(t, expr)
	assert.Empty(errs)
	assert.Equal("(+ 1 (* 2 3))", printer.Print(expr))

	expr, errs = ParseExpression("1 +", DefaultOptions())
	assert.Nil(expr)
	assert.Equal([]string{"[line 1] Error at end: Expect expression."}, messages(errs))
}

func TestParseMaxDepth(t *testing.T) {
	assert := assert.New(t)
	src := strings.Repeat("(", 100) + "1" + strings.Repeat(")", 100)

	expr, errs := ParseExpression(src, Options{MaxDepth: 10})
	assert.Nil(expr)
	require.Len(t, errs, 1)
	assert.Contains(errs[0].Error(), "Too much nesting.")

	expr, errs = ParseExpression(src, DefaultOptions())
	assert.NotNil(expr)
	assert.Empty(errs)
}

func TestRunReportsToReporter(t *testing.T) {
	var out bytes.Buffer
	reporter := report.NewSimpleReporter(&out)

	stmts := Run("break;\nprint 2;", reporter, DefaultOptions())

	assert := assert.New(t)
	assert.Len(stmts, 2)
	assert.True(reporter.HadError())
	assert.Equal("[line 1] Error at 'break': Illegal break statement.\n", out.String())
}
