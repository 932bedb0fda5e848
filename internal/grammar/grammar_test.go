package grammar

import (
	"strings"
	"testing"
	"unicode"

	"github.com/ltungv/lox/glox/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/ebnf"
)

func TestVerify(t *testing.T) {
	g, err := Verify()
	require.NoError(t, err)

	names := Productions(g)
	assert := assert.New(t)
	assert.Contains(names, Start)
	for _, name := range []string{
		"Comma", "Assignment", "Ternary", "LogicOr", "LogicAnd", "Equality",
		"Comparison", "Term", "Factor", "Unary", "Primary",
		"BreakStmt", "ForStmt", "IfStmt", "PrintStmt", "WhileStmt", "Block",
	} {
		assert.Contains(names, name)
	}
}

// words collects the keyword-like tokens used by the syntactic productions
func words(expr ebnf.Expression, out map[string]bool) {
	switch x := expr.(type) {
	case ebnf.Alternative:
		for _, e := range x {
			words(e, out)
		}
	case ebnf.Sequence:
		for _, e := range x {
			words(e, out)
		}
	case *ebnf.Group:
		words(x.Body, out)
	case *ebnf.Option:
		words(x.Body, out)
	case *ebnf.Repetition:
		words(x.Body, out)
	case *ebnf.Token:
		if x.String != "" && unicode.IsLetter([]rune(x.String)[0]) {
			out[x.String] = true
		}
	}
}

func TestKeywordsMatchScanner(t *testing.T) {
	g, err := Parse()
	require.NoError(t, err)

	used := make(map[string]bool)
	for name, prod := range g {
		if unicode.IsUpper([]rune(name)[0]) {
			words(prod.Expr, used)
		}
	}

	assert := assert.New(t)
	assert.NotEmpty(used)
	for word := range used {
		_, ok := token.Keywords[word]
		assert.True(ok, "%q is not a keyword", word)
	}
}

func TestVerifyRejectsBrokenGrammar(t *testing.T) {
	testCases := []struct {
		src string
	}{
		{`Program = Missing .`},
		{`Program = "a" . Orphan = "b" .`},
		{`Program = "a"`},
	}

	for _, tc := range testCases {
		_, err := verify("broken.ebnf", strings.NewReader(tc.src))
		assert.Error(t, err, tc.src)
	}
}
