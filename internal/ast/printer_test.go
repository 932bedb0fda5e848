package ast

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ltungv/lox/glox/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func op(typ token.Type, lexeme string) *token.Token {
	return token.New(typ, lexeme, nil, 1)
}

func ident(name string) *token.Token {
	return token.New(token.IDENTIFIER, name, nil, 1)
}

func TestPrintExpr(t *testing.T) {
	testCases := []struct {
		expr  Expr
		sexpr string
		src   string
	}{
		{NewLiteralExpr(3.14), "3.14", "3.14"},
		{NewLiteralExpr("a string"), `"a string"`, `"a string"`},
		{NewLiteralExpr(nil), "nil", "nil"},
		{NewLiteralExpr(true), "true", "true"},
		{
			NewBinaryExpr(
				op(token.STAR, "*"),
				NewUnaryExpr(op(token.MINUS, "-"), NewLiteralExpr(123.0)),
				NewGroupExpr(NewLiteralExpr(45.67))),
			"(* (- 123) (group 45.67))",
			"-123 * (45.67)",
		},
		{
			NewTernaryExpr(
				NewVarExpr(ident("a")),
				NewVarExpr(ident("b")),
				NewTernaryExpr(
					NewVarExpr(ident("c")),
					NewVarExpr(ident("d")),
					NewVarExpr(ident("e")))),
			"(?: a b (?: c d e))",
			"a ? b : c ? d : e",
		},
		{
			NewBinaryExpr(
				op(token.COMMA, ","),
				NewAssignExpr(ident("x"), NewLiteralExpr(1.0)),
				NewAssignExpr(ident("y"), NewLiteralExpr(2.0))),
			"(, (= x 1) (= y 2))",
			"x = 1, y = 2",
		},
		{
			NewLogicalExpr(
				op(token.OR, "or"),
				NewVarExpr(ident("a")),
				NewLogicalExpr(op(token.AND, "and"), NewVarExpr(ident("b")), NewVarExpr(ident("c")))),
			"(or a (and b c))",
			"a or b and c",
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		printer := &Printer{}
		assert.Equal(tc.sexpr, printer.Print(tc.expr))
		assert.Equal(tc.src, NewSourcePrinter("  ").PrintExpr(tc.expr))
	}
}

func TestPrintStmt(t *testing.T) {
	i := ident("i")
	stmts := []Stmt{
		NewBlockStmt([]Stmt{
			NewVarStmt(i, NewLiteralExpr(0.0)),
			NewWhileStmt(
				NewBinaryExpr(op(token.LESS, "<"), NewVarExpr(i), NewLiteralExpr(3.0)),
				NewBlockStmt([]Stmt{
					NewPrintStmt(NewVarExpr(i)),
					NewExprStmt(NewAssignExpr(i, NewBinaryExpr(op(token.PLUS, "+"), NewVarExpr(i), NewLiteralExpr(1.0)))),
				})),
		}),
		NewIfStmt(NewVarExpr(ident("a")), NewBreakStmt(op(token.BREAK, "break")), nil),
		NewIfStmt(NewVarExpr(ident("a")), NewPrintStmt(NewLiteralExpr(1.0)), NewPrintStmt(NewLiteralExpr(2.0))),
		NewVarStmt(ident("x"), nil),
		NewErrorStmt(op(token.PLUS, "+"), errors.New("boom")),
	}

	printer := &Printer{}
	assert.Equal(t, strings.Join([]string{
		"(block (var i 0) (while (< i 3) (block (print i) (expr (= i (+ i 1))))))",
		"(if a (break))",
		"(if a (print 1) (print 2))",
		"(var x)",
		"(error)",
	}, "\n"), printer.PrintProgram(stmts))

	assert.Equal(t, strings.Join([]string{
		"{",
		"  var i = 0;",
		"  while (i < 3) {",
		"    print i;",
		"    i = i + 1;",
		"  }",
		"}",
		"if (a) break;",
		"if (a) print 1; else print 2;",
		"var x;",
		"// error",
		"",
	}, "\n"), NewSourcePrinter("  ").Print(stmts))
}

func TestEncodeJSON(t *testing.T) {
	stmts := []Stmt{
		NewVarStmt(ident("x"), NewTernaryExpr(NewLiteralExpr(true), NewLiteralExpr(1.0), NewLiteralExpr("s"))),
		NewErrorStmt(op(token.SEMICOLON, ";"), errors.New("[line 1] Error at ';': Expect expression.")),
	}

	var out strings.Builder
	require.NoError(t, EncodeJSON(&out, stmts))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out.String()), &decoded))
	require.Len(t, decoded, 2)

	assert := assert.New(t)
	assert.Equal("Var", decoded[0]["type"])
	assert.Equal("x", decoded[0]["name"])
	initializer := decoded[0]["initializer"].(map[string]interface{})
	assert.Equal("Ternary", initializer["type"])
	assert.Equal(true, initializer["condition"].(map[string]interface{})["value"])
	assert.Equal("Error", decoded[1]["type"])
	assert.Equal("[line 1] Error at ';': Expect expression.", decoded[1]["error"])
}

func TestEncodeExprJSON(t *testing.T) {
	expr := NewBinaryExpr(op(token.PLUS, "+"), NewLiteralExpr(1.0), NewVarExpr(ident("a")))

	var out strings.Builder
	require.NoError(t, EncodeExprJSON(&out, expr))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out.String()), &decoded))

	assert := assert.New(t)
	assert.Equal("Binary", decoded["type"])
	assert.Equal("+", decoded["operator"])
	assert.Equal(1.0, decoded["left"].(map[string]interface{})["value"])
	assert.Equal("Variable", decoded["right"].(map[string]interface{})["type"])
}
