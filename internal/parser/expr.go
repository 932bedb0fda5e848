package parser

import (
	"fmt"

	"github.com/ltungv/lox/glox/internal/ast"
	"github.com/ltungv/lox/glox/internal/report"
	"github.com/ltungv/lox/glox/internal/token"
)

// rule is a grammar rule producing an expression
type rule func() (ast.Expr, error)

// misplacedOperators are binary operators that can not start an expression.
// MINUS is absent since it is also a unary operator.
var misplacedOperators = []token.Type{
	token.BANG_EQUAL, token.EQUAL_EQUAL,
	token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL,
	token.PLUS, token.SLASH, token.STAR,
}

// expr --> comma ;
func (parser *Parser) expression() (ast.Expr, error) {
	return parser.nest(parser.comma)
}

// comma --> assignment ( "," assignment )* ;
func (parser *Parser) comma() (ast.Expr, error) {
	return parser.leftAssoc(parser.assignment, binary, token.COMMA)
}

// The left-hand side is parsed as an ordinary expression and then checked to
// be a variable. An invalid target is reported, but the parser does not need
// to synchronize, so the left-hand side is returned as is.
//
// assignment --> IDENT "=" assignment | ternary ;
func (parser *Parser) assignment() (ast.Expr, error) {
	expr, err := parser.ternary()
	if err != nil {
		return nil, err
	}
	if !parser.match(token.EQUAL) {
		return expr, nil
	}

	equals := parser.prev()
	val, err := parser.nest(parser.assignment)
	if err != nil {
		return nil, err
	}
	if v, ok := expr.(*ast.VarExpr); ok {
		return ast.NewAssignExpr(v.Name, val), nil
	}
	parser.report(report.NewSyntaxError(equals.Line, "Invalid assignment target."))
	return expr, nil
}

// Both branches recurse into ternary so that chained conditionals nest to the
// right, `a ? b : c ? d : e` is `a ? b : (c ? d : e)`.
//
// ternary --> or ( "?" ternary ":" ternary )? ;
func (parser *Parser) ternary() (ast.Expr, error) {
	cond, err := parser.or()
	if err != nil {
		return nil, err
	}
	if !parser.match(token.QUESTION) {
		return cond, nil
	}

	then, err := parser.nest(parser.ternary)
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(token.COLON, "Expect ':' after expression."); err != nil {
		return nil, err
	}
	els, err := parser.nest(parser.ternary)
	if err != nil {
		return nil, err
	}
	return ast.NewTernaryExpr(cond, then, els), nil
}

// or --> and ( "or" and )* ;
func (parser *Parser) or() (ast.Expr, error) {
	return parser.leftAssoc(parser.and, logical, token.OR)
}

// and --> equality ( "and" equality )* ;
func (parser *Parser) and() (ast.Expr, error) {
	return parser.leftAssoc(parser.equality, logical, token.AND)
}

// equality --> comparison ( ( "!=" | "==" ) comparison )* ;
func (parser *Parser) equality() (ast.Expr, error) {
	return parser.leftAssoc(parser.comparison, binary, token.BANG_EQUAL, token.EQUAL_EQUAL)
}

// comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
func (parser *Parser) comparison() (ast.Expr, error) {
	return parser.leftAssoc(
		parser.term,
		binary,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL,
	)
}

// term --> factor ( ( "-" | "+" ) factor )* ;
func (parser *Parser) term() (ast.Expr, error) {
	return parser.leftAssoc(parser.factor, binary, token.MINUS, token.PLUS)
}

// factor --> unary ( ( "/" | "*" ) unary )* ;
func (parser *Parser) factor() (ast.Expr, error) {
	return parser.leftAssoc(parser.unary, binary, token.SLASH, token.STAR)
}

// unary --> ( "!" | "-" ) unary | primary ;
func (parser *Parser) unary() (ast.Expr, error) {
	if parser.match(token.BANG, token.MINUS) {
		op := parser.prev()
		expr, err := parser.nest(parser.unary)
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr(op, expr), nil
	}
	return parser.primary()
}

// primary --> NUMBER | STRING | "true" | "false" | "nil"
//           | "(" expr ")" | IDENT ;
func (parser *Parser) primary() (ast.Expr, error) {
	switch {
	case parser.match(token.FALSE):
		return ast.NewLiteralExpr(false), nil
	case parser.match(token.TRUE):
		return ast.NewLiteralExpr(true), nil
	case parser.match(token.NIL):
		return ast.NewLiteralExpr(nil), nil
	case parser.match(token.NUMBER, token.STRING):
		return ast.NewLiteralExpr(parser.prev().Literal), nil
	case parser.match(token.IDENTIFIER):
		return ast.NewVarExpr(parser.prev()), nil
	case parser.match(token.LEFT_PAREN):
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if _, err := parser.consume(
			token.RIGHT_PAREN,
			"Expect ')' after expression.",
		); err != nil {
			return nil, err
		}
		return ast.NewGroupExpr(expr), nil
	case parser.match(misplacedOperators...):
		op := parser.prev()
		parser.report(report.NewSyntaxError(
			op.Line,
			fmt.Sprintf("Binary operator '%s' not expected at the beginning of an expression.", op.Lexeme),
		))
		return parser.expression()
	}
	return nil, report.NewParseError(parser.peek(), "Expect expression.")
}

// leftAssoc parses one or more `operand` separated by any of the given
// operators and folds them to the left with `fold`.
func (parser *Parser) leftAssoc(
	operand rule,
	fold func(op *token.Token, lhs, rhs ast.Expr) ast.Expr,
	types ...token.Type,
) (ast.Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for parser.match(types...) {
		op := parser.prev()
		rhs, err := operand()
		if err != nil {
			return nil, err
		}
		expr = fold(op, expr, rhs)
	}
	return expr, nil
}

// nest runs a rule one nesting level deeper
func (parser *Parser) nest(r rule) (ast.Expr, error) {
	if err := parser.enter(); err != nil {
		return nil, err
	}
	defer parser.leave()
	return r()
}

func binary(op *token.Token, lhs, rhs ast.Expr) ast.Expr {
	return ast.NewBinaryExpr(op, lhs, rhs)
}

func logical(op *token.Token, lhs, rhs ast.Expr) ast.Expr {
	return ast.NewLogicalExpr(op, lhs, rhs)
}
