package parser

import (
	"github.com/ltungv/lox/glox/internal/ast"
	"github.com/ltungv/lox/glox/internal/report"
	"github.com/ltungv/lox/glox/internal/token"
)

// varDecl --> "var" IDENT ( "=" expr )? ";" ;
func (parser *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := parser.consume(token.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var init ast.Expr
	if parser.match(token.EQUAL) {
		if init, err = parser.expression(); err != nil {
			return nil, err
		}
	}

	if _, err := parser.consume(
		token.SEMICOLON,
		"Expect ';' after variable declaration.",
	); err != nil {
		return nil, err
	}
	return ast.NewVarStmt(name, init), nil
}

// stmt --> breakStmt | forStmt | ifStmt | printStmt
//        | whileStmt | block | exprStmt ;
func (parser *Parser) statement(sc scope) (ast.Stmt, error) {
	if err := parser.enter(); err != nil {
		return nil, err
	}
	defer parser.leave()

	switch {
	case parser.match(token.BREAK):
		return parser.breakStatement(sc)
	case parser.match(token.FOR):
		return parser.forStatement(sc)
	case parser.match(token.IF):
		return parser.ifStatement(sc)
	case parser.match(token.PRINT):
		return parser.printStatement()
	case parser.match(token.WHILE):
		return parser.whileStatement(sc)
	case parser.match(token.LEFT_BRACE):
		stmts, err := parser.block(sc)
		if err != nil {
			return nil, err
		}
		return ast.NewBlockStmt(stmts), nil
	}
	return parser.expressionStatement()
}

// A break outside of a loop is reported, but the node is still built since
// the rest of the statement is well-formed.
//
// breakStmt --> "break" ";" ;
func (parser *Parser) breakStatement(sc scope) (ast.Stmt, error) {
	keyword := parser.prev()
	if _, err := parser.consume(token.SEMICOLON, "Expect ';' after 'break'."); err != nil {
		return nil, err
	}
	if sc.loops == 0 {
		parser.report(report.NewParseError(keyword, "Illegal break statement."))
	}
	return ast.NewBreakStmt(keyword), nil
}

// The for loop is syntactic sugar, it is turned into a while loop
//
//	{
//		initializer;
//		while (condition) {
//			body;
//			increment;
//		}
//	}
//
// forStmt --> "for" "(" ( varDecl | exprStmt | ";" ) expr? ";" expr? ")" stmt ;
func (parser *Parser) forStatement(sc scope) (ast.Stmt, error) {
	if _, err := parser.consume(token.LEFT_PAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var init ast.Stmt
	var err error
	switch {
	case parser.match(token.SEMICOLON):
	case parser.match(token.VAR):
		init, err = parser.varDeclaration()
	default:
		init, err = parser.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var cond ast.Expr
	if !parser.check(token.SEMICOLON) {
		if cond, err = parser.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(token.SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var incr ast.Expr
	if !parser.check(token.RIGHT_PAREN) {
		if incr, err = parser.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(token.RIGHT_PAREN, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := parser.statement(sc.inLoop())
	if err != nil {
		return nil, err
	}

	if incr != nil {
		body = ast.NewBlockStmt([]ast.Stmt{body, ast.NewExprStmt(incr)})
	}
	if cond == nil {
		cond = ast.NewLiteralExpr(true)
	}
	body = ast.NewWhileStmt(cond, body)
	if init != nil {
		body = ast.NewBlockStmt([]ast.Stmt{init, body})
	}
	return body, nil
}

type ifClause struct {
	cond       ast.Expr
	thenBranch ast.Stmt
}

// An "else if" chain is read in a loop and folded into nested if statements
// afterwards, its length does not count towards the nesting bound.
//
// ifStmt --> "if" "(" expr ")" stmt ( "else" stmt )? ;
func (parser *Parser) ifStatement(sc scope) (ast.Stmt, error) {
	var clauses []ifClause
	var elseBranch ast.Stmt
	for {
		clause, err := parser.ifClause(sc)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
		if !parser.match(token.ELSE) {
			break
		}
		if parser.match(token.IF) {
			continue
		}
		if elseBranch, err = parser.statement(sc); err != nil {
			return nil, err
		}
		break
	}

	stmt := elseBranch
	for i := len(clauses) - 1; i >= 0; i-- {
		stmt = ast.NewIfStmt(clauses[i].cond, clauses[i].thenBranch, stmt)
	}
	return stmt, nil
}

func (parser *Parser) ifClause(sc scope) (ifClause, error) {
	if _, err := parser.consume(token.LEFT_PAREN, "Expect '(' after 'if'."); err != nil {
		return ifClause{}, err
	}
	cond, err := parser.expression()
	if err != nil {
		return ifClause{}, err
	}
	if _, err := parser.consume(token.RIGHT_PAREN, "Expect ')' after if condition."); err != nil {
		return ifClause{}, err
	}
	thenBranch, err := parser.statement(sc)
	if err != nil {
		return ifClause{}, err
	}
	return ifClause{cond, thenBranch}, nil
}

// printStmt --> "print" expr ";" ;
func (parser *Parser) printStatement() (ast.Stmt, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(token.SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return ast.NewPrintStmt(expr), nil
}

// whileStmt --> "while" "(" expr ")" stmt ;
func (parser *Parser) whileStatement(sc scope) (ast.Stmt, error) {
	if _, err := parser.consume(token.LEFT_PAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	cond, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(token.RIGHT_PAREN, "Expect ')' after condition."); err != nil {
		return nil, err
	}

	body, err := parser.statement(sc.inLoop())
	if err != nil {
		return nil, err
	}
	return ast.NewWhileStmt(cond, body), nil
}

// block --> "{" decl* "}" ;
func (parser *Parser) block(sc scope) ([]ast.Stmt, error) {
	stmts := make([]ast.Stmt, 0)
	for !parser.check(token.RIGHT_BRACE) && !parser.isEOF() {
		stmts = append(stmts, parser.declaration(sc))
		if parser.overflow != nil {
			return nil, parser.overflow
		}
	}
	if _, err := parser.consume(token.RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

// exprStmt --> expr ";" ;
func (parser *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(token.SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return ast.NewExprStmt(expr), nil
}
