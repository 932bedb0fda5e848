package parser

import (
	"github.com/ltungv/lox/glox/internal/ast"
	"github.com/ltungv/lox/glox/internal/report"
	"github.com/ltungv/lox/glox/internal/token"
	"github.com/tliron/commonlog"
)

// DefaultMaxDepth bounds how deep expressions and statements may nest before
// the parser gives up on the input.
const DefaultMaxDepth = 512

var log = commonlog.GetLogger("glox.parser")

// Parser composes the syntax tree for the Lox language from the sequence of
// valid tokens that follow the following grammar rule.
//
// Grammar
//
//	program     --> decl* EOF ;
//	decl        --> varDecl | stmt ;
//	varDecl     --> "var" IDENT ( "=" expr )? ";" ;
//	stmt        --> breakStmt | forStmt | ifStmt | printStmt
//	              | whileStmt | block | exprStmt ;
//	breakStmt   --> "break" ";" ;
//	forStmt     --> "for" "(" ( varDecl | exprStmt | ";" ) expr? ";" expr? ")" stmt ;
//	ifStmt      --> "if" "(" expr ")" stmt ( "else" stmt )? ;
//	printStmt   --> "print" expr ";" ;
//	whileStmt   --> "while" "(" expr ")" stmt ;
//	block       --> "{" decl* "}" ;
//	exprStmt    --> expr ";" ;
//	expr        --> comma ;
//	comma       --> assignment ( "," assignment )* ;
//	assignment  --> IDENT "=" assignment | ternary ;
//	ternary     --> or ( "?" ternary ":" ternary )? ;
//	or          --> and ( "or" and )* ;
//	and         --> equality ( "and" equality )* ;
//	equality    --> comparison ( ( "!=" | "==" ) comparison )* ;
//	comparison  --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
//	term        --> factor ( ( "-" | "+" ) factor )* ;
//	factor      --> unary ( ( "/" | "*" ) unary )* ;
//	unary       --> ( "!" | "-" ) unary | primary ;
//	primary     --> NUMBER | STRING | "true" | "false" | "nil"
//	              | "(" expr ")" | IDENT ;
//
// A binary operator where a primary is expected is reported and the parser
// carries on with the expression that follows it. A declaration that fails to
// parse is reported, replaced by an ast.ErrorStmt, and the parser skips ahead
// to the next statement boundary.
type Parser struct {
	current  int
	tokens   []*token.Token
	reporter report.Reporter

	depth    int
	maxDepth int
	overflow error
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth sets the nesting bound. A value of zero or less removes it.
func WithMaxDepth(depth int) Option {
	return func(parser *Parser) {
		parser.maxDepth = depth
	}
}

// New creates a parser over the given tokens. The sequence is expected to end
// with an EOF token; one is added when it is missing.
func New(tokens []*token.Token, reporter report.Reporter, opts ...Option) *Parser {
	if n := len(tokens); n == 0 || tokens[n-1].Typ != token.EOF {
		line := 1
		if n != 0 {
			line = tokens[n-1].Line
		}
		tokens = append(tokens[:n:n], token.New(token.EOF, "", nil, line))
	}
	parser := &Parser{
		tokens:   tokens,
		reporter: reporter,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(parser)
	}
	return parser
}

// Parse parses a whole program. The result always holds one statement per
// declaration found in the input, declarations that could not be parsed are
// represented by *ast.ErrorStmt.
func (parser *Parser) Parse() []ast.Stmt {
	statements := make([]ast.Stmt, 0)
	for !parser.isEOF() {
		start := parser.current
		statements = append(statements, parser.declaration(scope{}))
		if parser.overflow != nil {
			parser.unwind(start)
		}
	}
	return statements
}

// ParseExpression parses a single expression. It returns nil if the
// expression could not be parsed, the error is sent to the reporter.
func (parser *Parser) ParseExpression() ast.Expr {
	expr, err := parser.expression()
	if err != nil {
		parser.report(err)
		return nil
	}
	return expr
}

// scope is the lexical context a statement is parsed in.
type scope struct {
	loops int
}

func (s scope) inLoop() scope {
	s.loops++
	return s
}

// decl --> varDecl | stmt ;
func (parser *Parser) declaration(sc scope) ast.Stmt {
	start := parser.peek()

	var stmt ast.Stmt
	var err error
	if parser.match(token.VAR) {
		stmt, err = parser.varDeclaration()
	} else {
		stmt, err = parser.statement(sc)
	}

	if err != nil {
		parser.report(err)
		if parser.overflow == nil {
			parser.sync()
		}
		return ast.NewErrorStmt(start, err)
	}
	return stmt
}

func (parser *Parser) report(err error) {
	if parser.overflow != nil {
		return
	}
	parser.reporter.Report(err)
}

// enter records one more level of nesting. Once the bound is exceeded, the
// error is reported right away and the enclosing rules fail quietly until
// the top-level declaration is reached.
func (parser *Parser) enter() error {
	if parser.maxDepth > 0 && parser.depth >= parser.maxDepth {
		err := report.NewParseError(parser.peek(), "Too much nesting.")
		parser.report(err)
		parser.overflow = err
		log.Warningf("nesting deeper than %d levels at line %d", parser.maxDepth, parser.peek().Line)
		return err
	}
	parser.depth++
	return nil
}

func (parser *Parser) leave() {
	parser.depth--
}

// unwind skips the rest of a top-level declaration that went past the nesting
// bound. The brackets opened since start are closed first, so that the
// declarations following it are parsed again.
func (parser *Parser) unwind(start int) {
	open := 0
	for _, t := range parser.tokens[start:parser.current] {
		open += bracket(t)
	}
	for open > 0 && !parser.isEOF() {
		open += bracket(parser.advance())
	}
	parser.overflow = nil

	if parser.current > start && parser.prev().Typ == token.RIGHT_BRACE {
		return
	}
	for !parser.isEOF() {
		if parser.current > start && parser.prev().Typ == token.SEMICOLON {
			return
		}
		switch parser.peek().Typ {
		case token.CLASS, token.FUN, token.VAR, token.FOR,
			token.IF, token.WHILE, token.PRINT, token.RETURN:
			if parser.current > start {
				return
			}
		}
		parser.advance()
	}
}

func bracket(t *token.Token) int {
	switch t.Typ {
	case token.LEFT_PAREN, token.LEFT_BRACE:
		return 1
	case token.RIGHT_PAREN, token.RIGHT_BRACE:
		return -1
	}
	return 0
}

// sync discards tokens until it reaches what looks like the start of the next
// statement.
func (parser *Parser) sync() {
	parser.advance()
	for !parser.isEOF() {
		if parser.prev().Typ == token.SEMICOLON {
			break
		}
		switch parser.peek().Typ {
		case token.CLASS, token.FUN, token.VAR, token.FOR,
			token.IF, token.WHILE, token.PRINT, token.RETURN:
			log.Debugf("synchronized at line %d", parser.peek().Line)
			return
		}
		parser.advance()
	}
	log.Debugf("synchronized at line %d", parser.peek().Line)
}
