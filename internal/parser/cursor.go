package parser

import (
	"github.com/ltungv/lox/glox/internal/report"
	"github.com/ltungv/lox/glox/internal/token"
)

// match consumes the current token if it has any of the given types
func (parser *Parser) match(types ...token.Type) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

// consume returns the current token and advances if it has the given type,
// otherwise a parse error at the current token is returned
func (parser *Parser) consume(typ token.Type, message string) (*token.Token, error) {
	if parser.check(typ) {
		return parser.advance(), nil
	}
	return nil, report.NewParseError(parser.peek(), message)
}

func (parser *Parser) check(tt token.Type) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) advance() *token.Token {
	tok := parser.peek()
	if !parser.isEOF() {
		parser.current++
	}
	return tok
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == token.EOF
}

func (parser *Parser) peek() *token.Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *token.Token {
	return parser.tokens[parser.current-1]
}
