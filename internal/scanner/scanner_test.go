package scanner

import (
	"math"
	"strings"
	"testing"

	"github.com/ltungv/lox/glox/internal/report"
	"github.com/ltungv/lox/glox/internal/token"
	"github.com/stretchr/testify/assert"
)

func tok(typ token.Type, lexeme string, literal interface{}, line int) *token.Token {
	return token.New(typ, lexeme, literal, line)
}

func tokEOF(line int) *token.Token {
	return token.New(token.EOF, "", nil, line)
}

func TestScanSingleToken(t *testing.T) {
	largest := "1" + strings.Repeat("0", 308)
	testCases := []struct {
		src  string
		toks []*token.Token
	}{
		// single character token
		{"(", []*token.Token{tok(token.LEFT_PAREN, "(", nil, 1), tokEOF(1)}},
		{")", []*token.Token{tok(token.RIGHT_PAREN, ")", nil, 1), tokEOF(1)}},
		{"{", []*token.Token{tok(token.LEFT_BRACE, "{", nil, 1), tokEOF(1)}},
		{"}", []*token.Token{tok(token.RIGHT_BRACE, "}", nil, 1), tokEOF(1)}},
		{",", []*token.Token{tok(token.COMMA, ",", nil, 1), tokEOF(1)}},
		{".", []*token.Token{tok(token.DOT, ".", nil, 1), tokEOF(1)}},
		{"-", []*token.Token{tok(token.MINUS, "-", nil, 1), tokEOF(1)}},
		{"+", []*token.Token{tok(token.PLUS, "+", nil, 1), tokEOF(1)}},
		{";", []*token.Token{tok(token.SEMICOLON, ";", nil, 1), tokEOF(1)}},
		{"/", []*token.Token{tok(token.SLASH, "/", nil, 1), tokEOF(1)}},
		{"*", []*token.Token{tok(token.STAR, "*", nil, 1), tokEOF(1)}},
		{"?", []*token.Token{tok(token.QUESTION, "?", nil, 1), tokEOF(1)}},
		{":", []*token.Token{tok(token.COLON, ":", nil, 1), tokEOF(1)}},
		// single-/double-character token
		{"!", []*token.Token{tok(token.BANG, "!", nil, 1), tokEOF(1)}},
		{"!=", []*token.Token{tok(token.BANG_EQUAL, "!=", nil, 1), tokEOF(1)}},
		{"=", []*token.Token{tok(token.EQUAL, "=", nil, 1), tokEOF(1)}},
		{"==", []*token.Token{tok(token.EQUAL_EQUAL, "==", nil, 1), tokEOF(1)}},
		{">", []*token.Token{tok(token.GREATER, ">", nil, 1), tokEOF(1)}},
		{">=", []*token.Token{tok(token.GREATER_EQUAL, ">=", nil, 1), tokEOF(1)}},
		{"<", []*token.Token{tok(token.LESS, "<", nil, 1), tokEOF(1)}},
		{"<=", []*token.Token{tok(token.LESS_EQUAL, "<=", nil, 1), tokEOF(1)}},
		// literals
		{"a", []*token.Token{tok(token.IDENTIFIER, "a", nil, 1), tokEOF(1)}},
		{"abc123", []*token.Token{tok(token.IDENTIFIER, "abc123", nil, 1), tokEOF(1)}},
		{"_abc123", []*token.Token{tok(token.IDENTIFIER, "_abc123", nil, 1), tokEOF(1)}},
		{"snake_case", []*token.Token{tok(token.IDENTIFIER, "snake_case", nil, 1), tokEOF(1)}},
		{"\"\"", []*token.Token{tok(token.STRING, "\"\"", "", 1), tokEOF(1)}},
		{"\"123\"", []*token.Token{tok(token.STRING, "\"123\"", "123", 1), tokEOF(1)}},
		{"\"abc\n123\"", []*token.Token{tok(token.STRING, "\"abc\n123\"", "abc\n123", 2), tokEOF(2)}},
		{"10", []*token.Token{tok(token.NUMBER, "10", 10.0, 1), tokEOF(1)}},
		{"001", []*token.Token{tok(token.NUMBER, "001", 1.0, 1), tokEOF(1)}},
		{"0.1", []*token.Token{tok(token.NUMBER, "0.1", 0.1, 1), tokEOF(1)}},
		{"123.456", []*token.Token{tok(token.NUMBER, "123.456", 123.456, 1), tokEOF(1)}},
		{largest, []*token.Token{tok(token.NUMBER, largest, 1e308, 1), tokEOF(1)}},
		// keywords
		{"and", []*token.Token{tok(token.AND, "and", nil, 1), tokEOF(1)}},
		{"break", []*token.Token{tok(token.BREAK, "break", nil, 1), tokEOF(1)}},
		{"class", []*token.Token{tok(token.CLASS, "class", nil, 1), tokEOF(1)}},
		{"else", []*token.Token{tok(token.ELSE, "else", nil, 1), tokEOF(1)}},
		{"false", []*token.Token{tok(token.FALSE, "false", nil, 1), tokEOF(1)}},
		{"fun", []*token.Token{tok(token.FUN, "fun", nil, 1), tokEOF(1)}},
		{"for", []*token.Token{tok(token.FOR, "for", nil, 1), tokEOF(1)}},
		{"if", []*token.Token{tok(token.IF, "if", nil, 1), tokEOF(1)}},
		{"nil", []*token.Token{tok(token.NIL, "nil", nil, 1), tokEOF(1)}},
		{"or", []*token.Token{tok(token.OR, "or", nil, 1), tokEOF(1)}},
		{"print", []*token.Token{tok(token.PRINT, "print", nil, 1), tokEOF(1)}},
		{"return", []*token.Token{tok(token.RETURN, "return", nil, 1), tokEOF(1)}},
		{"super", []*token.Token{tok(token.SUPER, "super", nil, 1), tokEOF(1)}},
		{"this", []*token.Token{tok(token.THIS, "this", nil, 1), tokEOF(1)}},
		{"true", []*token.Token{tok(token.TRUE, "true", nil, 1), tokEOF(1)}},
		{"var", []*token.Token{tok(token.VAR, "var", nil, 1), tokEOF(1)}},
		{"while", []*token.Token{tok(token.WHILE, "while", nil, 1), tokEOF(1)}},
		{"", []*token.Token{tokEOF(1)}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		r := report.NewListReporter()
		toks := New([]rune(tc.src), r).Scan()

		assert.False(r.HadError(), tc.src)
		assert.Equal(tc.toks, toks, tc.src)
	}
}

func TestScanWhiteSpacesAndComments(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*token.Token
	}{
		{"        ", []*token.Token{tokEOF(1)}},
		{"\r\r\r\r", []*token.Token{tokEOF(1)}},
		{"\t\t\t\t", []*token.Token{tokEOF(1)}},
		{"\n\n\n\n", []*token.Token{tokEOF(5)}},
		{"  \r\t\n", []*token.Token{tokEOF(2)}},
		{"// a single-line comment", []*token.Token{tokEOF(1)}},
		{"/*\na\nmulti-line\ncomment\n*/", []*token.Token{tokEOF(5)}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		r := report.NewListReporter()
		toks := New([]rune(tc.src), r).Scan()

		assert.False(r.HadError())
		assert.Equal(tc.toks, toks)
	}
}

func TestScanValidTokensSequence(t *testing.T) {
	lexemes := []string{
		"a", "?", "b", ":", "c", ",", "\"s\nt\"", "3.14", ";", "break",
	}
	toksWant := []*token.Token{
		tok(token.IDENTIFIER, "a", nil, 1),
		tok(token.QUESTION, "?", nil, 1),
		tok(token.IDENTIFIER, "b", nil, 1),
		tok(token.COLON, ":", nil, 1),
		tok(token.IDENTIFIER, "c", nil, 1),
		tok(token.COMMA, ",", nil, 1),
		tok(token.STRING, "\"s\nt\"", "s\nt", 2),
		tok(token.NUMBER, "3.14", 3.14, 2),
		tok(token.SEMICOLON, ";", nil, 2),
		tok(token.BREAK, "break", nil, 2),
		tokEOF(2),
	}

	r := report.NewListReporter()
	toks := New([]rune(strings.Join(lexemes, " ")), r).Scan()

	assert := assert.New(t)
	assert.False(r.HadError())
	assert.Equal(toksWant, toks)
}

func TestScanIsIdempotent(t *testing.T) {
	r := report.NewListReporter()
	scan := New([]rune("var x;"), r)

	first := scan.Scan()
	second := scan.Scan()

	assert.Equal(t, first, second)
	assert.Len(t, second, 4)
}

func TestScanWithErrors(t *testing.T) {
	testCases := []struct {
		src    string
		errors []error
		toks   []*token.Token
	}{
		{"\"yo where's the closing quote",
			[]error{report.NewScanError(1, "Unterminated string.")},
			[]*token.Token{tokEOF(1)}},

		{"\"yo\nwhere's\nthe\nclosing\nquote",
			[]error{report.NewScanError(5, "Unterminated string.")},
			[]*token.Token{tokEOF(5)}},

		{"/*yo where's the closing STAR-SLASH",
			[]error{report.NewScanError(1, "Unterminated multiline comment.")},
			[]*token.Token{tokEOF(1)}},

		{"@ # $ \"valid again\"",
			[]error{
				report.NewScanError(1, "Unexpected character."),
				report.NewScanError(1, "Unexpected character."),
				report.NewScanError(1, "Unexpected character."),
			},
			[]*token.Token{tok(token.STRING, "\"valid again\"", "valid again", 1), tokEOF(1)}},

		// only ASCII digits start a number
		{"print \u0663;",
			[]error{report.NewScanError(1, "Unexpected character.")},
			[]*token.Token{tok(token.PRINT, "print", nil, 1), tok(token.SEMICOLON, ";", nil, 1), tokEOF(1)}},

		{"1\u0663",
			[]error{report.NewScanError(1, "Unexpected character.")},
			[]*token.Token{tok(token.NUMBER, "1", 1.0, 1), tokEOF(1)}},

		{strings.Repeat("9", 400),
			[]error{report.NewScanError(1, "Number literal out of range.")},
			[]*token.Token{tok(token.NUMBER, strings.Repeat("9", 400), math.Inf(1), 1), tokEOF(1)}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		r := report.NewListReporter()
		toks := New([]rune(tc.src), r).Scan()

		assert.True(r.HadError())
		assert.Equal(tc.errors, r.Errors())
		assert.Equal(tc.toks, toks)
	}
}
