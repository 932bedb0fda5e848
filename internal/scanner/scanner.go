package scanner

import (
	"strconv"
	"unicode"

	"github.com/ltungv/lox/glox/internal/report"
	"github.com/ltungv/lox/glox/internal/token"
)

// Scanner parses the input source and collects all the tokens that can be found
type Scanner struct {
	line     int
	start    int
	current  int
	source   []rune
	tokens   []*token.Token
	reporter report.Reporter
}

// New creates a new Lox token scanner
func New(source []rune, reporter report.Reporter) *Scanner {
	scanner := new(Scanner)
	scanner.line = 1
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	scanner.tokens = make([]*token.Token, 0)
	scanner.reporter = reporter
	return scanner
}

// Scan reads the source and collect all the tokens that were found from the
// source. The returned sequence always ends with an EOF token.
func (scanner *Scanner) Scan() []*token.Token {
	if len(scanner.tokens) != 0 {
		return scanner.tokens
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t':
		case '\n':
			scanner.line++
		// Single character tokens
		case '(':
			scanner.addToken(token.LEFT_PAREN, nil)
		case ')':
			scanner.addToken(token.RIGHT_PAREN, nil)
		case '{':
			scanner.addToken(token.LEFT_BRACE, nil)
		case '}':
			scanner.addToken(token.RIGHT_BRACE, nil)
		case ',':
			scanner.addToken(token.COMMA, nil)
		case '.':
			scanner.addToken(token.DOT, nil)
		case '-':
			scanner.addToken(token.MINUS, nil)
		case '+':
			scanner.addToken(token.PLUS, nil)
		case ';':
			scanner.addToken(token.SEMICOLON, nil)
		case '*':
			scanner.addToken(token.STAR, nil)
		case '?':
			scanner.addToken(token.QUESTION, nil)
		case ':':
			scanner.addToken(token.COLON, nil)
		// Double character tokens
		case '!':
			scanner.addEither('=', token.BANG_EQUAL, token.BANG)
		case '=':
			scanner.addEither('=', token.EQUAL_EQUAL, token.EQUAL)
		case '<':
			scanner.addEither('=', token.LESS_EQUAL, token.LESS)
		case '>':
			scanner.addEither('=', token.GREATER_EQUAL, token.GREATER)
		// Long lexemes
		case '/':
			if scanner.match('/') {
				// consume the comment, but keep the \n at the end of line so line
				// counting can work correctly
				for scanner.peek() != '\n' && scanner.hasNext() {
					scanner.advance()
				}
			} else if scanner.match('*') {
				scanner.scanMultilineComment()
			} else {
				scanner.addToken(token.SLASH, nil)
			}
		// Literals
		case '"':
			scanner.scanString()
		default:
			if isDigit(r) {
				scanner.scanNumber()
			} else if isBeginIdent(r) {
				scanner.scanIdentifier()
			} else {
				scanner.reporter.Report(
					report.NewScanError(scanner.line, "Unexpected character."),
				)
			}
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		token.New(token.EOF, "", nil, scanner.line),
	)
	return scanner.tokens
}

func (scanner *Scanner) scanString() {
	// read until EOF or found a maching '"' --> our string includes \n
	for scanner.peek() != '"' && scanner.hasNext() {
		if scanner.peek() == '\n' {
			scanner.line++
		}
		scanner.advance()
	}

	if scanner.hasNext() {
		// consume '"'
		scanner.advance()
		// content between '"' pair
		literal := string(scanner.source[scanner.start+1 : scanner.current-1])
		scanner.addToken(token.STRING, literal)
	} else {
		scanner.reporter.Report(
			report.NewScanError(scanner.line, "Unterminated string."),
		)
	}
}

func (scanner *Scanner) scanNumber() {
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	// check if there's a '.' with following digits
	if scanner.peek() == '.' && isDigit(scanner.peekNext()) {
		scanner.advance()
		for isDigit(scanner.peek()) {
			scanner.advance()
		}
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	literal, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		// the lexeme is well formed, so the only failure is a value past the
		// largest float64. The token is kept so the parser does not cascade.
		scanner.reporter.Report(report.NewScanError(scanner.line, "Number literal out of range."))
	}
	scanner.addToken(token.NUMBER, literal)
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	if typ, isKeyword := token.Keywords[lexeme]; isKeyword {
		scanner.addToken(typ, nil)
	} else {
		scanner.addToken(token.IDENTIFIER, nil)
	}
}

func (scanner *Scanner) scanMultilineComment() {
	for {
		for scanner.peek() != '*' && scanner.hasNext() {
			if scanner.peek() == '\n' {
				scanner.line++
			}
			scanner.advance()
		}
		if scanner.hasNext() {
			scanner.advance()
			if scanner.peek() == '/' {
				scanner.advance()
				break
			}
		} else {
			scanner.reporter.Report(
				report.NewScanError(
					scanner.line, "Unterminated multiline comment.",
				),
			)
			break
		}
	}
}

// addEither adds `matched` if the next rune is `next`, otherwise `single`
func (scanner *Scanner) addEither(next rune, matched, single token.Type) {
	if scanner.match(next) {
		scanner.addToken(matched, nil)
	} else {
		scanner.addToken(single, nil)
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the given
// type and carries the given literal
func (scanner *Scanner) addToken(typ token.Type, literal interface{}) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := token.New(typ, lexeme, literal, scanner.line)
	scanner.tokens = append(scanner.tokens, tok)
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current possible
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// match checks if the rune at the current possition is equal to the given rune,
// if they are equal, consumes the rune at the current position.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// peek returns the rune at the next position, but does not consume it
func (scanner *Scanner) peekNext() rune {
	if scanner.current+1 >= len(scanner.source) {
		return '\x00'
	}
	return scanner.source[scanner.current+1]
}

// isDigit only accepts ASCII digits, strconv cannot parse any other.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || isDigit(r) || r == '_'
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
