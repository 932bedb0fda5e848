package report

import (
	"fmt"

	"github.com/ltungv/lox/glox/internal/token"
)

// Diagnostic is an error that can be attributed to a source line.
type Diagnostic interface {
	error
	Line() int
	Message() string
}

var (
	_ Diagnostic = (*ScanError)(nil)
	_ Diagnostic = (*ParseError)(nil)
	_ Diagnostic = (*SyntaxError)(nil)
)

// ScanError is reported by the scanner when it finds a malformed lexeme.
type ScanError struct {
	line    int
	message string
}

// NewScanError creates a new scanning error
func NewScanError(line int, message string) *ScanError {
	return &ScanError{line, message}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", err.line, err.message)
}

func (err *ScanError) Line() int       { return err.line }
func (err *ScanError) Message() string { return err.message }

// ParseError is the fatal error of the parser. It unwinds the grammar rules up
// to the enclosing declaration, where the parser synchronizes.
type ParseError struct {
	token   *token.Token
	message string
}

// NewParseError creates a new parse error at the given token
func NewParseError(tok *token.Token, message string) *ParseError {
	return &ParseError{tok, message}
}

func (err *ParseError) Error() string {
	if err.token.Typ == token.EOF {
		return fmt.Sprintf(
			"[line %d] Error at end: %s",
			err.token.Line,
			err.message,
		)
	}
	return fmt.Sprintf(
		"[line %d] Error at '%s': %s",
		err.token.Line,
		err.token.Lexeme,
		err.message,
	)
}

// Token returns the offending token.
func (err *ParseError) Token() *token.Token { return err.token }

func (err *ParseError) Line() int       { return err.token.Line }
func (err *ParseError) Message() string { return err.message }

// SyntaxError is an advisory diagnostic. The parser reports it and keeps
// building the tree.
type SyntaxError struct {
	line    int
	message string
}

// NewSyntaxError creates an advisory error attributed to a line
func NewSyntaxError(line int, message string) *SyntaxError {
	return &SyntaxError{line, message}
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", err.line, err.message)
}

func (err *SyntaxError) Line() int       { return err.line }
func (err *SyntaxError) Message() string { return err.message }
