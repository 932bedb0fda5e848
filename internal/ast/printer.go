package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Printer renders the syntax tree as parenthesized prefix expressions, one
// line per top-level statement. It is mostly used for debugging and in tests
// where comparing strings is easier than comparing trees.
type Printer struct{}

func (printer *Printer) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *Printer) PrintStmt(stmt Stmt) string {
	s, _ := stmt.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *Printer) PrintProgram(stmts []Stmt) string {
	lines := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		lines = append(lines, printer.PrintStmt(stmt))
	}
	return strings.Join(lines, "\n")
}

func (printer *Printer) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	return printer.parenthesize("=", expr.Name.Lexeme, expr.Val), nil
}

func (printer *Printer) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Lhs, expr.Rhs), nil
}

func (printer *Printer) VisitGroupExpr(expr *GroupExpr) (interface{}, error) {
	return printer.parenthesize("group", expr.Expr), nil
}

func (printer *Printer) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return formatLiteral(expr.Val), nil
}

func (printer *Printer) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Lhs, expr.Rhs), nil
}

func (printer *Printer) VisitTernaryExpr(expr *TernaryExpr) (interface{}, error) {
	return printer.parenthesize("?:", expr.Cond, expr.Then, expr.Else), nil
}

func (printer *Printer) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, expr.Expr), nil
}

func (printer *Printer) VisitVarExpr(expr *VarExpr) (interface{}, error) {
	return expr.Name.Lexeme, nil
}

func (printer *Printer) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	parts := make([]interface{}, 0, len(stmt.Stmts))
	for _, s := range stmt.Stmts {
		parts = append(parts, s)
	}
	return printer.parenthesize("block", parts...), nil
}

func (printer *Printer) VisitBreakStmt(stmt *BreakStmt) (interface{}, error) {
	return "(break)", nil
}

func (printer *Printer) VisitErrorStmt(stmt *ErrorStmt) (interface{}, error) {
	return "(error)", nil
}

func (printer *Printer) VisitExprStmt(stmt *ExprStmt) (interface{}, error) {
	return printer.parenthesize("expr", stmt.Expr), nil
}

func (printer *Printer) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	if stmt.ElseBranch == nil {
		return printer.parenthesize("if", stmt.Cond, stmt.ThenBranch), nil
	}
	return printer.parenthesize("if", stmt.Cond, stmt.ThenBranch, stmt.ElseBranch), nil
}

func (printer *Printer) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	return printer.parenthesize("print", stmt.Expr), nil
}

func (printer *Printer) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	if stmt.Init == nil {
		return printer.parenthesize("var", stmt.Name.Lexeme), nil
	}
	return printer.parenthesize("var", stmt.Name.Lexeme, stmt.Init), nil
}

func (printer *Printer) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	return printer.parenthesize("while", stmt.Cond, stmt.Body), nil
}

// parenthesize accepts strings, expressions and statements as its parts
func (printer *Printer) parenthesize(name string, parts ...interface{}) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, part := range parts {
		b.WriteString(" ")
		switch p := part.(type) {
		case Expr:
			b.WriteString(printer.Print(p))
		case Stmt:
			b.WriteString(printer.PrintStmt(p))
		default:
			fmt.Fprintf(&b, "%v", p)
		}
	}
	b.WriteString(")")
	return b.String()
}

func formatLiteral(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
