package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// SourcePrinter turns a syntax tree back into source text. Grouping nodes are
// the only place where parentheses are written, so printing a tree that came
// out of the parser and parsing the text again gives back the same tree.
type SourcePrinter struct {
	indent string
	depth  int
	out    strings.Builder
}

// NewSourcePrinter creates a printer that indents nested blocks with the
// given string.
func NewSourcePrinter(indent string) *SourcePrinter {
	return &SourcePrinter{indent: indent}
}

// Print returns the source text of the given statements.
func (printer *SourcePrinter) Print(stmts []Stmt) string {
	printer.out.Reset()
	printer.depth = 0
	for _, stmt := range stmts {
		printer.line(stmt)
	}
	return printer.out.String()
}

// PrintExpr returns the source text of a single expression.
func (printer *SourcePrinter) PrintExpr(expr Expr) string {
	s, _ := expr.Accept(printer)
	return s.(string)
}

func (printer *SourcePrinter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	return fmt.Sprintf("%s = %s", expr.Name.Lexeme, printer.PrintExpr(expr.Val)), nil
}

func (printer *SourcePrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	if expr.Op.Lexeme == "," {
		return fmt.Sprintf("%s, %s", printer.PrintExpr(expr.Lhs), printer.PrintExpr(expr.Rhs)), nil
	}
	return printer.infix(expr.Lhs, expr.Op.Lexeme, expr.Rhs), nil
}

func (printer *SourcePrinter) VisitGroupExpr(expr *GroupExpr) (interface{}, error) {
	return "(" + printer.PrintExpr(expr.Expr) + ")", nil
}

func (printer *SourcePrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	switch v := expr.Val.(type) {
	case nil:
		return "nil", nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case string:
		// strings have no escape sequences
		return `"` + v + `"`, nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func (printer *SourcePrinter) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	return printer.infix(expr.Lhs, expr.Op.Lexeme, expr.Rhs), nil
}

func (printer *SourcePrinter) VisitTernaryExpr(expr *TernaryExpr) (interface{}, error) {
	return fmt.Sprintf(
		"%s ? %s : %s",
		printer.PrintExpr(expr.Cond),
		printer.PrintExpr(expr.Then),
		printer.PrintExpr(expr.Else),
	), nil
}

func (printer *SourcePrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return expr.Op.Lexeme + printer.PrintExpr(expr.Expr), nil
}

func (printer *SourcePrinter) VisitVarExpr(expr *VarExpr) (interface{}, error) {
	return expr.Name.Lexeme, nil
}

func (printer *SourcePrinter) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	printer.out.WriteString("{\n")
	printer.depth++
	for _, s := range stmt.Stmts {
		printer.line(s)
	}
	printer.depth--
	printer.pad()
	printer.out.WriteString("}")
	return nil, nil
}

func (printer *SourcePrinter) VisitBreakStmt(stmt *BreakStmt) (interface{}, error) {
	printer.out.WriteString("break;")
	return nil, nil
}

func (printer *SourcePrinter) VisitErrorStmt(stmt *ErrorStmt) (interface{}, error) {
	printer.out.WriteString("// error")
	return nil, nil
}

func (printer *SourcePrinter) VisitExprStmt(stmt *ExprStmt) (interface{}, error) {
	printer.out.WriteString(printer.PrintExpr(stmt.Expr) + ";")
	return nil, nil
}

func (printer *SourcePrinter) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	fmt.Fprintf(&printer.out, "if (%s) ", printer.PrintExpr(stmt.Cond))
	stmt.ThenBranch.Accept(printer)
	if stmt.ElseBranch != nil {
		printer.out.WriteString(" else ")
		stmt.ElseBranch.Accept(printer)
	}
	return nil, nil
}

func (printer *SourcePrinter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	fmt.Fprintf(&printer.out, "print %s;", printer.PrintExpr(stmt.Expr))
	return nil, nil
}

func (printer *SourcePrinter) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	if stmt.Init == nil {
		fmt.Fprintf(&printer.out, "var %s;", stmt.Name.Lexeme)
		return nil, nil
	}
	fmt.Fprintf(&printer.out, "var %s = %s;", stmt.Name.Lexeme, printer.PrintExpr(stmt.Init))
	return nil, nil
}

func (printer *SourcePrinter) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	fmt.Fprintf(&printer.out, "while (%s) ", printer.PrintExpr(stmt.Cond))
	stmt.Body.Accept(printer)
	return nil, nil
}

func (printer *SourcePrinter) infix(lhs Expr, op string, rhs Expr) string {
	return fmt.Sprintf("%s %s %s", printer.PrintExpr(lhs), op, printer.PrintExpr(rhs))
}

// line writes a statement on its own line at the current depth
func (printer *SourcePrinter) line(stmt Stmt) {
	printer.pad()
	stmt.Accept(printer)
	printer.out.WriteString("\n")
}

func (printer *SourcePrinter) pad() {
	for i := 0; i < printer.depth; i++ {
		printer.out.WriteString(printer.indent)
	}
}
