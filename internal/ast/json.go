package ast

import (
	"encoding/json"
	"io"
)

type node = map[string]interface{}

// jsonBuilder converts the tree into generic maps that encoding/json can
// serialize. Every node carries a "type" key naming its variant.
type jsonBuilder struct{}

// EncodeJSON writes the statements as an indented JSON array.
func EncodeJSON(w io.Writer, stmts []Stmt) error {
	b := jsonBuilder{}
	nodes := make([]interface{}, 0, len(stmts))
	for _, stmt := range stmts {
		nodes = append(nodes, b.stmt(stmt))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(nodes)
}

// EncodeExprJSON writes a single expression as an indented JSON object.
func EncodeExprJSON(w io.Writer, expr Expr) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonBuilder{}.expr(expr))
}

func (b jsonBuilder) expr(expr Expr) interface{} {
	if expr == nil {
		return nil
	}
	n, _ := expr.Accept(b)
	return n
}

func (b jsonBuilder) stmt(stmt Stmt) interface{} {
	if stmt == nil {
		return nil
	}
	n, _ := stmt.Accept(b)
	return n
}

func (b jsonBuilder) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	return node{"type": "Assign", "name": expr.Name.Lexeme, "value": b.expr(expr.Val)}, nil
}

func (b jsonBuilder) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return node{
		"type":     "Binary",
		"operator": expr.Op.Lexeme,
		"left":     b.expr(expr.Lhs),
		"right":    b.expr(expr.Rhs),
	}, nil
}

func (b jsonBuilder) VisitGroupExpr(expr *GroupExpr) (interface{}, error) {
	return node{"type": "Grouping", "expression": b.expr(expr.Expr)}, nil
}

func (b jsonBuilder) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return node{"type": "Literal", "value": expr.Val}, nil
}

func (b jsonBuilder) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	return node{
		"type":     "Logical",
		"operator": expr.Op.Lexeme,
		"left":     b.expr(expr.Lhs),
		"right":    b.expr(expr.Rhs),
	}, nil
}

func (b jsonBuilder) VisitTernaryExpr(expr *TernaryExpr) (interface{}, error) {
	return node{
		"type":      "Ternary",
		"condition": b.expr(expr.Cond),
		"then":      b.expr(expr.Then),
		"else":      b.expr(expr.Else),
	}, nil
}

func (b jsonBuilder) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return node{"type": "Unary", "operator": expr.Op.Lexeme, "operand": b.expr(expr.Expr)}, nil
}

func (b jsonBuilder) VisitVarExpr(expr *VarExpr) (interface{}, error) {
	return node{"type": "Variable", "name": expr.Name.Lexeme}, nil
}

func (b jsonBuilder) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	stmts := make([]interface{}, 0, len(stmt.Stmts))
	for _, s := range stmt.Stmts {
		stmts = append(stmts, b.stmt(s))
	}
	return node{"type": "Block", "statements": stmts}, nil
}

func (b jsonBuilder) VisitBreakStmt(stmt *BreakStmt) (interface{}, error) {
	return node{"type": "Break", "line": stmt.Keyword.Line}, nil
}

func (b jsonBuilder) VisitErrorStmt(stmt *ErrorStmt) (interface{}, error) {
	n := node{"type": "Error", "line": stmt.Start.Line}
	if stmt.Err != nil {
		n["error"] = stmt.Err.Error()
	}
	return n, nil
}

func (b jsonBuilder) VisitExprStmt(stmt *ExprStmt) (interface{}, error) {
	return node{"type": "Expression", "expression": b.expr(stmt.Expr)}, nil
}

func (b jsonBuilder) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	return node{
		"type":      "If",
		"condition": b.expr(stmt.Cond),
		"then":      b.stmt(stmt.ThenBranch),
		"else":      b.stmt(stmt.ElseBranch),
	}, nil
}

func (b jsonBuilder) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	return node{"type": "Print", "expression": b.expr(stmt.Expr)}, nil
}

func (b jsonBuilder) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	return node{"type": "Var", "name": stmt.Name.Lexeme, "initializer": b.expr(stmt.Init)}, nil
}

func (b jsonBuilder) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	return node{"type": "While", "condition": b.expr(stmt.Cond), "body": b.stmt(stmt.Body)}, nil
}
