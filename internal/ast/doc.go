// Package ast defines the syntax tree produced by the parser.
//
// Expressions and statements are closed sets of node types dispatched through
// ExprVisitor and StmtVisitor. The node files are generated:
//
//	go generate ./internal/ast
//
// Every node owns its children, the tree never shares nodes between parents.
package ast

//go:generate go run ../cmd/ast_codegen .
