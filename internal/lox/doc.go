/*
Package lox is the front end of glox. It turns a source string into a syntax
tree by running the scanner and the parser back to back, and collects every
diagnostic either of them reports.

Grammars

	program     --> decl* EOF ;
	decl        --> varDecl | stmt ;
	varDecl     --> "var" IDENT ( "=" expr )? ";" ;
	stmt        --> breakStmt | forStmt | ifStmt | printStmt
	              | whileStmt | block | exprStmt ;
	expr        --> comma ;
	comma       --> assignment ( "," assignment )* ;
	assignment  --> IDENT "=" assignment | ternary ;
	ternary     --> or ( "?" ternary ":" ternary )? ;

The remaining rules are documented on parser.Parser and the full grammar is
available in EBNF form from the grammar package.

"primary" rule has some matches for error generations:
  - Binary operator '!=', '==', '>', '>=', '<', '<=', '+', '/' or '*' not
    expected at the beginning of an expression.
*/
package lox
