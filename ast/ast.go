/*
File    : golox/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the expression syntax tree produced by the parser:
// a closed, four-variant tagged union (Binary, Grouping, Literal, Unary)
// plus the Visitor interface used to walk it. Each Expr node is produced
// once by the parser and is read-only thereafter.
package ast

import "github.com/akashmaji946/golox/token"

// Expr is the sealed interface implemented by the four expression node
// kinds. The set of variants is closed and fixed; callers exhaustively
// match on it via Visitor rather than type-switching ad hoc.
type Expr interface {
	Accept(v Visitor) interface{}
}

// Visitor dispatches over the four Expr variants. Implementations (the
// pretty-printer, the evaluator) each provide their own return-value
// semantics via the interface{} result.
type Visitor interface {
	VisitBinary(e *Binary) interface{}
	VisitGrouping(e *Grouping) interface{}
	VisitLiteral(e *Literal) interface{}
	VisitUnary(e *Unary) interface{}
}

// Binary is a left-and-right-operand expression joined by an operator
// token, e.g. `1 + 2` or `a == b`.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Accept dispatches v.VisitBinary.
func (e *Binary) Accept(v Visitor) interface{} { return v.VisitBinary(e) }

// Grouping is an explicit parenthesized subexpression, kept as its own
// node so the pretty-printer can distinguish it from operator precedence.
type Grouping struct {
	Inner Expr
}

// Accept dispatches v.VisitGrouping.
func (e *Grouping) Accept(v Visitor) interface{} { return v.VisitGrouping(e) }

// Literal wraps a constant value: nil, a bool, a float64, or a string.
type Literal struct {
	Value interface{}
}

// Accept dispatches v.VisitLiteral.
func (e *Literal) Accept(v Visitor) interface{} { return v.VisitLiteral(e) }

// Unary is a single right operand preceded by a prefix operator, e.g.
// `-x` or `!flag`.
type Unary struct {
	Op    token.Token
	Right Expr
}

// Accept dispatches v.VisitUnary.
func (e *Unary) Accept(v Visitor) interface{} { return v.VisitUnary(e) }
