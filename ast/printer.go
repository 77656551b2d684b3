/*
File    : golox/ast/printer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"bytes"
	"fmt"

	"github.com/akashmaji946/golox/token"
)

// Printer is a Visitor that renders an expression tree in parenthesized
// prefix form: `(+ 1 2)`, `(group (* 2 3))`, `(- 5)`, `nil`, `true`.
//
// It is the `parse` command's output stage. The printed form is not Lox
// source: operators come first and strings are printed without quotes,
// so it does not reparse to the same tree.
type Printer struct{}

// Print renders e and returns the resulting string.
func Print(e Expr) string {
	return fmt.Sprintf("%v", e.Accept(&Printer{}))
}

// VisitBinary renders `(<op> <left> <right>)`.
func (p *Printer) VisitBinary(e *Binary) interface{} {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right)
}

// VisitGrouping renders `(group <inner>)`.
func (p *Printer) VisitGrouping(e *Grouping) interface{} {
	return p.parenthesize("group", e.Inner)
}

// VisitLiteral renders nil/true/false verbatim, numbers with the
// whole/fractional rule, and strings as their raw contents.
func (p *Printer) VisitLiteral(e *Literal) interface{} {
	switch v := e.Value.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return token.FormatNumber(v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// VisitUnary renders `(<op> <right>)`.
func (p *Printer) VisitUnary(e *Unary) interface{} {
	return p.parenthesize(e.Op.Lexeme, e.Right)
}

func (p *Printer) parenthesize(name string, exprs ...Expr) string {
	var buf bytes.Buffer
	buf.WriteString("(")
	buf.WriteString(name)
	for _, e := range exprs {
		buf.WriteString(" ")
		buf.WriteString(fmt.Sprintf("%v", e.Accept(p)))
	}
	buf.WriteString(")")
	return buf.String()
}
