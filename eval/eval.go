/*
File    : golox/eval/eval.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval reduces an ast.Expr to a value.Value via a single
// post-order traversal, enforcing the operand-type preconditions each
// operator carries. Evaluation is deterministic and side-effect-free
// except for the caller's final print.
package eval

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/token"
	"github.com/akashmaji946/golox/value"
)

// RuntimeError carries the offending operator's token for line
// attribution, carrying one of the canonical messages spec.md defines:
// "Operand must be a number." (unary) and "Operands must be numbers."
// / "Operands must be two numbers or two strings." (binary).
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

// Evaluator walks an ast.Expr tree and computes its value.Value. It
// implements ast.Visitor.
type Evaluator struct{}

// New creates an Evaluator.
func New() *Evaluator { return &Evaluator{} }

// Eval evaluates expr, returning (nil, err) if a *RuntimeError occurred.
func (e *Evaluator) Eval(expr ast.Expr) (result value.Value, err *RuntimeError) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(*RuntimeError); ok {
				result, err = nil, re
				return
			}
			panic(r)
		}
	}()
	return expr.Accept(e).(value.Value), nil
}

// VisitLiteral yields the literal's value verbatim.
func (e *Evaluator) VisitLiteral(n *ast.Literal) interface{} {
	return value.FromLiteral(n.Value)
}

// VisitGrouping yields the evaluated inner expression.
func (e *Evaluator) VisitGrouping(n *ast.Grouping) interface{} {
	return e.eval(n.Inner)
}

// VisitUnary applies `!` (logical NOT of truthiness) or `-` (numeric
// negation, requiring a number operand).
func (e *Evaluator) VisitUnary(n *ast.Unary) interface{} {
	right := e.eval(n.Right)
	switch n.Op.Kind {
	case token.BANG:
		return value.Bool(!right.Truthy())
	case token.MINUS:
		num := e.checkNumber(n.Op, right)
		return value.Number(-num)
	}
	panic(&RuntimeError{Token: n.Op, Message: "Operand must be a number."})
}

// VisitBinary applies the ten binary operators spec.md §4.3 defines.
func (e *Evaluator) VisitBinary(n *ast.Binary) interface{} {
	left := e.eval(n.Left)
	right := e.eval(n.Right)

	switch n.Op.Kind {
	case token.EQUAL_EQUAL:
		return value.Bool(value.Equal(left, right))
	case token.BANG_EQUAL:
		return value.Bool(!value.Equal(left, right))
	case token.PLUS:
		if ln, lok := left.(value.Number); lok {
			if rn, rok := right.(value.Number); rok {
				return ln + rn
			}
		}
		if ls, lok := left.(value.Str); lok {
			if rs, rok := right.(value.Str); rok {
				return ls + rs
			}
		}
		panic(&RuntimeError{Token: n.Op, Message: "Operands must be two numbers or two strings."})
	}

	ln, rn := e.checkNumbers(n.Op, left, right)
	switch n.Op.Kind {
	case token.MINUS:
		return ln - rn
	case token.SLASH:
		return ln / rn
	case token.STAR:
		return ln * rn
	case token.GREATER:
		return value.Bool(ln > rn)
	case token.GREATER_EQUAL:
		return value.Bool(ln >= rn)
	case token.LESS:
		return value.Bool(ln < rn)
	case token.LESS_EQUAL:
		return value.Bool(ln <= rn)
	}
	panic(&RuntimeError{Token: n.Op, Message: "Operands must be numbers."})
}

func (e *Evaluator) eval(expr ast.Expr) value.Value {
	return expr.Accept(e).(value.Value)
}

func (e *Evaluator) checkNumber(op token.Token, v value.Value) value.Number {
	n, ok := v.(value.Number)
	if !ok {
		panic(&RuntimeError{Token: op, Message: "Operand must be a number."})
	}
	return n
}

func (e *Evaluator) checkNumbers(op token.Token, l, r value.Value) (value.Number, value.Number) {
	ln, lok := l.(value.Number)
	rn, rok := r.(value.Number)
	if !lok || !rok {
		panic(&RuntimeError{Token: op, Message: "Operands must be numbers."})
	}
	return ln, rn
}
