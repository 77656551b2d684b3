/*
File    : golox/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser with precedence
// climbing for Lox's expression grammar:
//
//	expression → equality
//	equality   → comparison ( ( "!=" | "==" ) comparison )*
//	comparison → term       ( ( ">" | ">=" | "<" | "<=" ) term )*
//	term       → factor     ( ( "-" | "+" ) factor )*
//	factor     → unary      ( ( "/" | "*" ) unary )*
//	unary      → ( "!" | "-" ) unary | primary
//	primary    → "false" | "true" | "nil" | NUMBER | STRING | "(" expression ")"
//
// Every binary rule folds left-associatively by iterating `for p.match(...)`
// and wrapping the accumulated expression; unary recurses into itself, so
// it is right-associative.
//
// This core aborts on the first syntactic error: the parser panics with
// a sentinel parseError value, recovered at the top of Parse, which then
// returns (nil, false). No statement-level synchronization is performed
// here; a future statement grammar would hook in at that recovery point.
package parser

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/diag"
	"github.com/akashmaji946/golox/token"
)

// Parser holds the token stream and current read position.
type Parser struct {
	tokens  []token.Token
	current int
	ctx     *diag.Context
}

// New creates a Parser over tokens, reporting syntax errors through ctx.
func New(tokens []token.Token, ctx *diag.Context) *Parser {
	return &Parser{tokens: tokens, ctx: ctx}
}

// parseError is the sentinel panicked on the first syntax error and
// recovered at the top of Parse.
type parseError struct{}

// Parse consumes the token stream and returns the resulting expression,
// or (nil, false) if a syntax error was reported.
func (p *Parser) Parse() (expr ast.Expr, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseError := r.(parseError); isParseError {
				expr, ok = nil, false
				return
			}
			panic(r)
		}
	}()
	return p.expression(), true
}

func (p *Parser) expression() ast.Expr {
	return p.equality()
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Op: op, Right: right}
	}
	return p.primary()
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Value: false}
	case p.match(token.TRUE):
		return &ast.Literal{Value: true}
	case p.match(token.NIL):
		return &ast.Literal{Value: nil}
	case p.match(token.NUMBER, token.STRING):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.Grouping{Inner: expr}
	}
	panic(p.error(p.peek(), "Expect expression."))
}

// match advances and returns true if the current token is one of kinds.
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it is kind, otherwise
// raises a parse error attributed to the current token.
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.error(p.peek(), message))
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) error(tok token.Token, message string) parseError {
	p.ctx.ReportParse(tok, message)
	return parseError{}
}
