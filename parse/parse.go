// Copyright 2017 The Calc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse builds expression trees from scanned keypad input.
package parse // import "keypad.dev/calc/parse"

import (
	"fmt"

	"keypad.dev/calc/scan"
	"keypad.dev/calc/value"
)

// tree formats an expression in an unambiguous form for debugging.
// It generates the output for the parse debug flag.
func tree(e interface{}) string {
	switch e := e.(type) {
	case value.Number:
		return fmt.Sprintf("<num %s>", e)
	case *value.VarExpr:
		return fmt.Sprintf("<var %s>", e.Name)
	case *value.UnaryExpr:
		return fmt.Sprintf("(%s %s)", e.Op, tree(e.Right))
	case *value.BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", tree(e.Left), e.Op, tree(e.Right))
	default:
		return fmt.Sprintf("%T", e)
	}
}

// Binary operator precedence. Unary minus binds tighter than all of these.
var precedence = map[string]int{
	"+": 1,
	"-": 1,
	"*": 2,
	"/": 2,
}

// Parser stores the state for the calc parser.
type Parser struct {
	scanner *scan.Scanner
	tokens  []scan.Token
	context value.Context
}

// NewParser returns a new parser that will read from the scanner.
func NewParser(scanner *scan.Scanner, context value.Context) *Parser {
	return &Parser{
		scanner: scanner,
		context: context,
	}
}

func (p *Parser) next() scan.Token {
	tok := p.peek()
	if tok.Type != scan.EOF {
		p.tokens = p.tokens[1:]
	}
	return tok
}

func (p *Parser) peek() scan.Token {
	if len(p.tokens) == 0 {
		return scan.Token{Type: scan.EOF}
	}
	return p.tokens[0]
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.tokens = nil
	value.Errorf(format, args...)
}

// Expr reads the whole input and returns the expression it holds.
// Errors are reported by panicking with a value.Error.
//
// Expr
//
//	operand
//	Expr binop Expr
//
// operand
//
//	number
//	identifier
//	'-' operand
//	'(' Expr ')'
func (p *Parser) Expr() value.Expr {
	p.readTokens()
	p.tokens = balance(simplify(p.tokens))
	if p.peek().Type == scan.EOF {
		p.errorf("empty expression")
	}
	expr := p.expr(1)
	if tok := p.peek(); tok.Type != scan.EOF {
		p.errorf("unexpected %s", tok)
	}
	if p.context.Config().Debug("parse") {
		fmt.Fprintln(p.context.Config().Output(), tree(expr))
	}
	return expr
}

// readTokens reads all tokens before parsing. Scanning errors are
// reported before any parsing is done.
func (p *Parser) readTokens() {
	p.tokens = p.tokens[:0]
	for {
		tok := p.scanner.Next()
		switch tok.Type {
		case scan.Error:
			p.errorf("%s", tok)
		case scan.EOF:
			return
		}
		p.tokens = append(p.tokens, tok)
	}
}

// expr parses a sequence of binary operations whose operators
// have precedence at least prec. Operators of equal precedence
// associate to the left.
func (p *Parser) expr(prec int) value.Expr {
	left := p.operand()
	for {
		tok := p.peek()
		if tok.Type != scan.Operator {
			return left
		}
		q := precedence[tok.Text]
		if q < prec {
			return left
		}
		p.next()
		left = &value.BinaryExpr{
			Op:    tok.Text,
			Left:  left,
			Right: p.expr(q + 1),
		}
	}
}

func (p *Parser) operand() value.Expr {
	tok := p.next()
	switch tok.Type {
	case scan.Number:
		n, err := value.Parse(tok.Text)
		if err != nil {
			p.errorf("%s", err)
		}
		return n
	case scan.Identifier:
		return &value.VarExpr{Name: tok.Text}
	case scan.Operator:
		if tok.Text == "-" {
			return &value.UnaryExpr{Op: "-", Right: p.operand()}
		}
	case scan.LeftParen:
		expr := p.expr(1)
		if tok := p.next(); tok.Type != scan.RightParen {
			p.errorf("expected ')', found %s", tok)
		}
		return expr
	case scan.EOF:
		p.errorf("missing operand")
	}
	p.errorf("unexpected %s", tok)
	return nil
}
