// Copyright 2017 The Calc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"keypad.dev/calc/scan"
	"keypad.dev/calc/value"
)

// simplify rewrites runs of + and - so that every remaining minus
// is a unary operator:
//
//	- -             => +
//	<operator> +    => <operator>
//	<start> +       => <start>
//	<operand> -     => <operand> + -
//
// where an operand is a number, an identifier or a closing parenthesis.
func simplify(tokens []scan.Token) []scan.Token {
	out := make([]scan.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type == scan.Operator && (tok.Text == "+" || tok.Text == "-") {
			out = pushSign(out, tok)
			continue
		}
		out = append(out, tok)
	}
	return out
}

func pushSign(out []scan.Token, tok scan.Token) []scan.Token {
	if len(out) == 0 {
		if tok.Text == "-" {
			out = append(out, tok)
		}
		return out
	}
	last := out[len(out)-1]
	switch tok.Text {
	case "+":
		if isOperand(last) {
			out = append(out, tok)
		}
	case "-":
		switch {
		case last.Type == scan.Operator && last.Text == "-":
			out = out[:len(out)-1]
			tok.Text = "+"
			out = pushSign(out, tok)
		case isOperand(last):
			plus := tok
			plus.Text = "+"
			out = append(out, plus, tok)
		default:
			out = append(out, tok)
		}
	}
	return out
}

func isOperand(tok scan.Token) bool {
	switch tok.Type {
	case scan.Number, scan.Identifier, scan.RightParen:
		return true
	}
	return false
}

// balance appends the closing parentheses missing at the end of the input.
// A closing parenthesis with no opening one is an error.
func balance(tokens []scan.Token) []scan.Token {
	open := 0
	offset := 0
	for _, tok := range tokens {
		switch tok.Type {
		case scan.LeftParen:
			open++
		case scan.RightParen:
			open--
			if open < 0 {
				value.Errorf("unbalanced parentheses at offset %d", tok.Offset)
			}
		}
		offset = tok.Offset + len(tok.Text)
	}
	for ; open > 0; open-- {
		tokens = append(tokens, scan.Token{Type: scan.RightParen, Offset: offset, Text: ")"})
	}
	return tokens
}
