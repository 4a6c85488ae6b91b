// Copyright 2017 The Calc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate stringer -type Type

// Package scan turns a keypad expression into tokens.
package scan // import "keypad.dev/calc/scan"

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"keypad.dev/calc/value"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type   Type   // The type of this item.
	Offset int    // The byte offset at which this token appears.
	Text   string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF        Type = iota // zero value so an empty Token is EOF
	Error                  // error occurred; value is text of error
	Number                 // digits and decimal points
	Identifier             // alphanumeric identifier
	Operator               // + - * /
	LeftParen              // '('
	RightParen             // ')'
)

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case i.Type == Error:
		return "error: " + i.Text
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

const eof = -1

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	context   value.Context
	input     string // the expression being scanned.
	lastRune  rune   // most recent return from next()
	lastWidth int    // size of that rune
	pos       int    // current position in the input
	start     int    // start position of this item
	token     Token
}

// New creates and returns a new scanner for the expression.
func New(context value.Context, input string) *Scanner {
	return &Scanner{
		context: context,
		input:   input,
	}
}

// next returns the next rune in the input.
func (l *Scanner) next() rune {
	if l.pos >= len(l.input) {
		l.lastRune, l.lastWidth = eof, 0
		return eof
	}
	l.lastRune, l.lastWidth = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.lastWidth
	return l.lastRune
}

// peek returns but does not consume the next rune in the input.
func (l *Scanner) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// backup steps back one rune. Should only be called once per call of next.
func (l *Scanner) backup() {
	if l.lastRune == eof {
		return
	}
	l.pos -= l.lastWidth
}

// emit passes an item back to the client.
func (l *Scanner) emit(t Type) stateFn {
	l.token = Token{t, l.start, l.input[l.start:l.pos]}
	config := l.context.Config()
	if config.Debug("tokens") {
		fmt.Fprintf(config.Output(), "%d: emit %s\n", l.start, l.token)
	}
	l.start = l.pos
	return nil
}

// acceptRun consumes a run of runes from the valid set.
func (l *Scanner) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
}

// errorf returns an error token and empties the input.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.token = Token{Error, l.start, fmt.Sprintf(format, args...)}
	l.start = len(l.input)
	l.pos = len(l.input)
	return nil
}

// Next returns the next token. At the end of the input it returns EOF,
// as many times as it is called.
func (l *Scanner) Next() Token {
	l.lastRune = eof
	l.lastWidth = 0
	l.token = Token{EOF, l.pos, "EOF"}
	state := lexAny
	for state != nil {
		state = state(l)
	}
	return l.token
}

// state functions

// lexAny scans non-space items.
func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		return nil
	case isSpace(r):
		return lexSpace
	case r == '.' || isDigit(r):
		l.backup()
		return lexNumber
	case isOperator(r):
		return l.emit(Operator)
	case r == '(':
		return l.emit(LeftParen)
	case r == ')':
		return l.emit(RightParen)
	case r == '_' || unicode.IsLetter(r):
		return lexIdentifier
	default:
		return l.errorf("unexpected character %#U", r)
	}
}

// lexSpace scans a run of space characters.
// One space has already been seen.
func lexSpace(l *Scanner) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	// Skips over the pending input.
	l.start = l.pos
	return lexAny
}

// lexNumber scans a run of digits and decimal points. Whether the
// run is a well-formed number is decided by the value package.
func lexNumber(l *Scanner) stateFn {
	l.acceptRun("0123456789.")
	if r := l.peek(); isAlphaNumeric(r) {
		l.next()
		return l.errorf("bad number syntax: %q", l.input[l.start:l.pos])
	}
	return l.emit(Number)
}

// lexIdentifier scans an alphanumeric.
// The first character has been consumed.
func lexIdentifier(l *Scanner) stateFn {
	for isAlphaNumeric(l.peek()) {
		l.next()
	}
	return l.emit(Identifier)
}

// isSpace reports whether r is a space character, including end of line.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// isAlphaNumeric reports whether r is an alphabetic, digit, or underscore.
func isAlphaNumeric(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isOperator(r rune) bool {
	return r == '+' || r == '-' || r == '*' || r == '/'
}
