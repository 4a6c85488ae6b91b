// Copyright 2017 The Calc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mobile

import "unicode/utf8"

// Op identifies an operation key.
type Op int

const (
	Equals    Op = iota // "="
	Clear               // "AC"
	Backspace           // "←"
	numOps
)

var opSymbols = [numOps]string{
	Equals:    "=",
	Clear:     "AC",
	Backspace: "←",
}

func (op Op) String() string {
	if op < 0 || op >= numOps {
		return "Op(?)"
	}
	return opSymbols[op]
}

// ParseOp returns the operation labeled by symbol.
// The boolean is false if symbol names no operation.
func ParseOp(symbol string) (Op, bool) {
	for op, s := range opSymbols {
		if s == symbol {
			return Op(op), true
		}
	}
	return 0, false
}

// operations is the operation table. Each entry maps a display string to
// its replacement; an empty replacement is turned into Fallback by Operate.
var operations = [numOps]func(*Calculator, string) string{
	Equals:    (*Calculator).equals,
	Clear:     clearDisplay,
	Backspace: backspace,
}

// equals evaluates the display. Errors are absorbed: the display
// becomes empty, hence Fallback.
func (c *Calculator) equals(display string) string {
	result, err := c.Evaluate(Translate(display))
	if err != nil {
		return ""
	}
	return result
}

func clearDisplay(*Calculator, string) string {
	return Fallback
}

// backspace removes the last character, so a glyph such as × goes as a unit.
func backspace(_ *Calculator, display string) string {
	_, w := utf8.DecodeLastRuneInString(display)
	return display[:len(display)-w]
}
