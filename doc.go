// Copyright 2017 The Calc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Calc is a keypad calculator. It models the single display of a pocket
calculator: keys are pressed one at a time, digits and operators are
appended to the display, and the = key evaluates it.

Usage:

	calc [flags]
	calc eval [flags] expression...
	calc demo [flags]

With no command, calc reads lines of keys from standard input. The keys on a
line are separated by spaces and are pressed in order. After each line the
display is printed.

Keys

Digit and operator keys are appended to the display. A display showing
just 0 is replaced by the key instead, unless the key is a decimal point.

	0 1 2 3 4 5 6 7 8 9 .   digits and decimal point
	+ − × ÷                 add, subtract, multiply, divide
	( )                     parentheses
	=                       evaluate the display
	AC                      clear the display to 0
	←                       delete the last character

For convenience the keys - * / may be typed for − × ÷, C for AC and
del for ←. A key may hold several characters; 12+3 presses all of them.

Evaluation

Arithmetic is exact. Multiplication and division bind tighter than addition
and subtraction, and operators of equal precedence group to the left.
Missing closing parentheses are supplied. The result is rounded to six
decimal places (see --precision) and trailing zeros are dropped, so 1 ÷ 3
shows 0.333333 and 0.1 + 0.2 shows 0.3.

An expression that cannot be evaluated, such as 5 ÷ 0 or 3 ×, shows 0.
The same happens when ← deletes the last remaining character.

The variable _ holds the last result evaluated in a session.

Flags

	--precision n
		Round results to n decimal places (default 6).
	--prompt s
		Print s before reading each line of keys.
	--debug name
		Enable a debugging trace. The names are panic, parse and tokens.
		The flag may be repeated.
	--strict
		For eval: report expressions that cannot be evaluated and
		exit with a non-zero status.
	--script
		For demo: run the whole script without waiting for input.
*/
package main
