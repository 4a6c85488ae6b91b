// Copyright 2017 The Calc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The mobile package provides a very narrow interface to calc,
// suitable for wrapping in a keypad UI for mobile applications.
// It is designed to work well with the gomobile tool by exposing
// only primitive types. It's also handy for testing.
//
// The UI owns the display string. Digit and operator keys are appended
// to it with Display.Press; the operation keys "=", "AC" and "←" are
// applied with Operate, which never returns an empty string.
package mobile

//go:generate sh -c "go run help_gen.go | gofmt >help.go"

import (
	"strings"

	"keypad.dev/calc/config"
	"keypad.dev/calc/exec"
	"keypad.dev/calc/run"
)

// Fallback is shown whenever an operation would leave the display empty,
// including every failed evaluation.
const Fallback = "0"

// glyphs maps the keypad's display glyphs to the operators the
// evaluator understands.
var glyphs = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"−", "-",
)

// Translate returns expr with the display glyphs ×, ÷ and − replaced
// by *, / and -.
func Translate(expr string) string {
	return glyphs.Replace(expr)
}

// Evaluate evaluates a translated expression and returns its value as a
// decimal string. On failure it returns "" and a value.Error.
func Evaluate(expr string) (string, error) {
	return New(nil).Evaluate(expr)
}

// Operate applies the operation named by symbol to the display string
// and returns the new display string. See Calculator.Operate.
func Operate(display, symbol string) string {
	return New(nil).Operate(display, symbol)
}

// Calculator evaluates display strings in a private execution context.
// After each successful evaluation the result is bound to the variable _.
type Calculator struct {
	context *exec.Context
}

// New returns a Calculator using the configuration.
// A nil configuration selects the defaults.
func New(conf *config.Config) *Calculator {
	return &Calculator{
		context: exec.NewContext(conf),
	}
}

// Evaluate evaluates a translated expression. On success it returns the
// value rounded to the configured precision; on failure it returns ""
// and a value.Error.
func (c *Calculator) Evaluate(expr string) (string, error) {
	v, err := run.Eval(c.context, expr)
	if err != nil {
		return "", err
	}
	c.context.Assign("_", v)
	return v.Sprint(c.context.Config()), nil
}

// Operate looks up symbol in the operation table and applies it to the
// display string. An empty result, or a symbol that names no operation,
// yields Fallback, so the returned string is never empty.
func (c *Calculator) Operate(display, symbol string) string {
	op, ok := ParseOp(symbol)
	if !ok {
		return Fallback
	}
	if result := operations[op](c, display); result != "" {
		return result
	}
	return Fallback
}

// Help returns the help text describing the keys.
func Help() string {
	return help
}
