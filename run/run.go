// Copyright 2017 The Calc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for calc.
// It is factored out of main so it can be used for tests.
// This layout also helps out calc/mobile.
package run // import "keypad.dev/calc/run"

import (
	"keypad.dev/calc/parse"
	"keypad.dev/calc/scan"
	"keypad.dev/calc/value"
)

// Eval scans, parses and evaluates the expression.
// Any failure is returned as a value.Error. If the panic debug flag is
// set, failures are not recovered, which preserves the stack for debugging.
func Eval(context value.Context, expr string) (result value.Number, err error) {
	conf := context.Config()
	defer func() {
		if conf.Debug("panic") {
			return
		}
		e := recover()
		if e == nil {
			return
		}
		if e, ok := e.(value.Error); ok {
			result, err = value.Zero, e
			return
		}
		panic(e)
	}()
	scanner := scan.New(context, expr)
	parser := parse.NewParser(scanner, context)
	return parser.Expr().Eval(context), nil
}

// Calc is like Eval but returns the result formatted for display.
func Calc(context value.Context, expr string) (string, error) {
	v, err := Eval(context, expr)
	if err != nil {
		return "", err
	}
	return v.Sprint(context.Config()), nil
}
