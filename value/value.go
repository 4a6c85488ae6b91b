// Copyright 2017 The Calc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the numbers and expression trees
// evaluated by calc.
package value // import "keypad.dev/calc/value"

import "fmt"

// Error is the type of every failure raised while scanning,
// parsing or evaluating an expression.
type Error string

func (err Error) Error() string {
	return string(err)
}

// Errorf panics with an Error built from the format and arguments.
// The panic is recovered by the run package.
func Errorf(format string, args ...interface{}) {
	panic(Error(fmt.Sprintf(format, args...)))
}
