// Copyright 2017 The Calc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "keypad.dev/calc/config"

// Context is the execution context for evaluation.
// The only implementation is ../exec/Context, but the interface
// is defined here for use by the value package.
type Context interface {
	// Config returns the configuration state for evaluation.
	Config() *config.Config

	// Lookup returns the value bound to the name,
	// and whether there was one.
	Lookup(name string) (Number, bool)

	// Assign binds the value to the name.
	Assign(name string, value Number)
}
