// Copyright 2017 The Calc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec provides the execution context for calc.
package exec // import "keypad.dev/calc/exec"

import (
	"keypad.dev/calc/config"
	"keypad.dev/calc/value"
)

// Symtab is a symbol table, a map of names to values.
type Symtab map[string]value.Number

// Context holds execution context, specifically the binding of names to values.
// It is the only implementation of ../value/Context, but since it references the value
// package, there would be a cycle if that package depended on this type definition.
type Context struct {
	// config is the configuration state used for evaluation, printing, etc.
	// Accessed through the value.Context Config method.
	config *config.Config

	Globals Symtab
}

// NewContext returns a new execution context with no variables bound.
// A nil configuration selects the defaults.
func NewContext(conf *config.Config) *Context {
	if conf == nil {
		conf = new(config.Config)
	}
	return &Context{
		config:  conf,
		Globals: make(Symtab),
	}
}

func (c *Context) Config() *config.Config {
	return c.config
}

// Lookup returns the value of a symbol.
func (c *Context) Lookup(name string) (value.Number, bool) {
	v, ok := c.Globals[name]
	return v, ok
}

// Assign binds the name to the value.
func (c *Context) Assign(name string, val value.Number) {
	c.Globals[name] = val
}
