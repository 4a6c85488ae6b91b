// Copyright 2017 The Calc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings that control how calc
// evaluates and prints. The zero value is ready to use.
package config // import "keypad.dev/calc/config"

import (
	"io"
	"os"
)

// DefaultPrecision is the number of decimal places printed when
// no precision has been set.
const DefaultPrecision = 6

type Config struct {
	prompt    string
	precision int
	precSet   bool
	debug     map[string]bool
	output    io.Writer
	errOutput io.Writer
}

// Precision returns the number of decimal places results are rounded to.
func (c *Config) Precision() int {
	if !c.precSet {
		return DefaultPrecision
	}
	return c.precision
}

// SetPrecision sets the number of decimal places. Negative values are
// treated as zero.
func (c *Config) SetPrecision(p int) {
	if p < 0 {
		p = 0
	}
	c.precision = p
	c.precSet = true
}

// Debug reports whether the named debug flag is set.
func (c *Config) Debug(s string) bool {
	return c.debug[s]
}

func (c *Config) SetDebug(s string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
}

// DebugFlags lists the names accepted by SetDebug.
var DebugFlags = []string{
	"panic",
	"parse",
	"tokens",
}

func (c *Config) Prompt() string {
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Output returns the writer to be used for program output.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

// SetOutput sets the writer to which program output is printed; default is os.Stdout.
func (c *Config) SetOutput(output io.Writer) {
	c.output = output
}

// ErrOutput returns the writer to be used for error output.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

// SetErrOutput sets the writer to which error output is printed; default is os.Stderr.
func (c *Config) SetErrOutput(output io.Writer) {
	c.errOutput = output
}
