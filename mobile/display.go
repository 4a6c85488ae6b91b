// Copyright 2017 The Calc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mobile

import (
	"bufio"
	"io"
	"strings"
)

// Display is the text shown on the calculator's screen. It doubles as the
// input buffer and the result. It starts at "0" and is never empty.
type Display struct {
	calc *Calculator
	text string
}

// NewDisplay returns a display showing "0" that evaluates with c.
// A nil c selects a Calculator with the default configuration.
func NewDisplay(c *Calculator) *Display {
	if c == nil {
		c = New(nil)
	}
	return &Display{
		calc: c,
		text: Fallback,
	}
}

// Text returns the current display string.
func (d *Display) Text() string {
	return d.text
}

// Reset returns the display to "0".
func (d *Display) Reset() {
	d.text = Fallback
}

// Press appends the label of a digit or operator key. A display showing
// just "0" is replaced by the label instead, unless the label is ".".
func (d *Display) Press(input string) {
	if input == "" {
		return
	}
	if d.text != Fallback || input == "." {
		d.text += input
	} else {
		d.text = input
	}
}

// Do applies the operation key labeled symbol.
func (d *Display) Do(symbol string) {
	d.text = d.calc.Operate(d.text, symbol)
}

// Key presses a single key: operation keys are applied with Do,
// all others with Press.
func (d *Display) Key(key string) {
	if _, ok := ParseOp(key); ok {
		d.Do(key)
		return
	}
	d.Press(key)
}

// Keys presses each space-separated key in line, in order,
// and returns the resulting display string.
func (d *Display) Keys(line string) string {
	for _, key := range strings.Fields(line) {
		d.Key(key)
	}
	return d.text
}

// Demo represents a running line-by-line demonstration.
type Demo struct {
	scanner *bufio.Scanner
	display *Display
}

// NewDemo returns a new Demo that will scan the input text line by line,
// pressing the keys of each line on a fresh display.
func NewDemo(input string) *Demo {
	return &Demo{
		scanner: bufio.NewScanner(strings.NewReader(input)),
		display: NewDisplay(nil),
	}
}

// Next returns the display after the keys of the next line of input are
// pressed. Blank lines and lines beginning with # are skipped.
// It returns ("", io.EOF) at EOF.
func (d *Demo) Next() (result string, err error) {
	for d.scanner.Scan() {
		line := strings.TrimSpace(d.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return d.display.Keys(line), nil
	}
	if err := d.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
