// Copyright 2017 The Calc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"testing"

	"keypad.dev/calc/config"
)

func TestParse(t *testing.T) {
	var tests = []struct {
		input string
		want  Number
	}{
		{"0", NewNumber(0, 1)},
		{"12", NewNumber(12, 1)},
		{"007", NewNumber(7, 1)},
		{"0.5", NewNumber(1, 2)},
		{".25", NewNumber(1, 4)},
		{"5.", NewNumber(5, 1)},
		{"1.125", NewNumber(9, 8)},
	}
	for _, test := range tests {
		n, err := Parse(test.input)
		if err != nil {
			t.Errorf("Parse(%q): %v", test.input, err)
			continue
		}
		if n.Cmp(test.want) != 0 {
			t.Errorf("Parse(%q) = %s; expected %s", test.input, n, test.want)
		}
	}
}

func TestParseError(t *testing.T) {
	for _, input := range []string{"", ".", "1.2.3", "1/2", "1e3", "0x10", "0b1", "1_000", "abc"} {
		if n, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) = %s; expected error", input, n)
		}
	}
}

func TestSprint(t *testing.T) {
	var tests = []struct {
		n         Number
		precision int
		want      string
	}{
		{Zero, 6, "0"},
		{NewNumber(4, 1), 6, "4"},
		{NewNumber(-3, 1), 6, "-3"},
		{NewNumber(1, 2), 6, "0.5"},
		{NewNumber(1, 3), 6, "0.333333"},
		{NewNumber(2, 3), 6, "0.666667"},
		{NewNumber(-2, 3), 6, "-0.666667"},
		{NewNumber(1, 10000000), 6, "0"},
		{NewNumber(-1, 10000000), 6, "0"},
		{NewNumber(1, 3), 2, "0.33"},
		{NewNumber(7, 2), 0, "4"},
		{NewNumber(1000, 1), 0, "1000"},
		{NewNumber(1, 8), 3, "0.125"},
		{NewNumber(1, 8), 10, "0.125"},
	}
	for _, test := range tests {
		var conf config.Config
		conf.SetPrecision(test.precision)
		if got := test.n.Sprint(&conf); got != test.want {
			t.Errorf("%s at precision %d: expected %q; got %q", test.n, test.precision, test.want, got)
		}
	}
}

func TestDefaultPrecision(t *testing.T) {
	var conf config.Config
	if got := NewNumber(1, 7).Sprint(&conf); got != "0.142857" {
		t.Errorf("expected %q; got %q", "0.142857", got)
	}
}

func TestBinaryOps(t *testing.T) {
	x, y := NewNumber(3, 4), NewNumber(1, 2)
	var tests = []struct {
		op   string
		want Number
	}{
		{"+", NewNumber(5, 4)},
		{"-", NewNumber(1, 4)},
		{"*", NewNumber(3, 8)},
		{"/", NewNumber(3, 2)},
	}
	for _, test := range tests {
		if got := BinaryOps[test.op](x, y); got.Cmp(test.want) != 0 {
			t.Errorf("%s %s %s = %s; expected %s", x, test.op, y, got, test.want)
		}
	}
	if got := UnaryOps["-"](x); got.Cmp(NewNumber(-3, 4)) != 0 {
		t.Errorf("-%s = %s", x, got)
	}
}

func TestDivisionByZero(t *testing.T) {
	defer func() {
		err, ok := recover().(Error)
		if !ok || err.Error() != "division by zero" {
			t.Errorf("expected division by zero error; got %v", err)
		}
	}()
	quo(NewNumber(5, 1), Zero)
}

func TestOperandsUnchanged(t *testing.T) {
	x := NewNumber(2, 1)
	add(x, x)
	neg(x)
	if x.Cmp(NewNumber(2, 1)) != 0 {
		t.Errorf("operand modified: %s", x)
	}
}
