// Copyright 2017 The Calc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"bytes"
	"strings"
	"testing"

	"keypad.dev/calc/config"
	"keypad.dev/calc/exec"
	"keypad.dev/calc/scan"
	"keypad.dev/calc/value"
)

// parseTree parses the input and returns its debugging tree,
// or the text of the error.
func parseTree(input string) (result string) {
	defer func() {
		if err, ok := recover().(value.Error); ok {
			result = "error: " + err.Error()
		}
	}()
	context := exec.NewContext(nil)
	p := NewParser(scan.New(context, input), context)
	return tree(p.Expr())
}

func TestParse(t *testing.T) {
	var tests = []struct {
		input string
		tree  string
	}{
		{"7", "<num 7>"},
		{"0.5", "<num 1/2>"},
		{"x", "<var x>"},
		{"1+2", "(<num 1> + <num 2>)"},
		{"1-2", "(<num 1> + (- <num 2>))"},
		{"1+2+3", "((<num 1> + <num 2>) + <num 3>)"},
		{"1-2-3", "((<num 1> + (- <num 2>)) + (- <num 3>))"},
		{"8/4/2", "((<num 8> / <num 4>) / <num 2>)"},
		{"1+2*3", "(<num 1> + (<num 2> * <num 3>))"},
		{"1*2+3", "((<num 1> * <num 2>) + <num 3>)"},
		{"-2*3", "((- <num 2>) * <num 3>)"},
		{"2*-3", "(<num 2> * (- <num 3>))"},
		{"(1+2)*3", "((<num 1> + <num 2>) * <num 3>)"},
		{"(1+2", "(<num 1> + <num 2>)"},
		{"-(1)", "(- <num 1>)"},
		{"--1", "<num 1>"},
		{"+1", "<num 1>"},
		{"1--2", "(<num 1> + <num 2>)"},
		{"1+-2", "(<num 1> + (- <num 2>))"},
		{"1-+2", "(<num 1> + (- <num 2>))"},
		{"(2)-1", "(<num 2> + (- <num 1>))"},
		{"", "error: empty expression"},
		{"+", "error: empty expression"},
		{"1+", "error: missing operand"},
		{"1*", "error: missing operand"},
		{"1)", "error: unbalanced parentheses at offset 1"},
		{"1 2", `error: unexpected Number: "2"`},
		{"1.2.3", "error: bad number syntax: 1.2.3"},
		{"/2", `error: unexpected Operator: "/"`},
		{"2#", "error: error: unexpected character U+0023 '#'"},
	}
	for _, test := range tests {
		if got := parseTree(test.input); got != test.tree {
			t.Errorf("%q: expected %s; got %s", test.input, test.tree, got)
		}
	}
}

func TestDebugParse(t *testing.T) {
	var conf config.Config
	var out bytes.Buffer
	conf.SetOutput(&out)
	conf.SetDebug("parse", true)
	context := exec.NewContext(&conf)
	p := NewParser(scan.New(context, "2*(3-1)"), context)
	p.Expr()
	want := "(<num 2> * (<num 3> + (- <num 1>)))\n"
	if out.String() != want {
		t.Errorf("expected %q; got %q", want, out.String())
	}
}

func TestSimplify(t *testing.T) {
	var tests = []struct {
		input string
		want  string
	}{
		{"- - 1", "1"},
		{"- - - 1", "- 1"},
		{"1 - - - 2", "1 + - 2"},
		{"x - 1", "x + - 1"},
		{"( + 1 )", "( 1 )"},
		{"( 1 ) - 1", "( 1 ) + - 1"},
	}
	for _, test := range tests {
		context := exec.NewContext(nil)
		s := scan.New(context, test.input)
		var toks []scan.Token
		for tok := s.Next(); tok.Type != scan.EOF; tok = s.Next() {
			toks = append(toks, tok)
		}
		var texts []string
		for _, tok := range simplify(toks) {
			texts = append(texts, tok.Text)
		}
		if got := strings.Join(texts, " "); got != test.want {
			t.Errorf("%q: expected %q; got %q", test.input, test.want, got)
		}
	}
}
