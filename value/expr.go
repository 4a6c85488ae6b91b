// Copyright 2017 The Calc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "fmt"

// Expr is the interface for a parsed expression.
// Also implemented by Number.
type Expr interface {
	// ProgString returns the unambiguous representation of the
	// expression to be used in program source.
	ProgString() string

	Eval(Context) Number
}

// VarExpr is a reference to a named variable.
type VarExpr struct {
	Name string
}

func (v *VarExpr) ProgString() string {
	return v.Name
}

// Eval returns the bound value. An unbound variable is zero.
func (v *VarExpr) Eval(context Context) Number {
	if n, ok := context.Lookup(v.Name); ok {
		return n
	}
	return Zero
}

type UnaryExpr struct {
	Op    string
	Right Expr
}

func (u *UnaryExpr) ProgString() string {
	return fmt.Sprintf("%s%s", u.Op, progString(u.Right))
}

func (u *UnaryExpr) Eval(context Context) Number {
	fn := UnaryOps[u.Op]
	if fn == nil {
		Errorf("unary %s not implemented", u.Op)
	}
	return fn(u.Right.Eval(context))
}

type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

func (b *BinaryExpr) ProgString() string {
	return fmt.Sprintf("%s %s %s", progString(b.Left), b.Op, progString(b.Right))
}

func (b *BinaryExpr) Eval(context Context) Number {
	fn := BinaryOps[b.Op]
	if fn == nil {
		Errorf("binary %s not implemented", b.Op)
	}
	lhs := b.Left.Eval(context)
	rhs := b.Right.Eval(context)
	return fn(lhs, rhs)
}

// IsCompound reports whether the item is a non-trivial expression tree, one that
// may require parentheses around it when printed to maintain correct evaluation order.
func IsCompound(x interface{}) bool {
	switch x.(type) {
	case Number, *VarExpr:
		return false
	case *UnaryExpr:
		return false
	default:
		return true
	}
}

func progString(e Expr) string {
	if IsCompound(e) {
		return "(" + e.ProgString() + ")"
	}
	return e.ProgString()
}

// UnaryOps maps the unary operators to their implementations.
var UnaryOps = map[string]func(Number) Number{
	"+": func(x Number) Number { return x },
	"-": neg,
}

// BinaryOps maps the binary operators to their implementations.
var BinaryOps = map[string]func(Number, Number) Number{
	"+": add,
	"-": sub,
	"*": mul,
	"/": quo,
}
