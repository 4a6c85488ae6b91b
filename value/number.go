// Copyright 2017 The Calc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math/big"
	"strings"

	"keypad.dev/calc/config"
)

// Number is an exact rational value. The zero Number is 0.
type Number struct {
	x *big.Rat
}

// Zero is the value of an unbound variable.
var Zero = Number{}

// NewNumber returns the Number a/b. It panics if b is zero.
func NewNumber(a, b int64) Number {
	return Number{big.NewRat(a, b)}
}

// Parse returns the Number represented by a decimal literal such as
// "12", "0.5", ".5" or "5.".
func Parse(s string) (Number, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok || strings.ContainsAny(s, "/eExXpPbBoO_") {
		return Number{}, Error("bad number syntax: " + s)
	}
	return Number{r}, nil
}

// rat returns the value as a *big.Rat, which must not be modified.
func (n Number) rat() *big.Rat {
	if n.x == nil {
		return new(big.Rat)
	}
	return n.x
}

// Sign returns -1, 0 or +1 according to the sign of n.
func (n Number) Sign() int {
	return n.rat().Sign()
}

// Cmp compares n and m, returning -1, 0 or +1.
func (n Number) Cmp(m Number) int {
	return n.rat().Cmp(m.rat())
}

// String returns the exact value, as a fraction if necessary.
func (n Number) String() string {
	return n.rat().RatString()
}

// ProgString implements Expr.
func (n Number) ProgString() string {
	return n.String()
}

// Eval implements Expr.
func (n Number) Eval(Context) Number {
	return n
}

// Sprint returns the value as a decimal rounded to the configured
// precision, with trailing zeros and any trailing decimal point removed.
func (n Number) Sprint(conf *config.Config) string {
	s := n.rat().FloatString(conf.Precision())
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		// Rounding has swallowed a tiny negative value.
		s = "0"
	}
	return s
}

func neg(x Number) Number {
	return Number{new(big.Rat).Neg(x.rat())}
}

func add(x, y Number) Number {
	return Number{new(big.Rat).Add(x.rat(), y.rat())}
}

func sub(x, y Number) Number {
	return Number{new(big.Rat).Sub(x.rat(), y.rat())}
}

func mul(x, y Number) Number {
	return Number{new(big.Rat).Mul(x.rat(), y.rat())}
}

func quo(x, y Number) Number {
	if y.Sign() == 0 {
		Errorf("division by zero")
	}
	return Number{new(big.Rat).Quo(x.rat(), y.rat())}
}
