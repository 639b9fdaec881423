// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fad

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Dual implements a forward-mode dual number over T
type Dual[T Number[T]] struct {
	V T   // value
	G []T // gradient: G[k] = ∂V/∂x_k. empty ⇒ constant
}

// D1 is a first order dual number
type D1 = Dual[Real]

// D2 is a nested dual number giving first and second derivatives
type D2 = Dual[D1]

// d returns G[k] or zero if a is constant
func (a Dual[T]) d(k int) (z T) {
	if k < len(a.G) {
		return a.G[k]
	}
	return
}

// ndof returns the number of slots of the result of a binary operation
func ndof[T Number[T]](a, b Dual[T]) int {
	na, nb := len(a.G), len(b.G)
	if na == 0 {
		return nb
	}
	if nb == 0 || na == nb {
		return na
	}
	chk.Panic("fad: gradients with different lengths cannot be combined: %d != %d", na, nb)
	return 0
}

// chain returns {f, ∂f/∂a * G}
func (a Dual[T]) chain(f, dfda T) (res Dual[T]) {
	res.V = f
	if len(a.G) > 0 {
		res.G = make([]T, len(a.G))
		for k, g := range a.G {
			res.G[k] = g.Mul(dfda)
		}
	}
	return
}

// Add returns a + b
func (a Dual[T]) Add(b Dual[T]) (res Dual[T]) {
	n := ndof(a, b)
	res.V = a.V.Add(b.V)
	if n > 0 {
		res.G = make([]T, n)
		for k := 0; k < n; k++ {
			res.G[k] = a.d(k).Add(b.d(k))
		}
	}
	return
}

// Sub returns a - b
func (a Dual[T]) Sub(b Dual[T]) (res Dual[T]) {
	n := ndof(a, b)
	res.V = a.V.Sub(b.V)
	if n > 0 {
		res.G = make([]T, n)
		for k := 0; k < n; k++ {
			res.G[k] = a.d(k).Sub(b.d(k))
		}
	}
	return
}

// Mul returns a * b
func (a Dual[T]) Mul(b Dual[T]) (res Dual[T]) {
	n := ndof(a, b)
	res.V = a.V.Mul(b.V)
	if n > 0 {
		res.G = make([]T, n)
		for k := 0; k < n; k++ {
			res.G[k] = a.d(k).Mul(b.V).Add(a.V.Mul(b.d(k)))
		}
	}
	return
}

// Div returns a / b
func (a Dual[T]) Div(b Dual[T]) (res Dual[T]) {
	n := ndof(a, b)
	q := a.V.Div(b.V)
	res.V = q
	if n > 0 {
		res.G = make([]T, n)
		for k := 0; k < n; k++ {
			res.G[k] = a.d(k).Sub(q.Mul(b.d(k))).Div(b.V)
		}
	}
	return
}

// Neg returns -a
func (a Dual[T]) Neg() Dual[T] {
	return a.Scale(-1)
}

// Scale returns α * a
func (a Dual[T]) Scale(α float64) (res Dual[T]) {
	res.V = a.V.Scale(α)
	if len(a.G) > 0 {
		res.G = make([]T, len(a.G))
		for k, g := range a.G {
			res.G[k] = g.Scale(α)
		}
	}
	return
}

// Shift returns a + α
func (a Dual[T]) Shift(α float64) (res Dual[T]) {
	res.V = a.V.Shift(α)
	if len(a.G) > 0 {
		res.G = make([]T, len(a.G))
		copy(res.G, a.G)
	}
	return
}

// Sin returns sin(a)
func (a Dual[T]) Sin() Dual[T] {
	return a.chain(a.V.Sin(), a.V.Cos())
}

// Cos returns cos(a)
func (a Dual[T]) Cos() Dual[T] {
	return a.chain(a.V.Cos(), a.V.Sin().Neg())
}

// Tan returns tan(a)
func (a Dual[T]) Tan() Dual[T] {
	t := a.V.Tan()
	return a.chain(t, t.Mul(t).Shift(1))
}

// Exp returns exp(a)
func (a Dual[T]) Exp() Dual[T] {
	e := a.V.Exp()
	return a.chain(e, e)
}

// Log returns log(a)
func (a Dual[T]) Log() Dual[T] {
	return a.chain(a.V.Log(), Const[T](1).Div(a.V))
}

// Sqrt returns sqrt(a)
//  Note: the derivative is +Inf at a = 0
func (a Dual[T]) Sqrt() Dual[T] {
	s := a.V.Sqrt()
	return a.chain(s, Const[T](1).Div(s.Scale(2)))
}

// PowReal returns a^p
func (a Dual[T]) PowReal(p float64) Dual[T] {
	return a.chain(a.V.PowReal(p), a.V.PowReal(p-1).Scale(p))
}

// Val returns the innermost value
func (a Dual[T]) Val() float64 {
	return a.V.Val()
}

// Deriv returns ∂a/∂x_k
func (a Dual[T]) Deriv(k int) float64 {
	return a.d(k).Val()
}

// Deriv2 returns ∂²a/(∂x_k ∂x_l)
func (a Dual[T]) Deriv2(k, l int) float64 {
	return a.d(k).Deriv(l)
}

// Ndof returns the number of slots
func (a Dual[T]) Ndof() int {
	return len(a.G)
}

// Order returns the nesting level
func (a Dual[T]) Order() int {
	return a.V.Order() + 1
}

// Seed returns a new variable with value v seeded at slot k of n slots
//  Note: the inner levels are seeded as well; i.e. for D2 both ∂V/∂x_k and
//        ∂x/∂x_k are set to one
func (a Dual[T]) Seed(v float64, k, n int) (res Dual[T]) {
	var z T
	res.V = z.Seed(v, k, n)
	res.G = make([]T, n)
	if k >= 0 && k < n {
		res.G[k] = z.Shift(1)
	}
	return
}

// String returns a representation like: v [ g0 g1 ... ]
func (a Dual[T]) String() string {
	if len(a.G) == 0 {
		return a.V.String()
	}
	var b strings.Builder
	b.WriteString(a.V.String())
	b.WriteString(" [ ")
	for _, g := range a.G {
		b.WriteString(g.String())
		b.WriteString(" ")
	}
	b.WriteString("]")
	return b.String()
}
