// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fad implements forward-mode automatic differentiation with dual numbers
//
//  A dual number carries a value and the gradient of that value with respect to
//  n independent "slots" (degrees of freedom). Nesting duals gives higher
//  derivatives:
//
//     D1 = Dual[Real]  ⇒  value and ∂/∂x_k
//     D2 = Dual[D1]    ⇒  value, ∂/∂x_k and ∂²/(∂x_k ∂x_l)
//
//  An empty gradient means a constant. Operations between a constant and a
//  variable pad the constant gradient with zeros.
package fad

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Number defines the arithmetic needed by dual numbers of any order
type Number[T any] interface {

	// arithmetic
	Add(b T) T
	Sub(b T) T
	Mul(b T) T
	Div(b T) T
	Neg() T
	Scale(α float64) T // α * a
	Shift(α float64) T // a + α

	// elementary functions
	Sin() T
	Cos() T
	Tan() T
	Exp() T
	Log() T
	Sqrt() T
	PowReal(p float64) T

	// access
	Val() float64            // real part (innermost value)
	Deriv(k int) float64     // ∂a/∂x_k
	Deriv2(k, l int) float64 // ∂²a/(∂x_k ∂x_l); zero for first order numbers
	Ndof() int               // length of gradient; 0 means constant
	Order() int              // nesting level: 0 for Real, 1 for D1, 2 for D2
	String() string

	// Seed returns a new variable with value v seeded at slot k of n slots
	Seed(v float64, k, n int) T
}

// Real wraps float64 as the innermost Number
type Real float64

// Add returns a + b
func (a Real) Add(b Real) Real { return a + b }

// Sub returns a - b
func (a Real) Sub(b Real) Real { return a - b }

// Mul returns a * b
func (a Real) Mul(b Real) Real { return a * b }

// Div returns a / b
func (a Real) Div(b Real) Real { return a / b }

// Neg returns -a
func (a Real) Neg() Real { return -a }

// Scale returns α * a
func (a Real) Scale(α float64) Real { return Real(α) * a }

// Shift returns a + α
func (a Real) Shift(α float64) Real { return a + Real(α) }

// Sin returns sin(a)
func (a Real) Sin() Real { return Real(math.Sin(float64(a))) }

// Cos returns cos(a)
func (a Real) Cos() Real { return Real(math.Cos(float64(a))) }

// Tan returns tan(a)
func (a Real) Tan() Real { return Real(math.Tan(float64(a))) }

// Exp returns exp(a)
func (a Real) Exp() Real { return Real(math.Exp(float64(a))) }

// Log returns log(a)
func (a Real) Log() Real { return Real(math.Log(float64(a))) }

// Sqrt returns sqrt(a)
func (a Real) Sqrt() Real { return Real(math.Sqrt(float64(a))) }

// PowReal returns a^p
func (a Real) PowReal(p float64) Real { return Real(math.Pow(float64(a), p)) }

// Val returns a as float64
func (a Real) Val() float64 { return float64(a) }

// Deriv returns zero
func (a Real) Deriv(k int) float64 { return 0 }

// Deriv2 returns zero
func (a Real) Deriv2(k, l int) float64 { return 0 }

// Ndof returns zero
func (a Real) Ndof() int { return 0 }

// Order returns zero
func (a Real) Order() int { return 0 }

// Seed returns v; reals carry no derivatives
func (a Real) Seed(v float64, k, n int) Real { return Real(v) }

// String returns the %g representation
func (a Real) String() string { return io.Sf("%g", float64(a)) }

// Const returns a constant of any order
func Const[T Number[T]](v float64) T {
	var z T
	return z.Shift(v)
}

// Var returns a variable with value v seeded at slot k of n slots
//  Note: for nested numbers, all levels are seeded
func Var[T Number[T]](v float64, k, n int) T {
	var z T
	return z.Seed(v, k, n)
}

// Pow returns a^b = exp(b log(a))
func Pow[T Number[T]](a, b T) T {
	return b.Mul(a.Log()).Exp()
}

// Sum returns the sum of all arguments
func Sum[T Number[T]](xs ...T) (res T) {
	for _, x := range xs {
		res = res.Add(x)
	}
	return
}

// Grad returns a copy of the first derivatives of a
func Grad[T Number[T]](a T) (g []float64) {
	g = make([]float64, a.Ndof())
	for k := range g {
		g[k] = a.Deriv(k)
	}
	return
}
