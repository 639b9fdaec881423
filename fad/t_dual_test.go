// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fad

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/dual"
	"gonum.org/v1/gonum/num/hyperdual"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_dual01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dual01. scalar equation c = 2a + cos(ab)")

	a := Var[D1](1, 0, 2)
	b := Var[D1](2, 1, 2)
	c := a.Scale(2).Add(a.Mul(b).Cos())

	require.InDelta(tst, 2+math.Cos(2), c.Val(), 1e-15)
	require.InDelta(tst, 2-2*math.Sin(2), c.Deriv(0), 1e-15)
	require.InDelta(tst, -math.Sin(2), c.Deriv(1), 1e-15)
	require.InDelta(tst, 0.18140514634, c.Deriv(0), 1e-10)
	require.InDelta(tst, -0.90929742683, c.Deriv(1), 1e-10)

	// gonum single-direction duals
	f := func(x, y dual.Number) dual.Number {
		return dual.Add(dual.Scale(2, x), dual.Cos(dual.Mul(x, y)))
	}
	dcda := f(dual.Number{Real: 1, Emag: 1}, dual.Number{Real: 2})
	dcdb := f(dual.Number{Real: 1}, dual.Number{Real: 2, Emag: 1})
	require.InDelta(tst, dcda.Emag, c.Deriv(0), 1e-15)
	require.InDelta(tst, dcdb.Emag, c.Deriv(1), 1e-15)
}

func Test_dual02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dual02. first and second derivatives of a scalar equation")

	a := Var[D2](1, 0, 2)
	b := Var[D2](2, 1, 2)
	c := a.Scale(2).Add(a.Mul(b).Cos())
	require.Equal(tst, 2, c.Order())
	require.Equal(tst, 2, c.Ndof())

	// inner and outer first derivatives coincide
	for k := 0; k < 2; k++ {
		require.InDelta(tst, c.V.Deriv(k), c.Deriv(k), 1e-15)
	}

	// gonum hyperduals
	f := func(x, y hyperdual.Number) hyperdual.Number {
		return hyperdual.Add(hyperdual.Scale(2, x), hyperdual.Cos(hyperdual.Mul(x, y)))
	}
	aa := f(hyperdual.Number{Real: 1, E1mag: 1, E2mag: 1}, hyperdual.Number{Real: 2})
	bb := f(hyperdual.Number{Real: 1}, hyperdual.Number{Real: 2, E1mag: 1, E2mag: 1})
	ab := f(hyperdual.Number{Real: 1, E1mag: 1}, hyperdual.Number{Real: 2, E2mag: 1})
	require.InDelta(tst, aa.E1mag, c.Deriv(0), 1e-15)
	require.InDelta(tst, bb.E1mag, c.Deriv(1), 1e-15)
	require.InDelta(tst, aa.E1E2mag, c.Deriv2(0, 0), 1e-14)
	require.InDelta(tst, bb.E1E2mag, c.Deriv2(1, 1), 1e-14)
	require.InDelta(tst, ab.E1E2mag, c.Deriv2(0, 1), 1e-14)
	require.InDelta(tst, ab.E1E2mag, c.Deriv2(1, 0), 1e-14)

	// analytical
	require.InDelta(tst, -4*math.Cos(2), c.Deriv2(0, 0), 1e-14)
	require.InDelta(tst, -math.Cos(2), c.Deriv2(1, 1), 1e-14)
	require.InDelta(tst, -math.Sin(2)-2*math.Cos(2), c.Deriv2(0, 1), 1e-14)
}

func Test_dual03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dual03. elementary functions against gonum hyperduals")

	type pair struct {
		name string
		ad   func(x D2) D2
		hd   func(x hyperdual.Number) hyperdual.Number
	}
	funcs := []pair{
		{"sin", func(x D2) D2 { return x.Sin() }, hyperdual.Sin},
		{"cos", func(x D2) D2 { return x.Cos() }, hyperdual.Cos},
		{"tan", func(x D2) D2 { return x.Tan() }, hyperdual.Tan},
		{"exp", func(x D2) D2 { return x.Exp() }, hyperdual.Exp},
		{"log", func(x D2) D2 { return x.Log() }, hyperdual.Log},
		{"sqrt", func(x D2) D2 { return x.Sqrt() }, hyperdual.Sqrt},
		{"pow3", func(x D2) D2 { return x.PowReal(3) }, func(x hyperdual.Number) hyperdual.Number { return hyperdual.PowReal(x, 3) }},
		{"inv", func(x D2) D2 { return Const[D2](1).Div(x) }, hyperdual.Inv},
	}
	for _, x0 := range []float64{0.3, 0.7, 1.2} {
		x := Var[D2](x0, 0, 1)
		h := hyperdual.Number{Real: x0, E1mag: 1, E2mag: 1}
		for _, f := range funcs {
			r := f.ad(x)
			e := f.hd(h)
			require.InDeltaf(tst, e.Real, r.Val(), 1e-14, "%s(%g)", f.name, x0)
			require.InDeltaf(tst, e.E1mag, r.Deriv(0), 1e-13, "%s'(%g)", f.name, x0)
			require.InDeltaf(tst, e.E1E2mag, r.Deriv2(0, 0), 1e-12, "%s''(%g)", f.name, x0)
		}
	}
}

func Test_dual04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dual04. seeding, constants and non-smooth points")

	// one-hot seeds at both levels
	x := Var[D2](3, 1, 4)
	for k := 0; k < 4; k++ {
		want := 0.0
		if k == 1 {
			want = 1
		}
		require.Equal(tst, want, x.Deriv(k))
		require.Equal(tst, want, x.V.Deriv(k))
	}

	// constants mix with variables
	c := Const[D1](5)
	require.Equal(tst, 0, c.Ndof())
	y := c.Mul(Var[D1](2, 0, 3))
	require.Equal(tst, 3, y.Ndof())
	require.Equal(tst, 10.0, y.Val())
	require.Equal(tst, []float64{5, 0, 0}, Grad(y))
	require.Equal(tst, 7.0, Sum(c, Var[D1](2, 0, 3)).Val())

	// mismatched number of slots
	require.Panics(tst, func() { Var[D1](1, 0, 2).Add(Var[D1](1, 0, 3)) })

	// sqrt at zero: documented non-finite derivative
	z := Var[D1](0, 0, 1).Sqrt()
	require.True(tst, math.IsInf(z.Deriv(0), 1))

	// pow
	p := Pow(Var[D1](2, 0, 2), Var[D1](3, 1, 2))
	require.InDelta(tst, 8, p.Val(), 1e-14)
	require.InDelta(tst, 12, p.Deriv(0), 1e-13)
	require.InDelta(tst, 8*math.Log(2), p.Deriv(1), 1e-13)

	// printing
	require.Equal(tst, "1 [ 0 1 ]", Var[D1](1, 1, 2).String())
}

func Test_dual05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dual05. vector-valued equation")

	a := Var[D1](1, 0, 2)
	b := Var[D1](2, 1, 2)
	c := []D1{
		a.Scale(2).Add(b.Scale(3)),
		a.Scale(4).Add(b.Scale(5)),
		a.Scale(6).Add(b.Scale(7)),
	}
	jac := [][]float64{{2, 3}, {4, 5}, {6, 7}}
	for i := range c {
		require.Equal(tst, jac[i], Grad(c[i]))
	}
}
