// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrap

import (
	"errors"
	"testing"

	"github.com/cpmech/gofad/fad"
	"github.com/cpmech/gofad/sym"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// checkErr checks that err wraps target
func checkErr(tst *testing.T, msg string, err, target error) {
	if !errors.Is(err, target) {
		tst.Errorf("%s: error should be %q. got %v", msg, target, err)
		return
	}
	io.Pforan("%s: %v\n", msg, err)
}

// strain returns a 3D strain tensor used in the tests
func strain() *sym.Ten2[fad.Real] {
	return sym.FromMatrix([][]float64{
		{1.0, 0.2, 0.3},
		{0.2, 2.0, 0.5},
		{0.3, 0.5, 3.0},
	})
}

func Test_seed01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("seed01. first order one-hot seeding")

	reg, err := NewSummary(Config{Dim: 3, Order: 1})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	reg.Verbose = chk.Verbose
	ε, _ := NewTensor[fad.D1](3)
	φ := NewScalar[fad.D1]()
	chk.String(tst, reg.State().String(), "empty")
	err = reg.InitSetDofs(ε, strain(), φ, 0.3)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.String(tst, reg.State().String(), "seeded")
	chk.Int(tst, "N", reg.Ndof(), 7)
	chk.Int(tst, "start(ε)", ε.Start(), 0)
	chk.Int(tst, "start(φ)", φ.Start(), 6)
	chk.Int(tst, "width(ε)", ε.Width(), 6)
	chk.Int(tst, "width(φ)", φ.Width(), 1)
	chk.Int(tst, "ndof(ε)", ε.Ndof(), 7)

	// values are kept
	chk.Array(tst, "ε", 1e-17, ε.Vals(), []float64{1, 0.2, 0.3, 2, 0.5, 3})
	chk.Float64(tst, "φ", 1e-17, φ.Val(), 0.3)

	// exactly one unit entry per component
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			e := make([]float64, 7)
			e[sym.IJToSlot(3, i, j)] = 1
			chk.Array(tst, io.Sf("∂ε%d%d", i, j), 1e-17, fad.Grad(ε.At(i, j)), e)
			chk.Array(tst, io.Sf("∂ε%d%d", j, i), 1e-17, fad.Grad(ε.At(j, i)), e)
		}
	}
	chk.Array(tst, "∂φ", 1e-17, fad.Grad(φ.X), []float64{0, 0, 0, 0, 0, 0, 1})
}

func Test_seed02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("seed02. second order seeding at both levels")

	reg, _ := NewSummary(Config{Dim: 2, Order: 2})
	φ := NewScalar[fad.D2]().Init(0.5)
	ε, _ := NewTensor[fad.D2](2)
	ε.Init(sym.FromSlots(2, []float64{1, 2, 3}))
	if err := reg.SetDofs(φ, ε); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Int(tst, "N", reg.Ndof(), 4)
	chk.Int(tst, "start(φ)", φ.Start(), 0)
	chk.Int(tst, "start(ε)", ε.Start(), 1)
	chk.Int(tst, "order", ε.Order(), 2)

	for ℓ := 0; ℓ < 3; ℓ++ {
		e := make([]float64, 4)
		e[1+ℓ] = 1
		x := ε.Comp(ℓ)
		chk.Array(tst, io.Sf("outer ∂ε(%d)", ℓ), 1e-17, fad.Grad(x), e)
		chk.Array(tst, io.Sf("inner ∂ε(%d)", ℓ), 1e-17, fad.Grad(x.V), e)
		for k := 0; k < 4; k++ {
			chk.Float64(tst, "outer value of gradient", 1e-17, x.G[k].Val(), e[k])
			for l := 0; l < 4; l++ {
				chk.Float64(tst, "∂²ε", 1e-17, x.Deriv2(k, l), 0)
			}
		}
	}

	// reseeding at a new point
	ε.Set(0, 1, fad.Const[fad.D2](7))
	φ.Init(0.25)
	if err := reg.Seed(); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "ε01", 1e-17, ε.At(1, 0).Val(), 7)
	chk.Float64(tst, "φ", 1e-17, φ.Val(), 0.25)
	chk.Array(tst, "∂ε01", 1e-17, fad.Grad(ε.At(0, 1)), []float64{0, 0, 1, 0})
	chk.Array(tst, "∂φ", 1e-17, fad.Grad(φ.X.V), []float64{1, 0, 0, 0})
}

func Test_seed03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("seed03. seeding errors")

	_, err := NewSummary(Config{Dim: 4, Order: 1})
	checkErr(tst, "dim = 4", err, ErrUnsupportedDim)

	_, err = NewSummary(Config{Dim: 3, Order: 3})
	checkErr(tst, "order = 3", err, ErrOrderMismatch)

	_, err = NewTensor[fad.D1](1)
	checkErr(tst, "tensor with d = 1", err, ErrUnsupportedDim)

	reg, _ := NewSummary(Config{Dim: 3, Order: 2})
	a, _ := NewTensor[fad.D1](3)
	checkErr(tst, "D1 in order 2", reg.Register(a), ErrOrderMismatch)

	b, _ := NewTensor[fad.D2](2)
	checkErr(tst, "d = 2 in d = 3", reg.Register(b), ErrUnsupportedDim)

	c, _ := NewTensor[fad.D2](3)
	checkErr(tst, "twice in one call", reg.Register(c, c), ErrInconsistentSeeding)
	if err = reg.Register(c); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	checkErr(tst, "registered twice", reg.Register(c), ErrInconsistentSeeding)

	other, _ := NewSummary(Config{Dim: 3, Order: 2})
	checkErr(tst, "registered elsewhere", other.Register(c), ErrInconsistentSeeding)

	if err = reg.Seed(); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	checkErr(tst, "register after seed", reg.Register(NewScalar[fad.D2]()), ErrInconsistentSeeding)

	// direct seeding
	s := NewScalar[fad.D1]()
	checkErr(tst, "start beyond N", s.SetDofs(3, 3), ErrInconsistentSeeding)
	checkErr(tst, "negative start", s.SetDofs(-1, 3), ErrInconsistentSeeding)
	if err = s.SetDofs(2, 3); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	checkErr(tst, "reseed with other N", s.SetDofs(2, 4), ErrInconsistentSeeding)
	t, _ := NewTensor[fad.D1](3)
	checkErr(tst, "tensor too wide", t.SetDofs(1, 6), ErrInconsistentSeeding)

	// empty and malformed summaries
	empty, _ := NewSummary(Config{Dim: 2, Order: 1})
	checkErr(tst, "seed empty", empty.Seed(), ErrInconsistentSeeding)
	checkErr(tst, "odd args", empty.InitSetDofs(NewScalar[fad.D1]()), ErrInconsistentSeeding)
	checkErr(tst, "not a var", empty.InitSetDofs(1.0, 2.0), ErrInconsistentSeeding)
	checkErr(tst, "bad value", empty.InitSetDofs(NewScalar[fad.D1](), "x"), ErrInconsistentSeeding)
	t2, _ := NewTensor[fad.D1](2)
	checkErr(tst, "bad tensor value", empty.InitSetDofs(t2, [][]float64{{1}}), ErrUnsupportedDim)
	checkErr(tst, "init d mismatch", t2.Init(strain()), ErrUnsupportedDim)
	chk.String(tst, empty.State().String(), "empty")
}

func Test_seed04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("seed04. rejected initialisation keeps seeds")

	reg, _ := NewSummary(Config{Dim: 3, Order: 1})
	ε, _ := NewTensor[fad.D1](3)
	φ := NewScalar[fad.D1]()
	if err := reg.InitSetDofs(ε, strain(), φ, 0.3); err != nil {
		tst.Errorf("%v\n", err)
		return
	}

	// new values for already seeded variables
	nines := sym.FromSlots(3, []float64{9, 9, 9, 9, 9, 9})
	checkErr(tst, "init seeded tensor", reg.InitSetDofs(ε, nines), ErrInconsistentSeeding)
	checkErr(tst, "init seeded scalar", reg.InitSetDofs(φ, 9.0), ErrInconsistentSeeding)
	chk.String(tst, reg.State().String(), "seeded")
	if !ε.Seeded() || !φ.Seeded() {
		tst.Errorf("variables should still be seeded\n")
		return
	}
	chk.Float64(tst, "ε00", 1e-17, ε.At(0, 0).Val(), 1)
	chk.Float64(tst, "φ", 1e-17, φ.Val(), 0.3)
	C, err := TangentTT(ε.Copy(), ε)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "C ~ I_sym", 1e-17, sym.MaxDiff(C, sym.Identity(3)), 0)
	dφ, err := TangentSS(φ.X, φ)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "dφ/dφ", 1e-17, dφ, 1)

	// nothing is initialised if any pair is invalid
	other, _ := NewSummary(Config{Dim: 3, Order: 1})
	a, _ := NewTensor[fad.D1](3)
	b := NewScalar[fad.D2]()
	checkErr(tst, "order of second pair", other.InitSetDofs(a, nines, b, 1.0), ErrOrderMismatch)
	checkErr(tst, "value of second pair", other.InitSetDofs(a, nines, NewScalar[fad.D1](), "x"), ErrInconsistentSeeding)
	chk.Float64(tst, "a00", 1e-17, a.At(0, 0).Val(), 0)
	chk.Float64(tst, "b", 1e-17, b.Val(), 0)
	chk.String(tst, other.State().String(), "empty")

	// Init drops the seeds
	ε.Init(nines)
	φ.Init(9)
	if ε.Seeded() || φ.Seeded() {
		tst.Errorf("variables should not be seeded after Init\n")
		return
	}
	_, err = TangentTT(ε.Copy(), ε)
	checkErr(tst, "tangent after Init", err, ErrInconsistentSeeding)
	_, err = TangentSS(φ.X, φ)
	checkErr(tst, "scalar tangent after Init", err, ErrInconsistentSeeding)

	// reseeding restores the seeds at the new values
	if err = reg.Seed(); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "ε00", 1e-17, ε.At(0, 0).Val(), 9)
	C, err = TangentTT(ε.Copy(), ε)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "C ~ I_sym", 1e-17, sym.MaxDiff(C, sym.Identity(3)), 0)
}
