// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gofad/fad"
	"github.com/cpmech/gofad/sym"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// StressFunc computes a symmetric tensor from a symmetric tensor; e.g. σ(ε)
type StressFunc func(ε *sym.Ten2[fad.Real]) *sym.Ten2[fad.Real]

// EnergyFunc computes a scalar from a symmetric tensor; e.g. ψ(ε)
type EnergyFunc func(ε *sym.Ten2[fad.Real]) float64

// factor returns 1 for diagonal slots or ½ for off-diagonal ones
//  Note: perturbing an off-diagonal slot perturbs both (i,j) and (j,i)
func factor(d, ℓ int) float64 {
	if sym.IsDiag(d, ℓ) {
		return 1
	}
	return 0.5
}

// NumTangent computes D = ∂σ/∂ε using central differences over the independent components of ε
//  step -- step size; zero means the default step of gonum/diff/fd
func NumTangent(σfun StressFunc, ε *sym.Ten2[fad.Real], step float64) (D *sym.Ten4) {
	d, m := ε.Dim(), ε.Ncomp()
	J := mat.NewDense(m, m, nil)
	f := func(y, x []float64) {
		copy(y, σfun(sym.FromSlots(d, x)).Vals())
	}
	fd.Jacobian(J, f, ε.Vals(), &fd.JacobianSettings{Formula: fd.Central, Step: step})
	D = sym.NewTen4(d)
	for I := 0; I < m; I++ {
		for ℓ := 0; ℓ < m; ℓ++ {
			D.SetSlot(I, ℓ, factor(d, ℓ)*J.At(I, ℓ))
		}
	}
	return
}

// NumGradient computes σ = ∂ψ/∂ε using central differences
func NumGradient(ψfun EnergyFunc, ε *sym.Ten2[fad.Real], step float64) (σ *sym.Ten2[fad.Real]) {
	d := ε.Dim()
	f := func(x []float64) float64 {
		return ψfun(sym.FromSlots(d, x))
	}
	g := fd.Gradient(nil, f, ε.Vals(), &fd.Settings{Formula: fd.Central, Step: step})
	σ = sym.NewTen2[fad.Real](d)
	for ℓ := range g {
		σ.SetComp(ℓ, fad.Real(factor(d, ℓ)*g[ℓ]))
	}
	return
}

// NumCurvature computes D = ∂²ψ/∂ε² using central differences
func NumCurvature(ψfun EnergyFunc, ε *sym.Ten2[fad.Real], step float64) (D *sym.Ten4) {
	d, m := ε.Dim(), ε.Ncomp()
	H := mat.NewSymDense(m, nil)
	f := func(x []float64) float64 {
		return ψfun(sym.FromSlots(d, x))
	}
	fd.Hessian(H, f, ε.Vals(), &fd.Settings{Step: step})
	D = sym.NewTen4(d)
	for I := 0; I < m; I++ {
		for J := 0; J < m; J++ {
			D.SetSlot(I, J, factor(d, I)*factor(d, J)*H.At(I, J))
		}
	}
	return
}

// Dist returns Σ|a_ijkl - b_ijkl| over all d⁴ components
func Dist(a, b *sym.Ten4) float64 {
	return floats.Distance(flatten(a), flatten(b), 1)
}

// flatten returns all d⁴ components of a
func flatten(a *sym.Ten4) (v []float64) {
	for _, x := range a.Full() {
		for _, y := range x {
			for _, z := range y {
				v = append(v, z...)
			}
		}
	}
	return
}
