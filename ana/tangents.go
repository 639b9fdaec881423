// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gofad/fad"
	"github.com/cpmech/gofad/sym"
)

// IsoElastD returns the tangent of linear isotropic elasticity
//  σ = K tr(ε) I + 2 G dev(ε)  ⇒  D = K I⊗I + 2 G Pdev
func IsoElastD(d int, K, G float64) *sym.Ten4 {
	I := sym.Unit[fad.Real](d)
	return sym.Add4(K, sym.Outer(I, I), 2.0*G, sym.DevTensor(d))
}

// QuadEnergyD returns the second derivative of
//  ψ = λ/2 tr(ε)² + μ tr(ε·ε) + c φ tr(ε)  ⇒  ∂²ψ/∂ε² = λ I⊗I + 2 μ Isym
func QuadEnergyD(d int, λ, μ float64) *sym.Ten4 {
	I := sym.Unit[fad.Real](d)
	return sym.Add4(λ, sym.Outer(I, I), 2.0*μ, sym.Identity(d))
}

// QuadEnergySig returns the first derivative of ψ = λ/2 tr(ε)² + μ tr(ε·ε) + c φ tr(ε)
//  σ = ∂ψ/∂ε = (λ tr(ε) + c φ) I + 2 μ ε
func QuadEnergySig(ε *sym.Ten2[fad.Real], λ, μ, c, φ float64) *sym.Ten2[fad.Real] {
	p := λ*float64(sym.Trace(ε)) + c*φ
	return sym.Add(sym.Scale(p, sym.Unit[fad.Real](ε.Dim())), sym.Scale(2.0*μ, ε))
}

// QuadEnergyMixed returns ∂²ψ/∂ε∂φ = c I
func QuadEnergyMixed(d int, c float64) *sym.Ten2[fad.Real] {
	return sym.Scale(c, sym.Unit[fad.Real](d))
}
