// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gofad/fad"
	"github.com/cpmech/gofad/sym"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// QuadEnergy implements an elastic model derived from a quadratic energy density coupled to φ
//  ψ = λ/2 tr(ε)² + μ tr(ε·ε) + c φ tr(ε)
type QuadEnergy struct {
	λ    float64 // Lamé's first parameter
	μ    float64 // shear modulus
	c    float64 // coupling coefficient
	φ0   float64 // initial φ
	nsig int     // number of stress components
}

// add model to factory
func init() {
	allocators["quad-energy"] = func() Model { return new(QuadEnergy) }
}

// QuadPsi computes ψ = λ/2 tr(ε)² + μ tr(ε·ε) + c φ tr(ε)
func QuadPsi[T fad.Number[T]](ε *sym.Ten2[T], φ T, λ, μ, c float64) T {
	tr := sym.Trace(ε)
	return tr.Mul(tr).Scale(λ / 2.0).Add(sym.Trace(sym.Square(ε)).Scale(μ)).Add(φ.Mul(tr).Scale(c))
}

// Init initialises model
func (o *QuadEnergy) Init(ndim int, pstress bool, prms dbf.Params) (err error) {
	o.nsig, err = checkNdim("quad-energy", ndim, pstress)
	if err != nil {
		return
	}
	for _, p := range prms {
		switch p.N {
		case "lam":
			o.λ = p.V
		case "mu":
			o.μ = p.V
		case "c":
			o.c = p.V
		case "phi0":
			o.φ0 = p.V
		}
	}
	if o.μ <= 0 || 3.0*o.λ+2.0*o.μ <= 0 {
		return chk.Err("quad-energy: invalid parameters: mu = %g and 3 lam + 2 mu = %g must be positive", o.μ, 3.0*o.λ+2.0*o.μ)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o QuadEnergy) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "lam", V: 1},
		&dbf.P{N: "mu", V: 2},
		&dbf.P{N: "c", V: 25},
		&dbf.P{N: "phi0", V: 0.3},
	}
}

// InitIntVars initialises state with given stresses
func (o *QuadEnergy) InitIntVars(σ []float64) (s *State, err error) {
	s = NewState(o.nsig)
	copy(s.Sig, σ)
	s.Phi = o.φ0
	return
}

// Energy computes ψ and its derivatives
func (o *QuadEnergy) Energy(s *State) (*EnergyDerivs, error) {
	return adEnergy(o.psi, s.Eps, s.Phi)
}

// Update updates stresses for given strains
func (o *QuadEnergy) Update(s *State, ε []float64) (err error) {
	res, err := adEnergy(o.psi, ε, s.Phi)
	if err != nil {
		return
	}
	copy(s.Eps, ε)
	copy(s.Sig, res.Sig)
	return
}

// CalcD computes D = dσ/dε = ∂²ψ/∂ε²
func (o *QuadEnergy) CalcD(D [][]float64, s *State) (err error) {
	res, err := o.Energy(s)
	if err != nil {
		return
	}
	copyD(D, res.D)
	return
}

// CalcDphi computes dσ/dφ = ∂²ψ/∂ε∂φ
func (o *QuadEnergy) CalcDphi(dσdφ []float64, s *State) (err error) {
	res, err := o.Energy(s)
	if err != nil {
		return
	}
	copy(dσdφ, res.DsigDphi)
	return
}

func (o *QuadEnergy) psi(ε *sym.Ten2[fad.D2], φ fad.D2) fad.D2 {
	return QuadPsi(ε, φ, o.λ, o.μ, o.c)
}
