// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gofad/fad"
	"github.com/cpmech/gofad/sym"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// HyperElast1 implements a nonlinear hyperelastic model for powders and porous media
//  ψ(εv, εd) = pv/a (1 + 3/2 a κb εd²) + pa εv + 3/2 G0 εd²
//  with pv = (pa + p0) exp(a (εv0 - εv)), εv = tr(ε) and εd = √(2/3) |dev(ε)|
//  Note: p = -∂ψ/∂εv and q = ∂ψ/∂εd
type HyperElast1 struct {

	// parameters
	κ   float64 // κ
	κb  float64 // \bar{κ}
	G0  float64 // G0
	pr  float64 // pr
	pt  float64 // pt
	p0  float64 // p0
	εv0 float64 // εv0

	// derived
	pa   float64 // pa = pr + pt
	a    float64 // a = 1 / κ
	nsig int     // number of stress components
}

// add model to factory
func init() {
	allocators["hyperelast1"] = func() Model { return new(HyperElast1) }
}

// Init initialises model
func (o *HyperElast1) Init(ndim int, pstress bool, prms dbf.Params) (err error) {

	// parameters
	o.nsig, err = checkNdim("hyperelast1", ndim, pstress)
	if err != nil {
		return
	}
	for _, p := range prms {
		switch p.N {
		case "kap":
			o.κ = p.V
		case "kapb":
			o.κb = p.V
		case "G0":
			o.G0 = p.V
		case "pr":
			o.pr = p.V
		case "pt":
			o.pt = p.V
		case "p0":
			o.p0 = p.V
		case "ev0":
			o.εv0 = p.V
		}
	}
	if o.κ <= 0 || o.G0 <= 0 {
		return chk.Err("hyperelast1: invalid parameters: {kap=%g, G0=%g} must be all > 0", o.κ, o.G0)
	}

	// derived
	o.pa = o.pr + o.pt
	o.a = 1.0 / o.κ
	return
}

// GetPrms gets (an example) of parameters
func (o HyperElast1) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "kap", V: 0.05},
		&dbf.P{N: "kapb", V: 20.0},
		&dbf.P{N: "G0", V: 10000},
		&dbf.P{N: "pr", V: 2.0},
		&dbf.P{N: "pt", V: 10.0},
		&dbf.P{N: "p0", V: 20.0},
		&dbf.P{N: "ev0", V: 0.0},
	}
}

// InitIntVars initialises state with given stresses
func (o *HyperElast1) InitIntVars(σ []float64) (s *State, err error) {
	s = NewState(o.nsig)
	copy(s.Sig, σ)
	return
}

// Energy computes ψ and its derivatives
func (o *HyperElast1) Energy(s *State) (*EnergyDerivs, error) {
	return adEnergy(o.psi, s.Eps, s.Phi)
}

// Update updates stresses for given strains
func (o *HyperElast1) Update(s *State, ε []float64) (err error) {
	res, err := adEnergy(o.psi, ε, s.Phi)
	if err != nil {
		return
	}
	copy(s.Eps, ε)
	copy(s.Sig, res.Sig)
	return
}

// CalcD computes D = dσ/dε = ∂²ψ/∂ε²
func (o *HyperElast1) CalcD(D [][]float64, s *State) (err error) {
	res, err := o.Energy(s)
	if err != nil {
		return
	}
	copyD(D, res.D)
	return
}

// Invs computes p and q for given elastic εv and εd
func (o HyperElast1) Invs(εve, εde float64) (p, q float64) {
	pv := (o.pa + o.p0) * math.Exp(o.a*(o.εv0-εve))
	p = (1.0+1.5*o.a*o.κb*εde*εde)*pv - o.pa
	q = 3.0 * (o.G0 + o.κb*pv) * εde
	return
}

// Moduli computes the following derivatives:
//  Dvv = ∂²ψ/(∂εve ∂εve)
//  Dvd = ∂²ψ/(∂εve ∂εde)
//  Ddd = ∂²ψ/(∂εde ∂εde)
func (o HyperElast1) Moduli(εve, εde float64) (Dvv, Dvd, Ddd float64) {
	pv := (o.pa + o.p0) * math.Exp(o.a*(o.εv0-εve))
	Dvv = o.a * (1.0 + 1.5*o.a*o.κb*εde*εde) * pv
	Dvd = -3.0 * o.a * o.κb * εde * pv
	Ddd = 3.0 * (o.G0 + o.κb*pv)
	return
}

func (o *HyperElast1) psi(ε *sym.Ten2[fad.D2], φ fad.D2) fad.D2 {
	return HyperPsi(ε, o)
}

// HyperPsi computes the energy density of HyperElast1
func HyperPsi[T fad.Number[T]](ε *sym.Ten2[T], o *HyperElast1) T {
	εv := sym.Trace(ε)
	εd := sym.NormSafe(sym.Deviator(ε)).Scale(math.Sqrt(2.0 / 3.0))
	εd2 := εd.Mul(εd)
	pv := εv.Scale(-o.a).Shift(o.a * o.εv0).Exp().Scale(o.pa + o.p0)
	return pv.Scale(1.0 / o.a).Mul(εd2.Scale(1.5 * o.a * o.κb).Shift(1)).Add(εv.Scale(o.pa)).Add(εd2.Scale(1.5 * o.G0))
}
