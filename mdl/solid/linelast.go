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

// LinElastAD implements linear isotropic elasticity with the tangent computed by AD
//  σ = K tr(ε) I + 2 G dev(ε)
type LinElastAD struct {
	K    float64 // bulk modulus
	G    float64 // shear modulus
	nsig int     // number of stress components
}

// add model to factory
func init() {
	allocators["lin-elast-ad"] = func() Model { return new(LinElastAD) }
}

// LinElastSig computes σ = K tr(ε) I + 2 G dev(ε)
func LinElastSig[T fad.Number[T]](ε *sym.Ten2[T], K, G float64) *sym.Ten2[T] {
	I := sym.Unit[T](ε.Dim())
	return sym.Add(sym.ScaleBy(sym.Trace(ε).Scale(K), I), sym.Scale(2.0*G, sym.Deviator(ε)))
}

// Init initialises model
//  Note: either {K, G} or {E, nu} may be given
func (o *LinElastAD) Init(ndim int, pstress bool, prms dbf.Params) (err error) {
	o.nsig, err = checkNdim("lin-elast-ad", ndim, pstress)
	if err != nil {
		return
	}
	var E, ν float64
	for _, p := range prms {
		switch p.N {
		case "K":
			o.K = p.V
		case "G":
			o.G = p.V
		case "E":
			E = p.V
		case "nu":
			ν = p.V
		}
	}
	if E > 0 {
		o.K = E / (3.0 * (1.0 - 2.0*ν))
		o.G = E / (2.0 * (1.0 + ν))
	}
	if o.K <= 0 || o.G <= 0 {
		return chk.Err("lin-elast-ad: invalid parameters: {K=%g, G=%g} must be all > 0", o.K, o.G)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o LinElastAD) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "K", V: 5},
		&dbf.P{N: "G", V: 2},
	}
}

// InitIntVars initialises state with given stresses
func (o *LinElastAD) InitIntVars(σ []float64) (s *State, err error) {
	s = NewState(o.nsig)
	copy(s.Sig, σ)
	return
}

// Update updates stresses for given strains
func (o *LinElastAD) Update(s *State, ε []float64) (err error) {
	σ, _, _, err := adStress(o.stress, ε, s.Phi)
	if err != nil {
		return
	}
	copy(s.Eps, ε)
	copy(s.Sig, σ)
	return
}

// CalcD computes D = dσ/dε
func (o *LinElastAD) CalcD(D [][]float64, s *State) (err error) {
	_, Dad, _, err := adStress(o.stress, s.Eps, s.Phi)
	if err != nil {
		return
	}
	copyD(D, Dad)
	return
}

func (o *LinElastAD) stress(ε *sym.Ten2[fad.D1], φ fad.D1) *sym.Ten2[fad.D1] {
	return LinElastSig(ε, o.K, o.G)
}
