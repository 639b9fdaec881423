// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gofad/fad"
	"github.com/cpmech/gofad/sym"
	"github.com/cpmech/gosl/fun/dbf"
)

// PhiScaled implements a linear law scaled by the state variable φ
//  σ = E φ ε
type PhiScaled struct {
	E    float64 // stiffness
	φ0   float64 // initial φ
	nsig int     // number of stress components
}

// add model to factory
func init() {
	allocators["phi-scaled"] = func() Model { return new(PhiScaled) }
}

// Init initialises model
func (o *PhiScaled) Init(ndim int, pstress bool, prms dbf.Params) (err error) {
	o.nsig, err = checkNdim("phi-scaled", ndim, pstress)
	if err != nil {
		return
	}
	o.E, o.φ0 = 1, 1
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "phi0":
			o.φ0 = p.V
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o PhiScaled) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 1},
		&dbf.P{N: "phi0", V: 0.3},
	}
}

// InitIntVars initialises state with given stresses
func (o *PhiScaled) InitIntVars(σ []float64) (s *State, err error) {
	s = NewState(o.nsig)
	copy(s.Sig, σ)
	s.Phi = o.φ0
	return
}

// Update updates stresses for given strains
func (o *PhiScaled) Update(s *State, ε []float64) (err error) {
	σ, _, _, err := adStress(o.stress, ε, s.Phi)
	if err != nil {
		return
	}
	copy(s.Eps, ε)
	copy(s.Sig, σ)
	return
}

// CalcD computes D = dσ/dε
func (o *PhiScaled) CalcD(D [][]float64, s *State) (err error) {
	_, Dad, _, err := adStress(o.stress, s.Eps, s.Phi)
	if err != nil {
		return
	}
	copyD(D, Dad)
	return
}

// CalcDphi computes dσ/dφ
func (o *PhiScaled) CalcDphi(dσdφ []float64, s *State) (err error) {
	_, _, res, err := adStress(o.stress, s.Eps, s.Phi)
	if err != nil {
		return
	}
	copy(dσdφ, res)
	return
}

func (o *PhiScaled) stress(ε *sym.Ten2[fad.D1], φ fad.D1) *sym.Ten2[fad.D1] {
	return sym.ScaleBy(φ.Scale(o.E), ε)
}
