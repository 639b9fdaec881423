// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gofad/fad"
	"github.com/cpmech/gofad/sym"
	"github.com/cpmech/gofad/wrap"
	"github.com/cpmech/gosl/chk"
)

// stressFunc computes σ(ε, φ) with first order dual numbers
type stressFunc func(ε *sym.Ten2[fad.D1], φ fad.D1) *sym.Ten2[fad.D1]

// energyFunc computes ψ(ε, φ) with second order dual numbers
type energyFunc func(ε *sym.Ten2[fad.D2], φ fad.D2) fad.D2

// toTensor converts Mandel strains [nsig] into a 3D tensor
func toTensor(ε []float64) *sym.Ten2[fad.Real] {
	m := make([]float64, 6)
	copy(m, ε)
	return sym.FromMandel(3, m)
}

// toMandelD converts C into a Mandel matrix [nsig][nsig]
func toMandelD(D [][]float64, C *sym.Ten4) {
	M := C.Mandel()
	for i := range D {
		copy(D[i], M[i][:len(D[i])])
	}
}

// adStress computes σ, D = ∂σ/∂ε and ∂σ/∂φ for given Mandel strains ε
func adStress(f stressFunc, ε []float64, φ float64) (σ []float64, D [][]float64, dσdφ []float64, err error) {

	// seed
	nsig := len(ε)
	reg, err := wrap.NewSummary(wrap.Config{Dim: 3, Order: 1})
	if err != nil {
		return
	}
	εv, err := wrap.NewTensor[fad.D1](3)
	if err != nil {
		return
	}
	φv := wrap.NewScalar[fad.D1]()
	err = reg.InitSetDofs(εv, toTensor(ε), φv, φ)
	if err != nil {
		return
	}

	// evaluate
	σv := f(εv.Ten2, φv.X)

	// extract
	C, err := wrap.TangentTT(σv, εv)
	if err != nil {
		return
	}
	M, err := wrap.TangentTS(σv, φv)
	if err != nil {
		return
	}
	σ = σv.Mandel()[:nsig]
	D = make([][]float64, nsig)
	for i := range D {
		D[i] = make([]float64, nsig)
	}
	toMandelD(D, C)
	dσdφ = M.Mandel()[:nsig]
	return
}

// adEnergy computes ψ and its first and second derivatives for given Mandel strains ε
func adEnergy(f energyFunc, ε []float64, φ float64) (res *EnergyDerivs, err error) {

	// seed
	nsig := len(ε)
	reg, err := wrap.NewSummary(wrap.Config{Dim: 3, Order: 2})
	if err != nil {
		return
	}
	εv, err := wrap.NewTensor[fad.D2](3)
	if err != nil {
		return
	}
	φv := wrap.NewScalar[fad.D2]()
	err = reg.InitSetDofs(εv, toTensor(ε), φv, φ)
	if err != nil {
		return
	}

	// evaluate
	ψ := f(εv.Ten2, φv.X)

	// extract
	res = &EnergyDerivs{Psi: ψ.Val()}
	σ, err := wrap.TangentST(ψ, εv)
	if err != nil {
		return nil, err
	}
	C, err := wrap.CurvatureTT(ψ, εv)
	if err != nil {
		return nil, err
	}
	M, err := wrap.CurvatureTS(ψ, εv, φv)
	if err != nil {
		return nil, err
	}
	res.DpsiDphi, err = wrap.TangentSS(ψ, φv)
	if err != nil {
		return nil, err
	}
	res.D2psiDphi2, err = wrap.CurvatureSS(ψ, φv, φv)
	if err != nil {
		return nil, err
	}
	res.Sig = σ.Mandel()[:nsig]
	res.D = make([][]float64, nsig)
	for i := range res.D {
		res.D[i] = make([]float64, nsig)
	}
	toMandelD(res.D, C)
	res.DsigDphi = M.Mandel()[:nsig]
	return
}

// checkNdim checks the space dimension and plane-stress flag
func checkNdim(model string, ndim int, pstress bool) (nsig int, err error) {
	if ndim != 2 && ndim != 3 {
		return 0, chk.Err("%s: ndim = %d is invalid", model, ndim)
	}
	if pstress {
		return 0, chk.Err("%s: plane-stress analyses are not available", model)
	}
	return 2 * ndim, nil
}

// copyD copies a [nsig][nsig] matrix
func copyD(D, src [][]float64) {
	for i := range D {
		copy(D[i], src[i])
	}
}
