// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements models for solids whose tangents are computed with automatic differentiation
/*
 *            |    Kind
 *  ============================================
 *            |
 *    Small   | σ = f(ε, φ)
 *            | Update computes σ
 *            | CalcD computes D = ∂σ/∂ε by AD (first order)
 *            |
 *  --------------------------------------------
 *            |
 *    Hyper   | ψ = ψ(ε, φ)
 *            | σ = ∂ψ/∂ε   D = ∂²ψ/∂ε²
 *            | computed by AD (second order)
 *            |
 */
//  Stresses, strains and the D matrix use the Mandel basis [nsig] with nsig = 2 * ndim.
//  Two-dimensional analyses are plane-strain: the models are evaluated with 3D tensors
//  whose out-of-plane shear strains vanish
package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for solid models
type Model interface {
	Init(ndim int, pstress bool, prms dbf.Params) error // initialises model
	InitIntVars(σ []float64) (*State, error)            // initialises AND allocates state
	GetPrms() dbf.Params                                // gets (an example) of parameters
}

// Small defines solid models for small strain analyses
type Small interface {
	Update(s *State, ε []float64) error  // updates stresses for given (total) strains
	CalcD(D [][]float64, s *State) error // computes D = dσ/dε at the current state
}

// Coupled defines models depending on the scalar state variable φ
type Coupled interface {
	CalcDphi(dσdφ []float64, s *State) error // computes dσ/dφ at the current state
}

// Hyper defines models derived from a strain energy density ψ(ε, φ)
type Hyper interface {
	Energy(s *State) (*EnergyDerivs, error) // computes ψ and its derivatives at the current state
}

// EnergyDerivs holds the derivatives of an energy density ψ(ε, φ)
type EnergyDerivs struct {
	Psi        float64     // ψ
	Sig        []float64   // σ = ∂ψ/∂ε [nsig]
	D          [][]float64 // D = ∂²ψ/∂ε² [nsig][nsig]
	DpsiDphi   float64     // ∂ψ/∂φ
	D2psiDphi2 float64     // ∂²ψ/∂φ²
	DsigDphi   []float64   // ∂²ψ/∂ε∂φ [nsig]
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'solid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
