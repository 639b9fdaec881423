// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical and numerical reference solutions for constitutive tangents
package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ConfinedElastic computes the solution to a linear elastic sample under confined (oedometric)
// compression; i.e. with zero lateral strains
//
//     ▷ o-----------o ◁
//     ▷ |           | ◁
//     ▷ |    E, ν   | ◁       negative stress means compression
//     ▷ |  (K, G)   | ◁       εv: vertical strain
//     ▷ |           | ◁
//     ▷ o-----------o ◁
//       △  △  △  △  △
type ConfinedElastic struct {

	// input
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient

	// derived
	K float64 // bulk modulus
	G float64 // shear modulus
	d float64 // auxiliary coefficient = ν/(1-ν)
	M float64 // P-wave modulus
}

// Init initialises this structure
//  Note: either {E, nu} or {K, G} may be given
func (o *ConfinedElastic) Init(prms dbf.Params) (err error) {

	// default values
	o.E = 1000.0
	o.ν = 0.25

	// parameters
	var K, G float64
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		case "K":
			K = p.V
		case "G":
			G = p.V
		}
	}
	if K > 0 && G > 0 {
		o.E = 9.0 * K * G / (3.0*K + G)
		o.ν = (3.0*K - 2.0*G) / (6.0*K + 2.0*G)
	}
	if o.E <= 0 || o.ν <= -1 || o.ν >= 0.5 {
		return chk.Err("invalid parameters: E = %g must be positive and ν = %g must be in (-1, 0.5)", o.E, o.ν)
	}

	// derived
	o.K = o.E / (3.0 * (1.0 - 2.0*o.ν))
	o.G = o.E / (2.0 * (1.0 + o.ν))
	o.d = o.ν / (1.0 - o.ν)
	o.M = o.E * (1.0 - o.ν) / ((1.0 + o.ν) * (1.0 - 2.0*o.ν))
	return
}

// Strain returns the Mandel strain corresponding to a vertical strain εv
//  The vertical direction is y in 2D and z in 3D
func (o ConfinedElastic) Strain(ndim int, εv float64) (ε []float64) {
	ε = make([]float64, 2*ndim)
	ε[ndim-1] = εv
	return
}

// Stress returns the Mandel stress corresponding to a vertical strain εv
func (o ConfinedElastic) Stress(ndim int, εv float64) (σ []float64) {
	σv := o.M * εv // vertical stress
	σh := o.d * σv // horizontal stress
	σ = make([]float64, 2*ndim)
	if ndim == 2 {
		σ[0], σ[1], σ[2] = σh, σv, σh
		return
	}
	σ[0], σ[1], σ[2] = σh, σh, σv
	return
}
