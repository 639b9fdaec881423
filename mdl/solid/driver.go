// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"testing"

	"github.com/cpmech/gofad/ana"
	"github.com/cpmech/gofad/fad"
	"github.com/cpmech/gofad/sym"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/diff/fd"
)

// Driver run simulations with models for solids
type Driver struct {

	// input
	model Small // solid model
	ndim  int   // space dimension
	nsig  int   // number of stress components

	// settings
	Silent  bool    // do not show error messages
	TolD    float64 // tolerance to check consistent matrix
	TolDphi float64 // tolerance to check dσ/dφ
	StepD   float64 // step for numerical derivatives; zero means default
	VerD    bool    // verbose check of D

	// check D matrix
	TstD *testing.T // if != nil, do check consistent matrix

	// results
	Res []*State // results
}

// Init initialises driver
func (o *Driver) Init(modelname string, ndim int, pstress bool, prms dbf.Params) (err error) {
	mdl, err := New(modelname)
	if err != nil {
		return
	}
	err = mdl.Init(ndim, pstress, prms)
	if err != nil {
		return
	}
	return o.InitWithModel(mdl, ndim)
}

// InitWithModel initialises driver with an already initialised model
func (o *Driver) InitWithModel(mdl Model, ndim int) (err error) {
	var ok bool
	o.model, ok = mdl.(Small)
	if !ok {
		return chk.Err("cannot handle large-deformations models yet\n")
	}
	o.ndim = ndim
	o.nsig = 2 * ndim
	o.TolD = 1e-8
	o.TolDphi = 1e-8
	o.VerD = chk.Verbose
	return
}

// Model returns the underlying model
func (o *Driver) Model() Small { return o.model }

// Run runs simulation along a path of Mandel strains [npts][nsig]
func (o *Driver) Run(path [][]float64) (err error) {

	// allocate results arrays
	np := len(path)
	if np < 1 {
		return chk.Err("strain path must have at least one point\n")
	}
	o.Res = make([]*State, np)

	// initialise first state
	o.Res[0], err = o.model.(Model).InitIntVars(make([]float64, o.nsig))
	if err != nil {
		return
	}

	// update states
	D := utl.Alloc(o.nsig, o.nsig)
	dσdφ := make([]float64, o.nsig)
	for i := 0; i < np; i++ {

		// update
		if i > 0 {
			o.Res[i] = o.Res[i-1].GetCopy()
		}
		if len(path[i]) != o.nsig {
			return chk.Err("strain path point %d must have %d components. %d is invalid\n", i, o.nsig, len(path[i]))
		}
		err = o.model.Update(o.Res[i], path[i])
		if err != nil {
			if !o.Silent {
				io.Pfred("Update failed @ point %d\n", i)
			}
			return
		}

		// check consistent moduli
		if o.TstD != nil {
			err = o.model.CalcD(D, o.Res[i])
			if err != nil {
				return
			}
			o.checkD(i, D)
			if mdl, ok := o.model.(Coupled); ok {
				err = mdl.CalcDphi(dσdφ, o.Res[i])
				if err != nil {
					return
				}
				o.checkDphi(i, dσdφ)
			}
		}
	}
	return
}

// checkD compares D with central differences of Update
func (o *Driver) checkD(i int, D [][]float64) {
	stmp := o.Res[i].GetCopy()
	σfun := func(ε *sym.Ten2[fad.Real]) *sym.Ten2[fad.Real] {
		e := o.model.Update(stmp, ε.Mandel())
		if e != nil {
			chk.Panic("Update failed during numerical differentiation: %v", e)
		}
		return sym.FromMandel(o.ndim, stmp.Sig)
	}
	Dana := sym.Ten4FromMandel(o.ndim, D)
	Dnum := ana.NumTangent(σfun, sym.FromMandel(o.ndim, o.Res[i].Eps), o.StepD)
	m := sym.Ncomp(o.ndim)
	for I := 0; I < m; I++ {
		for J := 0; J < m; J++ {
			chk.AnaNum(o.TstD, io.Sf("D[%d][%d] @ %d", I, J, i), o.TolD, Dana.Slot(I, J), Dnum.Slot(I, J), o.VerD)
		}
	}
}

// checkDphi compares dσ/dφ with central differences of Update
func (o *Driver) checkDphi(i int, dσdφ []float64) {
	stmp := o.Res[i].GetCopy()
	for a := 0; a < o.nsig; a++ {
		num := fd.Derivative(func(x float64) float64 {
			stmp.Phi = x
			e := o.model.Update(stmp, o.Res[i].Eps)
			if e != nil {
				chk.Panic("Update failed during numerical differentiation: %v", e)
			}
			return stmp.Sig[a]
		}, o.Res[i].Phi, &fd.Settings{Formula: fd.Central, Step: o.StepD})
		chk.AnaNum(o.TstD, io.Sf("dσdφ[%d] @ %d", a, i), o.TolDphi, dσdφ[a], num, o.VerD)
	}
}

// StrainPath returns n points linearly interpolated between Mandel strains ε0 and ε1
func StrainPath(ε0, ε1 []float64, n int) (path [][]float64) {
	chk.IntAssert(len(ε1), len(ε0))
	path = utl.Alloc(n, len(ε0))
	for a := range ε0 {
		v := utl.LinSpace(ε0[a], ε1[a], n)
		for i := 0; i < n; i++ {
			path[i][a] = v[i]
		}
	}
	return
}
