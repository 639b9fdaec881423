// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gofad/inp"
	"github.com/cpmech/gofad/mdl/solid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".json", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nGofad -- tangents of constitutive models by automatic differentiation\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"point file path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// point data
	pt, err := inp.ReadPoint(fnamepath)
	if err != nil {
		chk.Panic("ReadPoint failed:\n%v", err)
	}

	// model
	mdl, err := solid.New(pt.Model)
	if err != nil {
		chk.Panic("%v", err)
	}
	err = mdl.Init(pt.Dim, false, pt.Params())
	if err != nil {
		chk.Panic("Init failed:\n%v", err)
	}
	small, ok := mdl.(solid.Small)
	if !ok {
		chk.Panic("model %q cannot be used with small strains", pt.Model)
	}

	// state
	nsig := 2 * pt.Dim
	s, err := mdl.InitIntVars(make([]float64, nsig))
	if err != nil {
		chk.Panic("InitIntVars failed:\n%v", err)
	}
	if pt.Phi != nil {
		s.Phi = *pt.Phi
	}
	ε := pt.Strain().Mandel()
	err = small.Update(s, ε)
	if err != nil {
		chk.Panic("Update failed:\n%v", err)
	}

	// results
	io.Pf("\n%s\n", pt.Desc)
	io.Pfyel("ε (Mandel) = %v\n", ε)
	io.Pfyel("φ          = %v\n", s.Phi)
	switch pt.Order {
	case 1:
		D := utl.Alloc(nsig, nsig)
		err = small.CalcD(D, s)
		if err != nil {
			chk.Panic("CalcD failed:\n%v", err)
		}
		io.Pforan("σ (Mandel) = %v\n", s.Sig)
		io.Pforan("D (Mandel) =\n%v\n", io.Sf("%v", D))
		if cpl, ok := mdl.(solid.Coupled); ok {
			dσdφ := make([]float64, nsig)
			err = cpl.CalcDphi(dσdφ, s)
			if err != nil {
				chk.Panic("CalcDphi failed:\n%v", err)
			}
			io.Pforan("dσ/dφ      = %v\n", dσdφ)
		}
	case 2:
		hyp, ok := mdl.(solid.Hyper)
		if !ok {
			chk.Panic("model %q is not derived from an energy density", pt.Model)
		}
		res, err := hyp.Energy(s)
		if err != nil {
			chk.Panic("Energy failed:\n%v", err)
		}
		io.Pforan("ψ          = %v\n", res.Psi)
		io.Pforan("σ (Mandel) = %v\n", res.Sig)
		io.Pforan("D (Mandel) =\n%v\n", io.Sf("%v", res.D))
		io.Pforan("∂ψ/∂φ      = %v\n", res.DpsiDphi)
		io.Pforan("∂²ψ/∂φ²    = %v\n", res.D2psiDphi2)
		io.Pforan("∂²ψ/∂ε∂φ   = %v\n", res.DsigDphi)
	}
}
