// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrap

import (
	"fmt"

	"github.com/cpmech/gofad/sym"
	"github.com/cpmech/gosl/io"
)

// State holds the stage of a Summary
type State int

const (
	Empty      State = iota // nothing registered
	Registered              // slots allocated
	Seeded                  // all variables seeded
	Evaluated               // derivatives have been extracted
)

// String returns the name of the state
func (o State) String() string {
	switch o {
	case Empty:
		return "empty"
	case Registered:
		return "registered"
	case Seeded:
		return "seeded"
	}
	return "evaluated"
}

// Config holds the configuration of a differentiation problem
type Config struct {
	Dim   int // space dimension of tensors: 2 or 3
	Order int // order of derivatives: 1 (fad.D1) or 2 (fad.D2)
}

// Summary allocates a contiguous range of slots to a collection of variables and seeds them
//  Usage:
//    1. Register all variables; or call SetDofs or InitSetDofs
//    2. Seed
//    3. evaluate expressions with the seeded variables
//    4. extract derivatives with Tangent, Curvature or the typed functions (TangentTT, ...)
//  Seed may be called again, after changing the values of the variables, to move to another point
type Summary struct {
	Cfg     Config // configuration
	Verbose bool   // print slot table when seeding
	vars    []Var  // registered variables
	n       int    // total number of slots
	state   State  // stage
}

// NewSummary returns a new empty Summary
func NewSummary(cfg Config) (o *Summary, err error) {
	if err = sym.CheckDim(cfg.Dim); err != nil {
		return
	}
	if cfg.Order != 1 && cfg.Order != 2 {
		return nil, fmt.Errorf("%w: order = %d is invalid; only 1 or 2 are allowed", ErrOrderMismatch, cfg.Order)
	}
	o = &Summary{Cfg: cfg}
	return
}

// Ndof returns the total number of slots
func (o *Summary) Ndof() int { return o.n }

// State returns the stage
func (o *Summary) State() State { return o.state }

// Vars returns the registered variables
func (o *Summary) Vars() []Var { return o.vars }

// Register allocates slots to variables, in the given order, after the ones already registered
func (o *Summary) Register(vars ...Var) error {
	if err := o.checkRegister(vars...); err != nil {
		return err
	}
	for _, v := range vars {
		v.setOwner(o, o.n)
		o.vars = append(o.vars, v)
		o.n += v.Width()
	}
	o.state = Registered
	return nil
}

// checkRegister checks whether vars can be registered without modifying anything
func (o *Summary) checkRegister(vars ...Var) error {
	if o.state > Registered {
		return fmt.Errorf("%w: cannot register variables in a %v summary", ErrInconsistentSeeding, o.state)
	}
	seen := make(map[Var]bool)
	for _, v := range vars {
		if v.owner() != nil || seen[v] {
			return fmt.Errorf("%w: %v variable is already registered", ErrInconsistentSeeding, v.Kind())
		}
		if v.Order() != o.Cfg.Order {
			return fmt.Errorf("%w: %v variable has order %d but summary has order %d", ErrOrderMismatch, v.Kind(), v.Order(), o.Cfg.Order)
		}
		if v.Kind() == KindTensor && v.Dim() != o.Cfg.Dim {
			return fmt.Errorf("%w: tensor has d = %d but summary has d = %d", ErrUnsupportedDim, v.Dim(), o.Cfg.Dim)
		}
		seen[v] = true
	}
	return nil
}

// Seed seeds all variables with the total number of slots
func (o *Summary) Seed() (err error) {
	if o.state == Empty {
		return fmt.Errorf("%w: no variables registered", ErrInconsistentSeeding)
	}
	for _, v := range o.vars {
		if err = v.SetDofs(v.Start(), o.n); err != nil {
			return
		}
	}
	o.state = Seeded
	if o.Verbose {
		o.Print()
	}
	return
}

// SetDofs registers and seeds variables
func (o *Summary) SetDofs(vars ...Var) (err error) {
	if err = o.Register(vars...); err != nil {
		return
	}
	return o.Seed()
}

// InitSetDofs initialises, registers and seeds variables given as (variable, value) pairs
//  Values of tensors are *sym.Ten2[fad.Real] or [][]float64; values of scalars are float64
//  Example:
//    err := o.InitSetDofs(ε, εValues, φ, 0.3)
func (o *Summary) InitSetDofs(args ...interface{}) (err error) {
	if len(args)%2 != 0 {
		return fmt.Errorf("%w: arguments must come in (variable, value) pairs; %d given", ErrInconsistentSeeding, len(args))
	}
	vars := make([]Var, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		v, ok := args[i].(Var)
		if !ok {
			return fmt.Errorf("%w: argument %d must be a variable; %T given", ErrInconsistentSeeding, i, args[i])
		}
		if err = v.checkValue(args[i+1]); err != nil {
			return
		}
		vars[i/2] = v
	}
	if err = o.checkRegister(vars...); err != nil {
		return
	}
	for i, v := range vars {
		if err = v.initValue(args[2*i+1]); err != nil {
			return
		}
	}
	return o.SetDofs(vars...)
}

// Print prints the slot table
func (o *Summary) Print() {
	io.Pf("%s\n", o)
}

// String returns the slot table
func (o *Summary) String() string {
	l := io.Sf("N = %d (d = %d, order = %d, %v)\n", o.n, o.Cfg.Dim, o.Cfg.Order, o.state)
	l += io.Sf("%4s%8s%7s%7s\n", "var", "kind", "start", "width")
	for i, v := range o.vars {
		l += io.Sf("%4d%8v%7d%7d\n", i, v.Kind(), v.Start(), v.Width())
		if v.Kind() == KindTensor {
			for ℓ := 0; ℓ < v.Width(); ℓ++ {
				a, b := sym.SlotToIJ(v.Dim(), ℓ)
				l += io.Sf("%19s slot %d ⇔ (%d,%d)\n", "", v.Start()+ℓ, a, b)
			}
		}
	}
	return l
}

// markEvaluated sets the state of the summaries owning vars
func markEvaluated(vars ...Var) {
	for _, v := range vars {
		if reg := v.owner(); reg != nil {
			reg.state = Evaluated
		}
	}
}
