// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import "github.com/cpmech/gosl/chk"

// State holds all continuum mechanics data at a point
type State struct {
	Sig []float64 // σ: current Cauchy stress tensor [nsig]
	Eps []float64 // ε: current total strain tensor [nsig]
	Phi float64   // φ: scalar state variable; e.g. damage
}

// NewState allocates state structure
func NewState(nsig int) *State {
	var state State
	state.Sig = make([]float64, nsig)
	state.Eps = make([]float64, nsig)
	return &state
}

// Set copies states
//  Note: this and other states must have been pre-allocated with the same sizes
func (o *State) Set(other *State) {
	chk.IntAssert(len(o.Sig), len(other.Sig))
	o.Phi = other.Phi
	copy(o.Sig, other.Sig)
	copy(o.Eps, other.Eps)
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(len(o.Sig))
	other.Set(o)
	return other
}
