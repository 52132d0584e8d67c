// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mslip

import "github.com/cpmech/gosl/la"

// State holds the hardening state variables for a batch of points. The
// layout of each row is model-defined; e.g. the full Armstrong-Frederick
// model stores all slip resistances followed by all back-stresses.
// State is created at point initialisation and mutated only by the caller
// integrating the model's StateRate.
type State struct {
	Nslip int         // number of slip systems
	Svar  [][]float64 // state variables [npts][nsvar]
}

// NewState allocates state for npts points with nsvar variables each
func NewState(npts, nsvar, nslip int) *State {
	return &State{
		Nslip: nslip,
		Svar:  la.MatAlloc(npts, nsvar),
	}
}

// Npts returns the number of points
func (o *State) Npts() int { return len(o.Svar) }

// Nsvar returns the number of state variables per point
func (o *State) Nsvar() int {
	if len(o.Svar) == 0 {
		return 0
	}
	return len(o.Svar[0])
}

// Set copies states
//
//	Note: 1) this and other states must have been pre-allocated with the same sizes
//	      2) this method does not check for errors
func (o *State) Set(other *State) {
	o.Nslip = other.Nslip
	for k := range o.Svar {
		copy(o.Svar[k], other.Svar[k])
	}
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(o.Npts(), o.Nsvar(), o.Nslip)
	other.Set(o)
	return other
}
