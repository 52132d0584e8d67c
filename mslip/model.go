// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mslip implements slip-system constitutive models: power-law
// viscoplastic slip rates and Armstrong-Frederick type hardening evolution.
//
// Models are rate laws; they do not integrate in time. Given current state
// and resolved shear stresses they return slip rates with their stress
// sensitivity, and given slip rates they return the instantaneous rate of
// change of the state variables. Time integration belongs to the caller.
//
// All operations take whole batches: rows are points, columns are slip
// systems (or state variables). Model instances hold only parameters and
// may be shared across points and goroutines.
package mslip

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for slip models
type Model interface {

	// Init initialises the model with the given parameters
	Init(prms dbf.Params) error

	// GetPrms gets (an example of) parameters
	GetPrms() dbf.Params

	// Nsvar returns the number of state variables per point for a crystal
	// with nslip slip systems
	Nsvar(nslip int) int

	// InitState allocates and initialises state for npts points
	InitState(npts, nslip int) *State

	// GammaDots computes slip rates γ̇ [npts][nslip] and their stress
	// sensitivities ∂γ̇/∂τ [npts][nslip] from state variables
	// [npts][nsvar] and resolved shear stresses [npts][nslip].
	// dgdot may be nil if the sensitivities are not needed.
	GammaDots(gdot, dgdot, svar, rss [][]float64) error

	// StateRate computes the rate of change of the state variables
	// [npts][nsvar] from current state and slip rates [npts][nslip]
	StateRate(dsvar, svar, gdot [][]float64) error
}

// New returns a new slip model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'mslip' database", name)
	}
	return allocator(), nil
}

// allocators holds all available slip models; modelname => allocator
var allocators = map[string]func() Model{}
