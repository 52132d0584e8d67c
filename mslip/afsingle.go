// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mslip

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// AfSingleHardness implements Armstrong-Frederick hardening with a single
// slip resistance per point shared by all slip systems and no back-stress:
//
//	ġ = (H - H_d·g)·Σ|γ̇|
type AfSingleHardness struct {
	PowerLaw
	H  float64 // direct hardening coefficient
	Hd float64 // dynamic hardening coefficient
}

// add model to factory
func init() {
	allocators["afsingle"] = func() Model { return new(AfSingleHardness) }
}

// Init initialises model
func (o *AfSingleHardness) Init(prms dbf.Params) (err error) {
	o.initDefaults()
	for _, p := range prms {
		if o.setPrm(p) {
			continue
		}
		switch p.N {
		case "H":
			o.H = p.V
		case "H_d":
			o.Hd = p.V
		default:
			return chk.Err("afsingle: parameter named %q is incorrect", p.N)
		}
	}
	if o.Gdot0 <= 0 || o.M <= 0 || o.M > 1 {
		return chk.Err("afsingle: gamma_dot_0 (%g) must be positive and m (%g) must be within (0,1]", o.Gdot0, o.M)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o AfSingleHardness) GetPrms() dbf.Params {
	prms := o.prms()
	return append(prms, []*dbf.P{
		&dbf.P{N: "H", V: o.H},
		&dbf.P{N: "H_d", V: o.Hd},
	}...)
}

// Nsvar returns the number of state variables per point
func (o AfSingleHardness) Nsvar(nslip int) int { return 1 }

// InitState allocates state with the resistance set to g_0
func (o AfSingleHardness) InitState(npts, nslip int) *State {
	s := NewState(npts, 1, nslip)
	for k := range s.Svar {
		s.Svar[k][0] = o.G0
	}
	return s
}

// GammaDots computes slip rates and their stress sensitivities
func (o *AfSingleHardness) GammaDots(gdot, dgdot, svar, rss [][]float64) (err error) {
	if err = checkResistance(svar, 1); err != nil {
		return
	}
	for k := range rss {
		g := svar[k][0]
		for s := range rss[k] {
			gd, dgd := o.gammaDot(rss[k][s], g, 0)
			gdot[k][s] = gd
			if dgdot != nil {
				dgdot[k][s] = dgd
			}
		}
	}
	return checkFinite("gamma_dot", gdot)
}

// StateRate computes the rate of change of the shared resistance
func (o *AfSingleHardness) StateRate(dsvar, svar, gdot [][]float64) (err error) {
	if err = checkResistance(svar, 1); err != nil {
		return
	}
	for k := range gdot {
		sgdot := 0.0
		for _, gd := range gdot[k] {
			sgdot += math.Abs(gd)
		}
		dsvar[k][0] = (o.H - o.Hd*svar[k][0]) * sgdot
	}
	return checkFinite("state rate", dsvar)
}
