// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mslip

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// AfZeroBackStress implements Armstrong-Frederick hardening with one slip
// resistance per system, latent hardening, and zero back-stress:
//
//	ġ = H·(q12·Σ|γ̇| - (q12-1)·|γ̇|) - H_d·g·Σ|γ̇|
type AfZeroBackStress struct {
	PowerLaw
	H   float64 // direct hardening coefficient
	Hd  float64 // dynamic hardening coefficient
	Q12 float64 // latent hardening ratio
}

// add model to factory
func init() {
	allocators["afzeroback"] = func() Model { return new(AfZeroBackStress) }
}

// Init initialises model
func (o *AfZeroBackStress) Init(prms dbf.Params) (err error) {
	o.initDefaults()
	o.Q12 = 1.0
	for _, p := range prms {
		if o.setPrm(p) {
			continue
		}
		switch p.N {
		case "H":
			o.H = p.V
		case "H_d":
			o.Hd = p.V
		case "q12":
			o.Q12 = p.V
		default:
			return chk.Err("afzeroback: parameter named %q is incorrect", p.N)
		}
	}
	if o.Gdot0 <= 0 || o.M <= 0 || o.M > 1 {
		return chk.Err("afzeroback: gamma_dot_0 (%g) must be positive and m (%g) must be within (0,1]", o.Gdot0, o.M)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o AfZeroBackStress) GetPrms() dbf.Params {
	prms := o.prms()
	return append(prms, []*dbf.P{
		&dbf.P{N: "H", V: o.H},
		&dbf.P{N: "H_d", V: o.Hd},
		&dbf.P{N: "q12", V: o.Q12},
	}...)
}

// Nsvar returns the number of state variables per point
func (o AfZeroBackStress) Nsvar(nslip int) int { return nslip }

// InitState allocates state with all resistances set to g_0
func (o AfZeroBackStress) InitState(npts, nslip int) *State {
	s := NewState(npts, nslip, nslip)
	for k := range s.Svar {
		for j := 0; j < nslip; j++ {
			s.Svar[k][j] = o.G0
		}
	}
	return s
}

// GammaDots computes slip rates and their stress sensitivities
func (o *AfZeroBackStress) GammaDots(gdot, dgdot, svar, rss [][]float64) (err error) {
	nslip := len(rss[0])
	if err = checkResistance(svar, nslip); err != nil {
		return
	}
	for k := range rss {
		for s := 0; s < nslip; s++ {
			gd, dgd := o.gammaDot(rss[k][s], svar[k][s], 0)
			gdot[k][s] = gd
			if dgdot != nil {
				dgdot[k][s] = dgd
			}
		}
	}
	return checkFinite("gamma_dot", gdot)
}

// StateRate computes the rate of change of the resistances
func (o *AfZeroBackStress) StateRate(dsvar, svar, gdot [][]float64) (err error) {
	nslip := len(gdot[0])
	if err = checkResistance(svar, nslip); err != nil {
		return
	}
	qfac := o.Q12 - 1.0
	for k := range gdot {
		sgdot := 0.0
		for s := 0; s < nslip; s++ {
			sgdot += math.Abs(gdot[k][s])
		}
		for s := 0; s < nslip; s++ {
			dsvar[k][s] = o.H*(o.Q12*sgdot-qfac*math.Abs(gdot[k][s])) - o.Hd*svar[k][s]*sgdot
		}
	}
	return checkFinite("state rate", dsvar)
}
