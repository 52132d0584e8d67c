// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mslip

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ArmstrongFrederick implements Armstrong-Frederick hardening with
// back-stress. The state of each point holds two fields per slip system:
// the slip resistance g and the back-stress χ, all resistances before all
// back-stresses. The rates are
//
//	ġ = H·(q12·Σ|γ̇| - (q12-1)·|γ̇|) - H_d·g·Σ|γ̇|
//	χ̇ = A·γ̇ - A_d·χ·|γ̇|
//
// where the sum runs over all systems of the point (latent hardening with
// ratio q12; q12 = 1 recovers self-hardening only).
type ArmstrongFrederick struct {
	PowerLaw
	H   float64 // direct hardening coefficient
	Hd  float64 // dynamic hardening coefficient
	A   float64 // direct back-stress coefficient
	Ad  float64 // dynamic back-stress coefficient
	Q12 float64 // latent hardening ratio
}

// add model to factory
func init() {
	allocators["af"] = func() Model { return new(ArmstrongFrederick) }
}

// Init initialises model
func (o *ArmstrongFrederick) Init(prms dbf.Params) (err error) {
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
		case "A":
			o.A = p.V
		case "A_d":
			o.Ad = p.V
		case "q12":
			o.Q12 = p.V
		default:
			return chk.Err("af: parameter named %q is incorrect", p.N)
		}
	}
	if o.Gdot0 <= 0 || o.M <= 0 || o.M > 1 {
		return chk.Err("af: gamma_dot_0 (%g) must be positive and m (%g) must be within (0,1]", o.Gdot0, o.M)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o ArmstrongFrederick) GetPrms() dbf.Params {
	prms := o.prms()
	return append(prms, []*dbf.P{
		&dbf.P{N: "H", V: o.H},
		&dbf.P{N: "H_d", V: o.Hd},
		&dbf.P{N: "A", V: o.A},
		&dbf.P{N: "A_d", V: o.Ad},
		&dbf.P{N: "q12", V: o.Q12},
	}...)
}

// Nsvar returns the number of state variables per point
func (o ArmstrongFrederick) Nsvar(nslip int) int { return 2 * nslip }

// InitState allocates state: resistances start at g_0, back-stresses at zero
func (o ArmstrongFrederick) InitState(npts, nslip int) *State {
	s := NewState(npts, o.Nsvar(nslip), nslip)
	for k := range s.Svar {
		for j := 0; j < nslip; j++ {
			s.Svar[k][j] = o.G0
		}
	}
	return s
}

// GammaDots computes slip rates and their stress sensitivities
func (o *ArmstrongFrederick) GammaDots(gdot, dgdot, svar, rss [][]float64) (err error) {
	nslip := len(rss[0])
	if err = checkResistance(svar, nslip); err != nil {
		return
	}
	for k := range rss {
		g := svar[k][:nslip]
		χ := svar[k][nslip:]
		for s := 0; s < nslip; s++ {
			gd, dgd := o.gammaDot(rss[k][s], g[s], χ[s])
			gdot[k][s] = gd
			if dgdot != nil {
				dgdot[k][s] = dgd
			}
		}
	}
	return checkFinite("gamma_dot", gdot)
}

// StateRate computes the rate of change of resistances and back-stresses
func (o *ArmstrongFrederick) StateRate(dsvar, svar, gdot [][]float64) (err error) {
	nslip := len(gdot[0])
	if err = checkResistance(svar, nslip); err != nil {
		return
	}
	qfac := o.Q12 - 1.0
	for k := range gdot {
		g := svar[k][:nslip]
		χ := svar[k][nslip:]
		sgdot := 0.0
		for s := 0; s < nslip; s++ {
			sgdot += math.Abs(gdot[k][s])
		}
		for s := 0; s < nslip; s++ {
			agd := math.Abs(gdot[k][s])
			dsvar[k][s] = o.H*(o.Q12*sgdot-qfac*agd) - o.Hd*g[s]*sgdot
			dsvar[k][nslip+s] = o.A*gdot[k][s] - o.Ad*χ[s]*agd
		}
	}
	return checkFinite("state rate", dsvar)
}
