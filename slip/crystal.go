// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slip

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/HEXRD/polycrystal/mandel"
	"github.com/HEXRD/polycrystal/mslip"
)

// Crystal composes slip-system groups with one slip model into the
// constitutive engine for a crystal with slip. A Crystal holds only
// immutable data (geometry and model parameters): all point-varying
// quantities are passed in and returned, so one instance may be shared
// across points and goroutines; callers own their batch buffers for the
// duration of each call.
//
// Stresses are given in the crystal reference frame as Mandel 6-vectors
// (see package mandel); use Project to move Schmid tensors to the sample
// frame when working there instead.
type Crystal struct {
	Groups []*Group    // slip system groups, concatenated in order
	Model  mslip.Model // slip rate and hardening model

	dyads [][]float64 // unit Schmid dyads d⊗n [nslip][9]
	sym6  [][]float64 // symmetric Schmid parts, Mandel [nslip][6]
	dev5  [][]float64 // symmetric-deviatoric Schmid parts [nslip][5]
}

// NewCrystal returns a new crystal with slip
func NewCrystal(groups []*Group, model mslip.Model) (*Crystal, error) {
	if len(groups) == 0 {
		return nil, chk.Err("slip: crystal requires at least one slip system group")
	}
	if model == nil {
		return nil, chk.Err("slip: crystal requires a slip model")
	}
	o := &Crystal{Groups: groups, Model: model}
	for _, g := range groups {
		o.dyads = append(o.dyads, g.Dyads...)
	}
	nslip := len(o.dyads)
	o.sym6 = la.MatAlloc(nslip, 6)
	o.dev5 = la.MatAlloc(nslip, 5)
	mandel.Symm6(o.sym6, o.dyads)
	mandel.SymmDev5(o.dev5, o.dyads)
	return o, nil
}

// Nslip returns the total number of slip systems
func (o *Crystal) Nslip() int { return len(o.dyads) }

// Nsvar returns the number of state variables per point
func (o *Crystal) Nsvar() int { return o.Model.Nsvar(o.Nslip()) }

// InitState allocates and initialises hardening state for npts points
func (o *Crystal) InitState(npts int) *mslip.State {
	return o.Model.InitState(npts, o.Nslip())
}

// Schmid returns the unit Schmid dyads d⊗n [nslip][9] (crystal frame)
func (o *Crystal) Schmid() [][]float64 { return o.dyads }

// SchmidSym6 returns the symmetric Schmid parts as Mandel 6-vectors
func (o *Crystal) SchmidSym6() [][]float64 { return o.sym6 }

// SchmidDev5 returns the symmetric-deviatoric Schmid parts as 5-vectors
func (o *Crystal) SchmidDev5() [][]float64 { return o.dev5 }

// ResolvedShear computes resolved shear stresses τ = P:σ for all systems
// at all points: rss [npts][nslip] from crystal stresses sig6 [npts][6]
func (o *Crystal) ResolvedShear(rss, sig6 [][]float64) {
	chk.IntAssert(len(rss), len(sig6))
	for k := range sig6 {
		la.MatVecMul(rss[k], 1, o.sym6, sig6[k])
	}
}

// VelocityGradient computes the plastic velocity gradient
// Lp = Σ γ̇ₛ dₛ⊗nₛ for all points: lp [npts][9] from gdot [npts][nslip]
func (o *Crystal) VelocityGradient(lp, gdot [][]float64) {
	chk.IntAssert(len(lp), len(gdot))
	for k := range gdot {
		for i := 0; i < 9; i++ {
			lp[k][i] = 0
		}
		for s, t := range o.dyads {
			gd := gdot[k][s]
			for i := 0; i < 9; i++ {
				lp[k][i] += gd * t[i]
			}
		}
	}
}

// PlasticStrainRate computes the plastic strain rate (symmetric part of
// Lp) as Mandel 6-vectors: epsp [npts][6]
func (o *Crystal) PlasticStrainRate(epsp, gdot [][]float64) {
	chk.IntAssert(len(epsp), len(gdot))
	for k := range gdot {
		for i := 0; i < 6; i++ {
			epsp[k][i] = 0
		}
		for s, p := range o.sym6 {
			gd := gdot[k][s]
			for i := 0; i < 6; i++ {
				epsp[k][i] += gd * p[i]
			}
		}
	}
}

// Results holds the outputs of one Response evaluation
type Results struct {
	Rss   [][]float64 // resolved shear stresses [npts][nslip]
	Gdot  [][]float64 // slip rates [npts][nslip]
	Dgdot [][]float64 // slip-rate stress sensitivities [npts][nslip]
	Lp    [][]float64 // plastic velocity gradients [npts][9]
	Epsp  [][]float64 // plastic strain rates, Mandel [npts][6]
	Dsvar [][]float64 // state variable rates [npts][nsvar]
}

// NewResults allocates results for a crystal and batch size
func NewResults(npts int, c *Crystal) *Results {
	return &Results{
		Rss:   la.MatAlloc(npts, c.Nslip()),
		Gdot:  la.MatAlloc(npts, c.Nslip()),
		Dgdot: la.MatAlloc(npts, c.Nslip()),
		Lp:    la.MatAlloc(npts, 9),
		Epsp:  la.MatAlloc(npts, 6),
		Dsvar: la.MatAlloc(npts, c.Nsvar()),
	}
}

// Response evaluates the full slip response for a batch of points: resolved
// shear stresses, slip rates with sensitivities, plastic velocity gradient,
// plastic strain rate and state variable rates. Pure function of its
// inputs: identical inputs give bit-identical outputs. Non-finite values
// are reported as *mslip.NonFiniteError, never masked.
func (o *Crystal) Response(res *Results, sig6, svar [][]float64) (err error) {
	o.ResolvedShear(res.Rss, sig6)
	if err = o.Model.GammaDots(res.Gdot, res.Dgdot, svar, res.Rss); err != nil {
		return
	}
	o.VelocityGradient(res.Lp, res.Gdot)
	o.PlasticStrainRate(res.Epsp, res.Gdot)
	return o.Model.StateRate(res.Dsvar, svar, res.Gdot)
}

// StateRate computes the state variable rates only
func (o *Crystal) StateRate(dsvar, svar, gdot [][]float64) error {
	return o.Model.StateRate(dsvar, svar, gdot)
}

// Residual computes the backward-Euler closure residual for a batch of
// points driven by a prescribed total strain rate:
//
//	r(σ) = σ - σₙ - Δt·C·(ε̇ - ε̇p(σ))
//
// with sig the current stress iterate, sign the converged stress of the
// previous step, epsdot the total strain rate (all Mandel [npts][6]) and
// C the elastic stiffness [6][6] in the crystal frame. The outer Newton
// loop belongs to the caller; see also Jacobian.
func (o *Crystal) Residual(r, sig, sign, epsdot, svar [][]float64, dt float64, C [][]float64) (err error) {
	npts := len(sig)
	rss := la.MatAlloc(npts, o.Nslip())
	gdot := la.MatAlloc(npts, o.Nslip())
	epsp := la.MatAlloc(npts, 6)
	o.ResolvedShear(rss, sig)
	if err = o.Model.GammaDots(gdot, nil, svar, rss); err != nil {
		return
	}
	o.PlasticStrainRate(epsp, gdot)
	for k := 0; k < npts; k++ {
		for i := 0; i < 6; i++ {
			sum := 0.0
			for j := 0; j < 6; j++ {
				sum += C[i][j] * (epsdot[k][j] - epsp[k][j])
			}
			r[k][i] = sig[k][i] - sign[k][i] - dt*sum
			if math.IsNaN(r[k][i]) || math.IsInf(r[k][i], 0) {
				return &mslip.NonFiniteError{Msg: io.Sf("slip: residual is non-finite at point %d, component %d", k, i)}
			}
		}
	}
	return
}

// Jacobian computes the consistent tangent of Residual with respect to the
// stress iterate:
//
//	J = I + Δt·C·Σₛ (∂γ̇/∂τ)ₛ PₛPₛᵀ
//
// J must be allocated [npts][6][6]
func (o *Crystal) Jacobian(J [][][]float64, sig, svar [][]float64, dt float64, C [][]float64) (err error) {
	npts := len(sig)
	rss := la.MatAlloc(npts, o.Nslip())
	gdot := la.MatAlloc(npts, o.Nslip())
	dgdot := la.MatAlloc(npts, o.Nslip())
	o.ResolvedShear(rss, sig)
	if err = o.Model.GammaDots(gdot, dgdot, svar, rss); err != nil {
		return
	}
	var M [6][6]float64
	for k := 0; k < npts; k++ {
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				M[i][j] = 0
			}
		}
		for s, p := range o.sym6 {
			dgd := dgdot[k][s]
			if dgd == 0 {
				continue
			}
			for i := 0; i < 6; i++ {
				for j := 0; j < 6; j++ {
					M[i][j] += dgd * p[i] * p[j]
				}
			}
		}
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				sum := 0.0
				for l := 0; l < 6; l++ {
					sum += C[i][l] * M[l][j]
				}
				J[k][i][j] = dt * sum
			}
			J[k][i][i] += 1.0
		}
	}
	return
}
