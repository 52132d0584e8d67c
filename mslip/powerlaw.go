// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mslip

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// GminDefault is the default slip-resistance floor. Resistances below this
// value are clipped to it before dividing, so a zero resistance never
// produces a division by zero. The floor is the only documented clamp in
// the rate law; it can be changed with the "g_min" parameter.
const GminDefault = 1e-8

// G0Default is the default initial slip resistance
const G0Default = 1.0

// PowerLaw holds the power-law viscoplastic slip-rate law
//
//	γ̇ = γ̇₀ · sign(τ-χ) · |(τ-χ)/g|^(1/m)
//
// shared by all slip models in this package. When GdotMax > 0, rates are
// clipped to that magnitude (and the stress sensitivity is zero in the
// clipped region).
type PowerLaw struct {
	Gdot0   float64 // γ̇₀: reference deformation rate
	M       float64 // m: rate dependence (0 < m <= 1)
	G0      float64 // initial slip resistance
	Gmin    float64 // slip resistance floor
	GdotMax float64 // maximum slip-rate magnitude; 0 means no clipping
}

// initDefaults sets the numerical configuration defaults
func (o *PowerLaw) initDefaults() {
	o.G0 = G0Default
	o.Gmin = GminDefault
	o.GdotMax = 0
}

// setPrm consumes one parameter; returns false if the name is not one of
// the rate-law parameters
func (o *PowerLaw) setPrm(p *dbf.P) bool {
	switch p.N {
	case "gamma_dot_0":
		o.Gdot0 = p.V
	case "m":
		o.M = p.V
	case "g_0":
		o.G0 = p.V
	case "g_min":
		o.Gmin = p.V
	case "gamma_dot_max":
		o.GdotMax = p.V
	default:
		return false
	}
	return true
}

// prms returns the rate-law parameters
func (o *PowerLaw) prms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "gamma_dot_0", V: o.Gdot0},
		&dbf.P{N: "m", V: o.M},
		&dbf.P{N: "g_0", V: o.G0},
		&dbf.P{N: "g_min", V: o.Gmin},
		&dbf.P{N: "gamma_dot_max", V: o.GdotMax},
	}
}

// gammaDot evaluates the rate law and its stress sensitivity for one slip
// system: τ is the resolved shear stress, g the slip resistance and χ the
// back-stress. g must be nonnegative (checked by the callers).
func (o *PowerLaw) gammaDot(τ, g, χ float64) (gd, dgd float64) {
	if g < o.Gmin {
		g = o.Gmin
	}
	Δ := τ - χ
	sign := 1.0
	if Δ < 0 {
		sign = -1.0
	}
	n := 1.0 / o.M
	x := math.Abs(Δ) / g
	if o.GdotMax > 0 {
		xmax := math.Pow(o.GdotMax/o.Gdot0, o.M)
		if x >= xmax {
			return sign * o.GdotMax, 0
		}
	}
	gd = sign * o.Gdot0 * math.Pow(x, n)
	dgd = o.Gdot0 * n / g * math.Pow(x, n-1.0)
	return
}

// checkFinite verifies that a batch holds finite values only
func checkFinite(name string, a [][]float64) error {
	for k, row := range a {
		for j, x := range row {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return &NonFiniteError{io.Sf("mslip: %s is non-finite at point %d, component %d: %v", name, k, j, x)}
			}
		}
	}
	return nil
}

// checkResistance verifies that slip resistances are nonnegative
func checkResistance(g [][]float64, nslip int) error {
	for k, row := range g {
		for s := 0; s < nslip; s++ {
			if row[s] < 0 {
				return &StateError{io.Sf("mslip: negative slip resistance %g at point %d, system %d", row[s], k, s)}
			}
		}
	}
	return nil
}
