// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slip

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/HEXRD/polycrystal/mslip"
)

// Driver integrates a crystal along a prescribed total strain-rate path.
// It stands in for the external finite-element solver: it owns the outer
// Newton loop on the stress closure (using the crystal's Residual and
// Jacobian) and the forward-Euler update of the hardening state. The
// crystal itself never owns either.
type Driver struct {

	// input
	Crys   *Crystal    // crystal being driven
	C      [][]float64 // elastic stiffness, Mandel [6][6]
	NmaxIt int         // maximum Newton iterations per step
	Atol   float64     // absolute tolerance on the residual norm
	Silent bool        // do not print iteration summaries

	// state
	Sig   [][]float64  // current stresses [npts][6]
	State *mslip.State // current hardening state

	// statistics
	Nsteps int // total number of steps taken
	Nits   int // total number of Newton iterations
}

// Init initialises the driver for a batch of npts points with zero stress
// and the model's initial hardening state
func (o *Driver) Init(crys *Crystal, C [][]float64, npts int) {
	o.Crys = crys
	o.C = C
	if o.NmaxIt == 0 {
		o.NmaxIt = 20
	}
	if o.Atol == 0 {
		o.Atol = 1e-9
	}
	o.Sig = la.MatAlloc(npts, 6)
	o.State = crys.InitState(npts)
}

// Run advances nsteps steps of size dt with the prescribed total strain
// rates epsdot [npts][6] held constant over the path
func (o *Driver) Run(epsdot [][]float64, dt float64, nsteps int) (err error) {
	npts := len(o.Sig)
	chk.IntAssert(len(epsdot), npts)

	sign := la.MatAlloc(npts, 6)
	r := la.MatAlloc(npts, 6)
	J := utl.Deep3alloc(npts, 6, 6)
	Ji := la.MatAlloc(6, 6)
	δ := make([]float64, 6)
	rss := la.MatAlloc(npts, o.Crys.Nslip())
	gdot := la.MatAlloc(npts, o.Crys.Nslip())
	dsvar := la.MatAlloc(npts, o.Crys.Nsvar())

	for step := 0; step < nsteps; step++ {

		// Newton loop on the stress closure
		for k := 0; k < npts; k++ {
			copy(sign[k], o.Sig[k])
		}
		it := 0
		for ; it < o.NmaxIt; it++ {
			if err = o.Crys.Residual(r, o.Sig, sign, epsdot, o.State.Svar, dt, o.C); err != nil {
				return
			}
			rnrm := 0.0
			for k := 0; k < npts; k++ {
				if nrm := la.VecNorm(r[k]); nrm > rnrm {
					rnrm = nrm
				}
			}
			if !o.Silent {
				io.Pf("step %3d: it = %2d: max|r| = %g\n", step, it, rnrm)
			}
			if rnrm < o.Atol {
				break
			}
			if err = o.Crys.Jacobian(J, o.Sig, o.State.Svar, dt, o.C); err != nil {
				return
			}
			for k := 0; k < npts; k++ {
				if err = la.MatInvG(Ji, J[k], 1e-10); err != nil {
					return chk.Err("driver: cannot invert Jacobian at point %d: %v", k, err)
				}
				la.MatVecMul(δ, 1, Ji, r[k])
				for i := 0; i < 6; i++ {
					o.Sig[k][i] -= δ[i]
				}
			}
		}
		if it == o.NmaxIt {
			return chk.Err("driver: Newton loop did not converge within %d iterations", o.NmaxIt)
		}
		o.Nits += it

		// forward Euler update of the hardening state
		o.Crys.ResolvedShear(rss, o.Sig)
		if err = o.Crys.Model.GammaDots(gdot, nil, o.State.Svar, rss); err != nil {
			return
		}
		if err = o.Crys.StateRate(dsvar, o.State.Svar, gdot); err != nil {
			return
		}
		for k := 0; k < npts; k++ {
			for j := 0; j < o.Crys.Nsvar(); j++ {
				o.State.Svar[k][j] += dt * dsvar[k][j]
			}
		}
		o.Nsteps++
	}
	return
}
