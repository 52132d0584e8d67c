// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package slip implements the slip crystal-plasticity engine: slip-system
// geometry expanded under crystal symmetry, batched Schmid projection,
// and the composition of rate law, hardening and elastic closure for a
// crystal with slip.
package slip

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// GeometryError indicates malformed slip-system geometry at construction.
// It is fatal and never silently corrected.
type GeometryError struct {
	Msg string
}

// Error returns the message
func (e *GeometryError) Error() string { return e.Msg }

// Tolerances holds the numerical tolerances of the engine. The defaults
// (DefaultTol for every entry) match the behaviour of the reference data;
// they are explicit configuration, not hidden constants.
type Tolerances struct {
	Perp  float64 // perpendicularity of slip normal and direction
	Dedup float64 // componentwise comparison when deduplicating dyads
	Orth  float64 // orthogonality/determinant check on orientations
}

// DefaultTol is the default value for all tolerances
const DefaultTol = 1e-8

// DefaultTolerances returns the default tolerance set
func DefaultTolerances() Tolerances {
	return Tolerances{Perp: DefaultTol, Dedup: DefaultTol, Orth: DefaultTol}
}

// System is an immutable slip system: a unit slip-plane normal n and a unit
// slip direction d with n·d = 0, both in the crystal reference frame
type System struct {
	N []float64 // unit slip-plane normal [3]
	D []float64 // unit slip direction [3]
}

// NewSystem returns a validated slip system with n and d normalised to unit
// length. Fails with *GeometryError if either vector is degenerate or if
// they are not perpendicular within tol.
func NewSystem(n, d []float64, tol float64) (*System, error) {
	if len(n) != 3 || len(d) != 3 {
		return nil, &GeometryError{io.Sf("slip: normal and direction must have 3 components; got %d and %d", len(n), len(d))}
	}
	nn := []float64{n[0], n[1], n[2]}
	dd := []float64{d[0], d[1], d[2]}
	nnrm := math.Sqrt(nn[0]*nn[0] + nn[1]*nn[1] + nn[2]*nn[2])
	dnrm := math.Sqrt(dd[0]*dd[0] + dd[1]*dd[1] + dd[2]*dd[2])
	if nnrm < tol || dnrm < tol {
		return nil, &GeometryError{io.Sf("slip: degenerate slip system: |n| = %g, |d| = %g", nnrm, dnrm)}
	}
	for i := 0; i < 3; i++ {
		nn[i] /= nnrm
		dd[i] /= dnrm
	}
	dot := nn[0]*dd[0] + nn[1]*dd[1] + nn[2]*dd[2]
	if math.Abs(dot) > tol {
		return nil, &GeometryError{io.Sf("slip: normal and direction are not perpendicular: n·d = %g", dot)}
	}
	return &System{N: nn, D: dd}, nil
}

// Dyad computes the 9-component row of d⊗n
func (o *System) Dyad(t []float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[3*i+j] = o.D[i] * o.N[j]
		}
	}
}
