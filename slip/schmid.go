// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slip

import (
	"github.com/cpmech/gosl/chk"

	"github.com/HEXRD/polycrystal/xtal"
)

// Project computes sample-frame Schmid tensors for a whole batch of
// orientations at once. For each point k and slip system s the crystal
// dyad T = d⊗n is rotated into the sample frame, A = R T Rᵀ, and split
// into symmetric and skew parts:
//
//	Psym[k][s] = (A + Aᵀ)/2   (resolves stress onto the system)
//	Pskw[k][s] = (A - Aᵀ)/2   (plastic spin)
//
// Tensors are 9-component rows; Psym and Pskw must be allocated with
// dimensions [npts][nslip][9] (Pskw may be nil if not needed).
// Orientations are validated best-effort (orthogonality and determinant
// within tol.Orth); a failure is reported as *xtal.OrientationError with
// the offending point index.
func Project(Psym, Pskw [][][]float64, g *Group, rmats [][]float64, tol Tolerances) (err error) {
	chk.IntAssert(len(Psym), len(rmats))
	if Pskw != nil {
		chk.IntAssert(len(Pskw), len(rmats))
	}
	if err = xtal.CheckRotations(rmats, tol.Orth); err != nil {
		return
	}
	var A [3][3]float64
	for k, r := range rmats {
		for s, t := range g.Dyads {
			// A = R T Rᵀ
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					sum := 0.0
					for p := 0; p < 3; p++ {
						for q := 0; q < 3; q++ {
							sum += r[3*i+p] * t[3*p+q] * r[3*j+q]
						}
					}
					A[i][j] = sum
				}
			}
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					Psym[k][s][3*i+j] = 0.5 * (A[i][j] + A[j][i])
					if Pskw != nil {
						Pskw[k][s][3*i+j] = 0.5 * (A[i][j] - A[j][i])
					}
				}
			}
		}
	}
	return
}
