// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xtal

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// OrthTol is the default tolerance for orthogonality and determinant checks
// on orientation matrices
const OrthTol = 1e-8

// OrientationError indicates a non-orthogonal or degenerate orientation
// matrix. Point is the index within the batch, or -1 for a single matrix.
type OrientationError struct {
	Point int
	Msg   string
}

// Error returns the message
func (e *OrientationError) Error() string { return e.Msg }

// CheckRotation verifies that the orientation given as a 9-component row
// (row-major 3x3) is a proper rotation within tolerance. The check is
// best-effort: R Rᵀ = I and det(R) = 1.
func CheckRotation(r []float64, tol float64) error {
	return checkRotation(r, tol, -1)
}

// CheckRotations verifies a batch of orientations [npts][9]. The first
// failing point is reported with its index.
func CheckRotations(rmats [][]float64, tol float64) error {
	for k, r := range rmats {
		if err := checkRotation(r, tol, k); err != nil {
			return err
		}
	}
	return nil
}

func checkRotation(r []float64, tol float64, point int) error {
	if len(r) != 9 {
		return &OrientationError{point, io.Sf("orientation has %d components; must be 9", len(r))}
	}
	// R Rᵀ = I
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			dot := r[3*i]*r[3*j] + r[3*i+1]*r[3*j+1] + r[3*i+2]*r[3*j+2]
			id := 0.0
			if i == j {
				id = 1.0
			}
			if math.Abs(dot-id) > tol {
				return &OrientationError{point, io.Sf("orientation at point %d is not orthogonal: |R·Rᵀ-I|[%d][%d] = %g", point, i, j, math.Abs(dot-id))}
			}
		}
	}
	// det(R) = 1
	det := r[0]*(r[4]*r[8]-r[5]*r[7]) - r[1]*(r[3]*r[8]-r[5]*r[6]) + r[2]*(r[3]*r[7]-r[4]*r[6])
	if math.Abs(det-1.0) > tol {
		return &OrientationError{point, io.Sf("orientation at point %d is not proper: det = %g", point, det)}
	}
	return nil
}
