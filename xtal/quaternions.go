// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package xtal implements crystal orientations and symmetry groups.
// Orientations are change-of-basis matrices taking crystal coordinates to
// sample coordinates (R c = s). Assuming right-handed orthonormal bases in
// both frames, orientations are proper rotation matrices.
package xtal

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// QuatCut is the default cutoff for rotation angles near 0 or 180 degrees
// when extracting quaternions from rotation matrices
const QuatCut = 1e-6

// QuatIdentity returns the identity quaternion
func QuatIdentity() []float64 {
	return []float64{1, 0, 0, 0}
}

// QuatMultiply computes the product q = a * b of two unit quaternions,
// normalised to unit magnitude
func QuatMultiply(q, a, b []float64) {
	s1, s2 := a[0], b[0]
	v1 := []float64{a[1], a[2], a[3]}
	v2 := []float64{b[1], b[2], b[3]}
	q[0] = s1*s2 - (v1[0]*v2[0] + v1[1]*v2[1] + v1[2]*v2[2])
	q[1] = s1*v2[0] + s2*v1[0] + v1[1]*v2[2] - v1[2]*v2[1]
	q[2] = s1*v2[1] + s2*v1[1] + v1[2]*v2[0] - v1[0]*v2[2]
	q[3] = s1*v2[2] + s2*v1[2] + v1[0]*v2[1] - v1[1]*v2[0]
	nrm := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	for i := 0; i < 4; i++ {
		q[i] /= nrm
	}
}

// QuatInverse computes the inverse qi of unit quaternion q
func QuatInverse(qi, q []float64) {
	qi[0] = q[0]
	qi[1] = -q[1]
	qi[2] = -q[2]
	qi[3] = -q[3]
}

// QuatToRmat converts a unit quaternion to a rotation matrix
//
//	R(w) = (qs² - qv·qv) I + 2 qv qvᵀ + 2 qs W(qv)
func QuatToRmat(R [][]float64, q []float64) {
	qs := q[0]
	qv := []float64{q[1], q[2], q[3]}
	qvqv := qv[0]*qv[0] + qv[1]*qv[1] + qv[2]*qv[2]
	c := qs*qs - qvqv
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[i][j] = 2.0 * qv[i] * qv[j]
		}
		R[i][i] += c
	}
	R[0][1] -= 2.0 * qs * qv[2]
	R[1][0] += 2.0 * qs * qv[2]
	R[0][2] += 2.0 * qs * qv[1]
	R[2][0] -= 2.0 * qs * qv[1]
	R[1][2] -= 2.0 * qs * qv[0]
	R[2][1] += 2.0 * qs * qv[0]
}

// QuatFromRmat extracts a unit quaternion from rotation matrix R.
// Angles within QuatCut of 0 or 180 degrees are handled separately.
func QuatFromRmat(q []float64, R [][]float64) {
	ca := 0.5 * (R[0][0] + R[1][1] + R[2][2] - 1.0)
	if ca > 1.0 {
		ca = 1.0
	}
	if ca < -1.0 {
		ca = -1.0
	}
	angle := math.Acos(ca)

	// axial vector
	w := []float64{
		R[2][1] - R[1][2],
		R[0][2] - R[2][0],
		R[1][0] - R[0][1],
	}

	switch {
	case angle < QuatCut:
		w[0], w[1], w[2] = 1, 1, 1
	case angle > math.Pi-QuatCut:
		// axis from the symmetric part of R - cos(angle) I
		var rpi [3][3]float64
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				rpi[i][j] = 0.5 * (R[i][j] + R[j][i])
			}
			rpi[i][i] -= ca
		}
		ind := 0
		if rpi[1][1] > rpi[ind][ind] {
			ind = 1
		}
		if rpi[2][2] > rpi[ind][ind] {
			ind = 2
		}
		w[0], w[1], w[2] = rpi[ind][0], rpi[ind][1], rpi[ind][2]
	}

	nrm := math.Sqrt(w[0]*w[0] + w[1]*w[1] + w[2]*w[2])
	s := math.Sin(0.5*angle) / nrm
	q[0] = math.Cos(0.5 * angle)
	q[1] = s * w[0]
	q[2] = s * w[1]
	q[3] = s * w[2]
}

// QuatFromExp computes the quaternion of the exponential map parameter w;
// w is the axial vector of a skew matrix W and exp(W) is the rotation with
// axis parallel to w and angle equal to the length of w
func QuatFromExp(q, w []float64) {
	a := math.Sqrt(w[0]*w[0] + w[1]*w[1] + w[2]*w[2])
	if a < QuatCut {
		// near the origin: unit axis with zero angle
		q[0] = math.Cos(a / 2.0)
		s := math.Sin(a/2.0) / math.Sqrt(3.0)
		q[1], q[2], q[3] = s, s, s
		return
	}
	c := math.Cos(a / 2.0)
	s := math.Sin(a/2.0) / a
	q[0] = c
	q[1] = s * w[0]
	q[2] = s * w[1]
	q[3] = s * w[2]
}

// QuatsToRmats converts a batch of quaternions [n][4] to rotation matrices.
// Each rotation matrix is returned as a 9-component row (row-major 3x3),
// therefore rmats must be allocated with dimensions [n][9].
func QuatsToRmats(rmats [][]float64, qs [][]float64) {
	chk.IntAssert(len(rmats), len(qs))
	R := la.MatAlloc(3, 3)
	for k, q := range qs {
		QuatToRmat(R, q)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				rmats[k][3*i+j] = R[i][j]
			}
		}
	}
}
