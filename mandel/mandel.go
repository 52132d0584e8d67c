// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mandel implements orthonormal component systems for batched 3x3
// tensors: Mandel symmetric 6-vectors, symmetric-deviatoric 5-vectors, skew
// 3-vectors and the spherical part. Inner products of component vectors
// equal the corresponding full tensor contractions A:B.
//
// Batches are [][]float64 with one row per point. Full tensors are rows of
// 9 components in row-major order:
//
//	m = ⎡ r[0] r[1] r[2] ⎤
//	    ⎢ r[3] r[4] r[5] ⎥
//	    ⎣ r[6] r[7] r[8] ⎦
//
// Mandel 6-vector ordering: (m11, m22, m33, √2·m23, √2·m13, √2·m12)
package mandel

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/tsr"
)

var (
	sq2i = 1.0 / tsr.SQ2 // 1/√2
	sq3i = 1.0 / tsr.SQ3 // 1/√3
	sq6i = 1.0 / tsr.SQ6 // 1/√6
)

// Symm6 extracts the symmetric parts of a batch of 3x3 tensors [npts][9]
// as Mandel 6-vectors [npts][6]
func Symm6(v, m [][]float64) {
	chk.IntAssert(len(v), len(m))
	for k, r := range m {
		v[k][0] = r[0]
		v[k][1] = r[4]
		v[k][2] = r[8]
		v[k][3] = sq2i * (r[5] + r[7])
		v[k][4] = sq2i * (r[2] + r[6])
		v[k][5] = sq2i * (r[1] + r[3])
	}
}

// SymmDev5 extracts the symmetric-deviatoric parts as 5-vectors [npts][5]
// in an orthonormal basis:
//
//	d[0] = (2·m11 - m22 - m33)/√6
//	d[1] = (m22 - m33)/√2
//	d[2] = (m23 + m32)/√2
//	d[3] = (m13 + m31)/√2
//	d[4] = (m12 + m21)/√2
func SymmDev5(d, m [][]float64) {
	chk.IntAssert(len(d), len(m))
	for k, r := range m {
		d[k][0] = sq6i * (2.0*r[0] - r[4] - r[8])
		d[k][1] = sq2i * (r[4] - r[8])
		d[k][2] = sq2i * (r[5] + r[7])
		d[k][3] = sq2i * (r[2] + r[6])
		d[k][4] = sq2i * (r[1] + r[3])
	}
}

// Skew3 extracts the skew parts as 3-vectors [npts][3]
func Skew3(w, m [][]float64) {
	chk.IntAssert(len(w), len(m))
	for k, r := range m {
		w[k][0] = sq2i * (r[5] - r[7])
		w[k][1] = sq2i * (r[6] - r[2])
		w[k][2] = sq2i * (r[1] - r[3])
	}
}

// Sph extracts the spherical parts as scalars [npts]
func Sph(s []float64, m [][]float64) {
	chk.IntAssert(len(s), len(m))
	for k, r := range m {
		s[k] = sq3i * (r[0] + r[4] + r[8])
	}
}

// Trace returns the traces [npts]
func Trace(t []float64, m [][]float64) {
	chk.IntAssert(len(t), len(m))
	for k, r := range m {
		t[k] = r[0] + r[4] + r[8]
	}
}

// FromSymm6 builds full tensors [npts][9] from Mandel 6-vectors
func FromSymm6(m, v [][]float64) {
	chk.IntAssert(len(m), len(v))
	for k, a := range v {
		m[k][0] = a[0]
		m[k][4] = a[1]
		m[k][8] = a[2]
		m[k][5] = sq2i * a[3]
		m[k][7] = sq2i * a[3]
		m[k][2] = sq2i * a[4]
		m[k][6] = sq2i * a[4]
		m[k][1] = sq2i * a[5]
		m[k][3] = sq2i * a[5]
	}
}

// FromParts builds full tensors [npts][9] additively from symmetric-
// deviatoric 5-vectors, skew 3-vectors and spherical scalars; any of the
// parts may be nil
func FromParts(m [][]float64, dev, skw [][]float64, sph []float64) {
	for k := range m {
		for i := 0; i < 9; i++ {
			m[k][i] = 0
		}
		if dev != nil {
			d := dev[k]
			m[k][0] = 2.0 * sq6i * d[0]
			m[k][4] = -sq6i*d[0] + sq2i*d[1]
			m[k][8] = -sq6i*d[0] - sq2i*d[1]
			m[k][5] += sq2i * d[2]
			m[k][7] += sq2i * d[2]
			m[k][2] += sq2i * d[3]
			m[k][6] += sq2i * d[3]
			m[k][1] += sq2i * d[4]
			m[k][3] += sq2i * d[4]
		}
		if skw != nil {
			w := skw[k]
			m[k][5] += sq2i * w[0]
			m[k][7] -= sq2i * w[0]
			m[k][6] += sq2i * w[1]
			m[k][2] -= sq2i * w[1]
			m[k][1] += sq2i * w[2]
			m[k][3] -= sq2i * w[2]
		}
		if sph != nil {
			p := sq3i * sph[k]
			m[k][0] += p
			m[k][4] += p
			m[k][8] += p
		}
	}
}

// Dev5ToSymm6 converts symmetric-deviatoric 5-vectors to Mandel 6-vectors
func Dev5ToSymm6(v, d [][]float64) {
	chk.IntAssert(len(v), len(d))
	for k, a := range d {
		v[k][0] = 2.0 * sq6i * a[0]
		v[k][1] = -sq6i*a[0] + sq2i*a[1]
		v[k][2] = -sq6i*a[0] - sq2i*a[1]
		v[k][3] = a[2]
		v[k][4] = a[3]
		v[k][5] = a[4]
	}
}

// Symm6ToDev5 converts Mandel 6-vectors to symmetric-deviatoric 5-vectors,
// dropping the spherical part
func Symm6ToDev5(d, v [][]float64) {
	chk.IntAssert(len(d), len(v))
	for k, a := range v {
		d[k][0] = sq6i * (2.0*a[0] - a[1] - a[2])
		d[k][1] = sq2i * (a[1] - a[2])
		d[k][2] = a[3]
		d[k][3] = a[4]
		d[k][4] = a[5]
	}
}

// Norm returns the Frobenius norm of one 9-component tensor row
func Norm(r []float64) (nrm float64) {
	for _, x := range r {
		nrm += x * x
	}
	return math.Sqrt(nrm)
}
