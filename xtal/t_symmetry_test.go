// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xtal

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_symmetry01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("symmetry01. group orders")

	for name, nsym := range map[string]int{
		"identity":     1,
		"monoclinic":   2,
		"orthorhombic": 4,
		"hexagonal":    12,
		"cubic":        24,
	} {
		sym, err := GetSymmetry(name)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		io.Pforan("%-12s : nsym = %d\n", name, sym.Nsym())
		chk.IntAssert(sym.Nsym(), nsym)
	}

	_, err := GetSymmetry("tetragonal")
	if err == nil {
		tst.Errorf("test failed: GetSymmetry should have failed for unknown group\n")
	}
}

func Test_symmetry02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("symmetry02. rotation matrices are proper rotations")

	for _, name := range []string{"identity", "monoclinic", "orthorhombic", "hexagonal", "cubic"} {
		sym, err := GetSymmetry(name)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		for k, R := range sym.Rmats {
			r := make([]float64, 9)
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					r[3*i+j] = R[i][j]
				}
			}
			if err := CheckRotation(r, 1e-12); err != nil {
				tst.Errorf("%s: operation %d is not a proper rotation: %v\n", name, k, err)
				return
			}
		}
	}
}

func Test_symmetry03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("symmetry03. fundamental region and misorientation")

	cub, err := GetSymmetry("cubic")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// identity maps to itself
	qfr := make([]float64, 4)
	cub.ToFundamentalRegion(qfr, QuatIdentity())
	chk.Vector(tst, "qfr(identity)", 1e-15, qfr, []float64{1, 0, 0, 0})

	// any symmetry operation maps to identity (angle zero)
	for _, q := range cub.Qs {
		ang := cub.MisorientationAngle(QuatIdentity(), q)
		if math.Abs(ang) > 1e-7 {
			tst.Errorf("symmetry operation has nonzero misorientation angle: %g\n", ang)
			return
		}
	}

	// small rotation about [1,0,0] keeps its angle
	θ := 0.1
	q := []float64{math.Cos(θ / 2.0), math.Sin(θ / 2.0), 0, 0}
	ang := cub.MisorientationAngle(QuatIdentity(), q)
	chk.Scalar(tst, "misorientation angle", 1e-10, ang, θ)
}

func Test_quaternion01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quaternion01. multiply, inverse and matrix round trip")

	θ := math.Pi / 5.0
	a := []float64{math.Cos(θ / 2.0), math.Sin(θ / 2.0), 0, 0}
	b := []float64{math.Cos(θ / 3.0), 0, math.Sin(θ / 3.0), 0}

	// q * inv(q) = identity
	ai := make([]float64, 4)
	q := make([]float64, 4)
	QuatInverse(ai, a)
	QuatMultiply(q, a, ai)
	chk.Vector(tst, "a*inv(a)", 1e-15, q, []float64{1, 0, 0, 0})

	// product of rotations equals rotation of product
	Ra := [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	Rb := [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	Rab := [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	QuatToRmat(Ra, a)
	QuatToRmat(Rb, b)
	QuatMultiply(q, a, b)
	QuatToRmat(Rab, q)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			prod := 0.0
			for k := 0; k < 3; k++ {
				prod += Ra[i][k] * Rb[k][j]
			}
			chk.Scalar(tst, io.Sf("Rab[%d][%d]", i, j), 1e-14, Rab[i][j], prod)
		}
	}

	// matrix => quaternion => matrix
	qx := make([]float64, 4)
	QuatFromRmat(qx, Rab)
	Rx := [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	QuatToRmat(Rx, qx)
	chk.Matrix(tst, "R round trip", 1e-13, Rx, Rab)
}

func Test_quaternion02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quaternion02. exponential map")

	// w = (θ,0,0) is a rotation of θ about x
	θ := 0.3
	q := make([]float64, 4)
	QuatFromExp(q, []float64{θ, 0, 0})
	chk.Vector(tst, "q", 1e-14, q, []float64{math.Cos(θ / 2.0), math.Sin(θ / 2.0), 0, 0})

	// near the origin: identity
	QuatFromExp(q, []float64{0, 0, 0})
	chk.Scalar(tst, "q0", 1e-14, q[0], 1.0)
}

func Test_orientation01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orientation01. rotation checks")

	// proper rotation passes
	θ := 0.4
	ok := []float64{
		1, 0, 0,
		0, math.Cos(θ), -math.Sin(θ),
		0, math.Sin(θ), math.Cos(θ),
	}
	if err := CheckRotation(ok, OrthTol); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// reflection fails (det = -1)
	bad := []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, -1,
	}
	err := CheckRotations([][]float64{ok, bad}, OrthTol)
	if err == nil {
		tst.Errorf("test failed: reflection should not pass the check\n")
		return
	}
	oerr, isdeg := err.(*OrientationError)
	if !isdeg {
		tst.Errorf("test failed: error must be *OrientationError\n")
		return
	}
	io.Pforan("error = %v\n", oerr)
	chk.IntAssert(oerr.Point, 1)
}
