// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package melast

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_elast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elast01. cubic stiffness entries")

	// copper, GPa
	c11, c12, c44 := 168.4, 121.4, 75.4
	cu, err := New("cubic", []float64{c11, c12, c44}, SystemVoigt)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	la.PrintMat("C", cu.C, "%10.2f", false)
	chk.Scalar(tst, "C[0][0]", 1e-15, cu.C[0][0], c11)
	chk.Scalar(tst, "C[0][1]", 1e-15, cu.C[0][1], c12)
	chk.Scalar(tst, "C[3][3]", 1e-15, cu.C[3][3], 2.0*c44)
	chk.Scalar(tst, "C[0][3]", 1e-15, cu.C[0][3], 0.0)

	// compliance inverts stiffness
	S := la.MatAlloc(6, 6)
	err = cu.Compliance(S)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			sum := 0.0
			for k := 0; k < 6; k++ {
				sum += cu.C[i][k] * S[k][j]
			}
			id := 0.0
			if i == j {
				id = 1.0
			}
			chk.Scalar(tst, io.Sf("C·S[%d][%d]", i, j), 1e-12, sum, id)
		}
	}
}

func Test_elast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elast02. isotropic crystal is rotation invariant")

	E, ν := 1500.0, 0.25
	iso, err := FromEnu(E, ν)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	K := Calc_K_from_Enu(E, ν)
	G := Calc_G_from_Enu(E, ν)
	chk.Scalar(tst, "c11", 1e-12, iso.C[0][0], K+4.0*G/3.0)
	chk.Scalar(tst, "c12", 1e-12, iso.C[0][1], K-2.0*G/3.0)
	chk.Scalar(tst, "E back", 1e-12, Calc_E_from_KG(K, G), E)
	chk.Scalar(tst, "nu back", 1e-12, Calc_nu_from_KG(K, G), ν)

	// arbitrary rotation leaves the stiffness unchanged
	θ := 0.7
	r := []float64{
		math.Cos(θ), -math.Sin(θ), 0,
		math.Sin(θ), math.Cos(θ), 0,
		0, 0, 1,
	}
	Cs := la.MatAlloc(6, 6)
	iso.SampleStiffness(Cs, r)
	chk.Matrix(tst, "Cs == C", 1e-11, Cs, iso.C)
}

func Test_elast03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elast03. rotation operator is orthogonal")

	θ, ψ := 0.3, 1.1
	ra := []float64{
		math.Cos(θ), -math.Sin(θ), 0,
		math.Sin(θ), math.Cos(θ), 0,
		0, 0, 1,
	}
	rb := []float64{
		1, 0, 0,
		0, math.Cos(ψ), -math.Sin(ψ),
		0, math.Sin(ψ), math.Cos(ψ),
	}

	for _, r := range [][]float64{ra, rb} {
		L := la.MatAlloc(6, 6)
		RotationOperator(L, r)
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				sum := 0.0
				for k := 0; k < 6; k++ {
					sum += L[i][k] * L[j][k]
				}
				id := 0.0
				if i == j {
					id = 1.0
				}
				chk.Scalar(tst, io.Sf("L·Lᵀ[%d][%d]", i, j), 1e-13, sum, id)
			}
		}
	}
}

func Test_elast04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elast04. rotated cubic stiffness stays symmetric")

	cu, err := New("cubic", []float64{168.4, 121.4, 75.4}, SystemVoigt)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	θ := 0.5
	rmats := [][]float64{
		{1, 0, 0, 0, 1, 0, 0, 0, 1},
		{
			math.Cos(θ), -math.Sin(θ), 0,
			math.Sin(θ), math.Cos(θ), 0,
			0, 0, 1,
		},
	}
	Cs := [][][]float64{la.MatAlloc(6, 6), la.MatAlloc(6, 6)}
	cu.SampleStiffnessBatch(Cs, rmats)

	// identity orientation returns the crystal stiffness
	chk.Matrix(tst, "Cs(identity)", 1e-13, Cs[0], cu.C)

	// rotated stiffness remains symmetric
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			chk.Scalar(tst, io.Sf("Cs[%d][%d] sym", i, j), 1e-11, Cs[1][i][j], Cs[1][j][i])
		}
	}
}

func Test_elast05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elast05. sample compliance inverts sample stiffness")

	cu, err := New("cubic", []float64{168.4, 121.4, 75.4}, SystemVoigt)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	θ := 0.8
	r := []float64{
		math.Cos(θ), 0, math.Sin(θ),
		0, 1, 0,
		-math.Sin(θ), 0, math.Cos(θ),
	}

	Cs := la.MatAlloc(6, 6)
	Ss := la.MatAlloc(6, 6)
	cu.SampleStiffness(Cs, r)
	err = cu.SampleCompliance(Ss, r)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			sum := 0.0
			for k := 0; k < 6; k++ {
				sum += Cs[i][k] * Ss[k][j]
			}
			id := 0.0
			if i == j {
				id = 1.0
			}
			chk.Scalar(tst, io.Sf("Cs·Ss[%d][%d]", i, j), 1e-12, sum, id)
		}
	}

	// identity orientation in a batch returns the crystal compliance
	rmats := [][]float64{
		{1, 0, 0, 0, 1, 0, 0, 0, 1},
		r,
	}
	S := la.MatAlloc(6, 6)
	if err = cu.Compliance(S); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	Sb := [][][]float64{la.MatAlloc(6, 6), la.MatAlloc(6, 6)}
	if err = cu.SampleComplianceBatch(Sb, rmats); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Matrix(tst, "Ss(identity)", 1e-13, Sb[0], S)
	chk.Matrix(tst, "Ss(batch)", 1e-14, Sb[1], Ss)
}
