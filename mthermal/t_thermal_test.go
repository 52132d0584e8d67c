// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mthermal

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

func Test_thermal01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thermal01. conductivity tensors")

	cub, err := New("cubic", []float64{4.0})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Matrix(tst, "K cubic", 1e-15, cub.K, [][]float64{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}})

	hex, err := New("hexagonal", []float64{4.0, 7.0})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Matrix(tst, "K hex", 1e-15, hex.K, [][]float64{{4, 0, 0}, {0, 4, 0}, {0, 0, 7}})

	_, err = New("tetragonal", []float64{1})
	if err == nil {
		tst.Errorf("test failed: unknown symmetry must fail\n")
	}
}

func Test_thermal02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thermal02. sample frame rotation")

	hex, err := New("hexagonal", []float64{4.0, 7.0})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// rotate c-axis onto x: K11 becomes the c value
	r := []float64{
		0, 0, 1,
		0, 1, 0,
		-1, 0, 0,
	}
	Ks := la.MatAlloc(3, 3)
	hex.SampleConductivity(Ks, r)
	chk.Scalar(tst, "Ks11", 1e-14, Ks[0][0], 7.0)
	chk.Scalar(tst, "Ks33", 1e-14, Ks[2][2], 4.0)

	// rotation about c leaves the tensor unchanged
	θ := 0.9
	rz := []float64{
		math.Cos(θ), -math.Sin(θ), 0,
		math.Sin(θ), math.Cos(θ), 0,
		0, 0, 1,
	}
	hex.SampleConductivity(Ks, rz)
	chk.Matrix(tst, "Ks == K", 1e-13, Ks, hex.K)
}
