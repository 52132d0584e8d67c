// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mthermal implements thermal material properties of single crystals
package mthermal

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// SingleCrystal holds the thermal conductivity of one crystal, built from
// the independent values for its symmetry:
//
//	isotropic/cubic -- (a)
//	hexagonal       -- (a, c)
//	orthotropic     -- (a, b, c)
type SingleCrystal struct {
	Name string      // name of the material
	Symm string      // symmetry name
	Cij  []float64   // independent conductivity values
	K    [][]float64 // conductivity tensor in crystal coordinates [3][3]
}

// New returns a new thermal single crystal
func New(symm string, cij []float64) (o *SingleCrystal, err error) {
	o = &SingleCrystal{Symm: symm, Cij: make([]float64, len(cij)), K: la.MatAlloc(3, 3)}
	copy(o.Cij, cij)
	var c11, c22, c33 float64
	switch {
	case strings.HasPrefix(symm, "iso") || strings.HasPrefix(symm, "cub"):
		if len(cij) < 1 {
			return nil, chk.Err("mthermal: %q symmetry requires 1 value", symm)
		}
		c11, c22, c33 = cij[0], cij[0], cij[0]
	case strings.HasPrefix(symm, "hex"):
		if len(cij) < 2 {
			return nil, chk.Err("mthermal: hexagonal symmetry requires 2 values (a,c)")
		}
		c11, c22, c33 = cij[0], cij[0], cij[1]
	case strings.HasPrefix(symm, "ort"):
		if len(cij) < 3 {
			return nil, chk.Err("mthermal: orthotropic symmetry requires 3 values (a,b,c)")
		}
		c11, c22, c33 = cij[0], cij[1], cij[2]
	default:
		return nil, chk.Err("mthermal: symmetry %q is not available", symm)
	}
	o.K[0][0], o.K[1][1], o.K[2][2] = c11, c22, c33
	return
}

// SampleConductivity computes the conductivity tensor in sample coordinates
// for one orientation given as a 9-component row: Ks = R K Rᵀ
func (o *SingleCrystal) SampleConductivity(Ks [][]float64, r []float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for p := 0; p < 3; p++ {
				sum += r[3*i+p] * o.K[p][p] * r[3*j+p]
			}
			Ks[i][j] = sum
		}
	}
}
