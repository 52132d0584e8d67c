// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package melast implements linear anisotropic elasticity for single
// crystals. Stiffness matrices are held in Mandel components with ordering
// (11, 22, 33, √2·23, √2·13, √2·12), so that the 6x6 rotation operator is
// orthogonal and stress = stiffness * strain is a plain matrix-vector
// product.
package melast

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/tsr"
)

// component systems for the independent moduli given to New
const (
	SystemVoigt  = "voigt"  // c44-type shear moduli relate stress to engineering strain
	SystemMandel = "mandel" // moduli already in Mandel components
)

// SingleCrystal is an elastic single crystal: a named set of independent
// moduli for one crystal symmetry, with the stiffness matrix in crystal
// coordinates derived at construction
type SingleCrystal struct {
	Name string    // name of the material
	Symm string    // symmetry name: "isotropic", "cubic", "hexagonal" or "triclinic"
	Cij  []float64 // independent moduli, in the input component system

	C [][]float64 // stiffness matrix in crystal coordinates (Mandel) [6][6]
}

// New returns a new elastic single crystal. The number and order of moduli
// depends on the symmetry:
//
//	isotropic  -- (c11, c12)
//	cubic      -- (c11, c12, c44)
//	hexagonal  -- (c11, c12, c13, c33, c44)
//	triclinic  -- all 21 constants (c11, c12, ..., c16, c22, ..., c66)
//
// system selects the component system of the shear moduli (SystemVoigt or
// SystemMandel).
func New(symm string, cij []float64, system string) (o *SingleCrystal, err error) {
	o = &SingleCrystal{Symm: symm, Cij: make([]float64, len(cij)), C: la.MatAlloc(6, 6)}
	copy(o.Cij, cij)

	var fshear float64
	switch system {
	case SystemVoigt, "":
		fshear = 2.0
	case SystemMandel:
		fshear = 1.0
	default:
		return nil, chk.Err("melast: component system %q is invalid", system)
	}

	switch symm {
	case "isotropic":
		if len(cij) != 2 {
			return nil, chk.Err("melast: isotropic symmetry requires 2 moduli (c11,c12); got %d", len(cij))
		}
		c11, c12 := cij[0], cij[1]
		o.setCube(c11, c12, (c11-c12)/2.0*2.0) // c44 = (c11-c12)/2 in Voigt, doubled for Mandel
	case "cubic":
		if len(cij) != 3 {
			return nil, chk.Err("melast: cubic symmetry requires 3 moduli (c11,c12,c44); got %d", len(cij))
		}
		o.setCube(cij[0], cij[1], fshear*cij[2])
	case "hexagonal":
		if len(cij) != 5 {
			return nil, chk.Err("melast: hexagonal symmetry requires 5 moduli (c11,c12,c13,c33,c44); got %d", len(cij))
		}
		c11, c12, c13, c33, c44 := cij[0], cij[1], cij[2], cij[3], cij[4]
		o.C[0][0], o.C[1][1] = c11, c11
		o.C[2][2] = c33
		o.C[0][1], o.C[1][0] = c12, c12
		o.C[0][2], o.C[2][0] = c13, c13
		o.C[1][2], o.C[2][1] = c13, c13
		o.C[3][3], o.C[4][4] = fshear*c44, fshear*c44
		o.C[5][5] = c11 - c12 // = 2·c66 with c66 = (c11-c12)/2
	case "triclinic":
		if len(cij) != 21 {
			return nil, chk.Err("melast: triclinic symmetry requires 21 moduli; got %d", len(cij))
		}
		k := 0
		for i := 0; i < 6; i++ {
			for j := i; j < 6; j++ {
				o.C[i][j] = cij[k]
				o.C[j][i] = cij[k]
				k++
			}
		}
		if fshear == 2.0 {
			// Voigt => Mandel scaling of shear rows/columns
			for i := 0; i < 6; i++ {
				for j := 0; j < 6; j++ {
					if i >= 3 {
						o.C[i][j] *= tsr.SQ2
					}
					if j >= 3 {
						o.C[i][j] *= tsr.SQ2
					}
				}
			}
		}
	default:
		return nil, chk.Err("melast: symmetry %q is not available", symm)
	}
	return
}

func (o *SingleCrystal) setCube(c11, c12, cm44 float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.C[i][j] = c12
		}
		o.C[i][i] = c11
		o.C[i+3][i+3] = cm44
	}
}

// FromKG returns an isotropic single crystal from bulk and shear moduli
func FromKG(K, G float64) (*SingleCrystal, error) {
	c11 := K + 4.0*G/3.0
	c12 := K - 2.0*G/3.0
	return New("isotropic", []float64{c11, c12}, SystemVoigt)
}

// FromEnu returns an isotropic single crystal from Young's modulus and
// Poisson's ratio
func FromEnu(E, ν float64) (*SingleCrystal, error) {
	return FromKG(Calc_K_from_Enu(E, ν), Calc_G_from_Enu(E, ν))
}

// Compliance computes the compliance matrix S = inv(C) in crystal
// coordinates (Mandel components)
func (o *SingleCrystal) Compliance(S [][]float64) (err error) {
	return la.MatInvG(S, o.C, 1e-10)
}

// SampleStiffness computes the stiffness matrix in sample coordinates for
// one orientation given as a 9-component row (R c = s):
//
//	Cs = L C Lᵀ  with  L = RotationOperator(R)
func (o *SingleCrystal) SampleStiffness(Cs [][]float64, r []float64) {
	L := la.MatAlloc(6, 6)
	RotationOperator(L, r)
	rotateMat66(Cs, L, o.C)
}

// SampleStiffnessBatch computes sample-frame stiffness matrices for a batch
// of orientations [npts][9]; Cs must be allocated [npts][6][6]
func (o *SingleCrystal) SampleStiffnessBatch(Cs [][][]float64, rmats [][]float64) {
	chk.IntAssert(len(Cs), len(rmats))
	L := la.MatAlloc(6, 6)
	for k, r := range rmats {
		RotationOperator(L, r)
		rotateMat66(Cs[k], L, o.C)
	}
}

// SampleCompliance computes the compliance matrix in sample coordinates for
// one orientation given as a 9-component row:
//
//	Ss = L S Lᵀ  with  S = inv(C)  and  L = RotationOperator(R)
func (o *SingleCrystal) SampleCompliance(Ss [][]float64, r []float64) (err error) {
	S := la.MatAlloc(6, 6)
	if err = o.Compliance(S); err != nil {
		return
	}
	L := la.MatAlloc(6, 6)
	RotationOperator(L, r)
	rotateMat66(Ss, L, S)
	return
}

// SampleComplianceBatch computes sample-frame compliance matrices for a batch
// of orientations [npts][9]; Ss must be allocated [npts][6][6]
func (o *SingleCrystal) SampleComplianceBatch(Ss [][][]float64, rmats [][]float64) (err error) {
	chk.IntAssert(len(Ss), len(rmats))
	S := la.MatAlloc(6, 6)
	if err = o.Compliance(S); err != nil {
		return
	}
	L := la.MatAlloc(6, 6)
	for k, r := range rmats {
		RotationOperator(L, r)
		rotateMat66(Ss[k], L, S)
	}
	return
}

// RotationOperator computes the 6x6 matrix applying rotation R to symmetric
// tensors in Mandel components: L·m̂ = mandel(R M Rᵀ). L is orthogonal.
func RotationOperator(L [][]float64, r []float64) {
	// basis tensors are the Mandel unit vectors; columns of L are their
	// rotated images
	var M, A [3][3]float64
	s2i := 1.0 / tsr.SQ2
	for col := 0; col < 6; col++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				M[i][j] = 0
			}
		}
		switch col {
		case 0:
			M[0][0] = 1
		case 1:
			M[1][1] = 1
		case 2:
			M[2][2] = 1
		case 3:
			M[1][2], M[2][1] = s2i, s2i
		case 4:
			M[0][2], M[2][0] = s2i, s2i
		case 5:
			M[0][1], M[1][0] = s2i, s2i
		}
		// A = R M Rᵀ
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				sum := 0.0
				for p := 0; p < 3; p++ {
					for q := 0; q < 3; q++ {
						sum += r[3*i+p] * M[p][q] * r[3*j+q]
					}
				}
				A[i][j] = sum
			}
		}
		L[0][col] = A[0][0]
		L[1][col] = A[1][1]
		L[2][col] = A[2][2]
		L[3][col] = tsr.SQ2 * A[1][2]
		L[4][col] = tsr.SQ2 * A[0][2]
		L[5][col] = tsr.SQ2 * A[0][1]
	}
}

// rotateMat66 computes Cs = L C Lᵀ
func rotateMat66(Cs, L, C [][]float64) {
	var tmp [6][6]float64
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			sum := 0.0
			for k := 0; k < 6; k++ {
				sum += C[i][k] * L[j][k]
			}
			tmp[i][j] = sum
		}
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			sum := 0.0
			for k := 0; k < 6; k++ {
				sum += L[i][k] * tmp[k][j]
			}
			Cs[i][j] = sum
		}
	}
}
