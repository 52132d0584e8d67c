// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xtal

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Symmetry holds one crystal point group: its rotational symmetry operations
// as unit quaternions and as rotation matrices. The tables are static
// immutable data built once at package initialisation.
type Symmetry struct {
	Name  string        // name of the symmetry group
	Qs    [][]float64   // quaternions of the group [nsym][4]
	Rmats [][][]float64 // rotation matrices of the group [nsym][3][3]
}

// Nsym returns the number of symmetry operations in the group
func (o *Symmetry) Nsym() int {
	return len(o.Qs)
}

// ToFundamentalRegion finds the symmetrically equivalent quaternion in the
// fundamental region. Crystal symmetries are applied on the right per the
// convention R c = s, and the scalar part is kept nonnegative.
func (o *Symmetry) ToFundamentalRegion(qfr, q []float64) {
	qeqv := make([]float64, 4)
	best := -1.0
	for _, s := range o.Qs {
		QuatMultiply(qeqv, q, s)
		if a := math.Abs(qeqv[0]); a > best {
			best = a
			copy(qfr, qeqv)
		}
	}
	if qfr[0] < 0 {
		for i := 0; i < 4; i++ {
			qfr[i] = -qfr[i]
		}
	}
}

// Misorientation computes the smallest-angle misorientation quaternion
// taking q1 to q2
func (o *Symmetry) Misorientation(qmis, q1, q2 []float64) {
	qi := make([]float64, 4)
	qtmp := make([]float64, 4)
	QuatInverse(qi, q1)
	QuatMultiply(qtmp, qi, q2)
	o.ToFundamentalRegion(qmis, qtmp)
}

// MisorientationAngle returns the angle of the smallest misorientation
// between q1 and q2, in radians
func (o *Symmetry) MisorientationAngle(q1, q2 []float64) float64 {
	qmis := make([]float64, 4)
	o.Misorientation(qmis, q1, q2)
	ca := qmis[0]
	if ca > 1.0 {
		ca = 1.0
	}
	return 2.0 * math.Acos(ca)
}

// GetSymmetry returns a symmetry group by name
func GetSymmetry(name string) (*Symmetry, error) {
	s, ok := symmetries[name]
	if !ok {
		return nil, chk.Err("symmetry group %q is not available", name)
	}
	return s, nil
}

// ListSymmetries lists the names of the available symmetry groups
func ListSymmetries() []string {
	names := make([]string, 0, len(symmetries))
	for name := range symmetries {
		names = append(names, name)
	}
	return names
}

// symmetries holds all available symmetry groups; name => group
var symmetries = map[string]*Symmetry{}

func newSymmetry(name string, qs [][]float64) *Symmetry {
	rmats := utl.Deep3alloc(len(qs), 3, 3)
	for i, q := range qs {
		QuatToRmat(rmats[i], q)
	}
	s := &Symmetry{Name: name, Qs: qs, Rmats: rmats}
	symmetries[name] = s
	return s
}

// add symmetry groups to registry
func init() {

	s2 := 1.0 / math.Sqrt(2.0)
	s3 := 1.0 / math.Sqrt(3.0)
	p3 := math.Pi / 3.0
	p4 := math.Pi / 4.0
	p6 := math.Pi / 6.0
	c := math.Cos
	s := math.Sin

	// identity: trivial group (triclinic)
	newSymmetry("identity", [][]float64{
		{1, 0, 0, 0},
	})

	// monoclinic: twofold rotation about axis 2 (y)
	newSymmetry("monoclinic", [][]float64{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
	})

	// orthorhombic
	newSymmetry("orthorhombic", [][]float64{
		{1, 0, 0, 0}, // identity
		{0, 1, 0, 0}, // twofold about 100
		{0, 0, 1, 0}, // twofold about 010
		{0, 0, 0, 1}, // twofold about 001
	})

	// hexagonal
	newSymmetry("hexagonal", [][]float64{
		{1, 0, 0, 0},

		{c(p6), 0, 0, s(p6)}, // c-axis rotations
		{c(2 * p6), 0, 0, s(2 * p6)},
		{0, 0, 0, 1},
		{c(4 * p6), 0, 0, s(4 * p6)},
		{c(5 * p6), 0, 0, s(5 * p6)},

		{0, 1, 0, 0}, // binary rotations
		{0, c(p6), s(p6), 0},
		{0, c(2 * p6), s(2 * p6), 0},
		{0, 0, 1, 0},
		{0, c(4 * p6), s(4 * p6), 0},
		{0, c(5 * p6), s(5 * p6), 0},
	})

	// cubic
	newSymmetry("cubic", [][]float64{
		{1, 0, 0, 0},

		{c(p4), s(p4), 0, 0}, // about [1,0,0]
		{c(2 * p4), s(2 * p4), 0, 0},
		{c(3 * p4), s(3 * p4), 0, 0},

		{c(p4), 0, s(p4), 0}, // about [0,1,0]
		{c(2 * p4), 0, s(2 * p4), 0},
		{c(3 * p4), 0, s(3 * p4), 0},

		{c(p4), 0, 0, s(p4)}, // about [0,0,1]
		{c(2 * p4), 0, 0, s(2 * p4)},
		{c(3 * p4), 0, 0, s(3 * p4)},

		{c(2 * p3), s(2*p3) * s3, s(2*p3) * s3, s(2*p3) * s3}, // [1,1,1]
		{c(4 * p3), s(4*p3) * s3, s(4*p3) * s3, s(4*p3) * s3},

		{c(2 * p3), -s(2*p3) * s3, s(2*p3) * s3, s(2*p3) * s3}, // [-1,1,1]
		{c(4 * p3), -s(4*p3) * s3, s(4*p3) * s3, s(4*p3) * s3},

		{c(2 * p3), -s(2*p3) * s3, -s(2*p3) * s3, s(2*p3) * s3}, // [-1,-1,1]
		{c(4 * p3), -s(4*p3) * s3, -s(4*p3) * s3, s(4*p3) * s3},

		{c(2 * p3), s(2*p3) * s3, -s(2*p3) * s3, s(2*p3) * s3}, // [1,-1,1]
		{c(4 * p3), s(4*p3) * s3, -s(4*p3) * s3, s(4*p3) * s3},

		{0, s2, s2, 0}, // binary rotations
		{0, -s2, s2, 0},
		{0, s2, 0, s2},
		{0, 0, s2, s2},
		{0, -s2, 0, s2},
		{0, 0, -s2, s2},
	})
}

// RotateVec computes v = R u for one symmetry rotation matrix
func RotateVec(v []float64, R [][]float64, u []float64) {
	la.MatVecMul(v, 1, R, u)
}
