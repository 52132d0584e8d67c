// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slip

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/HEXRD/polycrystal/xtal"
)

// Group is an ordered set of symmetrically equivalent slip systems,
// generated by applying every rotation of a crystal symmetry group to one
// representative system and deduplicating dyads equal up to sign. The order
// is fixed at construction and never mutated.
type Group struct {
	Sym     *xtal.Symmetry // symmetry group used for the expansion
	Systems []*System      // deduplicated slip systems (first-generated kept)
	Dyads   [][]float64    // unit Schmid dyads d⊗n [nslip][9]
}

// Nslip returns the number of slip systems in the group
func (o *Group) Nslip() int { return len(o.Systems) }

// NewGroup expands one representative slip system (n, d) under the given
// symmetry group. n and d need not be normalised; they must be
// perpendicular within tol.Perp, else the construction fails with
// *GeometryError. Pure construction with no side effects.
func NewGroup(sym *xtal.Symmetry, n, d []float64, tol Tolerances) (*Group, error) {

	rep, err := NewSystem(n, d, tol.Perp)
	if err != nil {
		return nil, err
	}

	o := &Group{Sym: sym}
	nn := make([]float64, 3)
	dd := make([]float64, 3)
	t := make([]float64, 9)
	for _, R := range sym.Rmats {
		la.MatVecMul(nn, 1, R, rep.N)
		la.MatVecMul(dd, 1, R, rep.D)
		sys := &System{N: la.VecClone(nn), D: la.VecClone(dd)}
		sys.Dyad(t)
		if o.find(t, tol.Dedup) < 0 {
			o.Systems = append(o.Systems, sys)
			o.Dyads = append(o.Dyads, la.VecClone(t))
		}
	}
	return o, nil
}

// find returns the index of a system whose dyad equals t up to sign within
// tol, or -1
func (o *Group) find(t []float64, tol float64) int {
	for i, u := range o.Dyads {
		same, flipped := true, true
		for j := 0; j < 9; j++ {
			if math.Abs(u[j]-t[j]) > tol {
				same = false
			}
			if math.Abs(u[j]+t[j]) > tol {
				flipped = false
			}
			if !same && !flipped {
				break
			}
		}
		if same || flipped {
			return i
		}
	}
	return -1
}

// ClosedUnderSymmetry checks that applying every symmetry operation maps
// the group onto itself (each rotated dyad matches a member up to sign)
func (o *Group) ClosedUnderSymmetry(tol float64) bool {
	t := make([]float64, 9)
	nn := make([]float64, 3)
	dd := make([]float64, 3)
	for _, R := range o.Sym.Rmats {
		for _, sys := range o.Systems {
			la.MatVecMul(nn, 1, R, sys.N)
			la.MatVecMul(dd, 1, R, sys.D)
			rot := &System{N: nn, D: dd}
			rot.Dyad(t)
			if o.find(t, tol) < 0 {
				return false
			}
		}
	}
	return true
}

// standard groups /////////////////////////////////////////////////////////

// groupDef defines one named standard slip-system family
type groupDef struct {
	symmetry string
	needCbya bool
	vectors  func(cbya float64) (n, d []float64)
}

// groupDefs holds the named standard slip-system families; static data
var groupDefs = map[string]groupDef{
	"fcc": {"cubic", false, func(float64) ([]float64, []float64) {
		return []float64{1, 1, 1}, []float64{1, -1, 0}
	}},
	"bcc": {"cubic", false, func(float64) ([]float64, []float64) {
		return []float64{1, -1, 0}, []float64{1, 1, 1}
	}},
	"bcc:112": {"cubic", false, func(float64) ([]float64, []float64) {
		return []float64{1, 1, -2}, []float64{1, 1, 1}
	}},
	"bcc:123": {"cubic", false, func(float64) ([]float64, []float64) {
		return []float64{1, 2, -3}, []float64{1, 1, 1}
	}},
	"hcp:basal": {"hexagonal", true, func(cbya float64) ([]float64, []float64) {
		return MillerBravaisNormal(0, 0, 0, 1, cbya), MillerBravaisDirection(1, 1, -2, 0, cbya)
	}},
	"hcp:prismatic": {"hexagonal", true, func(cbya float64) ([]float64, []float64) {
		return MillerBravaisNormal(1, -1, 0, 0, cbya), MillerBravaisDirection(1, 1, -2, 0, cbya)
	}},
	"hcp:pyramidal_a": {"hexagonal", true, func(cbya float64) ([]float64, []float64) {
		return MillerBravaisNormal(0, 1, -1, 1, cbya), MillerBravaisDirection(2, -1, -1, 0, cbya)
	}},
	"hcp:pyramidal_c+a": {"hexagonal", true, func(cbya float64) ([]float64, []float64) {
		return MillerBravaisNormal(0, 1, -1, 1, cbya), MillerBravaisDirection(-1, -1, 2, 3, cbya)
	}},
}

// GetGroup returns a standard slip-system group by name. cbya is the c/a
// ratio, required for the hexagonal families and ignored otherwise.
//
// The hexagonal basis is chosen with e1 parallel to the crystallographic
// a1 axis, e3 parallel to c, and e2 = e3 x e1.
func GetGroup(name string, cbya float64) (*Group, error) {
	def, ok := groupDefs[name]
	if !ok {
		return nil, chk.Err("slip group %q is not available", name)
	}
	if def.needCbya && cbya <= 0 {
		return nil, chk.Err("slip group %q requires a positive c/a ratio; got %g", name, cbya)
	}
	sym, err := xtal.GetSymmetry(def.symmetry)
	if err != nil {
		return nil, err
	}
	n, d := def.vectors(cbya)
	return NewGroup(sym, n, d, DefaultTolerances())
}

// ListGroups lists the names of the standard slip-system groups
func ListGroups() []string {
	names := make([]string, 0, len(groupDefs))
	for name := range groupDefs {
		names = append(names, name)
	}
	return names
}

// MillerBravaisDirection converts a Miller-Bravais direction [u v t w] to
// Cartesian crystal coordinates for the given c/a ratio (not normalised)
func MillerBravaisDirection(u, v, t, w int, cbya float64) []float64 {
	s120 := math.Sqrt(3.0) / 2.0
	return []float64{
		1.5 * float64(u),
		s120 * float64(2*v+u),
		cbya * float64(w),
	}
}

// MillerBravaisNormal converts a Miller-Bravais plane (h k i l) to its
// Cartesian normal for the given c/a ratio (not normalised)
func MillerBravaisNormal(h, k, i, l int, cbya float64) []float64 {
	s120 := math.Sqrt(3.0) / 2.0
	return []float64{
		float64(h),
		(float64(k) + 0.5*float64(h)) / s120,
		float64(l) / cbya,
	}
}
