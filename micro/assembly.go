// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micro

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/HEXRD/polycrystal/mslip"
	"github.com/HEXRD/polycrystal/slip"
)

// Assembly binds the phases of a microstructure to crystals: phase id p
// at a point selects Crystals[p]. On construction the batch is
// partitioned by phase, so each crystal works on a contiguous sub-batch
// gathered from the full point set.
type Assembly struct {
	Msh      Model           // microstructure lookup
	Crystals []*slip.Crystal // one crystal per phase

	pid   []int       // phase id per point
	gid   []int       // grain id per point
	rmats [][]float64 // orientation per point [npts][9]
	parts [][]int     // point indices per phase
}

// NewAssembly reads the lookup once and partitions the points by phase.
// The number of crystals must match the number of phases.
func NewAssembly(msh Model, crystals []*slip.Crystal) (*Assembly, error) {
	if msh.Nphases() != len(crystals) {
		return nil, chk.Err("micro: %d crystals for %d phases", len(crystals), msh.Nphases())
	}
	npts := msh.Npts()
	o := &Assembly{
		Msh:      msh,
		Crystals: crystals,
		pid:      make([]int, npts),
		gid:      make([]int, npts),
		rmats:    la.MatAlloc(npts, 9),
		parts:    make([][]int, msh.Nphases()),
	}
	msh.Phase(o.pid)
	msh.Grain(o.gid)
	if err := msh.Orientation(o.rmats); err != nil {
		return nil, err
	}
	for k, p := range o.pid {
		o.parts[p] = append(o.parts[p], k)
	}
	return o, nil
}

// CrystalAt returns the crystal applying at point k
func (o *Assembly) CrystalAt(k int) *slip.Crystal { return o.Crystals[o.pid[k]] }

// GrainAt returns the grain id of point k
func (o *Assembly) GrainAt(k int) int { return o.gid[k] }

// Points returns the indices of the points belonging to phase p
func (o *Assembly) Points(p int) []int { return o.parts[p] }

// Orientations returns the rotation rows of the points of phase p
func (o *Assembly) Orientations(p int) [][]float64 {
	rs := make([][]float64, len(o.parts[p]))
	for i, k := range o.parts[p] {
		rs[i] = o.rmats[k]
	}
	return rs
}

// Gather copies rows of the full batch src into the phase-p sub-batch dst
func (o *Assembly) Gather(p int, dst, src [][]float64) {
	chk.IntAssert(len(dst), len(o.parts[p]))
	for i, k := range o.parts[p] {
		copy(dst[i], src[k])
	}
}

// Scatter copies the phase-p sub-batch src back into the full batch dst
func (o *Assembly) Scatter(p int, dst, src [][]float64) {
	chk.IntAssert(len(src), len(o.parts[p]))
	for i, k := range o.parts[p] {
		copy(dst[k], src[i])
	}
}

// InitState allocates the hardening state for phase p's sub-batch
func (o *Assembly) InitState(p int) *mslip.State {
	return o.Crystals[p].InitState(len(o.parts[p]))
}
