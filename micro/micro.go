// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package micro defines the read-only per-point microstructure lookup
// consumed by the constitutive engine: phase id, grain id and crystal
// orientation for every point of a batch. Generating microstructures
// (tessellation, voxel import) belongs to external tools; this package
// only fixes the contract through which their output is consumed.
package micro

import (
	"github.com/cpmech/gosl/chk"

	"github.com/HEXRD/polycrystal/xtal"
)

// Model is the per-point lookup handed over by an external
// microstructure generator. All queries are batched: slices cover the
// whole point set at once. Implementations are immutable after
// construction and safe for concurrent readers.
type Model interface {
	Npts() int                           // number of points
	Nphases() int                        // number of phases
	Ngrains() int                        // number of grains
	Phase(pid []int)                     // phase id per point
	Grain(gid []int)                     // grain id per point
	Orientation(rmats [][]float64) error // rotation per point [npts][9]
}

// Field is a microstructure given by explicit per-point arrays, the
// shape any external generator hands over
type Field struct {
	Pid   []int       // phase ids [npts]
	Gid   []int       // grain ids [npts]
	Rmats [][]float64 // orientations [npts][9]

	nphases int
	ngrains int
}

// NewField builds a field lookup and validates it: array lengths must
// agree, ids must be non-negative and orientations must be proper
// rotations within tol (see xtal.CheckRotations)
func NewField(pid, gid []int, rmats [][]float64, tol float64) (*Field, error) {
	npts := len(rmats)
	if len(pid) != npts || len(gid) != npts {
		return nil, chk.Err("micro: field arrays disagree: %d phase ids, %d grain ids, %d orientations", len(pid), len(gid), npts)
	}
	if err := xtal.CheckRotations(rmats, tol); err != nil {
		return nil, err
	}
	o := &Field{Pid: pid, Gid: gid, Rmats: rmats}
	for k := 0; k < npts; k++ {
		if pid[k] < 0 || gid[k] < 0 {
			return nil, chk.Err("micro: negative id at point %d", k)
		}
		if pid[k]+1 > o.nphases {
			o.nphases = pid[k] + 1
		}
		if gid[k]+1 > o.ngrains {
			o.ngrains = gid[k] + 1
		}
	}
	return o, nil
}

// Npts returns the number of points
func (o *Field) Npts() int { return len(o.Rmats) }

// Nphases returns the number of phases
func (o *Field) Nphases() int { return o.nphases }

// Ngrains returns the number of grains
func (o *Field) Ngrains() int { return o.ngrains }

// Phase copies the phase ids into pid
func (o *Field) Phase(pid []int) { copy(pid, o.Pid) }

// Grain copies the grain ids into gid
func (o *Field) Grain(gid []int) { copy(gid, o.Gid) }

// Orientation copies the rotations into rmats
func (o *Field) Orientation(rmats [][]float64) error {
	chk.IntAssert(len(rmats), len(o.Rmats))
	for k, r := range o.Rmats {
		copy(rmats[k], r)
	}
	return nil
}

// Uniform is a single-crystal microstructure: one orientation, one phase
// and one grain replicated over the whole batch
type Uniform struct {
	N    int       // number of points
	Rmat []float64 // orientation [9]
}

// NewUniform builds a uniform lookup after validating the orientation
func NewUniform(npts int, rmat []float64, tol float64) (*Uniform, error) {
	if err := xtal.CheckRotation(rmat, tol); err != nil {
		return nil, err
	}
	return &Uniform{N: npts, Rmat: rmat}, nil
}

// Npts returns the number of points
func (o *Uniform) Npts() int { return o.N }

// Nphases returns 1
func (o *Uniform) Nphases() int { return 1 }

// Ngrains returns 1
func (o *Uniform) Ngrains() int { return 1 }

// Phase fills pid with zeros
func (o *Uniform) Phase(pid []int) {
	for k := range pid {
		pid[k] = 0
	}
}

// Grain fills gid with zeros
func (o *Uniform) Grain(gid []int) {
	for k := range gid {
		gid[k] = 0
	}
}

// Orientation replicates the single rotation
func (o *Uniform) Orientation(rmats [][]float64) error {
	chk.IntAssert(len(rmats), o.N)
	for k := range rmats {
		copy(rmats[k], o.Rmat)
	}
	return nil
}
