// Copyright (c) 2026, The Pennant Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package standings

import (
	"iter"

	"cogentcore.org/core/math32"
)

// Modes are the ways of displaying the outcome lattice.
type Modes int32 //enums:enum

const (
	// Faces shows only the six boundary surfaces of the outcome box:
	// for each pair of teams, the grid of their outcomes with the
	// third team at its current and at its maximum wins.
	Faces Modes = iota

	// Cubes shows every combination of final wins as its own cube.
	Cubes
)

// Cell is one combination of final win totals and who leads it.
type Cell struct {

	// Wins are the hypothetical final wins of each team,
	// which are also the X, Y, Z lattice coordinates.
	Wins [NumTeams]int

	// Leader is [LeadingTeam] of Wins.
	Leader Leader

	// Face is set for the hull faces of [Faces] mode.
	Face bool

	// Axis is the axis the face is perpendicular to.
	Axis math32.Dims

	// Max is set for the face on the maximum-wins side of Axis,
	// which faces in the positive direction.
	Max bool
}

func newCell(wins [NumTeams]int) Cell {
	return Cell{Wins: wins, Leader: LeadingTeam(wins)}
}

// Cells returns the cells to display for the scenario's Mode.
func (sc *Scenario) Cells() iter.Seq[Cell] {
	if sc.Mode == Cubes {
		return sc.Lattice()
	}
	return sc.Hull()
}

// Lattice iterates every combination of final wins, with each team
// ranging over [Wins, Wins+Remaining), in team A-major order.
func (sc *Scenario) Lattice() iter.Seq[Cell] {
	lo, hi := sc.bounds()
	return func(yield func(Cell) bool) {
		for a := lo[0]; a < hi[0]; a++ {
			for b := lo[1]; b < hi[1]; b++ {
				for c := lo[2]; c < hi[2]; c++ {
					if !yield(newCell([NumTeams]int{a, b, c})) {
						return
					}
				}
			}
		}
	}
}

// Hull iterates the faces of the outcome box. For each pair of axes
// it walks their grid and emits a face with the remaining axis at its
// current wins (min side) and at its maximum wins (max side).
func (sc *Scenario) Hull() iter.Seq[Cell] {
	lo, hi := sc.bounds()
	return func(yield func(Cell) bool) {
		for _, ax := range []math32.Dims{math32.Z, math32.Y, math32.X} {
			u, v := otherAxes(ax)
			for i := lo[u]; i < hi[u]; i++ {
				for j := lo[v]; j < hi[v]; j++ {
					for _, side := range []bool{false, true} {
						var w [NumTeams]int
						w[u], w[v] = i, j
						w[ax] = lo[ax]
						if side {
							w[ax] = hi[ax]
						}
						cl := newCell(w)
						cl.Face = true
						cl.Axis = ax
						cl.Max = side
						if !yield(cl) {
							return
						}
					}
				}
			}
		}
	}
}

// otherAxes returns the two axes spanning the face perpendicular to ax.
func otherAxes(ax math32.Dims) (u, v math32.Dims) {
	switch ax {
	case math32.X:
		return math32.Y, math32.Z
	case math32.Y:
		return math32.X, math32.Z
	default:
		return math32.X, math32.Y
	}
}

// NumCells returns the number of cells [Scenario.Cells] yields,
// without enumerating them.
func (sc *Scenario) NumCells() int {
	lo, hi := sc.bounds()
	var n [NumTeams]int
	for i := range n {
		n[i] = hi[i] - lo[i]
	}
	if sc.Mode == Cubes {
		return n[0] * n[1] * n[2]
	}
	return 2 * (n[0]*n[1] + n[0]*n[2] + n[1]*n[2])
}
