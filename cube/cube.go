// Copyright (c) 2026, The Pennant Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cube builds the xyz scenegraph for a pennant race:
// one colored solid per outcome cell, plus lights and camera.
package cube

import (
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"github.com/pennantrace/pennant/standings"
)

// LatticeName is the name of the top-level group holding all cells.
const LatticeName = "lattice"

// CellSize is the edge length of a cube cell, a little under one
// so that neighboring cells stay distinguishable.
const CellSize = 0.9

const cellMesh = "pennant-cell"

// TieColor is the default color for tied outcomes.
var TieColor = colors.FromRGB(0xFF, 0xFF, 0x00)

// Palette is the color for each [standings.Leader].
type Palette [standings.LeaderN]color.RGBA

// NewPalette returns the palette for the given scenario:
// each team's own color, and [TieColor] for ties.
func NewPalette(scn *standings.Scenario) Palette {
	var pl Palette
	for i := range min(len(scn.Teams), standings.NumTeams) {
		pl[i] = scn.Teams[i].Color
	}
	pl[standings.Tie] = TieColor
	return pl
}

// Configure sets up the background, lights, camera and meshes of sc
// for a schedule of the given number of games, and returns the
// (empty) lattice group that [Build] fills.
func Configure(sc *xyz.Scene, games int) *xyz.Group {
	sc.Background = colors.Uniform(colors.Black)
	xyz.NewAmbient(sc, "ambient", 0.5, xyz.DirectSun)
	dir := xyz.NewDirectional(sc, "dir", 1, xyz.DirectSun)
	dir.Pos.Set(-1, -2, -1)

	hi := xyz.NewPoint(sc, "point-hi", 5, xyz.Halogen)
	hi.Pos.Set(1.5, 1.5, 1.5)
	lo := xyz.NewPoint(sc, "point-lo", 5, xyz.Halogen)
	lo.Pos.Set(-1.5, -1.5, -1.5)

	Meshes(sc)

	gp := xyz.NewGroup(sc)
	gp.SetName(LatticeName)

	SetCamera(sc, games, math32.Vec3(float32(games)/2, float32(games)/2, float32(games)/2))
	sc.SaveCamera("default")
	return gp
}

// SetCamera places the camera outside the low corner of a lattice
// spanning the given number of games, looking at target.
func SetCamera(sc *xyz.Scene, games int, target math32.Vector3) {
	d := -float32(games + 5)
	sc.Camera.Pose.Pos = math32.Vec3(d, d, d)
	sc.Camera.LookAt(target, math32.Vec3(0, 1, 0))
}

// Meshes makes the shared cell box and the six outward-facing unit
// face planes, if sc does not have them already.
func Meshes(sc *xyz.Scene) {
	if _, err := sc.MeshByName(cellMesh); err != nil {
		xyz.NewBox(sc, cellMesh, CellSize, CellSize, CellSize)
	}
	for _, ax := range []math32.Dims{math32.X, math32.Y, math32.Z} {
		for _, mx := range []bool{false, true} {
			nm := faceMesh(ax, mx)
			if _, err := sc.MeshByName(nm); err == nil {
				continue
			}
			pl := xyz.NewPlane(sc, nm, 1, 1)
			pl.NormAxis = ax
			pl.NormalNeg = !mx
		}
	}
}

func faceMesh(ax math32.Dims, mx bool) string {
	side := "min"
	if mx {
		side = "max"
	}
	return fmt.Sprintf("pennant-face-%s-%s", ax, side)
}

// MeshName returns the name of the mesh used to draw the cell.
func MeshName(cl standings.Cell) string {
	if cl.Face {
		return faceMesh(cl.Axis, cl.Max)
	}
	return cellMesh
}

// CellName returns the scenegraph node name of the cell.
func CellName(cl standings.Cell) string {
	w := cl.Wins
	if !cl.Face {
		return fmt.Sprintf("cell-%d-%d-%d", w[0], w[1], w[2])
	}
	side := "min"
	if cl.Max {
		side = "max"
	}
	return fmt.Sprintf("face-%s-%s-%d-%d-%d", cl.Axis, side, w[0], w[1], w[2])
}

// CellPos returns the position of the cell. Cubes are centered on
// their wins. Faces sit half a unit below their wins along their axis:
// min-side faces on the low surface of the outcome box, and max-side
// faces, whose wins are the exclusive maximum, on its high surface.
func CellPos(cl standings.Cell) math32.Vector3 {
	pos := math32.Vec3(float32(cl.Wins[0]), float32(cl.Wins[1]), float32(cl.Wins[2]))
	if cl.Face {
		pos.SetDim(cl.Axis, pos.Dim(cl.Axis)-0.5)
	}
	return pos
}

// Center returns the center of the outcome box of the scenario.
func Center(scn *standings.Scenario) math32.Vector3 {
	var c math32.Vector3
	for i := range min(len(scn.Teams), standings.NumTeams) {
		tm := &scn.Teams[i]
		mid := float32(tm.Wins+tm.MaxWins(scn.Games))/2 - 0.5
		c.SetDim(math32.Dims(i), mid)
	}
	return c
}

// Build replaces every child of the lattice group with one solid per
// cell of the scenario, colored by its leader, and returns how many
// solids it made. The scene must have been through [Configure].
func Build(sc *xyz.Scene, gp *xyz.Group, scn *standings.Scenario, pl *Palette) int {
	gp.DeleteChildren()
	meshes := map[string]xyz.Mesh{}
	n := 0
	for cl := range scn.Cells() {
		nm := MeshName(cl)
		ms, ok := meshes[nm]
		if !ok {
			var err error
			ms, err = sc.MeshByName(nm)
			if errors.Log(err) != nil {
				continue
			}
			meshes[nm] = ms
		}
		sld := xyz.NewSolid(gp)
		sld.SetName(CellName(cl))
		pos := CellPos(cl)
		sld.SetMesh(ms).SetColor(pl[cl.Leader]).SetPos(pos.X, pos.Y, pos.Z)
		n++
	}
	slog.Debug("built lattice", "mode", scn.Mode, "solids", n)
	return n
}
