// Copyright (c) 2026, The Pennant Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pennantcore

import (
	"image"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/gpu"
	"cogentcore.org/core/xyz"
	"github.com/pennantrace/pennant/cube"
)

// RenderImage renders the scenario offscreen at the given size,
// without opening a window.
func (ap *App) RenderImage(size image.Point) (*image.RGBA, error) {
	gp, dev, err := gpu.NoDisplayGPU()
	if err != nil {
		return nil, err
	}
	sc := xyz.NewScene()
	sc.MultiSample = 4
	sc.Geom.Size = size
	sc.ConfigOffscreen(gp, dev)
	defer sc.Destroy()

	ap.lattice = nil
	if err := ap.Update(sc); err != nil {
		return nil, err
	}
	cube.SetCamera(sc, ap.Scenario.Games, cube.Center(ap.Scenario))
	sc.Rebuild()
	img, err := sc.ImageUpdate()
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, errors.New("no image rendered")
	}
	return imagex.CloneAsRGBA(img), nil
}

// SaveImage renders the scenario offscreen and saves it to filename,
// in the format given by its extension.
func (ap *App) SaveImage(filename string, size image.Point) error {
	img, err := ap.RenderImage(size)
	if err != nil {
		return err
	}
	return imagex.Save(img, filename)
}
