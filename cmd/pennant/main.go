// Copyright (c) 2026, The Pennant Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pennant explores a three-team pennant race: for every
// still-possible combination of final wins it shows which team leads,
// as a 3D lattice of colored cells.
package main

//go:generate core generate -add-funcs

import (
	"image"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/core"
	"github.com/muesli/termenv"
	"github.com/pennantrace/pennant/pennantcore"
	"github.com/pennantrace/pennant/standings"
)

// Config is the configuration for all pennant commands.
type Config struct {

	// Open is a scenario TOML file to start from,
	// instead of the built-in NL Central race.
	Open string

	// Games overrides the number of scheduled games, if positive.
	Games int

	// Cubes shows every outcome as a cube instead of only the
	// faces of the outcome box.
	Cubes bool

	// Watch reloads the Open file whenever it changes on disk.
	Watch bool `default:"true"`

	// Output is the image file written by render.
	Output string `default:"pennant.png"`

	// Width of the rendered image, in pixels.
	Width int `default:"1280"`

	// Height of the rendered image, in pixels.
	Height int `default:"960"`

	// Debug logs every rebuild and file operation.
	Debug bool
}

func main() {
	opts := cli.DefaultOptions("pennant", "Pennant shows who leads a three-team pennant race across every remaining outcome.")
	opts.DefaultFiles = []string{"pennant.toml"}
	cli.Run(opts, &Config{}, View, Summary, Render)
}

// scenario returns the scenario configured by c.
func scenario(c *Config) (*standings.Scenario, error) {
	if c.Debug {
		logx.UserLevel = slog.LevelDebug
	}
	scn := standings.DefaultScenario()
	if c.Open != "" {
		if err := scn.Open(c.Open); err != nil {
			return nil, err
		}
	}
	if c.Games > 0 {
		scn.Games = c.Games
	}
	if c.Cubes {
		scn.Mode = standings.Cubes
	}
	return scn, nil
}

// View opens the interactive 3D view of the race.
//
//cli:cmd -root
func View(c *Config) error { //types:add
	scn, err := scenario(c)
	if err != nil {
		return err
	}
	ap := pennantcore.NewApp(scn)
	b := ap.ConfigGUI()
	if c.Open != "" {
		ap.Filename = core.Filename(c.Open)
		if c.Watch {
			errors.Log(ap.Watch(c.Open))
		}
	}
	b.RunMainWindow()
	ap.StopWatch()
	return nil
}

// Summary prints the share of remaining outcomes each team leads.
func Summary(c *Config) error { //types:add
	scn, err := scenario(c)
	if err != nil {
		return err
	}
	if err := scn.Validate(); err != nil {
		return err
	}
	WriteSummary(termenv.NewOutput(os.Stdout), scn)
	return nil
}

// Render writes an image of the race rendered offscreen.
func Render(c *Config) error { //types:add
	scn, err := scenario(c)
	if err != nil {
		return err
	}
	ap := pennantcore.NewApp(scn)
	if err := ap.SaveImage(c.Output, image.Pt(c.Width, c.Height)); err != nil {
		return err
	}
	slog.Info("rendered race", "file", c.Output, "solids", ap.NumSolids)
	return nil
}
