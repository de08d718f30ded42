// Copyright (c) 2026, The Pennant Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pennantcore provides the GUI for exploring a pennant race:
// editable team records next to a 3D view of who leads every
// still-possible outcome.
package pennantcore

//go:generate core generate

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
	"github.com/pennantrace/pennant/cube"
	"github.com/pennantrace/pennant/standings"
)

// App is the pennant race explorer. Every edit of the records
// rebuilds the whole 3D lattice and the outcome tally.
type App struct { //types:add

	// Scenario is the race being explored.
	Scenario *standings.Scenario

	// Palette is the current color for each leader.
	Palette cube.Palette `display:"-"`

	// Tally is the share of outcomes led by each team.
	Tally standings.Tally

	// Filename is the scenario file last opened or saved.
	Filename core.Filename

	// NumSolids is the number of solids in the last build.
	NumSolids int `edit:"-"`

	// SceneEditor shows the 3D lattice.
	SceneEditor *xyzcore.SceneEditor `display:"-"`

	lattice  *xyz.Group
	controls *core.Frame
	table    *core.Table
	status   *core.Text
	watcher  *fileWatcher

	// mu guards watched, which the watcher goroutine reads.
	mu      sync.Mutex
	watched string
}

// NewApp returns an App for the given scenario, or the default
// scenario if nil.
func NewApp(scn *standings.Scenario) *App {
	if scn == nil {
		scn = standings.DefaultScenario()
	}
	return &App{Scenario: scn}
}

// Update validates the scenario and rebuilds the lattice in sc,
// configuring sc first if it has no lattice yet. It returns the
// validation error, if any; the lattice is built either way.
func (ap *App) Update(sc *xyz.Scene) error {
	if ap.lattice == nil || ap.lattice.Parent == nil {
		ap.lattice = cube.Configure(sc, ap.Scenario.Games)
	}
	err := ap.Scenario.Validate()
	ap.Palette = cube.NewPalette(ap.Scenario)
	ap.NumSolids = cube.Build(sc, ap.lattice, ap.Scenario, &ap.Palette)
	ap.Tally = ap.Scenario.Summarize()
	slog.Debug("rebuilt race", "mode", ap.Scenario.Mode, "solids", ap.NumSolids, "outcomes", ap.Tally.Total())
	return err
}

// Rebuild regenerates the 3D lattice, tally and status after any
// change to the scenario.
func (ap *App) Rebuild() { //types:add
	if ap.SceneEditor == nil {
		return
	}
	sc := ap.SceneEditor.SceneXYZ()
	err := ap.Update(sc)
	sc.Rebuild()
	sc.SetNeedsUpdate()
	ap.SceneEditor.NeedsRender()
	if ap.table != nil {
		ap.table.Update()
	}
	if ap.status != nil {
		ap.status.SetText(ap.StatusText()).UpdateRender()
	}
	if err != nil {
		core.ErrorSnackbar(ap.SceneEditor, err, "Invalid records")
	}
}

// StatusText summarizes the tally, clinches and eliminations.
func (ap *App) StatusText() string {
	scn := ap.Scenario
	total := ap.Tally.Total()
	if total == 0 {
		return "No outcomes remain: a team has no games left to play."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d possible outcomes", total)
	if ld, ok := scn.Clinched(); ok {
		fmt.Fprintf(&b, "; <b>%s</b> leads every one", scn.TeamName(ld))
	}
	var out []string
	for i := range scn.Teams {
		if scn.Eliminated(i) {
			out = append(out, scn.TeamName(standings.Leader(i)))
		}
	}
	if len(out) > 0 {
		fmt.Fprintf(&b, "; eliminated: %s", strings.Join(out, ", "))
	}
	return b.String()
}

// ConfigGUI makes the GUI in a new body, without running it.
func (ap *App) ConfigGUI() *core.Body {
	b := core.NewBody("pennant").SetTitle("Pennant Race")
	split := core.NewSplits(b)

	ap.controls = core.NewFrame(split)
	ap.controls.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Overflow.Y = styles.OverflowAuto
	})
	ap.makeControls(ap.controls)

	ap.SceneEditor = xyzcore.NewSceneEditor(split)
	ap.SceneEditor.UpdateWidget()
	sc := ap.SceneEditor.SceneXYZ()
	ap.lattice = cube.Configure(sc, ap.Scenario.Games)
	ap.ResetView()

	split.SetSplits(.25, .75)

	b.AddTopBar(func(bar *core.Frame) {
		core.NewToolbar(bar).Maker(ap.MakeToolbar)
	})
	b.OnShow(func(e events.Event) {
		ap.Rebuild()
	})
	return b
}

func (ap *App) makeControls(fr *core.Frame) {
	core.NewText(fr).SetText("Race").SetType(core.TextTitleMedium)
	core.NewForm(fr).SetStruct(ap.Scenario).OnChange(func(e events.Event) {
		ap.Rebuild()
	})

	for i := range ap.Scenario.Teams {
		tm := &ap.Scenario.Teams[i]
		cl := core.NewCollapser(fr)
		cl.Open = true
		title := core.NewText(cl.Summary).SetType(core.TextTitleMedium)
		title.Updater(func() {
			title.SetText(ap.Scenario.TeamName(standings.Leader(i)))
		})
		core.NewForm(cl.Details).SetStruct(tm).OnChange(func(e events.Event) {
			title.Update()
			ap.Rebuild()
		})
	}

	core.NewText(fr).SetText("Outcomes").SetType(core.TextTitleMedium)
	ap.table = core.NewTable(fr).SetSlice(&ap.Tally)
	ap.table.SetReadOnly(true)
	ap.status = core.NewText(fr).SetText(ap.StatusText())
}

// ResetView moves the camera back to its default, looking at the
// center of the current outcome box.
func (ap *App) ResetView() { //types:add
	if ap.SceneEditor == nil {
		return
	}
	sc := ap.SceneEditor.SceneXYZ()
	cube.SetCamera(sc, ap.Scenario.Games, cube.Center(ap.Scenario))
	sc.SaveCamera("default")
	sc.SetNeedsUpdate()
	ap.SceneEditor.NeedsRender()
}

// Reset restores the default records.
func (ap *App) Reset() { //types:add
	ap.Scenario.SetFrom(standings.DefaultScenario())
	ap.Filename = ""
	ap.refresh()
}

// Open opens a scenario from a TOML file.
func (ap *App) Open(filename core.Filename) error { //types:add
	if err := ap.Scenario.Open(string(filename)); err != nil {
		return err
	}
	ap.Filename = filename
	ap.refresh()
	if ap.watcher != nil {
		return errors.Log(ap.Watch(string(filename)))
	}
	return nil
}

// Save saves the scenario to the file it was opened from.
func (ap *App) Save() error { //types:add
	if ap.Filename == "" {
		return errors.New("no file name: use Save as")
	}
	return ap.Scenario.Save(string(ap.Filename))
}

// SaveAs saves the scenario to a TOML file.
func (ap *App) SaveAs(filename core.Filename) error { //types:add
	ap.Filename = filename
	return ap.Save()
}

// refresh updates the forms from a replaced scenario and rebuilds.
func (ap *App) refresh() {
	if ap.controls != nil {
		ap.controls.Update()
	}
	ap.ResetView()
	ap.Rebuild()
}

// MakeToolbar adds the app actions to the top bar.
func (ap *App) MakeToolbar(p *tree.Plan) {
	tree.Add(p, func(w *core.FuncButton) {
		w.SetFunc(ap.Open).SetIcon(icons.Open)
	})
	tree.Add(p, func(w *core.FuncButton) {
		w.SetFunc(ap.Save).SetIcon(icons.Save)
		w.FirstStyler(func(s *styles.Style) { s.SetEnabled(ap.Filename != "") })
	})
	tree.Add(p, func(w *core.FuncButton) {
		w.SetFunc(ap.SaveAs).SetIcon(icons.SaveAs)
	})
	tree.Add(p, func(w *core.Separator) {})

	tree.Add(p, func(w *core.FuncButton) {
		w.SetFunc(ap.Reset).SetConfirm(true).SetIcon(icons.Refresh)
	})
	tree.Add(p, func(w *core.FuncButton) {
		w.SetFunc(ap.Rebuild).SetIcon(icons.Update)
	})
	tree.Add(p, func(w *core.FuncButton) {
		w.SetFunc(ap.ResetView).SetText("Reset view").SetIcon(icons.Visibility)
	})
}
