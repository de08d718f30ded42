// Copyright (c) 2026, The Pennant Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pennantcore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/core/core"
	"cogentcore.org/core/xyz"
	"github.com/pennantrace/pennant/cube"
	"github.com/pennantrace/pennant/standings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate(t *testing.T) {
	ap := NewApp(nil)
	sc := xyz.NewScene()
	require.NoError(t, ap.Update(sc))
	assert.Equal(t, ap.Scenario.NumCells(), ap.NumSolids)
	assert.Equal(t, ap.NumSolids, ap.lattice.NumChildren())
	assert.Equal(t, cube.TieColor, ap.Palette[standings.Tie])
	// 27 x 27 x 27 remaining combinations
	assert.Equal(t, 27*27*27, ap.Tally.Total())

	// a rebuild replaces every cell rather than adding to them
	ap.Scenario.Mode = standings.Cubes
	ap.Scenario.Games = 5
	require.NoError(t, ap.Update(sc))
	assert.Equal(t, 2*2*2, ap.NumSolids)
	assert.Equal(t, ap.NumSolids, ap.lattice.NumChildren())

	ap.Scenario.Teams[1].Losses = 4
	assert.ErrorContains(t, ap.Update(sc), "Cardinals")
	assert.Zero(t, ap.lattice.NumChildren())
}

func TestStatusText(t *testing.T) {
	ap := NewApp(&standings.Scenario{Games: 10, Teams: make([]standings.Team, standings.NumTeams)})
	ap.Scenario.Teams[0] = standings.Team{Name: "Brewers", Wins: 9}
	ap.Scenario.Teams[1] = standings.Team{Name: "Cardinals", Wins: 2, Losses: 5}
	ap.Scenario.Teams[2] = standings.Team{Name: "Cubs", Wins: 1, Losses: 7}
	ap.Tally = ap.Scenario.Summarize()
	assert.Equal(t, "6 possible outcomes; <b>Brewers</b> leads every one; eliminated: Cardinals, Cubs", ap.StatusText())

	ap.Scenario.Teams[2].Losses = 9
	ap.Tally = ap.Scenario.Summarize()
	assert.Contains(t, ap.StatusText(), "No outcomes remain")
}

func TestSaveOpen(t *testing.T) {
	ap := NewApp(nil)
	assert.Error(t, ap.Save())

	fn := core.Filename(filepath.Join(t.TempDir(), "race.toml"))
	ap.Scenario.Teams[0].Wins = 11
	require.NoError(t, ap.SaveAs(fn))

	op := NewApp(nil)
	require.NoError(t, op.Open(fn))
	assert.Equal(t, 11, op.Scenario.Teams[0].Wins)
	assert.Equal(t, fn, op.Filename)

	op.Reset()
	assert.Equal(t, standings.DefaultScenario(), op.Scenario)
	assert.Empty(t, op.Filename)
}

func TestWatchFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "race.toml")
	changed := make(chan string, 16)
	w, err := watchFile(func(name string) { changed <- name })
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(dir))

	require.NoError(t, os.WriteFile(fn, []byte("Games = 10\n"), 0666))
	want, err := filepath.Abs(fn)
	require.NoError(t, err)
	select {
	case name := <-changed:
		assert.Equal(t, want, name)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
}

func TestWatch(t *testing.T) {
	ap := NewApp(nil)
	dir := t.TempDir()
	fn := filepath.Join(dir, "race.toml")
	require.NoError(t, ap.Scenario.Save(fn))
	require.NoError(t, ap.Watch(fn))
	abs, _ := filepath.Abs(fn)
	assert.Equal(t, abs, ap.watchedFile())

	other := filepath.Join(t.TempDir(), "other.toml")
	require.NoError(t, ap.Scenario.Save(other))
	require.NoError(t, ap.Watch(other))
	abs, _ = filepath.Abs(other)
	assert.Equal(t, abs, ap.watchedFile())

	ap.StopWatch()
	assert.Nil(t, ap.watcher)
	assert.Empty(t, ap.watchedFile())

	// the event loop has exited, so later writes can not reload
	changed := standings.DefaultScenario()
	changed.Teams[0].Wins = 20
	require.NoError(t, changed.Save(other))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 2, ap.Scenario.Teams[0].Wins)
}

func TestReload(t *testing.T) {
	ap := NewApp(nil)
	team := &ap.Scenario.Teams[1]
	fn := filepath.Join(t.TempDir(), "race.toml")
	saved := standings.DefaultScenario()
	saved.Teams[1].Wins = 12
	saved.Teams[1].Losses = 4
	require.NoError(t, saved.Save(fn))

	ap.reload(fn)
	assert.Equal(t, 12, ap.Scenario.Teams[1].Wins)
	assert.Equal(t, 12, team.Wins)

	require.NoError(t, os.WriteFile(fn, []byte("Games = ["), 0666))
	ap.reload(fn)
	assert.Equal(t, 12, team.Wins)
	assert.Equal(t, 4, team.Losses)
}
