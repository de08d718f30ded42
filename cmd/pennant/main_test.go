// Copyright (c) 2026, The Pennant Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/pennantrace/pennant/standings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario(t *testing.T) {
	scn, err := scenario(&Config{})
	require.NoError(t, err)
	assert.Equal(t, standings.DefaultScenario(), scn)

	scn, err = scenario(&Config{Games: 40, Cubes: true})
	require.NoError(t, err)
	assert.Equal(t, 40, scn.Games)
	assert.Equal(t, standings.Cubes, scn.Mode)

	fn := filepath.Join(t.TempDir(), "race.toml")
	saved := standings.DefaultScenario()
	saved.Teams[0].Name = "Pirates"
	require.NoError(t, saved.Save(fn))
	scn, err = scenario(&Config{Open: fn})
	require.NoError(t, err)
	assert.Equal(t, "Pirates", scn.Teams[0].Name)

	_, err = scenario(&Config{Open: filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(t, err)
}

func TestWriteSummary(t *testing.T) {
	scn := &standings.Scenario{Games: 10, Teams: make([]standings.Team, standings.NumTeams)}
	scn.Teams[0] = standings.Team{Name: "Brewers", Wins: 9}
	scn.Teams[1] = standings.Team{Name: "Cardinals", Wins: 2, Losses: 5}
	scn.Teams[2] = standings.Team{Name: "Cubs", Wins: 1, Losses: 7}

	var buf bytes.Buffer
	WriteSummary(termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii)), scn)
	s := buf.String()
	assert.Contains(t, s, "10 games scheduled")
	assert.Contains(t, s, "Brewers")
	assert.Contains(t, s, "Total                6")
	assert.Contains(t, s, "100.0%")
	assert.Contains(t, s, "Brewers leads every outcome.")
	assert.Contains(t, s, "Cardinals is eliminated.")
	assert.Contains(t, s, "Cubs is eliminated.")
}

func TestWriteSummaryEmpty(t *testing.T) {
	scn := standings.DefaultScenario()
	scn.Teams[2].Losses = scn.Games - scn.Teams[2].Wins

	var buf bytes.Buffer
	WriteSummary(termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii)), scn)
	s := buf.String()
	assert.Contains(t, s, "Total                0")
	assert.NotContains(t, s, "eliminated")
	assert.NotContains(t, s, "leads every outcome")
}
