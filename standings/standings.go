// Copyright (c) 2026, The Pennant Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package standings computes which team leads a three-team pennant race
// across every still-possible combination of final win totals.
package standings

//go:generate core generate

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
)

// NumTeams is the number of teams in a race. The outcome lattice
// has one axis per team, so this is fixed at three.
const NumTeams = 3

// MaxGames is the longest schedule a scenario may have: a full
// major league season.
const MaxGames = 162

// Team is the current record of one team.
type Team struct {

	// Name is displayed in the control panel and the tally.
	Name string

	// Color is used for the cells this team leads.
	Color color.RGBA

	// Wins is the number of games won so far.
	Wins int `min:"0" step:"1"`

	// Losses is the number of games lost so far.
	Losses int `min:"0" step:"1"`
}

// Remaining returns the number of games left on a schedule of
// the given length. It is never negative.
func (tm *Team) Remaining(games int) int {
	return max(games-tm.Wins-tm.Losses, 0)
}

// MaxWins returns the exclusive upper bound on final wins,
// Wins + Remaining.
func (tm *Team) MaxWins(games int) int {
	return tm.Wins + tm.Remaining(games)
}

// Scenario is a what-if race: the schedule length, how to display
// the outcome lattice, and the current record of each team.
type Scenario struct {

	// Games is the number of scheduled games for every team.
	Games int `default:"30" min:"1" max:"162" step:"1"`

	// Mode selects between hull faces and the full cube lattice.
	Mode Modes

	// Teams are the three teams, one per lattice axis (X, Y, Z).
	Teams []Team `display:"-"`
}

// DefaultScenario returns the NL Central race the tool was first built for.
func DefaultScenario() *Scenario {
	return &Scenario{
		Games: 30,
		Mode:  Faces,
		Teams: []Team{
			{Name: "Brewers", Color: colors.FromRGB(0x12, 0x28, 0x4B), Wins: 2, Losses: 1},
			{Name: "Cardinals", Color: colors.FromRGB(0xC4, 0x1E, 0x3A), Wins: 2, Losses: 1},
			{Name: "Cubs", Color: colors.FromRGB(0x0E, 0x33, 0x86), Wins: 1, Losses: 2},
		},
	}
}

// Validate reports every inconsistency in the scenario as one joined error.
// An invalid scenario still enumerates: remaining games clamp to zero.
func (sc *Scenario) Validate() error {
	var errs []error
	if sc.Games <= 0 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", sc.Games))
	}
	if sc.Games > MaxGames {
		errs = append(errs, fmt.Errorf("games must be at most %d, got %d", MaxGames, sc.Games))
	}
	if len(sc.Teams) != NumTeams {
		errs = append(errs, fmt.Errorf("need %d teams, got %d", NumTeams, len(sc.Teams)))
	}
	for i := range sc.Teams {
		tm := &sc.Teams[i]
		if tm.Wins < 0 || tm.Losses < 0 {
			errs = append(errs, fmt.Errorf("%s: negative record %d-%d", tm.label(i), tm.Wins, tm.Losses))
			continue
		}
		if played := tm.Wins + tm.Losses; played > sc.Games {
			errs = append(errs, fmt.Errorf("%s: %d games played exceeds schedule of %d", tm.label(i), played, sc.Games))
		}
	}
	return errors.Join(errs...)
}

// TeamName returns the name of the team for the given leader,
// or "Tie".
func (sc *Scenario) TeamName(ld Leader) string {
	if ld == Tie {
		return "Tie"
	}
	if int(ld) >= len(sc.Teams) {
		return (&Team{}).label(int(ld))
	}
	return sc.Teams[ld].label(int(ld))
}

// SetFrom replaces the scenario with a copy of from. The existing
// Teams storage is reused when the team count matches, so pointers
// to individual teams stay valid.
func (sc *Scenario) SetFrom(from *Scenario) {
	teams := sc.Teams
	*sc = *from
	if len(teams) == len(from.Teams) {
		copy(teams, from.Teams)
	} else {
		teams = append([]Team(nil), from.Teams...)
	}
	sc.Teams = teams
}

func (tm *Team) label(i int) string {
	if tm.Name != "" {
		return tm.Name
	}
	return fmt.Sprintf("Team %c", 'A'+i)
}

// bounds returns the inclusive minimum and exclusive maximum wins per axis.
// Missing teams have empty bounds, and no axis spans more than
// [MaxGames] wins, whatever the records.
func (sc *Scenario) bounds() (lo, hi [NumTeams]int) {
	games := max(min(sc.Games, MaxGames), 0)
	for i := range min(len(sc.Teams), NumTeams) {
		lo[i] = sc.Teams[i].Wins
		hi[i] = min(sc.Teams[i].MaxWins(games), lo[i]+games)
	}
	return
}
