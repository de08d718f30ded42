// Copyright (c) 2026, The Pennant Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package standings

// Leader is the outcome of one combination of final win totals:
// the single team with the most wins, or a tie at the top.
type Leader int32 //enums:enum

const (
	// TeamA has the most wins outright.
	TeamA Leader = iota

	// TeamB has the most wins outright.
	TeamB

	// TeamC has the most wins outright.
	TeamC

	// Tie means two or more teams share the most wins.
	Tie
)

// LeadingTeam returns the team with the strictly highest win total,
// or [Tie] when the maximum is shared by two or more teams.
func LeadingTeam(wins [NumTeams]int) Leader {
	best := 0
	n := 1
	for i := 1; i < NumTeams; i++ {
		switch {
		case wins[i] > wins[best]:
			best = i
			n = 1
		case wins[i] == wins[best]:
			n++
		}
	}
	if n > 1 {
		return Tie
	}
	return Leader(best)
}
