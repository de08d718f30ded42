// Copyright (c) 2026, The Pennant Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/pennantrace/pennant/cube"
	"github.com/pennantrace/pennant/standings"
)

// WriteSummary writes the records and outcome tally of scn to out,
// with each team name in its team color.
func WriteSummary(out *termenv.Output, scn *standings.Scenario) {
	pl := cube.NewPalette(scn)
	name := func(ld standings.Leader) string {
		s := fmt.Sprintf("%-12s", scn.TeamName(ld))
		return out.String(s).Foreground(out.FromColor(pl[ld])).Bold().String()
	}

	fmt.Fprintf(out, "%d games scheduled\n\n", scn.Games)
	fmt.Fprintf(out, "%-12s %5s %5s %5s\n", "Team", "W", "L", "Left")
	for i := range scn.Teams {
		tm := &scn.Teams[i]
		fmt.Fprintf(out, "%s %5d %5d %5d\n", name(standings.Leader(i)), tm.Wins, tm.Losses, tm.Remaining(scn.Games))
	}

	tl := scn.Summarize()
	fmt.Fprintf(out, "\n%-12s %9s %7s\n", "Leader", "Outcomes", "Share")
	for _, r := range tl {
		fmt.Fprintf(out, "%s %9d %6.1f%%\n", name(r.Leader), r.Count, r.Percent)
	}
	fmt.Fprintf(out, "%-12s %9d\n", "Total", tl.Total())

	if tl.Total() == 0 {
		return
	}
	if ld, ok := scn.Clinched(); ok {
		fmt.Fprintf(out, "\n%s leads every outcome.\n", scn.TeamName(ld))
	}
	for i := range scn.Teams {
		if scn.Eliminated(i) {
			fmt.Fprintf(out, "%s is eliminated.\n", scn.TeamName(standings.Leader(i)))
		}
	}
}
