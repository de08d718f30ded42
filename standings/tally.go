// Copyright (c) 2026, The Pennant Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package standings

// TallyRow is the share of remaining outcomes led by one [Leader].
type TallyRow struct {

	// Leader of the outcomes counted in this row.
	Leader Leader `display:"-"`

	// Label is the team name, or "Tie".
	Label string `edit:"-"`

	// Count is the number of combinations this row leads.
	Count int `edit:"-"`

	// Percent is Count as a percentage of all combinations.
	Percent float32 `edit:"-" format:"%.1f"`
}

// Tally has one row per [Leader], in [LeaderValues] order.
type Tally []TallyRow

// Total returns the number of combinations tallied.
func (tl Tally) Total() int {
	n := 0
	for _, r := range tl {
		n += r.Count
	}
	return n
}

// Summarize counts the leader of every combination in the full
// [Scenario.Lattice], whatever the display Mode. For each pair of
// wins of the first two teams, the third team's range splits into
// below, equal to and above their maximum, so only two axes are walked.
func (sc *Scenario) Summarize() Tally {
	lo, hi := sc.bounds()
	var counts [LeaderN]int
	for a := lo[0]; a < hi[0]; a++ {
		for b := lo[1]; b < hi[1]; b++ {
			top := max(a, b)
			below := min(max(top-lo[2], 0), hi[2]-lo[2])
			equal := 0
			if top >= lo[2] && top < hi[2] {
				equal = 1
			}
			above := hi[2] - lo[2] - below - equal
			switch {
			case a > b:
				counts[TeamA] += below
			case b > a:
				counts[TeamB] += below
			default:
				counts[Tie] += below
			}
			counts[Tie] += equal
			counts[TeamC] += above
		}
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	tl := make(Tally, 0, LeaderN)
	for _, ld := range LeaderValues() {
		r := TallyRow{Leader: ld, Label: sc.TeamName(ld), Count: counts[ld]}
		if total > 0 {
			r.Percent = 100 * float32(r.Count) / float32(total)
		}
		tl = append(tl, r)
	}
	return tl
}

// Clinched returns the team that leads every combination outright,
// if there is one. An empty lattice clinches nothing.
func (sc *Scenario) Clinched() (Leader, bool) {
	tl := sc.Summarize()
	total := tl.Total()
	if total == 0 {
		return Tie, false
	}
	for _, r := range tl {
		if r.Leader != Tie && r.Count == total {
			return r.Leader, true
		}
	}
	return Tie, false
}

// Eliminated reports whether team i can no longer finish first or
// tied for first: its maximum wins fall short of another team's
// current wins.
func (sc *Scenario) Eliminated(i int) bool {
	if i < 0 || i >= len(sc.Teams) {
		return false
	}
	best := sc.Teams[i].MaxWins(sc.Games)
	if sc.Teams[i].Remaining(sc.Games) > 0 {
		best-- // exclusive bound
	}
	for j := range sc.Teams {
		if j != i && sc.Teams[j].Wins > best {
			return true
		}
	}
	return false
}
