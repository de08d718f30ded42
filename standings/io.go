// Copyright (c) 2026, The Pennant Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package standings

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/iox/tomlx"
)

// Open reads the scenario from the given TOML file. The scenario is
// left unchanged if the file can not be read or does not have
// exactly [NumTeams] teams.
func (sc *Scenario) Open(filename string) error {
	var ns Scenario
	if err := tomlx.Open(&ns, filename); err != nil {
		return err
	}
	if len(ns.Teams) != NumTeams {
		return fmt.Errorf("%s: need %d teams, got %d", filename, NumTeams, len(ns.Teams))
	}
	sc.SetFrom(&ns)
	slog.Debug("opened scenario", "file", filename, "games", sc.Games)
	return nil
}

// Save writes the scenario to the given TOML file.
func (sc *Scenario) Save(filename string) error {
	if err := tomlx.Save(sc, filename); err != nil {
		return err
	}
	slog.Debug("saved scenario", "file", filename)
	return nil
}
