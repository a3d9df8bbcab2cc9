// This file is part of Gopher16.
//
// Gopher16 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher16 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher16.  If not, see <https://www.gnu.org/licenses/>.

// Package environment describes the conditions a console is running under.
package environment

import (
	"github.com/jetsetilly/gopher16/hardware/preferences"
	"github.com/jetsetilly/gopher16/prefs"
	"github.com/jetsetilly/gopher16/random"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label used for the main emulation.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation.
type Environment struct {
	Label Label

	// any randomisation required by the emulation should be retreived through
	// this structure
	Random *random.Random

	// the emulation preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type. If the emulationPrefs argument is nil a new instance of
// the preferences is created.
func NewEnvironment(label Label, emulationPrefs *preferences.Preferences) (*Environment, error) {
	var err error

	if emulationPrefs == nil {
		emulationPrefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env := &Environment{
		Label:  label,
		Prefs:  emulationPrefs,
		Random: random.NewRandom(int64(emulationPrefs.Seed.Get().(int))),
	}

	emulationPrefs.Seed.SetHookPost(func(v prefs.Value) error {
		env.Random.Seed = int64(v.(int))
		return nil
	})

	return env, nil
}

// Normalise ensures the environment is in a known default state. Useful for
// regression testing where the initial state must be the same for every run
// of the test.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Prefs.SetDefaults()
}

// IsMainEmulation reports whether the environment is the main emulation.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to create log entries.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation()
}
