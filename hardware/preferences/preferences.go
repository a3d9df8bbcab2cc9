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

// Package preferences contains the preferences that affect the emulated
// hardware.
package preferences

import (
	"github.com/jetsetilly/gopher16/prefs"
)

// Region preference values.
const (
	RegionAuto = "AUTO"
	RegionNTSC = "NTSC"
	RegionPAL  = "PAL"
)

// Preferences defines the emulation preferences.
type Preferences struct {
	coll *prefs.Collection

	// the television standard of the console. AUTO means that the region is
	// chosen from the country code in the cartridge header
	Region prefs.String

	// whether work RAM is filled with random values on power on. the values
	// can be made predictable with the Seed preference
	RandomState prefs.Bool

	// seed for the random number generator. zero means a seed is chosen
	// using the time
	Seed prefs.Int
}

func (p *Preferences) String() string {
	return p.coll.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values on the top of the command line stack are applied
// after the default values.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		coll: prefs.NewCollection(),
	}
	p.Region.SetOptions(RegionAuto, RegionNTSC, RegionPAL)
	p.SetDefaults()

	if err := p.coll.Add("hardware.region", &p.Region); err != nil {
		return nil, err
	}
	if err := p.coll.Add("hardware.randomState", &p.RandomState); err != nil {
		return nil, err
	}
	if err := p.coll.Add("hardware.seed", &p.Seed); err != nil {
		return nil, err
	}

	if err := p.coll.ApplyCommandLine(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.Region.Set(RegionAuto)
	p.RandomState.Set(false)
	p.Seed.Set(0)
}
