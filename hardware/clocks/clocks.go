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

// Package clocks contains the clock frequencies of the console and the
// integer arithmetic used to move time from one clock domain to another.
package clocks

import "fmt"

// Master clock frequencies in Hz.
const (
	NTSC = 21477272
	PAL  = 21281370
)

// APU crystal frequency divided down to the SPC700 cycle rate (Hz).
const APU = 1024000

// Master cycles taken by each kind of CPU bus access.
const (
	Fast  = 6
	Slow  = 8
	XSlow = 12

	// internal operations always take the fast speed
	Internal = Fast
)

// The PPU dot clock is the master clock divided by four.
const MasterPerDot = 4

// Region is the television standard the console is built for.
type Region int

// List of valid Region values.
const (
	RegionNTSC Region = iota
	RegionPAL
)

func (r Region) String() string {
	switch r {
	case RegionNTSC:
		return "NTSC"
	case RegionPAL:
		return "PAL"
	}
	return fmt.Sprintf("unknown region (%d)", int(r))
}

// MasterClock returns the master clock frequency in Hz for the region.
func (r Region) MasterClock() uint64 {
	if r == RegionPAL {
		return PAL
	}
	return NTSC
}

// Scanlines returns the number of scanlines in a non-interlaced frame.
func (r Region) Scanlines() int {
	if r == RegionPAL {
		return 312
	}
	return 262
}

// Nanoseconds converts a count of master cycles to wall time.
func (r Region) Nanoseconds(masterCycles uint64) uint64 {
	// split to avoid overflowing for large cycle counts
	clk := r.MasterClock()
	secs := masterCycles / clk
	rem := masterCycles % clk
	return secs*1000000000 + rem*1000000000/clk
}
