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

package apu

// SPC700 cycles per stage tick of each timer. timers 0 and 1 run at 8kHz
// and timer 2 at 64kHz
var timerDividers = [3]int{128, 128, 16}

// Timer is one of the three APU timers.
type Timer struct {
	Enabled bool
	Divider int

	// cycles accumulated toward the next stage tick
	Cycles int

	// the stage counts up to Target. a target of zero counts 256 ticks
	Stage  uint8
	Target uint8

	// the four bit output read from $FD-$FF
	Counter uint8
}

// Step the timer by a number of SPC700 cycles.
func (t *Timer) Step(cycles int) {
	if !t.Enabled {
		return
	}
	t.Cycles += cycles
	for t.Cycles >= t.Divider {
		t.Cycles -= t.Divider
		t.Stage++
		if t.Stage == t.Target {
			t.Stage = 0
			t.Counter = (t.Counter + 1) & 0x0f
		}
	}
}

// enabling a stopped timer clears its stage and output
func (t *Timer) enable(on bool) {
	if on && !t.Enabled {
		t.Stage = 0
		t.Counter = 0
		t.Cycles = 0
	}
	t.Enabled = on
}

// reading the output clears it
func (t *Timer) read() uint8 {
	v := t.Counter
	t.Counter = 0
	return v
}
