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

// Package limiter paces the emulation to real time. The emulation reports
// how much emulated time has passed and the limiter sleeps until the same
// amount of wall time has passed.
//
// A new Limiter is created with:
//
//	lim := limiter.NewLimiter()
//
// The emulation can then be paced with the Pace() function. For example:
//
//	for {
//		con.RunFrame()
//		lim.Pace(con.Region.Nanoseconds(con.Timing.Master))
//	}
package limiter

import (
	"time"
)

// if the emulation falls further behind than this the limiter gives up on
// catching up and starts again from the current time
const maxLag = 250 * time.Millisecond

// Limiter paces emulated time against wall time.
type Limiter struct {
	// wall time and emulated time at the start of pacing
	start    time.Time
	emuStart time.Duration

	// for testing
	now   func() time.Time
	sleep func(time.Duration)
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter() *Limiter {
	return &Limiter{
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Reset the limiter. The next call to Pace() begins a new period.
func (lim *Limiter) Reset() {
	lim.start = time.Time{}
}

// Pace blocks until the wall time since the start of pacing has caught up
// with the emulated time. The emulated time is given in nanoseconds since
// an arbitrary point, which must not go backwards between calls to Reset().
// Returns the time spent waiting.
func (lim *Limiter) Pace(emulated uint64) time.Duration {
	e := time.Duration(emulated)
	now := lim.now()

	if lim.start.IsZero() {
		lim.start = now
		lim.emuStart = e
		return 0
	}

	wall := now.Sub(lim.start)
	ahead := (e - lim.emuStart) - wall

	if ahead <= 0 {
		if -ahead > maxLag {
			lim.start = now
			lim.emuStart = e
		}
		return 0
	}

	lim.sleep(ahead)
	return ahead
}
