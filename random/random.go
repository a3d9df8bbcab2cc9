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

// Package random should be used in preference to the math/rand package when
// a random number is required inside the emulation. The sequence of numbers
// is predictable for a given seed and, when ZeroSeed is set, is the same for
// every run of the program.
package random

import (
	"math/rand"
	"time"
)

// the base seed is used when no seed has been specified
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a source of random numbers for the emulation.
type Random struct {
	// the seed to use for the random source. a value of zero means that the
	// base seed is used
	Seed int64

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(seed int64) *Random {
	return &Random{
		Seed: seed,
	}
}

func (rnd *Random) source() *rand.Rand {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(0))
	}
	if rnd.Seed == 0 {
		return rand.New(rand.NewSource(baseSeed))
	}
	return rand.New(rand.NewSource(rnd.Seed))
}

// Intn returns a random number in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return rnd.source().Intn(n)
}

// FillBytes fills the slice with random data. The same seed always produces
// the same data.
func (rnd *Random) FillBytes(b []byte) {
	src := rnd.source()
	for i := range b {
		b[i] = uint8(src.Intn(256))
	}
}
