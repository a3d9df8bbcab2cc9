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

package clocks_test

import (
	"testing"

	"github.com/jetsetilly/gopher16/hardware/clocks"
	"github.com/jetsetilly/gopher16/test"
)

func TestRatioIsExact(t *testing.T) {
	r := clocks.APURatio(clocks.RegionNTSC)

	// one second of master cycles fed in small, uneven slices produces
	// exactly one second of APU cycles
	var total uint64
	var fed uint64
	slices := []uint64{6, 8, 12, 6, 6, 8}
	for i := 0; fed < clocks.NTSC; i++ {
		n := slices[i%len(slices)]
		if fed+n > clocks.NTSC {
			n = clocks.NTSC - fed
		}
		fed += n
		total += r.Advance(n)
	}
	test.ExpectEquality(t, total, uint64(clocks.APU))
	test.ExpectEquality(t, r.Acc, uint64(0))
}

func TestRatioReduced(t *testing.T) {
	r := clocks.NewRatio(6, 8)
	test.ExpectEquality(t, r.Num, uint64(3))
	test.ExpectEquality(t, r.Den, uint64(4))
	test.ExpectEquality(t, r.Advance(3), uint64(2))
	test.ExpectEquality(t, r.Acc, uint64(1))
}

func TestNanoseconds(t *testing.T) {
	test.ExpectEquality(t, clocks.RegionNTSC.Nanoseconds(clocks.NTSC), uint64(1000000000))
	test.ExpectEquality(t, clocks.RegionPAL.Nanoseconds(clocks.PAL*2), uint64(2000000000))
	test.ExpectEquality(t, clocks.RegionNTSC.Scanlines(), 262)
	test.ExpectEquality(t, clocks.RegionPAL.String(), "PAL")
}
