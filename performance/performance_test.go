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

package performance_test

import (
	"testing"

	"github.com/jetsetilly/gopher16/hardware/clocks"
	"github.com/jetsetilly/gopher16/performance"
	"github.com/jetsetilly/gopher16/test"
)

func TestFramesPerSecond(t *testing.T) {
	test.ExpectApproximate(t, performance.FramesPerSecond(clocks.RegionNTSC), 60.0988, 0.0001)
	test.ExpectApproximate(t, performance.FramesPerSecond(clocks.RegionPAL), 50.007, 0.0001)

	fps, accuracy := performance.CalcFPS(clocks.RegionNTSC, 601, 10)
	test.ExpectApproximate(t, fps, 60.1, 0.0001)
	test.ExpectApproximate(t, accuracy, 100.0, 0.001)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu,MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	p, err = performance.ParseProfileString("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	_, err = performance.ParseProfileString("cpu,disk")
	test.ExpectFailure(t, err)
}
