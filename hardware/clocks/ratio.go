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

package clocks

// Ratio converts cycles from one clock domain into cycles of another clock
// domain. The fractional part of the conversion is carried forward from one
// call to the next so there is no drift over time.
//
// The fields are exported so that a Ratio can be saved as part of the console
// state.
type Ratio struct {
	Num uint64
	Den uint64

	// the carried remainder. always less than Den
	Acc uint64
}

// NewRatio creates a Ratio of the form num/den, reduced to its lowest terms.
func NewRatio(num, den uint64) Ratio {
	g := gcd(num, den)
	return Ratio{Num: num / g, Den: den / g}
}

// APURatio returns the ratio of SPC700 cycles to master cycles for the
// region.
func APURatio(r Region) Ratio {
	return NewRatio(APU, r.MasterClock())
}

// Advance converts cycles of the source domain into whole cycles of the
// destination domain.
func (r *Ratio) Advance(cycles uint64) uint64 {
	r.Acc += cycles * r.Num
	n := r.Acc / r.Den
	r.Acc %= r.Den
	return n
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}
