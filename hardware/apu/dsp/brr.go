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

package dsp

// decode the BRR block at the voice's current address. a block is a header
// byte followed by eight bytes of four-bit samples, high nibble first
func (v *Voice) decode(ram *[0x10000]uint8) {
	header := ram[v.BRRAddress]
	shift := uint(header >> 4)
	filter := (header >> 2) & 0x03

	p1 := v.Prev1
	p2 := v.Prev2

	for i := 0; i < 16; i++ {
		b := ram[v.BRRAddress+1+uint16(i/2)]

		var n int
		if i&0x01 == 0 {
			n = int(int8(b)) >> 4
		} else {
			n = int(int8(b<<4)) >> 4
		}

		var s int
		if shift <= 12 {
			s = n << shift >> 1
		} else {
			s = n >> 3 << 11
		}

		switch filter {
		case 1:
			s += p1 + (-p1 >> 4)
		case 2:
			s += p1<<1 + (-p1*3)>>5 - p2 + p2>>4
		case 3:
			s += p1<<1 + (-p1*13)>>6 - p2 + (p2*3)>>4
		}

		// samples are clamped to 16 bits and then wrap to 15
		s = clamp16(s)
		s = int(int16(s<<1)) >> 1

		v.Decoded[i] = int16(s << 1)
		p2 = p1
		p1 = s
	}

	v.Prev1 = p1
	v.Prev2 = p2
}
