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

package cartridge

// mirror reduces an offset to the size of a memory. Memories that are not a
// power of two in size are treated as a series of power of two sized chips,
// with the smaller chips mirrored to fill the space of the largest.
func mirror(offset, size uint32) uint32 {
	if size == 0 {
		return 0
	}

	base := uint32(0)
	mask := uint32(1 << 24)
	for offset >= size {
		for offset&mask == 0 {
			mask >>= 1
		}
		offset -= mask
		if size > mask {
			size -= mask
			base += mask
		}
		mask >>= 1
	}

	return base + offset
}

// Checksum computes the checksum of ROM data in the same way as the header
// checksum is calculated: the 16bit sum of every byte. Images that are not a
// power of two in size are summed as though they had been mirrored up to the
// next power of two.
func Checksum(rom []uint8) uint16 {
	size := uint32(len(rom))
	if size == 0 {
		return 0
	}

	n := uint32(1)
	for n < size {
		n <<= 1
	}

	var sum uint16
	if n == size {
		for _, b := range rom {
			sum += uint16(b)
		}
		return sum
	}

	for i := uint32(0); i < n; i++ {
		sum += uint16(rom[mirror(i, size)])
	}
	return sum
}
