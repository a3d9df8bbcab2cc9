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

// Synthetic describes a minimal cartridge image. It is used to create
// images for testing and for running short programs without a real
// cartridge.
type Synthetic struct {
	Title   string
	Mapping Mapping
	FastROM bool

	// size of ROM in bytes. the minimum size is used if the value is zero
	Size int

	// header size codes
	RAMSize uint8
	Country uint8

	// program is placed at the start of the first bank, which is mapped
	// to 008000 for LoROM and to 008000 (offset 8000) for HiROM
	Program []uint8

	// additional data to place in the image, keyed by ROM offset
	Data map[int][]uint8

	// vectors. the emulation mode reset vector defaults to 8000
	Reset     uint16
	NMI       uint16
	IRQ       uint16
	NativeNMI uint16
	NativeIRQ uint16
	COP       uint16
	BRK       uint16
}

// Image returns the bytes of the cartridge image with a valid header and
// checksum.
func (syn Synthetic) Image() []uint8 {
	size := syn.Size
	hdr := loROMHeader
	mode := uint8(0x20)
	progOffset := 0

	switch syn.Mapping {
	case HiROM:
		hdr = hiROMHeader
		mode = 0x21
		progOffset = 0x8000
		if size < 0x10000 {
			size = 0x10000
		}
	case ExHiROM:
		hdr = exHiROMHeader
		mode = 0x25
		progOffset = 0x408000
		if size < 0x410000 {
			size = 0x410000
		}
	default:
		if size < minImageSize {
			size = minImageSize
		}
	}

	if syn.FastROM {
		mode |= 0x10
	}

	data := make([]uint8, size)

	copy(data[progOffset:], syn.Program)
	for offset, d := range syn.Data {
		copy(data[offset:], d)
	}

	h := data[hdr : hdr+headerLen]
	for i := 0; i < titleLen; i++ {
		h[fldTitle+i] = ' '
	}
	copy(h[fldTitle:fldTitle+titleLen], syn.Title)
	h[fldMapMode] = mode
	h[fldChipset] = 0x00
	if syn.RAMSize > 0 {
		h[fldChipset] = 0x02
	}

	rs := uint8(0)
	for 1024<<rs < size {
		rs++
	}
	h[fldROMSize] = rs
	h[fldRAMSize] = syn.RAMSize
	h[fldCountry] = syn.Country

	reset := syn.Reset
	if reset == 0 {
		reset = 0x8000
	}

	put16 := func(offset int, v uint16) {
		h[offset] = uint8(v)
		h[offset+1] = uint8(v >> 8)
	}

	// native mode vectors
	put16(0x24, syn.COP)
	put16(0x26, syn.BRK)
	put16(0x2a, syn.NativeNMI)
	put16(0x2e, syn.NativeIRQ)

	// emulation mode vectors
	put16(0x34, syn.COP)
	put16(0x3a, syn.NMI)
	put16(fldReset, reset)
	put16(0x3e, syn.IRQ)

	// the checksum/complement pair always adds the same amount to the sum so
	// the checksum can be calculated with any valid pair in place
	put16(fldChecksum, 0x0000)
	put16(fldComplement, 0xffff)
	sum := Checksum(data)
	put16(fldChecksum, sum)
	put16(fldComplement, ^sum)

	return data
}
