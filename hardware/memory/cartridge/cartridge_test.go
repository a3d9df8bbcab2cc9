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

package cartridge_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher16/hardware/clocks"
	"github.com/jetsetilly/gopher16/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher16/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher16/test"
)

func TestLoROM(t *testing.T) {
	syn := cartridge.Synthetic{
		Title:   "LOROM TEST",
		Program: []uint8{0xea, 0xea, 0xdb},
		RAMSize: 0x01,
	}
	cart, err := cartridge.NewCartridge(syn.Image())
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, cart.Header.Title, "LOROM TEST")
	test.ExpectEquality(t, cart.Header.Mapping, cartridge.LoROM)
	test.ExpectEquality(t, cart.Header.ResetVector, uint16(0x8000))
	test.ExpectEquality(t, cart.Header.SRAMBytes(), 2048)
	test.ExpectSuccess(t, cart.ChecksumOK)
	test.ExpectEquality(t, len(cart.SRAM), 2048)

	m, err := memorymap.Build(cart.Regions())
	test.DemandSuccess(t, err)

	r, offset := m.Lookup(0x808002)
	test.DemandSuccess(t, r != nil)
	test.ExpectEquality(t, r.Owner, memorymap.ROM)
	test.ExpectEquality(t, cart.ReadROM(offset), uint8(0xdb))

	// the image is a single bank so bank 01 mirrors bank 00
	_, offset = m.Lookup(0x018000)
	test.ExpectEquality(t, cart.ReadROM(offset), uint8(0xea))

	r, offset = m.Lookup(0x700010)
	test.DemandSuccess(t, r != nil)
	test.ExpectEquality(t, r.Owner, memorymap.SRAM)
	test.ExpectSuccess(t, cart.WriteSRAM(offset, 0x42))
	v, ok := cart.ReadSRAM(offset)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(0x42))

	// sram is mirrored
	_, offset = m.Lookup(0x700810)
	v, _ = cart.ReadSRAM(offset)
	test.ExpectEquality(t, v, uint8(0x42))

	// snapshot does not share sram
	snp := cart.Snapshot()
	cart.WriteSRAM(0x10, 0x00)
	v, _ = snp.ReadSRAM(0x10)
	test.ExpectEquality(t, v, uint8(0x42))

	// lower half of bank 40 is not mapped in LoROM
	test.ExpectEquality(t, m.Owner(0x400000), memorymap.Unmapped)
}

func TestHiROM(t *testing.T) {
	syn := cartridge.Synthetic{
		Title:   "HIROM TEST",
		Mapping: cartridge.HiROM,
		FastROM: true,
		Program: []uint8{0x18, 0xfb},
		Country: 0x02,
	}
	cart, err := cartridge.NewCartridge(syn.Image())
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, cart.Header.Mapping, cartridge.HiROM)
	test.ExpectSuccess(t, cart.Header.FastROM)
	test.ExpectSuccess(t, cart.ChecksumOK)
	test.ExpectEquality(t, cart.Header.Region(), clocks.RegionPAL)

	m, err := memorymap.Build(cart.Regions())
	test.DemandSuccess(t, err)

	_, offset := m.Lookup(0x008001)
	test.ExpectEquality(t, cart.ReadROM(offset), uint8(0xfb))
	_, offset = m.Lookup(0xc08000)
	test.ExpectEquality(t, cart.ReadROM(offset), uint8(0x18))
}

func TestChecksumMismatchIsAdvisory(t *testing.T) {
	img := cartridge.Synthetic{Title: "BAD SUM"}.Image()
	img[0x100] ^= 0xff

	cart, err := cartridge.NewCartridge(img)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cart.ChecksumOK)
}

func TestMalformed(t *testing.T) {
	_, err := cartridge.NewCartridge(make([]uint8, 0x4000))
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrTooShort))

	// an image of zeroes has no recognisable map mode
	_, err = cartridge.NewCartridge(make([]uint8, 0x8000))
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrUnknownMapping))
}

func TestChecksumMirroring(t *testing.T) {
	// a 3 byte image is summed as though it were 4 bytes long, with the
	// last byte mirrored
	test.ExpectEquality(t, cartridge.Checksum([]uint8{1, 2, 3}), uint16(1+2+3+3))
	test.ExpectEquality(t, cartridge.Checksum([]uint8{1, 2, 3, 4}), uint16(10))
}
