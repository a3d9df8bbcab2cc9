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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher16/hardware/clocks"
	"github.com/jetsetilly/gopher16/hardware/memory"
	"github.com/jetsetilly/gopher16/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher16/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher16/random"
	"github.com/jetsetilly/gopher16/test"
)

func TestSystemMap(t *testing.T) {
	cart, err := cartridge.NewCartridge(cartridge.Synthetic{Title: "MAP"}.Image())
	test.DemandSuccess(t, err)

	regions := append(memory.SystemRegions(), cart.Regions()...)
	m, err := memorymap.Build(regions)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, m.Owner(0x7e0000), memorymap.WRAM)
	test.ExpectEquality(t, m.Owner(0x801fff), memorymap.WRAM)
	test.ExpectEquality(t, m.Owner(0x002118), memorymap.PPU)
	test.ExpectEquality(t, m.Owner(0x002143), memorymap.APU)
	test.ExpectEquality(t, m.Owner(0x002180), memorymap.WRAMPort)
	test.ExpectEquality(t, m.Owner(0x004016), memorymap.Joypad)
	test.ExpectEquality(t, m.Owner(0x004200), memorymap.CPUIO)
	test.ExpectEquality(t, m.Owner(0x00420b), memorymap.DMA)
	test.ExpectEquality(t, m.Owner(0x00420d), memorymap.CPUIO)
	test.ExpectEquality(t, m.Owner(0x004305), memorymap.DMA)
	test.ExpectEquality(t, m.Owner(0x005000), memorymap.Unmapped)
	test.ExpectEquality(t, m.Owner(0x002000), memorymap.Unmapped)

	// system WRAM in bank 00 is the first 8k of bank 7e
	_, offset := m.Lookup(0x001234)
	test.ExpectEquality(t, offset, uint32(0x1234))
	_, offset = m.Lookup(0x7f0001)
	test.ExpectEquality(t, offset, uint32(0x10001))

	_, offset = m.Lookup(0x00210b)
	test.ExpectEquality(t, offset, uint32(0x0b))
	_, offset = m.Lookup(0x004312)
	test.ExpectEquality(t, offset, uint32(0x112))
}

func TestWRAMPort(t *testing.T) {
	mem := memory.NewMemory()
	mem.Reset(nil)

	mem.WritePort(1, 0xff)
	mem.WritePort(2, 0xff)
	mem.WritePort(3, 0x01)
	test.ExpectEquality(t, mem.PortAddress, uint32(0x1ffff))

	mem.WritePort(0, 0xaa)
	mem.WritePort(0, 0xbb)

	// port address wraps to the start of WRAM
	test.ExpectEquality(t, mem.PortAddress, uint32(0x00001))
	test.ExpectEquality(t, mem.ReadWRAM(0x1ffff), uint8(0xaa))
	test.ExpectEquality(t, mem.ReadWRAM(0x00000), uint8(0xbb))

	mem.WritePort(1, 0x00)
	mem.WritePort(2, 0x00)
	mem.WritePort(3, 0x00)
	test.ExpectEquality(t, mem.ReadPort(0), uint8(0xbb))

	// registers other than 2180 are write only
	mem.OpenBus = 0x21
	test.ExpectEquality(t, mem.ReadPort(1), uint8(0x21))
}

func TestAccessTime(t *testing.T) {
	test.ExpectEquality(t, memory.AccessTime(0x000000, false), clocks.Slow)
	test.ExpectEquality(t, memory.AccessTime(0x002100, false), clocks.Fast)
	test.ExpectEquality(t, memory.AccessTime(0x004016, false), clocks.XSlow)
	test.ExpectEquality(t, memory.AccessTime(0x004200, false), clocks.Fast)
	test.ExpectEquality(t, memory.AccessTime(0x006000, false), clocks.Slow)
	test.ExpectEquality(t, memory.AccessTime(0x008000, true), clocks.Slow)
	test.ExpectEquality(t, memory.AccessTime(0x808000, false), clocks.Slow)
	test.ExpectEquality(t, memory.AccessTime(0x808000, true), clocks.Fast)
	test.ExpectEquality(t, memory.AccessTime(0x7e0000, true), clocks.Slow)
	test.ExpectEquality(t, memory.AccessTime(0xc00000, true), clocks.Fast)
}

func TestRandomReset(t *testing.T) {
	rnd := random.NewRandom(0)
	rnd.ZeroSeed = true

	a := memory.NewMemory()
	a.Reset(rnd)
	b := memory.NewMemory()
	b.Reset(rnd)
	test.ExpectSuccess(t, a.WRAM == b.WRAM)

	snp := a.Snapshot()
	a.WriteWRAM(0, ^a.ReadWRAM(0))
	test.ExpectInequality(t, snp.ReadWRAM(0), a.ReadWRAM(0))
}
