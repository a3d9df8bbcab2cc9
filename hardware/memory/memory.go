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

// Package memory implements the console's work RAM and the static parts of
// the memory map that do not depend on the cartridge.
package memory

import (
	"github.com/jetsetilly/gopher16/hardware/clocks"
	"github.com/jetsetilly/gopher16/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher16/random"
)

// WRAMSize is the size of the console's work RAM.
const WRAMSize = 0x20000

// Memory is the console's work RAM, the WRAM access port and the open bus
// latch.
type Memory struct {
	WRAM [WRAMSize]uint8

	// the 17bit address used by the WRAM port at 2180
	PortAddress uint32

	// the last value driven on the data bus. unmapped addresses read as
	// this value
	OpenBus uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{}
}

// Snapshot creates a copy of Memory in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}

// Reset work RAM. If rnd is not nil then work RAM is filled with random
// data.
func (mem *Memory) Reset(rnd *random.Random) {
	if rnd != nil {
		rnd.FillBytes(mem.WRAM[:])
	} else {
		for i := range mem.WRAM {
			mem.WRAM[i] = 0x00
		}
	}
	mem.PortAddress = 0
	mem.OpenBus = 0
}

// ReadWRAM returns the value at the offset in work RAM.
func (mem *Memory) ReadWRAM(offset uint32) uint8 {
	return mem.WRAM[offset&(WRAMSize-1)]
}

// WriteWRAM writes the value to the offset in work RAM.
func (mem *Memory) WriteWRAM(offset uint32, data uint8) {
	mem.WRAM[offset&(WRAMSize-1)] = data
}

// ReadPort services reads of the WRAM port registers. The register is the
// offset from 2180. Only 2180 can be read, the other registers return the
// open bus value.
func (mem *Memory) ReadPort(register uint32) uint8 {
	if register != 0 {
		return mem.OpenBus
	}
	v := mem.WRAM[mem.PortAddress]
	mem.PortAddress = (mem.PortAddress + 1) & (WRAMSize - 1)
	return v
}

// WritePort services writes to the WRAM port registers. The register is the
// offset from 2180.
func (mem *Memory) WritePort(register uint32, data uint8) {
	switch register {
	case 0:
		mem.WRAM[mem.PortAddress] = data
		mem.PortAddress = (mem.PortAddress + 1) & (WRAMSize - 1)
	case 1:
		mem.PortAddress = (mem.PortAddress & 0x1ff00) | uint32(data)
	case 2:
		mem.PortAddress = (mem.PortAddress & 0x100ff) | uint32(data)<<8
	case 3:
		mem.PortAddress = (mem.PortAddress & 0x0ffff) | uint32(data&0x01)<<16
	}
}

// AccessTime returns the number of master cycles required to access the
// address. The fastROM argument is the value of the MEMSEL register.
func AccessTime(address uint32, fastROM bool) int {
	bank := (address >> 16) & 0xff
	addr := address & 0xffff

	if bank&0x40 == 0x00 {
		switch {
		case addr < 0x2000:
			return clocks.Slow
		case addr < 0x4000:
			return clocks.Fast
		case addr < 0x4200:
			return clocks.XSlow
		case addr < 0x6000:
			return clocks.Fast
		case addr < 0x8000:
			return clocks.Slow
		}
	}

	if bank&0x80 == 0x80 && fastROM {
		return clocks.Fast
	}
	return clocks.Slow
}

func systemWRAMOffset(address uint32) uint32 {
	return address & 0x1fff
}

func wramOffset(address uint32) uint32 {
	return address & 0x1ffff
}

func registerOffset(base uint32) func(uint32) uint32 {
	return func(address uint32) uint32 {
		return (address & 0xffff) - base
	}
}

// SystemRegions returns the memory map regions that are the same for every
// cartridge.
func SystemRegions() []memorymap.Region {
	var r []memorymap.Region

	// the system area is repeated in two sets of banks
	for _, banks := range [][2]uint8{{0x00, 0x3f}, {0x80, 0xbf}} {
		lo, hi := banks[0], banks[1]
		r = append(r,
			memorymap.Region{Owner: memorymap.WRAM, BankLo: lo, BankHi: hi, AddrLo: 0x0000, AddrHi: 0x1fff, Offset: systemWRAMOffset},
			memorymap.Region{Owner: memorymap.PPU, BankLo: lo, BankHi: hi, AddrLo: 0x2100, AddrHi: 0x213f, Offset: registerOffset(0x2100)},
			memorymap.Region{Owner: memorymap.APU, BankLo: lo, BankHi: hi, AddrLo: 0x2140, AddrHi: 0x217f, Offset: registerOffset(0x2140)},
			memorymap.Region{Owner: memorymap.WRAMPort, BankLo: lo, BankHi: hi, AddrLo: 0x2180, AddrHi: 0x2183, Offset: registerOffset(0x2180)},
			memorymap.Region{Owner: memorymap.Joypad, BankLo: lo, BankHi: hi, AddrLo: 0x4016, AddrHi: 0x4017, Offset: registerOffset(0x4016)},
			memorymap.Region{Owner: memorymap.CPUIO, BankLo: lo, BankHi: hi, AddrLo: 0x4200, AddrHi: 0x420a, Offset: registerOffset(0x4200)},
			memorymap.Region{Owner: memorymap.DMA, BankLo: lo, BankHi: hi, AddrLo: 0x420b, AddrHi: 0x420c, Offset: registerOffset(0x4200)},
			memorymap.Region{Owner: memorymap.CPUIO, BankLo: lo, BankHi: hi, AddrLo: 0x420d, AddrHi: 0x421f, Offset: registerOffset(0x4200)},
			memorymap.Region{Owner: memorymap.DMA, BankLo: lo, BankHi: hi, AddrLo: 0x4300, AddrHi: 0x437f, Offset: registerOffset(0x4200)},
		)
	}

	r = append(r, memorymap.Region{Owner: memorymap.WRAM, BankLo: 0x7e, BankHi: 0x7f, AddrLo: 0x0000, AddrHi: 0xffff, Offset: wramOffset})

	return r
}
