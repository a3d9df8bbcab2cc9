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

package hardware

import (
	"github.com/jetsetilly/gopher16/hardware/coprocessor/faults"
	"github.com/jetsetilly/gopher16/hardware/input"
	"github.com/jetsetilly/gopher16/hardware/memory"
	"github.com/jetsetilly/gopher16/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher16/logger"
)

// Read implements the cpubus.Memory interface. The value read is driven onto
// the data bus. Unmapped addresses and write-only registers read as the
// value left on the bus by the previous access.
func (c *Console) Read(address uint32) uint8 {
	data := c.read(address)
	c.Mem.OpenBus = data
	return data
}

func (c *Console) read(address uint32) uint8 {
	openBus := c.Mem.OpenBus

	r, offset := c.memmap.Lookup(address)
	if r == nil {
		return openBus
	}

	switch r.Owner {
	case memorymap.WRAM:
		return c.Mem.ReadWRAM(offset)
	case memorymap.WRAMPort:
		return c.Mem.ReadPort(offset)
	case memorymap.PPU:
		return c.PPU.Read(uint16(offset))
	case memorymap.APU:
		c.APU.Catchup()
		return c.APU.ReadPort(int(offset))
	case memorymap.Joypad:
		return c.Ports.Read(input.PortID(offset), openBus)
	case memorymap.CPUIO:
		return c.CPUIO.Read(uint16(offset), openBus)
	case memorymap.DMA:
		return c.DMA.Read(uint16(offset), openBus)
	case memorymap.ROM:
		return c.Cart.ReadROM(offset)
	case memorymap.SRAM:
		if d, ok := c.Cart.ReadSRAM(offset); ok {
			return d
		}
		return openBus
	case memorymap.Coprocessor:
		cp := c.coprocs[r.ID].cp
		d, err := cp.Read(address)
		if err != nil {
			c.fault(cp.ID(), faults.ReadFault, address, err)
			return openBus
		}
		return d
	}

	return openBus
}

// Write implements the cpubus.Memory interface. The value written is driven
// onto the data bus.
func (c *Console) Write(address uint32, data uint8) {
	c.Mem.OpenBus = data

	r, offset := c.memmap.Lookup(address)
	if r == nil {
		return
	}

	switch r.Owner {
	case memorymap.WRAM:
		c.Mem.WriteWRAM(offset, data)
	case memorymap.WRAMPort:
		c.Mem.WritePort(offset, data)
	case memorymap.PPU:
		c.PPU.Write(uint16(offset), data)
	case memorymap.APU:
		// the APU runs the cycles owed from before the write before the
		// new value becomes visible
		c.APU.Catchup()
		c.APU.WritePort(int(offset), data)
	case memorymap.Joypad:
		// $4017 is read only
		if offset == 0 {
			c.Ports.Write(data)
		}
	case memorymap.CPUIO:
		c.CPUIO.Write(uint16(offset), data)
	case memorymap.DMA:
		c.DMA.Write(uint16(offset), data)
	case memorymap.ROM:
		logger.Logf(c.env, "console", "write to ROM at %06x", address)
	case memorymap.SRAM:
		if !c.Cart.WriteSRAM(offset, data) {
			logger.Logf(c.env, "console", "write to missing SRAM at %06x", address)
		}
	case memorymap.Coprocessor:
		cp := c.coprocs[r.ID].cp
		if err := cp.Write(address, data); err != nil {
			c.fault(cp.ID(), faults.WriteFault, address, err)
		}
	}
}

// AccessTime implements the cpubus.Memory interface.
func (c *Console) AccessTime(address uint32) int {
	return memory.AccessTime(address, c.CPUIO.FastROM)
}

// fault adds an entry to the fault log. The fault is logged the first time
// it is seen.
func (c *Console) fault(coproc string, category faults.Category, address uint32, err error) {
	e := c.Faults.NewEntry(coproc, category, address, err)
	if e.Count == 1 {
		logger.Log(c.env, "fault", e.String())
	}
}

// dmaBus is the view of the console used by the DMA engine. It implements
// the dma.Bus interface.
type dmaBus struct {
	c *Console
}

func (b dmaBus) ReadA(address uint32) uint8 {
	return b.c.Read(address)
}

func (b dmaBus) WriteA(address uint32, data uint8) {
	b.c.Write(address, data)
}

func (b dmaBus) ReadB(address uint8) uint8 {
	return b.c.Read(0x002100 | uint32(address))
}

func (b dmaBus) WriteB(address uint8, data uint8) {
	b.c.Write(0x002100|uint32(address), data)
}

func (b dmaBus) OpenBus() uint8 {
	return b.c.Mem.OpenBus
}

// Tick advances the console by the cost of a DMA step. HDMA is allowed to
// interrupt a general DMA between steps.
func (b dmaBus) Tick(masterCycles int) {
	b.c.advance(masterCycles)
	if !b.c.inHDMA {
		b.c.runHDMA()
	}
}
