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

package cpu

import (
	"github.com/jetsetilly/gopher16/hardware/cpu/instructions"
)

// an extra internal cycle is taken by direct page modes when the low byte
// of the direct page register is not zero.
func (mc *CPU) directPenalty() {
	if mc.D.Lo() != 0 {
		mc.idle()
	}
}

// in emulation mode, with the low byte of the direct page register zero,
// direct page addressing wraps within the page.
func (mc *CPU) directAddress(offset uint8, index uint16) uint16 {
	if mc.P.Emulation && mc.D.Lo() == 0 {
		return uint16(mc.D)&0xff00 | uint16(offset+uint8(index))
	}
	return uint16(mc.D) + uint16(offset) + index
}

// the address of the byte following a direct page address.
func (mc *CPU) directNext(address uint16) uint16 {
	if mc.P.Emulation && mc.D.Lo() == 0 {
		return address&0xff00 | uint16(uint8(address+1))
	}
	return address + 1
}

func (mc *CPU) readDirectPointer(address uint16) uint16 {
	lo := mc.read(uint32(address))
	hi := mc.read(uint32(mc.directNext(address)))
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) readLongPointer(address uint16) uint32 {
	lo := mc.read(uint32(address))
	hi := mc.read(uint32(address + 1))
	bank := mc.read(uint32(address + 2))
	return uint32(bank)<<16 | uint32(hi)<<8 | uint32(lo)
}

// indexed modes take an extra internal cycle when the index register is
// 16-bit or when the index crosses a page. stores and read-modify-write
// instructions always take the extra cycle.
func (mc *CPU) indexPenalty(base uint32, ea uint32, always bool) {
	if always || !mc.P.IndexSelect || base&0xffff00 != ea&0xffff00 {
		mc.idle()
	}
}

func (mc *CPU) dataBank(address uint16) uint32 {
	return uint32(mc.DB)<<16 | uint32(address)
}

// effectiveAddress resolves the memory operand of an instruction. Immediate
// and implied modes are not handled here. The always argument is true for
// stores and read-modify-write instructions.
func (mc *CPU) effectiveAddress(mode instructions.AddressingMode, always bool) operand {
	switch mode {
	case instructions.Direct:
		off := mc.fetch()
		mc.directPenalty()
		return operand{addr: uint32(mc.directAddress(off, 0)), bank0: true}

	case instructions.DirectX, instructions.DirectY:
		off := mc.fetch()
		mc.directPenalty()
		mc.idle()
		idx := uint16(mc.X)
		if mode == instructions.DirectY {
			idx = uint16(mc.Y)
		}
		return operand{addr: uint32(mc.directAddress(off, idx)), bank0: true}

	case instructions.DirectIndirect:
		off := mc.fetch()
		mc.directPenalty()
		ptr := mc.readDirectPointer(mc.directAddress(off, 0))
		return operand{addr: mc.dataBank(ptr)}

	case instructions.DirectXIndirect:
		off := mc.fetch()
		mc.directPenalty()
		mc.idle()
		ptr := mc.readDirectPointer(mc.directAddress(off, uint16(mc.X)))
		return operand{addr: mc.dataBank(ptr)}

	case instructions.DirectIndirectY:
		off := mc.fetch()
		mc.directPenalty()
		base := mc.dataBank(mc.readDirectPointer(mc.directAddress(off, 0)))
		ea := (base + uint32(mc.Y)) & 0xffffff
		mc.indexPenalty(base, ea, always)
		return operand{addr: ea}

	case instructions.DirectIndirectLong:
		off := mc.fetch()
		mc.directPenalty()
		return operand{addr: mc.readLongPointer(mc.directAddress(off, 0))}

	case instructions.DirectIndirectLongY:
		off := mc.fetch()
		mc.directPenalty()
		base := mc.readLongPointer(mc.directAddress(off, 0))
		return operand{addr: (base + uint32(mc.Y)) & 0xffffff}

	case instructions.Absolute:
		return operand{addr: mc.dataBank(mc.fetch16())}

	case instructions.AbsoluteX, instructions.AbsoluteY:
		base := mc.dataBank(mc.fetch16())
		idx := uint32(mc.X)
		if mode == instructions.AbsoluteY {
			idx = uint32(mc.Y)
		}
		ea := (base + idx) & 0xffffff
		mc.indexPenalty(base, ea, always)
		return operand{addr: ea}

	case instructions.AbsoluteLong:
		return operand{addr: mc.fetch24()}

	case instructions.AbsoluteLongX:
		return operand{addr: (mc.fetch24() + uint32(mc.X)) & 0xffffff}

	case instructions.StackRelative:
		off := mc.fetch()
		mc.idle()
		return operand{addr: uint32(uint16(mc.S) + uint16(off)), bank0: true}

	case instructions.StackRelativeIndirectY:
		off := mc.fetch()
		mc.idle()
		a := uint16(mc.S) + uint16(off)
		lo := mc.read(uint32(a))
		hi := mc.read(uint32(a + 1))
		mc.idle()
		base := mc.dataBank(uint16(hi)<<8 | uint16(lo))
		return operand{addr: (base + uint32(mc.Y)) & 0xffffff}
	}

	panic("cpu: addressing mode does not have an effective address: " + mode.String())
}

// readOperand returns the operand of a read instruction, either from the
// instruction stream or from memory.
func (mc *CPU) readOperand(mode instructions.AddressingMode, narrow bool) uint16 {
	switch mode {
	case instructions.ImmediateM, instructions.ImmediateX, instructions.Immediate8:
		if narrow {
			return uint16(mc.fetch())
		}
		return mc.fetch16()
	}
	return mc.readData(mc.effectiveAddress(mode, false), narrow)
}

func (mc *CPU) writeOperand(mode instructions.AddressingMode, v uint16, narrow bool) {
	mc.writeData(mc.effectiveAddress(mode, true), v, narrow)
}
