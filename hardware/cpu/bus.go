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
	"github.com/jetsetilly/gopher16/hardware/clocks"
)

func (mc *CPU) cycle(masterCycles int) {
	mc.LastResult.Cycles++
	mc.LastResult.MasterCycles += masterCycles
	if mc.cycleCallback == nil {
		return
	}
	if err := mc.cycleCallback(masterCycles); err != nil && mc.callbackErr == nil {
		mc.callbackErr = err
	}
}

func (mc *CPU) read(address uint32) uint8 {
	address &= 0xffffff
	v := mc.mem.Read(address)
	mc.cycle(mc.mem.AccessTime(address))
	return v
}

func (mc *CPU) write(address uint32, v uint8) {
	address &= 0xffffff
	mc.mem.Write(address, v)
	mc.cycle(mc.mem.AccessTime(address))
}

func (mc *CPU) idle() {
	mc.cycle(clocks.Internal)
}

// fetch the next byte of the instruction stream. the program counter wraps
// within the program bank.
func (mc *CPU) fetch() uint8 {
	v := mc.read(mc.PCAddress())
	mc.LastResult.InstructionData |= uint32(v) << (8 * (mc.LastResult.ByteCount - 1))
	mc.LastResult.ByteCount++
	mc.PC++
	return v
}

func (mc *CPU) fetch16() uint16 {
	lo := mc.fetch()
	hi := mc.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) fetch24() uint32 {
	lo := mc.fetch16()
	bank := mc.fetch()
	return uint32(bank)<<16 | uint32(lo)
}

func (mc *CPU) push(v uint8) {
	mc.write(uint32(mc.S), v)
	if mc.P.Emulation {
		mc.S.SetLo(mc.S.Lo() - 1)
	} else {
		mc.S--
	}
}

func (mc *CPU) push16(v uint16) {
	mc.push(uint8(v >> 8))
	mc.push(uint8(v))
}

func (mc *CPU) pull() uint8 {
	if mc.P.Emulation {
		mc.S.SetLo(mc.S.Lo() + 1)
	} else {
		mc.S++
	}
	return mc.read(uint32(mc.S))
}

func (mc *CPU) pull16() uint16 {
	lo := mc.pull()
	hi := mc.pull()
	return uint16(hi)<<8 | uint16(lo)
}

// the instructions added by the 65C816 address the stack with all sixteen
// bits of S, even in emulation mode. endWide() returns the stack to page one
// once the instruction has completed.
func (mc *CPU) pushWide(v uint8) {
	mc.write(uint32(mc.S), v)
	mc.S--
}

func (mc *CPU) push16Wide(v uint16) {
	mc.pushWide(uint8(v >> 8))
	mc.pushWide(uint8(v))
}

func (mc *CPU) pullWide() uint8 {
	mc.S++
	return mc.read(uint32(mc.S))
}

func (mc *CPU) pull16Wide() uint16 {
	lo := mc.pullWide()
	hi := mc.pullWide()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) endWide() {
	if mc.P.Emulation {
		mc.S.SetHi(0x01)
	}
}

// operand is an effective address. when bank0 is true the second byte of a
// 16-bit access wraps within bank zero. otherwise it crosses into the next
// bank.
type operand struct {
	addr  uint32
	bank0 bool
}

func (ea operand) next() uint32 {
	if ea.bank0 {
		return uint32(uint16(ea.addr) + 1)
	}
	return (ea.addr + 1) & 0xffffff
}

func (mc *CPU) readData(ea operand, narrow bool) uint16 {
	lo := mc.read(ea.addr)
	if narrow {
		return uint16(lo)
	}
	hi := mc.read(ea.next())
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) writeData(ea operand, v uint16, narrow bool) {
	mc.write(ea.addr, uint8(v))
	if !narrow {
		mc.write(ea.next(), uint8(v>>8))
	}
}

// read-modify-write instructions write the high byte first.
func (mc *CPU) writeDataReversed(ea operand, v uint16, narrow bool) {
	if !narrow {
		mc.write(ea.next(), uint8(v>>8))
	}
	mc.write(ea.addr, uint8(v))
}
