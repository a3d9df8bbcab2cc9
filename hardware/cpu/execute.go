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
	"github.com/jetsetilly/gopher16/hardware/cpu/registers"
)

// ExecuteInstruction steps the CPU forward one instruction. A pending
// interrupt is serviced instead of an instruction if one is due. If the CPU
// is stopped or waiting for an interrupt a single internal cycle is
// consumed.
//
// The cycleCallback function is called after every bus access and internal
// cycle, with the cost of the cycle in master clock cycles. The first error
// returned by the callback is returned once the instruction completes.
func (mc *CPU) ExecuteInstruction(cycleCallback func(int) error) error {
	mc.cycleCallback = cycleCallback
	mc.callbackErr = nil
	defer func() {
		mc.cycleCallback = nil
	}()

	mc.LastResult.Reset(mc.PCAddress())

	if mc.Stopped {
		mc.LastResult.Halted = true
		mc.idle()
		mc.LastResult.Final = true
		return mc.callbackErr
	}

	if mc.Waiting {
		if !mc.NMIPending && !mc.IRQLine {
			mc.LastResult.Halted = true
			mc.idle()
			mc.LastResult.Final = true
			return mc.callbackErr
		}
		mc.Waiting = false
	}

	if mc.NMIPending {
		mc.NMIPending = false
		mc.LastResult.Interrupt = "NMI"
		mc.interrupt(VectorNMI, VectorEmulationNMI, true)
		mc.LastResult.Final = true
		return mc.callbackErr
	}

	if mc.IRQLine && !mc.P.InterruptDisable {
		mc.LastResult.Interrupt = "IRQ"
		mc.interrupt(VectorIRQ, VectorEmulationIRQ, true)
		mc.LastResult.Final = true
		return mc.callbackErr
	}

	opcode := mc.read(mc.PCAddress())
	mc.PC++
	mc.LastResult.ByteCount = 1

	defn := &instructions.Definitions[opcode]
	mc.LastResult.Defn = defn
	mc.execute(defn)
	mc.LastResult.Final = true

	return mc.callbackErr
}

// interrupt performs the interrupt sequence. hardware interrupts begin with
// a dummy read of the next opcode and an internal cycle; software
// interrupts have already fetched the opcode and signature byte.
func (mc *CPU) interrupt(native uint16, emulation uint16, hardware bool) {
	if hardware {
		mc.read(mc.PCAddress())
		mc.idle()
	}

	if !mc.P.Emulation {
		mc.push(mc.PB)
	}
	mc.push16(mc.PC)

	p := mc.P.Value()
	if mc.P.Emulation && hardware {
		p &^= 0x10
	}
	mc.push(p)

	mc.P.InterruptDisable = true
	mc.P.Decimal = false
	mc.PB = 0

	vector := native
	if mc.P.Emulation {
		vector = emulation
	}
	lo := mc.read(uint32(vector))
	hi := mc.read(uint32(vector + 1))
	mc.PC = uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) branch(taken bool) {
	off := int8(mc.fetch())
	if !taken {
		return
	}
	mc.idle()
	target := mc.PC + uint16(int16(off))
	if mc.P.Emulation && target&0xff00 != mc.PC&0xff00 {
		mc.idle()
	}
	mc.PC = target
}

func (mc *CPU) transfer(dst *registers.Register, v uint16, narrow bool) {
	if narrow {
		*dst = registers.Register(v & 0xff)
	} else {
		*dst = registers.Register(v)
	}
	mc.P.SetZN(uint16(*dst), narrow)
}

func (mc *CPU) step(reg *registers.Register, delta uint16, narrow bool) {
	mask, _ := widthMask(narrow)
	*reg = registers.Register((uint16(*reg) + delta) & mask)
	mc.P.SetZN(uint16(*reg), narrow)
}

func (mc *CPU) pushRegister(v uint16, narrow bool) {
	mc.idle()
	if narrow {
		mc.push(uint8(v))
	} else {
		mc.push16(v)
	}
}

func (mc *CPU) pullRegister(narrow bool) uint16 {
	mc.idle()
	mc.idle()
	var v uint16
	if narrow {
		v = uint16(mc.pull())
	} else {
		v = mc.pull16()
	}
	mc.P.SetZN(v, narrow)
	return v
}

func (mc *CPU) execute(defn *instructions.Definition) {
	m8 := mc.P.MemorySelect
	x8 := mc.P.IndexSelect
	mode := defn.AddressingMode

	switch defn.Operator {
	case instructions.Lda, instructions.Adc, instructions.Sbc, instructions.And,
		instructions.Ora, instructions.Eor, instructions.Cmp, instructions.Bit:
		v := mc.readOperand(mode, m8)
		mc.accumulator(defn.Operator, v, m8, mode == instructions.ImmediateM)

	case instructions.Ldx:
		mc.transfer(&mc.X, mc.readOperand(mode, x8), x8)
	case instructions.Ldy:
		mc.transfer(&mc.Y, mc.readOperand(mode, x8), x8)
	case instructions.Cpx:
		mc.compare(mc.X.Value(x8), mc.readOperand(mode, x8), x8)
	case instructions.Cpy:
		mc.compare(mc.Y.Value(x8), mc.readOperand(mode, x8), x8)

	case instructions.Sta:
		mc.writeOperand(mode, mc.A.Value(m8), m8)
	case instructions.Stx:
		mc.writeOperand(mode, mc.X.Value(x8), x8)
	case instructions.Sty:
		mc.writeOperand(mode, mc.Y.Value(x8), x8)
	case instructions.Stz:
		mc.writeOperand(mode, 0, m8)

	case instructions.Asl, instructions.Lsr, instructions.Rol, instructions.Ror,
		instructions.Inc, instructions.Dec, instructions.Tsb, instructions.Trb:
		if mode == instructions.Accumulator {
			mc.idle()
			mc.A.Set(mc.modify(defn.Operator, mc.A.Value(m8), m8), m8)
			break
		}
		ea := mc.effectiveAddress(mode, true)
		v := mc.readData(ea, m8)
		mc.idle()
		mc.writeDataReversed(ea, mc.modify(defn.Operator, v, m8), m8)

	// branches
	case instructions.Bcc:
		mc.branch(!mc.P.Carry)
	case instructions.Bcs:
		mc.branch(mc.P.Carry)
	case instructions.Beq:
		mc.branch(mc.P.Zero)
	case instructions.Bne:
		mc.branch(!mc.P.Zero)
	case instructions.Bmi:
		mc.branch(mc.P.Negative)
	case instructions.Bpl:
		mc.branch(!mc.P.Negative)
	case instructions.Bvc:
		mc.branch(!mc.P.Overflow)
	case instructions.Bvs:
		mc.branch(mc.P.Overflow)
	case instructions.Bra:
		mc.branch(true)
	case instructions.Brl:
		off := mc.fetch16()
		mc.idle()
		mc.PC += off

	// jumps and subroutines
	case instructions.Jmp:
		switch mode {
		case instructions.Absolute:
			mc.PC = mc.fetch16()
		case instructions.AbsoluteIndirect:
			a := mc.fetch16()
			lo := mc.read(uint32(a))
			hi := mc.read(uint32(a + 1))
			mc.PC = uint16(hi)<<8 | uint16(lo)
		case instructions.AbsoluteXIndirect:
			a := mc.fetch16() + uint16(mc.X)
			mc.idle()
			lo := mc.read(uint32(mc.PB)<<16 | uint32(a))
			hi := mc.read(uint32(mc.PB)<<16 | uint32(a+1))
			mc.PC = uint16(hi)<<8 | uint16(lo)
		}
	case instructions.Jml:
		switch mode {
		case instructions.AbsoluteLong:
			mc.LoadPC(mc.fetch24())
		case instructions.AbsoluteIndirectLong:
			a := mc.fetch16()
			mc.LoadPC(mc.readLongPointer(a))
		}
	case instructions.Jsr:
		switch mode {
		case instructions.Absolute:
			a := mc.fetch16()
			mc.idle()
			mc.push16(mc.PC - 1)
			mc.PC = a
		case instructions.AbsoluteXIndirect:
			lo := mc.fetch()
			mc.push16Wide(mc.PC)
			mc.endWide()
			hi := mc.fetch()
			mc.idle()
			a := (uint16(hi)<<8 | uint16(lo)) + uint16(mc.X)
			plo := mc.read(uint32(mc.PB)<<16 | uint32(a))
			phi := mc.read(uint32(mc.PB)<<16 | uint32(a+1))
			mc.PC = uint16(phi)<<8 | uint16(plo)
		}
	case instructions.Jsl:
		a := mc.fetch16()
		mc.pushWide(mc.PB)
		mc.idle()
		bank := mc.fetch()
		mc.push16Wide(mc.PC - 1)
		mc.endWide()
		mc.PB = bank
		mc.PC = a
	case instructions.Rts:
		mc.idle()
		mc.idle()
		pc := mc.pull16()
		mc.idle()
		mc.PC = pc + 1
	case instructions.Rtl:
		mc.idle()
		mc.idle()
		pc := mc.pull16Wide()
		mc.PB = mc.pullWide()
		mc.endWide()
		mc.PC = pc + 1
	case instructions.Rti:
		mc.idle()
		mc.idle()
		mc.P.FromValue(mc.pull())
		mc.applyWidths()
		mc.PC = mc.pull16()
		if !mc.P.Emulation {
			mc.PB = mc.pull()
		}

	// software interrupts
	case instructions.Brk:
		mc.fetch()
		mc.interrupt(VectorBRK, VectorEmulationIRQ, false)
	case instructions.Cop:
		mc.fetch()
		mc.interrupt(VectorCOP, VectorEmulationCOP, false)

	// stack
	case instructions.Pha:
		mc.pushRegister(mc.A.Value(m8), m8)
	case instructions.Phx:
		mc.pushRegister(mc.X.Value(x8), x8)
	case instructions.Phy:
		mc.pushRegister(mc.Y.Value(x8), x8)
	case instructions.Php:
		mc.pushRegister(uint16(mc.P.Value()), true)
	case instructions.Phb:
		mc.pushRegister(uint16(mc.DB), true)
	case instructions.Phk:
		mc.pushRegister(uint16(mc.PB), true)
	case instructions.Phd:
		mc.idle()
		mc.push16Wide(uint16(mc.D))
		mc.endWide()
	case instructions.Pla:
		mc.A.Set(mc.pullRegister(m8), m8)
	case instructions.Plx:
		mc.X = registers.Register(mc.pullRegister(x8))
	case instructions.Ply:
		mc.Y = registers.Register(mc.pullRegister(x8))
	case instructions.Plb:
		mc.idle()
		mc.idle()
		mc.DB = mc.pullWide()
		mc.endWide()
		mc.P.SetZN(uint16(mc.DB), true)
	case instructions.Pld:
		mc.idle()
		mc.idle()
		mc.D = registers.Register(mc.pull16Wide())
		mc.endWide()
		mc.P.SetZN(uint16(mc.D), false)
	case instructions.Plp:
		mc.idle()
		mc.idle()
		mc.P.FromValue(mc.pull())
		mc.applyWidths()
	case instructions.Pea:
		mc.push16Wide(mc.fetch16())
		mc.endWide()
	case instructions.Pei:
		off := mc.fetch()
		mc.directPenalty()
		mc.push16Wide(mc.readDirectPointer(mc.directAddress(off, 0)))
		mc.endWide()
	case instructions.Per:
		off := mc.fetch16()
		mc.idle()
		mc.push16Wide(mc.PC + off)
		mc.endWide()

	// flags
	case instructions.Clc:
		mc.idle()
		mc.P.Carry = false
	case instructions.Sec:
		mc.idle()
		mc.P.Carry = true
	case instructions.Cli:
		mc.idle()
		mc.P.InterruptDisable = false
	case instructions.Sei:
		mc.idle()
		mc.P.InterruptDisable = true
	case instructions.Cld:
		mc.idle()
		mc.P.Decimal = false
	case instructions.Sed:
		mc.idle()
		mc.P.Decimal = true
	case instructions.Clv:
		mc.idle()
		mc.P.Overflow = false
	case instructions.Rep:
		v := mc.fetch()
		mc.idle()
		mc.P.FromValue(mc.P.Value() &^ v)
		mc.applyWidths()
	case instructions.Sep:
		v := mc.fetch()
		mc.idle()
		mc.P.FromValue(mc.P.Value() | v)
		mc.applyWidths()
	case instructions.Xce:
		mc.idle()
		mc.P.Carry, mc.P.Emulation = mc.P.Emulation, mc.P.Carry
		mc.applyWidths()

	// register transfers
	case instructions.Tax:
		mc.idle()
		mc.transfer(&mc.X, uint16(mc.A), x8)
	case instructions.Tay:
		mc.idle()
		mc.transfer(&mc.Y, uint16(mc.A), x8)
	case instructions.Txa:
		mc.idle()
		mc.A.Set(uint16(mc.X), m8)
		mc.P.SetZN(mc.A.Value(m8), m8)
	case instructions.Tya:
		mc.idle()
		mc.A.Set(uint16(mc.Y), m8)
		mc.P.SetZN(mc.A.Value(m8), m8)
	case instructions.Txy:
		mc.idle()
		mc.transfer(&mc.Y, uint16(mc.X), x8)
	case instructions.Tyx:
		mc.idle()
		mc.transfer(&mc.X, uint16(mc.Y), x8)
	case instructions.Tsx:
		mc.idle()
		mc.transfer(&mc.X, uint16(mc.S), x8)
	case instructions.Txs:
		mc.idle()
		mc.S = mc.X
		mc.applyWidths()
	case instructions.Tcs:
		mc.idle()
		mc.S = mc.A
		mc.applyWidths()
	case instructions.Tsc:
		mc.idle()
		mc.transfer(&mc.A, uint16(mc.S), false)
	case instructions.Tcd:
		mc.idle()
		mc.transfer(&mc.D, uint16(mc.A), false)
	case instructions.Tdc:
		mc.idle()
		mc.transfer(&mc.A, uint16(mc.D), false)
	case instructions.Xba:
		mc.idle()
		mc.idle()
		mc.A = registers.Register(uint16(mc.A.Lo())<<8 | uint16(mc.A.Hi()))
		mc.P.SetZN(uint16(mc.A.Lo()), true)

	case instructions.Inx:
		mc.idle()
		mc.step(&mc.X, 1, x8)
	case instructions.Iny:
		mc.idle()
		mc.step(&mc.Y, 1, x8)
	case instructions.Dex:
		mc.idle()
		mc.step(&mc.X, 0xffff, x8)
	case instructions.Dey:
		mc.idle()
		mc.step(&mc.Y, 0xffff, x8)

	// block moves transfer one byte per execution. the instruction repeats
	// by rewinding the program counter until the accumulator underflows
	case instructions.Mvn, instructions.Mvp:
		dst := mc.fetch()
		src := mc.fetch()
		mc.DB = dst
		v := mc.read(uint32(src)<<16 | uint32(mc.X))
		mc.write(uint32(dst)<<16|uint32(mc.Y), v)
		mc.idle()
		mc.idle()
		delta := uint16(1)
		if defn.Operator == instructions.Mvp {
			delta = 0xffff
		}
		mask, _ := widthMask(x8)
		mc.X = registers.Register((uint16(mc.X) + delta) & mask)
		mc.Y = registers.Register((uint16(mc.Y) + delta) & mask)
		mc.A--
		if mc.A != 0xffff {
			mc.PC -= 3
		}

	case instructions.Nop:
		mc.idle()
	case instructions.Wdm:
		mc.fetch()
	case instructions.Wai:
		mc.idle()
		mc.idle()
		mc.Waiting = true
	case instructions.Stp:
		mc.idle()
		mc.idle()
		mc.Stopped = true
	}
}
