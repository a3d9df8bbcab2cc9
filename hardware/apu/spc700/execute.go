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

package spc700

// operandAddress decodes the addressing mode used by columns 4 to 7 of the
// opcode table. the odd rows use the indexed form of the even row's mode.
func (s *SPC700) operandAddress(opcode uint8) uint16 {
	indexed := opcode&0x10 == 0x10

	switch opcode & 0x0f {
	case 0x04:
		d := s.fetch()
		if indexed {
			d += s.X
		}
		return s.dp(d)
	case 0x05:
		a := s.fetch16()
		if indexed {
			a += uint16(s.X)
		}
		return a
	case 0x06:
		if indexed {
			return s.fetch16() + uint16(s.Y)
		}
		return s.dp(s.X)
	case 0x07:
		if indexed {
			return s.readDP16(s.fetch()) + uint16(s.Y)
		}
		return s.readDP16(s.fetch() + s.X)
	}

	panic("spc700: not a memory operand column")
}

// memory bit operand of the form m.b
func (s *SPC700) memBit() (uint16, uint8) {
	w := s.fetch16()
	return w & 0x1fff, uint8(w >> 13)
}

// branch to the relative offset. returns the extra cycles taken
func (s *SPC700) branch(offset uint8, taken bool) int {
	if !taken {
		return 0
	}
	s.PC += uint16(int8(offset))
	return branchTaken
}

// Step executes one instruction and returns the number of cycles it took.
func (s *SPC700) Step() int {
	if s.Halted {
		return haltCycles
	}

	opcode := s.fetch()
	n := cycles[opcode]
	hi := opcode >> 4

	// the arithmetic group shares a decoding for rows 0 to B
	if hi < 0x0c {
		op := int(hi >> 1)
		odd := hi&0x01 == 0x01

		switch opcode & 0x0f {
		case 0x04, 0x05, 0x06, 0x07:
			s.A = s.alu(op, s.A, s.read(s.operandAddress(opcode)))
			return n
		case 0x08:
			if !odd {
				s.A = s.alu(op, s.A, s.fetch())
				return n
			}
			imm := s.fetch()
			d := s.fetch()
			r := s.alu(op, s.readDP(d), imm)
			if op != aluCMP {
				s.writeDP(d, r)
			}
			return n
		case 0x09:
			if !odd {
				src := s.fetch()
				dst := s.fetch()
				v := s.readDP(src)
				r := s.alu(op, s.readDP(dst), v)
				if op != aluCMP {
					s.writeDP(dst, r)
				}
				return n
			}
			v := s.readDP(s.Y)
			r := s.alu(op, s.readDP(s.X), v)
			if op != aluCMP {
				s.writeDP(s.X, r)
			}
			return n
		}
	}

	// shifts, increments and decrements of memory
	if hi < 0x0c && (opcode&0x0f == 0x0b || opcode&0x0f == 0x0c && hi&0x01 == 0x00) {
		var addr uint16
		if opcode&0x0f == 0x0b {
			d := s.fetch()
			if hi&0x01 == 0x01 {
				d += s.X
			}
			addr = s.dp(d)
		} else {
			addr = s.fetch16()
		}
		v := s.read(addr)
		switch hi >> 1 {
		case 4:
			v--
			s.setZN(v)
		case 5:
			v++
			s.setZN(v)
		default:
			v = s.shift(int(hi>>1), v)
		}
		s.write(addr, v)
		return n
	}

	// TCALL, SET1, CLR1, BBS and BBC occupy columns 1 to 3 of every row
	switch opcode & 0x0f {
	case 0x01:
		s.pushPC()
		s.PC = s.read16(TCallVector - uint16(hi)*2)
		return n
	case 0x02:
		d := s.fetch()
		bit := uint8(1) << (opcode >> 5)
		v := s.readDP(d)
		if hi&0x01 == 0x00 {
			v |= bit
		} else {
			v &^= bit
		}
		s.writeDP(d, v)
		return n
	case 0x03:
		d := s.fetch()
		rel := s.fetch()
		set := s.readDP(d)&(1<<(opcode>>5)) != 0
		return n + s.branch(rel, set == (hi&0x01 == 0x00))
	}

	// the MOV forms of columns 4 to 7 in rows C to F
	if hi >= 0x0c && opcode&0x0f >= 0x04 && opcode&0x0f <= 0x07 {
		addr := s.operandAddress(opcode)
		if hi < 0x0e {
			s.write(addr, s.A)
		} else {
			s.A = s.read(addr)
			s.setZN(s.A)
		}
		return n
	}

	// conditional branches in column 0 of the odd rows
	if opcode&0x1f == 0x10 {
		rel := s.fetch()
		var taken bool
		switch hi {
		case 0x1:
			taken = !s.flag(FlagN)
		case 0x3:
			taken = s.flag(FlagN)
		case 0x5:
			taken = !s.flag(FlagV)
		case 0x7:
			taken = s.flag(FlagV)
		case 0x9:
			taken = !s.flag(FlagC)
		case 0xb:
			taken = s.flag(FlagC)
		case 0xd:
			taken = !s.flag(FlagZ)
		case 0xf:
			taken = s.flag(FlagZ)
		}
		return n + s.branch(rel, taken)
	}

	switch opcode {
	case 0x00: // NOP
	case 0x20: // CLRP
		s.setFlag(FlagP, false)
	case 0x40: // SETP
		s.setFlag(FlagP, true)
	case 0x60: // CLRC
		s.setFlag(FlagC, false)
	case 0x80: // SETC
		s.setFlag(FlagC, true)
	case 0xa0: // EI
		s.setFlag(FlagI, true)
	case 0xc0: // DI
		s.setFlag(FlagI, false)
	case 0xe0: // CLRV
		s.setFlag(FlagV, false)
		s.setFlag(FlagH, false)

	case 0xc8: // CMP X,#i
		s.compare(s.X, s.fetch())
	case 0xd8: // MOV d,X
		s.writeDP(s.fetch(), s.X)
	case 0xe8: // MOV A,#i
		s.A = s.fetch()
		s.setZN(s.A)
	case 0xf8: // MOV X,d
		s.X = s.readDP(s.fetch())
		s.setZN(s.X)

	case 0xc9: // MOV !a,X
		s.write(s.fetch16(), s.X)
	case 0xd9: // MOV d+Y,X
		s.writeDP(s.fetch()+s.Y, s.X)
	case 0xe9: // MOV X,!a
		s.X = s.read(s.fetch16())
		s.setZN(s.X)
	case 0xf9: // MOV X,d+Y
		s.X = s.readDP(s.fetch() + s.Y)
		s.setZN(s.X)

	case 0x0a, 0x2a, 0x4a, 0x6a, 0x8a, 0xaa: // OR1, AND1, EOR1, MOV1 into carry
		addr, bit := s.memBit()
		v := s.read(addr)>>bit&0x01 == 0x01
		if opcode == 0x2a || opcode == 0x6a {
			v = !v
		}
		c := s.flag(FlagC)
		switch opcode {
		case 0x0a, 0x2a:
			c = c || v
		case 0x4a, 0x6a:
			c = c && v
		case 0x8a:
			c = c != v
		case 0xaa:
			c = v
		}
		s.setFlag(FlagC, c)
	case 0xca: // MOV1 m.b,C
		addr, bit := s.memBit()
		v := s.read(addr) &^ (1 << bit)
		if s.flag(FlagC) {
			v |= 1 << bit
		}
		s.write(addr, v)
	case 0xea: // NOT1 m.b
		addr, bit := s.memBit()
		s.write(addr, s.read(addr)^(1<<bit))

	case 0x1a: // DECW d
		d := s.fetch()
		w := s.readDP16(d) - 1
		s.writeDP16(d, w)
		s.setZN16(w)
	case 0x3a: // INCW d
		d := s.fetch()
		w := s.readDP16(d) + 1
		s.writeDP16(d, w)
		s.setZN16(w)
	case 0x5a: // CMPW YA,d
		s.cmpw(s.readDP16(s.fetch()))
	case 0x7a: // ADDW YA,d
		s.addw(s.readDP16(s.fetch()))
	case 0x9a: // SUBW YA,d
		s.subw(s.readDP16(s.fetch()))
	case 0xba: // MOVW YA,d
		s.setYA(s.readDP16(s.fetch()))
		s.setZN16(s.YA())
	case 0xda: // MOVW d,YA
		s.writeDP16(s.fetch(), s.YA())
	case 0xfa: // MOV dd,ds
		src := s.fetch()
		dst := s.fetch()
		s.writeDP(dst, s.readDP(src))

	case 0xcb: // MOV d,Y
		s.writeDP(s.fetch(), s.Y)
	case 0xdb: // MOV d+X,Y
		s.writeDP(s.fetch()+s.X, s.Y)
	case 0xeb: // MOV Y,d
		s.Y = s.readDP(s.fetch())
		s.setZN(s.Y)
	case 0xfb: // MOV Y,d+X
		s.Y = s.readDP(s.fetch() + s.X)
		s.setZN(s.Y)

	case 0x1c, 0x3c, 0x5c, 0x7c: // ASL A, ROL A, LSR A, ROR A
		s.A = s.shift(int(hi>>1), s.A)
	case 0x9c: // DEC A
		s.A--
		s.setZN(s.A)
	case 0xbc: // INC A
		s.A++
		s.setZN(s.A)
	case 0xcc: // MOV !a,Y
		s.write(s.fetch16(), s.Y)
	case 0xdc: // DEC Y
		s.Y--
		s.setZN(s.Y)
	case 0xec: // MOV Y,!a
		s.Y = s.read(s.fetch16())
		s.setZN(s.Y)
	case 0xfc: // INC Y
		s.Y++
		s.setZN(s.Y)

	case 0x0d: // PUSH PSW
		s.push(s.PSW)
	case 0x2d: // PUSH A
		s.push(s.A)
	case 0x4d: // PUSH X
		s.push(s.X)
	case 0x6d: // PUSH Y
		s.push(s.Y)
	case 0x1d: // DEC X
		s.X--
		s.setZN(s.X)
	case 0x3d: // INC X
		s.X++
		s.setZN(s.X)
	case 0x5d: // MOV X,A
		s.X = s.A
		s.setZN(s.X)
	case 0x7d: // MOV A,X
		s.A = s.X
		s.setZN(s.A)
	case 0x8d: // MOV Y,#i
		s.Y = s.fetch()
		s.setZN(s.Y)
	case 0x9d: // MOV X,SP
		s.X = s.SP
		s.setZN(s.X)
	case 0xad: // CMP Y,#i
		s.compare(s.Y, s.fetch())
	case 0xbd: // MOV SP,X
		s.SP = s.X
	case 0xcd: // MOV X,#i
		s.X = s.fetch()
		s.setZN(s.X)
	case 0xdd: // MOV A,Y
		s.A = s.Y
		s.setZN(s.A)
	case 0xed: // NOTC
		s.setFlag(FlagC, !s.flag(FlagC))
	case 0xfd: // MOV Y,A
		s.Y = s.A
		s.setZN(s.Y)

	case 0x0e: // TSET1 !a
		addr := s.fetch16()
		v := s.read(addr)
		s.setZN(s.A - v)
		s.write(addr, v|s.A)
	case 0x4e: // TCLR1 !a
		addr := s.fetch16()
		v := s.read(addr)
		s.setZN(s.A - v)
		s.write(addr, v&^s.A)
	case 0x1e: // CMP X,!a
		s.compare(s.X, s.read(s.fetch16()))
	case 0x3e: // CMP X,d
		s.compare(s.X, s.readDP(s.fetch()))
	case 0x5e: // CMP Y,!a
		s.compare(s.Y, s.read(s.fetch16()))
	case 0x7e: // CMP Y,d
		s.compare(s.Y, s.readDP(s.fetch()))
	case 0x2e: // CBNE d,r
		d := s.fetch()
		rel := s.fetch()
		n += s.branch(rel, s.A != s.readDP(d))
	case 0xde: // CBNE d+X,r
		d := s.fetch() + s.X
		rel := s.fetch()
		n += s.branch(rel, s.A != s.readDP(d))
	case 0x6e: // DBNZ d,r
		d := s.fetch()
		rel := s.fetch()
		v := s.readDP(d) - 1
		s.writeDP(d, v)
		n += s.branch(rel, v != 0)
	case 0xfe: // DBNZ Y,r
		rel := s.fetch()
		s.Y--
		n += s.branch(rel, s.Y != 0)
	case 0x8e: // POP PSW
		s.PSW = s.pull()
	case 0xae: // POP A
		s.A = s.pull()
	case 0xce: // POP X
		s.X = s.pull()
	case 0xee: // POP Y
		s.Y = s.pull()
	case 0x9e: // DIV YA,X
		s.div()
	case 0xbe: // DAS
		s.das()

	case 0x0f: // BRK
		s.pushPC()
		s.push(s.PSW)
		s.setFlag(FlagB, true)
		s.setFlag(FlagI, false)
		s.PC = s.read16(TCallVector)
	case 0x1f: // JMP [!a+X]
		s.PC = s.read16(s.fetch16() + uint16(s.X))
	case 0x2f: // BRA
		s.PC += uint16(int8(s.fetch()))
	case 0x3f: // CALL !a
		addr := s.fetch16()
		s.pushPC()
		s.PC = addr
	case 0x4f: // PCALL u
		u := s.fetch()
		s.pushPC()
		s.PC = 0xff00 | uint16(u)
	case 0x5f: // JMP !a
		s.PC = s.fetch16()
	case 0x6f: // RET
		s.pullPC()
	case 0x7f: // RETI
		s.PSW = s.pull()
		s.pullPC()
	case 0x8f: // MOV d,#i
		imm := s.fetch()
		s.writeDP(s.fetch(), imm)
	case 0x9f: // XCN
		s.A = s.A>>4 | s.A<<4
		s.setZN(s.A)
	case 0xaf: // MOV (X)+,A
		s.writeDP(s.X, s.A)
		s.X++
	case 0xbf: // MOV A,(X)+
		s.A = s.readDP(s.X)
		s.X++
		s.setZN(s.A)
	case 0xcf: // MUL YA
		s.setYA(uint16(s.Y) * uint16(s.A))
		s.setZN(s.Y)
	case 0xdf: // DAA
		s.daa()
	case 0xef, 0xff: // SLEEP, STOP
		s.Halted = true
	}

	return n
}
