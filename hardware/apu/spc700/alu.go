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

// operations shared by the arithmetic group of opcodes. the operation is
// selected by the high three bits of the opcode
const (
	aluOR = iota
	aluAND
	aluEOR
	aluCMP
	aluADC
	aluSBC
)

// alu returns the result of the operation. for aluCMP the first operand is
// returned unchanged
func (s *SPC700) alu(op int, a uint8, b uint8) uint8 {
	switch op {
	case aluOR:
		a |= b
		s.setZN(a)
	case aluAND:
		a &= b
		s.setZN(a)
	case aluEOR:
		a ^= b
		s.setZN(a)
	case aluCMP:
		s.compare(a, b)
	case aluADC:
		a = s.adc(a, b)
	case aluSBC:
		a = s.sbc(a, b)
	}
	return a
}

func (s *SPC700) adc(a uint8, b uint8) uint8 {
	var c uint16
	if s.flag(FlagC) {
		c = 1
	}
	r := uint16(a) + uint16(b) + c
	s.setFlag(FlagV, ^(a^b)&(a^uint8(r))&0x80 == 0x80)
	s.setFlag(FlagH, uint16(a&0x0f)+uint16(b&0x0f)+c > 0x0f)
	s.setFlag(FlagC, r > 0xff)
	s.setZN(uint8(r))
	return uint8(r)
}

func (s *SPC700) sbc(a uint8, b uint8) uint8 {
	return s.adc(a, ^b)
}

func (s *SPC700) compare(a uint8, b uint8) {
	r := int(a) - int(b)
	s.setFlag(FlagC, r >= 0)
	s.setZN(uint8(r))
}

// shift operations selected by the high three bits of the opcode
const (
	shiftASL = iota
	shiftROL
	shiftLSR
	shiftROR
)

func (s *SPC700) shift(op int, v uint8) uint8 {
	var c uint8
	if s.flag(FlagC) {
		c = 1
	}
	switch op {
	case shiftASL:
		s.setFlag(FlagC, v&0x80 == 0x80)
		v <<= 1
	case shiftROL:
		s.setFlag(FlagC, v&0x80 == 0x80)
		v = v<<1 | c
	case shiftLSR:
		s.setFlag(FlagC, v&0x01 == 0x01)
		v >>= 1
	case shiftROR:
		s.setFlag(FlagC, v&0x01 == 0x01)
		v = v>>1 | c<<7
	}
	s.setZN(v)
	return v
}

func (s *SPC700) addw(w uint16) {
	s.setFlag(FlagC, false)
	lo := s.adc(s.A, uint8(w))
	hi := s.adc(s.Y, uint8(w>>8))
	s.A, s.Y = lo, hi
	s.setZN16(s.YA())
}

func (s *SPC700) subw(w uint16) {
	s.setFlag(FlagC, true)
	lo := s.sbc(s.A, uint8(w))
	hi := s.sbc(s.Y, uint8(w>>8))
	s.A, s.Y = lo, hi
	s.setZN16(s.YA())
}

func (s *SPC700) cmpw(w uint16) {
	r := int(s.YA()) - int(w)
	s.setFlag(FlagC, r >= 0)
	s.setZN16(uint16(r))
}

func (s *SPC700) div() {
	ya := int(s.YA())
	x := int(s.X)
	s.setFlag(FlagV, s.Y >= s.X)
	s.setFlag(FlagH, s.Y&0x0f >= s.X&0x0f)
	if int(s.Y) < x<<1 {
		s.A = uint8(ya / x)
		s.Y = uint8(ya % x)
	} else {
		s.A = uint8(255 - (ya-x<<9)/(256-x))
		s.Y = uint8(x + (ya-x<<9)%(256-x))
	}
	s.setZN(s.A)
}

func (s *SPC700) daa() {
	if s.flag(FlagC) || s.A > 0x99 {
		s.A += 0x60
		s.setFlag(FlagC, true)
	}
	if s.flag(FlagH) || s.A&0x0f > 0x09 {
		s.A += 0x06
	}
	s.setZN(s.A)
}

func (s *SPC700) das() {
	if !s.flag(FlagC) || s.A > 0x99 {
		s.A -= 0x60
		s.setFlag(FlagC, false)
	}
	if !s.flag(FlagH) || s.A&0x0f > 0x09 {
		s.A -= 0x06
	}
	s.setZN(s.A)
}
