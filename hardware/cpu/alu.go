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

func widthMask(narrow bool) (mask uint16, msb uint16) {
	if narrow {
		return 0x00ff, 0x0080
	}
	return 0xffff, 0x8000
}

func carry(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (mc *CPU) adc(data uint16, narrow bool) {
	if narrow {
		a := int(mc.A.Lo())
		d := int(data & 0xff)
		var r int
		if !mc.P.Decimal {
			r = a + d + carry(mc.P.Carry)
		} else {
			r = (a & 0x0f) + (d & 0x0f) + carry(mc.P.Carry)
			if r > 0x09 {
				r += 0x06
			}
			c := carry(r > 0x0f)
			r = (a & 0xf0) + (d & 0xf0) + c<<4 + (r & 0x0f)
		}
		mc.P.Overflow = ^(a^d)&(a^r)&0x80 != 0
		if mc.P.Decimal && r > 0x9f {
			r += 0x60
		}
		mc.P.Carry = r > 0xff
		mc.A.SetLo(uint8(r))
		mc.P.SetZN(uint16(uint8(r)), true)
		return
	}

	a := int(mc.A)
	d := int(data)
	var r int
	if !mc.P.Decimal {
		r = a + d + carry(mc.P.Carry)
	} else {
		r = (a & 0x000f) + (d & 0x000f) + carry(mc.P.Carry)
		if r > 0x0009 {
			r += 0x0006
		}
		c := carry(r > 0x000f)
		r = (a & 0x00f0) + (d & 0x00f0) + c<<4 + (r & 0x000f)
		if r > 0x009f {
			r += 0x0060
		}
		c = carry(r > 0x00ff)
		r = (a & 0x0f00) + (d & 0x0f00) + c<<8 + (r & 0x00ff)
		if r > 0x09ff {
			r += 0x0600
		}
		c = carry(r > 0x0fff)
		r = (a & 0xf000) + (d & 0xf000) + c<<12 + (r & 0x0fff)
	}
	mc.P.Overflow = ^(a^d)&(a^r)&0x8000 != 0
	if mc.P.Decimal && r > 0x9fff {
		r += 0x6000
	}
	mc.P.Carry = r > 0xffff
	mc.A.Set(uint16(r), false)
	mc.P.SetZN(uint16(r), false)
}

func (mc *CPU) sbc(data uint16, narrow bool) {
	if narrow {
		a := int(mc.A.Lo())
		d := int(^data & 0xff)
		var r int
		if !mc.P.Decimal {
			r = a + d + carry(mc.P.Carry)
		} else {
			r = (a & 0x0f) + (d & 0x0f) + carry(mc.P.Carry)
			if r <= 0x0f {
				r -= 0x06
			}
			c := carry(r > 0x0f)
			r = (a & 0xf0) + (d & 0xf0) + c<<4 + (r & 0x0f)
		}
		mc.P.Overflow = ^(a^d)&(a^r)&0x80 != 0
		if mc.P.Decimal && r <= 0xff {
			r -= 0x60
		}
		mc.P.Carry = r > 0xff
		mc.A.SetLo(uint8(r))
		mc.P.SetZN(uint16(uint8(r)), true)
		return
	}

	a := int(mc.A)
	d := int(^data)
	var r int
	if !mc.P.Decimal {
		r = a + d + carry(mc.P.Carry)
	} else {
		r = (a & 0x000f) + (d & 0x000f) + carry(mc.P.Carry)
		if r <= 0x000f {
			r -= 0x0006
		}
		c := carry(r > 0x000f)
		r = (a & 0x00f0) + (d & 0x00f0) + c<<4 + (r & 0x000f)
		if r <= 0x00ff {
			r -= 0x0060
		}
		c = carry(r > 0x00ff)
		r = (a & 0x0f00) + (d & 0x0f00) + c<<8 + (r & 0x00ff)
		if r <= 0x0fff {
			r -= 0x0600
		}
		c = carry(r > 0x0fff)
		r = (a & 0xf000) + (d & 0xf000) + c<<12 + (r & 0x0fff)
	}
	mc.P.Overflow = ^(a^d)&(a^r)&0x8000 != 0
	if mc.P.Decimal && r <= 0xffff {
		r -= 0x6000
	}
	mc.P.Carry = r > 0xffff
	mc.A.Set(uint16(r), false)
	mc.P.SetZN(uint16(r), false)
}

func (mc *CPU) compare(reg uint16, data uint16, narrow bool) {
	mask, _ := widthMask(narrow)
	r := (reg - data) & mask
	mc.P.Carry = reg >= data
	mc.P.SetZN(r, narrow)
}

// accumulator performs the read instructions that operate on the
// accumulator.
func (mc *CPU) accumulator(op instructions.Operator, v uint16, narrow bool, immediate bool) {
	switch op {
	case instructions.Lda:
		mc.A.Set(v, narrow)
		mc.P.SetZN(v, narrow)
	case instructions.And:
		r := mc.A.Value(narrow) & v
		mc.A.Set(r, narrow)
		mc.P.SetZN(r, narrow)
	case instructions.Ora:
		r := mc.A.Value(narrow) | v
		mc.A.Set(r, narrow)
		mc.P.SetZN(r, narrow)
	case instructions.Eor:
		r := mc.A.Value(narrow) ^ v
		mc.A.Set(r, narrow)
		mc.P.SetZN(r, narrow)
	case instructions.Adc:
		mc.adc(v, narrow)
	case instructions.Sbc:
		mc.sbc(v, narrow)
	case instructions.Cmp:
		mc.compare(mc.A.Value(narrow), v, narrow)
	case instructions.Bit:
		// the immediate form only affects the zero flag
		_, msb := widthMask(narrow)
		if !immediate {
			mc.P.Negative = v&msb == msb
			mc.P.Overflow = v&(msb>>1) == msb>>1
		}
		mc.P.Zero = mc.A.Value(narrow)&v == 0
	}
}

// modify performs the operation of the read-modify-write instructions.
func (mc *CPU) modify(op instructions.Operator, v uint16, narrow bool) uint16 {
	mask, msb := widthMask(narrow)

	var r uint16
	switch op {
	case instructions.Asl:
		mc.P.Carry = v&msb == msb
		r = (v << 1) & mask
	case instructions.Lsr:
		mc.P.Carry = v&0x01 == 0x01
		r = v >> 1
	case instructions.Rol:
		r = (v<<1)&mask | uint16(carry(mc.P.Carry))
		mc.P.Carry = v&msb == msb
	case instructions.Ror:
		r = v >> 1
		if mc.P.Carry {
			r |= msb
		}
		mc.P.Carry = v&0x01 == 0x01
	case instructions.Inc:
		r = (v + 1) & mask
	case instructions.Dec:
		r = (v - 1) & mask
	case instructions.Tsb:
		mc.P.Zero = mc.A.Value(narrow)&v == 0
		return (v | mc.A.Value(narrow)) & mask
	case instructions.Trb:
		mc.P.Zero = mc.A.Value(narrow)&v == 0
		return v &^ mc.A.Value(narrow) & mask
	}

	mc.P.SetZN(r, narrow)
	return r
}
