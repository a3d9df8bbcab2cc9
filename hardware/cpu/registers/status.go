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

package registers

import (
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU. The emulation flag is not part of the byte representation but is
// kept here because it governs how the other flags behave.
type StatusRegister struct {
	Negative         bool
	Overflow         bool
	MemorySelect     bool
	IndexSelect      bool
	Decimal          bool
	InterruptDisable bool
	Zero             bool
	Carry            bool

	Emulation bool
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(v bool, set rune, clear rune) {
		if v {
			s.WriteRune(set)
		} else {
			s.WriteRune(clear)
		}
	}

	flag(sr.Negative, 'N', 'n')
	flag(sr.Overflow, 'V', 'v')
	flag(sr.MemorySelect, 'M', 'm')
	flag(sr.IndexSelect, 'X', 'x')
	flag(sr.Decimal, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')
	s.WriteRune(' ')
	flag(sr.Emulation, 'E', 'e')

	return s.String()
}

// Value converts the StatusRegister into a value suitable for pushing onto
// the stack. In emulation mode bit 5 is always set and bit 4 is the break
// flag, which is set here. Hardware interrupts clear bit 4 before pushing.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Negative {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.MemorySelect || sr.Emulation {
		v |= 0x20
	}
	if sr.IndexSelect || sr.Emulation {
		v |= 0x10
	}
	if sr.Decimal {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// FromValue converts an 8-bit value to the status register. In emulation
// mode the M and X flags cannot be cleared.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Negative = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.MemorySelect = v&0x20 == 0x20
	sr.IndexSelect = v&0x10 == 0x10
	sr.Decimal = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
	if sr.Emulation {
		sr.MemorySelect = true
		sr.IndexSelect = true
	}
}

// SetZN sets the zero and negative flags according to the value, which is
// treated as 8-bit or 16-bit.
func (sr *StatusRegister) SetZN(v uint16, narrow bool) {
	if narrow {
		sr.Zero = v&0xff == 0
		sr.Negative = v&0x80 == 0x80
		return
	}
	sr.Zero = v == 0
	sr.Negative = v&0x8000 == 0x8000
}
