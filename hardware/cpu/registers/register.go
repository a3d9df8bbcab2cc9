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

import "fmt"

// Register is a 16-bit register of the 65816.
type Register uint16

// Lo returns the low byte of the register.
func (r Register) Lo() uint8 {
	return uint8(r)
}

// Hi returns the high byte of the register.
func (r Register) Hi() uint8 {
	return uint8(r >> 8)
}

// SetLo sets the low byte of the register, leaving the high byte untouched.
func (r *Register) SetLo(v uint8) {
	*r = (*r & 0xff00) | Register(v)
}

// SetHi sets the high byte of the register, leaving the low byte untouched.
func (r *Register) SetHi(v uint8) {
	*r = (*r & 0x00ff) | Register(v)<<8
}

// Value returns the register as an 8-bit or 16-bit quantity.
func (r Register) Value(narrow bool) uint16 {
	if narrow {
		return uint16(r) & 0x00ff
	}
	return uint16(r)
}

// Set the register as an 8-bit or 16-bit quantity. When narrow is true the
// high byte is preserved.
func (r *Register) Set(v uint16, narrow bool) {
	if narrow {
		r.SetLo(uint8(v))
		return
	}
	*r = Register(v)
}

func (r Register) String() string {
	return fmt.Sprintf("%04x", uint16(r))
}
