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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher16/hardware/cpu/registers"
	"github.com/jetsetilly/gopher16/test"
)

func TestRegister(t *testing.T) {
	var r registers.Register

	r.Set(0x1234, false)
	test.ExpectEquality(t, r.Lo(), uint8(0x34))
	test.ExpectEquality(t, r.Hi(), uint8(0x12))

	// narrow set preserves the high byte
	r.Set(0xffee, true)
	test.ExpectEquality(t, uint16(r), uint16(0x12ee))
	test.ExpectEquality(t, r.Value(true), uint16(0xee))
	test.ExpectEquality(t, r.Value(false), uint16(0x12ee))

	r.SetHi(0xab)
	test.ExpectEquality(t, r.String(), "abee")
}

func TestStatus(t *testing.T) {
	var sr registers.StatusRegister

	sr.FromValue(0x00)
	test.ExpectEquality(t, sr.Value(), uint8(0x00))
	test.ExpectEquality(t, sr.String(), "nvmxdizc e")

	sr.FromValue(0xff)
	test.ExpectEquality(t, sr.Value(), uint8(0xff))

	sr.Emulation = true
	sr.FromValue(0x00)
	test.ExpectEquality(t, sr.MemorySelect, true)
	test.ExpectEquality(t, sr.IndexSelect, true)
	test.ExpectEquality(t, sr.Value(), uint8(0x30))
	test.ExpectEquality(t, sr.String(), "nvMXdizc E")

	sr.SetZN(0x0100, true)
	test.ExpectEquality(t, sr.Zero, true)
	sr.SetZN(0x8000, false)
	test.ExpectEquality(t, sr.Negative, true)
	test.ExpectEquality(t, sr.Zero, false)
}
