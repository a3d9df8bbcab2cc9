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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher16/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher16/test"
)

func TestTableOrder(t *testing.T) {
	for i, defn := range instructions.Definitions {
		if int(defn.OpCode) != i {
			t.Fatalf("definition at index %#02x has opcode %#02x", i, defn.OpCode)
		}
	}
}

func TestBytes(t *testing.T) {
	lda := instructions.Definitions[0xa9]
	test.ExpectEquality(t, lda.Mnemonic(), "LDA")
	test.ExpectEquality(t, lda.AddressingMode.Bytes(true, true), 2)
	test.ExpectEquality(t, lda.AddressingMode.Bytes(false, true), 3)

	ldx := instructions.Definitions[0xa2]
	test.ExpectEquality(t, ldx.AddressingMode.Bytes(false, true), 2)
	test.ExpectEquality(t, ldx.AddressingMode.Bytes(true, false), 3)

	test.ExpectEquality(t, instructions.Definitions[0x22].AddressingMode.Bytes(true, true), 4)
	test.ExpectEquality(t, instructions.Definitions[0x54].AddressingMode.Bytes(true, true), 3)
	test.ExpectEquality(t, instructions.Definitions[0x42].AddressingMode.Bytes(true, true), 2)
}

func TestBranches(t *testing.T) {
	var n int
	for _, defn := range instructions.Definitions {
		if defn.IsBranch() {
			n++
		}
	}
	test.ExpectEquality(t, n, 10)
}
