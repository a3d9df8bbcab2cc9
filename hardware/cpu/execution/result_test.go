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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopher16/hardware/cpu/execution"
	"github.com/jetsetilly/gopher16/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher16/test"
)

func TestDisassembly(t *testing.T) {
	r := execution.Result{
		Address:         0x008000,
		Defn:            &instructions.Definitions[0xa9],
		ByteCount:       2,
		InstructionData: 0x12,
	}
	test.ExpectEquality(t, r.String(), "00:8000 LDA #$12")

	r.ByteCount = 3
	r.InstructionData = 0x3412
	test.ExpectEquality(t, r.String(), "00:8000 LDA #$3412")

	r.Defn = &instructions.Definitions[0xd0]
	r.ByteCount = 2
	r.InstructionData = 0xfe
	test.ExpectEquality(t, r.String(), "00:8000 BNE $8000")

	r.Defn = &instructions.Definitions[0x54]
	r.ByteCount = 3
	r.InstructionData = 0x7e7f
	test.ExpectEquality(t, r.String(), "00:8000 MVN $7e,$7f")

	r = execution.Result{Address: 0x018000, Interrupt: "NMI"}
	test.ExpectEquality(t, r.String(), "01:8000 <NMI>")
}
