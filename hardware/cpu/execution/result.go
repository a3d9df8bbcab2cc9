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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher16/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the 24-bit address of the opcode
	Address uint32

	// a nil Defn indicates that the result describes a hardware interrupt
	// sequence or a halted cycle rather than an instruction
	Defn *instructions.Definition

	// number of bytes read during instruction decode, including the opcode
	ByteCount int

	// operand bytes in little endian order
	InstructionData uint32

	// number of bus and internal cycles, and their total cost in master
	// clock cycles
	Cycles       int
	MasterCycles int

	// the interrupt serviced instead of an instruction. empty if no
	// interrupt was serviced
	Interrupt string

	// the CPU is stopped or waiting for an interrupt
	Halted bool

	// whether the instruction has completed
	Final bool
}

// Reset the result for a new instruction at the address.
func (r *Result) Reset(address uint32) {
	*r = Result{Address: address}
}

// String returns a disassembly of the result.
func (r Result) String() string {
	addr := fmt.Sprintf("%02x:%04x", r.Address>>16, r.Address&0xffff)
	if r.Interrupt != "" {
		return fmt.Sprintf("%s <%s>", addr, r.Interrupt)
	}
	if r.Halted {
		return fmt.Sprintf("%s <halted>", addr)
	}
	if r.Defn == nil {
		return fmt.Sprintf("%s <undecoded>", addr)
	}
	operand := r.operand()
	if operand == "" {
		return fmt.Sprintf("%s %s", addr, r.Defn.Mnemonic())
	}
	return fmt.Sprintf("%s %s %s", addr, r.Defn.Mnemonic(), operand)
}

func (r Result) operand() string {
	d := r.InstructionData
	b8 := d & 0xff
	b16 := d & 0xffff
	b24 := d & 0xffffff

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.ImmediateM, instructions.ImmediateX, instructions.Immediate8:
		if r.ByteCount > 2 {
			return fmt.Sprintf("#$%04x", b16)
		}
		return fmt.Sprintf("#$%02x", b8)
	case instructions.Relative:
		target := uint16(r.Address) + 2 + uint16(int8(b8))
		return fmt.Sprintf("$%04x", target)
	case instructions.RelativeLong:
		target := uint16(r.Address) + 3 + uint16(b16)
		return fmt.Sprintf("$%04x", target)
	case instructions.Direct:
		return fmt.Sprintf("$%02x", b8)
	case instructions.DirectX:
		return fmt.Sprintf("$%02x,X", b8)
	case instructions.DirectY:
		return fmt.Sprintf("$%02x,Y", b8)
	case instructions.DirectIndirect:
		return fmt.Sprintf("($%02x)", b8)
	case instructions.DirectIndirectLong:
		return fmt.Sprintf("[$%02x]", b8)
	case instructions.DirectXIndirect:
		return fmt.Sprintf("($%02x,X)", b8)
	case instructions.DirectIndirectY:
		return fmt.Sprintf("($%02x),Y", b8)
	case instructions.DirectIndirectLongY:
		return fmt.Sprintf("[$%02x],Y", b8)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", b16)
	case instructions.AbsoluteX:
		return fmt.Sprintf("$%04x,X", b16)
	case instructions.AbsoluteY:
		return fmt.Sprintf("$%04x,Y", b16)
	case instructions.AbsoluteLong:
		return fmt.Sprintf("$%06x", b24)
	case instructions.AbsoluteLongX:
		return fmt.Sprintf("$%06x,X", b24)
	case instructions.AbsoluteIndirect:
		return fmt.Sprintf("($%04x)", b16)
	case instructions.AbsoluteXIndirect:
		return fmt.Sprintf("($%04x,X)", b16)
	case instructions.AbsoluteIndirectLong:
		return fmt.Sprintf("[$%04x]", b16)
	case instructions.StackRelative:
		return fmt.Sprintf("$%02x,S", b8)
	case instructions.StackRelativeIndirectY:
		return fmt.Sprintf("($%02x,S),Y", b8)
	case instructions.BlockMove:
		// operand bytes are destination then source but assemblers write
		// the source bank first
		return fmt.Sprintf("$%02x,$%02x", (d>>8)&0xff, b8)
	}
	return ""
}
