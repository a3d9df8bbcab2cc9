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

package instructions

// AddressingMode describes how the operand of an instruction is located.
type AddressingMode int

// List of 65816 addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator

	// immediate operand sizes depend on the M and X flags. Immediate8 is
	// always a single byte (REP, SEP, BRK, COP, WDM).
	ImmediateM
	ImmediateX
	Immediate8

	Relative
	RelativeLong

	Direct                 // dp
	DirectX                // dp,X
	DirectY                // dp,Y
	DirectIndirect         // (dp)
	DirectIndirectLong     // [dp]
	DirectXIndirect        // (dp,X)
	DirectIndirectY        // (dp),Y
	DirectIndirectLongY    // [dp],Y
	Absolute               // abs
	AbsoluteX              // abs,X
	AbsoluteY              // abs,Y
	AbsoluteLong           // long
	AbsoluteLongX          // long,X
	AbsoluteIndirect       // (abs)
	AbsoluteXIndirect      // (abs,X)
	AbsoluteIndirectLong   // [abs]
	StackRelative          // sr,S
	StackRelativeIndirectY // (sr,S),Y
	BlockMove              // src,dst
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case ImmediateM, ImmediateX, Immediate8:
		return "Immediate"
	case Relative:
		return "Relative"
	case RelativeLong:
		return "RelativeLong"
	case Direct:
		return "Direct"
	case DirectX:
		return "DirectX"
	case DirectY:
		return "DirectY"
	case DirectIndirect:
		return "DirectIndirect"
	case DirectIndirectLong:
		return "DirectIndirectLong"
	case DirectXIndirect:
		return "DirectXIndirect"
	case DirectIndirectY:
		return "DirectIndirectY"
	case DirectIndirectLongY:
		return "DirectIndirectLongY"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case AbsoluteLong:
		return "AbsoluteLong"
	case AbsoluteLongX:
		return "AbsoluteLongX"
	case AbsoluteIndirect:
		return "AbsoluteIndirect"
	case AbsoluteXIndirect:
		return "AbsoluteXIndirect"
	case AbsoluteIndirectLong:
		return "AbsoluteIndirectLong"
	case StackRelative:
		return "StackRelative"
	case StackRelativeIndirectY:
		return "StackRelativeIndirectY"
	case BlockMove:
		return "BlockMove"
	}
	return "unknown addressing mode"
}

// Bytes returns the length of an instruction using the addressing mode,
// including the opcode. The M and X flags are needed for immediate
// operands.
func (m AddressingMode) Bytes(m8 bool, x8 bool) int {
	switch m {
	case Implied, Accumulator:
		return 1
	case ImmediateM:
		if m8 {
			return 2
		}
		return 3
	case ImmediateX:
		if x8 {
			return 2
		}
		return 3
	case Immediate8, Relative, Direct, DirectX, DirectY, DirectIndirect,
		DirectIndirectLong, DirectXIndirect, DirectIndirectY, DirectIndirectLongY,
		StackRelative, StackRelativeIndirectY:
		return 2
	case AbsoluteLong, AbsoluteLongX:
		return 4
	}
	return 3
}
