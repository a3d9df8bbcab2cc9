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

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode
	Effect         Category
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s [%s %s]", defn.OpCode, defn.Operator, defn.AddressingMode, defn.Effect)
}

// Mnemonic returns the three letter assembler name of the instruction.
func (defn Definition) Mnemonic() string {
	return defn.Operator.String()
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.Effect == Flow && defn.Operator.IsBranch()
}

// Definitions is indexed by opcode. All 256 opcodes are defined on the 65816.
var Definitions = [256]Definition{
	{0x00, Brk, Immediate8, Interrupt},
	{0x01, Ora, DirectXIndirect, Read},
	{0x02, Cop, Immediate8, Interrupt},
	{0x03, Ora, StackRelative, Read},
	{0x04, Tsb, Direct, Modify},
	{0x05, Ora, Direct, Read},
	{0x06, Asl, Direct, Modify},
	{0x07, Ora, DirectIndirectLong, Read},
	{0x08, Php, Implied, Stack},
	{0x09, Ora, ImmediateM, Read},
	{0x0a, Asl, Accumulator, Modify},
	{0x0b, Phd, Implied, Stack},
	{0x0c, Tsb, Absolute, Modify},
	{0x0d, Ora, Absolute, Read},
	{0x0e, Asl, Absolute, Modify},
	{0x0f, Ora, AbsoluteLong, Read},
	{0x10, Bpl, Relative, Flow},
	{0x11, Ora, DirectIndirectY, Read},
	{0x12, Ora, DirectIndirect, Read},
	{0x13, Ora, StackRelativeIndirectY, Read},
	{0x14, Trb, Direct, Modify},
	{0x15, Ora, DirectX, Read},
	{0x16, Asl, DirectX, Modify},
	{0x17, Ora, DirectIndirectLongY, Read},
	{0x18, Clc, Implied, Internal},
	{0x19, Ora, AbsoluteY, Read},
	{0x1a, Inc, Accumulator, Modify},
	{0x1b, Tcs, Implied, Internal},
	{0x1c, Trb, Absolute, Modify},
	{0x1d, Ora, AbsoluteX, Read},
	{0x1e, Asl, AbsoluteX, Modify},
	{0x1f, Ora, AbsoluteLongX, Read},
	{0x20, Jsr, Absolute, Subroutine},
	{0x21, And, DirectXIndirect, Read},
	{0x22, Jsl, AbsoluteLong, Subroutine},
	{0x23, And, StackRelative, Read},
	{0x24, Bit, Direct, Read},
	{0x25, And, Direct, Read},
	{0x26, Rol, Direct, Modify},
	{0x27, And, DirectIndirectLong, Read},
	{0x28, Plp, Implied, Stack},
	{0x29, And, ImmediateM, Read},
	{0x2a, Rol, Accumulator, Modify},
	{0x2b, Pld, Implied, Stack},
	{0x2c, Bit, Absolute, Read},
	{0x2d, And, Absolute, Read},
	{0x2e, Rol, Absolute, Modify},
	{0x2f, And, AbsoluteLong, Read},
	{0x30, Bmi, Relative, Flow},
	{0x31, And, DirectIndirectY, Read},
	{0x32, And, DirectIndirect, Read},
	{0x33, And, StackRelativeIndirectY, Read},
	{0x34, Bit, DirectX, Read},
	{0x35, And, DirectX, Read},
	{0x36, Rol, DirectX, Modify},
	{0x37, And, DirectIndirectLongY, Read},
	{0x38, Sec, Implied, Internal},
	{0x39, And, AbsoluteY, Read},
	{0x3a, Dec, Accumulator, Modify},
	{0x3b, Tsc, Implied, Internal},
	{0x3c, Bit, AbsoluteX, Read},
	{0x3d, And, AbsoluteX, Read},
	{0x3e, Rol, AbsoluteX, Modify},
	{0x3f, And, AbsoluteLongX, Read},
	{0x40, Rti, Implied, Subroutine},
	{0x41, Eor, DirectXIndirect, Read},
	{0x42, Wdm, Immediate8, Internal},
	{0x43, Eor, StackRelative, Read},
	{0x44, Mvp, BlockMove, Write},
	{0x45, Eor, Direct, Read},
	{0x46, Lsr, Direct, Modify},
	{0x47, Eor, DirectIndirectLong, Read},
	{0x48, Pha, Implied, Stack},
	{0x49, Eor, ImmediateM, Read},
	{0x4a, Lsr, Accumulator, Modify},
	{0x4b, Phk, Implied, Stack},
	{0x4c, Jmp, Absolute, Flow},
	{0x4d, Eor, Absolute, Read},
	{0x4e, Lsr, Absolute, Modify},
	{0x4f, Eor, AbsoluteLong, Read},
	{0x50, Bvc, Relative, Flow},
	{0x51, Eor, DirectIndirectY, Read},
	{0x52, Eor, DirectIndirect, Read},
	{0x53, Eor, StackRelativeIndirectY, Read},
	{0x54, Mvn, BlockMove, Write},
	{0x55, Eor, DirectX, Read},
	{0x56, Lsr, DirectX, Modify},
	{0x57, Eor, DirectIndirectLongY, Read},
	{0x58, Cli, Implied, Internal},
	{0x59, Eor, AbsoluteY, Read},
	{0x5a, Phy, Implied, Stack},
	{0x5b, Tcd, Implied, Internal},
	{0x5c, Jml, AbsoluteLong, Flow},
	{0x5d, Eor, AbsoluteX, Read},
	{0x5e, Lsr, AbsoluteX, Modify},
	{0x5f, Eor, AbsoluteLongX, Read},
	{0x60, Rts, Implied, Subroutine},
	{0x61, Adc, DirectXIndirect, Read},
	{0x62, Per, RelativeLong, Stack},
	{0x63, Adc, StackRelative, Read},
	{0x64, Stz, Direct, Write},
	{0x65, Adc, Direct, Read},
	{0x66, Ror, Direct, Modify},
	{0x67, Adc, DirectIndirectLong, Read},
	{0x68, Pla, Implied, Stack},
	{0x69, Adc, ImmediateM, Read},
	{0x6a, Ror, Accumulator, Modify},
	{0x6b, Rtl, Implied, Subroutine},
	{0x6c, Jmp, AbsoluteIndirect, Flow},
	{0x6d, Adc, Absolute, Read},
	{0x6e, Ror, Absolute, Modify},
	{0x6f, Adc, AbsoluteLong, Read},
	{0x70, Bvs, Relative, Flow},
	{0x71, Adc, DirectIndirectY, Read},
	{0x72, Adc, DirectIndirect, Read},
	{0x73, Adc, StackRelativeIndirectY, Read},
	{0x74, Stz, DirectX, Write},
	{0x75, Adc, DirectX, Read},
	{0x76, Ror, DirectX, Modify},
	{0x77, Adc, DirectIndirectLongY, Read},
	{0x78, Sei, Implied, Internal},
	{0x79, Adc, AbsoluteY, Read},
	{0x7a, Ply, Implied, Stack},
	{0x7b, Tdc, Implied, Internal},
	{0x7c, Jmp, AbsoluteXIndirect, Flow},
	{0x7d, Adc, AbsoluteX, Read},
	{0x7e, Ror, AbsoluteX, Modify},
	{0x7f, Adc, AbsoluteLongX, Read},
	{0x80, Bra, Relative, Flow},
	{0x81, Sta, DirectXIndirect, Write},
	{0x82, Brl, RelativeLong, Flow},
	{0x83, Sta, StackRelative, Write},
	{0x84, Sty, Direct, Write},
	{0x85, Sta, Direct, Write},
	{0x86, Stx, Direct, Write},
	{0x87, Sta, DirectIndirectLong, Write},
	{0x88, Dey, Implied, Internal},
	{0x89, Bit, ImmediateM, Read},
	{0x8a, Txa, Implied, Internal},
	{0x8b, Phb, Implied, Stack},
	{0x8c, Sty, Absolute, Write},
	{0x8d, Sta, Absolute, Write},
	{0x8e, Stx, Absolute, Write},
	{0x8f, Sta, AbsoluteLong, Write},
	{0x90, Bcc, Relative, Flow},
	{0x91, Sta, DirectIndirectY, Write},
	{0x92, Sta, DirectIndirect, Write},
	{0x93, Sta, StackRelativeIndirectY, Write},
	{0x94, Sty, DirectX, Write},
	{0x95, Sta, DirectX, Write},
	{0x96, Stx, DirectY, Write},
	{0x97, Sta, DirectIndirectLongY, Write},
	{0x98, Tya, Implied, Internal},
	{0x99, Sta, AbsoluteY, Write},
	{0x9a, Txs, Implied, Internal},
	{0x9b, Txy, Implied, Internal},
	{0x9c, Stz, Absolute, Write},
	{0x9d, Sta, AbsoluteX, Write},
	{0x9e, Stz, AbsoluteX, Write},
	{0x9f, Sta, AbsoluteLongX, Write},
	{0xa0, Ldy, ImmediateX, Read},
	{0xa1, Lda, DirectXIndirect, Read},
	{0xa2, Ldx, ImmediateX, Read},
	{0xa3, Lda, StackRelative, Read},
	{0xa4, Ldy, Direct, Read},
	{0xa5, Lda, Direct, Read},
	{0xa6, Ldx, Direct, Read},
	{0xa7, Lda, DirectIndirectLong, Read},
	{0xa8, Tay, Implied, Internal},
	{0xa9, Lda, ImmediateM, Read},
	{0xaa, Tax, Implied, Internal},
	{0xab, Plb, Implied, Stack},
	{0xac, Ldy, Absolute, Read},
	{0xad, Lda, Absolute, Read},
	{0xae, Ldx, Absolute, Read},
	{0xaf, Lda, AbsoluteLong, Read},
	{0xb0, Bcs, Relative, Flow},
	{0xb1, Lda, DirectIndirectY, Read},
	{0xb2, Lda, DirectIndirect, Read},
	{0xb3, Lda, StackRelativeIndirectY, Read},
	{0xb4, Ldy, DirectX, Read},
	{0xb5, Lda, DirectX, Read},
	{0xb6, Ldx, DirectY, Read},
	{0xb7, Lda, DirectIndirectLongY, Read},
	{0xb8, Clv, Implied, Internal},
	{0xb9, Lda, AbsoluteY, Read},
	{0xba, Tsx, Implied, Internal},
	{0xbb, Tyx, Implied, Internal},
	{0xbc, Ldy, AbsoluteX, Read},
	{0xbd, Lda, AbsoluteX, Read},
	{0xbe, Ldx, AbsoluteY, Read},
	{0xbf, Lda, AbsoluteLongX, Read},
	{0xc0, Cpy, ImmediateX, Read},
	{0xc1, Cmp, DirectXIndirect, Read},
	{0xc2, Rep, Immediate8, Internal},
	{0xc3, Cmp, StackRelative, Read},
	{0xc4, Cpy, Direct, Read},
	{0xc5, Cmp, Direct, Read},
	{0xc6, Dec, Direct, Modify},
	{0xc7, Cmp, DirectIndirectLong, Read},
	{0xc8, Iny, Implied, Internal},
	{0xc9, Cmp, ImmediateM, Read},
	{0xca, Dex, Implied, Internal},
	{0xcb, Wai, Implied, Internal},
	{0xcc, Cpy, Absolute, Read},
	{0xcd, Cmp, Absolute, Read},
	{0xce, Dec, Absolute, Modify},
	{0xcf, Cmp, AbsoluteLong, Read},
	{0xd0, Bne, Relative, Flow},
	{0xd1, Cmp, DirectIndirectY, Read},
	{0xd2, Cmp, DirectIndirect, Read},
	{0xd3, Cmp, StackRelativeIndirectY, Read},
	{0xd4, Pei, DirectIndirect, Stack},
	{0xd5, Cmp, DirectX, Read},
	{0xd6, Dec, DirectX, Modify},
	{0xd7, Cmp, DirectIndirectLongY, Read},
	{0xd8, Cld, Implied, Internal},
	{0xd9, Cmp, AbsoluteY, Read},
	{0xda, Phx, Implied, Stack},
	{0xdb, Stp, Implied, Internal},
	{0xdc, Jml, AbsoluteIndirectLong, Flow},
	{0xdd, Cmp, AbsoluteX, Read},
	{0xde, Dec, AbsoluteX, Modify},
	{0xdf, Cmp, AbsoluteLongX, Read},
	{0xe0, Cpx, ImmediateX, Read},
	{0xe1, Sbc, DirectXIndirect, Read},
	{0xe2, Sep, Immediate8, Internal},
	{0xe3, Sbc, StackRelative, Read},
	{0xe4, Cpx, Direct, Read},
	{0xe5, Sbc, Direct, Read},
	{0xe6, Inc, Direct, Modify},
	{0xe7, Sbc, DirectIndirectLong, Read},
	{0xe8, Inx, Implied, Internal},
	{0xe9, Sbc, ImmediateM, Read},
	{0xea, Nop, Implied, Internal},
	{0xeb, Xba, Implied, Internal},
	{0xec, Cpx, Absolute, Read},
	{0xed, Sbc, Absolute, Read},
	{0xee, Inc, Absolute, Modify},
	{0xef, Sbc, AbsoluteLong, Read},
	{0xf0, Beq, Relative, Flow},
	{0xf1, Sbc, DirectIndirectY, Read},
	{0xf2, Sbc, DirectIndirect, Read},
	{0xf3, Sbc, StackRelativeIndirectY, Read},
	{0xf4, Pea, Absolute, Stack},
	{0xf5, Sbc, DirectX, Read},
	{0xf6, Inc, DirectX, Modify},
	{0xf7, Sbc, DirectIndirectLongY, Read},
	{0xf8, Sed, Implied, Internal},
	{0xf9, Sbc, AbsoluteY, Read},
	{0xfa, Plx, Implied, Stack},
	{0xfb, Xce, Implied, Internal},
	{0xfc, Jsr, AbsoluteXIndirect, Subroutine},
	{0xfd, Sbc, AbsoluteX, Read},
	{0xfe, Inc, AbsoluteX, Modify},
	{0xff, Sbc, AbsoluteLongX, Read},
}
