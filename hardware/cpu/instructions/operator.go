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

// Operator identifies the operation performed by an instruction,
// independent of its addressing mode.
type Operator int

// List of 65816 operators.
const (
	Adc Operator = iota
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Bra
	Brk
	Brl
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cop
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jml
	Jmp
	Jsl
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Mvn
	Mvp
	Nop
	Ora
	Pea
	Pei
	Per
	Pha
	Phb
	Phd
	Phk
	Php
	Phx
	Phy
	Pla
	Plb
	Pld
	Plp
	Plx
	Ply
	Rep
	Rol
	Ror
	Rti
	Rtl
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sep
	Sta
	Stp
	Stx
	Sty
	Stz
	Tax
	Tay
	Tcd
	Tcs
	Tdc
	Trb
	Tsb
	Tsc
	Tsx
	Txa
	Txs
	Txy
	Tya
	Tyx
	Wai
	Wdm
	Xba
	Xce
	numOperators
)

var mnemonics = [numOperators]string{
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE", "BPL",
	"BRA", "BRK", "BRL", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP",
	"COP", "CPX", "CPY", "DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY",
	"JML", "JMP", "JSL", "JSR", "LDA", "LDX", "LDY", "LSR", "MVN", "MVP",
	"NOP", "ORA", "PEA", "PEI", "PER", "PHA", "PHB", "PHD", "PHK", "PHP",
	"PHX", "PHY", "PLA", "PLB", "PLD", "PLP", "PLX", "PLY", "REP", "ROL",
	"ROR", "RTI", "RTL", "RTS", "SBC", "SEC", "SED", "SEI", "SEP", "STA",
	"STP", "STX", "STY", "STZ", "TAX", "TAY", "TCD", "TCS", "TDC", "TRB",
	"TSB", "TSC", "TSX", "TXA", "TXS", "TXY", "TYA", "TYX", "WAI", "WDM",
	"XBA", "XCE",
}

func (o Operator) String() string {
	if o < 0 || o >= numOperators {
		return "???"
	}
	return mnemonics[o]
}

// IsBranch returns true if the operator is a conditional or unconditional
// relative branch.
func (o Operator) IsBranch() bool {
	switch o {
	case Bcc, Bcs, Beq, Bmi, Bne, Bpl, Bra, Brl, Bvc, Bvs:
		return true
	}
	return false
}
