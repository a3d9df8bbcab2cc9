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

package spc700

import (
	"fmt"
	"strings"
)

// Bus is the address space seen by the processor.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Bits of the program status word.
const (
	FlagC uint8 = 0x01
	FlagZ uint8 = 0x02
	FlagI uint8 = 0x04
	FlagH uint8 = 0x08
	FlagB uint8 = 0x10
	FlagP uint8 = 0x20
	FlagV uint8 = 0x40
	FlagN uint8 = 0x80
)

// Reset vector and the base of the TCALL vector table.
const (
	ResetVector = 0xfffe
	TCallVector = 0xffde
)

// cycles taken by SLEEP and STOP each time the processor is stepped
const haltCycles = 2

// SPC700 is the audio processor.
type SPC700 struct {
	A   uint8
	X   uint8
	Y   uint8
	SP  uint8
	PC  uint16
	PSW uint8

	// set by SLEEP and STOP. only a reset restarts the processor
	Halted bool

	mem Bus
}

// NewSPC700 is the preferred method of initialisation for the SPC700 type.
func NewSPC700(mem Bus) *SPC700 {
	return &SPC700{mem: mem}
}

// Snapshot creates a copy of the processor in its current state.
func (s *SPC700) Snapshot() *SPC700 {
	n := *s
	n.mem = nil
	return &n
}

// Plumb a new bus into the processor.
func (s *SPC700) Plumb(mem Bus) {
	s.mem = mem
}

// Reset the processor and load the program counter from the reset vector.
func (s *SPC700) Reset() {
	s.A = 0
	s.X = 0
	s.Y = 0
	s.SP = 0
	s.PSW = 0
	s.Halted = false
	s.PC = s.read16(ResetVector)
}

func (s *SPC700) String() string {
	var f strings.Builder
	for i, c := range "NVPBHIZC" {
		if s.PSW&(0x80>>i) != 0 {
			f.WriteRune(c)
		} else {
			f.WriteRune(c + 'a' - 'A')
		}
	}
	return fmt.Sprintf("PC=%04x A=%02x X=%02x Y=%02x SP=%02x %s", s.PC, s.A, s.X, s.Y, s.SP, f.String())
}

// YA returns the Y and A registers as a single 16-bit value.
func (s *SPC700) YA() uint16 {
	return uint16(s.Y)<<8 | uint16(s.A)
}

func (s *SPC700) setYA(v uint16) {
	s.A = uint8(v)
	s.Y = uint8(v >> 8)
}

func (s *SPC700) flag(f uint8) bool {
	return s.PSW&f == f
}

func (s *SPC700) setFlag(f uint8, on bool) {
	if on {
		s.PSW |= f
	} else {
		s.PSW &^= f
	}
}

func (s *SPC700) setZN(v uint8) {
	s.setFlag(FlagZ, v == 0)
	s.setFlag(FlagN, v&0x80 == 0x80)
}

func (s *SPC700) setZN16(v uint16) {
	s.setFlag(FlagZ, v == 0)
	s.setFlag(FlagN, v&0x8000 == 0x8000)
}

func (s *SPC700) read(address uint16) uint8 {
	return s.mem.Read(address)
}

func (s *SPC700) write(address uint16, data uint8) {
	s.mem.Write(address, data)
}

func (s *SPC700) read16(address uint16) uint16 {
	lo := s.read(address)
	hi := s.read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (s *SPC700) fetch() uint8 {
	v := s.read(s.PC)
	s.PC++
	return v
}

func (s *SPC700) fetch16() uint16 {
	lo := s.fetch()
	hi := s.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

// the direct page is selected by the P flag
func (s *SPC700) dp(offset uint8) uint16 {
	if s.flag(FlagP) {
		return 0x100 | uint16(offset)
	}
	return uint16(offset)
}

func (s *SPC700) readDP(offset uint8) uint8 {
	return s.read(s.dp(offset))
}

func (s *SPC700) writeDP(offset uint8, data uint8) {
	s.write(s.dp(offset), data)
}

// the high byte of a direct page word wraps within the page
func (s *SPC700) readDP16(offset uint8) uint16 {
	lo := s.readDP(offset)
	hi := s.readDP(offset + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (s *SPC700) writeDP16(offset uint8, data uint16) {
	s.writeDP(offset, uint8(data))
	s.writeDP(offset+1, uint8(data>>8))
}

func (s *SPC700) push(data uint8) {
	s.write(0x100|uint16(s.SP), data)
	s.SP--
}

func (s *SPC700) pull() uint8 {
	s.SP++
	return s.read(0x100 | uint16(s.SP))
}

func (s *SPC700) pushPC() {
	s.push(uint8(s.PC >> 8))
	s.push(uint8(s.PC))
}

func (s *SPC700) pullPC() {
	lo := s.pull()
	hi := s.pull()
	s.PC = uint16(hi)<<8 | uint16(lo)
}
