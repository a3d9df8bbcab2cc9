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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher16/hardware/cpu/execution"
	"github.com/jetsetilly/gopher16/hardware/cpu/registers"
	"github.com/jetsetilly/gopher16/hardware/memory/cpubus"
)

// Interrupt vectors in bank zero.
const (
	VectorCOP   = 0xffe4
	VectorBRK   = 0xffe6
	VectorNMI   = 0xffea
	VectorIRQ   = 0xffee
	VectorReset = 0xfffc

	VectorEmulationCOP = 0xfff4
	VectorEmulationNMI = 0xfffa
	VectorEmulationIRQ = 0xfffe
)

// CPU implements the 65816 found in the SNES.
type CPU struct {
	A  registers.Register
	X  registers.Register
	Y  registers.Register
	S  registers.Register
	D  registers.Register
	DB uint8
	PB uint8
	PC uint16
	P  registers.StatusRegister

	NMIPending bool
	IRQLine    bool

	// STP and WAI
	Stopped bool
	Waiting bool

	// the result of the most recent call to ExecuteInstruction()
	LastResult execution.Result `msgpack:"-"`

	mem cpubus.Memory

	// cycleCallback is set for the duration of ExecuteInstruction(). the
	// first error returned by the callback is returned by
	// ExecuteInstruction() once the instruction has completed
	cycleCallback func(int) error
	callbackErr   error
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// Reset() should be called before the CPU is used.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{mem: mem}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.cycleCallback = nil
	n.callbackErr = nil
	return &n
}

// Plumb CPU into a new memory bus.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%02x:%04x A=%s X=%s Y=%s S=%s D=%s DB=%02x P=%s",
		mc.PB, mc.PC, mc.A, mc.X, mc.Y, mc.S, mc.D, mc.DB, mc.P)
}

// Reset the CPU. The CPU is put into emulation mode and the program
// counter is loaded from the reset vector. The reset vector is read without
// consuming any cycles.
func (mc *CPU) Reset() {
	mc.P.Emulation = true
	mc.P.FromValue(0x34)
	mc.D = 0
	mc.DB = 0
	mc.PB = 0
	mc.S = 0x01ff
	mc.X.SetHi(0)
	mc.Y.SetHi(0)
	mc.NMIPending = false
	mc.IRQLine = false
	mc.Stopped = false
	mc.Waiting = false
	mc.LastResult = execution.Result{}
	mc.LoadPCIndirect(VectorReset)
}

// LoadPCIndirect loads the 16-bit address found at the vector in bank zero
// into the program counter. The program bank is set to zero.
func (mc *CPU) LoadPCIndirect(vector uint16) {
	lo := mc.mem.Read(uint32(vector))
	hi := mc.mem.Read(uint32(vector + 1))
	mc.PB = 0
	mc.PC = uint16(hi)<<8 | uint16(lo)
}

// LoadPC sets the program bank and program counter from a 24-bit address.
func (mc *CPU) LoadPC(address uint32) {
	mc.PB = uint8(address >> 16)
	mc.PC = uint16(address)
}

// PCAddress returns the 24-bit address of the next instruction.
func (mc *CPU) PCAddress() uint32 {
	return uint32(mc.PB)<<16 | uint32(mc.PC)
}

// RaiseNMI latches an NMI edge. It is serviced at the next instruction
// boundary.
func (mc *CPU) RaiseNMI() {
	mc.NMIPending = true
}

// SetIRQ sets the level of the IRQ line.
func (mc *CPU) SetIRQ(active bool) {
	mc.IRQLine = active
}

// applyWidths enforces the register constraints of the M, X and E flags.
func (mc *CPU) applyWidths() {
	if mc.P.Emulation {
		mc.P.MemorySelect = true
		mc.P.IndexSelect = true
		mc.S.SetHi(0x01)
	}
	if mc.P.IndexSelect {
		mc.X.SetHi(0)
		mc.Y.SetHi(0)
	}
}
