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

// Package coprocessor defines the extension point for chips on the
// cartridge that are mapped into the address space of the CPU. The console
// routes bus accesses in regions owned by a coprocessor to the
// implementation and advances the coprocessor with the master clock.
//
// Errors returned by a coprocessor are faults. They are recorded in the
// fault log of the console and never stop emulation.
package coprocessor

// Coprocessor is implemented by chip emulations mapped into the address
// space. Addresses passed to Read() and Write() are full 24-bit bus
// addresses.
type Coprocessor interface {
	// short name of the coprocessor. for example, "DSP-1"
	ID() string

	Read(address uint32) (uint8, error)
	Write(address uint32, data uint8) error

	// advance the coprocessor by the number of master cycles
	Advance(masterCycles int) error

	Reset()
}

// Stateful is implemented by coprocessors that have state to preserve in a
// save state.
type Stateful interface {
	SaveState() ([]byte, error)
	LoadState([]byte) error
}
