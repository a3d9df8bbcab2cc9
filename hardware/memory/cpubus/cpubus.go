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

// Package cpubus defines the view of the system bus seen by the CPU.
package cpubus

// Memory is the bus as seen by the CPU. Addresses are 24-bit. Reads and
// writes always succeed; unmapped reads return the open bus value.
type Memory interface {
	Read(address uint32) uint8
	Write(address uint32, data uint8)

	// the cost in master cycles of a bus access at the address
	AccessTime(address uint32) int
}
