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

// Package cpu emulates the 65816 CPU found in the SNES. The CPU is
// emulated bus cycle by bus cycle. Every bus access and every internal
// cycle is reported to the caller of ExecuteInstruction through a callback
// function, with the cost of the cycle in master clock cycles. The callback
// is where the rest of the console is advanced.
//
// Interrupts are only serviced at instruction boundaries. NMI is an edge
// and is latched by RaiseNMI() until serviced. IRQ is a level and is
// controlled with SetIRQ().
//
// The CPU does not own any memory. It is connected to the bus through the
// cpubus.Memory interface.
package cpu
