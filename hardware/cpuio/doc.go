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

// Package cpuio implements the registers of the CPU chip that are mapped
// at $4200 to $421F. These are the interrupt enables and flags, the timer
// IRQ, the hardware multiplier and divider, the programmable I/O port and
// the automatic joypad read.
//
// The scheduler in the console drives the package with StartVBlank(),
// EndVBlank(), SetHBlank(), Dot() and Advance(). In turn the scheduler
// polls the package for the NMI edge with PollNMI() and for the IRQ level
// with IRQ().
package cpuio
