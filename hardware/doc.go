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

// Package hardware is the base package for the console emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Console type is the root of the emulation and owns every component of
// the console. Components never refer to one another directly. Bus accesses
// are routed by the Console using the memory map and time is distributed by
// the Console's scheduler.
//
// The emulation can be run an instruction at a time with RunInstruction(),
// a frame at a time with RunFrame(), or continuously with Run(). After each
// CPU bus access the scheduler advances the PPU by whole dots and adds to the
// APU's cycle credit. Interrupts and HDMA are applied between instructions.
package hardware
