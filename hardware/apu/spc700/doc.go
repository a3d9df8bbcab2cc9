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

// Package spc700 implements the processor of the audio subsystem. The
// processor runs from its own 64K address space, reached through the Bus
// interface, and is stepped one instruction at a time by the owning APU.
//
// Cycle counts are taken from a per-opcode table with a penalty of two
// cycles for taken branches. Individual bus accesses are not timed.
package spc700
