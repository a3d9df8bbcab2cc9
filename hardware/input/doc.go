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

// Package input implements the two controller ports of the SNES. A port
// can have a joypad, a mouse or nothing plugged into it.
//
// Controllers are read in one of two ways. The serial protocol at $4016 and
// $4017 latches the controller state and then shifts it out one bit at a
// time. The automatic joypad read performed by the console at the start of
// vertical blank reads the first sixteen bits of each port into the JOY
// registers, through the AutoRead() function.
package input
