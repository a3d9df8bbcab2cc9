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

// Package ppu implements the video generator of the SNES. The package
// models the H and V counters, the register file at $2100 to $213F with its
// latches and flip-flops, and the three memories (VRAM, CGRAM and OAM).
//
// The PPU is advanced one dot at a time by the scheduler in the console
// with the Step() function. Step() returns the timing events that occur at
// the new counter position. The scheduler uses these to trigger HDMA,
// vertical blank and the other cross-component signals.
//
// A simplified line renderer draws each visible line into the frame buffer
// at the start of horizontal blank. It supports backgrounds in modes 0 and 1
// and sprites. Color math, windows, mosaic and mode 7 are not drawn although
// their registers are modelled.
package ppu
