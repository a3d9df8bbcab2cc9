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

// Package debugger implements the STEP mode of the emulator. It is a simple
// monitor that executes the emulation one instruction, one scanline or one
// frame at a time and shows the state of the CPU and the PPU after every
// step.
//
// Interaction is through the Terminal interface. The easyterm package
// provides an implementation for posix terminals in which every key press
// is acted upon immediately.
//
//	dbg, _ := debugger.NewDebugger(console, term)
//	err := dbg.Start()
//
// Machine state can be kept in one of the in-memory save state slots and
// restored at a later point.
package debugger
