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

// Package cartridgeloader is used to specify the data that is to be attached
// to the emulated console.
//
// When the cartridge is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// different sources. Currently local files and data over HTTP are supported.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.NewLoader("roms/game.sfc")
//
// Images created by copier devices have a 512 byte header before the ROM
// data. The header is detected by the size of the file and removed by
// Load(). The Hash field is the SHA-1 of the data without the copier header.
package cartridgeloader
