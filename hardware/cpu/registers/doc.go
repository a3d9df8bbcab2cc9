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

// Package registers implements the register types of the 65816. The status
// register is a structure of flags. The general purpose registers are
// 16-bit values that may be used as 8-bit values depending on the M and X
// flags of the status register.
//
// Register values are plain exported fields so that a register file can be
// copied and serialised without special handling.
package registers
