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

// Package savestate serialises the state of the console to a byte slice and
// restores it again. Files are not handled by the package. Writing the
// serialised state to disk is left to the caller.
//
// The state is encoded with MessagePack. A serialised state records the
// hash of the cartridge it was made with and can only be restored into a
// console with the same cartridge attached.
//
// The Slots type provides numbered in-memory save states suitable for quick
// save and quick load keys.
package savestate
