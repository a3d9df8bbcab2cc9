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

package debugger

import "github.com/jetsetilly/gopher16/debugger/easyterm"

const (
	keyEsc      = easyterm.KeyEsc
	keyEOF      = easyterm.KeyEOF
	keyReturn   = easyterm.KeyReturn
	keyCarriage = easyterm.KeyCarriage
)

const help = `s or space  step one instruction
v           step to the next scanline
f           step to the end of the frame
r           reset the console
0-9         select save state slot
k           keep state in selected slot
l           load state from selected slot
h or ?      this help
q or esc    quit`
