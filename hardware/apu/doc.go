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

// Package apu is the audio subsystem: the SPC700 processor, its 64K of
// RAM, the IPL boot ROM, three timers, the DSP and the four mailbox ports
// shared with the main CPU.
//
// The APU runs on its own clock. The owner adds cycle credit with
// AddCredit() as master time passes and calls Catchup() to run the
// processor until the credit is spent. Instructions are never split so the
// credit can become slightly negative, in which case the debt is repaid
// from the next credit.
//
// Values written by the CPU to the mailbox ports are staged and only become
// visible to the SPC700 the next time the APU is caught up. Values written
// by the SPC700 are visible to the CPU immediately, which is correct so
// long as the owner catches up the APU before the CPU reads a port.
package apu
