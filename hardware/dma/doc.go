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

// Package dma implements the eight channel DMA and HDMA engine. General
// purpose DMA is started by writing to MDMAEN ($420B) and runs to
// completion, halting the CPU. HDMA transfers a few bytes per channel at
// the end of every visible line, driven by tables in memory.
//
// The engine performs its bus accesses through the Bus interface, which is
// also used to report the cost of each step in master cycles. The console
// implements the interface and advances the rest of the system from Tick().
package dma
