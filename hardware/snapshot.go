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

package hardware

import (
	"github.com/jetsetilly/gopher16/hardware/apu"
	"github.com/jetsetilly/gopher16/hardware/clocks"
	"github.com/jetsetilly/gopher16/hardware/coprocessor"
	"github.com/jetsetilly/gopher16/hardware/coprocessor/faults"
	"github.com/jetsetilly/gopher16/hardware/cpu"
	"github.com/jetsetilly/gopher16/hardware/cpuio"
	"github.com/jetsetilly/gopher16/hardware/dma"
	"github.com/jetsetilly/gopher16/hardware/input"
	"github.com/jetsetilly/gopher16/hardware/memory"
	"github.com/jetsetilly/gopher16/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher16/hardware/ppu"
	"github.com/jetsetilly/gopher16/logger"
)

// State stores the console sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
//
// No part of the State refers to another part. The ROM data of the
// cartridge is not part of the State.
type State struct {
	CPU   *cpu.CPU
	Mem   *memory.Memory
	PPU   *ppu.PPU
	APU   *apu.APU
	CPUIO *cpuio.CPUIO
	DMA   *dma.DMA
	Ports *input.Ports
	Cart  *cartridge.Cartridge

	Region clocks.Region
	Timing Timing

	// state of attached coprocessors in the order they were attached. the
	// entry is nil for coprocessors without state
	Coprocessors [][]byte
}

// Snapshot creates a copy of a previously snapshotted State.
func (s *State) Snapshot() *State {
	n := &State{
		CPU:    s.CPU.Snapshot(),
		Mem:    s.Mem.Snapshot(),
		PPU:    s.PPU.Snapshot(),
		APU:    s.APU.Snapshot(),
		CPUIO:  s.CPUIO.Snapshot(),
		DMA:    s.DMA.Snapshot(),
		Ports:  s.Ports.Snapshot(),
		Region: s.Region,
		Timing: s.Timing,
	}
	if s.Cart != nil {
		n.Cart = s.Cart.Snapshot()
	}
	for _, b := range s.Coprocessors {
		n.Coprocessors = append(n.Coprocessors, append([]byte(nil), b...))
	}
	return n
}

// Snapshot the state of the console sub-systems.
func (c *Console) Snapshot() *State {
	s := &State{
		CPU:    c.CPU.Snapshot(),
		Mem:    c.Mem.Snapshot(),
		PPU:    c.PPU.Snapshot(),
		APU:    c.APU.Snapshot(),
		CPUIO:  c.CPUIO.Snapshot(),
		DMA:    c.DMA.Snapshot(),
		Ports:  c.Ports.Snapshot(),
		Region: c.Region,
		Timing: c.Timing,
	}
	if c.Cart != nil {
		s.Cart = c.Cart.Snapshot()
	}

	for _, a := range c.coprocs {
		var b []byte
		if st, ok := a.cp.(coprocessor.Stateful); ok {
			var err error
			b, err = st.SaveState()
			if err != nil {
				c.fault(a.cp.ID(), faults.StateFault, 0, err)
			}
		}
		s.Coprocessors = append(s.Coprocessors, b)
	}

	return s
}

// Plumb a previously snapshotted system.
//
// The fromDifferentEmulation indicates that the State has been created by a
// different emulation than the one being plumbed into. For example, a State
// restored from a serialised save state.
func (c *Console) Plumb(state *State, fromDifferentEmulation bool) {
	if state == nil {
		panic("console: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. the console must
	// not change what is stored in the state
	state = state.Snapshot()

	c.CPU = state.CPU
	c.Mem = state.Mem
	c.PPU = state.PPU
	c.APU = state.APU
	c.CPUIO = state.CPUIO
	c.DMA = state.DMA
	c.Ports = state.Ports
	c.Region = state.Region
	c.Timing = state.Timing

	// the ROM data is taken from the cartridge already attached
	if state.Cart != nil && c.Cart != nil {
		state.Cart.Plumb(c.Cart)
		c.Cart = state.Cart
	}

	c.CPU.Plumb(c)
	c.APU.Plumb()
	c.CPUIO.Plumb(c.PPU, c.Ports)

	for i, a := range c.coprocs {
		st, ok := a.cp.(coprocessor.Stateful)
		if !ok || i >= len(state.Coprocessors) {
			continue
		}
		if err := st.LoadState(state.Coprocessors[i]); err != nil {
			c.fault(a.cp.ID(), faults.StateFault, 0, err)
		}
	}

	c.inHDMA = false
	c.frame = nil
	c.samples = nil

	if fromDifferentEmulation {
		logger.Logf(c.env, "console", "plumbed state at frame %d", c.Timing.Frames)
	}
}
