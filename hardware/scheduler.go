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
	"github.com/jetsetilly/gopher16/hardware/clocks"
	"github.com/jetsetilly/gopher16/hardware/coprocessor/faults"
	"github.com/jetsetilly/gopher16/hardware/ppu"
)

// Timing is the state of the scheduler.
type Timing struct {
	// master clock cycles since reset
	Master uint64

	// CPU bus and internal cycles since reset. cycles of DMA are not
	// included
	CPUCycles uint64

	// PPU dots since reset and the master cycles carried toward the next dot
	Dots         uint64
	DotRemainder int

	// converts master cycles into SPC700 cycles
	APURatio clocks.Ratio

	// HDMA events waiting for the next opportunity to run
	HDMAInit bool
	HDMALine bool

	// vertical blank has started but the frame has not been collected
	FrameComplete bool

	// frames collected since reset
	Frames uint64
}

// Clocks is a summary of the counters of each clock domain.
type Clocks struct {
	Master uint64
	CPU    uint64
	Dots   uint64
	APU    uint64
}

// Clocks returns the current value of the counter of each clock domain.
// Counters never go backwards except on Reset() or Plumb().
func (c *Console) Clocks() Clocks {
	return Clocks{
		Master: c.Timing.Master,
		CPU:    c.Timing.CPUCycles,
		Dots:   c.Timing.Dots,
		APU:    c.APU.Cycles,
	}
}

// advance every component except the CPU by a number of master cycles.
func (c *Console) advance(masterCycles int) {
	c.Timing.Master += uint64(masterCycles)

	c.Timing.DotRemainder += masterCycles
	for c.Timing.DotRemainder >= clocks.MasterPerDot {
		c.Timing.DotRemainder -= clocks.MasterPerDot
		c.dot()
	}

	// the APU only runs when it is caught up. until then the cycles are
	// credit
	c.APU.AddCredit(c.Timing.APURatio.Advance(uint64(masterCycles)))

	c.CPUIO.Advance(masterCycles)

	for _, a := range c.coprocs {
		if err := a.cp.Advance(masterCycles); err != nil {
			c.fault(a.cp.ID(), faults.AdvanceFault, 0, err)
		}
	}
}

// dot steps the PPU and forwards the timing events to the components that
// need them.
func (c *Console) dot() {
	c.Timing.Dots++

	ev := c.PPU.Step()
	c.CPUIO.Dot(c.PPU.H, c.PPU.V)

	if ev == 0 {
		return
	}

	if ev&ppu.EventFrameStart == ppu.EventFrameStart {
		c.CPUIO.EndVBlank()
	}
	if ev&ppu.EventHBlankEnd == ppu.EventHBlankEnd {
		c.CPUIO.SetHBlank(false)
	}
	if ev&ppu.EventHBlankStart == ppu.EventHBlankStart {
		c.CPUIO.SetHBlank(true)
	}
	if ev&ppu.EventVBlankStart == ppu.EventVBlankStart {
		c.CPUIO.StartVBlank()
		c.Timing.FrameComplete = true
	}
	if ev&ppu.EventHDMAInit == ppu.EventHDMAInit {
		c.Timing.HDMAInit = true
	}
	if ev&ppu.EventHDMA == ppu.EventHDMA {
		c.Timing.HDMALine = true
	}
}

// cpuCycle is called by the CPU after every bus access and internal cycle.
// A general DMA requested by the access runs before the CPU continues.
func (c *Console) cpuCycle(masterCycles int) error {
	c.Timing.CPUCycles++
	c.advance(masterCycles)

	if c.DMA.GeneralPending() {
		c.DMA.RunGeneral(c.dmaBus)
	}

	return nil
}

// runHDMA services any outstanding HDMA events.
func (c *Console) runHDMA() {
	if !c.Timing.HDMAInit && !c.Timing.HDMALine {
		return
	}

	c.inHDMA = true
	defer func() {
		c.inHDMA = false
	}()

	if c.Timing.HDMAInit {
		c.Timing.HDMAInit = false
		c.DMA.InitHDMA(c.dmaBus)
	}
	if c.Timing.HDMALine {
		c.Timing.HDMALine = false
		c.DMA.RunHDMA(c.dmaBus)
	}
}

// boundary is called between CPU instructions. Interrupt lines are only
// sampled by the CPU here.
func (c *Console) boundary() {
	c.runHDMA()

	if c.CPUIO.PollNMI() {
		c.CPU.RaiseNMI()
	}
	c.CPU.SetIRQ(c.CPUIO.IRQ())

	c.APU.Catchup()
}
