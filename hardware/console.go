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
	"fmt"

	"github.com/jetsetilly/gopher16/cartridgeloader"
	"github.com/jetsetilly/gopher16/environment"
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
	"github.com/jetsetilly/gopher16/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher16/hardware/ppu"
	"github.com/jetsetilly/gopher16/hardware/preferences"
	"github.com/jetsetilly/gopher16/logger"
)

// attachment is a coprocessor and the regions of the address space it
// owns.
type attachment struct {
	cp      coprocessor.Coprocessor
	regions []memorymap.Region
}

// Console is the main container for the emulated components of the console.
type Console struct {
	env *environment.Environment

	CPU   *cpu.CPU
	Mem   *memory.Memory
	PPU   *ppu.PPU
	APU   *apu.APU
	CPUIO *cpuio.CPUIO
	DMA   *dma.DMA
	Ports *input.Ports

	// nil if no cartridge is attached
	Cart *cartridge.Cartridge

	Region clocks.Region
	Timing Timing

	// faults reported by coprocessors
	Faults faults.Faults

	coprocs []attachment
	memmap  *memorymap.Map

	// the view of the console used by the DMA engine
	dmaBus dmaBus

	// HDMA is running. HDMA cannot interrupt itself
	inHDMA bool

	// output of the last completed frame
	frame   *ppu.Frame
	samples []apu.Sample
}

// NewConsole creates a new Console and everything associated with the
// hardware. A cartridge should be attached before the emulation is run.
func NewConsole(env *environment.Environment) (*Console, error) {
	if env == nil {
		return nil, fmt.Errorf("console: no environment")
	}

	c := &Console{
		env:    env,
		Mem:    memory.NewMemory(),
		PPU:    ppu.NewPPU(clocks.RegionNTSC),
		APU:    apu.NewAPU(),
		DMA:    dma.NewDMA(),
		Ports:  input.NewPorts(),
		Faults: faults.NewFaults(),
	}
	c.dmaBus = dmaBus{c}
	c.CPU = cpu.NewCPU(c)
	c.CPUIO = cpuio.NewCPUIO(c.PPU, c.Ports)

	if err := c.buildMap(); err != nil {
		return nil, err
	}

	c.Reset()

	return c, nil
}

func (c *Console) String() string {
	if c.Cart == nil {
		return fmt.Sprintf("%s (no cartridge)", c.Region)
	}
	return fmt.Sprintf("%s %s", c.Cart, c.Region)
}

// buildMap creates the memory map from the system regions, the cartridge
// and the attached coprocessors.
func (c *Console) buildMap() error {
	regions := memory.SystemRegions()
	if c.Cart != nil {
		regions = append(regions, c.Cart.Regions()...)
	}
	for _, a := range c.coprocs {
		regions = append(regions, a.regions...)
	}

	m, err := memorymap.Build(regions)
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}
	c.memmap = m

	return nil
}

// AttachCartridge loads the cartridge image and resets the console. Any
// attached coprocessors are detached.
func (c *Console) AttachCartridge(cl cartridgeloader.Loader) error {
	if err := cl.Load(); err != nil {
		return fmt.Errorf("console: %w", err)
	}

	cart, err := cartridge.NewCartridge(cl.Data)
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}

	if !cart.ChecksumOK {
		logger.Logf(c.env, "cartridge", "checksum mismatch: header %04x computed %04x",
			cart.Header.Checksum, cart.ComputedChecksum)
	}
	if cart.Header.HasCoprocessor() {
		logger.Logf(c.env, "cartridge", "coprocessor not emulated: %s", cart.Header.CoprocessorName())
	}

	c.Cart = cart
	c.coprocs = c.coprocs[:0]

	// the cartridge regions are built from the header. an overlap is a
	// programming error
	if err := c.buildMap(); err != nil {
		panic(err)
	}

	c.selectRegion()
	c.Reset()

	return nil
}

// AttachCoprocessor maps a coprocessor into the address space. The ID
// field of the regions is set by the console.
func (c *Console) AttachCoprocessor(cp coprocessor.Coprocessor, regions ...memorymap.Region) error {
	id := len(c.coprocs)

	a := attachment{cp: cp}
	for _, r := range regions {
		r.Owner = memorymap.Coprocessor
		r.ID = id
		a.regions = append(a.regions, r)
	}

	c.coprocs = append(c.coprocs, a)
	if err := c.buildMap(); err != nil {
		c.coprocs = c.coprocs[:id]
		if err := c.buildMap(); err != nil {
			panic(err)
		}
		return fmt.Errorf("console: attaching %s: %w", cp.ID(), err)
	}

	cp.Reset()
	logger.Logf(c.env, "console", "attached coprocessor %s", cp.ID())

	return nil
}

// selectRegion sets the region from the cartridge header. The region
// preference overrides the header.
func (c *Console) selectRegion() {
	region := clocks.RegionNTSC
	if c.Cart != nil {
		region = c.Cart.Header.Region()
	}

	switch c.env.Prefs.Region.Get().(string) {
	case preferences.RegionNTSC:
		region = clocks.RegionNTSC
	case preferences.RegionPAL:
		region = clocks.RegionPAL
	}

	c.Region = region
	c.PPU.Region = region
	logger.Logf(c.env, "console", "region: %s", region)
}

// Reset emulates the power-on sequence of the console. All components are
// reset and the CPU loads the reset vector.
func (c *Console) Reset() {
	var rnd = c.env.Random
	if !c.env.Prefs.RandomState.Get().(bool) {
		rnd = nil
	}

	c.Mem.Reset(rnd)
	c.PPU.Reset(rnd)
	c.APU.Reset(rnd)
	c.CPUIO.Reset()
	c.DMA.Reset()
	c.Ports.Reset()
	c.Faults.Clear()
	for _, a := range c.coprocs {
		a.cp.Reset()
	}

	c.Timing = Timing{
		APURatio: clocks.APURatio(c.Region),
	}
	c.inHDMA = false
	c.frame = nil
	c.samples = nil

	c.CPU.Reset()
}

// SetController plugs a device into a controller port.
func (c *Console) SetController(port int, dev input.Device) error {
	return c.Ports.Plug(input.PortID(port), dev)
}

// SetJoypad sets the buttons held on the joypad in the controller port.
func (c *Console) SetJoypad(port int, buttons uint16) error {
	return c.Ports.SetJoypad(input.PortID(port), buttons)
}

// Frame returns the last completed frame. It is nil until the first frame
// has completed.
func (c *Console) Frame() *ppu.Frame {
	return c.frame
}

// Samples returns the audio generated during the last completed frame.
func (c *Console) Samples() []apu.Sample {
	return c.samples
}

// MemoryMap returns the regions of the current memory map.
func (c *Console) MemoryMap() []memorymap.Region {
	return c.memmap.Regions()
}
