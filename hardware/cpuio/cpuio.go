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

package cpuio

import (
	"fmt"
)

// Version is the revision of the CPU chip reported by RDNMI.
const Version = 2

// AutoJoypadCycles is the number of master cycles the automatic joypad
// read keeps the busy flag in HVBJOY set.
const AutoJoypadCycles = 4224

// Register offsets from $4200.
const (
	NMITIMEN = 0x00
	WRIO     = 0x01
	WRMPYA   = 0x02
	WRMPYB   = 0x03
	WRDIVL   = 0x04
	WRDIVH   = 0x05
	WRDIVB   = 0x06
	HTIMEL   = 0x07
	HTIMEH   = 0x08
	VTIMEL   = 0x09
	VTIMEH   = 0x0a
	MEMSEL   = 0x0d
	RDNMI    = 0x10
	TIMEUP   = 0x11
	HVBJOY   = 0x12
	RDIO     = 0x13
	RDDIVL   = 0x14
	RDDIVH   = 0x15
	RDMPYL   = 0x16
	RDMPYH   = 0x17
	JOY1L    = 0x18
	JOY4H    = 0x1f
)

// CounterLatch is implemented by the PPU. The counters are latched when
// bit 7 of WRIO goes from high to low.
type CounterLatch interface {
	LatchCounters()
}

// Joypads is implemented by the controller ports.
type Joypads interface {
	AutoRead() [4]uint16
}

// CPUIO is the state of the registers.
type CPUIO struct {
	NMIEnable  bool
	HIRQEnable bool
	VIRQEnable bool
	AutoJoypad bool

	IOPort uint8

	MultiplicandA uint8
	Dividend      uint16
	Quotient      uint16
	Product       uint16

	HTime uint16
	VTime uint16

	FastROM bool

	// RDNMI flag and TIMEUP flag
	NMIFlag bool
	IRQFlag bool

	VBlank bool
	HBlank bool

	// the NMI line is the logical AND of the NMI flag and the NMI enable.
	// a rising edge sets NMIEdge, which stays set until polled
	NMILine bool
	NMIEdge bool

	JoypadData     [4]uint16
	AutoJoypadBusy int

	latch   CounterLatch
	joypads Joypads
}

// NewCPUIO is the preferred method of initialisation for the CPUIO type.
func NewCPUIO(latch CounterLatch, joypads Joypads) *CPUIO {
	io := &CPUIO{
		latch:   latch,
		joypads: joypads,
	}
	io.Reset()
	return io
}

// Snapshot creates a copy of the registers in their current state.
func (io *CPUIO) Snapshot() *CPUIO {
	n := *io
	return &n
}

// Plumb the registers into a new PPU and controller ports.
func (io *CPUIO) Plumb(latch CounterLatch, joypads Joypads) {
	io.latch = latch
	io.joypads = joypads
}

// Reset registers to their power-on values.
func (io *CPUIO) Reset() {
	latch := io.latch
	joypads := io.joypads
	*io = CPUIO{
		IOPort:   0xff,
		HTime:    0x1ff,
		VTime:    0x1ff,
		latch:    latch,
		joypads:  joypads,
	}
}

func (io *CPUIO) String() string {
	return fmt.Sprintf("NMI=%v/%v IRQ=%v/%v H=%d V=%d FastROM=%v", io.NMIEnable, io.NMIFlag,
		io.HIRQEnable || io.VIRQEnable, io.IRQFlag, io.HTime, io.VTime, io.FastROM)
}

func (io *CPUIO) updateNMI() {
	line := io.NMIEnable && io.NMIFlag
	if line && !io.NMILine {
		io.NMIEdge = true
	}
	io.NMILine = line
}

// PollNMI returns true if there has been a rising edge on the NMI line
// since the last call.
func (io *CPUIO) PollNMI() bool {
	e := io.NMIEdge
	io.NMIEdge = false
	return e
}

// IRQ returns the level of the IRQ line.
func (io *CPUIO) IRQ() bool {
	return io.IRQFlag
}

// Read a register. The reg argument is the offset from $4200.
func (io *CPUIO) Read(reg uint16, openBus uint8) uint8 {
	switch reg {
	case RDNMI:
		v := openBus&0x70 | Version
		if io.NMIFlag {
			v |= 0x80
		}
		io.NMIFlag = false
		io.updateNMI()
		return v
	case TIMEUP:
		v := openBus & 0x7f
		if io.IRQFlag {
			v |= 0x80
		}
		io.IRQFlag = false
		return v
	case HVBJOY:
		v := openBus & 0x3e
		if io.VBlank {
			v |= 0x80
		}
		if io.HBlank {
			v |= 0x40
		}
		if io.AutoJoypadBusy > 0 {
			v |= 0x01
		}
		return v
	case RDIO:
		return io.IOPort
	case RDDIVL:
		return uint8(io.Quotient)
	case RDDIVH:
		return uint8(io.Quotient >> 8)
	case RDMPYL:
		return uint8(io.Product)
	case RDMPYH:
		return uint8(io.Product >> 8)
	}

	if reg >= JOY1L && reg <= JOY4H {
		d := io.JoypadData[(reg-JOY1L)/2]
		if reg&0x01 == 0x01 {
			return uint8(d >> 8)
		}
		return uint8(d)
	}

	return openBus
}

// Write a register. The reg argument is the offset from $4200.
func (io *CPUIO) Write(reg uint16, data uint8) {
	switch reg {
	case NMITIMEN:
		io.NMIEnable = data&0x80 == 0x80
		io.VIRQEnable = data&0x20 == 0x20
		io.HIRQEnable = data&0x10 == 0x10
		io.AutoJoypad = data&0x01 == 0x01
		if !io.VIRQEnable && !io.HIRQEnable {
			io.IRQFlag = false
		}
		io.updateNMI()
	case WRIO:
		if io.IOPort&0x80 == 0x80 && data&0x80 == 0x00 && io.latch != nil {
			io.latch.LatchCounters()
		}
		io.IOPort = data
	case WRMPYA:
		io.MultiplicandA = data
	case WRMPYB:
		io.Product = uint16(io.MultiplicandA) * uint16(data)
		io.Quotient = uint16(data)
	case WRDIVL:
		io.Dividend = io.Dividend&0xff00 | uint16(data)
	case WRDIVH:
		io.Dividend = io.Dividend&0x00ff | uint16(data)<<8
	case WRDIVB:
		if data == 0 {
			io.Quotient = 0xffff
			io.Product = io.Dividend
		} else {
			io.Quotient = io.Dividend / uint16(data)
			io.Product = io.Dividend % uint16(data)
		}
	case HTIMEL:
		io.HTime = io.HTime&0x100 | uint16(data)
	case HTIMEH:
		io.HTime = io.HTime&0x0ff | uint16(data&0x01)<<8
	case VTIMEL:
		io.VTime = io.VTime&0x100 | uint16(data)
	case VTIMEH:
		io.VTime = io.VTime&0x0ff | uint16(data&0x01)<<8
	case MEMSEL:
		io.FastROM = data&0x01 == 0x01
	}
}

// StartVBlank is called by the scheduler at the first line of vertical
// blank. The automatic joypad read is started if it is enabled.
func (io *CPUIO) StartVBlank() {
	io.VBlank = true
	io.NMIFlag = true
	io.updateNMI()

	if io.AutoJoypad && io.joypads != nil {
		io.JoypadData = io.joypads.AutoRead()
		io.AutoJoypadBusy = AutoJoypadCycles
	}
}

// EndVBlank is called by the scheduler at the start of a new frame.
func (io *CPUIO) EndVBlank() {
	io.VBlank = false
	io.NMIFlag = false
	io.updateNMI()
}

// SetHBlank is called by the scheduler on entry to and exit from
// horizontal blank.
func (io *CPUIO) SetHBlank(hblank bool) {
	io.HBlank = hblank
}

// Dot is called by the scheduler for every dot. The timer IRQ flag is set
// when the H and V counters match the enabled conditions.
func (io *CPUIO) Dot(h int, v int) {
	var match bool
	switch {
	case io.HIRQEnable && io.VIRQEnable:
		match = v == int(io.VTime) && h == int(io.HTime)
	case io.HIRQEnable:
		match = h == int(io.HTime)
	case io.VIRQEnable:
		match = v == int(io.VTime) && h == 0
	}
	if match {
		io.IRQFlag = true
	}
}

// Advance the registers by a number of master cycles.
func (io *CPUIO) Advance(masterCycles int) {
	if io.AutoJoypadBusy > 0 {
		io.AutoJoypadBusy -= masterCycles
		if io.AutoJoypadBusy < 0 {
			io.AutoJoypadBusy = 0
		}
	}
}
