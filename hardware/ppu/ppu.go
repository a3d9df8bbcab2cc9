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

package ppu

import (
	"fmt"

	"github.com/jetsetilly/gopher16/hardware/clocks"
	"github.com/jetsetilly/gopher16/random"
)

// Frame dimensions.
const (
	Width     = 256
	Height    = 224
	MaxHeight = 239
)

// Line timing in dots.
const (
	DotsPerLine = 341

	hblankEnd   = 1
	hdmaInitDot = 6
	hblankStart = 274
	hdmaDot     = 278
)

// Version numbers of the two PPU chips.
const (
	ppu1Version = 1
	ppu2Version = 3
)

// Event is a bitmask of timing events returned by Step().
type Event uint8

// List of timing events.
const (
	EventLineStart Event = 1 << iota
	EventHBlankStart
	EventHBlankEnd
	EventHDMAInit
	EventHDMA
	EventVBlankStart
	EventFrameStart
)

// PPU is the state of the video generator.
type PPU struct {
	Region clocks.Region

	H      int
	V      int
	Field  bool
	Frames uint64

	// INIDISP
	ForcedBlank bool
	Brightness  uint8

	OBSEL       uint8
	OAMReload   uint16
	OAMAddress  uint16
	OAMPriority bool
	OAMLatch    uint8

	BGMODE uint8
	MOSAIC uint8
	BGSC   [4]uint8
	BGNBA  [2]uint8

	HOffset     [4]uint16
	VOffset     [4]uint16
	ScrollPrev1 uint8
	ScrollPrev2 uint8

	M7Prev    uint8
	M7HOffset uint16
	M7VOffset uint16
	M7SEL     uint8

	// M7A, M7B, M7C, M7D, M7X, M7Y
	M7 [6]uint16

	VMAIN       uint8
	VRAMAddress uint16
	VRAMLatch   uint16

	CGAddress uint8
	CGLatch   uint8
	CGHigh    bool

	WindowSel   [3]uint8
	WindowPos   [4]uint8
	WindowLogic [2]uint8

	TM, TS, TMW, TSW uint8
	CGWSEL, CGADSUB  uint8
	FixedColor       uint16
	SETINI           uint8

	OPHCT           uint16
	OPVCT           uint16
	OPHCTHigh       bool
	OPVCTHigh       bool
	CountersLatched bool

	TimeOver  bool
	RangeOver bool

	// the open bus values of the two PPU chips
	MDR1 uint8
	MDR2 uint8

	VRAM  [0x8000]uint16
	CGRAM [256]uint16
	OAM   [544]uint8

	// BGR555 pixels. the number of lines in the most recently completed
	// frame is in FrameHeight
	FrameBuffer [Width * MaxHeight]uint16
	FrameHeight int
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU(region clocks.Region) *PPU {
	p := &PPU{Region: region}
	p.Reset(nil)
	return p
}

// Snapshot creates a copy of the PPU in its current state.
func (p *PPU) Snapshot() *PPU {
	n := *p
	return &n
}

// Reset the PPU. If rnd is not nil the memories are filled with random
// values.
func (p *PPU) Reset(rnd *random.Random) {
	region := p.Region
	*p = PPU{
		Region:      region,
		ForcedBlank: true,
		FrameHeight: Height,
	}

	if rnd == nil {
		return
	}

	b := make([]uint8, len(p.VRAM)*2+len(p.CGRAM)*2+len(p.OAM))
	rnd.FillBytes(b)
	for i := range p.VRAM {
		p.VRAM[i] = uint16(b[i*2]) | uint16(b[i*2+1])<<8
	}
	b = b[len(p.VRAM)*2:]
	for i := range p.CGRAM {
		p.CGRAM[i] = (uint16(b[i*2]) | uint16(b[i*2+1])<<8) & 0x7fff
	}
	b = b[len(p.CGRAM)*2:]
	copy(p.OAM[:], b)
}

func (p *PPU) String() string {
	return fmt.Sprintf("V=%03d H=%03d mode=%d blank=%v bright=%d", p.V, p.H, p.BGMODE&0x07, p.ForcedBlank, p.Brightness)
}

// Interlace returns true if interlace mode is enabled in SETINI.
func (p *PPU) Interlace() bool {
	return p.SETINI&0x01 == 0x01
}

// Overscan returns true if the 239 line mode is enabled in SETINI.
func (p *PPU) Overscan() bool {
	return p.SETINI&0x04 == 0x04
}

// VBlankLine returns the first line of vertical blank.
func (p *PPU) VBlankLine() int {
	if p.Overscan() {
		return MaxHeight + 1
	}
	return Height + 1
}

// Lines returns the number of lines in the current frame. In interlace mode
// the even field has one extra line.
func (p *PPU) Lines() int {
	n := p.Region.Scanlines()
	if p.Interlace() && !p.Field {
		n++
	}
	return n
}

// InVBlank returns true if the V counter is in vertical blank.
func (p *PPU) InVBlank() bool {
	return p.V >= p.VBlankLine()
}

// InHBlank returns true if the H counter is in horizontal blank.
func (p *PPU) InHBlank() bool {
	return p.H < hblankEnd || p.H >= hblankStart
}

// LatchCounters copies the H and V counters into OPHCT and OPVCT.
func (p *PPU) LatchCounters() {
	p.OPHCT = uint16(p.H)
	p.OPVCT = uint16(p.V)
	p.CountersLatched = true
}

// Step advances the PPU by one dot and returns the events that occur at the
// new position.
func (p *PPU) Step() Event {
	p.H++
	if p.H >= DotsPerLine {
		p.H = 0
		p.V++
		if p.V >= p.Lines() {
			p.V = 0
			p.Field = !p.Field
			p.Frames++
		}
	}

	var ev Event

	switch p.H {
	case 0:
		ev |= EventLineStart
		if p.V == 0 {
			ev |= EventFrameStart
			p.TimeOver = false
			p.RangeOver = false
		}
		if p.V == p.VBlankLine() {
			ev |= EventVBlankStart
			p.FrameHeight = p.V - 1
			if !p.ForcedBlank {
				p.OAMAddress = p.OAMReload << 1
			}
		}
	case hblankEnd:
		ev |= EventHBlankEnd
	case hdmaInitDot:
		if p.V == 0 {
			ev |= EventHDMAInit
		}
	case hblankStart:
		ev |= EventHBlankStart
		if p.V >= 1 && p.V < p.VBlankLine() {
			p.renderLine(p.V - 1)
		}
	case hdmaDot:
		if p.V < p.VBlankLine() {
			ev |= EventHDMA
		}
	}

	return ev
}

// Frame is a copy of a completed frame.
type Frame struct {
	// BGR555 pixels in rows of Width
	Pixels []uint16
	Width  int
	Height int

	// the frame number from the PPU frame counter
	Number uint64
}

// Pixel returns the colour at the coordinates as 8-bit RGB components.
func (f *Frame) Pixel(x, y int) (uint8, uint8, uint8) {
	c := f.Pixels[y*f.Width+x]
	r := uint8(c&0x1f) << 3
	g := uint8(c>>5&0x1f) << 3
	b := uint8(c>>10&0x1f) << 3
	return r | r>>5, g | g>>5, b | b>>5
}

// Frame returns a copy of the most recently completed frame.
func (p *PPU) Frame() *Frame {
	f := &Frame{
		Pixels: make([]uint16, Width*p.FrameHeight),
		Width:  Width,
		Height: p.FrameHeight,
		Number: p.Frames,
	}
	copy(f.Pixels, p.FrameBuffer[:])
	return f
}
