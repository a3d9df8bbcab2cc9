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

import "github.com/jetsetilly/gopher16/hardware/clocks"

// Register offsets from $2100.
const (
	INIDISP = 0x00
	OBSEL   = 0x01
	OAMADDL = 0x02
	OAMADDH = 0x03
	OAMDATA = 0x04
	BGMODE  = 0x05
	MOSAIC  = 0x06
	BG1SC   = 0x07
	BG4SC   = 0x0a
	BG12NBA = 0x0b
	BG34NBA = 0x0c
	BG1HOFS = 0x0d
	BG1VOFS = 0x0e
	BG4VOFS = 0x14
	VMAIN   = 0x15
	VMADDL  = 0x16
	VMADDH  = 0x17
	VMDATAL = 0x18
	VMDATAH = 0x19
	M7SEL   = 0x1a
	M7A     = 0x1b
	M7B     = 0x1c
	M7Y     = 0x20
	CGADD   = 0x21
	CGDATA  = 0x22
	W12SEL  = 0x23
	WOBJSEL = 0x25
	WH0     = 0x26
	WH3     = 0x29
	WBGLOG  = 0x2a
	WOBJLOG = 0x2b
	TM      = 0x2c
	TS      = 0x2d
	TMW     = 0x2e
	TSW     = 0x2f
	CGWSEL  = 0x30
	CGADSUB = 0x31
	COLDATA = 0x32
	SETINI  = 0x33
	MPYL    = 0x34
	MPYM    = 0x35
	MPYH    = 0x36
	SLHV    = 0x37
	RDOAM   = 0x38
	RDVRAML = 0x39
	RDVRAMH = 0x3a
	RDCGRAM = 0x3b
	OPHCT   = 0x3c
	OPVCT   = 0x3d
	STAT77  = 0x3e
	STAT78  = 0x3f
)

func (p *PPU) vramStep() uint16 {
	switch p.VMAIN & 0x03 {
	case 0:
		return 1
	case 1:
		return 32
	}
	return 128
}

// remap the VRAM address according to the translation bits of VMAIN.
func (p *PPU) vramRemap() uint16 {
	a := p.VRAMAddress
	var n uint
	switch (p.VMAIN >> 2) & 0x03 {
	case 0:
		return a & 0x7fff
	case 1:
		n = 8
	case 2:
		n = 9
	case 3:
		n = 10
	}
	mask := uint16(1)<<n - 1
	low := a & mask
	low = (low<<3 | low>>(n-3)) & mask
	return (a&^mask | low) & 0x7fff
}

func (p *PPU) vramIncrement(high bool) {
	if (p.VMAIN&0x80 == 0x80) == high {
		p.VRAMAddress += p.vramStep()
	}
}

func (p *PPU) vramPrefetch() {
	p.VRAMLatch = p.VRAM[p.vramRemap()]
}

func (p *PPU) oamIndex(a uint16) uint16 {
	if a >= 0x200 {
		return 0x200 | a&0x1f
	}
	return a
}

// Multiply returns the signed result of M7A multiplied by the high byte of
// M7B, as presented at MPYL, MPYM and MPYH.
func (p *PPU) Multiply() uint32 {
	r := int32(int16(p.M7[0])) * int32(int8(p.M7[1]>>8))
	return uint32(r) & 0xffffff
}

// Read a register. The reg argument is the offset from $2100. Reading a
// write-only register returns the open bus value of the PPU chip.
func (p *PPU) Read(reg uint16) uint8 {
	switch reg {
	case MPYL:
		p.MDR1 = uint8(p.Multiply())
		return p.MDR1
	case MPYM:
		p.MDR1 = uint8(p.Multiply() >> 8)
		return p.MDR1
	case MPYH:
		p.MDR1 = uint8(p.Multiply() >> 16)
		return p.MDR1
	case SLHV:
		p.LatchCounters()
		return p.MDR1
	case RDOAM:
		p.MDR1 = p.OAM[p.oamIndex(p.OAMAddress)]
		p.OAMAddress = (p.OAMAddress + 1) & 0x3ff
		return p.MDR1
	case RDVRAML:
		p.MDR1 = uint8(p.VRAMLatch)
		if p.VMAIN&0x80 == 0 {
			p.vramPrefetch()
			p.VRAMAddress += p.vramStep()
		}
		return p.MDR1
	case RDVRAMH:
		p.MDR1 = uint8(p.VRAMLatch >> 8)
		if p.VMAIN&0x80 == 0x80 {
			p.vramPrefetch()
			p.VRAMAddress += p.vramStep()
		}
		return p.MDR1
	case RDCGRAM:
		c := p.CGRAM[p.CGAddress]
		if !p.CGHigh {
			p.MDR2 = uint8(c)
		} else {
			p.MDR2 = p.MDR2&0x80 | uint8(c>>8)&0x7f
			p.CGAddress++
		}
		p.CGHigh = !p.CGHigh
		return p.MDR2
	case OPHCT:
		if !p.OPHCTHigh {
			p.MDR2 = uint8(p.OPHCT)
		} else {
			p.MDR2 = p.MDR2&0xfe | uint8(p.OPHCT>>8)&0x01
		}
		p.OPHCTHigh = !p.OPHCTHigh
		return p.MDR2
	case OPVCT:
		if !p.OPVCTHigh {
			p.MDR2 = uint8(p.OPVCT)
		} else {
			p.MDR2 = p.MDR2&0xfe | uint8(p.OPVCT>>8)&0x01
		}
		p.OPVCTHigh = !p.OPVCTHigh
		return p.MDR2
	case STAT77:
		v := p.MDR1&0x10 | ppu1Version
		if p.TimeOver {
			v |= 0x80
		}
		if p.RangeOver {
			v |= 0x40
		}
		p.MDR1 = v
		return v
	case STAT78:
		v := p.MDR2&0x20 | ppu2Version
		if p.Field {
			v |= 0x80
		}
		if p.CountersLatched {
			v |= 0x40
		}
		if p.Region == clocks.RegionPAL {
			v |= 0x10
		}
		p.CountersLatched = false
		p.OPHCTHigh = false
		p.OPVCTHigh = false
		p.MDR2 = v
		return v
	}

	return p.MDR1
}

// Write a register. The reg argument is the offset from $2100.
func (p *PPU) Write(reg uint16, data uint8) {
	switch {
	case reg >= BG1SC && reg <= BG4SC:
		p.BGSC[reg-BG1SC] = data
		return
	case reg >= BG1HOFS && reg <= BG4VOFS:
		bg := (reg - BG1HOFS) / 2
		if (reg-BG1HOFS)&0x01 == 0 {
			p.HOffset[bg] = uint16(data)<<8 | uint16(p.ScrollPrev1&^0x07) | uint16(p.ScrollPrev2&0x07)
			p.ScrollPrev2 = data
		} else {
			p.VOffset[bg] = uint16(data)<<8 | uint16(p.ScrollPrev1)
		}
		p.ScrollPrev1 = data

		// BG1 scroll registers are shared with mode 7
		if bg == 0 {
			v := uint16(data)<<8 | uint16(p.M7Prev)
			if reg == BG1HOFS {
				p.M7HOffset = v
			} else {
				p.M7VOffset = v
			}
			p.M7Prev = data
		}
		return
	case reg >= M7A && reg <= M7Y:
		p.M7[reg-M7A] = uint16(data)<<8 | uint16(p.M7Prev)
		p.M7Prev = data
		return
	case reg >= W12SEL && reg <= WOBJSEL:
		p.WindowSel[reg-W12SEL] = data
		return
	case reg >= WH0 && reg <= WH3:
		p.WindowPos[reg-WH0] = data
		return
	}

	switch reg {
	case INIDISP:
		if p.ForcedBlank && data&0x80 == 0 && p.V == p.VBlankLine() {
			p.OAMAddress = p.OAMReload << 1
		}
		p.ForcedBlank = data&0x80 == 0x80
		p.Brightness = data & 0x0f
	case OBSEL:
		p.OBSEL = data
	case OAMADDL:
		p.OAMReload = p.OAMReload&0x100 | uint16(data)
		p.OAMAddress = p.OAMReload << 1
	case OAMADDH:
		p.OAMReload = p.OAMReload&0x0ff | uint16(data&0x01)<<8
		p.OAMPriority = data&0x80 == 0x80
		p.OAMAddress = p.OAMReload << 1
	case OAMDATA:
		a := p.OAMAddress
		if a < 0x200 {
			if a&0x01 == 0 {
				p.OAMLatch = data
			} else {
				p.OAM[a-1] = p.OAMLatch
				p.OAM[a] = data
			}
		} else {
			p.OAM[p.oamIndex(a)] = data
		}
		p.OAMAddress = (a + 1) & 0x3ff
	case BGMODE:
		p.BGMODE = data
	case MOSAIC:
		p.MOSAIC = data
	case BG12NBA:
		p.BGNBA[0] = data
	case BG34NBA:
		p.BGNBA[1] = data
	case VMAIN:
		p.VMAIN = data
	case VMADDL:
		p.VRAMAddress = p.VRAMAddress&0xff00 | uint16(data)
		p.vramPrefetch()
	case VMADDH:
		p.VRAMAddress = p.VRAMAddress&0x00ff | uint16(data)<<8
		p.vramPrefetch()
	case VMDATAL:
		a := p.vramRemap()
		p.VRAM[a] = p.VRAM[a]&0xff00 | uint16(data)
		p.vramIncrement(false)
	case VMDATAH:
		a := p.vramRemap()
		p.VRAM[a] = p.VRAM[a]&0x00ff | uint16(data)<<8
		p.vramIncrement(true)
	case M7SEL:
		p.M7SEL = data
	case CGADD:
		p.CGAddress = data
		p.CGHigh = false
	case CGDATA:
		if !p.CGHigh {
			p.CGLatch = data
		} else {
			p.CGRAM[p.CGAddress] = uint16(data&0x7f)<<8 | uint16(p.CGLatch)
			p.CGAddress++
		}
		p.CGHigh = !p.CGHigh
	case WBGLOG:
		p.WindowLogic[0] = data
	case WOBJLOG:
		p.WindowLogic[1] = data
	case TM:
		p.TM = data
	case TS:
		p.TS = data
	case TMW:
		p.TMW = data
	case TSW:
		p.TSW = data
	case CGWSEL:
		p.CGWSEL = data
	case CGADSUB:
		p.CGADSUB = data
	case COLDATA:
		c := uint16(data & 0x1f)
		if data&0x20 == 0x20 {
			p.FixedColor = p.FixedColor&^0x001f | c
		}
		if data&0x40 == 0x40 {
			p.FixedColor = p.FixedColor&^0x03e0 | c<<5
		}
		if data&0x80 == 0x80 {
			p.FixedColor = p.FixedColor&^0x7c00 | c<<10
		}
	case SETINI:
		p.SETINI = data
	}
}
