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

// sprite sizes selected by bits 5 to 7 of OBSEL. the last two sizes are
// rectangular on hardware and are drawn here as squares
var spriteSizes = [8][2]int{
	{8, 16}, {8, 32}, {8, 64}, {16, 32},
	{16, 64}, {32, 64}, {16, 32}, {16, 32},
}

// the colour depth of each background in modes 0 and 1. zero means the
// background is not available in the mode
var bgDepth = [2][4]int{
	{2, 2, 2, 2},
	{4, 4, 2, 0},
}

// a pixel value of zero is transparent. palette indexes are stored with
// bit 8 set so that index zero can be distinguished from transparency
const opaque = 0x100

func (p *PPU) renderLine(row int) {
	line := p.FrameBuffer[row*Width : (row+1)*Width]

	if p.ForcedBlank {
		for x := range line {
			line[x] = 0
		}
		return
	}

	var pixels [Width]uint16

	mode := int(p.BGMODE & 0x07)
	if mode <= 1 {
		for bg := 3; bg >= 0; bg-- {
			depth := bgDepth[mode][bg]
			if depth == 0 || p.TM&(1<<bg) == 0 {
				continue
			}
			p.renderBackground(&pixels, bg, depth, mode, row+1)
		}
	}

	if p.TM&0x10 == 0x10 {
		p.renderSprites(&pixels, row+1)
	}

	backdrop := p.CGRAM[0]
	for x := range line {
		c := backdrop
		if pixels[x]&opaque == opaque {
			c = p.CGRAM[pixels[x]&0xff]
		}
		line[x] = p.applyBrightness(c)
	}
}

func (p *PPU) applyBrightness(c uint16) uint16 {
	if p.Brightness == 15 {
		return c
	}
	b := uint16(p.Brightness)
	r := (c & 0x1f) * b / 15
	g := ((c >> 5) & 0x1f) * b / 15
	bl := ((c >> 10) & 0x1f) * b / 15
	return bl<<10 | g<<5 | r
}

// tilePixel returns the colour index of a pixel in a tile. fx and fy are
// the pixel position in the tile after flipping.
func (p *PPU) tilePixel(charBase uint16, tile uint16, depth int, fx int, fy int) uint16 {
	words := uint16(depth * 4)
	addr := (charBase + tile*words + uint16(fy)) & 0x7fff
	bit := uint(7 - fx)

	var c uint16
	for plane := 0; plane < depth/2; plane++ {
		w := p.VRAM[(addr+uint16(plane*8))&0x7fff]
		c |= (w >> bit & 0x01) << (plane * 2)
		c |= (w >> (8 + bit) & 0x01) << (plane*2 + 1)
	}
	return c
}

func (p *PPU) renderBackground(pixels *[Width]uint16, bg int, depth int, mode int, y int) {
	sc := p.BGSC[bg]
	mapBase := uint16(sc&0xfc) << 8
	wide := sc&0x01 == 0x01
	tall := sc&0x02 == 0x02

	nba := p.BGNBA[bg/2]
	if bg&0x01 == 0x01 {
		nba >>= 4
	}
	charBase := uint16(nba&0x0f) << 12

	sy := (y + int(p.VOffset[bg])) & 0x3ff
	ty := sy >> 3

	for x := 0; x < Width; x++ {
		sx := (x + int(p.HOffset[bg])) & 0x3ff
		tx := sx >> 3

		addr := mapBase + uint16((ty&31)*32+(tx&31))
		if tx&32 == 32 && wide {
			addr += 0x400
		}
		if ty&32 == 32 && tall {
			if wide {
				addr += 0x800
			} else {
				addr += 0x400
			}
		}

		entry := p.VRAM[addr&0x7fff]
		fx := sx & 7
		fy := sy & 7
		if entry&0x4000 == 0x4000 {
			fx = 7 - fx
		}
		if entry&0x8000 == 0x8000 {
			fy = 7 - fy
		}

		c := p.tilePixel(charBase, entry&0x03ff, depth, fx, fy)
		if c == 0 {
			continue
		}

		pal := (entry >> 10) & 0x07
		var idx uint16
		switch {
		case depth == 4:
			idx = pal*16 + c
		case mode == 0:
			idx = uint16(bg)*32 + pal*4 + c
		default:
			idx = pal*4 + c
		}
		pixels[x] = opaque | idx
	}
}

func (p *PPU) renderSprites(pixels *[Width]uint16, y int) {
	sizes := spriteSizes[p.OBSEL>>5]
	nameBase := uint16(p.OBSEL&0x07) << 13
	nameGap := (uint16(p.OBSEL>>3&0x03) + 1) << 12

	var count int

	// lower numbered sprites have priority so they are drawn last
	for i := 127; i >= 0; i-- {
		o := p.OAM[i*4 : i*4+4]
		hi := p.OAM[0x200+i/4] >> ((i & 3) * 2)

		size := sizes[0]
		if hi&0x02 == 0x02 {
			size = sizes[1]
		}

		sy := int(o[1])
		row := (y - sy) & 0xff
		if row >= size {
			continue
		}
		count++

		sx := int(o[0])
		if hi&0x01 == 0x01 {
			sx -= 256
		}

		attr := o[3]
		if attr&0x80 == 0x80 {
			row = size - 1 - row
		}
		pal := uint16(attr>>1&0x07) * 16

		tile := uint16(o[2])
		base := nameBase
		if attr&0x01 == 0x01 {
			base += nameGap
		}

		for col := 0; col < size; col++ {
			x := sx + col
			if x < 0 || x >= Width {
				continue
			}
			fx := col
			if attr&0x40 == 0x40 {
				fx = size - 1 - col
			}

			t := (tile&0xf0+uint16(row>>3)<<4)&0xf0 | (tile+uint16(fx>>3))&0x0f
			c := p.tilePixel(base, t, 4, fx&7, row&7)
			if c == 0 {
				continue
			}
			pixels[x] = opaque | (128 + pal + c)
		}
	}

	if count > 32 {
		p.RangeOver = true
	}
}
