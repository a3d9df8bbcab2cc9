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

// Package cartridge handles the cartridge image: parsing the header,
// validating the checksum, and mapping ROM and SRAM into the address space.
package cartridge

import (
	"crypto/sha1"
	"errors"
	"fmt"

	"github.com/jetsetilly/gopher16/hardware/memory/memorymap"
)

// Sentinal errors returned by NewCartridge().
var (
	ErrTooShort       = errors.New("cartridge: image too short")
	ErrUnknownMapping = errors.New("cartridge: unrecognised mapping mode")
)

// the smallest image that can contain a LoROM header
const minImageSize = 0x8000

// the largest SRAM that is mapped
const maxSRAM = 0x80000

// Cartridge is the ROM image and the cartridge RAM.
type Cartridge struct {
	Header Header

	// whether the checksum in the header matches the checksum of the ROM.
	// the checksum is advisory and a mismatch does not prevent the cartridge
	// from being used
	ChecksumOK bool

	// the computed checksum of the ROM
	ComputedChecksum uint16

	// SHA-1 of the ROM image
	Hash string

	// ROM is never written to and is not part of the cartridge state
	rom []uint8

	// cartridge RAM. this is part of the cartridge state
	SRAM []uint8
}

// NewCartridge creates a Cartridge from the image data. The data should not
// include a copier header.
func NewCartridge(data []uint8) (*Cartridge, error) {
	if len(data) < minImageSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooShort, len(data))
	}

	h := findHeader(data)
	if _, ok := mappingFromMode(h.MapMode); !ok {
		return nil, fmt.Errorf("%w: %02x", ErrUnknownMapping, h.MapMode)
	}

	cart := &Cartridge{
		Header: h,
		rom:    make([]uint8, len(data)),
		Hash:   fmt.Sprintf("%x", sha1.Sum(data)),
	}
	copy(cart.rom, data)

	cart.ComputedChecksum = Checksum(cart.rom)
	cart.ChecksumOK = cart.ComputedChecksum == h.Checksum && h.Checksum^h.Complement == 0xffff

	if n := h.SRAMBytes(); n > 0 {
		if n > maxSRAM {
			n = maxSRAM
		}
		cart.SRAM = make([]uint8, n)
		for i := range cart.SRAM {
			cart.SRAM[i] = 0xff
		}
	}

	return cart, nil
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s [%s]", cart.Header.Title, cart.Header.Mapping)
}

// Snapshot creates a copy of the cartridge. The ROM data is shared with the
// copy because it can never change.
func (cart *Cartridge) Snapshot() *Cartridge {
	n := *cart
	if cart.SRAM != nil {
		n.SRAM = make([]uint8, len(cart.SRAM))
		copy(n.SRAM, cart.SRAM)
	}
	return &n
}

// Plumb ROM data from another instance of the same cartridge. Used after
// restoring cartridge state, which does not include the ROM.
func (cart *Cartridge) Plumb(from *Cartridge) {
	cart.rom = from.rom
}

// ROMSize returns the length of the ROM data.
func (cart *Cartridge) ROMSize() int {
	return len(cart.rom)
}

// ReadROM returns the byte at the ROM offset. Offsets beyond the end of the
// ROM are mirrored in the same way as the cartridge hardware.
func (cart *Cartridge) ReadROM(offset uint32) uint8 {
	return cart.rom[mirror(offset, uint32(len(cart.rom)))]
}

// ReadSRAM returns the byte at the SRAM offset. The second return value is
// false if the cartridge has no SRAM.
func (cart *Cartridge) ReadSRAM(offset uint32) (uint8, bool) {
	if len(cart.SRAM) == 0 {
		return 0, false
	}
	return cart.SRAM[mirror(offset, uint32(len(cart.SRAM)))], true
}

// WriteSRAM writes the byte to the SRAM offset. Returns false if the
// cartridge has no SRAM.
func (cart *Cartridge) WriteSRAM(offset uint32, data uint8) bool {
	if len(cart.SRAM) == 0 {
		return false
	}
	cart.SRAM[mirror(offset, uint32(len(cart.SRAM)))] = data
	return true
}

// Regions returns the memory map regions for the cartridge ROM and SRAM.
func (cart *Cartridge) Regions() []memorymap.Region {
	switch cart.Header.Mapping {
	case HiROM:
		return cart.hiROMRegions()
	case ExHiROM:
		return cart.exHiROMRegions()
	}
	return cart.loROMRegions()
}

func loROMOffset(address uint32) uint32 {
	bank := (address >> 16) & 0x7f
	return bank<<15 | address&0x7fff
}

func loROMSRAMOffset(address uint32) uint32 {
	bank := (address >> 16) & 0x0f
	return bank<<15 | address&0x7fff
}

func hiROMOffset(address uint32) uint32 {
	bank := (address >> 16) & 0x3f
	return bank<<16 | address&0xffff
}

func exHiROMOffset(address uint32) uint32 {
	// the top half of the address space maps the first 4MB
	upper := (^address & 0x800000) << 1 >> 2
	return upper | hiROMOffset(address)
}

func hiROMSRAMOffset(address uint32) uint32 {
	bank := (address >> 16) & 0x1f
	return bank<<13 | (address-0x6000)&0x1fff
}

func (cart *Cartridge) loROMRegions() []memorymap.Region {
	r := []memorymap.Region{
		{Owner: memorymap.ROM, BankLo: 0x00, BankHi: 0x7d, AddrLo: 0x8000, AddrHi: 0xffff, Offset: loROMOffset},
		{Owner: memorymap.ROM, BankLo: 0x80, BankHi: 0xff, AddrLo: 0x8000, AddrHi: 0xffff, Offset: loROMOffset},
	}
	if len(cart.SRAM) > 0 {
		r = append(r,
			memorymap.Region{Owner: memorymap.SRAM, BankLo: 0x70, BankHi: 0x7d, AddrLo: 0x0000, AddrHi: 0x7fff, Offset: loROMSRAMOffset},
			memorymap.Region{Owner: memorymap.SRAM, BankLo: 0xf0, BankHi: 0xff, AddrLo: 0x0000, AddrHi: 0x7fff, Offset: loROMSRAMOffset},
		)
	}
	return r
}

func (cart *Cartridge) hiROMRegions() []memorymap.Region {
	r := []memorymap.Region{
		{Owner: memorymap.ROM, BankLo: 0x00, BankHi: 0x3f, AddrLo: 0x8000, AddrHi: 0xffff, Offset: hiROMOffset},
		{Owner: memorymap.ROM, BankLo: 0x80, BankHi: 0xbf, AddrLo: 0x8000, AddrHi: 0xffff, Offset: hiROMOffset},
		{Owner: memorymap.ROM, BankLo: 0x40, BankHi: 0x7d, AddrLo: 0x0000, AddrHi: 0xffff, Offset: hiROMOffset},
		{Owner: memorymap.ROM, BankLo: 0xc0, BankHi: 0xff, AddrLo: 0x0000, AddrHi: 0xffff, Offset: hiROMOffset},
	}
	if len(cart.SRAM) > 0 {
		r = append(r,
			memorymap.Region{Owner: memorymap.SRAM, BankLo: 0x20, BankHi: 0x3f, AddrLo: 0x6000, AddrHi: 0x7fff, Offset: hiROMSRAMOffset},
			memorymap.Region{Owner: memorymap.SRAM, BankLo: 0xa0, BankHi: 0xbf, AddrLo: 0x6000, AddrHi: 0x7fff, Offset: hiROMSRAMOffset},
		)
	}
	return r
}

func (cart *Cartridge) exHiROMRegions() []memorymap.Region {
	r := []memorymap.Region{
		{Owner: memorymap.ROM, BankLo: 0x00, BankHi: 0x3f, AddrLo: 0x8000, AddrHi: 0xffff, Offset: exHiROMOffset},
		{Owner: memorymap.ROM, BankLo: 0x80, BankHi: 0xbf, AddrLo: 0x8000, AddrHi: 0xffff, Offset: exHiROMOffset},
		{Owner: memorymap.ROM, BankLo: 0x40, BankHi: 0x7d, AddrLo: 0x0000, AddrHi: 0xffff, Offset: exHiROMOffset},
		{Owner: memorymap.ROM, BankLo: 0xc0, BankHi: 0xff, AddrLo: 0x0000, AddrHi: 0xffff, Offset: exHiROMOffset},
	}
	if len(cart.SRAM) > 0 {
		r = append(r,
			memorymap.Region{Owner: memorymap.SRAM, BankLo: 0x80, BankHi: 0xbf, AddrLo: 0x6000, AddrHi: 0x7fff, Offset: hiROMSRAMOffset},
		)
	}
	return r
}
