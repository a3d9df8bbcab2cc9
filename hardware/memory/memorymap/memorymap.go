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

// Package memorymap is the ownership table of the console's 24bit address
// space.
//
// Every region of the address space is claimed by exactly one owner. The
// table is built once, from a list of regions, when a cartridge is attached.
// Regions claiming the same address is a programming error and Build()
// returns ErrOverlap. Addresses that are not claimed by any region are
// unmapped and read as open bus.
//
// Regions are rectangles in the address space: a range of banks and a range
// of addresses within each of those banks. This suits the console, where
// the same block of registers or the same window of ROM is repeated in
// many banks.
package memorymap

import (
	"errors"
	"fmt"
)

// Owner identifies the component that services accesses to a region.
type Owner int

// List of valid Owner values.
const (
	Unmapped Owner = iota
	WRAM
	WRAMPort
	PPU
	APU
	Joypad
	CPUIO
	DMA
	ROM
	SRAM
	Coprocessor
)

func (o Owner) String() string {
	switch o {
	case Unmapped:
		return "unmapped"
	case WRAM:
		return "WRAM"
	case WRAMPort:
		return "WRAM port"
	case PPU:
		return "PPU"
	case APU:
		return "APU"
	case Joypad:
		return "joypad"
	case CPUIO:
		return "CPU IO"
	case DMA:
		return "DMA"
	case ROM:
		return "ROM"
	case SRAM:
		return "SRAM"
	case Coprocessor:
		return "coprocessor"
	}
	return fmt.Sprintf("unknown owner (%d)", int(o))
}

// Region is a rectangular area of the address space claimed by an owner.
type Region struct {
	Owner Owner

	// inclusive ranges
	BankLo, BankHi uint8
	AddrLo, AddrHi uint16

	// Offset translates a 24bit address into an offset for the owner's
	// storage. if Offset is nil the offset is the 16bit address
	Offset func(address uint32) uint32

	// ID is used to distinguish between regions that have the same owner.
	// for example, the index of a coprocessor
	ID int
}

func (r Region) String() string {
	return fmt.Sprintf("%s %02x-%02x:%04x-%04x", r.Owner, r.BankLo, r.BankHi, r.AddrLo, r.AddrHi)
}

// Contains returns true if the address is in the region.
func (r *Region) Contains(address uint32) bool {
	bank := uint8(address >> 16)
	addr := uint16(address)
	return bank >= r.BankLo && bank <= r.BankHi && addr >= r.AddrLo && addr <= r.AddrHi
}

func (r *Region) overlaps(o *Region) bool {
	return r.BankLo <= o.BankHi && o.BankLo <= r.BankHi && r.AddrLo <= o.AddrHi && o.AddrLo <= r.AddrHi
}

// translate returns the offset for the address.
func (r *Region) translate(address uint32) uint32 {
	if r.Offset == nil {
		return address & 0xffff
	}
	return r.Offset(address)
}

// ErrOverlap is returned by Build() when two regions claim the same address.
var ErrOverlap = errors.New("memorymap: regions overlap")

// ErrBadRegion is returned by Build() for a region with an empty range.
var ErrBadRegion = errors.New("memorymap: bad region")

// the address space is divided into pages for the purposes of lookup
const (
	pageShift = 12
	pageSize  = 1 << pageShift
	numPages  = 1 << (24 - pageShift)
)

// page entries are either an index into the regions slice, noRegion, or
// mixedPage
const (
	noRegion  = -1
	mixedPage = -2
)

// Map is the compiled ownership table.
type Map struct {
	regions []Region

	// index into regions for each page of the address space
	pages [numPages]int16

	// for pages that contain more than one region (or are only partially
	// covered) the list of candidate regions
	mixed map[int][]int16
}

// Build creates a Map from the list of regions.
func Build(regions []Region) (*Map, error) {
	if len(regions) > 0x7fff {
		return nil, fmt.Errorf("%w: too many regions", ErrBadRegion)
	}

	for i := range regions {
		r := &regions[i]
		if r.BankLo > r.BankHi || r.AddrLo > r.AddrHi {
			return nil, fmt.Errorf("%w: %s", ErrBadRegion, r)
		}
		if r.Owner == Unmapped {
			return nil, fmt.Errorf("%w: %s has no owner", ErrBadRegion, r)
		}
		for j := 0; j < i; j++ {
			if r.overlaps(&regions[j]) {
				return nil, fmt.Errorf("%w: %s and %s", ErrOverlap, regions[j], r)
			}
		}
	}

	m := &Map{
		regions: make([]Region, len(regions)),
		mixed:   make(map[int][]int16),
	}
	copy(m.regions, regions)

	for p := 0; p < numPages; p++ {
		bank := uint8(p >> (16 - pageShift))
		lo := uint16((p << pageShift) & 0xffff)
		hi := lo + pageSize - 1

		m.pages[p] = noRegion

		var candidates []int16
		full := false
		for i := range m.regions {
			r := &m.regions[i]
			if bank < r.BankLo || bank > r.BankHi || r.AddrHi < lo || r.AddrLo > hi {
				continue
			}
			candidates = append(candidates, int16(i))
			if r.AddrLo <= lo && r.AddrHi >= hi {
				full = true
			}
		}

		switch {
		case len(candidates) == 1 && full:
			m.pages[p] = candidates[0]
		case len(candidates) > 0:
			m.pages[p] = mixedPage
			m.mixed[p] = candidates
		}
	}

	return m, nil
}

// Lookup returns the region that owns the address and the offset of the
// address in the owner's storage. The region is nil if the address is
// unmapped.
func (m *Map) Lookup(address uint32) (*Region, uint32) {
	address &= 0xffffff
	p := int(address >> pageShift)

	switch idx := m.pages[p]; idx {
	case noRegion:
		return nil, 0
	case mixedPage:
		for _, i := range m.mixed[p] {
			r := &m.regions[i]
			if r.Contains(address) {
				return r, r.translate(address)
			}
		}
		return nil, 0
	default:
		r := &m.regions[idx]
		return r, r.translate(address)
	}
}

// Owner returns the owner of the address.
func (m *Map) Owner(address uint32) Owner {
	r, _ := m.Lookup(address)
	if r == nil {
		return Unmapped
	}
	return r.Owner
}

// Regions returns a copy of the list of regions in the map.
func (m *Map) Regions() []Region {
	c := make([]Region, len(m.regions))
	copy(c, m.regions)
	return c
}
