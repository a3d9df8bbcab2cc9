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

package cartridge

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher16/hardware/clocks"
)

// Mapping is the way the cartridge ROM and SRAM are arranged in the address
// space.
type Mapping int

// List of valid Mapping values.
const (
	LoROM Mapping = iota
	HiROM
	ExHiROM
)

func (m Mapping) String() string {
	switch m {
	case LoROM:
		return "LoROM"
	case HiROM:
		return "HiROM"
	case ExHiROM:
		return "ExHiROM"
	}
	return fmt.Sprintf("unknown mapping (%d)", int(m))
}

// offsets of the header in the ROM image for each mapping
const (
	loROMHeader   = 0x7fc0
	hiROMHeader   = 0xffc0
	exHiROMHeader = 0x40ffc0
)

// offsets of fields from the start of the header
const (
	fldTitle      = 0x00
	fldMapMode    = 0x15
	fldChipset    = 0x16
	fldROMSize    = 0x17
	fldRAMSize    = 0x18
	fldCountry    = 0x19
	fldDeveloper  = 0x1a
	fldVersion    = 0x1b
	fldComplement = 0x1c
	fldChecksum   = 0x1e
	fldReset      = 0x3c

	titleLen  = 21
	headerLen = 0x40
)

// Header is the information block found at a fixed position in every
// cartridge image.
type Header struct {
	Title      string
	MapMode    uint8
	Mapping    Mapping
	FastROM    bool
	Chipset    uint8
	ROMSize    uint8
	RAMSize    uint8
	Country    uint8
	Developer  uint8
	Version    uint8
	Complement uint16
	Checksum   uint16

	// the emulation mode reset vector
	ResetVector uint16

	// offset of the header in the image
	Offset int
}

func (h Header) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("title: %s\n", h.Title))
	s.WriteString(fmt.Sprintf("mapping: %s", h.Mapping))
	if h.FastROM {
		s.WriteString(" (fast)")
	}
	s.WriteString(fmt.Sprintf(" [%02x]\n", h.MapMode))
	s.WriteString(fmt.Sprintf("chipset: %02x", h.Chipset))
	if h.HasCoprocessor() {
		s.WriteString(fmt.Sprintf(" (%s)", h.CoprocessorName()))
	}
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("rom size: %dK\n", h.ROMBytes()/1024))
	s.WriteString(fmt.Sprintf("sram size: %dK\n", h.SRAMBytes()/1024))
	s.WriteString(fmt.Sprintf("country: %02x (%s)\n", h.Country, h.Region()))
	s.WriteString(fmt.Sprintf("version: 1.%d\n", h.Version))
	s.WriteString(fmt.Sprintf("checksum: %04x complement: %04x\n", h.Checksum, h.Complement))
	return s.String()
}

// ROMBytes returns the size of the ROM declared by the header.
func (h Header) ROMBytes() int {
	if h.ROMSize == 0 || h.ROMSize > 13 {
		return 0
	}
	return 1024 << h.ROMSize
}

// SRAMBytes returns the size of the cartridge RAM declared by the header.
func (h Header) SRAMBytes() int {
	if h.RAMSize == 0 || h.RAMSize > 8 {
		return 0
	}
	return 1024 << h.RAMSize
}

// HasCoprocessor returns true if the chipset byte declares an enhancement
// chip.
func (h Header) HasCoprocessor() bool {
	return h.Chipset&0x0f >= 0x03
}

// CoprocessorName returns the name of the coprocessor declared by the
// chipset byte.
func (h Header) CoprocessorName() string {
	if !h.HasCoprocessor() {
		return "none"
	}
	switch h.Chipset >> 4 {
	case 0x0:
		return "DSP"
	case 0x1:
		return "SuperFX"
	case 0x2:
		return "OBC1"
	case 0x3:
		return "SA-1"
	case 0x4:
		return "S-DD1"
	case 0x5:
		return "S-RTC"
	case 0xe:
		return "other"
	case 0xf:
		return "custom"
	}
	return "unknown"
}

// Region returns the television standard implied by the country code.
func (h Header) Region() clocks.Region {
	switch {
	case h.Country >= 0x02 && h.Country <= 0x0c:
		return clocks.RegionPAL
	case h.Country == 0x11:
		return clocks.RegionPAL
	}
	return clocks.RegionNTSC
}

// mappingFromMode returns the Mapping for a map mode byte.
func mappingFromMode(mode uint8) (Mapping, bool) {
	if mode&0xe0 != 0x20 {
		return LoROM, false
	}
	switch mode & 0x0f {
	case 0x00, 0x02, 0x03:
		return LoROM, true
	case 0x01, 0x0a:
		return HiROM, true
	case 0x05:
		return ExHiROM, true
	}
	return LoROM, false
}

// parseHeader reads the header at the offset. The data must be long enough
// to contain the header.
func parseHeader(data []uint8, offset int) Header {
	d := data[offset : offset+headerLen]

	title := make([]byte, 0, titleLen)
	for _, c := range d[fldTitle : fldTitle+titleLen] {
		if c < 0x20 || c > 0x7e {
			c = ' '
		}
		title = append(title, c)
	}

	mapping, _ := mappingFromMode(d[fldMapMode])

	return Header{
		Title:       strings.TrimSpace(string(title)),
		MapMode:     d[fldMapMode],
		Mapping:     mapping,
		FastROM:     d[fldMapMode]&0x10 == 0x10,
		Chipset:     d[fldChipset],
		ROMSize:     d[fldROMSize],
		RAMSize:     d[fldRAMSize],
		Country:     d[fldCountry],
		Developer:   d[fldDeveloper],
		Version:     d[fldVersion],
		Complement:  uint16(d[fldComplement]) | uint16(d[fldComplement+1])<<8,
		Checksum:    uint16(d[fldChecksum]) | uint16(d[fldChecksum+1])<<8,
		ResetVector: uint16(d[fldReset]) | uint16(d[fldReset+1])<<8,
		Offset:      offset,
	}
}

// score is a measure of how likely the header at an offset is the real
// header.
func score(h Header, expected Mapping) int {
	s := 0
	if h.Checksum^h.Complement == 0xffff {
		s += 8
	}
	if m, ok := mappingFromMode(h.MapMode); ok {
		s += 2
		if m == expected {
			s += 4
		}
	}
	if h.ResetVector >= 0x8000 {
		s += 2
	} else {
		s -= 4
	}
	if h.Title != "" {
		s++
	}
	return s
}

// findHeader chooses the most likely header in the image.
func findHeader(data []uint8) Header {
	candidates := []struct {
		offset  int
		mapping Mapping
	}{
		{loROMHeader, LoROM},
		{hiROMHeader, HiROM},
		{exHiROMHeader, ExHiROM},
	}

	var best Header
	bestScore := -1000

	for _, c := range candidates {
		if c.offset+headerLen > len(data) {
			continue
		}
		h := parseHeader(data, c.offset)
		s := score(h, c.mapping)

		// first candidate wins a tie
		if s > bestScore {
			best = h
			bestScore = s
		}
	}

	return best
}
