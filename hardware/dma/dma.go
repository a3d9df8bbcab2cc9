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

package dma

import (
	"fmt"
	"strings"
)

// Register offsets from $4200.
const (
	MDMAEN = 0x0b
	HDMAEN = 0x0c
)

// Bus is the view of the system used by the DMA engine.
type Bus interface {
	// A-bus accesses are full 24-bit addresses
	ReadA(address uint32) uint8
	WriteA(address uint32, data uint8)

	// B-bus accesses are the low byte of an address in $2100-$21FF
	ReadB(address uint8) uint8
	WriteB(address uint8, data uint8)

	// the value last driven on the bus
	OpenBus() uint8

	// report the cost of a step in master cycles
	Tick(masterCycles int)
}

// DMA is the state of the DMA engine.
type DMA struct {
	Channels [NumChannels]Channel

	// channels requested by a write to MDMAEN
	Pending uint8

	// channels enabled by HDMAEN
	HDMAEnable uint8
}

// NewDMA is the preferred method of initialisation for the DMA type.
func NewDMA() *DMA {
	d := &DMA{}
	d.Reset()
	return d
}

// Snapshot creates a copy of the DMA engine in its current state.
func (d *DMA) Snapshot() *DMA {
	n := *d
	return &n
}

// Reset the DMA engine. The channel registers are set to $FF as they are
// on power-on.
func (d *DMA) Reset() {
	for i := range d.Channels {
		d.Channels[i] = Channel{
			Control:      0xff,
			BAddress:     0xff,
			AAddress:     0xffff,
			ABank:        0xff,
			Count:        0xffff,
			IndirectBank: 0xff,
			TableAddress: 0xffff,
			LineCounter:  0xff,
			Unused:       0xff,
			Terminated:   true,
		}
	}
	d.Pending = 0
	d.HDMAEnable = 0
}

func (d *DMA) String() string {
	s := strings.Builder{}
	for i, ch := range d.Channels {
		s.WriteString(fmt.Sprintf("%d: %s\n", i, ch))
	}
	return s.String()
}

// Read a register. The reg argument is the offset from $4200. MDMAEN and
// HDMAEN are write-only.
func (d *DMA) Read(reg uint16, openBus uint8) uint8 {
	if reg >= channelRegsBase && reg < channelRegsBase+0x80 {
		r := reg - channelRegsBase
		return d.Channels[r>>4].read(r&0x0f, openBus)
	}
	return openBus
}

// Write a register. The reg argument is the offset from $4200. Writing to
// MDMAEN does not start the transfer. The scheduler checks GeneralPending()
// after the write has completed.
func (d *DMA) Write(reg uint16, data uint8) {
	switch reg {
	case MDMAEN:
		d.Pending = data
		return
	case HDMAEN:
		d.HDMAEnable = data
		return
	}
	if reg >= channelRegsBase && reg < channelRegsBase+0x80 {
		r := reg - channelRegsBase
		d.Channels[r>>4].write(r&0x0f, data)
	}
}

// GeneralPending returns true if a general purpose DMA has been requested.
func (d *DMA) GeneralPending() bool {
	return d.Pending != 0
}

// the A-bus cannot access the B-bus or the DMA registers.
func invalidA(address uint32) bool {
	bank := address >> 16
	if bank >= 0x40 && bank < 0x80 || bank >= 0xc0 {
		return false
	}
	a := address & 0xffff
	return a&0xff00 == 0x2100 || a >= 0x4300 && a < 0x4380 || a == 0x420b || a == 0x420c
}

func readA(bus Bus, address uint32) uint8 {
	if invalidA(address) {
		return bus.OpenBus()
	}
	return bus.ReadA(address)
}

func writeA(bus Bus, address uint32, data uint8) {
	if invalidA(address) {
		return
	}
	bus.WriteA(address, data)
}

// RunGeneral performs all pending general purpose DMA transfers, lowest
// channel first. The transfer of each channel continues until its byte
// count reaches zero. A count of zero transfers 65536 bytes.
//
// The cost of the transfer is reported through the Bus: SetupCycles once,
// ChannelCycles for each channel and ByteCycles for each byte.
func (d *DMA) RunGeneral(bus Bus) {
	if d.Pending == 0 {
		return
	}

	bus.Tick(SetupCycles)

	for i := range d.Channels {
		if d.Pending&(1<<i) == 0 {
			continue
		}

		ch := &d.Channels[i]
		bus.Tick(ChannelCycles)

		pattern := ch.Pattern()
		n := 0
		for {
			b := ch.BAddress + pattern[n%len(pattern)]
			a := uint32(ch.ABank)<<16 | uint32(ch.AAddress)
			if ch.FromB() {
				writeA(bus, a, bus.ReadB(b))
			} else {
				bus.WriteB(b, readA(bus, a))
			}
			ch.stepA()
			ch.Count--
			n++
			bus.Tick(ByteCycles)
			if ch.Count == 0 {
				break
			}
		}

		d.Pending &^= 1 << i
	}
}

// InitHDMA is called at the start of every frame. The table address and
// line counter of each enabled channel is loaded.
func (d *DMA) InitHDMA(bus Bus) {
	for i := range d.Channels {
		d.Channels[i].DoTransfer = false
		d.Channels[i].Terminated = true
	}

	if d.HDMAEnable == 0 {
		return
	}

	bus.Tick(HDMALineCycles)

	for i := range d.Channels {
		if d.HDMAEnable&(1<<i) == 0 {
			continue
		}
		ch := &d.Channels[i]

		// HDMA cancels any general DMA for the channel
		d.Pending &^= 1 << i

		ch.TableAddress = ch.AAddress
		ch.Terminated = false
		bus.Tick(ChannelCycles)
		d.reload(bus, ch)
	}
}

// reload the line counter, and the indirect address if the channel uses
// indirect tables. a line counter of zero terminates the channel. the
// indirect address following a zero line counter is never read.
func (d *DMA) reload(bus Bus, ch *Channel) {
	ch.LineCounter = readA(bus, ch.tableAddress())
	ch.TableAddress++
	bus.Tick(ReloadCycles)

	if ch.LineCounter == 0 {
		ch.Terminated = true
		ch.DoTransfer = false
		return
	}

	if ch.Indirect() {
		lo := readA(bus, ch.tableAddress())
		ch.TableAddress++
		hi := readA(bus, ch.tableAddress())
		ch.TableAddress++
		ch.Count = uint16(hi)<<8 | uint16(lo)
		bus.Tick(IndirectCycles)
	}

	ch.DoTransfer = true
}

func (ch Channel) tableAddress() uint32 {
	return uint32(ch.ABank)<<16 | uint32(ch.TableAddress)
}

// HDMAActive returns true if any enabled channel has not terminated.
func (d *DMA) HDMAActive() bool {
	for i := range d.Channels {
		if d.HDMAEnable&(1<<i) != 0 && !d.Channels[i].Terminated {
			return true
		}
	}
	return false
}

// RunHDMA is called once for every visible line, at the start of horizontal
// blank.
func (d *DMA) RunHDMA(bus Bus) {
	if !d.HDMAActive() {
		return
	}

	bus.Tick(HDMALineCycles)

	for i := range d.Channels {
		ch := &d.Channels[i]
		if d.HDMAEnable&(1<<i) == 0 || ch.Terminated {
			continue
		}

		bus.Tick(ChannelCycles)

		if ch.DoTransfer {
			for _, p := range ch.Pattern() {
				var a uint32
				if ch.Indirect() {
					a = uint32(ch.IndirectBank)<<16 | uint32(ch.Count)
					ch.Count++
				} else {
					a = ch.tableAddress()
					ch.TableAddress++
				}
				b := ch.BAddress + p
				if ch.FromB() {
					writeA(bus, a, bus.ReadB(b))
				} else {
					bus.WriteB(b, readA(bus, a))
				}
				bus.Tick(ByteCycles)
			}
		}

		ch.LineCounter--
		ch.DoTransfer = ch.LineCounter&0x80 == 0x80
		if ch.LineCounter&0x7f == 0 {
			d.reload(bus, ch)
		}
	}
}
