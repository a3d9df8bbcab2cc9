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

import "fmt"

// Costs in master cycles.
const (
	SetupCycles     = 8
	ChannelCycles   = 8
	ByteCycles      = 8
	HDMALineCycles  = 18
	ReloadCycles    = 8
	IndirectCycles  = 16
	NumChannels     = 8
	channelRegsBase = 0x100
)

// transfer patterns. the values are offsets added to the B-bus address for
// each byte of a transfer unit
var patterns = [8][]uint8{
	{0},
	{0, 1},
	{0, 0},
	{0, 0, 1, 1},
	{0, 1, 2, 3},
	{0, 1, 0, 1},
	{0, 0},
	{0, 0, 1, 1},
}

// Channel is the register file of one DMA channel and the HDMA state.
type Channel struct {
	// DMAPx
	Control uint8

	// BBADx. the low byte of a B-bus address in $2100-$21FF
	BAddress uint8

	// A1TxL, A1TxH, A1Bx
	AAddress uint16
	ABank    uint8

	// DASxL, DASxH. the byte count for general DMA and the indirect
	// address for HDMA
	Count uint16

	// DASBx
	IndirectBank uint8

	// A2AxL, A2AxH. the HDMA table address
	TableAddress uint16

	// NTRLx
	LineCounter uint8

	// $43xB and its mirror at $43xF
	Unused uint8

	DoTransfer bool
	Terminated bool
}

func (ch Channel) String() string {
	return fmt.Sprintf("%02x:%04x -> 21%02x [%d] count=%04x", ch.ABank, ch.AAddress, ch.BAddress, ch.Control&0x07, ch.Count)
}

// FromB returns true if the transfer direction is from the B-bus to the
// A-bus.
func (ch Channel) FromB() bool {
	return ch.Control&0x80 == 0x80
}

// Indirect returns true if the HDMA table contains indirect addresses.
func (ch Channel) Indirect() bool {
	return ch.Control&0x40 == 0x40
}

// Fixed returns true if the A-bus address does not change during a general
// DMA transfer.
func (ch Channel) Fixed() bool {
	return ch.Control&0x08 == 0x08
}

// Decrement returns true if the A-bus address decreases during a general
// DMA transfer.
func (ch Channel) Decrement() bool {
	return ch.Control&0x18 == 0x10
}

// Pattern returns the B-bus address offsets for one transfer unit.
func (ch Channel) Pattern() []uint8 {
	return patterns[ch.Control&0x07]
}

func (ch *Channel) stepA() {
	switch {
	case ch.Fixed():
	case ch.Decrement():
		ch.AAddress--
	default:
		ch.AAddress++
	}
}

func (ch *Channel) read(reg uint16, openBus uint8) uint8 {
	switch reg {
	case 0x0:
		return ch.Control
	case 0x1:
		return ch.BAddress
	case 0x2:
		return uint8(ch.AAddress)
	case 0x3:
		return uint8(ch.AAddress >> 8)
	case 0x4:
		return ch.ABank
	case 0x5:
		return uint8(ch.Count)
	case 0x6:
		return uint8(ch.Count >> 8)
	case 0x7:
		return ch.IndirectBank
	case 0x8:
		return uint8(ch.TableAddress)
	case 0x9:
		return uint8(ch.TableAddress >> 8)
	case 0xa:
		return ch.LineCounter
	case 0xb, 0xf:
		return ch.Unused
	}
	return openBus
}

func (ch *Channel) write(reg uint16, data uint8) {
	switch reg {
	case 0x0:
		ch.Control = data
	case 0x1:
		ch.BAddress = data
	case 0x2:
		ch.AAddress = ch.AAddress&0xff00 | uint16(data)
	case 0x3:
		ch.AAddress = ch.AAddress&0x00ff | uint16(data)<<8
	case 0x4:
		ch.ABank = data
	case 0x5:
		ch.Count = ch.Count&0xff00 | uint16(data)
	case 0x6:
		ch.Count = ch.Count&0x00ff | uint16(data)<<8
	case 0x7:
		ch.IndirectBank = data
	case 0x8:
		ch.TableAddress = ch.TableAddress&0xff00 | uint16(data)
	case 0x9:
		ch.TableAddress = ch.TableAddress&0x00ff | uint16(data)<<8
	case 0xa:
		ch.LineCounter = data
	case 0xb, 0xf:
		ch.Unused = data
	}
}
