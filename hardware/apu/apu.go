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

package apu

import (
	"fmt"

	"github.com/jetsetilly/gopher16/hardware/apu/dsp"
	"github.com/jetsetilly/gopher16/hardware/apu/spc700"
	"github.com/jetsetilly/gopher16/random"
)

// Sample is one stereo sample of audio output.
type Sample = dsp.Sample

// SampleRate is the number of samples produced per second of APU time.
const SampleRate = 32000

// SPC700 cycles per output sample.
const CyclesPerSample = 32

// NumPorts is the number of mailbox ports between the CPU and the APU.
const NumPorts = 4

// addresses of the I/O registers in the APU address space
const (
	regTEST     = 0xf0
	regCONTROL  = 0xf1
	regDSPADDR  = 0xf2
	regDSPDATA  = 0xf3
	regPort0    = 0xf4
	regPort3    = 0xf7
	regT0TARGET = 0xfa
	regT2TARGET = 0xfc
	regT0OUT    = 0xfd
	regT2OUT    = 0xff
)

// APU is the audio subsystem.
type APU struct {
	SPC *spc700.SPC700
	DSP *dsp.DSP

	RAM        [0x10000]uint8
	IPLEnabled bool

	Timers [3]Timer

	Test       uint8
	DSPAddress uint8

	// Input is written by the CPU and read by the SPC700. Output is the
	// reverse. CPU writes wait in Staged until the next catch up
	Input      [NumPorts]uint8
	Output     [NumPorts]uint8
	Staged     [NumPorts]uint8
	StagedMask uint8

	// SPC700 cycles owed to the APU. negative values are a debt from the
	// last instruction to run
	Credit int64

	// SPC700 cycles run since power on
	Cycles uint64

	// cycles run toward the next output sample
	SampleCycles int

	// samples generated since the last call to Drain()
	Samples []Sample
}

// NewAPU is the preferred method of initialisation for the APU type.
func NewAPU() *APU {
	a := &APU{
		DSP: dsp.NewDSP(),
	}
	a.SPC = spc700.NewSPC700(a)
	a.Reset(nil)
	return a
}

// Snapshot creates a copy of the APU in its current state.
func (a *APU) Snapshot() *APU {
	n := &APU{}
	*n = *a
	n.SPC = a.SPC.Snapshot()
	n.DSP = a.DSP.Snapshot()
	n.Samples = append([]Sample(nil), a.Samples...)
	n.SPC.Plumb(n)
	return n
}

// Plumb reattaches the processor to the APU memory. It should be called
// after the APU has been restored from a serialised state.
func (a *APU) Plumb() {
	if a.SPC == nil || a.DSP == nil {
		panic("apu: plumbing an incomplete state")
	}
	a.SPC.Plumb(a)
}

// Reset the APU. If rnd is not nil RAM is filled with random values.
func (a *APU) Reset(rnd *random.Random) {
	a.RAM = [0x10000]uint8{}
	if rnd != nil {
		rnd.FillBytes(a.RAM[:])
	}

	a.IPLEnabled = true
	for i := range a.Timers {
		a.Timers[i] = Timer{Divider: timerDividers[i]}
	}
	a.Test = 0x0a
	a.DSPAddress = 0
	a.Input = [NumPorts]uint8{}
	a.Output = [NumPorts]uint8{}
	a.Staged = [NumPorts]uint8{}
	a.StagedMask = 0
	a.Credit = 0
	a.Cycles = 0
	a.SampleCycles = 0
	a.Samples = a.Samples[:0]

	a.DSP.Reset()
	a.SPC.Reset()
}

func (a *APU) String() string {
	return fmt.Sprintf("%s in=%02x out=%02x", a.SPC, a.Input, a.Output)
}

// ReadPort is called by the CPU to read one of the mailbox ports.
func (a *APU) ReadPort(port int) uint8 {
	return a.Output[port&0x03]
}

// WritePort is called by the CPU to write one of the mailbox ports.
func (a *APU) WritePort(port int, data uint8) {
	port &= 0x03
	a.Staged[port] = data
	a.StagedMask |= 1 << port
}

func (a *APU) commitPorts() {
	for i := range a.Staged {
		if a.StagedMask&(1<<i) != 0 {
			a.Input[i] = a.Staged[i]
		}
	}
	a.StagedMask = 0
}

// AddCredit adds SPC700 cycles to be run by the next call to Catchup().
func (a *APU) AddCredit(cycles uint64) {
	a.Credit += int64(cycles)
}

// Catchup runs the SPC700 until the credit is spent.
func (a *APU) Catchup() {
	a.commitPorts()
	for a.Credit > 0 {
		n := a.SPC.Step()
		a.Credit -= int64(n)
		a.tick(n)
	}
}

func (a *APU) tick(cycles int) {
	a.Cycles += uint64(cycles)
	for i := range a.Timers {
		a.Timers[i].Step(cycles)
	}
	a.SampleCycles += cycles
	for a.SampleCycles >= CyclesPerSample {
		a.SampleCycles -= CyclesPerSample
		a.Samples = append(a.Samples, a.DSP.Sample(&a.RAM))
	}
}

// Drain returns the samples generated since the previous call. The returned
// slice is owned by the caller.
func (a *APU) Drain() []Sample {
	s := make([]Sample, len(a.Samples))
	copy(s, a.Samples)
	a.Samples = a.Samples[:0]
	return s
}

// Read implements the spc700.Bus interface.
func (a *APU) Read(address uint16) uint8 {
	switch {
	case address >= regTEST && address <= regT2OUT:
		return a.readRegister(address)
	case address >= IPLOrigin && a.IPLEnabled:
		return iplROM[address-IPLOrigin]
	}
	return a.RAM[address]
}

func (a *APU) readRegister(address uint16) uint8 {
	switch {
	case address == regDSPADDR:
		return a.DSPAddress
	case address == regDSPDATA:
		return a.DSP.Read(a.DSPAddress)
	case address >= regPort0 && address <= regPort3:
		return a.Input[address-regPort0]
	case address >= regT0TARGET && address <= regT2TARGET:
		return 0
	case address >= regT0OUT:
		return a.Timers[address-regT0OUT].read()
	case address == regTEST || address == regCONTROL:
		return 0
	}

	// $F8 and $F9 are ordinary RAM
	return a.RAM[address]
}

// Write implements the spc700.Bus interface. Writes always reach RAM, even
// when the address is an I/O register or is covered by the boot ROM.
func (a *APU) Write(address uint16, data uint8) {
	a.RAM[address] = data

	switch {
	case address == regTEST:
		a.Test = data
	case address == regCONTROL:
		for i := range a.Timers {
			a.Timers[i].enable(data&(1<<i) != 0)
		}
		if data&0x10 == 0x10 {
			a.Input[0] = 0
			a.Input[1] = 0
		}
		if data&0x20 == 0x20 {
			a.Input[2] = 0
			a.Input[3] = 0
		}
		a.IPLEnabled = data&0x80 == 0x80
	case address == regDSPADDR:
		a.DSPAddress = data
	case address == regDSPDATA:
		a.DSP.Write(a.DSPAddress, data)
	case address >= regPort0 && address <= regPort3:
		a.Output[address-regPort0] = data
	case address >= regT0TARGET && address <= regT2TARGET:
		a.Timers[address-regT0TARGET].Target = data
	}
}
