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

package dsp

import "fmt"

// NumVoices is the number of sample playback voices.
const NumVoices = 8

// Per-voice register offsets. The register address is voice<<4 | offset.
const (
	VOLL   = 0x00
	VOLR   = 0x01
	PITCHL = 0x02
	PITCHH = 0x03
	SRCN   = 0x04
	ADSR1  = 0x05
	ADSR2  = 0x06
	GAIN   = 0x07
	ENVX   = 0x08
	OUTX   = 0x09
)

// Global registers.
const (
	MVOLL = 0x0c
	MVOLR = 0x1c
	EVOLL = 0x2c
	EVOLR = 0x3c
	KON   = 0x4c
	KOF   = 0x5c
	FLG   = 0x6c
	ENDX  = 0x7c
	EFB   = 0x0d
	PMON  = 0x2d
	NON   = 0x3d
	EON   = 0x4d
	DIR   = 0x5d
	ESA   = 0x6d
	EDL   = 0x7d
)

// bits of FLG
const (
	flgSoftReset = 0x80
	flgMute      = 0x40
)

// Sample is one stereo output sample.
type Sample struct {
	Left  int16
	Right int16
}

// EnvelopeMode is the phase of a voice's volume envelope.
type EnvelopeMode int

// List of valid EnvelopeMode values.
const (
	Release EnvelopeMode = iota
	Attack
	Decay
	Sustain
)

const envelopeMax = 0x7ff

// Voice is the playback state of one voice.
type Voice struct {
	Active bool

	// address of the current BRR block and the sample position in it
	BRRAddress uint16
	BRROffset  int
	Decoded    [16]int16

	// the last two decoded samples, used by the BRR filters
	Prev1 int
	Prev2 int

	PitchCounter int

	Envelope int
	Mode     EnvelopeMode
}

// DSP is the state of the sound generator.
type DSP struct {
	Registers [128]uint8
	Voices    [NumVoices]Voice

	// voices keyed on since the last sample
	KeyOn uint8

	// samples generated since reset. used to time envelope changes
	Counter uint32
}

// NewDSP is the preferred method of initialisation for the DSP type.
func NewDSP() *DSP {
	d := &DSP{}
	d.Reset()
	return d
}

// Snapshot creates a copy of the DSP in its current state.
func (d *DSP) Snapshot() *DSP {
	n := *d
	return &n
}

// Reset the DSP. The sound generator is muted until FLG is written.
func (d *DSP) Reset() {
	*d = DSP{}
	d.Registers[FLG] = flgSoftReset | flgMute | 0x20
}

func (d *DSP) String() string {
	var active int
	for _, v := range d.Voices {
		if v.Active {
			active++
		}
	}
	return fmt.Sprintf("voices=%d flg=%02x endx=%02x", active, d.Registers[FLG], d.Registers[ENDX])
}

// Read a DSP register. Addresses $80 to $FF mirror $00 to $7F.
func (d *DSP) Read(address uint8) uint8 {
	return d.Registers[address&0x7f]
}

// Write a DSP register. Addresses $80 to $FF are read-only.
func (d *DSP) Write(address uint8, data uint8) {
	if address&0x80 == 0x80 {
		return
	}
	switch address {
	case KON:
		d.KeyOn |= data
	case ENDX:
		data = 0
	}
	d.Registers[address] = data
}

func read16(ram *[0x10000]uint8, address uint16) uint16 {
	return uint16(ram[address+1])<<8 | uint16(ram[address])
}

// address of the sample directory entry for the voice
func (d *DSP) directory(voice int) uint16 {
	dir := uint16(d.Registers[DIR]) << 8
	return dir + uint16(d.Registers[voice<<4|SRCN])*4
}

func (d *DSP) keyOn(voice int, ram *[0x10000]uint8) {
	v := &d.Voices[voice]
	*v = Voice{
		Active:     true,
		BRRAddress: read16(ram, d.directory(voice)),
		Mode:       Attack,
	}
	v.decode(ram)
	d.Registers[ENDX] &^= 1 << voice
}

// Sample runs the DSP for one sample period and returns the mixed output.
func (d *DSP) Sample(ram *[0x10000]uint8) Sample {
	d.Counter++

	flg := d.Registers[FLG]
	kof := d.Registers[KOF]

	for i := range d.Voices {
		bit := uint8(1) << i
		switch {
		case flg&flgSoftReset == flgSoftReset:
			d.Voices[i].Mode = Release
			d.Voices[i].Envelope = 0
		case d.KeyOn&bit == bit:
			d.keyOn(i, ram)
		case kof&bit == bit:
			d.Voices[i].Mode = Release
		}
	}
	d.KeyOn = 0

	var left, right int
	for i := range d.Voices {
		out := d.voice(i, ram)
		left = clamp16(left + out*int(int8(d.Registers[i<<4|VOLL]))>>7)
		right = clamp16(right + out*int(int8(d.Registers[i<<4|VOLR]))>>7)
	}

	if flg&flgMute == flgMute {
		return Sample{}
	}

	left = clamp16(left * int(int8(d.Registers[MVOLL])) >> 7)
	right = clamp16(right * int(int8(d.Registers[MVOLR])) >> 7)

	return Sample{Left: int16(left), Right: int16(right)}
}

// voice returns the output of one voice before volume is applied.
func (d *DSP) voice(voice int, ram *[0x10000]uint8) int {
	v := &d.Voices[voice]
	base := voice << 4

	if !v.Active {
		d.Registers[base|ENVX] = 0
		d.Registers[base|OUTX] = 0
		return 0
	}

	d.envelope(voice)
	out := int(v.Decoded[v.BRROffset]) * v.Envelope >> 11

	pitch := int(d.Registers[base|PITCHH]&0x3f)<<8 | int(d.Registers[base|PITCHL])
	v.PitchCounter += pitch
	for v.Active && v.PitchCounter >= 0x1000 {
		v.PitchCounter -= 0x1000
		v.BRROffset++
		if v.BRROffset < 16 {
			continue
		}
		v.BRROffset = 0

		header := ram[v.BRRAddress]
		if header&0x01 == 0x00 {
			v.BRRAddress += 9
		} else {
			d.Registers[ENDX] |= 1 << voice
			if header&0x02 == 0x02 {
				v.BRRAddress = read16(ram, d.directory(voice)+2)
			} else {
				v.Active = false
				v.Mode = Release
				v.Envelope = 0
				break
			}
		}
		v.decode(ram)
	}

	if v.Mode == Release && v.Envelope == 0 {
		v.Active = false
	}

	d.Registers[base|ENVX] = uint8(v.Envelope >> 4)
	d.Registers[base|OUTX] = uint8(out >> 8)

	return out
}

func clamp16(v int) int {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return v
}
