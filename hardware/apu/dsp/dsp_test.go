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

package dsp_test

import (
	"testing"

	"github.com/jetsetilly/gopher16/hardware/apu/dsp"
	"github.com/jetsetilly/gopher16/test"
)

// prepare a DSP with voice 0 set to play the single BRR block at $0200.
// the directory is at $0100
func prepare(header uint8, data uint8) (*dsp.DSP, *[0x10000]uint8) {
	ram := &[0x10000]uint8{}
	ram[0x0100] = 0x00
	ram[0x0101] = 0x02
	ram[0x0102] = 0x00
	ram[0x0103] = 0x02
	ram[0x0200] = header
	for i := 1; i < 9; i++ {
		ram[0x0200+i] = data
	}

	d := dsp.NewDSP()
	d.Write(dsp.FLG, 0x20)
	d.Write(dsp.DIR, 0x01)
	d.Write(dsp.MVOLL, 0x7f)
	d.Write(dsp.MVOLR, 0x7f)
	d.Write(dsp.VOLL, 0x7f)
	d.Write(dsp.VOLR, 0x7f)
	d.Write(dsp.PITCHL, 0x00)
	d.Write(dsp.PITCHH, 0x10)
	d.Write(dsp.SRCN, 0x00)
	d.Write(dsp.GAIN, 0x7f)

	return d, ram
}

func TestSilence(t *testing.T) {
	d, ram := prepare(0xc3, 0x77)
	for i := 0; i < 100; i++ {
		test.ExpectEquality(t, d.Sample(ram), dsp.Sample{})
	}
}

func TestKeyOn(t *testing.T) {
	d, ram := prepare(0xc3, 0x77)
	d.Write(dsp.KON, 0x01)

	s := d.Sample(ram)
	test.ExpectSuccess(t, s.Left > 0)
	test.ExpectEquality(t, s.Left, s.Right)
	test.ExpectEquality(t, d.Read(dsp.ENVX), uint8(0x7f))
	test.ExpectEquality(t, d.Voices[0].BRROffset, 1)

	// the block has the end and loop flags set
	for i := 1; i < 16; i++ {
		d.Sample(ram)
	}
	test.ExpectEquality(t, d.Read(dsp.ENDX), uint8(0x01))
	test.ExpectSuccess(t, d.Voices[0].Active)
	test.ExpectEquality(t, d.Voices[0].BRRAddress, uint16(0x0200))

	// writing ENDX clears it
	d.Write(dsp.ENDX, 0xff)
	test.ExpectEquality(t, d.Read(dsp.ENDX), uint8(0x00))
}

func TestBlockEnd(t *testing.T) {
	d, ram := prepare(0xc1, 0x77)
	d.Write(dsp.KON, 0x01)
	for i := 0; i < 16; i++ {
		d.Sample(ram)
	}
	test.ExpectEquality(t, d.Read(dsp.ENDX), uint8(0x01))
	test.ExpectFailure(t, d.Voices[0].Active)
	test.ExpectEquality(t, d.Sample(ram), dsp.Sample{})
}

func TestKeyOff(t *testing.T) {
	d, ram := prepare(0xc3, 0x77)
	d.Write(dsp.KON, 0x01)
	d.Sample(ram)
	d.Write(dsp.KOF, 0x01)

	// release decreases the envelope by eight every sample
	for i := 0; i < 0x7f0/8; i++ {
		d.Sample(ram)
	}
	test.ExpectEquality(t, d.Voices[0].Envelope, 0)
	test.ExpectFailure(t, d.Voices[0].Active)
}

func TestMute(t *testing.T) {
	d, ram := prepare(0xc3, 0x77)
	d.Write(dsp.FLG, 0x60)
	d.Write(dsp.KON, 0x01)
	test.ExpectEquality(t, d.Sample(ram), dsp.Sample{})
	test.ExpectSuccess(t, d.Voices[0].Active)
}

func TestVolume(t *testing.T) {
	d, ram := prepare(0xc3, 0x77)
	d.Write(dsp.VOLR, 0x81)
	d.Write(dsp.KON, 0x01)
	s := d.Sample(ram)
	test.ExpectSuccess(t, s.Left > 0)
	test.ExpectSuccess(t, s.Right < 0)
}

func TestADSR(t *testing.T) {
	d, ram := prepare(0xc3, 0x77)

	// fastest attack
	d.Write(dsp.ADSR1, 0x8f)
	d.Write(dsp.ADSR2, 0xe0)
	d.Write(dsp.KON, 0x01)

	d.Sample(ram)
	test.ExpectEquality(t, d.Voices[0].Envelope, 1024)
	test.ExpectEquality(t, d.Voices[0].Mode, dsp.Attack)
	d.Sample(ram)
	test.ExpectEquality(t, d.Voices[0].Envelope, 0x7ff)
	test.ExpectEquality(t, d.Voices[0].Mode, dsp.Decay)
}

func TestBRRFilter(t *testing.T) {
	d, ram := prepare(0xc7, 0x10)
	d.Write(dsp.KON, 0x01)
	d.Sample(ram)

	// shift 12 with filter 1. the first sample is 1<<11 and the second adds
	// fifteen sixteenths of the first
	test.ExpectEquality(t, d.Voices[0].Decoded[0], int16(2048<<1))
	test.ExpectEquality(t, d.Voices[0].Decoded[1], int16((2048-128)<<1))
}

func TestReadOnlyMirror(t *testing.T) {
	d := dsp.NewDSP()
	d.Write(dsp.DIR, 0x12)
	d.Write(dsp.DIR|0x80, 0x34)
	test.ExpectEquality(t, d.Read(dsp.DIR|0x80), uint8(0x12))
}
