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

// number of samples between envelope steps for each rate. rate zero never
// steps
var rates = [32]uint32{
	0, 2048, 1536, 1280, 1024, 768, 640, 512,
	384, 320, 256, 192, 160, 128, 96, 80,
	64, 48, 40, 32, 24, 20, 16, 12,
	10, 8, 6, 5, 4, 3, 2, 1,
}

func (d *DSP) due(rate int) bool {
	if rate == 0 {
		return false
	}
	return d.Counter%rates[rate] == 0
}

func expDecrease(env int) int {
	return env - ((env-1)>>8 + 1)
}

// envelope advances the volume envelope of the voice.
func (d *DSP) envelope(voice int) {
	v := &d.Voices[voice]
	base := voice << 4

	if v.Mode == Release {
		v.Envelope -= 8
		if v.Envelope < 0 {
			v.Envelope = 0
		}
		return
	}

	adsr1 := d.Registers[base|ADSR1]
	adsr2 := d.Registers[base|ADSR2]
	env := v.Envelope

	if adsr1&0x80 == 0x00 {
		gain := d.Registers[base|GAIN]
		if gain&0x80 == 0x00 {
			v.Envelope = int(gain&0x7f) << 4
			return
		}
		if !d.due(int(gain & 0x1f)) {
			return
		}
		switch (gain >> 5) & 0x03 {
		case 0:
			env -= 32
		case 1:
			env = expDecrease(env)
		case 2:
			env += 32
		case 3:
			if env < 0x600 {
				env += 32
			} else {
				env += 8
			}
		}
	} else {
		switch v.Mode {
		case Attack:
			rate := int(adsr1&0x0f)*2 + 1
			if !d.due(rate) {
				return
			}
			if rate == 31 {
				env += 1024
			} else {
				env += 32
			}
			if env >= envelopeMax {
				v.Mode = Decay
			}
		case Decay:
			if !d.due(int(adsr1>>4&0x07)*2 + 16) {
				return
			}
			env = expDecrease(env)
			if env>>8 <= int(adsr2>>5) {
				v.Mode = Sustain
			}
		case Sustain:
			if !d.due(int(adsr2 & 0x1f)) {
				return
			}
			env = expDecrease(env)
		}
	}

	if env < 0 {
		env = 0
	}
	if env > envelopeMax {
		env = envelopeMax
	}
	v.Envelope = env
}
