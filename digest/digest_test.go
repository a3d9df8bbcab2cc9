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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopher16/digest"
	"github.com/jetsetilly/gopher16/hardware/apu"
	"github.com/jetsetilly/gopher16/hardware/ppu"
	"github.com/jetsetilly/gopher16/test"
)

func frame(colour uint16) *ppu.Frame {
	f := &ppu.Frame{
		Width:  ppu.Width,
		Height: ppu.Height,
		Pixels: make([]uint16, ppu.Width*ppu.Height),
	}
	for i := range f.Pixels {
		f.Pixels[i] = colour
	}
	return f
}

func TestVideo(t *testing.T) {
	var _ digest.Digest = digest.NewVideo()

	a := digest.NewVideo()
	b := digest.NewVideo()
	empty := a.Hash()

	a.AddFrame(frame(0x1234))
	b.AddFrame(frame(0x1234))
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), empty)

	// the same frame twice gives a different digest because of chaining
	h := a.Hash()
	a.AddFrame(frame(0x1234))
	test.ExpectInequality(t, a.Hash(), h)
	test.ExpectEquality(t, a.Frames(), 2)

	// frame order matters
	c := digest.NewVideo()
	d := digest.NewVideo()
	c.AddFrame(frame(1))
	c.AddFrame(frame(2))
	d.AddFrame(frame(2))
	d.AddFrame(frame(1))
	test.ExpectInequality(t, c.Hash(), d.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), empty)
	test.ExpectEquality(t, a.Frames(), 0)
}

func TestAudio(t *testing.T) {
	var _ digest.Digest = digest.NewAudio()

	samples := make([]apu.Sample, 3000)
	for i := range samples {
		samples[i] = apu.Sample{Left: int16(i), Right: int16(-i)}
	}

	a := digest.NewAudio()
	b := digest.NewAudio()
	empty := a.Hash()

	a.AddSamples(samples)
	b.AddSamples(samples[:1000])
	b.AddSamples(samples[1000:])
	a.Flush()
	b.Flush()
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), empty)

	samples[2999].Right = 0
	c := digest.NewAudio()
	c.AddSamples(samples)
	c.Flush()
	test.ExpectInequality(t, c.Hash(), a.Hash())

	// flushing an empty buffer does not change the digest
	h := c.Hash()
	c.Flush()
	test.ExpectEquality(t, c.Hash(), h)
}
