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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher16/hardware/apu"
	"github.com/jetsetilly/gopher16/test"
	"github.com/jetsetilly/gopher16/wavwriter"
)

func TestWavWriter(t *testing.T) {
	_, err := wavwriter.New("")
	test.ExpectFailure(t, err)

	fn := filepath.Join(t.TempDir(), "audio.wav")
	aw, err := wavwriter.New(fn)
	test.DemandSuccess(t, err)

	samples := []apu.Sample{
		{Left: 100, Right: -100},
		{Left: 32767, Right: -32768},
		{Left: 0, Right: 1},
	}
	aw.AddSamples(samples)
	aw.AddSamples(samples)
	test.ExpectEquality(t, aw.Samples(), 6)
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandEquality(t, dec.IsValidFile(), true)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, int(dec.SampleRate), apu.SampleRate)
	test.ExpectEquality(t, int(dec.NumChans), 2)
	test.ExpectEquality(t, int(dec.BitDepth), 16)
	test.DemandEquality(t, len(buf.Data), 12)

	for i, s := range samples {
		test.ExpectEquality(t, buf.Data[i*2], int(s.Left))
		test.ExpectEquality(t, buf.Data[i*2+1], int(s.Right))
	}
}
