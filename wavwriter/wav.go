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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety, and written to disk
// when EndMixing() is called. It is therefore probably only suitable for
// testing purposes and for short recordings.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher16/hardware/apu"
	"github.com/jetsetilly/gopher16/logger"
)

const (
	numChannels = 2
	bitDepth    = 16

	// PCM format code in the WAV header
	formatPCM = 1
)

// WavWriter collects audio samples and writes them to a WAV file.
type WavWriter struct {
	filename string
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("wavwriter: no filename")
	}

	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0, apu.SampleRate*numChannels),
	}

	return aw, nil
}

// AddSamples adds stereo samples to the end of the recording.
func (aw *WavWriter) AddSamples(samples []apu.Sample) {
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s.Left), int(s.Right))
	}
}

// Samples returns the number of stereo samples recorded.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer) / numChannels
}

// EndMixing writes the recording to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, apu.SampleRate, bitDepth, numChannels, formatPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  apu.SampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	// closing the encoder completes the WAV header
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}
