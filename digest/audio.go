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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher16/hardware/apu"
)

// length of buffer. the buffer is hashed when it is full
const audioBufferLength = 1024 * 4

// the previous digest value is stored at the start of the buffer array and
// is included when the next digest value is created
const audioBufferStart = sha1.Size

// Audio computes a chained SHA-1 digest of the audio samples.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: audioBufferStart,
	}
}

// Hash implements digest.Digest interface. Samples waiting in the buffer
// are not included until the buffer is flushed.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.bufferCt = audioBufferStart
}

// AddSamples adds stereo samples to the digest.
func (dig *Audio) AddSamples(samples []apu.Sample) {
	for _, s := range samples {
		for _, v := range [2]int16{s.Left, s.Right} {
			dig.buffer[dig.bufferCt] = uint8(v)
			dig.buffer[dig.bufferCt+1] = uint8(uint16(v) >> 8)
			dig.bufferCt += 2
			if dig.bufferCt >= audioBufferLength {
				dig.Flush()
			}
		}
	}
}

// Flush hashes the samples in the buffer, even if the buffer is not full.
func (dig *Audio) Flush() {
	if dig.bufferCt == audioBufferStart {
		return
	}
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
