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

	"github.com/jetsetilly/gopher16/hardware/ppu"
)

// Video computes a chained SHA-1 digest of every frame.
type Video struct {
	digest [sha1.Size]byte
	pixels []byte
	frames int
}

// pixels are stored as two little endian bytes
const pixelDepth = 2

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// Frames returns the number of frames added since the last reset.
func (dig *Video) Frames() int {
	return dig.frames
}

// AddFrame adds the frame to the digest. The frame size is part of the
// digest.
func (dig *Video) AddFrame(f *ppu.Frame) {
	l := len(dig.digest) + 4 + len(f.Pixels)*pixelDepth
	if cap(dig.pixels) < l {
		dig.pixels = make([]byte, l)
	}
	dig.pixels = dig.pixels[:l]

	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	i := copy(dig.pixels, dig.digest[:])

	dig.pixels[i] = uint8(f.Width)
	dig.pixels[i+1] = uint8(f.Width >> 8)
	dig.pixels[i+2] = uint8(f.Height)
	dig.pixels[i+3] = uint8(f.Height >> 8)
	i += 4

	for _, p := range f.Pixels {
		dig.pixels[i] = uint8(p)
		dig.pixels[i+1] = uint8(p >> 8)
		i += pixelDepth
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
}
