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

// Package digest is used to create fingerprints of the emulation output.
// Video and Audio fingerprint the frames and the audio samples produced by
// the console. The fingerprint of each frame or audio buffer is chained
// into the next, so the final value depends on the entire run.
//
// Digests are used to check that the emulation is deterministic. Two runs
// of the same cartridge with the same input and a normalised environment
// must produce the same digests.
package digest

// Digest implementations compute a cryptographic hash of the emulation
// output.
type Digest interface {
	Hash() string
	ResetDigest()
}
