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

// Package dsp is a simplified sound generator for the audio subsystem. It
// decodes BRR compressed samples from audio RAM for eight voices, applies
// pitch, envelope and volume, and mixes one stereo sample on every call to
// Sample().
//
// Echo, noise, pitch modulation and sample interpolation are not modelled.
// The register file is complete so the values written by sound drivers can
// still be read back.
package dsp
