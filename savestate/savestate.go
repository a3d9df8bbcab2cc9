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

package savestate

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/jetsetilly/gopher16/hardware"
)

// Magic identifies serialised save states.
const Magic = "G16S"

// Version of the serialised format. States with a different version cannot
// be restored.
const Version = 2

// Sentinal errors returned by Restore().
var (
	ErrBadMagic          = errors.New("savestate: not a save state")
	ErrVersion           = errors.New("savestate: unsupported version")
	ErrCartridgeMismatch = errors.New("savestate: state is for a different cartridge")
	ErrNoCartridge       = errors.New("savestate: no cartridge attached")
)

type blob struct {
	Magic   string
	Version int

	// SHA-1 of the cartridge ROM
	Hash string

	State *hardware.State
}

// Save serialises the current state of the console.
func Save(c *hardware.Console) ([]byte, error) {
	if c.Cart == nil {
		return nil, ErrNoCartridge
	}

	b := blob{
		Magic:   Magic,
		Version: Version,
		Hash:    c.Cart.Hash,
		State:   c.Snapshot(),
	}

	data, err := msgpack.Marshal(&b)
	if err != nil {
		return nil, fmt.Errorf("savestate: %w", err)
	}

	return data, nil
}

// Decode a serialised state without restoring it. The state is checked
// against the cartridge attached to the console.
func Decode(c *hardware.Console, data []byte) (*hardware.State, error) {
	if c.Cart == nil {
		return nil, ErrNoCartridge
	}

	var b blob
	if err := msgpack.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadMagic, err)
	}

	if b.Magic != Magic {
		return nil, ErrBadMagic
	}
	if b.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, b.Version)
	}
	if b.Hash != c.Cart.Hash {
		return nil, fmt.Errorf("%w: %s", ErrCartridgeMismatch, b.Hash)
	}
	if b.State == nil || b.State.CPU == nil || b.State.Mem == nil || b.State.PPU == nil ||
		b.State.APU == nil || b.State.APU.SPC == nil || b.State.APU.DSP == nil ||
		b.State.CPUIO == nil || b.State.DMA == nil || b.State.Ports == nil {
		return nil, fmt.Errorf("%w: incomplete state", ErrBadMagic)
	}

	return b.State, nil
}

// Restore a serialised state into the console. The console is not changed
// if an error is returned.
func Restore(c *hardware.Console, data []byte) error {
	state, err := Decode(c, data)
	if err != nil {
		return err
	}
	c.Plumb(state, true)
	return nil
}
