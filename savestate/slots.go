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

	"github.com/jetsetilly/gopher16/hardware"
)

// NumSlots is the number of save state slots.
const NumSlots = 10

// Sentinal errors returned by the Slots type.
var (
	ErrSlot      = errors.New("savestate: invalid slot")
	ErrEmptySlot = errors.New("savestate: slot is empty")
)

// Slots is a set of numbered save states held in memory.
type Slots struct {
	console *hardware.Console
	slots   [NumSlots][]byte
}

// NewSlots is the preferred method of initialisation for the Slots type.
func NewSlots(c *hardware.Console) *Slots {
	return &Slots{console: c}
}

func checkSlot(n int) error {
	if n < 0 || n >= NumSlots {
		return fmt.Errorf("%w: %d", ErrSlot, n)
	}
	return nil
}

// Store the current state of the console in the slot. Any previous state
// in the slot is replaced.
func (s *Slots) Store(n int) error {
	if err := checkSlot(n); err != nil {
		return err
	}
	data, err := Save(s.console)
	if err != nil {
		return err
	}
	s.slots[n] = data
	return nil
}

// Load the state in the slot into the console.
func (s *Slots) Load(n int) error {
	if err := checkSlot(n); err != nil {
		return err
	}
	if s.slots[n] == nil {
		return fmt.Errorf("%w: %d", ErrEmptySlot, n)
	}
	return Restore(s.console, s.slots[n])
}

// Used returns true if the slot contains a state.
func (s *Slots) Used(n int) bool {
	if checkSlot(n) != nil {
		return false
	}
	return s.slots[n] != nil
}

// Data returns the serialised state in the slot. The result is nil if the
// slot is empty.
func (s *Slots) Data(n int) []byte {
	if checkSlot(n) != nil {
		return nil
	}
	return s.slots[n]
}
