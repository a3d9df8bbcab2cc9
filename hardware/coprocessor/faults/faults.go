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

// Package faults records faults reported by coprocessors.
package faults

import (
	"fmt"
	"io"
)

// Category classifies the operation that caused a fault.
type Category string

// List of valid Category values.
const (
	ReadFault    Category = "read"
	WriteFault   Category = "write"
	AdvanceFault Category = "advance"
	StateFault   Category = "state"
)

// Entry is a single entry in the fault log.
type Entry struct {
	Category    Category
	Coprocessor string

	// description of the event that triggered the fault
	Event string

	// the bus address related to the fault. zero for faults that are not
	// caused by a bus access
	Address uint32

	// number of times this specific fault has been seen
	Count int
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %s fault: %s (%06x)", e.Coprocessor, e.Category, e.Event, e.Address)
}

// Faults records the faults reported by coprocessors.
type Faults struct {
	// entries are keyed by coprocessor, category and address
	entries map[string]*Entry

	// all faults in order of the first time they appear. the Count field can
	// be used to see if the entry was seen more than once after the first
	// appearance
	Log []*Entry
}

// NewFaults is the preferred method of initialisation for the Faults type.
func NewFaults() Faults {
	return Faults{
		entries: make(map[string]*Entry),
	}
}

// Clear all entries from the faults log.
func (flt *Faults) Clear() {
	clear(flt.entries)
	flt.Log = flt.Log[:0]
}

// WriteLog writes the list of faults in the order they were added.
func (flt Faults) WriteLog(w io.Writer) {
	for _, e := range flt.Log {
		w.Write([]byte(e.String()))
		w.Write([]byte("\n"))
	}
}

// NewEntry adds a new entry to the list of faults. The returned entry is
// the new entry or the existing entry for the same fault.
func (flt *Faults) NewEntry(coproc string, category Category, address uint32, err error) *Entry {
	if flt.entries == nil {
		flt.entries = make(map[string]*Entry)
	}

	key := fmt.Sprintf("%s%s%06x", coproc, category, address)

	e, found := flt.entries[key]
	if !found {
		e = &Entry{
			Category:    category,
			Coprocessor: coproc,
			Event:       err.Error(),
			Address:     address,
		}
		flt.entries[key] = e
		flt.Log = append(flt.Log, e)
	}

	e.Count++
	return e
}
