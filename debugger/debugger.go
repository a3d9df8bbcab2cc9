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

package debugger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher16/hardware"
	"github.com/jetsetilly/gopher16/logger"
	"github.com/jetsetilly/gopher16/savestate"
)

// Terminal is the interface to the user.
type Terminal interface {
	// ReadKey blocks until a single key has been pressed
	ReadKey() (rune, error)

	Print(s string, a ...interface{})
}

// the maximum number of instructions run by a scanline step before giving
// up. a halted CPU still advances the beam so this is only reached if
// something is very wrong
const maxLineInstructions = 10000

// Debugger is the STEP mode monitor.
type Debugger struct {
	console *hardware.Console
	term    Terminal

	slots *savestate.Slots
	slot  int

	// the error returned by the most recent step. the monitor carries on
	// after an error
	lastErr error
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(console *hardware.Console, term Terminal) (*Debugger, error) {
	if console == nil {
		return nil, fmt.Errorf("debugger: no console")
	}
	if term == nil {
		return nil, fmt.Errorf("debugger: no terminal")
	}
	return &Debugger{
		console: console,
		term:    term,
		slots:   savestate.NewSlots(console),
	}, nil
}

// Start the input loop. The function returns when the user quits or when
// the terminal reports an error.
func (dbg *Debugger) Start() error {
	dbg.term.Print("%s\n", help)
	dbg.status()

	for {
		key, err := dbg.term.ReadKey()
		if err != nil {
			return fmt.Errorf("debugger: %w", err)
		}

		quit := dbg.Command(key)
		if quit {
			return nil
		}
	}
}

// Command acts on a single key press. It returns true if the key was the
// quit command.
func (dbg *Debugger) Command(key rune) bool {
	dbg.lastErr = nil

	switch key {
	case 'q', 'Q', keyEsc, keyEOF:
		return true

	case 's', ' ':
		_, dbg.lastErr = dbg.console.RunInstruction()

	case 'v':
		dbg.lastErr = dbg.stepLine()

	case 'f':
		dbg.lastErr = dbg.console.RunFrame()

	case 'r':
		dbg.console.Reset()
		logger.Log(logger.Allow, "debugger", "console reset")

	case 'k':
		dbg.lastErr = dbg.slots.Store(dbg.slot)
		if dbg.lastErr == nil {
			dbg.term.Print("state kept in slot %d\n", dbg.slot)
		}

	case 'l':
		dbg.lastErr = dbg.slots.Load(dbg.slot)
		if dbg.lastErr == nil {
			dbg.term.Print("state loaded from slot %d\n", dbg.slot)
		}

	case 'h', '?':
		dbg.term.Print("%s\n", help)
		return false

	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		dbg.slot = int(key - '0')
		dbg.term.Print("slot %d selected (used: %v)\n", dbg.slot, dbg.slots.Used(dbg.slot))
		return false

	case keyReturn, keyCarriage:
		return false

	default:
		dbg.term.Print("unrecognised key (%q). press h for help\n", key)
		return false
	}

	dbg.status()
	return false
}

// run instructions until the PPU moves onto another scanline.
func (dbg *Debugger) stepLine() error {
	v := dbg.console.PPU.V
	for i := 0; i < maxLineInstructions; i++ {
		if _, err := dbg.console.RunInstruction(); err != nil {
			return err
		}
		if dbg.console.PPU.V != v {
			return nil
		}
	}
	return errors.New("debugger: scanline did not end")
}

func (dbg *Debugger) status() {
	s := strings.Builder{}
	s.WriteString(dbg.console.CPU.LastResult.String())
	s.WriteString("\n")
	s.WriteString(dbg.console.CPU.String())
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("%s frame=%d master=%d\n", dbg.console.PPU, dbg.console.Timing.Frames, dbg.console.Timing.Master))
	if dbg.lastErr != nil {
		s.WriteString(fmt.Sprintf("error: %v\n", dbg.lastErr))
	}
	if len(dbg.console.Faults.Log) > 0 {
		s.WriteString(fmt.Sprintf("faults: %d\n", len(dbg.console.Faults.Log)))
	}
	dbg.term.Print("%s", s.String())
}
