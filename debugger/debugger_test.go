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

package debugger_test

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher16/cartridgeloader"
	"github.com/jetsetilly/gopher16/debugger"
	"github.com/jetsetilly/gopher16/environment"
	"github.com/jetsetilly/gopher16/hardware"
	"github.com/jetsetilly/gopher16/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher16/test"
)

type mockTerm struct {
	keys   []rune
	output strings.Builder
}

func (trm *mockTerm) ReadKey() (rune, error) {
	if len(trm.keys) == 0 {
		return 0, io.EOF
	}
	k := trm.keys[0]
	trm.keys = trm.keys[1:]
	return k, nil
}

func (trm *mockTerm) Print(s string, a ...interface{}) {
	trm.output.WriteString(fmt.Sprintf(s, a...))
}

func newConsole(t *testing.T) *hardware.Console {
	t.Helper()

	env, err := environment.NewEnvironment(environment.Label("test"), nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	c, err := hardware.NewConsole(env)
	test.DemandSuccess(t, err)

	syn := cartridge.Synthetic{
		Program: []uint8{
			0xea,       // NOP
			0xea,       // NOP
			0xea,       // NOP
			0x80, 0xfe, // BRA *
		},
	}
	err = c.AttachCartridge(cartridgeloader.NewLoaderFromData("test", syn.Image()))
	test.DemandSuccess(t, err)

	return c
}

func TestNewDebugger(t *testing.T) {
	_, err := debugger.NewDebugger(nil, &mockTerm{})
	test.ExpectFailure(t, err)
	_, err = debugger.NewDebugger(newConsole(t), nil)
	test.ExpectFailure(t, err)
}

func TestCommands(t *testing.T) {
	c := newConsole(t)
	trm := &mockTerm{}
	dbg, err := debugger.NewDebugger(c, trm)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, dbg.Command('s'), false)
	test.ExpectEquality(t, c.CPU.PC, uint16(0x8001))
	test.ExpectSuccess(t, strings.Contains(trm.output.String(), "00:8000 NOP"))

	test.ExpectEquality(t, dbg.Command(' '), false)
	test.ExpectEquality(t, c.CPU.PC, uint16(0x8002))

	// keep state and then move on
	dbg.Command('3')
	dbg.Command('k')
	test.ExpectSuccess(t, strings.Contains(trm.output.String(), "state kept in slot 3"))
	dbg.Command('s')
	test.ExpectEquality(t, c.CPU.PC, uint16(0x8003))

	// loading from an empty slot is reported and the monitor continues
	dbg.Command('4')
	trm.output.Reset()
	test.ExpectEquality(t, dbg.Command('l'), false)
	test.ExpectSuccess(t, strings.Contains(trm.output.String(), "error:"))
	test.ExpectEquality(t, c.CPU.PC, uint16(0x8003))

	dbg.Command('3')
	dbg.Command('l')
	test.ExpectEquality(t, c.CPU.PC, uint16(0x8002))

	v := c.PPU.V
	dbg.Command('v')
	test.ExpectInequality(t, c.PPU.V, v)

	dbg.Command('f')
	test.ExpectEquality(t, c.Timing.Frames, uint64(1))

	dbg.Command('r')
	test.ExpectEquality(t, c.CPU.PC, uint16(0x8000))
	test.ExpectEquality(t, c.Timing.Frames, uint64(0))

	trm.output.Reset()
	test.ExpectEquality(t, dbg.Command('x'), false)
	test.ExpectSuccess(t, strings.HasPrefix(trm.output.String(), "unrecognised key"))

	test.ExpectEquality(t, dbg.Command('q'), true)
}

func TestStart(t *testing.T) {
	c := newConsole(t)

	trm := &mockTerm{keys: []rune{'s', 's', 'q', 's'}}
	dbg, err := debugger.NewDebugger(c, trm)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dbg.Start())
	test.ExpectEquality(t, c.CPU.PC, uint16(0x8002))
	test.ExpectEquality(t, len(trm.keys), 1)

	// running out of input is an error
	trm = &mockTerm{keys: []rune{'s'}}
	dbg, err = debugger.NewDebugger(c, trm)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, dbg.Start())
}
