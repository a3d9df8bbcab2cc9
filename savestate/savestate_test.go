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

package savestate_test

import (
	"errors"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/jetsetilly/gopher16/cartridgeloader"
	"github.com/jetsetilly/gopher16/environment"
	"github.com/jetsetilly/gopher16/hardware"
	"github.com/jetsetilly/gopher16/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher16/savestate"
	"github.com/jetsetilly/gopher16/test"
)

// a program that changes the background colour every frame
var program = []uint8{
	0xa9, 0x0f, // LDA #$0F
	0x8d, 0x00, 0x21, // STA INIDISP
	0x9c, 0x21, 0x21, // loop: STZ CGADD
	0xee, 0x00, 0x00, // INC $0000
	0xad, 0x00, 0x00, // LDA $0000
	0x8d, 0x22, 0x21, // STA CGDATA
	0x8d, 0x22, 0x21, // STA CGDATA
	0x2c, 0x12, 0x42, // wait: BIT HVBJOY
	0x10, 0xfb, // BPL wait
	0x2c, 0x12, 0x42, // vbl: BIT HVBJOY
	0x30, 0xfb, // BMI vbl
	0x80, 0xe5, // BRA loop
}

func newConsole(t *testing.T, title string) *hardware.Console {
	t.Helper()

	env, err := environment.NewEnvironment(environment.Label("test"), nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	c, err := hardware.NewConsole(env)
	test.DemandSuccess(t, err)

	syn := cartridge.Synthetic{
		Title:   title,
		Program: program,
		RAMSize: 1,
	}
	test.DemandSuccess(t, c.AttachCartridge(cartridgeloader.NewLoaderFromData(title, syn.Image())))

	return c
}

func frameColour(t *testing.T, c *hardware.Console) uint16 {
	t.Helper()
	test.DemandSuccess(t, c.RunFrame())
	return c.Frame().Pixels[0]
}

func TestRoundTrip(t *testing.T) {
	c := newConsole(t, "ROUNDTRIP")
	for i := 0; i < 3; i++ {
		test.DemandSuccess(t, c.RunFrame())
	}
	c.Cart.SRAM[0] = 0xaa

	data, err := savestate.Save(c)
	test.DemandSuccess(t, err)

	master := c.Timing.Master
	pc := c.CPU.PC

	var before [3]uint16
	for i := range before {
		before[i] = frameColour(t, c)
	}
	c.Cart.SRAM[0] = 0x00

	test.DemandSuccess(t, savestate.Restore(c, data))
	test.ExpectEquality(t, c.Timing.Master, master)
	test.ExpectEquality(t, c.CPU.PC, pc)
	test.ExpectEquality(t, c.Cart.SRAM[0], uint8(0xaa))

	for i := range before {
		test.ExpectEquality(t, frameColour(t, c), before[i])
	}

	// the state can be restored into a different console with the same
	// cartridge
	d := newConsole(t, "ROUNDTRIP")
	test.DemandSuccess(t, savestate.Restore(d, data))
	for i := range before {
		test.ExpectEquality(t, frameColour(t, d), before[i])
	}
}

func TestRoundTripMidFrame(t *testing.T) {
	c := newConsole(t, "MIDFRAME")
	test.DemandSuccess(t, c.RunFrame())
	for i := 0; i < 2000; i++ {
		_, err := c.RunInstruction()
		test.DemandSuccess(t, err)
	}
	pending := len(c.APU.Samples)
	test.DemandSuccess(t, pending > 0)

	data, err := savestate.Save(c)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, c.RunFrame())
	colour := c.Frame().Pixels[0]
	samples := c.Samples()

	// the audio of the interrupted frame is complete after a restore
	d := newConsole(t, "MIDFRAME")
	test.DemandSuccess(t, savestate.Restore(d, data))
	test.ExpectEquality(t, len(d.APU.Samples), pending)
	test.DemandSuccess(t, d.RunFrame())
	test.ExpectEquality(t, d.Frame().Pixels[0], colour)
	test.DemandEquality(t, len(d.Samples()), len(samples))
	for i := range samples {
		test.DemandEquality(t, d.Samples()[i], samples[i], i)
	}
}

func TestRestoreErrors(t *testing.T) {
	c := newConsole(t, "FIRST")
	data, err := savestate.Save(c)
	test.DemandSuccess(t, err)

	err = savestate.Restore(c, []byte("not a save state"))
	test.ExpectEquality(t, errors.Is(err, savestate.ErrBadMagic), true)

	bad, err := msgpack.Marshal(map[string]any{"Magic": "XXXX", "Version": savestate.Version})
	test.DemandSuccess(t, err)
	err = savestate.Restore(c, bad)
	test.ExpectEquality(t, errors.Is(err, savestate.ErrBadMagic), true)

	bad, err = msgpack.Marshal(map[string]any{"Magic": savestate.Magic, "Version": savestate.Version + 1})
	test.DemandSuccess(t, err)
	err = savestate.Restore(c, bad)
	test.ExpectEquality(t, errors.Is(err, savestate.ErrVersion), true)

	// a state for a different cartridge leaves the console untouched
	d := newConsole(t, "SECOND")
	test.DemandSuccess(t, d.RunFrame())
	master := d.Timing.Master
	err = savestate.Restore(d, data)
	test.ExpectEquality(t, errors.Is(err, savestate.ErrCartridgeMismatch), true)
	test.ExpectEquality(t, d.Timing.Master, master)
}

func TestSlots(t *testing.T) {
	c := newConsole(t, "SLOTS")
	s := savestate.NewSlots(c)

	test.ExpectEquality(t, errors.Is(s.Store(savestate.NumSlots), savestate.ErrSlot), true)
	test.ExpectEquality(t, errors.Is(s.Load(-1), savestate.ErrSlot), true)
	test.ExpectEquality(t, errors.Is(s.Load(3), savestate.ErrEmptySlot), true)
	test.ExpectEquality(t, s.Used(3), false)

	test.DemandSuccess(t, c.RunFrame())
	test.DemandSuccess(t, s.Store(3))
	test.ExpectEquality(t, s.Used(3), true)
	test.ExpectEquality(t, s.Data(3) != nil, true)

	colour := frameColour(t, c)
	frameColour(t, c)

	test.DemandSuccess(t, s.Load(3))
	test.ExpectEquality(t, frameColour(t, c), colour)
}
